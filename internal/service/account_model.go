package service

import (
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type AccountType string

const (
	AccountTypeBank    AccountType = "bank"
	AccountTypeEWallet AccountType = "ewallet"
)

func (t AccountType) Valid() bool {
	return t == AccountTypeBank || t == AccountTypeEWallet
}

// Account represents an account in the service layer. Balance is in minor
// currency units.
type Account struct {
	ID      int64
	Type    AccountType
	Name    string
	Balance int64
	Icon    string
}

// AccountCursor identifies a position in a paginated result set.
type AccountCursor struct {
	Position int
	Limit    int
}

func (a Account) validate() error {
	if !a.Type.Valid() {
		return constraintViolation("account type %q must be bank or ewallet", a.Type)
	}
	if a.Name == "" {
		return constraintViolation("account name must not be empty")
	}
	return nil
}

func (a Account) toStorage() sqlconfig.AccountCreate {
	return sqlconfig.AccountCreate{
		Type:    sqlconfig.AccountType(a.Type),
		Name:    a.Name,
		Balance: a.Balance,
		Icon:    a.Icon,
	}
}

func accountFromStorage(row *sqlconfig.Account) Account {
	return Account{
		ID:      row.ID,
		Type:    AccountType(row.Type),
		Name:    row.Name,
		Balance: row.Balance,
		Icon:    row.Icon,
	}
}

func accountsFromStorage(rows []*sqlconfig.Account) []Account {
	out := make([]Account, len(rows))
	for i, row := range rows {
		out[i] = accountFromStorage(row)
	}
	return out
}
