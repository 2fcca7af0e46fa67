package service

import (
	"time"

	"github.com/aarondl/opt/null"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// TransactionType is the direction of money. Income adds to the linked
// account's balance and expense subtracts from it.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a transaction in the service layer. Date carries a
// calendar day; its time of day is ignored.
type Transaction struct {
	ID          int64
	Type        TransactionType
	AmountCents int64
	Date        time.Time
	Note        *string
	CategoryID  *int64
	AccountID   *int64
}

// TransactionFilter narrows a listing to one account and/or category.
type TransactionFilter struct {
	AccountID  *int64
	CategoryID *int64
}

// TransactionCursor identifies a position in a paginated result set.
type TransactionCursor struct {
	Position int
	Limit    int
}

func (t Transaction) validate() error {
	if !t.Type.Valid() {
		return constraintViolation("transaction type %q must be income or expense", t.Type)
	}
	if t.AmountCents < 0 {
		return constraintViolation("amountCents must not be negative, got %d", t.AmountCents)
	}
	if t.Date.IsZero() {
		return constraintViolation("transaction date is required")
	}
	return nil
}

func (t Transaction) toStorage() sqlconfig.TransactionCreate {
	return sqlconfig.TransactionCreate{
		Type:        sqlconfig.TransactionType(t.Type),
		AmountCents: t.AmountCents,
		Date:        t.Date,
		Note:        null.FromPtr(t.Note),
		CategoryID:  null.FromPtr(t.CategoryID),
		AccountID:   null.FromPtr(t.AccountID),
	}
}

func transactionFromStorage(row *sqlconfig.Transaction) Transaction {
	return Transaction{
		ID:          row.ID,
		Type:        TransactionType(row.Type),
		AmountCents: row.AmountCents,
		Date:        row.Date,
		Note:        row.Note.Ptr(),
		CategoryID:  row.CategoryID.Ptr(),
		AccountID:   row.AccountID.Ptr(),
	}
}

func transactionsFromStorage(rows []*sqlconfig.Transaction) []Transaction {
	out := make([]Transaction, len(rows))
	for i, row := range rows {
		out[i] = transactionFromStorage(row)
	}
	return out
}
