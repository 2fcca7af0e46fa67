package sqlconfig

import (
	"context"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const accountsTable = "accounts"

var accountColumns = []any{"id", "type", "name", "balance", "icon"}

// Account represents an account record.
type Account struct {
	ID      int64       `db:"id"`
	Type    AccountType `db:"type"`
	Name    string      `db:"name"`
	Balance int64       `db:"balance"`
	Icon    string      `db:"icon"`
}

// AccountCreate is the input for creating an account and for overwriting one.
type AccountCreate struct {
	Type    AccountType
	Name    string
	Balance int64
	Icon    string
}

// AccountFilter specifies filters for listing accounts.
type AccountFilter struct {
	Name   *string
	Limit  int
	Offset int
}

// IAccountTable defines the interface for account storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name IAccountTable --output . --outpkg sqlconfig --filename mock_IAccountTable.go --with-expecter
type IAccountTable interface {
	FindByID(ctx context.Context, id int64, forUpdate bool) (*Account, error)
	List(ctx context.Context, filter *AccountFilter) ([]*Account, error)
	Insert(ctx context.Context, create *AccountCreate) (*Account, error)
	Update(ctx context.Context, id int64, update *AccountCreate) (*Account, error)
	Delete(ctx context.Context, id int64) (bool, error)
	AddToBalance(ctx context.Context, id int64, delta int64) (int64, error)
}

// AccountsTable provides access to the accounts table.
type AccountsTable struct {
	exec bob.Executor
}

// Ensure AccountsTable implements IAccountTable at compile time.
var _ IAccountTable = (*AccountsTable)(nil)

// NewAccountsTable creates an AccountsTable bound to exec, which is either the
// connection pool or an open transaction.
func NewAccountsTable(exec bob.Executor) *AccountsTable {
	return &AccountsTable{exec: exec}
}

// FindByID retrieves an account by primary key. forUpdate locks the row until
// the surrounding transaction ends.
func (t *AccountsTable) FindByID(ctx context.Context, id int64, forUpdate bool) (*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(accountColumns...),
		sm.From(accountsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Account]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

// List returns accounts matching the filter ordered by id. Nil filter returns all.
// A positive Limit fetches one extra row so callers can detect a further page.
func (t *AccountsTable) List(ctx context.Context, filter *AccountFilter) ([]*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(accountColumns...),
		sm.From(accountsTable),
	}
	if filter != nil {
		if filter.Name != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("name").EQ(psql.Arg(*filter.Name))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods, sm.OrderBy(psql.Quote("id")).Asc())

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Account]())
	if err != nil {
		return nil, mapError(err)
	}
	result := make([]*Account, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Insert creates a new account and returns the persisted row.
func (t *AccountsTable) Insert(ctx context.Context, create *AccountCreate) (*Account, error) {
	query := psql.Insert(
		im.Into(accountsTable, "type", "name", "balance", "icon"),
		im.Values(
			psql.Arg(string(create.Type)),
			psql.Arg(create.Name),
			psql.Arg(create.Balance),
			psql.Arg(create.Icon),
		),
		im.Returning(accountColumns...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Account]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

// Update overwrites every mutable column of the account, balance included.
// No delta is computed; this is the manual correction path.
func (t *AccountsTable) Update(ctx context.Context, id int64, update *AccountCreate) (*Account, error) {
	query := psql.Update(
		um.Table(accountsTable),
		um.SetCol("type").ToArg(string(update.Type)),
		um.SetCol("name").ToArg(update.Name),
		um.SetCol("balance").ToArg(update.Balance),
		um.SetCol("icon").ToArg(update.Icon),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(accountColumns...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Account]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

// Delete removes the account and reports whether a row existed.
func (t *AccountsTable) Delete(ctx context.Context, id int64) (bool, error) {
	query := psql.Delete(
		dm.From(accountsTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return false, mapError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// AddToBalance applies delta in place and returns the resulting balance.
func (t *AccountsTable) AddToBalance(ctx context.Context, id int64, delta int64) (int64, error) {
	query := psql.Update(
		um.Table(accountsTable),
		um.SetCol("balance").To(psql.Raw("balance + ?", delta)),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning("balance"),
	)
	balance, err := bob.One(ctx, t.exec, query, scan.SingleColumnMapper[int64])
	if err != nil {
		err = mapError(err)
		if errors.Is(err, ErrNotFound) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return balance, nil
}
