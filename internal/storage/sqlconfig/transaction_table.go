package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const transactionsTable = "transactions"

var transactionColumns = []any{"id", "type", "amount_cents", "date", "note", "category_id", "account_id"}

// Transaction represents a transaction record. CategoryID and AccountID are
// non-owning references and may point at rows that no longer exist.
type Transaction struct {
	ID          int64            `db:"id"`
	Type        TransactionType  `db:"type"`
	AmountCents int64            `db:"amount_cents"`
	Date        time.Time        `db:"date"`
	Note        null.Val[string] `db:"note"`
	CategoryID  null.Val[int64]  `db:"category_id"`
	AccountID   null.Val[int64]  `db:"account_id"`
}

// TransactionCreate is the input for creating a transaction and for overwriting one.
type TransactionCreate struct {
	Type        TransactionType
	AmountCents int64
	Date        time.Time
	Note        null.Val[string]
	CategoryID  null.Val[int64]
	AccountID   null.Val[int64]
}

// TransactionFilter specifies filters for listing transactions.
type TransactionFilter struct {
	Note       *string
	AccountID  *int64
	CategoryID *int64
	Limit      int
	Offset     int
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
//
//go:generate mockery --name ITransactionTable --output . --outpkg sqlconfig --filename mock_ITransactionTable.go --with-expecter
type ITransactionTable interface {
	FindByID(ctx context.Context, id int64, forUpdate bool) (*Transaction, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	Update(ctx context.Context, id int64, update *TransactionCreate) (*Transaction, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// FindByID retrieves a transaction by primary key. forUpdate locks the row so
// concurrent edits of the same transaction reconcile one after the other.
func (t *TransactionsTable) FindByID(ctx context.Context, id int64, forUpdate bool) (*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

// List returns transactions matching the filter, newest date first. Nil filter returns all.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(transactionColumns...),
		sm.From(transactionsTable),
	}
	if filter != nil {
		if filter.Note != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("note").EQ(psql.Arg(*filter.Note))))
		}
		if filter.AccountID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("account_id").EQ(psql.Arg(*filter.AccountID))))
		}
		if filter.CategoryID != nil {
			queryMods = append(queryMods, sm.Where(psql.Quote("category_id").EQ(psql.Arg(*filter.CategoryID))))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("date")).Desc(),
		sm.OrderBy(psql.Quote("id")).Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, mapError(err)
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Insert creates a new transaction and returns the persisted row.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	query := psql.Insert(
		im.Into(transactionsTable, "type", "amount_cents", "date", "note", "category_id", "account_id"),
		im.Values(
			psql.Arg(string(create.Type)),
			psql.Arg(create.AmountCents),
			psql.Arg(create.Date.Format(time.DateOnly)),
			psql.Arg(create.Note.Ptr()),
			psql.Arg(create.CategoryID.Ptr()),
			psql.Arg(create.AccountID.Ptr()),
		),
		im.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

// Update overwrites every column of the transaction. It does not touch any
// account balance; reconciliation is the caller's job.
func (t *TransactionsTable) Update(ctx context.Context, id int64, update *TransactionCreate) (*Transaction, error) {
	query := psql.Update(
		um.Table(transactionsTable),
		um.SetCol("type").ToArg(string(update.Type)),
		um.SetCol("amount_cents").ToArg(update.AmountCents),
		um.SetCol("date").ToArg(update.Date.Format(time.DateOnly)),
		um.SetCol("note").ToArg(update.Note.Ptr()),
		um.SetCol("category_id").ToArg(update.CategoryID.Ptr()),
		um.SetCol("account_id").ToArg(update.AccountID.Ptr()),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(transactionColumns...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

func (t *TransactionsTable) Delete(ctx context.Context, id int64) (bool, error) {
	query := psql.Delete(
		dm.From(transactionsTable),
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
