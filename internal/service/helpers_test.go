package service

import (
	"context"
	"testing"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type noopUnitOfWork struct{}

func (noopUnitOfWork) Commit(context.Context) error   { return nil }
func (noopUnitOfWork) Rollback(context.Context) error { return nil }

// inlineProcessor performs actions synchronously against the mocked tables.
type inlineProcessor struct {
	tables storage.Tables
}

func (p inlineProcessor) Process(ctx context.Context, action actions.IAction) error {
	return action.Perform(ctx, storage.NewWriterFromTables(noopUnitOfWork{}, p.tables))
}

type testTables struct {
	accounts     *sqlconfig.MockIAccountTable
	categories   *sqlconfig.MockICategoryTable
	transactions *sqlconfig.MockITransactionTable
}

func newTestService(t *testing.T) (*Service, testTables) {
	t.Helper()
	mocks := testTables{
		accounts:     sqlconfig.NewMockIAccountTable(t),
		categories:   sqlconfig.NewMockICategoryTable(t),
		transactions: sqlconfig.NewMockITransactionTable(t),
	}
	tables := storage.Tables{
		Accounts:     mocks.accounts,
		Categories:   mocks.categories,
		Transactions: mocks.transactions,
	}
	store := &storage.Storage{Tables: tables}
	return NewService(store, inlineProcessor{tables: tables}), mocks
}

func ptr[T any](v T) *T {
	return &v
}
