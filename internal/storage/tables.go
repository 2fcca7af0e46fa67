package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Tables groups the entity tables bound to a single executor.
type Tables struct {
	Accounts     sqlconfig.IAccountTable
	Categories   sqlconfig.ICategoryTable
	Transactions sqlconfig.ITransactionTable
}

func NewTables(exec bob.Executor) Tables {
	return Tables{
		Accounts:     sqlconfig.NewAccountsTable(exec),
		Categories:   sqlconfig.NewCategoriesTable(exec),
		Transactions: sqlconfig.NewTransactionsTable(exec),
	}
}
