package service

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// ActionProcessor runs a write action in its own unit of work.
// *operator.OperatorDelegator satisfies it.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Account     *AccountService
	Category    *CategoryService
	Transaction *TransactionService
}

// NewService creates a new Service. Reads go to store directly and writes go
// through processor.
func NewService(store *storage.Storage, processor ActionProcessor) *Service {
	return &Service{
		Account:     NewAccountService(store, processor),
		Category:    NewCategoryService(store, processor),
		Transaction: NewTransactionService(store, processor),
	}
}

// trimPage cuts rows fetched with one extra element down to limit and reports
// whether a further page exists. A non-positive limit means unpaginated.
func trimPage[T any](rows []T, limit int) ([]T, bool) {
	if limit <= 0 || len(rows) <= limit {
		return rows, false
	}
	return rows[:limit], true
}
