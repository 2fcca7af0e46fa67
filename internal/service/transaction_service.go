package service

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic. Every write is
// reconciled against the linked account's balance in the same unit of work.
type TransactionService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, processor ActionProcessor) *TransactionService {
	return &TransactionService{storage: store, processor: processor}
}

// ListTransactions returns transactions newest first. A nil cursor returns
// every match; otherwise one page is returned with the cursor for the next.
func (s *TransactionService) ListTransactions(ctx context.Context, filter TransactionFilter, cursor *TransactionCursor) ([]Transaction, *TransactionCursor, error) {
	storageFilter := &sqlconfig.TransactionFilter{
		AccountID:  filter.AccountID,
		CategoryID: filter.CategoryID,
	}
	if cursor != nil {
		storageFilter.Limit = cursor.Limit
		storageFilter.Offset = cursor.Position
	}

	rows, err := s.storage.Transactions.List(ctx, storageFilter)
	if err != nil {
		return nil, nil, translate("list transactions", err)
	}

	rows, more := trimPage(rows, storageFilter.Limit)
	var nextCursor *TransactionCursor
	if more {
		nextCursor = &TransactionCursor{
			Position: storageFilter.Offset + storageFilter.Limit,
			Limit:    storageFilter.Limit,
		}
	}

	return transactionsFromStorage(rows), nextCursor, nil
}

// FindTransactionsByNote returns every transaction whose note equals note
// exactly. Zero or more transactions may match.
func (s *TransactionService) FindTransactionsByNote(ctx context.Context, note string) ([]Transaction, error) {
	rows, err := s.storage.Transactions.List(ctx, &sqlconfig.TransactionFilter{Note: &note})
	if err != nil {
		return nil, translate("find transactions by note", err)
	}
	return transactionsFromStorage(rows), nil
}

func (s *TransactionService) GetTransaction(ctx context.Context, id int64) (*Transaction, error) {
	row, err := s.storage.Transactions.FindByID(ctx, id, false)
	if err != nil {
		return nil, translate("get transaction", err)
	}
	transaction := transactionFromStorage(row)
	return &transaction, nil
}

// CreateTransaction stores the transaction and applies its signed amount to
// the linked account. Pointing at an unknown account is a constraint
// violation and nothing is written.
func (s *TransactionService) CreateTransaction(ctx context.Context, transaction Transaction) (*Transaction, error) {
	if err := transaction.validate(); err != nil {
		return nil, err
	}

	action := &actions.CreateTransaction{Input: transaction.toStorage()}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, translate("create transaction", err)
	}

	created := transactionFromStorage(action.Result)
	return &created, nil
}

// UpdateTransaction overwrites the transaction, reversing its old effect and
// applying the new one.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id int64, transaction Transaction) (*Transaction, error) {
	if err := transaction.validate(); err != nil {
		return nil, err
	}

	action := &actions.UpdateTransaction{ID: id, Input: transaction.toStorage()}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, translate("update transaction", err)
	}
	if !action.Found {
		return nil, translate("update transaction", sqlconfig.ErrNotFound)
	}

	updated := transactionFromStorage(action.Result)
	return &updated, nil
}

// DeleteTransaction removes the transaction and reverses its effect. It
// reports false when no such transaction exists.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id int64) (bool, error) {
	action := &actions.DeleteTransaction{ID: id}
	if err := s.processor.Process(ctx, action); err != nil {
		return false, translate("delete transaction", err)
	}
	return action.Deleted, nil
}
