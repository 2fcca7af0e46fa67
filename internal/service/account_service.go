package service

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// AccountService handles account business logic. No operation here ever
// computes a balance delta.
type AccountService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, processor ActionProcessor) *AccountService {
	return &AccountService{storage: store, processor: processor}
}

// ListAccounts returns accounts ordered by id. A nil cursor returns all of
// them; otherwise one page is returned with the cursor for the next.
func (s *AccountService) ListAccounts(ctx context.Context, cursor *AccountCursor) ([]Account, *AccountCursor, error) {
	filter := &sqlconfig.AccountFilter{}
	if cursor != nil {
		filter.Limit = cursor.Limit
		filter.Offset = cursor.Position
	}

	rows, err := s.storage.Accounts.List(ctx, filter)
	if err != nil {
		return nil, nil, translate("list accounts", err)
	}

	rows, more := trimPage(rows, filter.Limit)
	var nextCursor *AccountCursor
	if more {
		nextCursor = &AccountCursor{
			Position: filter.Offset + filter.Limit,
			Limit:    filter.Limit,
		}
	}

	return accountsFromStorage(rows), nextCursor, nil
}

// FindAccountsByName returns every account named name. Names are not unique,
// so zero or more accounts may match.
func (s *AccountService) FindAccountsByName(ctx context.Context, name string) ([]Account, error) {
	rows, err := s.storage.Accounts.List(ctx, &sqlconfig.AccountFilter{Name: &name})
	if err != nil {
		return nil, translate("find accounts by name", err)
	}
	return accountsFromStorage(rows), nil
}

// GetAccount retrieves an account by ID.
func (s *AccountService) GetAccount(ctx context.Context, id int64) (*Account, error) {
	row, err := s.storage.Accounts.FindByID(ctx, id, false)
	if err != nil {
		return nil, translate("get account", err)
	}
	account := accountFromStorage(row)
	return &account, nil
}

// CreateAccount creates an account seeded with account.Balance.
func (s *AccountService) CreateAccount(ctx context.Context, account Account) (*Account, error) {
	if err := account.validate(); err != nil {
		return nil, err
	}

	action := &actions.CreateAccount{Input: account.toStorage()}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, translate("create account", err)
	}

	created := accountFromStorage(action.Result)
	return &created, nil
}

// UpdateAccount overwrites every field of the account, balance included.
func (s *AccountService) UpdateAccount(ctx context.Context, id int64, account Account) (*Account, error) {
	if err := account.validate(); err != nil {
		return nil, err
	}

	action := &actions.UpdateAccount{ID: id, Input: account.toStorage()}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, translate("update account", err)
	}
	if !action.Found {
		return nil, translate("update account", sqlconfig.ErrNotFound)
	}

	updated := accountFromStorage(action.Result)
	return &updated, nil
}

// DeleteAccount removes the account and reports whether it existed.
// Transactions that reference it are left in place.
func (s *AccountService) DeleteAccount(ctx context.Context, id int64) (bool, error) {
	action := &actions.DeleteAccount{ID: id}
	if err := s.processor.Process(ctx, action); err != nil {
		return false, translate("delete account", err)
	}
	return action.Deleted, nil
}
