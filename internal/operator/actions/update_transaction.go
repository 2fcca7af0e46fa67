package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// UpdateTransaction overwrites a transaction and reconciles balances: the old
// effect is reversed on the old account and the new effect applied on the
// new account. Found is false when no transaction has the given ID.
type UpdateTransaction struct {
	ID    int64
	Input sqlconfig.TransactionCreate

	Found  bool
	Result *sqlconfig.Transaction
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindByID(ctx, u.ID, true)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		u.Found = false
		return nil
	}
	if err != nil {
		return err
	}

	updated, err := writer.Transactions.Update(ctx, u.ID, &u.Input)
	if err != nil {
		return err
	}

	if err := reconcile(ctx, writer.Accounts, existing, updated); err != nil {
		return err
	}

	u.Found = true
	u.Result = updated
	return nil
}
