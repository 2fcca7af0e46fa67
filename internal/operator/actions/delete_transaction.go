package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// DeleteTransaction removes a transaction and reverses its effect on the
// linked account. Deleted is false when no transaction has the given ID.
type DeleteTransaction struct {
	ID int64

	Deleted bool
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindByID(ctx, d.ID, true)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		d.Deleted = false
		return nil
	}
	if err != nil {
		return err
	}

	if err := reconcile(ctx, writer.Accounts, existing, nil); err != nil {
		return err
	}

	deleted, err := writer.Transactions.Delete(ctx, d.ID)
	if err != nil {
		return err
	}

	d.Deleted = deleted
	return nil
}
