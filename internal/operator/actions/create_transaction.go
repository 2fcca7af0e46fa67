package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CreateTransaction inserts a transaction and applies its effect to the
// linked account, if any.
type CreateTransaction struct {
	Input sqlconfig.TransactionCreate

	Result *sqlconfig.Transaction
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Transactions.Insert(ctx, &c.Input)
	if err != nil {
		return err
	}

	if err := reconcile(ctx, writer.Accounts, nil, created); err != nil {
		return err
	}

	c.Result = created
	return nil
}
