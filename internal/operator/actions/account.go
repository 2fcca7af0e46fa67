package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CreateAccount inserts an account seeded with Input.Balance.
type CreateAccount struct {
	Input sqlconfig.AccountCreate

	Result *sqlconfig.Account
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Accounts.Insert(ctx, &c.Input)
	if err != nil {
		return err
	}
	c.Result = created
	return nil
}

// UpdateAccount blindly overwrites an account, balance included. It is the
// manual correction path and never computes a delta.
type UpdateAccount struct {
	ID    int64
	Input sqlconfig.AccountCreate

	Found  bool
	Result *sqlconfig.Account
}

func (u *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	updated, err := writer.Accounts.Update(ctx, u.ID, &u.Input)
	if errors.Is(err, sqlconfig.ErrNotFound) {
		u.Found = false
		return nil
	}
	if err != nil {
		return err
	}
	u.Found = true
	u.Result = updated
	return nil
}

// DeleteAccount removes an account. Transactions referencing it are kept.
type DeleteAccount struct {
	ID int64

	Deleted bool
}

func (d *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Accounts.Delete(ctx, d.ID)
	if err != nil {
		return err
	}
	d.Deleted = deleted
	return nil
}
