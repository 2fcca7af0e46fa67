package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type CreateCategory struct {
	Input sqlconfig.CategoryCreate

	Result *sqlconfig.Category
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	created, err := writer.Categories.Insert(ctx, &c.Input)
	if err != nil {
		return err
	}
	c.Result = created
	return nil
}

type UpdateCategory struct {
	ID    int64
	Input sqlconfig.CategoryCreate

	Found  bool
	Result *sqlconfig.Category
}

func (u *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	updated, err := writer.Categories.Update(ctx, u.ID, &u.Input)
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

// DeleteCategory removes a category. Transactions keep the dangling id.
type DeleteCategory struct {
	ID int64

	Deleted bool
}

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Categories.Delete(ctx, d.ID)
	if err != nil {
		return err
	}
	d.Deleted = deleted
	return nil
}
