package service

import (
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

const defaultCategoryColor = "amber"

// Category represents a category in the service layer. Name is unique.
type Category struct {
	ID    int64
	Name  string
	Type  TransactionType
	Icon  string
	Color string
}

// withDefaults fills the fields a caller may leave out.
func (c Category) withDefaults() Category {
	if c.Type == "" {
		c.Type = TransactionTypeExpense
	}
	if c.Color == "" {
		c.Color = defaultCategoryColor
	}
	return c
}

func (c Category) validate() error {
	if !c.Type.Valid() {
		return constraintViolation("category type %q must be income or expense", c.Type)
	}
	if c.Name == "" {
		return constraintViolation("category name must not be empty")
	}
	return nil
}

func (c Category) toStorage() sqlconfig.CategoryCreate {
	return sqlconfig.CategoryCreate{
		Name:  c.Name,
		Type:  sqlconfig.TransactionType(c.Type),
		Icon:  c.Icon,
		Color: c.Color,
	}
}

func categoryFromStorage(row *sqlconfig.Category) Category {
	return Category{
		ID:    row.ID,
		Name:  row.Name,
		Type:  TransactionType(row.Type),
		Icon:  row.Icon,
		Color: row.Color,
	}
}
