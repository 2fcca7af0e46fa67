package service

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CategoryService handles category business logic.
type CategoryService struct {
	storage   *storage.Storage
	processor ActionProcessor
}

func NewCategoryService(store *storage.Storage, processor ActionProcessor) *CategoryService {
	return &CategoryService{storage: store, processor: processor}
}

// ListCategories returns all categories, optionally narrowed to one type.
func (s *CategoryService) ListCategories(ctx context.Context, categoryType *TransactionType) ([]Category, error) {
	filter := &sqlconfig.CategoryFilter{}
	if categoryType != nil {
		if !categoryType.Valid() {
			return nil, constraintViolation("category type %q must be income or expense", *categoryType)
		}
		storageType := sqlconfig.TransactionType(*categoryType)
		filter.Type = &storageType
	}

	rows, err := s.storage.Categories.List(ctx, filter)
	if err != nil {
		return nil, translate("list categories", err)
	}

	categories := make([]Category, len(rows))
	for i, row := range rows {
		categories[i] = categoryFromStorage(row)
	}
	return categories, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id int64) (*Category, error) {
	row, err := s.storage.Categories.FindByID(ctx, id)
	if err != nil {
		return nil, translate("get category", err)
	}
	category := categoryFromStorage(row)
	return &category, nil
}

// CreateCategory creates a category. A name already in use is ErrConflict.
func (s *CategoryService) CreateCategory(ctx context.Context, category Category) (*Category, error) {
	category = category.withDefaults()
	if err := category.validate(); err != nil {
		return nil, err
	}

	action := &actions.CreateCategory{Input: category.toStorage()}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, translate("create category", err)
	}

	created := categoryFromStorage(action.Result)
	return &created, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id int64, category Category) (*Category, error) {
	category = category.withDefaults()
	if err := category.validate(); err != nil {
		return nil, err
	}

	action := &actions.UpdateCategory{ID: id, Input: category.toStorage()}
	if err := s.processor.Process(ctx, action); err != nil {
		return nil, translate("update category", err)
	}
	if !action.Found {
		return nil, translate("update category", sqlconfig.ErrNotFound)
	}

	updated := categoryFromStorage(action.Result)
	return &updated, nil
}

// DeleteCategory removes the category. Transactions keep their category id.
func (s *CategoryService) DeleteCategory(ctx context.Context, id int64) (bool, error) {
	action := &actions.DeleteCategory{ID: id}
	if err := s.processor.Process(ctx, action); err != nil {
		return false, translate("delete category", err)
	}
	return action.Deleted, nil
}
