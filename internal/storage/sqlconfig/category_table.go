package sqlconfig

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const categoriesTable = "categories"

var categoryColumns = []any{"id", "name", "type", "icon", "color"}

// Category represents a category record. Name is unique.
type Category struct {
	ID    int64           `db:"id"`
	Name  string          `db:"name"`
	Type  TransactionType `db:"type"`
	Icon  string          `db:"icon"`
	Color string          `db:"color"`
}

// CategoryCreate is the input for creating a category and for overwriting one.
type CategoryCreate struct {
	Name  string
	Type  TransactionType
	Icon  string
	Color string
}

// CategoryFilter specifies filters for listing categories.
type CategoryFilter struct {
	Type *TransactionType
}

// ICategoryTable defines the interface for category storage operations.
//
//go:generate mockery --name ICategoryTable --output . --outpkg sqlconfig --filename mock_ICategoryTable.go --with-expecter
type ICategoryTable interface {
	FindByID(ctx context.Context, id int64) (*Category, error)
	List(ctx context.Context, filter *CategoryFilter) ([]*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
	Update(ctx context.Context, id int64, update *CategoryCreate) (*Category, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// CategoriesTable provides access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

var _ ICategoryTable = (*CategoriesTable)(nil)

func NewCategoriesTable(exec bob.Executor) *CategoriesTable {
	return &CategoriesTable{exec: exec}
}

func (t *CategoriesTable) FindByID(ctx context.Context, id int64) (*Category, error) {
	query := psql.Select(
		sm.Columns(categoryColumns...),
		sm.From(categoriesTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Category]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

func (t *CategoriesTable) List(ctx context.Context, filter *CategoryFilter) ([]*Category, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(categoryColumns...),
		sm.From(categoriesTable),
	}
	if filter != nil && filter.Type != nil {
		queryMods = append(queryMods, sm.Where(psql.Quote("type").EQ(psql.Arg(string(*filter.Type)))))
	}
	queryMods = append(queryMods, sm.OrderBy(psql.Quote("id")).Asc())

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Category]())
	if err != nil {
		return nil, mapError(err)
	}
	result := make([]*Category, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

// Insert creates a category. A taken name yields ErrDuplicate.
func (t *CategoriesTable) Insert(ctx context.Context, create *CategoryCreate) (*Category, error) {
	query := psql.Insert(
		im.Into(categoriesTable, "name", "type", "icon", "color"),
		im.Values(
			psql.Arg(create.Name),
			psql.Arg(string(create.Type)),
			psql.Arg(create.Icon),
			psql.Arg(create.Color),
		),
		im.Returning(categoryColumns...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Category]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

// Update overwrites the category. Renaming onto a taken name yields ErrDuplicate.
func (t *CategoriesTable) Update(ctx context.Context, id int64, update *CategoryCreate) (*Category, error) {
	query := psql.Update(
		um.Table(categoriesTable),
		um.SetCol("name").ToArg(update.Name),
		um.SetCol("type").ToArg(string(update.Type)),
		um.SetCol("icon").ToArg(update.Icon),
		um.SetCol("color").ToArg(update.Color),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
		um.Returning(categoryColumns...),
	)
	row, err := bob.One(ctx, t.exec, query, scan.StructMapper[Category]())
	if err != nil {
		return nil, mapError(err)
	}
	return &row, nil
}

// Delete removes the category. Transactions pointing at it keep the dangling id.
func (t *CategoriesTable) Delete(ctx context.Context, id int64) (bool, error) {
	query := psql.Delete(
		dm.From(categoriesTable),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, t.exec, query)
	if err != nil {
		return false, mapError(err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}
