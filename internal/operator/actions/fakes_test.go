package actions

import (
	"context"
	"sort"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// memoryTables is an in-memory stand-in for the three tables, enough to
// check balance arithmetic without a database.
type memoryTables struct {
	nextID       int64
	accounts     map[int64]*sqlconfig.Account
	categories   map[int64]*sqlconfig.Category
	transactions map[int64]*sqlconfig.Transaction
}

func newMemoryTables() *memoryTables {
	return &memoryTables{
		accounts:     map[int64]*sqlconfig.Account{},
		categories:   map[int64]*sqlconfig.Category{},
		transactions: map[int64]*sqlconfig.Transaction{},
	}
}

func (m *memoryTables) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memoryTables) writer() *storage.Writer {
	return storage.NewWriterFromTables(noopUnitOfWork{}, storage.Tables{
		Accounts:     memoryAccounts{m},
		Categories:   memoryCategories{m},
		Transactions: memoryTransactions{m},
	})
}

func (m *memoryTables) balance(id int64) int64 {
	return m.accounts[id].Balance
}

type noopUnitOfWork struct{}

func (noopUnitOfWork) Commit(context.Context) error   { return nil }
func (noopUnitOfWork) Rollback(context.Context) error { return nil }

type memoryAccounts struct{ m *memoryTables }

func (a memoryAccounts) FindByID(_ context.Context, id int64, _ bool) (*sqlconfig.Account, error) {
	acc, ok := a.m.accounts[id]
	if !ok {
		return nil, sqlconfig.ErrNotFound
	}
	out := *acc
	return &out, nil
}

func (a memoryAccounts) List(_ context.Context, filter *sqlconfig.AccountFilter) ([]*sqlconfig.Account, error) {
	var out []*sqlconfig.Account
	for _, acc := range a.m.accounts {
		if filter != nil && filter.Name != nil && acc.Name != *filter.Name {
			continue
		}
		c := *acc
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (a memoryAccounts) Insert(_ context.Context, create *sqlconfig.AccountCreate) (*sqlconfig.Account, error) {
	acc := &sqlconfig.Account{
		ID:      a.m.id(),
		Type:    create.Type,
		Name:    create.Name,
		Balance: create.Balance,
		Icon:    create.Icon,
	}
	a.m.accounts[acc.ID] = acc
	out := *acc
	return &out, nil
}

func (a memoryAccounts) Update(_ context.Context, id int64, update *sqlconfig.AccountCreate) (*sqlconfig.Account, error) {
	if _, ok := a.m.accounts[id]; !ok {
		return nil, sqlconfig.ErrNotFound
	}
	acc := &sqlconfig.Account{ID: id, Type: update.Type, Name: update.Name, Balance: update.Balance, Icon: update.Icon}
	a.m.accounts[id] = acc
	out := *acc
	return &out, nil
}

func (a memoryAccounts) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := a.m.accounts[id]; !ok {
		return false, nil
	}
	delete(a.m.accounts, id)
	return true, nil
}

func (a memoryAccounts) AddToBalance(_ context.Context, id int64, delta int64) (int64, error) {
	acc, ok := a.m.accounts[id]
	if !ok {
		return 0, sqlconfig.ErrNotFound
	}
	acc.Balance += delta
	return acc.Balance, nil
}

type memoryCategories struct{ m *memoryTables }

func (c memoryCategories) FindByID(_ context.Context, id int64) (*sqlconfig.Category, error) {
	cat, ok := c.m.categories[id]
	if !ok {
		return nil, sqlconfig.ErrNotFound
	}
	out := *cat
	return &out, nil
}

func (c memoryCategories) List(context.Context, *sqlconfig.CategoryFilter) ([]*sqlconfig.Category, error) {
	var out []*sqlconfig.Category
	for _, cat := range c.m.categories {
		cp := *cat
		out = append(out, &cp)
	}
	return out, nil
}

func (c memoryCategories) Insert(_ context.Context, create *sqlconfig.CategoryCreate) (*sqlconfig.Category, error) {
	for _, existing := range c.m.categories {
		if existing.Name == create.Name {
			return nil, sqlconfig.ErrDuplicate
		}
	}
	cat := &sqlconfig.Category{ID: c.m.id(), Name: create.Name, Type: create.Type, Icon: create.Icon, Color: create.Color}
	c.m.categories[cat.ID] = cat
	out := *cat
	return &out, nil
}

func (c memoryCategories) Update(_ context.Context, id int64, update *sqlconfig.CategoryCreate) (*sqlconfig.Category, error) {
	if _, ok := c.m.categories[id]; !ok {
		return nil, sqlconfig.ErrNotFound
	}
	cat := &sqlconfig.Category{ID: id, Name: update.Name, Type: update.Type, Icon: update.Icon, Color: update.Color}
	c.m.categories[id] = cat
	out := *cat
	return &out, nil
}

func (c memoryCategories) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := c.m.categories[id]; !ok {
		return false, nil
	}
	delete(c.m.categories, id)
	return true, nil
}

type memoryTransactions struct{ m *memoryTables }

func (t memoryTransactions) FindByID(_ context.Context, id int64, _ bool) (*sqlconfig.Transaction, error) {
	tx, ok := t.m.transactions[id]
	if !ok {
		return nil, sqlconfig.ErrNotFound
	}
	out := *tx
	return &out, nil
}

func (t memoryTransactions) List(context.Context, *sqlconfig.TransactionFilter) ([]*sqlconfig.Transaction, error) {
	var out []*sqlconfig.Transaction
	for _, tx := range t.m.transactions {
		cp := *tx
		out = append(out, &cp)
	}
	return out, nil
}

func (t memoryTransactions) Insert(_ context.Context, create *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
	tx := fromCreate(t.m.id(), create)
	t.m.transactions[tx.ID] = tx
	out := *tx
	return &out, nil
}

func (t memoryTransactions) Update(_ context.Context, id int64, update *sqlconfig.TransactionCreate) (*sqlconfig.Transaction, error) {
	if _, ok := t.m.transactions[id]; !ok {
		return nil, sqlconfig.ErrNotFound
	}
	tx := fromCreate(id, update)
	t.m.transactions[id] = tx
	out := *tx
	return &out, nil
}

func (t memoryTransactions) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := t.m.transactions[id]; !ok {
		return false, nil
	}
	delete(t.m.transactions, id)
	return true, nil
}

func fromCreate(id int64, create *sqlconfig.TransactionCreate) *sqlconfig.Transaction {
	return &sqlconfig.Transaction{
		ID:          id,
		Type:        create.Type,
		AmountCents: create.AmountCents,
		Date:        create.Date,
		Note:        create.Note,
		CategoryID:  create.CategoryID,
		AccountID:   create.AccountID,
	}
}
