package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

func TestUpdateAccount_OverwritesBalance(t *testing.T) {
	ctx := context.Background()
	m := newMemoryTables()
	id := seedAccount(t, m, "Main", 500)

	update := &UpdateAccount{ID: id, Input: sqlconfig.AccountCreate{Type: sqlconfig.AccountTypeEWallet, Name: "Main", Balance: 12}}
	require.NoError(t, update.Perform(ctx, m.writer()))

	assert.True(t, update.Found)
	assert.Equal(t, int64(12), m.balance(id))
	assert.Equal(t, sqlconfig.AccountTypeEWallet, update.Result.Type)
}

func TestUpdateAccount_NotFound(t *testing.T) {
	update := &UpdateAccount{ID: 999, Input: sqlconfig.AccountCreate{Type: sqlconfig.AccountTypeBank, Name: "x"}}
	require.NoError(t, update.Perform(context.Background(), newMemoryTables().writer()))

	assert.False(t, update.Found)
}

func TestDeleteAccount_KeepsTransactions(t *testing.T) {
	ctx := context.Background()
	m := newMemoryTables()
	id := seedAccount(t, m, "Main", 0)
	create := &CreateTransaction{Input: txInput(sqlconfig.TransactionTypeIncome, 10, &id)}
	require.NoError(t, create.Perform(ctx, m.writer()))

	del := &DeleteAccount{ID: id}
	require.NoError(t, del.Perform(ctx, m.writer()))

	assert.True(t, del.Deleted)
	assert.Len(t, m.transactions, 1)

	again := &DeleteAccount{ID: id}
	require.NoError(t, again.Perform(ctx, m.writer()))
	assert.False(t, again.Deleted)
}

func TestCreateCategory_DuplicateName(t *testing.T) {
	ctx := context.Background()
	m := newMemoryTables()

	first := &CreateCategory{Input: sqlconfig.CategoryCreate{Name: "Food", Type: sqlconfig.TransactionTypeExpense}}
	require.NoError(t, first.Perform(ctx, m.writer()))

	second := &CreateCategory{Input: sqlconfig.CategoryCreate{Name: "Food", Type: sqlconfig.TransactionTypeIncome}}
	err := second.Perform(ctx, m.writer())

	assert.ErrorIs(t, err, sqlconfig.ErrDuplicate)
	assert.Nil(t, second.Result)
}

func TestUpdateAndDeleteCategory(t *testing.T) {
	ctx := context.Background()
	m := newMemoryTables()
	create := &CreateCategory{Input: sqlconfig.CategoryCreate{Name: "Food", Type: sqlconfig.TransactionTypeExpense}}
	require.NoError(t, create.Perform(ctx, m.writer()))

	update := &UpdateCategory{ID: create.Result.ID, Input: sqlconfig.CategoryCreate{Name: "Groceries", Type: sqlconfig.TransactionTypeExpense, Color: "#00FF00"}}
	require.NoError(t, update.Perform(ctx, m.writer()))
	assert.True(t, update.Found)
	assert.Equal(t, "Groceries", update.Result.Name)

	missing := &UpdateCategory{ID: 999, Input: sqlconfig.CategoryCreate{Name: "x"}}
	require.NoError(t, missing.Perform(ctx, m.writer()))
	assert.False(t, missing.Found)

	del := &DeleteCategory{ID: create.Result.ID}
	require.NoError(t, del.Perform(ctx, m.writer()))
	assert.True(t, del.Deleted)
}
