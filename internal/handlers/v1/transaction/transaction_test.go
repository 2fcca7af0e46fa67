package transaction

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, filter service.TransactionFilter, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error) {
	args := m.Called(ctx, filter, cursor)
	txs, _ := args.Get(0).([]service.Transaction)
	next, _ := args.Get(1).(*service.TransactionCursor)
	return txs, next, args.Error(2)
}

func (m *mockTransactionService) FindTransactionsByNote(ctx context.Context, note string) ([]service.Transaction, error) {
	args := m.Called(ctx, note)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, id int64) (*service.Transaction, error) {
	args := m.Called(ctx, id)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, transaction service.Transaction) (*service.Transaction, error) {
	args := m.Called(ctx, transaction)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, id int64, transaction service.Transaction) (*service.Transaction, error) {
	args := m.Called(ctx, id, transaction)
	tx, _ := args.Get(0).(*service.Transaction)
	return tx, args.Error(1)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockTransactionService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	NewFindTransactionsByNoteHandler(svc).Register(api)
	NewGetTransactionHandler(svc).Register(api)
	NewCreateTransactionHandler(svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
	return api
}

var lunchDate = time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T {
	return &v
}

func lunch() service.Transaction {
	return service.Transaction{
		ID:          10,
		Type:        service.TransactionTypeExpense,
		AmountCents: 1000,
		Date:        lunchDate,
		Note:        ptr("lunch"),
		AccountID:   ptr(int64(1)),
	}
}

// -- parseListTransactionsInput unit tests --

func TestParseListTransactionsInput_NoCursor(t *testing.T) {
	filter, cursor := parseListTransactionsInput(&ListTransactionsInput{})

	assert.Nil(t, cursor)
	assert.Nil(t, filter.AccountID)
	assert.Nil(t, filter.CategoryID)
}

func TestParseListTransactionsInput_WithFiltersAndCursor(t *testing.T) {
	filter, cursor := parseListTransactionsInput(&ListTransactionsInput{
		AccountID: 3, CategoryID: 4, Position: 40, Limit: 10,
	})

	require.NotNil(t, cursor)
	assert.Equal(t, 40, cursor.Position)
	assert.Equal(t, 10, cursor.Limit)
	assert.Equal(t, int64(3), *filter.AccountID)
	assert.Equal(t, int64(4), *filter.CategoryID)
}

// -- HTTP tests --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	svc := new(mockTransactionService)
	input := lunch()
	input.ID = 0
	svc.On("CreateTransaction", mock.Anything, input).Return(ptr(lunch()), nil)

	resp := newTestAPI(t, svc).Post("/v1/transaction", map[string]any{
		"type":        "expense",
		"amountCents": 1000,
		"date":        "2024-01-15",
		"note":        "lunch",
		"accountID":   1,
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(10), body.ID)
	assert.Equal(t, "2024-01-15", body.Date)
	assert.Equal(t, int64(1), *body.AccountID)
	assert.Nil(t, body.CategoryID)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"bad type", map[string]any{"type": "transfer", "amountCents": 1, "date": "2024-01-15"}},
		{"negative amount", map[string]any{"type": "income", "amountCents": -1, "date": "2024-01-15"}},
		{"bad date", map[string]any{"type": "income", "amountCents": 1, "date": "15/01/2024"}},
		{"missing amount", map[string]any{"type": "income", "date": "2024-01-15"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockTransactionService)

			resp := newTestAPI(t, svc).Post("/v1/transaction", tt.body)

			assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
			svc.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
		})
	}
}

func TestHTTP_CreateTransaction_UnknownAccount(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("create transaction: %w: %w", service.ErrConstraintViolation, actions.ErrUnknownAccount))

	resp := newTestAPI(t, svc).Post("/v1/transaction", map[string]any{
		"type": "income", "amountCents": 5, "date": "2024-01-15", "accountID": 404,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_CreateTransaction_InternalError(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("create transaction: %w", service.ErrInternal))

	resp := newTestAPI(t, svc).Post("/v1/transaction", map[string]any{
		"type": "income", "amountCents": 5, "date": "2024-01-15",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_UpdateTransaction(t *testing.T) {
	svc := new(mockTransactionService)
	updated := lunch()
	updated.AmountCents = 2000
	input := updated
	input.ID = 0
	svc.On("UpdateTransaction", mock.Anything, int64(10), input).Return(&updated, nil)

	resp := newTestAPI(t, svc).Patch("/v1/transaction/10", map[string]any{
		"type": "expense", "amountCents": 2000, "date": "2024-01-15", "note": "lunch", "accountID": 1,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(2000), body.AmountCents)
	svc.AssertExpectations(t)
}

func TestHTTP_UpdateTransaction_NotFound(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("UpdateTransaction", mock.Anything, int64(999), mock.Anything).Return(nil, service.ErrNotFound)

	resp := newTestAPI(t, svc).Patch("/v1/transaction/999", map[string]any{
		"type": "expense", "amountCents": 1, "date": "2024-01-15",
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_DeleteTransaction(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("DeleteTransaction", mock.Anything, int64(10)).Return(true, nil)
	svc.On("DeleteTransaction", mock.Anything, int64(999)).Return(false, nil)
	api := newTestAPI(t, svc)

	assert.Equal(t, http.StatusNoContent, api.Delete("/v1/transaction/10").Code)
	assert.Equal(t, http.StatusNotFound, api.Delete("/v1/transaction/999").Code)
}

func TestHTTP_ListTransactions_Filtered(t *testing.T) {
	svc := new(mockTransactionService)
	accountID := int64(1)
	svc.On("ListTransactions", mock.Anything, service.TransactionFilter{AccountID: &accountID}, &service.TransactionCursor{Position: 0, Limit: 1}).
		Return([]service.Transaction{lunch()}, &service.TransactionCursor{Position: 1, Limit: 1}, nil)

	resp := newTestAPI(t, svc).Get("/v1/transactions?accountID=1&limit=1")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Transactions, 1)
	assert.Equal(t, "lunch", *body.Transactions[0].Note)
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, 1, body.NextCursor.Position)
	svc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_All(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("ListTransactions", mock.Anything, service.TransactionFilter{}, (*service.TransactionCursor)(nil)).
		Return([]service.Transaction{}, (*service.TransactionCursor)(nil), nil)

	resp := newTestAPI(t, svc).Get("/v1/transactions")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"transactions":[]`)
	assert.NotContains(t, resp.Body.String(), "nextCursor")
}

func TestHTTP_FindTransactionsByNote(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("FindTransactionsByNote", mock.Anything, "lunch").Return([]service.Transaction{lunch()}, nil)
	svc.On("FindTransactionsByNote", mock.Anything, "dinner").Return([]service.Transaction{}, nil)
	api := newTestAPI(t, svc)

	assert.Equal(t, http.StatusOK, api.Get("/v1/transactions/by-note/lunch").Code)
	assert.Equal(t, http.StatusNotFound, api.Get("/v1/transactions/by-note/dinner").Code)
}

func TestHTTP_GetTransaction(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("GetTransaction", mock.Anything, int64(10)).Return(ptr(lunch()), nil)
	svc.On("GetTransaction", mock.Anything, int64(11)).Return(nil, service.ErrNotFound)
	api := newTestAPI(t, svc)

	resp := api.Get("/v1/transaction/10")
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"amountCents":1000`)

	assert.Equal(t, http.StatusNotFound, api.Get("/v1/transaction/11").Code)
}
