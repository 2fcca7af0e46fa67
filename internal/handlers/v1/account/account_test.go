package account

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/service"
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) ListAccounts(ctx context.Context, cursor *service.AccountCursor) ([]service.Account, *service.AccountCursor, error) {
	args := m.Called(ctx, cursor)
	accounts, _ := args.Get(0).([]service.Account)
	next, _ := args.Get(1).(*service.AccountCursor)
	return accounts, next, args.Error(2)
}

func (m *mockAccountService) FindAccountsByName(ctx context.Context, name string) ([]service.Account, error) {
	args := m.Called(ctx, name)
	accounts, _ := args.Get(0).([]service.Account)
	return accounts, args.Error(1)
}

func (m *mockAccountService) GetAccount(ctx context.Context, id int64) (*service.Account, error) {
	args := m.Called(ctx, id)
	account, _ := args.Get(0).(*service.Account)
	return account, args.Error(1)
}

func (m *mockAccountService) CreateAccount(ctx context.Context, account service.Account) (*service.Account, error) {
	args := m.Called(ctx, account)
	created, _ := args.Get(0).(*service.Account)
	return created, args.Error(1)
}

func (m *mockAccountService) UpdateAccount(ctx context.Context, id int64, account service.Account) (*service.Account, error) {
	args := m.Called(ctx, id, account)
	updated, _ := args.Get(0).(*service.Account)
	return updated, args.Error(1)
}

func (m *mockAccountService) DeleteAccount(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockAccountService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListAccountsHandler(svc).Register(api)
	NewFindAccountsByNameHandler(svc).Register(api)
	NewGetAccountHandler(svc).Register(api)
	NewCreateAccountHandler(svc).Register(api)
	NewUpdateAccountHandler(svc).Register(api)
	NewDeleteAccountHandler(svc).Register(api)
	return api
}

var mainAccount = service.Account{ID: 1, Type: service.AccountTypeBank, Name: "Main", Balance: 50000, Icon: "bank"}

// -- list --

func TestHTTP_ListAccounts_All(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("ListAccounts", mock.Anything, (*service.AccountCursor)(nil)).
		Return([]service.Account{mainAccount}, (*service.AccountCursor)(nil), nil)

	resp := newTestAPI(t, svc).Get("/v1/accounts")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Accounts, 1)
	assert.Equal(t, "bank", body.Accounts[0].Type)
	assert.Equal(t, int64(50000), body.Accounts[0].Balance)
	assert.Nil(t, body.NextCursor)
	svc.AssertExpectations(t)
}

func TestHTTP_ListAccounts_Paged(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("ListAccounts", mock.Anything, &service.AccountCursor{Position: 0, Limit: 1}).
		Return([]service.Account{mainAccount}, &service.AccountCursor{Position: 1, Limit: 1}, nil)

	resp := newTestAPI(t, svc).Get("/v1/accounts?limit=1")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, 1, body.NextCursor.Position)
}

func TestHTTP_ListAccounts_EmptyIsArray(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("ListAccounts", mock.Anything, mock.Anything).
		Return([]service.Account{}, (*service.AccountCursor)(nil), nil)

	resp := newTestAPI(t, svc).Get("/v1/accounts")

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"accounts":[]`)
}

// -- by name --

func TestHTTP_FindAccountsByName(t *testing.T) {
	svc := new(mockAccountService)
	other := mainAccount
	other.ID = 2
	svc.On("FindAccountsByName", mock.Anything, "Main").Return([]service.Account{mainAccount, other}, nil)

	resp := newTestAPI(t, svc).Get("/v1/accounts/by-name/Main")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body struct {
		Accounts []Account `json:"accounts"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Accounts, 2)
}

func TestHTTP_FindAccountsByName_NoMatch(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("FindAccountsByName", mock.Anything, "Ghost").Return([]service.Account{}, nil)

	resp := newTestAPI(t, svc).Get("/v1/accounts/by-name/Ghost")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

// -- get --

func TestHTTP_GetAccount_NotFound(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("GetAccount", mock.Anything, int64(9)).Return(nil, service.ErrNotFound)

	resp := newTestAPI(t, svc).Get("/v1/account/9")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

// -- create --

func TestHTTP_CreateAccount_Success(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("CreateAccount", mock.Anything, service.Account{Type: service.AccountTypeBank, Name: "Main", Balance: 50000}).
		Return(&service.Account{ID: 1, Type: service.AccountTypeBank, Name: "Main", Balance: 50000}, nil)

	resp := newTestAPI(t, svc).Post("/v1/account", map[string]any{
		"type":    "bank",
		"name":    "Main",
		"balance": 50000,
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Account
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(1), body.ID)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateAccount_DefaultsBalance(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("CreateAccount", mock.Anything, service.Account{Type: service.AccountTypeEWallet, Name: "Wallet"}).
		Return(&service.Account{ID: 2, Type: service.AccountTypeEWallet, Name: "Wallet"}, nil)

	resp := newTestAPI(t, svc).Post("/v1/account", map[string]any{"type": "ewallet", "name": "Wallet"})

	assert.Equal(t, http.StatusCreated, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateAccount_InvalidType(t *testing.T) {
	svc := new(mockAccountService)

	resp := newTestAPI(t, svc).Post("/v1/account", map[string]any{"type": "cash", "name": "Main"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
}

// -- update --

func TestHTTP_UpdateAccount_Overwrite(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("UpdateAccount", mock.Anything, int64(1), service.Account{Type: service.AccountTypeBank, Name: "Main", Balance: 12}).
		Return(&service.Account{ID: 1, Type: service.AccountTypeBank, Name: "Main", Balance: 12}, nil)

	resp := newTestAPI(t, svc).Patch("/v1/account/1", map[string]any{"type": "bank", "name": "Main", "balance": 12})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Account
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, int64(12), body.Balance)
}

func TestHTTP_UpdateAccount_NotFound(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("UpdateAccount", mock.Anything, int64(5), mock.Anything).Return(nil, service.ErrNotFound)

	resp := newTestAPI(t, svc).Patch("/v1/account/5", map[string]any{"type": "bank", "name": "Main", "balance": 0})

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

// -- delete --

func TestHTTP_DeleteAccount(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("DeleteAccount", mock.Anything, int64(1)).Return(true, nil)
	svc.On("DeleteAccount", mock.Anything, int64(2)).Return(false, nil)
	api := newTestAPI(t, svc)

	assert.Equal(t, http.StatusNoContent, api.Delete("/v1/account/1").Code)
	assert.Equal(t, http.StatusNotFound, api.Delete("/v1/account/2").Code)
}
