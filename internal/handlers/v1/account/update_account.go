package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateAccountBody replaces every field of the account. The balance is taken
// as given so it can be corrected by hand.
type UpdateAccountBody struct {
	Type    string `json:"type" enum:"bank,ewallet" doc:"Account type"`
	Name    string `json:"name" minLength:"1" doc:"Account name"`
	Balance int64  `json:"balance" doc:"Balance in minor currency units"`
	Icon    string `json:"icon,omitempty" doc:"Icon name"`
}

type UpdateAccountInput struct {
	AccountIDPath
	Body UpdateAccountBody
}

type UpdateAccountOutput struct {
	Body Account
}

type accountUpdater interface {
	UpdateAccount(ctx context.Context, id int64, account service.Account) (*service.Account, error)
}

// UpdateAccountHandler handles PATCH /v1/account/{id}.
type UpdateAccountHandler struct {
	AccountService accountUpdater
}

func NewUpdateAccountHandler(svc accountUpdater) *UpdateAccountHandler {
	return &UpdateAccountHandler{AccountService: svc}
}

func (h *UpdateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-account",
		Method:      http.MethodPatch,
		Path:        "/v1/account/{id}",
		Summary:     "Overwrite an account",
		Description: "Overwrites type, name, balance and icon. No transaction history is consulted.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *UpdateAccountHandler) handle(ctx context.Context, input *UpdateAccountInput) (*UpdateAccountOutput, error) {
	updated, err := h.AccountService.UpdateAccount(ctx, input.ID, service.Account{
		Type:    service.AccountType(input.Body.Type),
		Name:    input.Body.Name,
		Balance: input.Body.Balance,
		Icon:    input.Body.Icon,
	})
	if err != nil {
		return nil, apierror.FromService(ctx, err, "failed to update account")
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountID", updated.ID)
	}

	return &UpdateAccountOutput{Body: fromService(*updated)}, nil
}
