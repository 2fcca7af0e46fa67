package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
)

type accountDeleter interface {
	DeleteAccount(ctx context.Context, id int64) (bool, error)
}

// DeleteAccountHandler handles DELETE /v1/account/{id}.
type DeleteAccountHandler struct {
	AccountService accountDeleter
}

func NewDeleteAccountHandler(svc accountDeleter) *DeleteAccountHandler {
	return &DeleteAccountHandler{AccountService: svc}
}

func (h *DeleteAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-account",
		Method:        http.MethodDelete,
		Path:          "/v1/account/{id}",
		Summary:       "Delete an account",
		Description:   "Deletes the account. Transactions that reference it are kept.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteAccountHandler) handle(ctx context.Context, input *AccountIDPath) (*struct{}, error) {
	deleted, err := h.AccountService.DeleteAccount(ctx, input.ID)
	if err != nil {
		return nil, apierror.FromService(ctx, err, "failed to delete account")
	}
	if !deleted {
		return nil, huma.Error404NotFound("account not found")
	}
	return nil, nil
}
