package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type FindAccountsByNameInput struct {
	Name string `path:"name" minLength:"1" doc:"Exact account name"`
}

type FindAccountsByNameOutput struct {
	Body struct {
		Accounts []Account `json:"accounts" doc:"Every account with this name"`
	}
}

type accountNameFinder interface {
	FindAccountsByName(ctx context.Context, name string) ([]service.Account, error)
}

// FindAccountsByNameHandler handles GET /v1/accounts/by-name/{name}.
type FindAccountsByNameHandler struct {
	AccountService accountNameFinder
}

func NewFindAccountsByNameHandler(svc accountNameFinder) *FindAccountsByNameHandler {
	return &FindAccountsByNameHandler{AccountService: svc}
}

func (h *FindAccountsByNameHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "find-accounts-by-name",
		Method:      http.MethodGet,
		Path:        "/v1/accounts/by-name/{name}",
		Summary:     "Find accounts by name",
		Description: "Returns every account with the given name. Names are not unique. Responds 404 when nothing matches.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *FindAccountsByNameHandler) handle(ctx context.Context, input *FindAccountsByNameInput) (*FindAccountsByNameOutput, error) {
	accounts, err := h.AccountService.FindAccountsByName(ctx, input.Name)
	if err != nil {
		return nil, apierror.FromService(ctx, err, "failed to find accounts")
	}
	if len(accounts) == 0 {
		return nil, huma.Error404NotFound("no account named " + input.Name)
	}

	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("accountCount", len(accounts))
	}

	out := &FindAccountsByNameOutput{}
	out.Body.Accounts = fromServiceList(accounts)
	return out, nil
}
