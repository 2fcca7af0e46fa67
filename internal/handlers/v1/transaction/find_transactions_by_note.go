package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type FindTransactionsByNoteInput struct {
	Note string `path:"note" minLength:"1" doc:"Exact note to match"`
}

type FindTransactionsByNoteOutput struct {
	Body struct {
		Transactions []Transaction `json:"transactions" doc:"Every transaction with this note"`
	}
}

type transactionNoteFinder interface {
	FindTransactionsByNote(ctx context.Context, note string) ([]service.Transaction, error)
}

// FindTransactionsByNoteHandler handles GET /v1/transactions/by-note/{note}.
type FindTransactionsByNoteHandler struct {
	TransactionService transactionNoteFinder
}

func NewFindTransactionsByNoteHandler(svc transactionNoteFinder) *FindTransactionsByNoteHandler {
	return &FindTransactionsByNoteHandler{TransactionService: svc}
}

func (h *FindTransactionsByNoteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "find-transactions-by-note",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/by-note/{note}",
		Summary:     "Find transactions by note",
		Description: "Returns every transaction whose note matches exactly. Responds 404 when nothing matches.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *FindTransactionsByNoteHandler) handle(ctx context.Context, input *FindTransactionsByNoteInput) (*FindTransactionsByNoteOutput, error) {
	transactions, err := h.TransactionService.FindTransactionsByNote(ctx, input.Note)
	if err != nil {
		return nil, apierror.FromService(ctx, err, "failed to find transactions")
	}
	if len(transactions) == 0 {
		return nil, huma.Error404NotFound("no transaction with note " + input.Note)
	}

	out := &FindTransactionsByNoteOutput{}
	out.Body.Transactions = fromServiceList(transactions)
	return out, nil
}
