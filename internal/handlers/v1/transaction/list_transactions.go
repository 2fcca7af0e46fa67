package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/apierror"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListTransactionsCursor is the pagination cursor returned with a page.
type ListTransactionsCursor struct {
	Position int `json:"position" doc:"Offset for the next page"`
	Limit    int `json:"limit" doc:"Page size used for this cursor"`
}

// ListTransactionsInput is the Huma input for listing transactions. Zero IDs
// mean no filter.
type ListTransactionsInput struct {
	AccountID  int64 `query:"accountID" minimum:"0" doc:"Only transactions on this account"`
	CategoryID int64 `query:"categoryID" minimum:"0" doc:"Only transactions in this category"`
	Position   int   `query:"position" minimum:"0" doc:"Offset for pagination"`
	Limit      int   `query:"limit" minimum:"0" maximum:"100" doc:"Page size; 0 returns every match"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction           `json:"transactions" doc:"Transactions, newest date first"`
	NextCursor   *ListTransactionsCursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, filter service.TransactionFilter, cursor *service.TransactionCursor) ([]service.Transaction, *service.TransactionCursor, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns transactions, optionally filtered by account or category and paginated with position/limit.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput turns query parameters into a filter and an
// optional cursor. Without a limit every match is returned.
func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionFilter, *service.TransactionCursor) {
	var filter service.TransactionFilter
	if input.AccountID != 0 {
		accountID := input.AccountID
		filter.AccountID = &accountID
	}
	if input.CategoryID != 0 {
		categoryID := input.CategoryID
		filter.CategoryID = &categoryID
	}

	if input.Limit == 0 {
		return filter, nil
	}
	return filter, &service.TransactionCursor{
		Position: input.Position,
		Limit:    input.Limit,
	}
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	filter, requestCursor := parseListTransactionsInput(input)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, nextCursor, err := h.TransactionService.ListTransactions(ctx, filter, requestCursor)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apierror.FromService(ctx, err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{Transactions: fromServiceList(transactions)}
	if nextCursor != nil {
		resp.NextCursor = &ListTransactionsCursor{
			Position: nextCursor.Position,
			Limit:    nextCursor.Limit,
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
