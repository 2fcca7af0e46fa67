package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
type Transaction struct {
	ID          int64   `json:"id" doc:"Transaction ID"`
	Type        string  `json:"type" enum:"income,expense" doc:"Transaction type"`
	AmountCents int64   `json:"amountCents" doc:"Amount in minor currency units"`
	Date        string  `json:"date" format:"date" doc:"ISO date"`
	Note        *string `json:"note" doc:"Free-form note"`
	CategoryID  *int64  `json:"categoryID" doc:"Category ID"`
	AccountID   *int64  `json:"accountID" doc:"Account ID whose balance this transaction moves"`
}

// TransactionBody is the request body for creating or overwriting a
// transaction.
type TransactionBody struct {
	Type        string  `json:"type" enum:"income,expense" doc:"income adds to the account balance, expense subtracts"`
	AmountCents int64   `json:"amountCents" minimum:"0" doc:"Non-negative amount in minor currency units"`
	Date        string  `json:"date" format:"date" doc:"ISO date, YYYY-MM-DD"`
	Note        *string `json:"note,omitempty" nullable:"true" doc:"Free-form note"`
	CategoryID  *int64  `json:"categoryID,omitempty" nullable:"true" doc:"Category ID"`
	AccountID   *int64  `json:"accountID,omitempty" nullable:"true" doc:"Account ID; omit for a transaction that moves no balance"`
}

type TransactionIDPath struct {
	ID int64 `path:"id" minimum:"1" doc:"Transaction ID"`
}

func (b TransactionBody) toService() (service.Transaction, error) {
	date, err := time.Parse(time.DateOnly, b.Date)
	if err != nil {
		return service.Transaction{}, huma.NewError(http.StatusUnprocessableEntity, "invalid date", err)
	}
	return service.Transaction{
		Type:        service.TransactionType(b.Type),
		AmountCents: b.AmountCents,
		Date:        date,
		Note:        b.Note,
		CategoryID:  b.CategoryID,
		AccountID:   b.AccountID,
	}, nil
}

func fromService(t service.Transaction) Transaction {
	return Transaction{
		ID:          t.ID,
		Type:        string(t.Type),
		AmountCents: t.AmountCents,
		Date:        t.Date.Format(time.DateOnly),
		Note:        t.Note,
		CategoryID:  t.CategoryID,
		AccountID:   t.AccountID,
	}
}

func fromServiceList(transactions []service.Transaction) []Transaction {
	out := make([]Transaction, len(transactions))
	for i, t := range transactions {
		out[i] = fromService(t)
	}
	return out
}
