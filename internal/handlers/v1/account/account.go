package account

import (
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID      int64  `json:"id" doc:"Account ID"`
	Type    string `json:"type" enum:"bank,ewallet" doc:"Account type"`
	Name    string `json:"name" doc:"Account name, not unique"`
	Balance int64  `json:"balance" doc:"Balance in minor currency units"`
	Icon    string `json:"icon" doc:"Icon name"`
}

// AccountIDPath is the path parameter shared by single-account endpoints.
type AccountIDPath struct {
	ID int64 `path:"id" minimum:"1" doc:"Account ID"`
}

func fromService(a service.Account) Account {
	return Account{
		ID:      a.ID,
		Type:    string(a.Type),
		Name:    a.Name,
		Balance: a.Balance,
		Icon:    a.Icon,
	}
}

func fromServiceList(accounts []service.Account) []Account {
	out := make([]Account, len(accounts))
	for i, a := range accounts {
		out[i] = fromService(a)
	}
	return out
}
