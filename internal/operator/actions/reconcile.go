package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// ErrUnknownAccount is returned when a transaction points at an account that
// does not exist. It always wraps sqlconfig.ErrNotFound.
var ErrUnknownAccount = errors.New("unknown account")

// balanceEffect is the signed change one transaction applies to one account.
type balanceEffect struct {
	accountID int64
	delta     int64
}

// signedAmount is the delta a transaction of the given type adds to its
// account: income adds, expense subtracts.
func signedAmount(transactionType sqlconfig.TransactionType, amountCents int64) int64 {
	if transactionType == sqlconfig.TransactionTypeIncome {
		return amountCents
	}
	return -amountCents
}

// effectOf returns the balance effect of t. Transactions without an account
// have none.
func effectOf(t *sqlconfig.Transaction) (balanceEffect, bool) {
	if t == nil {
		return balanceEffect{}, false
	}
	accountID, ok := t.AccountID.Get()
	if !ok {
		return balanceEffect{}, false
	}
	return balanceEffect{
		accountID: accountID,
		delta:     signedAmount(t.Type, t.AmountCents),
	}, true
}

// reconcile moves account balances from the state where before was applied
// to the state where after is applied. before is nil for a create and after
// is nil for a delete. The old effect is fully reversed on the old account
// and the new effect fully applied on the new one, even when both are the
// same account.
//
// Both steps skip an account that has since been deleted while the
// transaction still points at it: the effect left with the account. Applying
// onto an account the transaction did not reference before fails.
func reconcile(ctx context.Context, accounts sqlconfig.IAccountTable, before, after *sqlconfig.Transaction) error {
	var dangling int64
	if effect, ok := effectOf(before); ok {
		_, err := accounts.AddToBalance(ctx, effect.accountID, -effect.delta)
		switch {
		case errors.Is(err, sqlconfig.ErrNotFound):
			dangling = effect.accountID
		case err != nil:
			return fmt.Errorf("reverse balance on account %d: %w", effect.accountID, err)
		}
	}

	if effect, ok := effectOf(after); ok {
		_, err := accounts.AddToBalance(ctx, effect.accountID, effect.delta)
		if errors.Is(err, sqlconfig.ErrNotFound) {
			if effect.accountID == dangling {
				return nil
			}
			return fmt.Errorf("apply balance on account %d: %w: %w", effect.accountID, ErrUnknownAccount, err)
		}
		if err != nil {
			return fmt.Errorf("apply balance on account %d: %w", effect.accountID, err)
		}
	}

	return nil
}
