package sqlconfig

type AccountType string

const (
	AccountTypeBank    AccountType = "bank"
	AccountTypeEWallet AccountType = "ewallet"
)

// TransactionType is the direction of money for both transactions and categories.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)
