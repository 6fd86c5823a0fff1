package model

// AccountID identifies an account in the chart of accounts. Zero is never
// a valid account.
type AccountID uint64

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeIncome    AccountType = "income"
	AccountTypeExpense   AccountType = "expense"
	AccountTypeCarryover AccountType = "carryover"
)

// Account is one entry in the chart of accounts. Accounts backed by a bank
// feed carry the field mapping for their CSV export and the ordered match
// rules used to resolve the remote side of imported rows.
type Account struct {
	ID      AccountID
	Name    string
	Type    AccountType
	Mapping FieldMapping
	Rules   []MatchRule
}
