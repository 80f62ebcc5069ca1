package models

// ExpenseShare is one user's part in an expense, either money put in (payer)
// or money owed (split).
type ExpenseShare struct {
	UserID string
	Amount int64 // minor units
}

// Expense represents a shared expense: one or more payers covering the total
// and a split list saying who owes what. The payer amounts and split amounts
// each sum to Total for a well-formed expense.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// Description is a short human-readable label (e.g., "Dinner", "Cab").
	Description string

	// Total is the full expense amount in minor units.
	Total int64

	// Payers lists who actually paid, and how much each put in.
	Payers []ExpenseShare

	// Splits lists who owes a share of the expense, and how much.
	Splits []ExpenseShare

	// CreatedBy is the user ID who recorded this expense.
	CreatedBy string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}
