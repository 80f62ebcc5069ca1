// Package simplify computes group debt settlement plans.
//
// Given per-user net balances in integer minor currency units (paisa, cents),
// it produces a small set of pairwise transfers that returns every balance to
// zero, plus an optional step-by-step narration of how that set was derived.
// The package is pure computation: no storage, no I/O, no shared state. All
// inputs are treated as immutable; every call works on private copies.
package simplify

// SettlementStatus is the lifecycle state of a recorded settlement.
type SettlementStatus string

const (
	SettlementPending   SettlementStatus = "pending"
	SettlementConfirmed SettlementStatus = "confirmed"
	SettlementRejected  SettlementStatus = "rejected"
)

// Share is one user's contribution to an expense, either as a payer or as a
// participant in the split.
type Share struct {
	UserID string
	Amount int64 // minor units
}

// ExpenseRecord is the aggregation view of one expense: who paid how much and
// how the total was split. A nil Payers or Splits list is valid and
// contributes nothing; records read back from loosely-typed storage may be
// partially written.
type ExpenseRecord struct {
	Payers []Share
	Splits []Share
}

// SettlementRecord is the aggregation view of one recorded payment between
// two users. Only confirmed settlements affect balances.
type SettlementRecord struct {
	FromUserID string
	ToUserID   string
	Amount     int64 // minor units
	Status     SettlementStatus
}

// SimplifiedDebt is a single settling transfer: FromUser pays ToUser Amount.
// Identity is (FromUserID, ToUserID, Amount); the display names are carried
// for presentation only and never participate in matching.
type SimplifiedDebt struct {
	FromUserID   string
	FromUserName string
	ToUserID     string
	ToUserName   string
	Amount       int64 // minor units, always > 0
}

// SimplificationStep is one entry in the human-readable explanation of a
// settlement plan. Settlement is nil for narrative-only steps (the initial
// balances, the creditor/debtor categorization, and the final result).
type SimplificationStep struct {
	Title       string
	Description string
	Balances    map[string]int64  // remaining balances after this step
	Names       map[string]string // user id -> display name
	Settlement  *SimplifiedDebt
}
