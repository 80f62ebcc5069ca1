package simplify

// AggregateBalances reduces raw expense and settlement records to a net
// balance per user, in minor units. Positive means the group owes the user,
// negative means the user owes the group.
//
// Algorithm:
//   - For each expense: each payer entry adds its amount, each split entry
//     subtracts its amount. A user appearing on both sides nets out to
//     paid - owed.
//   - For each confirmed settlement: the payer's balance rises (their debt
//     shrinks) and the payee's balance falls (their credit shrinks). Pending
//     and rejected settlements are ignored.
//
// The aggregator is deliberately lenient: records with nil payer or split
// lists contribute nothing and never cause an error, since the backing store
// can hold legacy or partially-written documents. Users who participated but
// net out to zero still appear in the result with value 0.
func AggregateBalances(expenses []ExpenseRecord, settlements []SettlementRecord) map[string]int64 {
	balances := make(map[string]int64)

	for _, expense := range expenses {
		for _, payer := range expense.Payers {
			balances[payer.UserID] += payer.Amount
		}
		for _, split := range expense.Splits {
			balances[split.UserID] -= split.Amount
		}
	}

	for _, settlement := range settlements {
		if settlement.Status != SettlementConfirmed {
			continue
		}
		balances[settlement.FromUserID] += settlement.Amount
		balances[settlement.ToUserID] -= settlement.Amount
	}

	return balances
}
