package simplify

import "sort"

// UnknownName is substituted when a user id has no entry in the display-name
// map. Name lookup is presentation-only and never affects matching.
const UnknownName = "Unknown"

// Simplify computes a settling transfer list for the given balance map using
// greedy largest-creditor/largest-debtor matching. Replaying the returned
// transfers (subtract from the payer, add to the payee) drives every balance
// to exactly zero, assuming the input sums to zero.
//
// The heuristic emits at most creditors+debtors-1 transfers. It is not a
// minimum-cardinality matching (that problem is NP-hard in general); callers
// rely on this exact greedy behavior, so do not swap in an optimal solver.
//
// Users with a zero balance never appear in any transfer. The input map is
// not mutated. If the input violates the zero-sum invariant the matcher
// terminates when one side empties and the residual on the other side is
// silently dropped; guarding against that is the caller's job.
func Simplify(balances map[string]int64, names map[string]string) []SimplifiedDebt {
	var debts []SimplifiedDebt
	eachTransfer(balances, names, func(debt SimplifiedDebt, _ map[string]int64) {
		debts = append(debts, debt)
	})
	return debts
}

// party is one side of the matching: a user and how much of their balance is
// still unsettled. Amounts are kept positive for both creditors and debtors.
type party struct {
	userID    string
	remaining int64
}

// eachTransfer runs the greedy matcher over private working copies of the
// inputs and invokes visit once per emitted transfer, together with a
// snapshot of the remaining balances immediately after it. Both Simplify and
// Explain go through here so the two can never drift apart.
func eachTransfer(balances map[string]int64, names map[string]string, visit func(debt SimplifiedDebt, remaining map[string]int64)) {
	// Go maps iterate in random order, so pin the "first encountered" tie-break
	// to sorted user ids. Output is then a pure function of the map contents.
	ids := make([]string, 0, len(balances))
	for id := range balances {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	current := make(map[string]int64, len(balances))
	var creditors, debtors []party
	for _, id := range ids {
		balance := balances[id]
		current[id] = balance
		switch {
		case balance > 0:
			creditors = append(creditors, party{userID: id, remaining: balance})
		case balance < 0:
			debtors = append(debtors, party{userID: id, remaining: -balance})
		}
	}

	for len(creditors) > 0 && len(debtors) > 0 {
		ci := largest(creditors)
		di := largest(debtors)

		transfer := creditors[ci].remaining
		if debtors[di].remaining < transfer {
			transfer = debtors[di].remaining
		}

		debt := SimplifiedDebt{
			FromUserID:   debtors[di].userID,
			FromUserName: displayName(names, debtors[di].userID),
			ToUserID:     creditors[ci].userID,
			ToUserName:   displayName(names, creditors[ci].userID),
			Amount:       transfer,
		}

		creditors[ci].remaining -= transfer
		debtors[di].remaining -= transfer
		current[debt.FromUserID] += transfer
		current[debt.ToUserID] -= transfer

		if creditors[ci].remaining == 0 {
			creditors = append(creditors[:ci], creditors[ci+1:]...)
		}
		if debtors[di].remaining == 0 {
			debtors = append(debtors[:di], debtors[di+1:]...)
		}

		visit(debt, cloneBalances(current))
	}
}

// largest returns the index of the party with the biggest remaining amount.
// Ties keep the earliest entry so results stay deterministic.
func largest(parties []party) int {
	best := 0
	for i := 1; i < len(parties); i++ {
		if parties[i].remaining > parties[best].remaining {
			best = i
		}
	}
	return best
}

func displayName(names map[string]string, userID string) string {
	if name, ok := names[userID]; ok && name != "" {
		return name
	}
	return UnknownName
}

func cloneBalances(balances map[string]int64) map[string]int64 {
	clone := make(map[string]int64, len(balances))
	for id, balance := range balances {
		clone[id] = balance
	}
	return clone
}
