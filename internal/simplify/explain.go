package simplify

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Explain narrates a settlement plan for UI display. It replays the exact
// matcher Simplify uses, so the transfers embedded in the returned steps are
// always identical to calling Simplify on the same input.
//
// The sequence is: an initial step restating the balances as given, a
// categorization step listing who owes and who is owed, one step per emitted
// transfer with the remaining balances after it, and a closing result step.
// The currency code only affects formatting, never computation.
func Explain(balances map[string]int64, names map[string]string, currency string) []SimplificationStep {
	steps := []SimplificationStep{
		{
			Title:       "Original balances",
			Description: describeBalances(balances, names, currency),
			Balances:    cloneBalances(balances),
			Names:       cloneNames(names),
		},
		{
			Title:       "Who owes and who is owed",
			Description: describeParties(balances, names, currency),
			Balances:    cloneBalances(balances),
			Names:       cloneNames(names),
		},
	}

	transfers := 0
	final := cloneBalances(balances)
	eachTransfer(balances, names, func(debt SimplifiedDebt, remaining map[string]int64) {
		transfers++
		final = remaining
		settled := debt
		steps = append(steps, SimplificationStep{
			Title: fmt.Sprintf("Payment %d", transfers),
			Description: fmt.Sprintf("%s pays %s %s, matching the largest outstanding debt against the largest credit.",
				debt.FromUserName, debt.ToUserName, FormatAmount(currency, debt.Amount)),
			Balances:   remaining,
			Names:      cloneNames(names),
			Settlement: &settled,
		})
	})

	// Final snapshot: every participant at zero for zero-sum input. Users on
	// the heavier side of a non-zero-sum input keep their residual, mirroring
	// the matcher's drop-the-remainder behavior.
	result := SimplificationStep{
		Title:    "Result",
		Names:    cloneNames(names),
		Balances: final,
	}
	if transfers == 0 {
		result.Description = "Everyone is already settled; no payments are needed."
	} else {
		result.Description = fmt.Sprintf("All balances are settled in %d payment(s).", transfers)
	}
	steps = append(steps, result)

	return steps
}

// FormatAmount renders an integer minor-unit amount as a human-readable
// major-unit string, e.g. FormatAmount("INR", 150000) == "₹1500.00".
// Unrecognized currency codes fall back to "CODE 1500.00".
func FormatAmount(currency string, minor int64) string {
	value := decimal.New(minor, -2).StringFixed(2)
	if symbol, ok := currencySymbols[currency]; ok {
		return symbol + value
	}
	if currency == "" {
		return value
	}
	return currency + " " + value
}

var currencySymbols = map[string]string{
	"INR": "₹",
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

func describeBalances(balances map[string]int64, names map[string]string, currency string) string {
	if len(balances) == 0 {
		return "No balances recorded."
	}
	parts := make([]string, 0, len(balances))
	for _, id := range sortedIDs(balances) {
		balance := balances[id]
		switch {
		case balance > 0:
			parts = append(parts, fmt.Sprintf("%s is owed %s", displayName(names, id), FormatAmount(currency, balance)))
		case balance < 0:
			parts = append(parts, fmt.Sprintf("%s owes %s", displayName(names, id), FormatAmount(currency, -balance)))
		default:
			parts = append(parts, fmt.Sprintf("%s is settled", displayName(names, id)))
		}
	}
	return strings.Join(parts, "; ") + "."
}

func describeParties(balances map[string]int64, names map[string]string, currency string) string {
	var creditors, debtors []string
	for _, id := range sortedIDs(balances) {
		balance := balances[id]
		switch {
		case balance > 0:
			creditors = append(creditors, fmt.Sprintf("%s (%s)", displayName(names, id), FormatAmount(currency, balance)))
		case balance < 0:
			debtors = append(debtors, fmt.Sprintf("%s (%s)", displayName(names, id), FormatAmount(currency, -balance)))
		}
	}
	if len(creditors) == 0 && len(debtors) == 0 {
		return "Nobody owes and nobody is owed; there is nothing to simplify."
	}
	return fmt.Sprintf("Owed by the group: %s. Owing the group: %s.",
		joinOrNone(creditors), joinOrNone(debtors))
}

func joinOrNone(parts []string) string {
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func sortedIDs(balances map[string]int64) []string {
	ids := make([]string, 0, len(balances))
	for id := range balances {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func cloneNames(names map[string]string) map[string]string {
	clone := make(map[string]string, len(names))
	for id, name := range names {
		clone[id] = name
	}
	return clone
}
