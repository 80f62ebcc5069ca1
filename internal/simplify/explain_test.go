package simplify

import (
	"reflect"
	"strings"
	"testing"
)

func TestExplain_MatchesSimplify(t *testing.T) {
	inputs := []map[string]int64{
		{"A": -10000, "B": 10000},
		{"A": -10000, "B": -5000, "C": 15000},
		{"A": 50000, "B": -30000, "C": -20000},
		{"A": -33333, "B": -33333, "C": -33334, "D": 100000},
		{"A": 0, "B": 0},
	}

	for _, balances := range inputs {
		want := Simplify(balances, testNames)
		steps := Explain(balances, testNames, "INR")

		var got []SimplifiedDebt
		for _, step := range steps {
			if step.Settlement != nil {
				got = append(got, *step.Settlement)
			}
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("input %v: explanation transfers %v, simplify %v", balances, got, want)
		}
	}
}

func TestExplain_StepStructure(t *testing.T) {
	balances := map[string]int64{"A": -10000, "B": -5000, "C": 15000}
	steps := Explain(balances, testNames, "INR")

	// initial + categorization + 2 payments + result
	if len(steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(steps))
	}

	if steps[0].Title != "Original balances" || steps[0].Settlement != nil {
		t.Errorf("unexpected initial step %+v", steps[0])
	}
	if !reflect.DeepEqual(steps[0].Balances, balances) {
		t.Errorf("initial snapshot = %v, want %v", steps[0].Balances, balances)
	}

	if steps[1].Title != "Who owes and who is owed" || steps[1].Settlement != nil {
		t.Errorf("unexpected categorization step %+v", steps[1])
	}
	if !strings.Contains(steps[1].Description, "Chitra") {
		t.Errorf("categorization should name the creditor: %q", steps[1].Description)
	}

	for _, step := range steps[2:4] {
		if step.Settlement == nil {
			t.Fatalf("payment step missing settlement: %+v", step)
		}
		if step.Balances[step.Settlement.ToUserID] < 0 {
			t.Errorf("creditor overdrawn in snapshot: %+v", step)
		}
		if !strings.Contains(step.Description, "₹") {
			t.Errorf("payment description should carry the formatted amount: %q", step.Description)
		}
	}

	last := steps[len(steps)-1]
	if last.Title != "Result" || last.Settlement != nil {
		t.Errorf("unexpected result step %+v", last)
	}
	for id, balance := range last.Balances {
		if balance != 0 {
			t.Errorf("result snapshot should be settled, %s = %d", id, balance)
		}
	}
}

func TestExplain_SnapshotsShrinkTowardZero(t *testing.T) {
	balances := map[string]int64{"A": -40000, "B": -10000, "C": 35000, "D": 15000}
	steps := Explain(balances, testNames, "INR")

	prev := balances
	for _, step := range steps {
		if step.Settlement == nil {
			continue
		}
		s := step.Settlement
		if step.Balances[s.FromUserID] != prev[s.FromUserID]+s.Amount {
			t.Errorf("debtor %s snapshot %d, want %d", s.FromUserID, step.Balances[s.FromUserID], prev[s.FromUserID]+s.Amount)
		}
		if step.Balances[s.ToUserID] != prev[s.ToUserID]-s.Amount {
			t.Errorf("creditor %s snapshot %d, want %d", s.ToUserID, step.Balances[s.ToUserID], prev[s.ToUserID]-s.Amount)
		}
		prev = step.Balances
	}
}

func TestExplain_AllSettled(t *testing.T) {
	steps := Explain(map[string]int64{"A": 0, "B": 0, "C": 0}, testNames, "INR")

	// initial + categorization + result, no payment steps
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	for _, step := range steps {
		if step.Settlement != nil {
			t.Errorf("no settlements expected, got %+v", step)
		}
	}
	if !strings.Contains(steps[1].Description, "nothing to simplify") {
		t.Errorf("categorization should report nothing to do: %q", steps[1].Description)
	}
	if !strings.Contains(steps[2].Description, "already settled") {
		t.Errorf("result should report everyone settled: %q", steps[2].Description)
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		currency string
		minor    int64
		want     string
	}{
		{"INR", 500000, "₹5000.00"},
		{"INR", 1, "₹0.01"},
		{"USD", 123456, "$1234.56"},
		{"AED", 5000, "AED 50.00"},
		{"", 5000, "50.00"},
	}
	for _, tt := range tests {
		if got := FormatAmount(tt.currency, tt.minor); got != tt.want {
			t.Errorf("FormatAmount(%q, %d) = %q, want %q", tt.currency, tt.minor, got, tt.want)
		}
	}
}
