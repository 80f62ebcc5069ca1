package simplify

import (
	"reflect"
	"testing"
)

func TestAggregateBalances(t *testing.T) {
	tests := []struct {
		name        string
		expenses    []ExpenseRecord
		settlements []SettlementRecord
		want        map[string]int64
	}{
		{
			name: "single expense, payer also split",
			expenses: []ExpenseRecord{
				{
					Payers: []Share{{UserID: "A", Amount: 10000}},
					Splits: []Share{{UserID: "A", Amount: 5000}, {UserID: "B", Amount: 5000}},
				},
			},
			want: map[string]int64{"A": 5000, "B": -5000},
		},
		{
			name: "confirmed settlement clears balances",
			expenses: []ExpenseRecord{
				{
					Payers: []Share{{UserID: "A", Amount: 10000}},
					Splits: []Share{{UserID: "A", Amount: 5000}, {UserID: "B", Amount: 5000}},
				},
			},
			settlements: []SettlementRecord{
				{FromUserID: "B", ToUserID: "A", Amount: 5000, Status: SettlementConfirmed},
			},
			want: map[string]int64{"A": 0, "B": 0},
		},
		{
			name: "pending settlement is ignored",
			expenses: []ExpenseRecord{
				{
					Payers: []Share{{UserID: "A", Amount: 10000}},
					Splits: []Share{{UserID: "A", Amount: 5000}, {UserID: "B", Amount: 5000}},
				},
			},
			settlements: []SettlementRecord{
				{FromUserID: "B", ToUserID: "A", Amount: 5000, Status: SettlementPending},
			},
			want: map[string]int64{"A": 5000, "B": -5000},
		},
		{
			name: "rejected settlement is ignored",
			settlements: []SettlementRecord{
				{FromUserID: "B", ToUserID: "A", Amount: 7500, Status: SettlementConfirmed},
				{FromUserID: "A", ToUserID: "B", Amount: 7500, Status: SettlementRejected},
			},
			want: map[string]int64{"A": -7500, "B": 7500},
		},
		{
			name: "nil payer and split lists contribute nothing",
			expenses: []ExpenseRecord{
				{},
				{Payers: []Share{{UserID: "A", Amount: 3000}}},
				{Splits: []Share{{UserID: "B", Amount: 3000}}},
			},
			want: map[string]int64{"A": 3000, "B": -3000},
		},
		{
			name: "multiple payers on one expense",
			expenses: []ExpenseRecord{
				{
					Payers: []Share{{UserID: "A", Amount: 6000}, {UserID: "B", Amount: 6000}},
					Splits: []Share{{UserID: "A", Amount: 4000}, {UserID: "B", Amount: 4000}, {UserID: "C", Amount: 4000}},
				},
			},
			want: map[string]int64{"A": 2000, "B": 2000, "C": -4000},
		},
		{
			name:     "no records",
			expenses: nil,
			want:     map[string]int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AggregateBalances(tt.expenses, tt.settlements)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("AggregateBalances() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAggregateBalances_ZeroSum(t *testing.T) {
	expenses := []ExpenseRecord{
		{
			Payers: []Share{{UserID: "A", Amount: 90000}},
			Splits: []Share{{UserID: "A", Amount: 30000}, {UserID: "B", Amount: 30000}, {UserID: "C", Amount: 30000}},
		},
		{
			Payers: []Share{{UserID: "B", Amount: 12000}},
			Splits: []Share{{UserID: "B", Amount: 6000}, {UserID: "C", Amount: 6000}},
		},
	}
	settlements := []SettlementRecord{
		{FromUserID: "C", ToUserID: "A", Amount: 10000, Status: SettlementConfirmed},
	}

	balances := AggregateBalances(expenses, settlements)

	var sum int64
	for _, balance := range balances {
		sum += balance
	}
	if sum != 0 {
		t.Errorf("balances should conserve money, sum = %d", sum)
	}
}

func TestAggregateBalances_Idempotent(t *testing.T) {
	expenses := []ExpenseRecord{
		{
			Payers: []Share{{UserID: "A", Amount: 10000}},
			Splits: []Share{{UserID: "A", Amount: 2500}, {UserID: "B", Amount: 7500}},
		},
	}
	settlements := []SettlementRecord{
		{FromUserID: "B", ToUserID: "A", Amount: 2000, Status: SettlementConfirmed},
	}

	first := AggregateBalances(expenses, settlements)
	second := AggregateBalances(expenses, settlements)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("aggregation not idempotent: %v vs %v", first, second)
	}
}
