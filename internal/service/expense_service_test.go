package service

import (
	"context"
	"net/http"
	"testing"

	"connectrpc.com/connect"

	"github.com/splitkaro/backend/pkg/api"
)

func TestAddExpense(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	asha := env.registerUser(t, "asha@example.com", "Asha")
	bharat := env.registerUser(t, "bharat@example.com", "Bharat")

	group := createGroup(t, asha, "Flatmates", bharat.ID)

	resp, err := asha.Expenses.AddExpense(context.Background(), connect.NewRequest(&api.AddExpenseRequest{
		GroupID:     group.ID,
		Description: "Groceries",
		Total:       150000,
		Payers:      []*api.ExpenseShare{{UserID: asha.ID, Amount: 150000}},
		Splits: []*api.ExpenseShare{
			{UserID: asha.ID, Amount: 75000},
			{UserID: bharat.ID, Amount: 75000},
		},
	}))
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	expense := resp.Msg.Expense
	if expense.ID == "" {
		t.Error("expected non-empty expense ID")
	}
	if expense.Total != 150000 {
		t.Errorf("total: expected 150000, got %d", expense.Total)
	}
	if expense.CreatedBy != asha.ID {
		t.Errorf("created_by: expected %s, got %s", asha.ID, expense.CreatedBy)
	}
	if len(expense.Payers) != 1 || len(expense.Splits) != 2 {
		t.Errorf("shares: expected 1 payer and 2 splits, got %d/%d",
			len(expense.Payers), len(expense.Splits))
	}
}

func TestAddExpense_SplitsDoNotSumToTotal(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	asha := env.registerUser(t, "asha@example.com", "Asha")
	bharat := env.registerUser(t, "bharat@example.com", "Bharat")

	group := createGroup(t, asha, "Flatmates", bharat.ID)

	_, err := asha.Expenses.AddExpense(context.Background(), connect.NewRequest(&api.AddExpenseRequest{
		GroupID: group.ID,
		Total:   1000,
		Payers:  []*api.ExpenseShare{{UserID: asha.ID, Amount: 1000}},
		Splits: []*api.ExpenseShare{
			{UserID: asha.ID, Amount: 400},
			{UserID: bharat.ID, Amount: 400},
		},
	}))
	wantCode(t, err, connect.CodeInvalidArgument)
}

func TestAddExpense_NonMemberParticipant(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	asha := env.registerUser(t, "asha@example.com", "Asha")
	outsider := env.registerUser(t, "outsider@example.com", "Outsider")

	group := createGroup(t, asha, "Private")

	_, err := asha.Expenses.AddExpense(context.Background(), connect.NewRequest(&api.AddExpenseRequest{
		GroupID: group.ID,
		Total:   1000,
		Payers:  []*api.ExpenseShare{{UserID: asha.ID, Amount: 1000}},
		Splits: []*api.ExpenseShare{
			{UserID: asha.ID, Amount: 500},
			{UserID: outsider.ID, Amount: 500},
		},
	}))
	wantCode(t, err, connect.CodeInvalidArgument)
}

func TestAddExpense_Unauthenticated(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	asha := env.registerUser(t, "asha@example.com", "Asha")
	group := createGroup(t, asha, "Flatmates")

	anonClient := api.NewExpenseServiceClient(http.DefaultClient, env.serverURL)
	_, err := anonClient.AddExpense(context.Background(), connect.NewRequest(&api.AddExpenseRequest{
		GroupID: group.ID,
		Total:   1000,
		Payers:  []*api.ExpenseShare{{UserID: asha.ID, Amount: 1000}},
		Splits:  []*api.ExpenseShare{{UserID: asha.ID, Amount: 1000}},
	}))
	wantCode(t, err, connect.CodeUnauthenticated)
}

func TestListExpensesByGroup(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	asha := env.registerUser(t, "asha@example.com", "Asha")
	group := createGroup(t, asha, "Solo")

	for _, desc := range []string{"Cab", "Lunch"} {
		_, err := asha.Expenses.AddExpense(context.Background(), connect.NewRequest(&api.AddExpenseRequest{
			GroupID:     group.ID,
			Description: desc,
			Total:       500,
			Payers:      []*api.ExpenseShare{{UserID: asha.ID, Amount: 500}},
			Splits:      []*api.ExpenseShare{{UserID: asha.ID, Amount: 500}},
		}))
		if err != nil {
			t.Fatalf("AddExpense(%s) failed: %v", desc, err)
		}
	}

	resp, err := asha.Expenses.ListExpensesByGroup(context.Background(), connect.NewRequest(&api.ListExpensesByGroupRequest{
		GroupID: group.ID,
	}))
	if err != nil {
		t.Fatalf("ListExpensesByGroup failed: %v", err)
	}
	if len(resp.Msg.Expenses) != 2 {
		t.Errorf("expected 2 expenses, got %d", len(resp.Msg.Expenses))
	}
}

func TestDeleteExpense(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	asha := env.registerUser(t, "asha@example.com", "Asha")
	group := createGroup(t, asha, "Solo")

	addResp, err := asha.Expenses.AddExpense(context.Background(), connect.NewRequest(&api.AddExpenseRequest{
		GroupID: group.ID,
		Total:   700,
		Payers:  []*api.ExpenseShare{{UserID: asha.ID, Amount: 700}},
		Splits:  []*api.ExpenseShare{{UserID: asha.ID, Amount: 700}},
	}))
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}

	if _, err := asha.Expenses.DeleteExpense(context.Background(), connect.NewRequest(&api.DeleteExpenseRequest{
		ExpenseID: addResp.Msg.Expense.ID,
	})); err != nil {
		t.Fatalf("DeleteExpense failed: %v", err)
	}

	_, err = asha.Expenses.GetExpense(context.Background(), connect.NewRequest(&api.GetExpenseRequest{
		ExpenseID: addResp.Msg.Expense.ID,
	}))
	wantCode(t, err, connect.CodeNotFound)
}
