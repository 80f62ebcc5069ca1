package service

import (
	"context"
	"strings"
	"testing"

	"connectrpc.com/connect"

	"github.com/splitkaro/backend/pkg/api"
)

func TestCreateGroup(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	owner := env.registerUser(t, "owner@example.com", "Owner")
	friend := env.registerUser(t, "friend@example.com", "Friend")

	group := createGroup(t, owner, "Flatmates", friend.ID)

	if group.ID == "" {
		t.Error("expected non-empty group ID")
	}
	if group.Name != "Flatmates" {
		t.Errorf("name: expected 'Flatmates', got '%s'", group.Name)
	}
	if group.Currency != "INR" {
		t.Errorf("currency: expected default 'INR', got '%s'", group.Currency)
	}
	if len(group.Members) != 2 {
		t.Fatalf("members: expected 2, got %d", len(group.Members))
	}

	// Creator is always a member even when not listed in the request
	found := false
	for _, m := range group.Members {
		if m == owner.ID {
			found = true
		}
	}
	if !found {
		t.Error("creator missing from member list")
	}
}

func TestGetGroup_NotFound(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	user := env.registerUser(t, "user@example.com", "User")

	_, err := user.Groups.GetGroup(context.Background(), connect.NewRequest(&api.GetGroupRequest{
		GroupID: "nonexistent-id",
	}))
	wantCode(t, err, connect.CodeNotFound)
}

func TestGetGroup_NotAMember(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	owner := env.registerUser(t, "owner@example.com", "Owner")
	outsider := env.registerUser(t, "outsider@example.com", "Outsider")

	group := createGroup(t, owner, "Private")

	_, err := outsider.Groups.GetGroup(context.Background(), connect.NewRequest(&api.GetGroupRequest{
		GroupID: group.ID,
	}))
	wantCode(t, err, connect.CodePermissionDenied)
}

func TestListGroups(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	owner := env.registerUser(t, "owner@example.com", "Owner")
	other := env.registerUser(t, "other@example.com", "Other")

	createGroup(t, owner, "Group A")
	createGroup(t, owner, "Group B", other.ID)

	resp, err := owner.Groups.ListGroups(context.Background(), connect.NewRequest(&api.ListGroupsRequest{}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(resp.Msg.Groups) != 2 {
		t.Errorf("owner groups: expected 2, got %d", len(resp.Msg.Groups))
	}

	otherResp, err := other.Groups.ListGroups(context.Background(), connect.NewRequest(&api.ListGroupsRequest{}))
	if err != nil {
		t.Fatalf("ListGroups failed: %v", err)
	}
	if len(otherResp.Msg.Groups) != 1 {
		t.Errorf("other groups: expected 1, got %d", len(otherResp.Msg.Groups))
	}
}

func TestUpdateGroup(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	owner := env.registerUser(t, "owner@example.com", "Owner")
	friend := env.registerUser(t, "friend@example.com", "Friend")

	group := createGroup(t, owner, "Original Name")

	resp, err := owner.Groups.UpdateGroup(context.Background(), connect.NewRequest(&api.UpdateGroupRequest{
		GroupID: group.ID,
		Name:    "Updated Name",
		Members: []string{owner.ID, friend.ID},
	}))
	if err != nil {
		t.Fatalf("UpdateGroup failed: %v", err)
	}
	if resp.Msg.Group.Name != "Updated Name" {
		t.Errorf("name not updated: got '%s'", resp.Msg.Group.Name)
	}
	if len(resp.Msg.Group.Members) != 2 {
		t.Errorf("members not updated: expected 2, got %d", len(resp.Msg.Group.Members))
	}

	getResp, err := owner.Groups.GetGroup(context.Background(), connect.NewRequest(&api.GetGroupRequest{
		GroupID: group.ID,
	}))
	if err != nil {
		t.Fatalf("GetGroup failed: %v", err)
	}
	if getResp.Msg.Group.Name != "Updated Name" {
		t.Errorf("persisted name mismatch: got '%s'", getResp.Msg.Group.Name)
	}
}

func TestDeleteGroup(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	owner := env.registerUser(t, "owner@example.com", "Owner")
	group := createGroup(t, owner, "To Be Deleted")

	if _, err := owner.Groups.DeleteGroup(context.Background(), connect.NewRequest(&api.DeleteGroupRequest{
		GroupID: group.ID,
	})); err != nil {
		t.Fatalf("DeleteGroup failed: %v", err)
	}

	_, err := owner.Groups.GetGroup(context.Background(), connect.NewRequest(&api.GetGroupRequest{
		GroupID: group.ID,
	}))
	wantCode(t, err, connect.CodeNotFound)
}

// addDinnerExpense records a 3000 paisa expense paid by payer, split equally
// among the three given members at 1000 each.
func addDinnerExpense(t *testing.T, payer *testUser, groupID string, memberIDs [3]string) {
	t.Helper()

	_, err := payer.Expenses.AddExpense(context.Background(), connect.NewRequest(&api.AddExpenseRequest{
		GroupID:     groupID,
		Description: "Dinner",
		Total:       3000,
		Payers:      []*api.ExpenseShare{{UserID: payer.ID, Amount: 3000}},
		Splits: []*api.ExpenseShare{
			{UserID: memberIDs[0], Amount: 1000},
			{UserID: memberIDs[1], Amount: 1000},
			{UserID: memberIDs[2], Amount: 1000},
		},
	}))
	if err != nil {
		t.Fatalf("AddExpense failed: %v", err)
	}
}

func TestGetGroupBalances(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	asha := env.registerUser(t, "asha@example.com", "Asha")
	bharat := env.registerUser(t, "bharat@example.com", "Bharat")
	chitra := env.registerUser(t, "chitra@example.com", "Chitra")

	group := createGroup(t, asha, "Goa Trip", bharat.ID, chitra.ID)
	addDinnerExpense(t, asha, group.ID, [3]string{asha.ID, bharat.ID, chitra.ID})

	resp, err := asha.Groups.GetGroupBalances(context.Background(), connect.NewRequest(&api.GetGroupBalancesRequest{
		GroupID: group.ID,
	}))
	if err != nil {
		t.Fatalf("GetGroupBalances failed: %v", err)
	}

	balances := make(map[string]int64)
	names := make(map[string]string)
	for _, b := range resp.Msg.Balances {
		balances[b.UserID] = b.NetBalance
		names[b.UserID] = b.DisplayName
	}
	if balances[asha.ID] != 2000 {
		t.Errorf("Asha balance: expected 2000, got %d", balances[asha.ID])
	}
	if balances[bharat.ID] != -1000 {
		t.Errorf("Bharat balance: expected -1000, got %d", balances[bharat.ID])
	}
	if balances[chitra.ID] != -1000 {
		t.Errorf("Chitra balance: expected -1000, got %d", balances[chitra.ID])
	}
	if names[asha.ID] != "Asha" {
		t.Errorf("expected display name 'Asha', got '%s'", names[asha.ID])
	}

	if len(resp.Msg.SimplifiedDebts) != 2 {
		t.Fatalf("expected 2 simplified debts, got %d", len(resp.Msg.SimplifiedDebts))
	}
	var total int64
	for _, debt := range resp.Msg.SimplifiedDebts {
		if debt.ToUserID != asha.ID {
			t.Errorf("expected all transfers to go to Asha, got to %s", debt.ToUserName)
		}
		if debt.Amount != 1000 {
			t.Errorf("expected transfer of 1000, got %d", debt.Amount)
		}
		total += debt.Amount
	}
	if total != 2000 {
		t.Errorf("transfers should cover Asha's full credit: expected 2000, got %d", total)
	}
}

func TestGetGroupBalances_ConfirmedSettlementClearsDebt(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	asha := env.registerUser(t, "asha@example.com", "Asha")
	bharat := env.registerUser(t, "bharat@example.com", "Bharat")
	chitra := env.registerUser(t, "chitra@example.com", "Chitra")

	group := createGroup(t, asha, "Goa Trip", bharat.ID, chitra.ID)
	addDinnerExpense(t, asha, group.ID, [3]string{asha.ID, bharat.ID, chitra.ID})

	// Bharat pays Asha back and Asha confirms
	recResp, err := bharat.Settlements.RecordSettlement(context.Background(), connect.NewRequest(&api.RecordSettlementRequest{
		GroupID:  group.ID,
		ToUserID: asha.ID,
		Amount:   1000,
	}))
	if err != nil {
		t.Fatalf("RecordSettlement failed: %v", err)
	}
	if _, err := asha.Settlements.ConfirmSettlement(context.Background(), connect.NewRequest(&api.ConfirmSettlementRequest{
		SettlementID: recResp.Msg.Settlement.ID,
	})); err != nil {
		t.Fatalf("ConfirmSettlement failed: %v", err)
	}

	resp, err := asha.Groups.GetGroupBalances(context.Background(), connect.NewRequest(&api.GetGroupBalancesRequest{
		GroupID: group.ID,
	}))
	if err != nil {
		t.Fatalf("GetGroupBalances failed: %v", err)
	}

	if len(resp.Msg.SimplifiedDebts) != 1 {
		t.Fatalf("expected 1 remaining debt, got %d", len(resp.Msg.SimplifiedDebts))
	}
	debt := resp.Msg.SimplifiedDebts[0]
	if debt.FromUserID != chitra.ID || debt.ToUserID != asha.ID || debt.Amount != 1000 {
		t.Errorf("expected Chitra to owe Asha 1000, got %s -> %s amount %d",
			debt.FromUserName, debt.ToUserName, debt.Amount)
	}
}

func TestExplainSettlement(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	asha := env.registerUser(t, "asha@example.com", "Asha")
	bharat := env.registerUser(t, "bharat@example.com", "Bharat")
	chitra := env.registerUser(t, "chitra@example.com", "Chitra")

	group := createGroup(t, asha, "Goa Trip", bharat.ID, chitra.ID)
	addDinnerExpense(t, asha, group.ID, [3]string{asha.ID, bharat.ID, chitra.ID})

	resp, err := asha.Groups.ExplainSettlement(context.Background(), connect.NewRequest(&api.ExplainSettlementRequest{
		GroupID: group.ID,
	}))
	if err != nil {
		t.Fatalf("ExplainSettlement failed: %v", err)
	}

	// Two intro steps, one per transfer, one result step
	steps := resp.Msg.Steps
	if len(steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(steps))
	}
	if steps[0].Title != "Original balances" {
		t.Errorf("first step title: got '%s'", steps[0].Title)
	}
	if steps[len(steps)-1].Title != "Result" {
		t.Errorf("last step title: got '%s'", steps[len(steps)-1].Title)
	}

	var transfers int
	for _, step := range steps {
		if step.Settlement != nil {
			transfers++
			if step.Settlement.ToUserID != asha.ID {
				t.Errorf("expected transfers to Asha, got to %s", step.Settlement.ToUserName)
			}
			if !strings.Contains(step.Description, "pays") {
				t.Errorf("payment step description should narrate the payment: '%s'", step.Description)
			}
		}
	}
	if transfers != 2 {
		t.Errorf("expected 2 payment steps, got %d", transfers)
	}

	// Amounts are narrated in the group currency
	if !strings.Contains(steps[2].Description, "₹") {
		t.Errorf("expected INR amounts in description: '%s'", steps[2].Description)
	}

	// Final snapshot is fully settled
	for id, balance := range steps[len(steps)-1].Balances {
		if balance != 0 {
			t.Errorf("final balance for %s: expected 0, got %d", id, balance)
		}
	}
}

func TestExplainSettlement_AlreadySettled(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	asha := env.registerUser(t, "asha@example.com", "Asha")
	group := createGroup(t, asha, "Empty")

	resp, err := asha.Groups.ExplainSettlement(context.Background(), connect.NewRequest(&api.ExplainSettlementRequest{
		GroupID: group.ID,
	}))
	if err != nil {
		t.Fatalf("ExplainSettlement failed: %v", err)
	}

	steps := resp.Msg.Steps
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps for a settled group, got %d", len(steps))
	}
	for _, step := range steps {
		if step.Settlement != nil {
			t.Error("expected no payment steps for a settled group")
		}
	}
}
