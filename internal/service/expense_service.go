package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/splitkaro/backend/internal/middleware"
	"github.com/splitkaro/backend/internal/models"
	"github.com/splitkaro/backend/internal/storage"
	"github.com/splitkaro/backend/pkg/api"
)

var (
	errExpenseTotal  = errors.New("expense total must be positive")
	errExpenseShares = errors.New("expense needs at least one payer and one split")
)

// ExpenseService implements the Connect ExpenseService.
type ExpenseService struct {
	api.UnimplementedExpenseServiceHandler
	store storage.Store
}

// NewExpenseService creates a new expense service.
func NewExpenseService(store storage.Store) *ExpenseService {
	return &ExpenseService{store: store}
}

func toAPIExpense(expense *models.Expense) *api.Expense {
	return &api.Expense{
		ID:          expense.ID,
		GroupID:     expense.GroupID,
		Description: expense.Description,
		Total:       expense.Total,
		Payers:      toAPIShares(expense.Payers),
		Splits:      toAPIShares(expense.Splits),
		CreatedBy:   expense.CreatedBy,
		CreatedAt:   expense.CreatedAt,
	}
}

func toAPIShares(shares []models.ExpenseShare) []*api.ExpenseShare {
	out := make([]*api.ExpenseShare, 0, len(shares))
	for _, share := range shares {
		out = append(out, &api.ExpenseShare{UserID: share.UserID, Amount: share.Amount})
	}
	return out
}

func fromAPIShares(shares []*api.ExpenseShare) []models.ExpenseShare {
	out := make([]models.ExpenseShare, 0, len(shares))
	for _, share := range shares {
		out = append(out, models.ExpenseShare{UserID: share.UserID, Amount: share.Amount})
	}
	return out
}

// validateExpense checks that the shares are well formed: both payer amounts
// and split amounts sum to the total, every amount is positive, and every
// participant is a group member.
func validateExpense(group *models.Group, total int64, payers, splits []models.ExpenseShare) error {
	if total <= 0 {
		return errExpenseTotal
	}
	if len(payers) == 0 || len(splits) == 0 {
		return errExpenseShares
	}

	var paid, owed int64
	for _, share := range payers {
		if share.Amount <= 0 {
			return fmt.Errorf("payer %s has non-positive amount %d", share.UserID, share.Amount)
		}
		if !isMember(group, share.UserID) {
			return fmt.Errorf("payer %s is not a member of the group", share.UserID)
		}
		paid += share.Amount
	}
	for _, share := range splits {
		if share.Amount <= 0 {
			return fmt.Errorf("split for %s has non-positive amount %d", share.UserID, share.Amount)
		}
		if !isMember(group, share.UserID) {
			return fmt.Errorf("split user %s is not a member of the group", share.UserID)
		}
		owed += share.Amount
	}

	if paid != total {
		return fmt.Errorf("payer amounts sum to %d, expected total %d", paid, total)
	}
	if owed != total {
		return fmt.Errorf("split amounts sum to %d, expected total %d", owed, total)
	}
	return nil
}

// AddExpense records a new expense in a group the caller belongs to.
func (s *ExpenseService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNotAuthenticated)
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if !isMember(group, userID) {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotAMember)
	}

	payers := fromAPIShares(req.Msg.Payers)
	splits := fromAPIShares(req.Msg.Splits)
	if err := validateExpense(group, req.Msg.Total, payers, splits); err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	expense := &models.Expense{
		GroupID:     group.ID,
		Description: req.Msg.Description,
		Total:       req.Msg.Total,
		Payers:      payers,
		Splits:      splits,
		CreatedBy:   userID,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("Failed to create expense", "group_id", group.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Expense added", "expense_id", expense.ID, "group_id", group.ID,
		"total", expense.Total, "user_id", userID)

	return connect.NewResponse(&api.AddExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// GetExpense retrieves a single expense from a group the caller belongs to.
func (s *ExpenseService) GetExpense(ctx context.Context, req *connect.Request[api.GetExpenseRequest]) (*connect.Response[api.GetExpenseResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNotAuthenticated)
	}

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	group, err := s.store.GetGroup(ctx, expense.GroupID)
	if err != nil {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if !isMember(group, userID) {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotAMember)
	}

	return connect.NewResponse(&api.GetExpenseResponse{Expense: toAPIExpense(expense)}), nil
}

// ListExpensesByGroup retrieves all expenses in a group, newest first.
func (s *ExpenseService) ListExpensesByGroup(ctx context.Context, req *connect.Request[api.ListExpensesByGroupRequest]) (*connect.Response[api.ListExpensesByGroupResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNotAuthenticated)
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if !isMember(group, userID) {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotAMember)
	}

	expenses, err := s.store.ListExpensesByGroup(ctx, group.ID)
	if err != nil {
		slog.Error("Failed to list expenses", "group_id", group.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := &api.ListExpensesByGroupResponse{Expenses: make([]*api.Expense, 0, len(expenses))}
	for _, expense := range expenses {
		resp.Expenses = append(resp.Expenses, toAPIExpense(expense))
	}
	return connect.NewResponse(resp), nil
}

// DeleteExpense removes an expense from a group the caller belongs to.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNotAuthenticated)
	}

	expense, err := s.store.GetExpense(ctx, req.Msg.ExpenseID)
	if err != nil {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}

	group, err := s.store.GetGroup(ctx, expense.GroupID)
	if err != nil {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if !isMember(group, userID) {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotAMember)
	}

	if err := s.store.DeleteExpense(ctx, expense.ID); err != nil {
		slog.Error("Failed to delete expense", "expense_id", expense.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Expense deleted", "expense_id", expense.ID, "group_id", group.ID, "user_id", userID)

	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}
