package service

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"connectrpc.com/connect"

	"github.com/splitkaro/backend/internal/middleware"
	"github.com/splitkaro/backend/internal/models"
	"github.com/splitkaro/backend/internal/simplify"
	"github.com/splitkaro/backend/internal/storage"
	"github.com/splitkaro/backend/pkg/api"
)

var (
	errNotAuthenticated = errors.New("not authenticated")
	errNotAMember       = errors.New("user is not a member of this group")
	errGroupName        = errors.New("group name is required")
)

// GroupService implements the Connect GroupService. Besides group CRUD it
// exposes the group's net balances, the simplified settlement plan, and the
// step-by-step explanation of that plan.
type GroupService struct {
	api.UnimplementedGroupServiceHandler
	store storage.Store
}

// NewGroupService creates a new group service.
func NewGroupService(store storage.Store) *GroupService {
	return &GroupService{store: store}
}

func toAPIGroup(group *models.Group) *api.Group {
	return &api.Group{
		ID:        group.ID,
		Name:      group.Name,
		Currency:  group.Currency,
		Members:   group.Members,
		CreatedBy: group.CreatedBy,
		CreatedAt: group.CreatedAt,
	}
}

func isMember(group *models.Group, userID string) bool {
	for _, member := range group.Members {
		if member == userID {
			return true
		}
	}
	return false
}

// memberGroup loads a group and checks the caller belongs to it.
func (s *GroupService) memberGroup(ctx context.Context, groupID, userID string) (*models.Group, error) {
	group, err := s.store.GetGroup(ctx, groupID)
	if err != nil {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if !isMember(group, userID) {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotAMember)
	}
	return group, nil
}

// CreateGroup creates a new group. The creator is always included as a member
// even when omitted from the request.
func (s *GroupService) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNotAuthenticated)
	}
	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errGroupName)
	}

	members := req.Msg.Members
	if !containsString(members, userID) {
		members = append([]string{userID}, members...)
	}

	group := &models.Group{
		Name:      req.Msg.Name,
		Currency:  req.Msg.Currency,
		Members:   members,
		CreatedBy: userID,
	}
	if err := s.store.CreateGroup(ctx, group); err != nil {
		slog.Error("Failed to create group", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Group created", "group_id", group.ID, "user_id", userID, "members", len(group.Members))

	return connect.NewResponse(&api.CreateGroupResponse{Group: toAPIGroup(group)}), nil
}

// GetGroup retrieves a group the caller belongs to.
func (s *GroupService) GetGroup(ctx context.Context, req *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNotAuthenticated)
	}

	group, err := s.memberGroup(ctx, req.Msg.GroupID, userID)
	if err != nil {
		return nil, err
	}

	return connect.NewResponse(&api.GetGroupResponse{Group: toAPIGroup(group)}), nil
}

// ListGroups retrieves all groups the caller belongs to.
func (s *GroupService) ListGroups(ctx context.Context, req *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNotAuthenticated)
	}

	groups, err := s.store.ListGroupsByMember(ctx, userID)
	if err != nil {
		slog.Error("Failed to list groups", "user_id", userID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := &api.ListGroupsResponse{Groups: make([]*api.Group, 0, len(groups))}
	for _, group := range groups {
		resp.Groups = append(resp.Groups, toAPIGroup(group))
	}
	return connect.NewResponse(resp), nil
}

// UpdateGroup replaces a group's name, currency, and member list.
func (s *GroupService) UpdateGroup(ctx context.Context, req *connect.Request[api.UpdateGroupRequest]) (*connect.Response[api.UpdateGroupResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNotAuthenticated)
	}
	if req.Msg.Name == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errGroupName)
	}

	group, err := s.memberGroup(ctx, req.Msg.GroupID, userID)
	if err != nil {
		return nil, err
	}

	group.Name = req.Msg.Name
	if req.Msg.Currency != "" {
		group.Currency = req.Msg.Currency
	}
	if req.Msg.Members != nil {
		group.Members = req.Msg.Members
	}
	if err := s.store.UpdateGroup(ctx, group); err != nil {
		slog.Error("Failed to update group", "group_id", group.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Group updated", "group_id", group.ID, "user_id", userID)

	return connect.NewResponse(&api.UpdateGroupResponse{Group: toAPIGroup(group)}), nil
}

// DeleteGroup removes a group and everything recorded under it.
func (s *GroupService) DeleteGroup(ctx context.Context, req *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNotAuthenticated)
	}

	group, err := s.memberGroup(ctx, req.Msg.GroupID, userID)
	if err != nil {
		return nil, err
	}

	if err := s.store.DeleteGroup(ctx, group.ID); err != nil {
		slog.Error("Failed to delete group", "group_id", group.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Group deleted", "group_id", group.ID, "user_id", userID)

	return connect.NewResponse(&api.DeleteGroupResponse{}), nil
}

// GetGroupBalances computes each member's net position from the group's
// expenses and confirmed settlements, plus the minimal transfer list that
// settles everyone up.
func (s *GroupService) GetGroupBalances(ctx context.Context, req *connect.Request[api.GetGroupBalancesRequest]) (*connect.Response[api.GetGroupBalancesResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNotAuthenticated)
	}

	group, err := s.memberGroup(ctx, req.Msg.GroupID, userID)
	if err != nil {
		return nil, err
	}

	balances, names, err := s.groupBalances(ctx, group)
	if err != nil {
		slog.Error("Failed to compute balances", "group_id", group.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	debts := simplify.Simplify(balances, names)

	resp := &api.GetGroupBalancesResponse{
		Balances:        make([]*api.MemberBalance, 0, len(balances)),
		SimplifiedDebts: make([]*api.SimplifiedDebt, 0, len(debts)),
	}
	for _, id := range sortedKeys(balances) {
		resp.Balances = append(resp.Balances, &api.MemberBalance{
			UserID:      id,
			DisplayName: names[id],
			NetBalance:  balances[id],
		})
	}
	for _, debt := range debts {
		resp.SimplifiedDebts = append(resp.SimplifiedDebts, &api.SimplifiedDebt{
			FromUserID:   debt.FromUserID,
			FromUserName: debt.FromUserName,
			ToUserID:     debt.ToUserID,
			ToUserName:   debt.ToUserName,
			Amount:       debt.Amount,
		})
	}

	slog.Info("Computed group balances", "group_id", group.ID,
		"members_with_balances", len(balances), "transfers", len(debts))

	return connect.NewResponse(resp), nil
}

// ExplainSettlement narrates how the group's simplified settlement plan is
// derived, step by step, using the same inputs as GetGroupBalances.
func (s *GroupService) ExplainSettlement(ctx context.Context, req *connect.Request[api.ExplainSettlementRequest]) (*connect.Response[api.ExplainSettlementResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNotAuthenticated)
	}

	group, err := s.memberGroup(ctx, req.Msg.GroupID, userID)
	if err != nil {
		return nil, err
	}

	balances, names, err := s.groupBalances(ctx, group)
	if err != nil {
		slog.Error("Failed to compute balances", "group_id", group.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	steps := simplify.Explain(balances, names, group.Currency)

	resp := &api.ExplainSettlementResponse{Steps: make([]*api.SimplificationStep, 0, len(steps))}
	for _, step := range steps {
		apiStep := &api.SimplificationStep{
			Title:       step.Title,
			Description: step.Description,
			Balances:    step.Balances,
			Names:       step.Names,
		}
		if step.Settlement != nil {
			apiStep.Settlement = &api.SimplifiedDebt{
				FromUserID:   step.Settlement.FromUserID,
				FromUserName: step.Settlement.FromUserName,
				ToUserID:     step.Settlement.ToUserID,
				ToUserName:   step.Settlement.ToUserName,
				Amount:       step.Settlement.Amount,
			}
		}
		resp.Steps = append(resp.Steps, apiStep)
	}

	return connect.NewResponse(resp), nil
}

// groupBalances loads a group's expenses and settlements and aggregates them
// into net balances, along with display names for everyone involved.
func (s *GroupService) groupBalances(ctx context.Context, group *models.Group) (map[string]int64, map[string]string, error) {
	expenses, err := s.store.ListExpensesByGroup(ctx, group.ID)
	if err != nil {
		return nil, nil, err
	}
	settlements, err := s.store.ListSettlementsByGroup(ctx, group.ID)
	if err != nil {
		return nil, nil, err
	}

	records := make([]simplify.ExpenseRecord, 0, len(expenses))
	for _, expense := range expenses {
		records = append(records, simplify.ExpenseRecord{
			Payers: toShares(expense.Payers),
			Splits: toShares(expense.Splits),
		})
	}

	settled := make([]simplify.SettlementRecord, 0, len(settlements))
	for _, settlement := range settlements {
		settled = append(settled, simplify.SettlementRecord{
			FromUserID: settlement.FromUserID,
			ToUserID:   settlement.ToUserID,
			Amount:     settlement.Amount,
			Status:     simplify.SettlementStatus(settlement.Status),
		})
	}

	balances := simplify.AggregateBalances(records, settled)

	users, err := s.store.GetUsersByIDs(ctx, sortedKeys(balances))
	if err != nil {
		return nil, nil, err
	}
	names := make(map[string]string, len(users))
	for id, user := range users {
		names[id] = user.DisplayName
	}

	return balances, names, nil
}

func toShares(shares []models.ExpenseShare) []simplify.Share {
	out := make([]simplify.Share, 0, len(shares))
	for _, share := range shares {
		out = append(out, simplify.Share{UserID: share.UserID, Amount: share.Amount})
	}
	return out
}

func sortedKeys(balances map[string]int64) []string {
	keys := make([]string, 0, len(balances))
	for id := range balances {
		keys = append(keys, id)
	}
	sort.Strings(keys)
	return keys
}

func containsString(list []string, want string) bool {
	for _, item := range list {
		if item == want {
			return true
		}
	}
	return false
}
