package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/splitkaro/backend/internal/middleware"
	"github.com/splitkaro/backend/internal/models"
	"github.com/splitkaro/backend/internal/simplify"
	"github.com/splitkaro/backend/internal/storage"
	"github.com/splitkaro/backend/pkg/api"
)

var (
	errSettlementAmount = errors.New("settlement amount must be positive")
	errSettleSelf       = errors.New("cannot record a settlement to yourself")
	errNotPayee         = errors.New("only the payee can confirm a settlement")
	errNotParty         = errors.New("only the payer or payee can reject a settlement")
	errNotPending       = errors.New("settlement is no longer pending")
)

// SettlementService implements the Connect SettlementService. Settlements
// start out pending and only affect balances once the payee confirms them.
type SettlementService struct {
	api.UnimplementedSettlementServiceHandler
	store storage.Store
}

// NewSettlementService creates a new settlement service.
func NewSettlementService(store storage.Store) *SettlementService {
	return &SettlementService{store: store}
}

func toAPISettlement(settlement *models.Settlement) *api.Settlement {
	return &api.Settlement{
		ID:         settlement.ID,
		GroupID:    settlement.GroupID,
		FromUserID: settlement.FromUserID,
		ToUserID:   settlement.ToUserID,
		Amount:     settlement.Amount,
		Status:     settlement.Status,
		Note:       settlement.Note,
		CreatedBy:  settlement.CreatedBy,
		CreatedAt:  settlement.CreatedAt,
	}
}

// RecordSettlement records a pending payment from the caller to another group
// member. The response flags whether the amount is large enough to require
// biometric step-up before the client lets the user confirm it.
func (s *SettlementService) RecordSettlement(ctx context.Context, req *connect.Request[api.RecordSettlementRequest]) (*connect.Response[api.RecordSettlementResponse], error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNotAuthenticated)
	}
	if req.Msg.Amount <= 0 {
		return nil, connect.NewError(connect.CodeInvalidArgument, errSettlementAmount)
	}
	if req.Msg.ToUserID == userID {
		return nil, connect.NewError(connect.CodeInvalidArgument, errSettleSelf)
	}

	group, err := s.store.GetGroup(ctx, req.Msg.GroupID)
	if err != nil {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if !isMember(group, userID) {
		return nil, connect.NewError(connect.CodePermissionDenied, errNotAMember)
	}
	if !isMember(group, req.Msg.ToUserID) {
		return nil, connect.NewError(connect.CodeInvalidArgument, errNotAMember)
	}

	settlement := &models.Settlement{
		GroupID:    group.ID,
		FromUserID: userID,
		ToUserID:   req.Msg.ToUserID,
		Amount:     req.Msg.Amount,
		Status:     models.SettlementStatusPending,
		CreatedBy:  userID,
		Note:       req.Msg.Note,
	}
	if err := s.store.CreateSettlement(ctx, settlement); err != nil {
		slog.Error("Failed to create settlement", "group_id", group.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	requiresBiometric := simplify.RequiresBiometric(settlement.Amount)

	slog.Info("Settlement recorded", "settlement_id", settlement.ID, "group_id", group.ID,
		"from", settlement.FromUserID, "to", settlement.ToUserID,
		"amount", settlement.Amount, "requires_biometric", requiresBiometric)

	return connect.NewResponse(&api.RecordSettlementResponse{
		Settlement:        toAPISettlement(settlement),
		RequiresBiometric: requiresBiometric,
	}), nil
}

// ConfirmSettlement marks a pending settlement as confirmed. Only the payee
// can confirm; once confirmed the settlement reduces outstanding balances.
func (s *SettlementService) ConfirmSettlement(ctx context.Context, req *connect.Request[api.ConfirmSettlementRequest]) (*connect.Response[api.ConfirmSettlementResponse], error) {
	settlement, err := s.transitionSettlement(ctx, req.Msg.SettlementID, models.SettlementStatusConfirmed)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.ConfirmSettlementResponse{Settlement: toAPISettlement(settlement)}), nil
}

// RejectSettlement marks a pending settlement as rejected. Either party can
// reject; rejected settlements never affect balances.
func (s *SettlementService) RejectSettlement(ctx context.Context, req *connect.Request[api.RejectSettlementRequest]) (*connect.Response[api.RejectSettlementResponse], error) {
	settlement, err := s.transitionSettlement(ctx, req.Msg.SettlementID, models.SettlementStatusRejected)
	if err != nil {
		return nil, err
	}
	return connect.NewResponse(&api.RejectSettlementResponse{Settlement: toAPISettlement(settlement)}), nil
}

func (s *SettlementService) transitionSettlement(ctx context.Context, settlementID, status string) (*models.Settlement, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return nil, connect.NewError(connect.CodeUnauthenticated, errNotAuthenticated)
	}

	settlement, err := s.store.GetSettlement(ctx, settlementID)
	if err != nil {
		return nil, connect.NewError(connect.CodeNotFound, err)
	}
	if settlement.Status != models.SettlementStatusPending {
		return nil, connect.NewError(connect.CodeFailedPrecondition, errNotPending)
	}

	switch status {
	case models.SettlementStatusConfirmed:
		if settlement.ToUserID != userID {
			return nil, connect.NewError(connect.CodePermissionDenied, errNotPayee)
		}
	case models.SettlementStatusRejected:
		if settlement.FromUserID != userID && settlement.ToUserID != userID {
			return nil, connect.NewError(connect.CodePermissionDenied, errNotParty)
		}
	}

	if err := s.store.UpdateSettlementStatus(ctx, settlement.ID, status); err != nil {
		slog.Error("Failed to update settlement status", "settlement_id", settlement.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}
	settlement.Status = status

	slog.Info("Settlement status changed", "settlement_id", settlement.ID,
		"status", status, "user_id", userID)

	return settlement, nil
}

// ListSettlementsByGroup retrieves all settlements in a group, newest first.
func (s *SettlementService) ListSettlementsByGroup(ctx context.Context, req *connect.Request[api.ListSettlementsByGroupRequest]) (*connect.Response[api.ListSettlementsByGroupResponse], error) {
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

	settlements, err := s.store.ListSettlementsByGroup(ctx, group.ID)
	if err != nil {
		slog.Error("Failed to list settlements", "group_id", group.ID, "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	resp := &api.ListSettlementsByGroupResponse{Settlements: make([]*api.Settlement, 0, len(settlements))}
	for _, settlement := range settlements {
		resp.Settlements = append(resp.Settlements, toAPISettlement(settlement))
	}
	return connect.NewResponse(resp), nil
}
