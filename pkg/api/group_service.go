package api

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"
)

const (
	// GroupServicePath is the URL prefix all GroupService procedures share.
	GroupServicePath = "/splitkaro.v1.GroupService/"

	GroupServiceCreateGroupProcedure       = "/splitkaro.v1.GroupService/CreateGroup"
	GroupServiceGetGroupProcedure          = "/splitkaro.v1.GroupService/GetGroup"
	GroupServiceListGroupsProcedure        = "/splitkaro.v1.GroupService/ListGroups"
	GroupServiceUpdateGroupProcedure       = "/splitkaro.v1.GroupService/UpdateGroup"
	GroupServiceDeleteGroupProcedure       = "/splitkaro.v1.GroupService/DeleteGroup"
	GroupServiceGetGroupBalancesProcedure  = "/splitkaro.v1.GroupService/GetGroupBalances"
	GroupServiceExplainSettlementProcedure = "/splitkaro.v1.GroupService/ExplainSettlement"
)

// GroupServiceHandler is the server-side interface for the GroupService.
type GroupServiceHandler interface {
	CreateGroup(context.Context, *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error)
	ListGroups(context.Context, *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error)
	UpdateGroup(context.Context, *connect.Request[UpdateGroupRequest]) (*connect.Response[UpdateGroupResponse], error)
	DeleteGroup(context.Context, *connect.Request[DeleteGroupRequest]) (*connect.Response[DeleteGroupResponse], error)
	GetGroupBalances(context.Context, *connect.Request[GetGroupBalancesRequest]) (*connect.Response[GetGroupBalancesResponse], error)
	ExplainSettlement(context.Context, *connect.Request[ExplainSettlementRequest]) (*connect.Response[ExplainSettlementResponse], error)
}

// NewGroupServiceHandler builds an HTTP handler for the GroupService. It
// returns the path on which to mount the handler and the handler itself.
func NewGroupServiceHandler(svc GroupServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSONCodec()}, opts...)
	mux := http.NewServeMux()
	mux.Handle(GroupServiceCreateGroupProcedure, connect.NewUnaryHandler(
		GroupServiceCreateGroupProcedure, svc.CreateGroup, opts...))
	mux.Handle(GroupServiceGetGroupProcedure, connect.NewUnaryHandler(
		GroupServiceGetGroupProcedure, svc.GetGroup, opts...))
	mux.Handle(GroupServiceListGroupsProcedure, connect.NewUnaryHandler(
		GroupServiceListGroupsProcedure, svc.ListGroups, opts...))
	mux.Handle(GroupServiceUpdateGroupProcedure, connect.NewUnaryHandler(
		GroupServiceUpdateGroupProcedure, svc.UpdateGroup, opts...))
	mux.Handle(GroupServiceDeleteGroupProcedure, connect.NewUnaryHandler(
		GroupServiceDeleteGroupProcedure, svc.DeleteGroup, opts...))
	mux.Handle(GroupServiceGetGroupBalancesProcedure, connect.NewUnaryHandler(
		GroupServiceGetGroupBalancesProcedure, svc.GetGroupBalances, opts...))
	mux.Handle(GroupServiceExplainSettlementProcedure, connect.NewUnaryHandler(
		GroupServiceExplainSettlementProcedure, svc.ExplainSettlement, opts...))
	return GroupServicePath, mux
}

// GroupServiceClient is the client-side interface for the GroupService.
type GroupServiceClient interface {
	CreateGroup(context.Context, *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error)
	GetGroup(context.Context, *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error)
	ListGroups(context.Context, *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error)
	UpdateGroup(context.Context, *connect.Request[UpdateGroupRequest]) (*connect.Response[UpdateGroupResponse], error)
	DeleteGroup(context.Context, *connect.Request[DeleteGroupRequest]) (*connect.Response[DeleteGroupResponse], error)
	GetGroupBalances(context.Context, *connect.Request[GetGroupBalancesRequest]) (*connect.Response[GetGroupBalancesResponse], error)
	ExplainSettlement(context.Context, *connect.Request[ExplainSettlementRequest]) (*connect.Response[ExplainSettlementResponse], error)
}

// NewGroupServiceClient builds a client for the GroupService served at baseURL.
func NewGroupServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) GroupServiceClient {
	opts = append([]connect.ClientOption{WithJSONCodec()}, opts...)
	return &groupServiceClient{
		createGroup: connect.NewClient[CreateGroupRequest, CreateGroupResponse](
			httpClient, baseURL+GroupServiceCreateGroupProcedure, opts...),
		getGroup: connect.NewClient[GetGroupRequest, GetGroupResponse](
			httpClient, baseURL+GroupServiceGetGroupProcedure, opts...),
		listGroups: connect.NewClient[ListGroupsRequest, ListGroupsResponse](
			httpClient, baseURL+GroupServiceListGroupsProcedure, opts...),
		updateGroup: connect.NewClient[UpdateGroupRequest, UpdateGroupResponse](
			httpClient, baseURL+GroupServiceUpdateGroupProcedure, opts...),
		deleteGroup: connect.NewClient[DeleteGroupRequest, DeleteGroupResponse](
			httpClient, baseURL+GroupServiceDeleteGroupProcedure, opts...),
		getGroupBalances: connect.NewClient[GetGroupBalancesRequest, GetGroupBalancesResponse](
			httpClient, baseURL+GroupServiceGetGroupBalancesProcedure, opts...),
		explainSettlement: connect.NewClient[ExplainSettlementRequest, ExplainSettlementResponse](
			httpClient, baseURL+GroupServiceExplainSettlementProcedure, opts...),
	}
}

type groupServiceClient struct {
	createGroup       *connect.Client[CreateGroupRequest, CreateGroupResponse]
	getGroup          *connect.Client[GetGroupRequest, GetGroupResponse]
	listGroups        *connect.Client[ListGroupsRequest, ListGroupsResponse]
	updateGroup       *connect.Client[UpdateGroupRequest, UpdateGroupResponse]
	deleteGroup       *connect.Client[DeleteGroupRequest, DeleteGroupResponse]
	getGroupBalances  *connect.Client[GetGroupBalancesRequest, GetGroupBalancesResponse]
	explainSettlement *connect.Client[ExplainSettlementRequest, ExplainSettlementResponse]
}

func (c *groupServiceClient) CreateGroup(ctx context.Context, req *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error) {
	return c.createGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) GetGroup(ctx context.Context, req *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error) {
	return c.getGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) ListGroups(ctx context.Context, req *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error) {
	return c.listGroups.CallUnary(ctx, req)
}

func (c *groupServiceClient) UpdateGroup(ctx context.Context, req *connect.Request[UpdateGroupRequest]) (*connect.Response[UpdateGroupResponse], error) {
	return c.updateGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) DeleteGroup(ctx context.Context, req *connect.Request[DeleteGroupRequest]) (*connect.Response[DeleteGroupResponse], error) {
	return c.deleteGroup.CallUnary(ctx, req)
}

func (c *groupServiceClient) GetGroupBalances(ctx context.Context, req *connect.Request[GetGroupBalancesRequest]) (*connect.Response[GetGroupBalancesResponse], error) {
	return c.getGroupBalances.CallUnary(ctx, req)
}

func (c *groupServiceClient) ExplainSettlement(ctx context.Context, req *connect.Request[ExplainSettlementRequest]) (*connect.Response[ExplainSettlementResponse], error) {
	return c.explainSettlement.CallUnary(ctx, req)
}

// UnimplementedGroupServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedGroupServiceHandler struct{}

func (UnimplementedGroupServiceHandler) CreateGroup(context.Context, *connect.Request[CreateGroupRequest]) (*connect.Response[CreateGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("GroupService.CreateGroup is not implemented"))
}

func (UnimplementedGroupServiceHandler) GetGroup(context.Context, *connect.Request[GetGroupRequest]) (*connect.Response[GetGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("GroupService.GetGroup is not implemented"))
}

func (UnimplementedGroupServiceHandler) ListGroups(context.Context, *connect.Request[ListGroupsRequest]) (*connect.Response[ListGroupsResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("GroupService.ListGroups is not implemented"))
}

func (UnimplementedGroupServiceHandler) UpdateGroup(context.Context, *connect.Request[UpdateGroupRequest]) (*connect.Response[UpdateGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("GroupService.UpdateGroup is not implemented"))
}

func (UnimplementedGroupServiceHandler) DeleteGroup(context.Context, *connect.Request[DeleteGroupRequest]) (*connect.Response[DeleteGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("GroupService.DeleteGroup is not implemented"))
}

func (UnimplementedGroupServiceHandler) GetGroupBalances(context.Context, *connect.Request[GetGroupBalancesRequest]) (*connect.Response[GetGroupBalancesResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("GroupService.GetGroupBalances is not implemented"))
}

func (UnimplementedGroupServiceHandler) ExplainSettlement(context.Context, *connect.Request[ExplainSettlementRequest]) (*connect.Response[ExplainSettlementResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("GroupService.ExplainSettlement is not implemented"))
}
