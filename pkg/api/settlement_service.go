package api

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"
)

const (
	// SettlementServicePath is the URL prefix all SettlementService procedures share.
	SettlementServicePath = "/splitkaro.v1.SettlementService/"

	SettlementServiceRecordSettlementProcedure       = "/splitkaro.v1.SettlementService/RecordSettlement"
	SettlementServiceConfirmSettlementProcedure      = "/splitkaro.v1.SettlementService/ConfirmSettlement"
	SettlementServiceRejectSettlementProcedure       = "/splitkaro.v1.SettlementService/RejectSettlement"
	SettlementServiceListSettlementsByGroupProcedure = "/splitkaro.v1.SettlementService/ListSettlementsByGroup"
)

// SettlementServiceHandler is the server-side interface for the SettlementService.
type SettlementServiceHandler interface {
	RecordSettlement(context.Context, *connect.Request[RecordSettlementRequest]) (*connect.Response[RecordSettlementResponse], error)
	ConfirmSettlement(context.Context, *connect.Request[ConfirmSettlementRequest]) (*connect.Response[ConfirmSettlementResponse], error)
	RejectSettlement(context.Context, *connect.Request[RejectSettlementRequest]) (*connect.Response[RejectSettlementResponse], error)
	ListSettlementsByGroup(context.Context, *connect.Request[ListSettlementsByGroupRequest]) (*connect.Response[ListSettlementsByGroupResponse], error)
}

// NewSettlementServiceHandler builds an HTTP handler for the SettlementService.
// It returns the path on which to mount the handler and the handler itself.
func NewSettlementServiceHandler(svc SettlementServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSONCodec()}, opts...)
	mux := http.NewServeMux()
	mux.Handle(SettlementServiceRecordSettlementProcedure, connect.NewUnaryHandler(
		SettlementServiceRecordSettlementProcedure, svc.RecordSettlement, opts...))
	mux.Handle(SettlementServiceConfirmSettlementProcedure, connect.NewUnaryHandler(
		SettlementServiceConfirmSettlementProcedure, svc.ConfirmSettlement, opts...))
	mux.Handle(SettlementServiceRejectSettlementProcedure, connect.NewUnaryHandler(
		SettlementServiceRejectSettlementProcedure, svc.RejectSettlement, opts...))
	mux.Handle(SettlementServiceListSettlementsByGroupProcedure, connect.NewUnaryHandler(
		SettlementServiceListSettlementsByGroupProcedure, svc.ListSettlementsByGroup, opts...))
	return SettlementServicePath, mux
}

// SettlementServiceClient is the client-side interface for the SettlementService.
type SettlementServiceClient interface {
	RecordSettlement(context.Context, *connect.Request[RecordSettlementRequest]) (*connect.Response[RecordSettlementResponse], error)
	ConfirmSettlement(context.Context, *connect.Request[ConfirmSettlementRequest]) (*connect.Response[ConfirmSettlementResponse], error)
	RejectSettlement(context.Context, *connect.Request[RejectSettlementRequest]) (*connect.Response[RejectSettlementResponse], error)
	ListSettlementsByGroup(context.Context, *connect.Request[ListSettlementsByGroupRequest]) (*connect.Response[ListSettlementsByGroupResponse], error)
}

// NewSettlementServiceClient builds a client for the SettlementService served at baseURL.
func NewSettlementServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) SettlementServiceClient {
	opts = append([]connect.ClientOption{WithJSONCodec()}, opts...)
	return &settlementServiceClient{
		recordSettlement: connect.NewClient[RecordSettlementRequest, RecordSettlementResponse](
			httpClient, baseURL+SettlementServiceRecordSettlementProcedure, opts...),
		confirmSettlement: connect.NewClient[ConfirmSettlementRequest, ConfirmSettlementResponse](
			httpClient, baseURL+SettlementServiceConfirmSettlementProcedure, opts...),
		rejectSettlement: connect.NewClient[RejectSettlementRequest, RejectSettlementResponse](
			httpClient, baseURL+SettlementServiceRejectSettlementProcedure, opts...),
		listSettlementsByGroup: connect.NewClient[ListSettlementsByGroupRequest, ListSettlementsByGroupResponse](
			httpClient, baseURL+SettlementServiceListSettlementsByGroupProcedure, opts...),
	}
}

type settlementServiceClient struct {
	recordSettlement       *connect.Client[RecordSettlementRequest, RecordSettlementResponse]
	confirmSettlement      *connect.Client[ConfirmSettlementRequest, ConfirmSettlementResponse]
	rejectSettlement       *connect.Client[RejectSettlementRequest, RejectSettlementResponse]
	listSettlementsByGroup *connect.Client[ListSettlementsByGroupRequest, ListSettlementsByGroupResponse]
}

func (c *settlementServiceClient) RecordSettlement(ctx context.Context, req *connect.Request[RecordSettlementRequest]) (*connect.Response[RecordSettlementResponse], error) {
	return c.recordSettlement.CallUnary(ctx, req)
}

func (c *settlementServiceClient) ConfirmSettlement(ctx context.Context, req *connect.Request[ConfirmSettlementRequest]) (*connect.Response[ConfirmSettlementResponse], error) {
	return c.confirmSettlement.CallUnary(ctx, req)
}

func (c *settlementServiceClient) RejectSettlement(ctx context.Context, req *connect.Request[RejectSettlementRequest]) (*connect.Response[RejectSettlementResponse], error) {
	return c.rejectSettlement.CallUnary(ctx, req)
}

func (c *settlementServiceClient) ListSettlementsByGroup(ctx context.Context, req *connect.Request[ListSettlementsByGroupRequest]) (*connect.Response[ListSettlementsByGroupResponse], error) {
	return c.listSettlementsByGroup.CallUnary(ctx, req)
}

// UnimplementedSettlementServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedSettlementServiceHandler struct{}

func (UnimplementedSettlementServiceHandler) RecordSettlement(context.Context, *connect.Request[RecordSettlementRequest]) (*connect.Response[RecordSettlementResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("SettlementService.RecordSettlement is not implemented"))
}

func (UnimplementedSettlementServiceHandler) ConfirmSettlement(context.Context, *connect.Request[ConfirmSettlementRequest]) (*connect.Response[ConfirmSettlementResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("SettlementService.ConfirmSettlement is not implemented"))
}

func (UnimplementedSettlementServiceHandler) RejectSettlement(context.Context, *connect.Request[RejectSettlementRequest]) (*connect.Response[RejectSettlementResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("SettlementService.RejectSettlement is not implemented"))
}

func (UnimplementedSettlementServiceHandler) ListSettlementsByGroup(context.Context, *connect.Request[ListSettlementsByGroupRequest]) (*connect.Response[ListSettlementsByGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("SettlementService.ListSettlementsByGroup is not implemented"))
}
