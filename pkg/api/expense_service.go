package api

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"
)

const (
	// ExpenseServicePath is the URL prefix all ExpenseService procedures share.
	ExpenseServicePath = "/splitkaro.v1.ExpenseService/"

	ExpenseServiceAddExpenseProcedure          = "/splitkaro.v1.ExpenseService/AddExpense"
	ExpenseServiceGetExpenseProcedure          = "/splitkaro.v1.ExpenseService/GetExpense"
	ExpenseServiceListExpensesByGroupProcedure = "/splitkaro.v1.ExpenseService/ListExpensesByGroup"
	ExpenseServiceDeleteExpenseProcedure       = "/splitkaro.v1.ExpenseService/DeleteExpense"
)

// ExpenseServiceHandler is the server-side interface for the ExpenseService.
type ExpenseServiceHandler interface {
	AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error)
	GetExpense(context.Context, *connect.Request[GetExpenseRequest]) (*connect.Response[GetExpenseResponse], error)
	ListExpensesByGroup(context.Context, *connect.Request[ListExpensesByGroupRequest]) (*connect.Response[ListExpensesByGroupResponse], error)
	DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error)
}

// NewExpenseServiceHandler builds an HTTP handler for the ExpenseService. It
// returns the path on which to mount the handler and the handler itself.
func NewExpenseServiceHandler(svc ExpenseServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSONCodec()}, opts...)
	mux := http.NewServeMux()
	mux.Handle(ExpenseServiceAddExpenseProcedure, connect.NewUnaryHandler(
		ExpenseServiceAddExpenseProcedure, svc.AddExpense, opts...))
	mux.Handle(ExpenseServiceGetExpenseProcedure, connect.NewUnaryHandler(
		ExpenseServiceGetExpenseProcedure, svc.GetExpense, opts...))
	mux.Handle(ExpenseServiceListExpensesByGroupProcedure, connect.NewUnaryHandler(
		ExpenseServiceListExpensesByGroupProcedure, svc.ListExpensesByGroup, opts...))
	mux.Handle(ExpenseServiceDeleteExpenseProcedure, connect.NewUnaryHandler(
		ExpenseServiceDeleteExpenseProcedure, svc.DeleteExpense, opts...))
	return ExpenseServicePath, mux
}

// ExpenseServiceClient is the client-side interface for the ExpenseService.
type ExpenseServiceClient interface {
	AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error)
	GetExpense(context.Context, *connect.Request[GetExpenseRequest]) (*connect.Response[GetExpenseResponse], error)
	ListExpensesByGroup(context.Context, *connect.Request[ListExpensesByGroupRequest]) (*connect.Response[ListExpensesByGroupResponse], error)
	DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error)
}

// NewExpenseServiceClient builds a client for the ExpenseService served at baseURL.
func NewExpenseServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ExpenseServiceClient {
	opts = append([]connect.ClientOption{WithJSONCodec()}, opts...)
	return &expenseServiceClient{
		addExpense: connect.NewClient[AddExpenseRequest, AddExpenseResponse](
			httpClient, baseURL+ExpenseServiceAddExpenseProcedure, opts...),
		getExpense: connect.NewClient[GetExpenseRequest, GetExpenseResponse](
			httpClient, baseURL+ExpenseServiceGetExpenseProcedure, opts...),
		listExpensesByGroup: connect.NewClient[ListExpensesByGroupRequest, ListExpensesByGroupResponse](
			httpClient, baseURL+ExpenseServiceListExpensesByGroupProcedure, opts...),
		deleteExpense: connect.NewClient[DeleteExpenseRequest, DeleteExpenseResponse](
			httpClient, baseURL+ExpenseServiceDeleteExpenseProcedure, opts...),
	}
}

type expenseServiceClient struct {
	addExpense          *connect.Client[AddExpenseRequest, AddExpenseResponse]
	getExpense          *connect.Client[GetExpenseRequest, GetExpenseResponse]
	listExpensesByGroup *connect.Client[ListExpensesByGroupRequest, ListExpensesByGroupResponse]
	deleteExpense       *connect.Client[DeleteExpenseRequest, DeleteExpenseResponse]
}

func (c *expenseServiceClient) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) GetExpense(ctx context.Context, req *connect.Request[GetExpenseRequest]) (*connect.Response[GetExpenseResponse], error) {
	return c.getExpense.CallUnary(ctx, req)
}

func (c *expenseServiceClient) ListExpensesByGroup(ctx context.Context, req *connect.Request[ListExpensesByGroupRequest]) (*connect.Response[ListExpensesByGroupResponse], error) {
	return c.listExpensesByGroup.CallUnary(ctx, req)
}

func (c *expenseServiceClient) DeleteExpense(ctx context.Context, req *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return c.deleteExpense.CallUnary(ctx, req)
}

// UnimplementedExpenseServiceHandler returns CodeUnimplemented from all methods.
type UnimplementedExpenseServiceHandler struct{}

func (UnimplementedExpenseServiceHandler) AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[AddExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ExpenseService.AddExpense is not implemented"))
}

func (UnimplementedExpenseServiceHandler) GetExpense(context.Context, *connect.Request[GetExpenseRequest]) (*connect.Response[GetExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ExpenseService.GetExpense is not implemented"))
}

func (UnimplementedExpenseServiceHandler) ListExpensesByGroup(context.Context, *connect.Request[ListExpensesByGroupRequest]) (*connect.Response[ListExpensesByGroupResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ExpenseService.ListExpensesByGroup is not implemented"))
}

func (UnimplementedExpenseServiceHandler) DeleteExpense(context.Context, *connect.Request[DeleteExpenseRequest]) (*connect.Response[DeleteExpenseResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("ExpenseService.DeleteExpense is not implemented"))
}
