package api

import (
	"context"
	"errors"
	"net/http"

	"connectrpc.com/connect"
)

const (
	// AuthServicePath is the URL prefix all AuthService procedures share.
	AuthServicePath = "/splitkaro.v1.AuthService/"

	AuthServiceRegisterProcedure       = "/splitkaro.v1.AuthService/Register"
	AuthServiceLoginProcedure          = "/splitkaro.v1.AuthService/Login"
	AuthServiceGetCurrentUserProcedure = "/splitkaro.v1.AuthService/GetCurrentUser"
)

// AuthServiceHandler is the server-side interface for the AuthService.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error)
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler for the AuthService. It
// returns the path on which to mount the handler and the handler itself.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{WithJSONCodec()}, opts...)
	mux := http.NewServeMux()
	mux.Handle(AuthServiceRegisterProcedure, connect.NewUnaryHandler(
		AuthServiceRegisterProcedure, svc.Register, opts...))
	mux.Handle(AuthServiceLoginProcedure, connect.NewUnaryHandler(
		AuthServiceLoginProcedure, svc.Login, opts...))
	mux.Handle(AuthServiceGetCurrentUserProcedure, connect.NewUnaryHandler(
		AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...))
	return AuthServicePath, mux
}

// AuthServiceClient is the client-side interface for the AuthService.
type AuthServiceClient interface {
	Register(context.Context, *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error)
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error)
	GetCurrentUser(context.Context, *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error)
}

// NewAuthServiceClient builds a client for the AuthService served at baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	opts = append([]connect.ClientOption{WithJSONCodec()}, opts...)
	return &authServiceClient{
		register: connect.NewClient[RegisterRequest, RegisterResponse](
			httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login: connect.NewClient[LoginRequest, LoginResponse](
			httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		getCurrentUser: connect.NewClient[GetCurrentUserRequest, GetCurrentUserResponse](
			httpClient, baseURL+AuthServiceGetCurrentUserProcedure, opts...),
	}
}

type authServiceClient struct {
	register       *connect.Client[RegisterRequest, RegisterResponse]
	login          *connect.Client[LoginRequest, LoginResponse]
	getCurrentUser *connect.Client[GetCurrentUserRequest, GetCurrentUserResponse]
}

func (c *authServiceClient) Register(ctx context.Context, req *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

// UnimplementedAuthServiceHandler returns CodeUnimplemented from all methods.
// Embed it to keep forward compatibility when the interface grows.
type UnimplementedAuthServiceHandler struct{}

func (UnimplementedAuthServiceHandler) Register(context.Context, *connect.Request[RegisterRequest]) (*connect.Response[RegisterResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("AuthService.Register is not implemented"))
}

func (UnimplementedAuthServiceHandler) Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[LoginResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("AuthService.Login is not implemented"))
}

func (UnimplementedAuthServiceHandler) GetCurrentUser(context.Context, *connect.Request[GetCurrentUserRequest]) (*connect.Response[GetCurrentUserResponse], error) {
	return nil, connect.NewError(connect.CodeUnimplemented, errors.New("AuthService.GetCurrentUser is not implemented"))
}
