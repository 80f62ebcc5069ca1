package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/splitkaro/backend/internal/auth"
	"github.com/splitkaro/backend/internal/middleware"
	"github.com/splitkaro/backend/internal/storage/sqlite"
	"github.com/splitkaro/backend/pkg/api"
)

// testEnv wires all four services behind an httptest server with real JWT
// auth, the same way the production server does.
type testEnv struct {
	serverURL  string
	authClient api.AuthServiceClient
	cleanup    func()
}

func setupTestServer(t *testing.T) *testEnv {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create store: %v", err)
	}

	jwtManager := auth.NewJWTManager("test-secret-key", time.Hour)
	authenticator := auth.NewPasswordAuthenticator(store)

	publicOpts := connect.WithInterceptors(middleware.OptionalAuth(jwtManager))
	authedOpts := connect.WithInterceptors(middleware.RequireAuth(jwtManager))

	mux := http.NewServeMux()

	authPath, authHandler := api.NewAuthServiceHandler(
		NewAuthService(authenticator, jwtManager, store), publicOpts)
	mux.Handle(authPath, authHandler)

	groupPath, groupHandler := api.NewGroupServiceHandler(NewGroupService(store), authedOpts)
	mux.Handle(groupPath, groupHandler)

	expensePath, expenseHandler := api.NewExpenseServiceHandler(NewExpenseService(store), authedOpts)
	mux.Handle(expensePath, expenseHandler)

	settlementPath, settlementHandler := api.NewSettlementServiceHandler(NewSettlementService(store), authedOpts)
	mux.Handle(settlementPath, settlementHandler)

	server := httptest.NewServer(mux)

	env := &testEnv{
		serverURL:  server.URL,
		authClient: api.NewAuthServiceClient(http.DefaultClient, server.URL),
		cleanup: func() {
			server.Close()
			store.Close()
			os.Remove(tmpFile.Name())
		},
	}
	return env
}

// bearerAuth returns a client interceptor that attaches the given token to
// every outgoing request.
func bearerAuth(token string) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			req.Header().Set("Authorization", "Bearer "+token)
			return next(ctx, req)
		}
	}
}

// testUser is a registered account plus clients authenticated as it.
type testUser struct {
	ID          string
	Token       string
	Groups      api.GroupServiceClient
	Expenses    api.ExpenseServiceClient
	Settlements api.SettlementServiceClient
}

func (e *testEnv) registerUser(t *testing.T, email, displayName string) *testUser {
	t.Helper()

	resp, err := e.authClient.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:       email,
		DisplayName: displayName,
		Password:    "correct-horse-battery",
	}))
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", email, err)
	}

	opts := connect.WithInterceptors(bearerAuth(resp.Msg.Token))
	return &testUser{
		ID:          resp.Msg.User.ID,
		Token:       resp.Msg.Token,
		Groups:      api.NewGroupServiceClient(http.DefaultClient, e.serverURL, opts),
		Expenses:    api.NewExpenseServiceClient(http.DefaultClient, e.serverURL, opts),
		Settlements: api.NewSettlementServiceClient(http.DefaultClient, e.serverURL, opts),
	}
}

// createGroup creates a group owned by the given user with the listed extra members.
func createGroup(t *testing.T, owner *testUser, name string, members ...string) *api.Group {
	t.Helper()

	resp, err := owner.Groups.CreateGroup(context.Background(), connect.NewRequest(&api.CreateGroupRequest{
		Name:    name,
		Members: members,
	}))
	if err != nil {
		t.Fatalf("CreateGroup failed: %v", err)
	}
	return resp.Msg.Group
}

func wantCode(t *testing.T, err error, code connect.Code) {
	t.Helper()

	if err == nil {
		t.Fatalf("expected error with code %v, got nil", code)
	}
	connectErr, ok := err.(*connect.Error)
	if !ok {
		t.Fatalf("expected connect.Error, got %T: %v", err, err)
	}
	if connectErr.Code() != code {
		t.Fatalf("expected code %v, got %v (%s)", code, connectErr.Code(), connectErr.Message())
	}
}
