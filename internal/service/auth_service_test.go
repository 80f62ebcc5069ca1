package service

import (
	"context"
	"net/http"
	"testing"

	"connectrpc.com/connect"

	"github.com/splitkaro/backend/pkg/api"
)

func TestRegisterAndLogin(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	regResp, err := env.authClient.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:       "asha@example.com",
		DisplayName: "Asha",
		Password:    "long-enough-password",
	}))
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if regResp.Msg.User.ID == "" {
		t.Error("expected non-empty user ID")
	}
	if regResp.Msg.Token == "" {
		t.Error("expected a session token")
	}
	if regResp.Msg.User.DisplayName != "Asha" {
		t.Errorf("display name: expected 'Asha', got '%s'", regResp.Msg.User.DisplayName)
	}

	loginResp, err := env.authClient.Login(context.Background(), connect.NewRequest(&api.LoginRequest{
		Email:    "asha@example.com",
		Password: "long-enough-password",
	}))
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if loginResp.Msg.User.ID != regResp.Msg.User.ID {
		t.Errorf("login returned different user: %s vs %s", loginResp.Msg.User.ID, regResp.Msg.User.ID)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	env.registerUser(t, "dup@example.com", "First")

	_, err := env.authClient.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:       "dup@example.com",
		DisplayName: "Second",
		Password:    "long-enough-password",
	}))
	wantCode(t, err, connect.CodeAlreadyExists)
}

func TestRegister_WeakPassword(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	_, err := env.authClient.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Email:       "weak@example.com",
		DisplayName: "Weak",
		Password:    "short",
	}))
	wantCode(t, err, connect.CodeInvalidArgument)
}

func TestLogin_WrongPassword(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	env.registerUser(t, "bharat@example.com", "Bharat")

	_, err := env.authClient.Login(context.Background(), connect.NewRequest(&api.LoginRequest{
		Email:    "bharat@example.com",
		Password: "not-the-password",
	}))
	wantCode(t, err, connect.CodeUnauthenticated)
}

func TestGetCurrentUser(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	user := env.registerUser(t, "chitra@example.com", "Chitra")

	authedClient := api.NewAuthServiceClient(http.DefaultClient, env.serverURL,
		connect.WithInterceptors(bearerAuth(user.Token)))

	resp, err := authedClient.GetCurrentUser(context.Background(), connect.NewRequest(&api.GetCurrentUserRequest{}))
	if err != nil {
		t.Fatalf("GetCurrentUser failed: %v", err)
	}
	if resp.Msg.User.ID != user.ID {
		t.Errorf("expected user %s, got %s", user.ID, resp.Msg.User.ID)
	}
	if resp.Msg.User.DisplayName != "Chitra" {
		t.Errorf("display name: expected 'Chitra', got '%s'", resp.Msg.User.DisplayName)
	}
}

func TestGetCurrentUser_NoToken(t *testing.T) {
	env := setupTestServer(t)
	defer env.cleanup()

	_, err := env.authClient.GetCurrentUser(context.Background(), connect.NewRequest(&api.GetCurrentUserRequest{}))
	wantCode(t, err, connect.CodeUnauthenticated)
}
