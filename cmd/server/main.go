package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/splitkaro/backend/internal/auth"
	"github.com/splitkaro/backend/internal/config"
	"github.com/splitkaro/backend/internal/middleware"
	"github.com/splitkaro/backend/internal/service"
	"github.com/splitkaro/backend/internal/storage/sqlite"
	"github.com/splitkaro/backend/pkg/api"
	"github.com/splitkaro/backend/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	// OptionalAuth so GetCurrentUser sees the token while Register/Login stay open
	publicOpts := connect.WithInterceptors(
		middleware.MetricsInterceptor(),
		middleware.OptionalAuth(jwtManager),
		middleware.LoggingInterceptor(),
	)
	authedOpts := connect.WithInterceptors(
		middleware.MetricsInterceptor(),
		middleware.RequireAuth(jwtManager),
		middleware.LoggingInterceptor(),
	)

	mux := http.NewServeMux()

	authPath, authHandler := api.NewAuthServiceHandler(
		service.NewAuthService(authenticator, jwtManager, store), publicOpts)
	mux.Handle(authPath, authHandler)

	groupPath, groupHandler := api.NewGroupServiceHandler(
		service.NewGroupService(store), authedOpts)
	mux.Handle(groupPath, groupHandler)

	expensePath, expenseHandler := api.NewExpenseServiceHandler(
		service.NewExpenseService(store), authedOpts)
	mux.Handle(expensePath, expenseHandler)

	settlementPath, settlementHandler := api.NewSettlementServiceHandler(
		service.NewSettlementService(store), authedOpts)
	mux.Handle(settlementPath, settlementHandler)

	mux.Handle("/metrics", promhttp.Handler())

	handler := corsMiddleware(mux)

	// h2c allows HTTP/2 without TLS, which Connect clients use
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	slog.Info("Server starting", "address", addr)
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
