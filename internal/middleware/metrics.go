package middleware

import (
	"context"
	"errors"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rpcRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "splitkaro_rpc_requests_total",
			Help: "Total RPC requests by procedure and result code.",
		},
		[]string{"procedure", "code"},
	)

	rpcDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "splitkaro_rpc_duration_seconds",
			Help:    "RPC handling latency by procedure.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"procedure"},
	)
)

// MetricsInterceptor returns a Connect interceptor that records request
// counts and latencies for every RPC. Exposed via /metrics in the server.
func MetricsInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			code := "ok"
			if err != nil {
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					code = connectErr.Code().String()
				} else {
					code = "unknown"
				}
			}

			rpcRequests.WithLabelValues(procedure, code).Inc()
			rpcDuration.WithLabelValues(procedure).Observe(time.Since(start).Seconds())

			return resp, err
		}
	}
}
