package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kjstillabower/cicd-demo-service/internal/observability"
)

// RouterConfig controls which routes are mounted and how the calculator path is guarded.
type RouterConfig struct {
	Logger            *zap.Logger
	Limiter           *rate.Limiter // nil disables rate limiting
	RequestTimeout    time.Duration // 0 disables the calculator deadline
	CalculatorEnabled bool
}

// NewRouter wires handlers and middleware:
//
//	GET /health, /hello, /version, /metrics
//	GET /calc/{operation}   (rate limited, deadline)
func NewRouter(h *Handler, cfg RouterConfig) *mux.Router {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := mux.NewRouter()
	router.Use(CorrelationIDMiddleware(logger))
	router.Use(MetricsMiddleware)

	router.HandleFunc("/health", h.GetHealth).Methods(http.MethodGet)
	router.HandleFunc("/hello", h.GetHello).Methods(http.MethodGet)
	router.HandleFunc("/version", h.GetVersion).Methods(http.MethodGet)
	router.Handle("/metrics", observability.MetricsHandler()).Methods(http.MethodGet)

	if cfg.CalculatorEnabled {
		calcRouter := router.PathPrefix("/calc").Subrouter()
		calcRouter.Use(RateLimitMiddleware(cfg.Limiter))
		if cfg.RequestTimeout > 0 {
			calcRouter.Use(TimeoutMiddleware(cfg.RequestTimeout))
		}
		calcRouter.HandleFunc("/{operation}", h.GetCalc).Methods(http.MethodGet)
	}

	return router
}
