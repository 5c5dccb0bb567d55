package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kjstillabower/cicd-demo-service/internal/lifecycle"
	"github.com/kjstillabower/cicd-demo-service/internal/service"
)

func newFullRouter(cfg RouterConfig) http.Handler {
	return NewRouter(NewHandler(service.NewCalculator(), zap.NewNop()), cfg)
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestRouter_Routes(t *testing.T) {
	lifecycle.SetDraining(false)
	router := newFullRouter(RouterConfig{CalculatorEnabled: true, RequestTimeout: time.Second})

	tests := []struct {
		target     string
		wantStatus int
		wantBody   string
	}{
		{"/health", http.StatusOK, "OK"},
		{"/hello", http.StatusOK, "Hello, World! Welcome to DevOps CI/CD Demo."},
		{"/hello?name=Student", http.StatusOK, "Hello, Student! Welcome to DevOps CI/CD Demo."},
		{"/version", http.StatusOK, "1.0.0"},
		{"/calc/divide?a=10&b=2", http.StatusOK, "5.0"},
		{"/calc/divide?a=10&b=0", http.StatusBadRequest, "Cannot divide by zero"},
	}
	for _, tc := range tests {
		t.Run(tc.target, func(t *testing.T) {
			w := get(t, router, tc.target)
			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Equal(t, tc.wantBody, w.Body.String())
			assert.NotEmpty(t, w.Header().Get(CorrelationIDHeader))
		})
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	router := newFullRouter(RouterConfig{CalculatorEnabled: true})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/version", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestRouter_CalculatorDisabled(t *testing.T) {
	router := newFullRouter(RouterConfig{CalculatorEnabled: false})

	assert.Equal(t, http.StatusNotFound, get(t, router, "/calc/add?a=1&b=2").Code)
	assert.Equal(t, http.StatusOK, get(t, router, "/version").Code)
}

func TestRouter_RateLimitOnlyOnCalculator(t *testing.T) {
	limiter := rate.NewLimiter(rate.Limit(0.001), 1)
	router := newFullRouter(RouterConfig{CalculatorEnabled: true, Limiter: limiter})

	require.Equal(t, http.StatusOK, get(t, router, "/calc/add?a=1&b=2").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(t, router, "/calc/add?a=1&b=2").Code)

	// Non-calculator routes are never limited.
	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, get(t, router, "/version").Code)
	}
}

func TestRouter_MetricsEndpoint(t *testing.T) {
	router := newFullRouter(RouterConfig{CalculatorEnabled: true})
	get(t, router, "/calc/add?a=1&b=2")

	w := get(t, router, "/metrics")

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `route="/calc/{operation}"`), "metrics should label calculator requests by route template")
	assert.Contains(t, body, `calculationsTotal{operation="add",outcome="success"}`)
}
