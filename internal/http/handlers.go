package http

import (
	"errors"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/kjstillabower/cicd-demo-service/internal/lifecycle"
	"github.com/kjstillabower/cicd-demo-service/internal/observability"
	"github.com/kjstillabower/cicd-demo-service/internal/service"
	"github.com/kjstillabower/cicd-demo-service/internal/traffic"
	"github.com/kjstillabower/cicd-demo-service/internal/validation"
)

const (
	healthOK       = "OK"
	healthDraining = "SHUTTING DOWN"
)

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	calculator *service.Calculator
	logger     *zap.Logger

	healthMu   sync.Mutex
	healthPrev string
}

// NewHandler returns a new Handler.
func NewHandler(calculator *service.Calculator, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		calculator: calculator,
		logger:     logger,
	}
}

// GetHealth handles GET /health. Answers 503 while the process is draining.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	status, body := http.StatusOK, healthOK
	if lifecycle.IsDraining() {
		status, body = http.StatusServiceUnavailable, healthDraining
	}

	h.healthMu.Lock()
	if h.healthPrev != "" && h.healthPrev != body {
		h.logger.Info("health status transition",
			zap.String("previous_status", h.healthPrev),
			zap.String("current_status", body))
	}
	h.healthPrev = body
	h.healthMu.Unlock()

	writeText(w, status, body)
}

// GetHello handles GET /hello?name=X. An absent or empty name greets "World".
func (h *Handler) GetHello(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	observability.RecordGreeting(name != "")
	writeText(w, http.StatusOK, service.Greet(name))
}

// GetVersion handles GET /version.
func (h *Handler) GetVersion(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, service.Version)
}

// GetCalc handles GET /calc/{operation}?a=&b=.
func (h *Handler) GetCalc(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["operation"]
	op, err := service.ParseOperation(raw)
	if err != nil {
		observability.RecordCalculation("unknown", "bad_request")
		writeError(w, r, http.StatusNotFound, "unknown operation: "+raw, err)
		return
	}

	q := r.URL.Query()
	a, b, err := validation.ParseOperands(q.Get("a"), q.Get("b"))
	if err != nil {
		traffic.Record(traffic.Rejected)
		observability.RecordCalculation(string(op), "bad_request")
		writeError(w, r, http.StatusBadRequest, err.Error(), err)
		return
	}

	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "request timed out", err)
		return
	}

	result, err := h.calculator.Calculate(op, a, b)
	if err != nil {
		var invalid *service.InvalidArgumentError
		if errors.As(err, &invalid) {
			traffic.Record(traffic.Rejected)
			observability.RecordCalculation(string(op), "invalid_argument")
			writeError(w, r, http.StatusBadRequest, invalid.Message, err)
			return
		}
		writeError(w, r, http.StatusInternalServerError, "calculation failed", err)
		return
	}

	traffic.Record(traffic.Success)
	observability.RecordCalculation(string(op), "success")
	writeText(w, http.StatusOK, result.String())
}

// writeText writes body as text/plain with the given status.
func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

// writeError writes message as the plain-text error body and logs err at DEBUG
// with the request-scoped logger.
func writeError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	observability.LoggerFromContext(r.Context()).Debug("request failed",
		zap.Int("status", status),
		zap.String("message", message),
		zap.Error(err))
	writeText(w, status, message)
}
