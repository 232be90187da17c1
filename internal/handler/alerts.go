package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/DukeRupert/pagekit/internal/alert"
	"github.com/DukeRupert/pagekit/internal/domain"
	"github.com/DukeRupert/pagekit/internal/metrics"
)

const maxAlertBodyBytes = 16 << 10

// AlertHandler exposes the alert queue over HTTP.
type AlertHandler struct {
	queue  *alert.Queue
	logger *slog.Logger
}

func NewAlertHandler(queue *alert.Queue, logger *slog.Logger) *AlertHandler {
	return &AlertHandler{queue: queue, logger: logger}
}

// RegisterRoutes registers alert routes on the mux.
func (h *AlertHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/alerts", h.Drain)
	mux.HandleFunc("POST /api/alerts", h.Push)
}

type alertsResponse struct {
	Alerts []alert.Alert `json:"alerts"`
}

// Drain handles GET /api/alerts. The queue is empty afterwards.
func (h *AlertHandler) Drain(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.queue.Drain()
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}
	if alerts == nil {
		alerts = []alert.Alert{}
	}
	writeJSON(w, http.StatusOK, alertsResponse{Alerts: alerts})
}

// Push handles POST /api/alerts with a JSON alert body.
func (h *AlertHandler) Push(w http.ResponseWriter, r *http.Request) {
	const op = "alert.push"

	r.Body = http.MaxBytesReader(w, r.Body, maxAlertBodyBytes)

	var a alert.Alert
	if err := json.NewDecoder(r.Body).Decode(&a); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			ErrorResponse(w, r, h.logger, domain.Errorf(domain.EINVALID, op, "Request body too large"))
			return
		}
		if errors.Is(err, alert.ErrUnknownStyle) {
			ValidationErrorResponse(w, r, h.logger, domain.NewValidationError(op, "style", "unknown style"))
			return
		}
		ErrorResponse(w, r, h.logger, domain.Invalid(op, "Request body must be a JSON alert"))
		return
	}

	if strings.TrimSpace(a.Message) == "" {
		ValidationErrorResponse(w, r, h.logger, domain.NewValidationError(op, "message", "is required"))
		return
	}

	if err := h.queue.Push(a); err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}
	metrics.AlertQueued(a.Style.String())

	h.logger.Debug("alert queued", "style", a.Style.String())
	writeJSON(w, http.StatusCreated, a)
}
