package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"roadguard/internal/domain"
	"roadguard/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AccidentAdmin interface {
	List(ctx context.Context, page, limit int) ([]*domain.Accident, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AccidentStatus) error
	AssignOfficer(ctx context.Context, id, officerID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	Statistics(ctx context.Context) (*domain.AccidentStatistics, error)
}

type DispatchAdmin interface {
	Dispatch(ctx context.Context, accidentID uuid.UUID, userID string, severity int, loc domain.Location) (*domain.DispatchResult, error)
	Active(ctx context.Context) ([]*domain.EmergencyService, error)
	Pending(ctx context.Context) ([]*domain.EmergencyService, error)
	Completed(ctx context.Context) ([]*domain.EmergencyService, error)
	ByAccident(ctx context.Context, accidentID uuid.UUID) ([]*domain.EmergencyService, error)
	AdvanceStatus(ctx context.Context, id uuid.UUID, status domain.ServiceStatus) error
	Statistics(ctx context.Context) (*domain.DispatchStatistics, error)
}

type Handler struct {
	logger    *slog.Logger
	Accidents AccidentAdmin
	Dispatch  DispatchAdmin
}

func NewHandler(logger *slog.Logger, accidents AccidentAdmin, dispatch DispatchAdmin) *Handler {
	return &Handler{
		logger:    logger,
		Accidents: accidents,
		Dispatch:  dispatch,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AccidentList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if limit > 100 {
		limit = 100
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	accidents, total, err := h.Accidents.List(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("accidents listed", slog.Int("count", len(accidents)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, domain.ListAccidentsResponse{
		Accidents: accidents,
		Page:      page,
		Limit:     limit,
		Total:     total,
	})
}

func (h *Handler) AccidentUpdateStatus(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateAccidentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Accidents.UpdateStatus(r.Context(), id, req.Status); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("accident status updated",
		slog.String("id", id.String()),
		slog.String("status", string(req.Status)))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AccidentAssignOfficer(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.AssignOfficerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Accidents.AssignOfficer(r.Context(), id, req.OfficerID); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("officer assigned",
		slog.String("accident_id", id.String()),
		slog.String("officer_id", req.OfficerID.String()))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AccidentDelete(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Accidents.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("accident deleted", slog.String("id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// DispatchManual triggers the dispatch engine for an accident outside
// the automatic intake path.
func (h *Handler) DispatchManual(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.ManualDispatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	result, err := h.Dispatch.Dispatch(r.Context(), req.AccidentID, req.UserID, req.Severity,
		domain.Location{Latitude: req.Latitude, Longitude: req.Longitude})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("manual dispatch complete",
		slog.String("accident_id", req.AccidentID.String()),
		slog.Int("severity", req.Severity),
		slog.Int("services", len(result.Services)))
	h.writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) DispatchActive(w http.ResponseWriter, r *http.Request) {
	services, err := h.Dispatch.Active(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, servicesEnvelope(services))
}

func (h *Handler) DispatchPending(w http.ResponseWriter, r *http.Request) {
	services, err := h.Dispatch.Pending(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, servicesEnvelope(services))
}

func (h *Handler) DispatchCompleted(w http.ResponseWriter, r *http.Request) {
	services, err := h.Dispatch.Completed(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, servicesEnvelope(services))
}

func (h *Handler) DispatchByAccident(w http.ResponseWriter, r *http.Request) {
	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	services, err := h.Dispatch.ByAccident(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, servicesEnvelope(services))
}

func (h *Handler) DispatchAdvanceStatus(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.AdvanceServiceStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Dispatch.AdvanceStatus(r.Context(), id, req.Status); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("dispatch status advanced",
		slog.String("id", id.String()),
		slog.String("status", string(req.Status)))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	accidentStats, err := h.Accidents.Statistics(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	dispatchStats, err := h.Dispatch.Statistics(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"accidents": accidentStats,
		"dispatch":  dispatchStats,
	})
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func servicesEnvelope(services []*domain.EmergencyService) map[string]any {
	return map[string]any{
		"services": services,
		"count":    len(services),
	}
}
