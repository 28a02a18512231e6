package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"
	"roadguard/internal/domain"
	"roadguard/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AccidentReporter interface {
	Report(ctx context.Context, req domain.ReportAccidentRequest) (*domain.Accident, error)
	ReportWithAnalysis(ctx context.Context, req domain.ReportAccidentRequest, files []domain.EvidenceFile, requesterID string) (*domain.IntakeResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Accident, error)
	GetByReportNumber(ctx context.Context, reportNumber string) (*domain.Accident, error)
}

type SeverityClassifier interface {
	Classify(req domain.ClassifySeverityRequest) domain.ClassificationResult
}

type NotificationReader interface {
	ListForUser(ctx context.Context, userID string, limit int) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

// maxMultipartMemory caps in-memory buffering of an intake submission;
// larger parts spill to temp files.
const maxMultipartMemory = 32 << 20

type Handler struct {
	logger        *slog.Logger
	Accidents     AccidentReporter
	Severity      SeverityClassifier
	Notifications NotificationReader
}

func NewHandler(logger *slog.Logger, accidents AccidentReporter, severity SeverityClassifier, notifications NotificationReader) *Handler {
	return &Handler{
		logger:        logger,
		Accidents:     accidents,
		Severity:      severity,
		Notifications: notifications,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

// AccidentReport handles a plain report without photo evidence.
func (h *Handler) AccidentReport(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.ReportAccidentRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("report validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	accident, err := h.Accidents.Report(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("accident reported",
		slog.String("id", accident.ID.String()),
		slog.String("report_number", accident.ReportNumber))
	h.writeJSON(w, http.StatusCreated, accident)
}

// AccidentAnalyze is the full intake: multipart body with a "report"
// JSON part and one or more "images" file parts.
func (h *Handler) AccidentAnalyze(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid multipart body"})
		return
	}

	var req domain.ReportAccidentRequest
	if err := json.Unmarshal([]byte(r.FormValue("report")), &req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid report JSON"})
		return
	}
	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("intake validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	fileHeaders := r.MultipartForm.File["images"]
	if len(fileHeaders) == 0 {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "at least one image required"})
		return
	}

	files := make([]domain.EvidenceFile, 0, len(fileHeaders))
	for _, fh := range fileHeaders {
		f, err := fh.Open()
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable file part"})
			return
		}
		data, err := io.ReadAll(f)
		_ = f.Close()
		if err != nil {
			h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unreadable file part"})
			return
		}
		files = append(files, domain.EvidenceFile{
			Name:     fh.Filename,
			Size:     fh.Size,
			MimeType: fh.Header.Get("Content-Type"),
			Data:     data,
		})
	}

	requester := r.Header.Get("X-User-ID")

	result, err := h.Accidents.ReportWithAnalysis(r.Context(), req, files, requester)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("accident intake complete",
		slog.String("id", result.Accident.ID.String()),
		slog.Int("evidence_files", len(result.UploadedEvidence)))
	h.writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) AccidentGet(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	accident, err := h.Accidents.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, accident)
}

func (h *Handler) AccidentGetByReportNumber(w http.ResponseWriter, r *http.Request) {
	reportNumber := chi.URLParam(r, "reportNumber")
	if reportNumber == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "report number required"})
		return
	}

	accident, err := h.Accidents.GetByReportNumber(r.Context(), reportNumber)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, accident)
}

// SeverityClassify scores structured facts without creating anything.
func (h *Handler) SeverityClassify(w http.ResponseWriter, r *http.Request) {
	var req domain.ClassifySeverityRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	h.writeJSON(w, http.StatusOK, h.Severity.Classify(req))
}

func (h *Handler) NotificationList(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		userID = r.Header.Get("X-User-ID")
	}
	if userID == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "user_id required"})
		return
	}
	limit := parseInt(r.URL.Query().Get("limit"), 50)

	notifications, err := h.Notifications.ListForUser(r.Context(), userID, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"notifications": notifications,
		"count":         len(notifications),
	})
}

func (h *Handler) NotificationMarkRead(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	if err := h.Notifications.MarkRead(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
