package service

import (
	"context"
	"time"

	"roadguard/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// AccidentService is the intake pipeline plus accident bookkeeping.
type AccidentService interface {
	Report(ctx context.Context, req domain.ReportAccidentRequest) (*domain.Accident, error)
	ReportWithAnalysis(ctx context.Context, req domain.ReportAccidentRequest, files []domain.EvidenceFile, requesterID string) (*domain.IntakeResult, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Accident, error)
	GetByReportNumber(ctx context.Context, reportNumber string) (*domain.Accident, error)
	List(ctx context.Context, page, limit int) ([]*domain.Accident, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AccidentStatus) error
	AssignOfficer(ctx context.Context, id, officerID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	Statistics(ctx context.Context) (*domain.AccidentStatistics, error)
}

// DispatchService owns dispatch-record creation and reads.
type DispatchService interface {
	Dispatch(ctx context.Context, accidentID uuid.UUID, userID string, severity int, loc domain.Location) (*domain.DispatchResult, error)
	Active(ctx context.Context) ([]*domain.EmergencyService, error)
	Pending(ctx context.Context) ([]*domain.EmergencyService, error)
	Completed(ctx context.Context) ([]*domain.EmergencyService, error)
	ByAccident(ctx context.Context, accidentID uuid.UUID) ([]*domain.EmergencyService, error)
	AdvanceStatus(ctx context.Context, id uuid.UUID, status domain.ServiceStatus) error
	Statistics(ctx context.Context) (*domain.DispatchStatistics, error)
}

// SeverityService exposes classification to the HTTP layer.
type SeverityService interface {
	Classify(req domain.ClassifySeverityRequest) domain.ClassificationResult
	AnalyzeEvidence(ctx context.Context, imageURLs []string) domain.SeverityAnalysisResult
}

type NotificationService interface {
	ListForUser(ctx context.Context, userID string, limit int) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

// Repositories implemented by internal/storage/postgres.
type AccidentRepository interface {
	Create(ctx context.Context, accident *domain.Accident) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Accident, error)
	GetByReportNumber(ctx context.Context, reportNumber string) (*domain.Accident, error)
	List(ctx context.Context, page, limit int) ([]*domain.Accident, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AccidentStatus) error
	AssignOfficer(ctx context.Context, id, officerID uuid.UUID) error
	Delete(ctx context.Context, id uuid.UUID) error
	Statistics(ctx context.Context) (*domain.AccidentStatistics, error)
}

type DispatchRepository interface {
	// CreateBatch persists the whole dispatch batch (service records plus
	// the one notification) in a single transaction.
	CreateBatch(ctx context.Context, services []*domain.EmergencyService, notification *domain.Notification) error
	HasDispatch(ctx context.Context, accidentID uuid.UUID) (bool, error)
	ListByStatus(ctx context.Context, statuses []domain.ServiceStatus, limit int) ([]*domain.EmergencyService, error)
	ListByAccident(ctx context.Context, accidentID uuid.UUID) ([]*domain.EmergencyService, error)
	AdvanceStatus(ctx context.Context, id uuid.UUID, status domain.ServiceStatus) error
	Statistics(ctx context.Context) (*domain.DispatchStatistics, error)
}

type NotificationRepository interface {
	ListForUser(ctx context.Context, userID string, limit int) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) error
}

// Collaborators.
type EvidenceStore interface {
	ValidateAndUpload(ctx context.Context, file domain.EvidenceFile) (domain.UploadResult, error)
}

// EvidenceScorer judges accident images. It never returns an error:
// failures of the external capability collapse into the fallback result.
type EvidenceScorer interface {
	AnalyzeEvidence(ctx context.Context, imageURLs []string) domain.SeverityAnalysisResult
}

type Dispatcher interface {
	Dispatch(ctx context.Context, accidentID uuid.UUID, userID string, severity int, loc domain.Location) (*domain.DispatchResult, error)
}

type AlertQueue interface {
	Enqueue(ctx context.Context, payload domain.AlertPayload) error
}

type DispatchCache interface {
	GetActive(ctx context.Context) ([]*domain.EmergencyService, error)
	SetActive(ctx context.Context, services []*domain.EmergencyService, ttl time.Duration) error
}

type Service struct {
	Accidents     AccidentService
	Dispatch      DispatchService
	Severity      SeverityService
	Notifications NotificationService
}

func NewService(
	accidents AccidentService,
	dispatch DispatchService,
	severity SeverityService,
	notifications NotificationService,
) *Service {
	return &Service{
		Accidents:     accidents,
		Dispatch:      dispatch,
		Severity:      severity,
		Notifications: notifications,
	}
}
