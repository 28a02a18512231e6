package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"roadguard/internal/domain"
	"roadguard/pkg/e"

	"github.com/google/uuid"
)

const reportNumberAttempts = 3

type accidentService struct {
	repo       AccidentRepository
	store      EvidenceStore
	scorer     EvidenceScorer
	dispatcher Dispatcher
	logger     *slog.Logger
	classifyT  domain.ClassifyThresholds
	enumT      domain.EnumThresholds
	clock      func() time.Time
}

func NewAccidentService(
	repo AccidentRepository,
	store EvidenceStore,
	scorer EvidenceScorer,
	dispatcher Dispatcher,
	logger *slog.Logger,
) AccidentService {
	return &accidentService{
		repo:       repo,
		store:      store,
		scorer:     scorer,
		dispatcher: dispatcher,
		logger:     logger,
		classifyT:  domain.DefaultClassifyThresholds,
		enumT:      domain.DefaultEnumThresholds,
		clock:      time.Now,
	}
}

// Report persists a plain accident report. Severity is derived from the
// structured facts; no emergency services are dispatched on this path.
func (s *accidentService) Report(ctx context.Context, req domain.ReportAccidentRequest) (*domain.Accident, error) {
	const op = "service.Accident.Report"

	score := ScoreFacts(req.Facts())
	accident := s.buildAccident(req, MapToSeverity(score, s.enumT))

	if err := s.createWithUniqueReportNumber(ctx, accident); err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Info("accident reported",
		slog.String("id", accident.ID.String()),
		slog.String("report_number", accident.ReportNumber),
		slog.String("severity", string(accident.Severity)))
	return accident, nil
}

// ReportWithAnalysis is the full intake pipeline: upload evidence, score
// it, persist the accident at the resulting severity, then dispatch.
func (s *accidentService) ReportWithAnalysis(ctx context.Context, req domain.ReportAccidentRequest, files []domain.EvidenceFile, requesterID string) (*domain.IntakeResult, error) {
	const op = "service.Accident.ReportWithAnalysis"

	uploaded, err := s.uploadEvidence(ctx, files)
	if err != nil {
		// a single rejected file aborts the whole submission
		return nil, e.Wrap(op, err)
	}

	imageURLs := make([]string, len(uploaded))
	for i, u := range uploaded {
		imageURLs[i] = u.FileURL
	}

	analysis := s.scorer.AnalyzeEvidence(ctx, imageURLs)

	accident := s.buildAccident(req, MapToSeverity(analysis.Severity, s.enumT))
	if err := s.createWithUniqueReportNumber(ctx, accident); err != nil {
		return nil, e.Wrap(op, err)
	}

	requester := requesterID
	if requester == "" {
		requester = "system"
	}

	// dispatch runs on the raw 0-100 score, not the mapped enum
	dispatchResult, err := s.dispatcher.Dispatch(ctx, accident.ID, requester, analysis.Severity,
		domain.Location{Latitude: req.Latitude, Longitude: req.Longitude})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	s.logger.Info("accident intake complete",
		slog.String("id", accident.ID.String()),
		slog.String("report_number", accident.ReportNumber),
		slog.Int("severity_score", analysis.Severity),
		slog.Int("services_dispatched", len(dispatchResult.Services)),
		slog.Int("evidence_files", len(uploaded)))

	return &domain.IntakeResult{
		Accident:         accident,
		DispatchResult:   dispatchResult,
		UploadedEvidence: uploaded,
	}, nil
}

// uploadEvidence validates and uploads all files concurrently. Any
// failure fails the batch: no accident is created from a submission with
// a rejected file.
func (s *accidentService) uploadEvidence(ctx context.Context, files []domain.EvidenceFile) ([]domain.UploadResult, error) {
	results := make([]domain.UploadResult, len(files))
	errs := make([]error, len(files))

	var wg sync.WaitGroup
	for i, file := range files {
		wg.Add(1)
		go func(i int, file domain.EvidenceFile) {
			defer wg.Done()
			results[i], errs[i] = s.store.ValidateAndUpload(ctx, file)
		}(i, file)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			s.logger.Warn("evidence upload rejected",
				slog.String("file", files[i].Name),
				slog.Any("error", err))
			return nil, err
		}
	}
	return results, nil
}

func (s *accidentService) buildAccident(req domain.ReportAccidentRequest, severity domain.AccidentSeverity) *domain.Accident {
	now := s.clock().UTC()
	occurredAt := req.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = now
	}
	reportedBy := req.ReportedBy
	if reportedBy == "" {
		reportedBy = "system"
	}
	return &domain.Accident{
		ID:                uuid.New(),
		Description:       req.Description,
		Severity:          severity,
		Status:            domain.AccidentReported,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		Address:           req.Address,
		OccurredAt:        occurredAt,
		WeatherConditions: req.WeatherConditions,
		RoadConditions:    req.RoadConditions,
		VehiclesInvolved:  req.VehiclesInvolved,
		Injuries:          req.Injuries,
		Fatalities:        req.Fatalities,
		ReportedBy:        reportedBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// createWithUniqueReportNumber retries with a fresh report number when
// the generated one collides with an existing row.
func (s *accidentService) createWithUniqueReportNumber(ctx context.Context, accident *domain.Accident) error {
	var err error
	for attempt := 1; attempt <= reportNumberAttempts; attempt++ {
		accident.ReportNumber = generateReportNumber(s.clock())
		err = s.repo.Create(ctx, accident)
		if err == nil {
			return nil
		}
		if !errors.Is(err, e.ErrUniqueViolation) {
			return err
		}
		s.logger.Warn("report number collision, regenerating",
			slog.String("report_number", accident.ReportNumber),
			slog.Int("attempt", attempt))
	}
	return err
}

func generateReportNumber(now time.Time) string {
	return fmt.Sprintf("ACC-%d-%06d", now.Year(), rand.Intn(1_000_000))
}

func (s *accidentService) Get(ctx context.Context, id uuid.UUID) (*domain.Accident, error) {
	return s.repo.Get(ctx, id)
}

func (s *accidentService) GetByReportNumber(ctx context.Context, reportNumber string) (*domain.Accident, error) {
	return s.repo.GetByReportNumber(ctx, reportNumber)
}

func (s *accidentService) List(ctx context.Context, page, limit int) ([]*domain.Accident, int64, error) {
	return s.repo.List(ctx, page, limit)
}

// UpdateStatus enforces the accident lifecycle; transitions never
// trigger a re-dispatch.
func (s *accidentService) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AccidentStatus) error {
	const op = "service.Accident.UpdateStatus"

	if !status.Valid() {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	current, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !current.Status.CanTransitionTo(status) {
		return fmt.Errorf("%s: %s -> %s: %w", op, current.Status, status, e.ErrBadTransition)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *accidentService) AssignOfficer(ctx context.Context, id, officerID uuid.UUID) error {
	return s.repo.AssignOfficer(ctx, id, officerID)
}

func (s *accidentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

func (s *accidentService) Statistics(ctx context.Context) (*domain.AccidentStatistics, error) {
	return s.repo.Statistics(ctx)
}
