package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"roadguard/internal/domain"
	"roadguard/pkg/e"

	"github.com/google/uuid"
)

const (
	emergencyContact = "911"
	activeCacheTTL   = 30 * time.Second
)

type dispatchService struct {
	repo   DispatchRepository
	queue  AlertQueue
	cache  DispatchCache
	logger *slog.Logger
	clock  func() time.Time
}

func NewDispatchService(
	repo DispatchRepository,
	queue AlertQueue,
	cache DispatchCache,
	logger *slog.Logger,
	clock func() time.Time,
) DispatchService {
	if clock == nil {
		clock = time.Now
	}
	return &dispatchService{
		repo:   repo,
		queue:  queue,
		cache:  cache,
		logger: logger,
		clock:  clock,
	}
}

// Dispatch creates one service record per selected service type plus one
// notification, all sharing a single dispatch time, in one transactional
// batch. An accident that already has dispatch records is rejected so
// retries never duplicate the batch.
func (s *dispatchService) Dispatch(ctx context.Context, accidentID uuid.UUID, userID string, severity int, loc domain.Location) (*domain.DispatchResult, error) {
	const op = "service.Dispatch"

	l := s.logger.With(
		slog.String("accident_id", accidentID.String()),
		slog.Int("severity", severity),
	)
	l.Info("dispatching emergency services")

	exists, err := s.repo.HasDispatch(ctx, accidentID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if exists {
		l.Warn("accident already dispatched, refusing to duplicate the batch")
		return nil, fmt.Errorf("%s: %w", op, e.ErrAlreadyDispatched)
	}

	if userID == "" {
		userID = "system"
	}

	dispatchTime := s.clock().UTC()
	types := SelectServices(severity)

	services := make([]*domain.EmergencyService, 0, len(types))
	for i, serviceType := range types {
		dispatchedAt := dispatchTime
		services = append(services, &domain.EmergencyService{
			ID:              uuid.New(),
			AccidentID:      accidentID,
			Type:            serviceType,
			Status:          domain.ServiceDispatched,
			ServiceProvider: providerFor(serviceType),
			ContactNumber:   emergencyContact,
			Seq:             i,
			DispatchedAt:    &dispatchedAt,
			Notes:           fmt.Sprintf("Auto-dispatched based on severity analysis: %d/100", severity),
			CreatedAt:       dispatchTime,
			UpdatedAt:       dispatchTime,
		})
	}

	notification := buildDispatchNotification(userID, accidentID, services, severity, dispatchTime)

	if err := s.repo.CreateBatch(ctx, services, notification); err != nil {
		l.Error("dispatch batch write failed", slog.Any("error", err))
		return nil, e.Wrap(op, err)
	}

	if len(services) > 0 {
		payload := domain.AlertPayload{
			AccidentID:   accidentID,
			Services:     types,
			Severity:     severity,
			Latitude:     loc.Latitude,
			Longitude:    loc.Longitude,
			DispatchedAt: dispatchTime,
		}
		if err := s.queue.Enqueue(ctx, payload); err != nil {
			l.Error("enqueue emergency alert failed", slog.Any("error", err))
		} else {
			l.Info("emergency alert enqueued", slog.Int("services", len(services)))
		}
	}

	l.Info("dispatch complete", slog.Int("services", len(services)))
	return &domain.DispatchResult{
		Services:     services,
		Notification: notification,
		DispatchTime: dispatchTime,
	}, nil
}

// providerFor looks up the provider for a service type. Location-aware
// geo-routing would slot in here; for now the table is static.
func providerFor(t domain.ServiceType) string {
	switch t {
	case domain.ServicePolice:
		return "Local Police Department"
	case domain.ServiceAmbulance:
		return "Emergency Medical Services"
	case domain.ServiceFireDepartment:
		return "City Fire Department"
	case domain.ServiceTowTruck:
		return "Roadside Assistance"
	default:
		return "Emergency Services"
	}
}

func buildDispatchNotification(userID string, accidentID uuid.UUID, services []*domain.EmergencyService, severity int, dispatchTime time.Time) *domain.Notification {
	var priority domain.NotificationPriority
	switch {
	case severity > 70:
		priority = domain.PriorityUrgent
	case severity > 50:
		priority = domain.PriorityHigh
	default:
		priority = domain.PriorityMedium
	}

	var message string
	if len(services) == 0 {
		message = fmt.Sprintf("Your accident report was received. No emergency services were auto-dispatched. Severity: %d/100", severity)
	} else {
		names := make([]string, len(services))
		for i, svc := range services {
			names[i] = string(svc.Type)
		}
		message = fmt.Sprintf("Emergency services have been dispatched to your accident location. Services: %s. Estimated arrival: 5-10 minutes. Severity: %d/100",
			strings.Join(names, ", "), severity)
	}

	accID := accidentID
	return &domain.Notification{
		ID:         uuid.New(),
		UserID:     userID,
		Type:       domain.NotificationEmergencyAlert,
		Title:      "Emergency Services Dispatched",
		Message:    message,
		Priority:   priority,
		AccidentID: &accID,
		IsRead:     false,
		CreatedAt:  dispatchTime,
	}
}

// Active serves the dispatched-services listing read-through from the
// cache; a cache failure falls back to the repository.
func (s *dispatchService) Active(ctx context.Context) ([]*domain.EmergencyService, error) {
	if s.cache != nil {
		cached, err := s.cache.GetActive(ctx)
		if err != nil {
			s.logger.Warn("active dispatch cache read failed", slog.Any("error", err))
		} else if cached != nil {
			return cached, nil
		}
	}

	services, err := s.repo.ListByStatus(ctx, []domain.ServiceStatus{domain.ServiceDispatched}, 50)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetActive(ctx, services, activeCacheTTL); err != nil {
			s.logger.Warn("active dispatch cache write failed", slog.Any("error", err))
		}
	}
	return services, nil
}

func (s *dispatchService) Pending(ctx context.Context) ([]*domain.EmergencyService, error) {
	return s.repo.ListByStatus(ctx, []domain.ServiceStatus{domain.ServiceDispatched, domain.ServiceEnRoute}, 0)
}

func (s *dispatchService) Completed(ctx context.Context) ([]*domain.EmergencyService, error) {
	return s.repo.ListByStatus(ctx, []domain.ServiceStatus{domain.ServiceOnScene, domain.ServiceCompleted}, 100)
}

func (s *dispatchService) ByAccident(ctx context.Context, accidentID uuid.UUID) ([]*domain.EmergencyService, error) {
	return s.repo.ListByAccident(ctx, accidentID)
}

func (s *dispatchService) AdvanceStatus(ctx context.Context, id uuid.UUID, status domain.ServiceStatus) error {
	return s.repo.AdvanceStatus(ctx, id, status)
}

func (s *dispatchService) Statistics(ctx context.Context) (*domain.DispatchStatistics, error) {
	return s.repo.Statistics(ctx)
}
