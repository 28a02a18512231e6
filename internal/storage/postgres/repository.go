package postgres

import (
	"context"
	"roadguard/internal/domain"

	"github.com/google/uuid"
)

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

func (p *Postgres) Accidents() AccidentRepository          { return p.Accident }
func (p *Postgres) Dispatches() DispatchRepository         { return p.Dispatch }
func (p *Postgres) Notification() NotificationRepository   { return p.Notifications }
