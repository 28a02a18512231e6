package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"roadguard/internal/domain"
	"roadguard/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DispatchRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewDispatchRepo(pool *pgxpool.Pool, logger *slog.Logger) *DispatchRepo {
	return &DispatchRepo{pool: pool, logger: logger}
}

const serviceColumns = `
	id, accident_id, type, status, service_provider, contact_number,
	seq, dispatched_at, arrived_at, completed_at, responder_id, notes,
	created_at, updated_at
`

func scanService(row pgx.Row) (*domain.EmergencyService, error) {
	var s domain.EmergencyService
	err := row.Scan(
		&s.ID,
		&s.AccidentID,
		&s.Type,
		&s.Status,
		&s.ServiceProvider,
		&s.ContactNumber,
		&s.Seq,
		&s.DispatchedAt,
		&s.ArrivedAt,
		&s.CompletedAt,
		&s.ResponderID,
		&s.Notes,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// CreateBatch writes the whole dispatch batch atomically: every service
// record plus the one notification commit together or not at all.
func (p *DispatchRepo) CreateBatch(ctx context.Context, services []*domain.EmergencyService, notification *domain.Notification) error {
	const op = "postgres.Dispatch.CreateBatch"

	if notification == nil {
		return fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Error("tx begin failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	serviceQuery := `
		INSERT INTO emergency_services (` + serviceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	for _, svc := range services {
		_, err := tx.Exec(ctx, serviceQuery,
			svc.ID,
			svc.AccidentID,
			svc.Type,
			svc.Status,
			svc.ServiceProvider,
			svc.ContactNumber,
			svc.Seq,
			svc.DispatchedAt,
			svc.ArrivedAt,
			svc.CompletedAt,
			svc.ResponderID,
			svc.Notes,
			svc.CreatedAt,
			svc.UpdatedAt,
		)
		if err != nil {
			p.logger.Error("service insert failed",
				slog.String("op", op),
				slog.Any("error", err),
				slog.String("accident_id", svc.AccidentID.String()),
				slog.String("type", string(svc.Type)),
			)
			return e.WrapError(ctx, op, err)
		}
	}

	const notificationQuery = `
		INSERT INTO notifications (id, user_id, type, title, message, priority, accident_id, is_read, read_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err = tx.Exec(ctx, notificationQuery,
		notification.ID,
		notification.UserID,
		notification.Type,
		notification.Title,
		notification.Message,
		notification.Priority,
		notification.AccidentID,
		notification.IsRead,
		notification.ReadAt,
		notification.CreatedAt,
	)
	if err != nil {
		p.logger.Error("notification insert failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("tx commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *DispatchRepo) HasDispatch(ctx context.Context, accidentID uuid.UUID) (bool, error) {
	const op = "postgres.Dispatch.HasDispatch"

	const query = `SELECT EXISTS (SELECT 1 FROM emergency_services WHERE accident_id = $1)`

	var exists bool
	if err := p.pool.QueryRow(ctx, query, accidentID).Scan(&exists); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return false, e.WrapError(ctx, op, err)
	}

	return exists, nil
}

func (p *DispatchRepo) ListByStatus(ctx context.Context, statuses []domain.ServiceStatus, limit int) ([]*domain.EmergencyService, error) {
	const op = "postgres.Dispatch.ListByStatus"

	if len(statuses) == 0 {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}

	query := `
		SELECT ` + serviceColumns + `
		FROM emergency_services
		WHERE status = ANY($1)
		ORDER BY created_at DESC, seq
		LIMIT $2
	`

	vals := make([]string, len(statuses))
	for i, s := range statuses {
		vals[i] = string(s)
	}

	rows, err := p.pool.Query(ctx, query, vals, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var services []*domain.EmergencyService
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return services, nil
}

// ListByAccident returns the batch in dispatch priority order.
func (p *DispatchRepo) ListByAccident(ctx context.Context, accidentID uuid.UUID) ([]*domain.EmergencyService, error) {
	const op = "postgres.Dispatch.ListByAccident"

	query := `
		SELECT ` + serviceColumns + `
		FROM emergency_services
		WHERE accident_id = $1
		ORDER BY seq
	`

	rows, err := p.pool.Query(ctx, query, accidentID)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var services []*domain.EmergencyService
	for rows.Next() {
		s, err := scanService(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return services, nil
}

// AdvanceStatus moves a service record forward through its lifecycle.
// Each milestone timestamp is written only on the first transition into
// the matching status and never overwritten afterwards.
func (p *DispatchRepo) AdvanceStatus(ctx context.Context, id uuid.UUID, status domain.ServiceStatus) error {
	const op = "postgres.Dispatch.AdvanceStatus"

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		p.logger.Error("tx begin failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}
	defer tx.Rollback(ctx)

	var current domain.ServiceStatus
	err = tx.QueryRow(ctx, `SELECT status FROM emergency_services WHERE id = $1 FOR UPDATE`, id).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}

	if !current.CanAdvanceTo(status) {
		return fmt.Errorf("%s: %s -> %s: %w", op, current, status, e.ErrBadTransition)
	}

	const query = `
		UPDATE emergency_services
		SET status        = $2,
			dispatched_at = CASE WHEN $2 = 'dispatched' THEN COALESCE(dispatched_at, NOW()) ELSE dispatched_at END,
			arrived_at    = CASE WHEN $2 = 'on_scene'   THEN COALESCE(arrived_at, NOW())    ELSE arrived_at    END,
			completed_at  = CASE WHEN $2 = 'completed'  THEN COALESCE(completed_at, NOW())  ELSE completed_at  END,
			updated_at    = NOW()
		WHERE id = $1
	`

	if _, err := tx.Exec(ctx, query, id, string(status)); err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}

	if err := tx.Commit(ctx); err != nil {
		p.logger.Error("tx commit failed", slog.String("op", op), slog.Any("error", err))
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *DispatchRepo) Statistics(ctx context.Context) (*domain.DispatchStatistics, error) {
	const op = "postgres.Dispatch.Statistics"

	const query = `
		SELECT
			COUNT(*) FILTER (WHERE status IN ('dispatched', 'en_route', 'on_scene')) AS active,
			COUNT(*) FILTER (WHERE status = 'completed')                             AS completed,
			COUNT(*)                                                                 AS total
		FROM emergency_services
	`

	var stats domain.DispatchStatistics
	if err := p.pool.QueryRow(ctx, query).Scan(&stats.Active, &stats.Completed, &stats.Total); err != nil {
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return &stats, nil
}
