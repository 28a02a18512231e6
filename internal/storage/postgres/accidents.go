package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"roadguard/internal/domain"
	"roadguard/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AccidentRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAccidentRepo(pool *pgxpool.Pool, logger *slog.Logger) *AccidentRepo {
	return &AccidentRepo{pool: pool, logger: logger}
}

const accidentColumns = `
	id, report_number, description, severity, status,
	latitude, longitude, address, occurred_at,
	weather_conditions, road_conditions,
	vehicles_involved, injuries, fatalities,
	reported_by, assigned_officer_id, created_at, updated_at
`

func scanAccident(row pgx.Row) (*domain.Accident, error) {
	var a domain.Accident
	err := row.Scan(
		&a.ID,
		&a.ReportNumber,
		&a.Description,
		&a.Severity,
		&a.Status,
		&a.Latitude,
		&a.Longitude,
		&a.Address,
		&a.OccurredAt,
		&a.WeatherConditions,
		&a.RoadConditions,
		&a.VehiclesInvolved,
		&a.Injuries,
		&a.Fatalities,
		&a.ReportedBy,
		&a.AssignedOfficerID,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (p *AccidentRepo) Create(ctx context.Context, accident *domain.Accident) error {
	const op = "postgres.Accident.Create"

	query := `
		INSERT INTO accidents (` + accidentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	if accident.ID == uuid.Nil {
		accident.ID = uuid.New()
	}
	if accident.CreatedAt.IsZero() {
		accident.CreatedAt = time.Now().UTC()
	}
	if accident.UpdatedAt.IsZero() {
		accident.UpdatedAt = accident.CreatedAt
	}
	if accident.Status == "" {
		accident.Status = domain.AccidentReported
	}

	_, err := p.pool.Exec(ctx, query,
		accident.ID,
		accident.ReportNumber,
		accident.Description,
		accident.Severity,
		accident.Status,
		accident.Latitude,
		accident.Longitude,
		accident.Address,
		accident.OccurredAt,
		accident.WeatherConditions,
		accident.RoadConditions,
		accident.VehiclesInvolved,
		accident.Injuries,
		accident.Fatalities,
		accident.ReportedBy,
		accident.AssignedOfficerID,
		accident.CreatedAt,
		accident.UpdatedAt,
	)
	if err != nil {
		p.logger.Error("db exec failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return e.WrapError(ctx, op, err)
	}

	return nil
}

func (p *AccidentRepo) Get(ctx context.Context, id uuid.UUID) (*domain.Accident, error) {
	const op = "postgres.Accident.Get"

	query := `SELECT ` + accidentColumns + ` FROM accidents WHERE id = $1`

	a, err := scanAccident(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return nil, e.WrapError(ctx, op, err)
	}

	return a, nil
}

func (p *AccidentRepo) GetByReportNumber(ctx context.Context, reportNumber string) (*domain.Accident, error) {
	const op = "postgres.Accident.GetByReportNumber"

	query := `SELECT ` + accidentColumns + ` FROM accidents WHERE report_number = $1`

	a, err := scanAccident(p.pool.QueryRow(ctx, query, reportNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, e.ErrNotFound)
		}
		p.logger.Error("db queryrow scan failed", slog.String("op", op), slog.Any("error", err), slog.String("report_number", reportNumber))
		return nil, e.WrapError(ctx, op, err)
	}

	return a, nil
}

func (p *AccidentRepo) List(ctx context.Context, page, limit int) ([]*domain.Accident, int64, error) {
	const op = "postgres.Accident.List"

	if page < 1 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	const countQuery = `SELECT COUNT(*) FROM accidents`

	var total int64
	if err := p.pool.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		p.logger.Error("db count failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	listQuery := `
		SELECT ` + accidentColumns + `
		FROM accidents
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := p.pool.Query(ctx, listQuery, limit, offset)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var accidents []*domain.Accident
	for rows.Next() {
		a, err := scanAccident(rows)
		if err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, 0, e.WrapError(ctx, op, err)
		}
		accidents = append(accidents, a)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, 0, e.WrapError(ctx, op, err)
	}

	return accidents, total, nil
}

func (p *AccidentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AccidentStatus) error {
	const op = "postgres.Accident.UpdateStatus"

	const query = `
		UPDATE accidents
		SET status     = $2,
			updated_at = NOW()
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, status)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *AccidentRepo) AssignOfficer(ctx context.Context, id, officerID uuid.UUID) error {
	const op = "postgres.Accident.AssignOfficer"

	const query = `
		UPDATE accidents
		SET assigned_officer_id = $2,
			updated_at          = NOW()
		WHERE id = $1
	`

	cmd, err := p.pool.Exec(ctx, query, id, officerID)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

// Delete removes the accident and, through FK cascade, its dispatch
// records and notifications.
func (p *AccidentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Accident.Delete"

	const query = `DELETE FROM accidents WHERE id = $1`

	cmd, err := p.pool.Exec(ctx, query, id)
	if err != nil {
		p.logger.Error("db exec failed", slog.String("op", op), slog.Any("error", err), slog.String("id", id.String()))
		return e.WrapError(ctx, op, err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, e.ErrNotFound)
	}

	return nil
}

func (p *AccidentRepo) Statistics(ctx context.Context) (*domain.AccidentStatistics, error) {
	const op = "postgres.Accident.Statistics"

	stats := &domain.AccidentStatistics{
		ByStatus:   make(map[string]int64),
		BySeverity: make(map[string]int64),
	}

	const statusQuery = `SELECT status, COUNT(*) FROM accidents GROUP BY status`

	rows, err := p.pool.Query(ctx, statusQuery)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		stats.ByStatus[status] = count
		stats.Total += count
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	const severityQuery = `SELECT severity, COUNT(*) FROM accidents GROUP BY severity`

	sevRows, err := p.pool.Query(ctx, severityQuery)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer sevRows.Close()

	for sevRows.Next() {
		var severity string
		var count int64
		if err := sevRows.Scan(&severity, &count); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		stats.BySeverity[severity] = count
	}
	if err := sevRows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return stats, nil
}
