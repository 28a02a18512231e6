package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"roadguard/internal/domain"
	"roadguard/pkg/e"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type NotificationRepo struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewNotificationRepo(pool *pgxpool.Pool, logger *slog.Logger) *NotificationRepo {
	return &NotificationRepo{pool: pool, logger: logger}
}

func (p *NotificationRepo) ListForUser(ctx context.Context, userID string, limit int) ([]*domain.Notification, error) {
	const op = "postgres.Notification.ListForUser"

	if userID == "" {
		return nil, fmt.Errorf("%s: %w", op, e.ErrInvalidInput)
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	const query = `
		SELECT id, user_id, type, title, message, priority, accident_id, is_read, read_at, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := p.pool.Query(ctx, query, userID, limit)
	if err != nil {
		p.logger.Error("db query failed", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		var n domain.Notification
		if err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Type,
			&n.Title,
			&n.Message,
			&n.Priority,
			&n.AccidentID,
			&n.IsRead,
			&n.ReadAt,
			&n.CreatedAt,
		); err != nil {
			p.logger.Error("row scan failed", slog.String("op", op), slog.Any("error", err))
			return nil, e.WrapError(ctx, op, err)
		}
		notifications = append(notifications, &n)
	}
	if err := rows.Err(); err != nil {
		p.logger.Error("rows err", slog.String("op", op), slog.Any("error", err))
		return nil, e.WrapError(ctx, op, err)
	}

	return notifications, nil
}

// MarkRead is idempotent: read_at is set on the first call and kept on
// repeats.
func (p *NotificationRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	const op = "postgres.Notification.MarkRead"

	const query = `
		UPDATE notifications
		SET is_read = TRUE,
			read_at = COALESCE(read_at, NOW())
		WHERE id = $1
	`

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
