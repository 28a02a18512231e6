package service

import (
	"context"

	"roadguard/internal/domain"

	"github.com/google/uuid"
)

type notificationService struct {
	repo NotificationRepository
}

func NewNotificationService(repo NotificationRepository) NotificationService {
	return &notificationService{repo: repo}
}

func (s *notificationService) ListForUser(ctx context.Context, userID string, limit int) ([]*domain.Notification, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.repo.ListForUser(ctx, userID, limit)
}

func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID) error {
	return s.repo.MarkRead(ctx, id)
}
