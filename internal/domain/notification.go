package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationAccidentReported NotificationType = "accident_reported"
	NotificationAccidentAssigned NotificationType = "accident_assigned"
	NotificationStatusUpdate     NotificationType = "status_update"
	NotificationEmergencyAlert   NotificationType = "emergency_alert"
	NotificationSystem           NotificationType = "system_notification"
)

type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
	PriorityUrgent NotificationPriority = "urgent"
)

type Notification struct {
	ID         uuid.UUID            `json:"id"`
	UserID     string               `json:"user_id"`
	Type       NotificationType     `json:"type"`
	Title      string               `json:"title"`
	Message    string               `json:"message"`
	Priority   NotificationPriority `json:"priority"`
	AccidentID *uuid.UUID           `json:"accident_id,omitempty"`
	IsRead     bool                 `json:"is_read"`
	ReadAt     *time.Time           `json:"read_at,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}
