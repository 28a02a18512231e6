package domain

import (
	"time"

	"github.com/google/uuid"
)

// DispatchResult is the outcome of one dispatch batch: N service records
// plus exactly one notification, all sharing DispatchTime.
type DispatchResult struct {
	Services     []*EmergencyService `json:"services"`
	Notification *Notification       `json:"notification"`
	DispatchTime time.Time           `json:"dispatch_time"`
}

// AlertPayload is what gets pushed to the emergency-services webhook
// after a successful dispatch batch.
type AlertPayload struct {
	AccidentID   uuid.UUID     `json:"accident_id"`
	Services     []ServiceType `json:"services"`
	Severity     int           `json:"severity"`
	Latitude     float64       `json:"latitude"`
	Longitude    float64       `json:"longitude"`
	DispatchedAt time.Time     `json:"dispatched_at"`
}
