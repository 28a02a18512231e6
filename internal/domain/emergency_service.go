package domain

import (
	"time"

	"github.com/google/uuid"
)

type ServiceType string

const (
	ServicePolice         ServiceType = "police"
	ServiceAmbulance      ServiceType = "ambulance"
	ServiceFireDepartment ServiceType = "fire_department"
	ServiceTowTruck       ServiceType = "tow_truck"
	ServiceOther          ServiceType = "other"
)

type ServiceStatus string

const (
	ServiceRequested  ServiceStatus = "requested"
	ServiceDispatched ServiceStatus = "dispatched"
	ServiceEnRoute    ServiceStatus = "en_route"
	ServiceOnScene    ServiceStatus = "on_scene"
	ServiceCompleted  ServiceStatus = "completed"
	ServiceCancelled  ServiceStatus = "cancelled"
)

// EmergencyService is one dispatch record for an accident. The three
// milestone timestamps are each set at most once, on the transition into
// the matching status.
type EmergencyService struct {
	ID              uuid.UUID     `json:"id"`
	AccidentID      uuid.UUID     `json:"accident_id"`
	Type            ServiceType   `json:"type"`
	Status          ServiceStatus `json:"status"`
	ServiceProvider string        `json:"service_provider"`
	ContactNumber   string        `json:"contact_number"`
	Seq             int           `json:"seq"` // position within the dispatch batch, priority order
	DispatchedAt    *time.Time    `json:"dispatched_at,omitempty"`
	ArrivedAt       *time.Time    `json:"arrived_at,omitempty"`
	CompletedAt     *time.Time    `json:"completed_at,omitempty"`
	ResponderID     *uuid.UUID    `json:"responder_id,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

var serviceStatusOrder = map[ServiceStatus]int{
	ServiceRequested:  0,
	ServiceDispatched: 1,
	ServiceEnRoute:    2,
	ServiceOnScene:    3,
	ServiceCompleted:  4,
}

// CanAdvanceTo reports whether the status may move forward to next.
// Cancellation is allowed from any non-terminal state.
func (s ServiceStatus) CanAdvanceTo(next ServiceStatus) bool {
	if next == ServiceCancelled {
		return s != ServiceCompleted && s != ServiceCancelled
	}
	cur, ok := serviceStatusOrder[s]
	if !ok {
		return false
	}
	n, ok := serviceStatusOrder[next]
	if !ok {
		return false
	}
	return n > cur
}

type DispatchStatistics struct {
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
	Total     int64 `json:"total"`
}
