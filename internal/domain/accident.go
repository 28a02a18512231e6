package domain

import (
	"time"

	"github.com/google/uuid"
)

type AccidentSeverity string

const (
	SeverityMinor    AccidentSeverity = "minor"
	SeverityModerate AccidentSeverity = "moderate"
	SeveritySevere   AccidentSeverity = "severe"
	SeverityCritical AccidentSeverity = "critical"
)

type AccidentStatus string

const (
	AccidentReported            AccidentStatus = "reported"
	AccidentRespondersDispatched AccidentStatus = "responders_dispatched"
	AccidentUnderInvestigation  AccidentStatus = "under_investigation"
	AccidentOnScene             AccidentStatus = "on_scene"
	AccidentResolved            AccidentStatus = "resolved"
	AccidentClosed              AccidentStatus = "closed"
	AccidentCancelled           AccidentStatus = "cancelled"
)

type Accident struct {
	ID                uuid.UUID        `json:"id"`
	ReportNumber      string           `json:"report_number"`
	Description       string           `json:"description"`
	Severity          AccidentSeverity `json:"severity"`
	Status            AccidentStatus   `json:"status"`
	Latitude          float64          `json:"latitude"`
	Longitude         float64          `json:"longitude"`
	Address           string           `json:"address"`
	OccurredAt        time.Time        `json:"occurred_at"`
	WeatherConditions string           `json:"weather_conditions,omitempty"`
	RoadConditions    string           `json:"road_conditions,omitempty"`
	VehiclesInvolved  int              `json:"vehicles_involved"`
	Injuries          int              `json:"injuries"`
	Fatalities        int              `json:"fatalities"`
	ReportedBy        string           `json:"reported_by"`
	AssignedOfficerID *uuid.UUID       `json:"assigned_officer_id,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// statusTransitions holds the allowed next states of the accident lifecycle.
// Status changes never trigger a re-dispatch; dispatch happens once at intake.
var statusTransitions = map[AccidentStatus][]AccidentStatus{
	AccidentReported:            {AccidentRespondersDispatched, AccidentUnderInvestigation, AccidentCancelled, AccidentClosed},
	AccidentRespondersDispatched: {AccidentOnScene, AccidentUnderInvestigation, AccidentCancelled, AccidentClosed},
	AccidentUnderInvestigation:  {AccidentOnScene, AccidentResolved, AccidentCancelled, AccidentClosed},
	AccidentOnScene:             {AccidentResolved, AccidentCancelled, AccidentClosed},
	AccidentResolved:            {AccidentClosed},
	AccidentClosed:              {},
	AccidentCancelled:           {},
}

func (s AccidentStatus) CanTransitionTo(next AccidentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s AccidentStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type AccidentStatistics struct {
	Total      int64            `json:"total"`
	ByStatus   map[string]int64 `json:"by_status"`
	BySeverity map[string]int64 `json:"by_severity"`
}
