package domain

import (
	"time"

	"github.com/google/uuid"
)

type ReportAccidentRequest struct {
	Description       string    `json:"description" validate:"required,min=3"`
	Latitude          float64   `json:"latitude" validate:"required,lat"`
	Longitude         float64   `json:"longitude" validate:"required,lng"`
	Address           string    `json:"address" validate:"required"`
	OccurredAt        time.Time `json:"occurred_at"`
	WeatherConditions string    `json:"weather_conditions" validate:"omitempty,max=255"`
	RoadConditions    string    `json:"road_conditions" validate:"omitempty,max=255"`
	VehiclesInvolved  int       `json:"vehicles_involved" validate:"min=0,max=50"`
	Injuries          int       `json:"injuries" validate:"min=0,max=500"`
	Fatalities        int       `json:"fatalities" validate:"min=0,max=500"`
	ReportedBy        string    `json:"reported_by" validate:"omitempty,uuid"`
}

func (r ReportAccidentRequest) Facts() SeverityFacts {
	return SeverityFacts{
		Vehicles:          r.VehiclesInvolved,
		Injuries:          r.Injuries,
		Fatalities:        r.Fatalities,
		WeatherConditions: r.WeatherConditions,
		RoadConditions:    r.RoadConditions,
	}
}

type ClassifySeverityRequest struct {
	Description       string `json:"description" validate:"omitempty,max=2000"`
	VehiclesInvolved  int    `json:"vehicles_involved" validate:"min=0,max=50"`
	Injuries          int    `json:"injuries" validate:"min=0,max=500"`
	Fatalities        int    `json:"fatalities" validate:"min=0,max=500"`
	WeatherConditions string `json:"weather_conditions" validate:"omitempty,max=255"`
	RoadConditions    string `json:"road_conditions" validate:"omitempty,max=255"`
}

func (r ClassifySeverityRequest) Facts() SeverityFacts {
	return SeverityFacts{
		Vehicles:          r.VehiclesInvolved,
		Injuries:          r.Injuries,
		Fatalities:        r.Fatalities,
		WeatherConditions: r.WeatherConditions,
		RoadConditions:    r.RoadConditions,
	}
}

type ManualDispatchRequest struct {
	AccidentID uuid.UUID `json:"accident_id" validate:"required"`
	UserID     string    `json:"user_id" validate:"omitempty,uuid"`
	Severity   int       `json:"severity" validate:"score"`
	Latitude   float64   `json:"latitude" validate:"required,lat"`
	Longitude  float64   `json:"longitude" validate:"required,lng"`
}

type UpdateAccidentStatusRequest struct {
	Status AccidentStatus `json:"status" validate:"required"`
}

type AssignOfficerRequest struct {
	OfficerID uuid.UUID `json:"officer_id" validate:"required"`
}

type AdvanceServiceStatusRequest struct {
	Status ServiceStatus `json:"status" validate:"required,oneof=requested dispatched en_route on_scene completed cancelled"`
}

type ListAccidentsResponse struct {
	Accidents []*Accident `json:"accidents"`
	Page      int         `json:"page"`
	Limit     int         `json:"limit"`
	Total     int64       `json:"total"`
}
