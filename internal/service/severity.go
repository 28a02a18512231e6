package service

import (
	"context"
	"strings"

	"roadguard/internal/domain"
)

// ScoreFacts implements the rule-based severity formula: weighted counts
// plus weather/road adjustments, clamped to [0, 100].
func ScoreFacts(f domain.SeverityFacts) int {
	score := f.Vehicles*10 + f.Injuries*20 + f.Fatalities*50

	weather := strings.ToLower(f.WeatherConditions)
	if strings.Contains(weather, "rain") {
		score += 10
	}
	if strings.Contains(weather, "snow") {
		score += 15
	}

	road := strings.ToLower(f.RoadConditions)
	if strings.Contains(road, "wet") {
		score += 5
	}
	if strings.Contains(road, "icy") {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// Classify buckets a score with strict comparisons against the cut lines.
func Classify(score int, t domain.ClassifyThresholds) string {
	switch {
	case score > t.Critical:
		return "critical"
	case score > t.High:
		return "high"
	case score > t.Moderate:
		return "moderate"
	default:
		return "low"
	}
}

func RequiresEmergencyServices(score int, t domain.ClassifyThresholds) bool {
	return score > t.High
}

// MapToSeverity maps a 0-100 score onto the accident severity enum using
// inclusive comparisons. These cut lines differ from the classification
// table on purpose; see domain.EnumThresholds.
func MapToSeverity(score int, t domain.EnumThresholds) domain.AccidentSeverity {
	switch {
	case score >= t.Critical:
		return domain.SeverityCritical
	case score >= t.Severe:
		return domain.SeveritySevere
	case score >= t.Moderate:
		return domain.SeverityModerate
	default:
		return domain.SeverityMinor
	}
}

// SelectServices maps a severity score to the emergency services to
// dispatch. The returned order is the fixed creation priority: police,
// ambulance, fire department.
func SelectServices(score int) []domain.ServiceType {
	t := domain.DefaultClassifyThresholds
	switch {
	case score > t.Critical:
		return []domain.ServiceType{domain.ServicePolice, domain.ServiceAmbulance, domain.ServiceFireDepartment}
	case score > t.High:
		return []domain.ServiceType{domain.ServicePolice, domain.ServiceAmbulance}
	case score > t.Moderate:
		return []domain.ServiceType{domain.ServicePolice}
	default:
		return nil
	}
}

type severityService struct {
	scorer    EvidenceScorer
	classifyT domain.ClassifyThresholds
}

func NewSeverityService(scorer EvidenceScorer) SeverityService {
	return &severityService{
		scorer:    scorer,
		classifyT: domain.DefaultClassifyThresholds,
	}
}

func (s *severityService) Classify(req domain.ClassifySeverityRequest) domain.ClassificationResult {
	score := ScoreFacts(req.Facts())
	return domain.ClassificationResult{
		Severity:                  score,
		Classification:            Classify(score, s.classifyT),
		RequiresEmergencyServices: RequiresEmergencyServices(score, s.classifyT),
		RecommendedServices:       SelectServices(score),
	}
}

func (s *severityService) AnalyzeEvidence(ctx context.Context, imageURLs []string) domain.SeverityAnalysisResult {
	return s.scorer.AnalyzeEvidence(ctx, imageURLs)
}
