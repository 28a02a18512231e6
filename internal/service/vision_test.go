package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"roadguard/internal/config"
)

func visionTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestParseAnalysis_FullResponse(t *testing.T) {
	t.Parallel()

	got, err := parseAnalysis(`{
		"severity": 72,
		"analysis": "head-on collision with airbag deployment",
		"detected_injuries": ["head trauma", "whiplash"],
		"vehicle_damage": "severe front-end crush",
		"recommended_services": ["police", "ambulance", "fire department"]
	}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Severity != 72 {
		t.Fatalf("severity = %d, want 72", got.Severity)
	}
	if len(got.DetectedInjuries) != 2 || len(got.RecommendedServices) != 3 {
		t.Fatalf("unexpected slices: %+v", got)
	}
}

func TestParseAnalysis_MissingFieldsDefaulted(t *testing.T) {
	t.Parallel()

	got, err := parseAnalysis(`{"severity": 42}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Severity != 42 {
		t.Fatalf("severity = %d, want 42", got.Severity)
	}
	if got.Analysis != "Unable to analyze" {
		t.Fatalf("analysis default = %q", got.Analysis)
	}
	if got.VehicleDamage != "Unknown" {
		t.Fatalf("damage default = %q", got.VehicleDamage)
	}
	if len(got.DetectedInjuries) != 0 {
		t.Fatalf("injuries default must be empty, got %v", got.DetectedInjuries)
	}
	if len(got.RecommendedServices) != 1 || got.RecommendedServices[0] != "police" {
		t.Fatalf("services default = %v", got.RecommendedServices)
	}
}

func TestParseAnalysis_EmptyObjectAllDefaults(t *testing.T) {
	t.Parallel()

	got, err := parseAnalysis(`{}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Severity != 50 {
		t.Fatalf("severity default = %d, want 50", got.Severity)
	}
}

func TestParseAnalysis_ZeroSeverityKept(t *testing.T) {
	t.Parallel()

	// an explicit 0 is a real answer, not a missing field
	got, err := parseAnalysis(`{"severity": 0, "analysis": "no visible damage"}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Severity != 0 {
		t.Fatalf("severity = %d, want 0", got.Severity)
	}
	if got.Analysis != "no visible damage" {
		t.Fatalf("analysis = %q", got.Analysis)
	}
}

func TestParseAnalysis_ScoreClamped(t *testing.T) {
	t.Parallel()

	got, err := parseAnalysis(`{"severity": 250}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Severity != 100 {
		t.Fatalf("severity = %d, want clamped 100", got.Severity)
	}

	got, err = parseAnalysis(`{"severity": -5}`)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Severity != 0 {
		t.Fatalf("severity = %d, want clamped 0", got.Severity)
	}
}

func TestParseAnalysis_StripsCodeFence(t *testing.T) {
	t.Parallel()

	got, err := parseAnalysis("```json\n{\"severity\": 33}\n```")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.Severity != 33 {
		t.Fatalf("severity = %d, want 33", got.Severity)
	}
}

func TestParseAnalysis_InvalidJSON(t *testing.T) {
	t.Parallel()

	if _, err := parseAnalysis("the scene looks bad"); err == nil {
		t.Fatalf("expected error for non-JSON answer")
	}
}

func TestVisionScorer_Unconfigured_UsesFallback(t *testing.T) {
	t.Parallel()

	scorer := NewVisionScorer(config.VisionConfig{}, visionTestLogger())

	got := scorer.AnalyzeEvidence(context.Background(), []string{"http://files/a.jpg"})

	want := FallbackAnalysis()
	if got.Severity != want.Severity || got.Analysis != want.Analysis {
		t.Fatalf("expected fallback analysis, got %+v", got)
	}
	if len(got.RecommendedServices) != 2 {
		t.Fatalf("fallback services = %v", got.RecommendedServices)
	}
}

func TestVisionScorer_NoFetchableImages_UsesFallback(t *testing.T) {
	t.Parallel()

	scorer := NewVisionScorer(config.VisionConfig{APIKey: "test-key"}, visionTestLogger())

	// nothing listens on this address; every fetch fails, so no image
	// part survives and the scorer must fall back without calling out
	got := scorer.AnalyzeEvidence(context.Background(), []string{"http://127.0.0.1:1/a.jpg"})

	if got.Severity != 65 {
		t.Fatalf("expected fallback severity 65, got %d", got.Severity)
	}
}

func TestFallbackAnalysis_Fixed(t *testing.T) {
	t.Parallel()

	got := FallbackAnalysis()
	if got.Severity != 65 {
		t.Fatalf("severity = %d, want 65", got.Severity)
	}
	if got.Analysis != "Moderate collision detected with visible vehicle damage" {
		t.Fatalf("analysis = %q", got.Analysis)
	}
	if got.VehicleDamage != "Front-end damage visible" {
		t.Fatalf("damage = %q", got.VehicleDamage)
	}
	if len(got.DetectedInjuries) != 1 || got.DetectedInjuries[0] != "possible minor injuries" {
		t.Fatalf("injuries = %v", got.DetectedInjuries)
	}
	if len(got.RecommendedServices) != 2 || got.RecommendedServices[0] != "police" || got.RecommendedServices[1] != "ambulance" {
		t.Fatalf("services = %v", got.RecommendedServices)
	}
}
