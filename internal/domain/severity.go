package domain

// SeverityFacts are the structured inputs to the rule-based scorer.
type SeverityFacts struct {
	Vehicles          int
	Injuries          int
	Fatalities        int
	WeatherConditions string
	RoadConditions    string
}

// SeverityAnalysisResult is produced once per intake and consumed
// immediately; it is never persisted as its own record.
type SeverityAnalysisResult struct {
	Severity            int      `json:"severity"` // 0-100
	Analysis            string   `json:"analysis"`
	DetectedInjuries    []string `json:"detected_injuries"`
	VehicleDamage       string   `json:"vehicle_damage"`
	RecommendedServices []string `json:"recommended_services"`
}

type ClassificationResult struct {
	Severity                  int           `json:"severity"`
	Classification            string        `json:"classification"`
	RequiresEmergencyServices bool          `json:"requires_emergency_services"`
	RecommendedServices       []ServiceType `json:"recommended_services"`
}

// ClassifyThresholds are the cut lines for the rule-based classification
// of structured facts. Comparisons are strict (score > cut).
type ClassifyThresholds struct {
	Moderate int
	High     int
	Critical int
}

// EnumThresholds map a 0-100 evidence score onto the 4-level severity
// enum. Comparisons are inclusive (score >= cut). The two tables
// deliberately disagree (30/50/70 vs 30/60/80); both sets are kept
// independently configurable rather than unified.
type EnumThresholds struct {
	Moderate int
	Severe   int
	Critical int
}

var (
	DefaultClassifyThresholds = ClassifyThresholds{Moderate: 30, High: 50, Critical: 70}
	DefaultEnumThresholds     = EnumThresholds{Moderate: 30, Severe: 60, Critical: 80}
)
