package schema

// SummaryMetrics is the arithmetic-mean reduction of one assessment window.
type SummaryMetrics struct {
	AvgHeartRate   float64 `json:"avg_heart_rate"`
	AvgSteps       float64 `json:"avg_daily_steps"`
	AvgSleepHours  float64 `json:"avg_sleep_hours"`
	AvgBloodOxygen float64 `json:"avg_blood_oxygen"`
}

// EntityAnnotation is an externally produced medical concept found in free
// text. Field names follow the analyzer wire format.
type EntityAnnotation struct {
	Text       string  `json:"word"`
	Category   string  `json:"entity_group"`
	Confidence float64 `json:"score"`
}

// Answer is a free-text answer from the medical text analyzer together
// with its confidence.
type Answer struct {
	Text       string  `json:"answer"`
	Confidence float64 `json:"score"`
}

// HealthAssessment is the scored outcome of one assessment window.
// Entities are passed through from the analyzer unmodified.
type HealthAssessment struct {
	Score       float64            `json:"overall_score"`
	RiskFactors []string           `json:"risk_factors"`
	Metrics     SummaryMetrics     `json:"key_metrics"`
	Entities    []EntityAnnotation `json:"medical_entities"`
}
