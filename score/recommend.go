package score

import (
	"fmt"
	"strings"

	"github.com/vitalio/triage-api/schema"
)

const (
	lowScoreThreshold         = 60
	adviceConfidenceThreshold = 0.4
)

const (
	RecommendEvaluation = "Comprehensive medical evaluation recommended"
	RecommendActivity   = "Gradual increase in daily physical activity to 8,000+ steps"
	RecommendSleep      = "Sleep hygiene improvement with 7-9 hours nightly"
	RecommendCardio     = "Cardiovascular assessment and monitoring"
	RecommendGlucose    = "Blood glucose monitoring and endocrinology follow-up"
	RecommendPressure   = "Blood pressure monitoring and lifestyle modifications"
	RecommendMonitoring = "Continue continuous health monitoring with wearable devices"
)

// Recommendations maps a health score and risk statements to actionable
// recommendation text. Each risk contributes at most one templated entry;
// entries are not deduplicated across templates. A monitoring
// recommendation is always appended last.
func Recommendations(healthScore float64, risks []string, advice *schema.Answer) []string {
	recommendations := []string{}

	if healthScore < lowScoreThreshold {
		recommendations = append(recommendations, RecommendEvaluation)
	}

	for _, risk := range risks {
		lower := strings.ToLower(risk)
		switch {
		case strings.Contains(lower, "physical activity"):
			recommendations = append(recommendations, RecommendActivity)
		case strings.Contains(lower, "sleep"):
			recommendations = append(recommendations, RecommendSleep)
		case strings.Contains(lower, "heart rate"):
			recommendations = append(recommendations, RecommendCardio)
		case strings.Contains(lower, "diabetes"):
			recommendations = append(recommendations, RecommendGlucose)
		case strings.Contains(lower, "hypertension"):
			recommendations = append(recommendations, RecommendPressure)
		}
	}

	if advice != nil && advice.Confidence > adviceConfidenceThreshold {
		recommendations = append(recommendations, fmt.Sprintf("Personalized advice: %s", advice.Text))
	}

	return append(recommendations, RecommendMonitoring)
}
