package score

import (
	"fmt"
	"strings"

	"github.com/vitalio/triage-api/schema"
)

const (
	elevatedHeartRateThreshold = 90
	lowActivityThreshold       = 5000
	sleepDeprivationThreshold  = 6

	entityConfidenceThreshold = 0.7
	answerConfidenceThreshold = 0.3
)

const (
	RiskElevatedHeartRate = "Elevated resting heart rate detected"
	RiskLowActivity       = "Insufficient physical activity"
	RiskSleepDeprivation  = "Sleep deprivation pattern"
)

// chronic conditions that require ongoing monitoring when found in
// high-confidence entity annotations
var chronicConditionKeywords = []string{"diabetes", "hypertension", "cardio", "heart"}

// Risks applies the threshold rules to summary metrics and merges in
// externally supplied entity annotations and an optional analyzer answer.
// Rules are evaluated in a fixed order and the result list is deduplicated
// case-insensitively. An empty list is a valid outcome.
func Risks(m schema.SummaryMetrics, entities []schema.EntityAnnotation, riskAnswer *schema.Answer) []string {
	risks := []string{}

	if m.AvgHeartRate > elevatedHeartRateThreshold {
		risks = append(risks, RiskElevatedHeartRate)
	}
	if m.AvgSteps < lowActivityThreshold {
		risks = append(risks, RiskLowActivity)
	}
	if m.AvgSleepHours < sleepDeprivationThreshold {
		risks = append(risks, RiskSleepDeprivation)
	}

	if conditions := chronicConditions(entities); len(conditions) > 0 {
		risks = append(risks, fmt.Sprintf("Chronic condition monitoring required: %s", strings.Join(conditions, ", ")))
	}

	if riskAnswer != nil && riskAnswer.Confidence > answerConfidenceThreshold {
		risks = append(risks, fmt.Sprintf("AI Assessment: %s", riskAnswer.Text))
	}

	return dedupeFold(risks)
}

// chronicConditions collects high-confidence entity texts that mention a
// chronic condition keyword, deduplicated case-insensitively in
// first-seen order.
func chronicConditions(entities []schema.EntityAnnotation) []string {
	conditions := []string{}
	seen := map[string]struct{}{}

	for _, e := range entities {
		if e.Confidence <= entityConfidenceThreshold {
			continue
		}

		text := strings.ToLower(e.Text)
		for _, keyword := range chronicConditionKeywords {
			if strings.Contains(text, keyword) {
				if _, ok := seen[text]; !ok {
					seen[text] = struct{}{}
					conditions = append(conditions, text)
				}
				break
			}
		}
	}

	return conditions
}

// dedupeFold removes statements differing only by case, keeping the first
// occurrence order.
func dedupeFold(statements []string) []string {
	result := []string{}
	seen := map[string]struct{}{}

	for _, s := range statements {
		key := strings.ToLower(s)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, s)
	}

	return result
}
