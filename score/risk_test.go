package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalio/triage-api/schema"
	"github.com/vitalio/triage-api/score"
)

func TestRisksNoneTriggered(t *testing.T) {
	m := schema.SummaryMetrics{AvgHeartRate: 70, AvgSteps: 10000, AvgSleepHours: 8}

	risks := score.Risks(m, nil, nil)
	assert.Equal(t, []string{}, risks, "healthy metrics should trigger no risks")
}

func TestRisksAllThresholdsFireInOrder(t *testing.T) {
	m := schema.SummaryMetrics{AvgHeartRate: 95, AvgSteps: 3000, AvgSleepHours: 5}

	risks := score.Risks(m, nil, nil)
	assert.Equal(t, []string{
		score.RiskElevatedHeartRate,
		score.RiskLowActivity,
		score.RiskSleepDeprivation,
	}, risks, "threshold risks must fire in rule order")
}

func TestRisksChronicConditionEntities(t *testing.T) {
	m := schema.SummaryMetrics{AvgHeartRate: 70, AvgSteps: 10000, AvgSleepHours: 8}
	entities := []schema.EntityAnnotation{
		{Text: "Hypertension", Category: "MEDICAL_CONDITION", Confidence: 0.92},
		{Text: "hypertension", Category: "MEDICAL_CONDITION", Confidence: 0.88}, // case-insensitive duplicate
		{Text: "diabetes", Category: "MEDICAL_CONDITION", Confidence: 0.81},
		{Text: "cardio workout", Category: "ACTIVITY", Confidence: 0.5}, // below confidence gate
		{Text: "anxiety", Category: "MEDICAL_CONDITION", Confidence: 0.9},
	}

	risks := score.Risks(m, entities, nil)
	assert.Equal(t, []string{
		"Chronic condition monitoring required: hypertension, diabetes",
	}, risks)
}

func TestRisksAnalyzerAnswer(t *testing.T) {
	m := schema.SummaryMetrics{AvgHeartRate: 70, AvgSteps: 10000, AvgSleepHours: 8}

	confident := &schema.Answer{Text: "possible cardiovascular strain", Confidence: 0.55}
	risks := score.Risks(m, nil, confident)
	assert.Equal(t, []string{"AI Assessment: possible cardiovascular strain"}, risks)

	hesitant := &schema.Answer{Text: "unclear", Confidence: 0.2}
	assert.Equal(t, []string{}, score.Risks(m, nil, hesitant),
		"low-confidence answers must be dropped")
}

func TestRisksCaseInsensitiveDedup(t *testing.T) {
	m := schema.SummaryMetrics{AvgHeartRate: 95, AvgSteps: 10000, AvgSleepHours: 8}
	answer := &schema.Answer{Text: "x", Confidence: 0.9}

	risks := score.Risks(m, nil, answer)
	seen := map[string]bool{}
	for _, r := range risks {
		assert.False(t, seen[r], "duplicate risk statement: %s", r)
		seen[r] = true
	}
}
