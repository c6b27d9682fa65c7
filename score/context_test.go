package score_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalio/triage-api/schema"
	"github.com/vitalio/triage-api/score"
)

func TestHealthContext(t *testing.T) {
	m := schema.SummaryMetrics{
		AvgHeartRate:   72.4,
		AvgSteps:       8450,
		AvgSleepHours:  7.25,
		AvgBloodOxygen: 97.8,
	}

	text := score.HealthContext(m, []string{"Hypertension", "Mild anxiety"})
	assert.Equal(t,
		"Patient health monitoring data shows average heart rate of 72 bpm, "+
			"daily steps of 8450, sleep duration of 7.2 hours, "+
			"and blood oxygen saturation of 97.8%. "+
			"Medical history includes: Hypertension, Mild anxiety.",
		text)
}

func TestHealthContextNoHistory(t *testing.T) {
	text := score.HealthContext(schema.SummaryMetrics{}, nil)
	assert.Contains(t, text, "Medical history includes: No significant history.")
}
