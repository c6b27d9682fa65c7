package score

import (
	"fmt"
	"strings"

	"github.com/vitalio/triage-api/schema"
)

// HealthContext renders an assessment window as a short narrative used as
// the analysis context for the medical text analyzer.
func HealthContext(m schema.SummaryMetrics, medicalHistory []string) string {
	history := "No significant history"
	if len(medicalHistory) > 0 {
		history = strings.Join(medicalHistory, ", ")
	}

	return fmt.Sprintf(
		"Patient health monitoring data shows average heart rate of %.0f bpm, "+
			"daily steps of %.0f, sleep duration of %.1f hours, "+
			"and blood oxygen saturation of %.1f%%. "+
			"Medical history includes: %s.",
		m.AvgHeartRate, m.AvgSteps, m.AvgSleepHours, m.AvgBloodOxygen, history)
}
