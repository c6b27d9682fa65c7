package score

import (
	"fmt"

	"github.com/vitalio/triage-api/schema"
)

// ErrNoSamples is returned when an assessment window contains no samples.
// This is the only scoring failure surfaced to callers.
var ErrNoSamples = fmt.Errorf("no vitals samples in assessment window")

// Aggregate reduces an assessment window into its summary metrics using
// the arithmetic mean over the full window.
func Aggregate(samples []schema.VitalsSample) (schema.SummaryMetrics, error) {
	if len(samples) == 0 {
		return schema.SummaryMetrics{}, ErrNoSamples
	}

	var heartRate, steps, sleep, oxygen float64
	for _, s := range samples {
		heartRate += float64(s.HeartRate)
		steps += float64(s.Steps)
		sleep += s.SleepHours
		oxygen += s.BloodOxygen
	}

	n := float64(len(samples))
	return schema.SummaryMetrics{
		AvgHeartRate:   heartRate / n,
		AvgSteps:       steps / n,
		AvgSleepHours:  sleep / n,
		AvgBloodOxygen: oxygen / n,
	}, nil
}
