package score

import (
	"math"

	"github.com/vitalio/triage-api/schema"
)

const (
	restingHeartRateBaseline = 70
	heartRatePenaltyPerBPM   = 2
	dailyStepsTarget         = 10000
	sleepHoursBaseline       = 8
	sleepPenaltyPerHour      = 12.5
)

// HeartRateScore scores the average resting heart rate against the
// 70 bpm baseline.
func HeartRateScore(avgHeartRate float64) float64 {
	return math.Max(0, 100-math.Abs(avgHeartRate-restingHeartRateBaseline)*heartRatePenaltyPerBPM)
}

// ActivityScore scores average daily steps against a 10,000 step target.
func ActivityScore(avgSteps float64) float64 {
	return math.Min(100, avgSteps/dailyStepsTarget*100)
}

// SleepScore scores average sleep duration against an 8 hour baseline.
func SleepScore(avgSleepHours float64) float64 {
	return math.Max(0, 100-math.Abs(avgSleepHours-sleepHoursBaseline)*sleepPenaltyPerHour)
}

// BaseScore is the mean of the three component scores.
func BaseScore(m schema.SummaryMetrics) float64 {
	return (HeartRateScore(m.AvgHeartRate) + ActivityScore(m.AvgSteps) + SleepScore(m.AvgSleepHours)) / 3
}

// HealthScore converts summary metrics into a score clamped to [0,100].
// When the text analyzer supplies a semantic adjustment factor the base
// score is multiplied by it before clamping; a nil adjustment leaves the
// deterministic base score untouched.
func HealthScore(m schema.SummaryMetrics, adjustment *float64) float64 {
	s := BaseScore(m)
	if adjustment != nil {
		s = s * (*adjustment)
	}

	return math.Min(100, math.Max(0, s))
}
