package score_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vitalio/triage-api/schema"
	"github.com/vitalio/triage-api/score"
)

func sampleWindow() []schema.VitalsSample {
	window := make([]schema.VitalsSample, 0, 4)
	for i := 0; i < 4; i++ {
		window = append(window, schema.VitalsSample{
			Timestamp:      time.Date(2023, 11, 1, 8, 0, 0, 0, time.UTC).AddDate(0, 0, -i),
			HeartRate:      68 + i, // 68, 69, 70, 71
			Steps:          9000 + i*1000,
			SleepHours:     7 + float64(i)*0.5,
			CaloriesBurned: 2100,
			BloodOxygen:    97 + float64(i),
			StressLevel:    schema.StressLow,
		})
	}
	return window
}

func TestAggregate(t *testing.T) {
	metrics, err := score.Aggregate(sampleWindow())
	assert.NoError(t, err)

	assert.Equal(t, 69.5, metrics.AvgHeartRate, "wrong average heart rate")
	assert.Equal(t, 10500.0, metrics.AvgSteps, "wrong average steps")
	assert.Equal(t, 7.75, metrics.AvgSleepHours, "wrong average sleep")
	assert.Equal(t, 98.5, metrics.AvgBloodOxygen, "wrong average blood oxygen")
}

func TestAggregateSingleSample(t *testing.T) {
	metrics, err := score.Aggregate(sampleWindow()[:1])
	assert.NoError(t, err)

	assert.Equal(t, 68.0, metrics.AvgHeartRate)
	assert.Equal(t, 9000.0, metrics.AvgSteps)
}

func TestAggregateEmptyWindow(t *testing.T) {
	_, err := score.Aggregate(nil)
	assert.Equal(t, score.ErrNoSamples, err, "empty window must surface ErrNoSamples")

	_, err = score.Aggregate([]schema.VitalsSample{})
	assert.Equal(t, score.ErrNoSamples, err)
}
