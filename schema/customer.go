package schema

import "time"

// StressLevel is the stress classification reported by a wearable device.
type StressLevel string

const (
	StressLow      StressLevel = "low"
	StressModerate StressLevel = "moderate"
	StressHigh     StressLevel = "high"
)

// CustomerProfile is an immutable snapshot of a customer for one
// assessment run.
type CustomerProfile struct {
	ID                string   `json:"customer_id"`
	Name              string   `json:"name"`
	Age               int      `json:"age"`
	Gender            string   `json:"gender"`
	Address           string   `json:"location"`
	Location          Location `json:"coordinates"`
	MedicalHistory    []string `json:"medical_history"`
	CurrentConditions []string `json:"current_conditions"`
}

// VitalsSample is a single wearable reading. A finite ordered sequence of
// samples forms one assessment window.
type VitalsSample struct {
	Timestamp      time.Time   `json:"timestamp"`
	HeartRate      int         `json:"heart_rate"`
	Steps          int         `json:"steps"`
	SleepHours     float64     `json:"sleep_hours"`
	CaloriesBurned int         `json:"calories_burned"`
	BloodOxygen    float64     `json:"blood_oxygen"`
	StressLevel    StressLevel `json:"stress_level"`
}
