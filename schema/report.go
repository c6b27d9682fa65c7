package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// UrgencyLevel is determined solely by the health score threshold at
// verification time.
type UrgencyLevel string

const (
	UrgencyRoutine UrgencyLevel = "routine"
	UrgencyHigh    UrgencyLevel = "high"
)

// ReviewerUnassigned is recorded when no provider could be matched.
const ReviewerUnassigned = "no provider available"

// VerificationRecord is the outcome of the professional review workflow.
type VerificationRecord struct {
	ReviewerID string       `json:"verified_by"`
	ReviewedAt time.Time    `json:"verification_timestamp"`
	Approved   []string     `json:"ai_recommendations_approved"`
	Modified   []string     `json:"ai_recommendations_modified"`
	Additional []string     `json:"additional_recommendations"`
	Urgency    UrgencyLevel `json:"urgency_level"`
}

// RecommendationBundle groups recommendations by their review outcome.
type RecommendationBundle struct {
	Approved   []string `json:"ai_approved"`
	Modified   []string `json:"doctor_modified"`
	Additional []string `json:"additional"`
}

// CustomerSummary is the customer subset carried on a final report.
type CustomerSummary struct {
	ID   string `json:"customer_id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// SuggestedProvider is one ranked provider suggestion on a final report.
type SuggestedProvider struct {
	Name            string  `json:"name"`
	Specialty       string  `json:"specialty"`
	Rating          float64 `json:"rating"`
	Address         string  `json:"location"`
	DistanceKM      float64 `json:"distance_km"`
	Phone           string  `json:"phone"`
	Affiliation     string  `json:"hospital"`
	ConsultationFee float64 `json:"consultation_fee"`
}

// FinalReport is the output contract of the pipeline. Field names and
// ordering are the compatibility surface for downstream consumers.
type FinalReport struct {
	ID                 string               `json:"report_id"`
	Customer           CustomerSummary      `json:"customer_info"`
	Assessment         HealthAssessment     `json:"health_assessment"`
	Recommendations    RecommendationBundle `json:"recommendations"`
	Urgency            UrgencyLevel         `json:"urgency_level"`
	SuggestedProviders []SuggestedProvider  `json:"suggested_doctors"`
	ReportedAt         time.Time            `json:"report_date"`
	NextReviewAt       time.Time            `json:"next_review_date"`
	ReviewerID         string               `json:"verified_by"`
}

// ReportDocument is a FinalReport stored as a jsonb column.
type ReportDocument FinalReport

func (d ReportDocument) Value() (driver.Value, error) {
	return json.Marshal(d)
}

func (d *ReportDocument) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, d)
}

// ReportRecord is the archived form of a finalized report.
type ReportRecord struct {
	ID         string         `json:"report_id" gorm:"primary_key"`
	CustomerID string         `json:"customer_id"`
	Score      float64        `json:"score"`
	Urgency    string         `json:"urgency_level"`
	Report     ReportDocument `json:"report" gorm:"type:jsonb;not null;default '{}'"`
	Rendered   string         `json:"rendered" gorm:"type:text"`
	CreatedAt  time.Time      `json:"created_at"`
}
