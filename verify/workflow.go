package verify

import (
	"fmt"
	"time"

	"github.com/vitalio/triage-api/schema"
)

// State of a review workflow. The only transition path is
// Pending -> Reviewed -> Finalized.
type State string

const (
	StatePending   State = "pending"
	StateReviewed  State = "reviewed"
	StateFinalized State = "finalized"
)

var (
	ErrAlreadyReviewed  = fmt.Errorf("assessment has already been reviewed")
	ErrReviewNotStarted = fmt.Errorf("assessment has not been reviewed yet")
)

const (
	maxApproved        = 3
	urgentThreshold    = 50
	modifiedQualifier  = " - consult within 2 weeks"
	AdditionalUrgent   = "Schedule immediate in-person consultation"
	AdditionalFollowUp = "Follow up in 3 months or if symptoms worsen"
)

// Workflow simulates a professional review of pipeline recommendations.
// A workflow instance covers one assessment.
type Workflow struct {
	state State
	now   func() time.Time
}

func NewWorkflow() *Workflow {
	return &Workflow{
		state: StatePending,
		now:   time.Now,
	}
}

// State returns the current workflow state.
func (w *Workflow) State() State {
	return w.state
}

// Review partitions recommendations into approved, modified, and
// additional sets and computes the urgency level. The first three
// recommendations are approved; the fourth, when present, is recorded as
// modified with a consultation qualifier. Recommendations beyond the
// fourth are dropped from review (kept for compatibility with the
// reference behavior). An empty reviewerID records the unassigned
// sentinel rather than failing.
func (w *Workflow) Review(reviewerID string, assessment schema.HealthAssessment, recommendations []string) (schema.VerificationRecord, error) {
	if w.state != StatePending {
		return schema.VerificationRecord{}, ErrAlreadyReviewed
	}

	if reviewerID == "" {
		reviewerID = schema.ReviewerUnassigned
	}

	record := schema.VerificationRecord{
		ReviewerID: reviewerID,
		ReviewedAt: w.now().UTC(),
		Approved:   []string{},
		Modified:   []string{},
		Additional: []string{},
		Urgency:    schema.UrgencyRoutine,
	}

	if len(recommendations) > maxApproved {
		record.Approved = append(record.Approved, recommendations[:maxApproved]...)
		record.Modified = append(record.Modified,
			fmt.Sprintf("Modified: %s%s", recommendations[maxApproved], modifiedQualifier))
	} else {
		record.Approved = append(record.Approved, recommendations...)
	}

	if assessment.Score < urgentThreshold {
		record.Additional = append(record.Additional, AdditionalUrgent)
		record.Urgency = schema.UrgencyHigh
	}
	record.Additional = append(record.Additional, AdditionalFollowUp)

	w.state = StateReviewed
	return record, nil
}

// Finalize closes the workflow after a successful review.
func (w *Workflow) Finalize() error {
	if w.state != StateReviewed {
		return ErrReviewNotStarted
	}
	w.state = StateFinalized
	return nil
}
