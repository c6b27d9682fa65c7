package verify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vitalio/triage-api/schema"
	"github.com/vitalio/triage-api/verify"
)

func recommendations(n int) []string {
	recs := make([]string, 0, n)
	for i := 0; i < n; i++ {
		recs = append(recs, string(rune('A'+i)))
	}
	return recs
}

func TestReviewApprovesFirstThree(t *testing.T) {
	w := verify.NewWorkflow()
	record, err := w.Review("D001", schema.HealthAssessment{Score: 80}, recommendations(5))
	assert.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, record.Approved)
	assert.Equal(t, []string{"Modified: D - consult within 2 weeks"}, record.Modified,
		"only the fourth recommendation is modified; the fifth drops out of review")
	assert.Equal(t, schema.UrgencyRoutine, record.Urgency)
	assert.Equal(t, []string{verify.AdditionalFollowUp}, record.Additional)
}

func TestReviewFewerThanThree(t *testing.T) {
	w := verify.NewWorkflow()
	record, err := w.Review("D001", schema.HealthAssessment{Score: 80}, recommendations(2))
	assert.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, record.Approved)
	assert.Empty(t, record.Modified)
}

func TestReviewLowScoreUrgency(t *testing.T) {
	w := verify.NewWorkflow()
	record, err := w.Review("D001", schema.HealthAssessment{Score: 49.9}, recommendations(1))
	assert.NoError(t, err)

	assert.Equal(t, schema.UrgencyHigh, record.Urgency)
	assert.Equal(t, []string{
		verify.AdditionalUrgent,
		verify.AdditionalFollowUp,
	}, record.Additional, "immediate consultation is prepended for low scores")
}

func TestReviewSentinelReviewer(t *testing.T) {
	w := verify.NewWorkflow()
	record, err := w.Review("", schema.HealthAssessment{Score: 75}, recommendations(1))
	assert.NoError(t, err)

	assert.Equal(t, schema.ReviewerUnassigned, record.ReviewerID,
		"missing reviewer must be recorded as the sentinel, not fail")
}

func TestWorkflowTransitions(t *testing.T) {
	w := verify.NewWorkflow()
	assert.Equal(t, verify.StatePending, w.State())

	assert.Equal(t, verify.ErrReviewNotStarted, w.Finalize(),
		"finalize before review is rejected")

	_, err := w.Review("D001", schema.HealthAssessment{Score: 75}, recommendations(1))
	assert.NoError(t, err)
	assert.Equal(t, verify.StateReviewed, w.State())

	_, err = w.Review("D001", schema.HealthAssessment{Score: 75}, recommendations(1))
	assert.Equal(t, verify.ErrAlreadyReviewed, err, "no branching back to pending")

	assert.NoError(t, w.Finalize())
	assert.Equal(t, verify.StateFinalized, w.State())
	assert.Equal(t, verify.ErrReviewNotStarted, w.Finalize())
}
