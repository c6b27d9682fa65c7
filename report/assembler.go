package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/vitalio/triage-api/schema"
)

const (
	maxSuggestedProviders = 3
	nextReviewOffsetDays  = 90
	reportIDTimeFormat    = "20060102_150405"
	renderedTimeFormat    = "2006-01-02 15:04:05"
	renderedDateFormat    = "2006-01-02"
)

// Assembler composes pipeline outputs into a final report. The clock is
// injectable so that report ids and dates are stable under test.
type Assembler struct {
	now func() time.Time
}

func NewAssembler() *Assembler {
	return &Assembler{now: time.Now}
}

// NewAssemblerAt returns an assembler pinned to a fixed assembly time.
func NewAssemblerAt(now func() time.Time) *Assembler {
	return &Assembler{now: now}
}

// Assemble builds the final report. The report identifier derives
// deterministically from the customer id and the assembly timestamp; the
// next review date is exactly 90 days after the report date.
func (a *Assembler) Assemble(customer schema.CustomerProfile, assessment schema.HealthAssessment, verification schema.VerificationRecord, matches []schema.ProviderMatch) schema.FinalReport {
	assembledAt := a.now().UTC()

	suggested := make([]schema.SuggestedProvider, 0, maxSuggestedProviders)
	for _, m := range matches {
		if len(suggested) == maxSuggestedProviders {
			break
		}
		suggested = append(suggested, schema.SuggestedProvider{
			Name:            m.Provider.Name,
			Specialty:       m.Provider.Specialty,
			Rating:          m.Provider.Rating,
			Address:         m.Provider.Address,
			DistanceKM:      m.DistanceKM,
			Phone:           m.Provider.Phone,
			Affiliation:     m.Provider.Affiliation,
			ConsultationFee: m.Provider.ConsultationFee,
		})
	}

	return schema.FinalReport{
		ID: fmt.Sprintf("RPT_%s_%s", customer.ID, assembledAt.Format(reportIDTimeFormat)),
		Customer: schema.CustomerSummary{
			ID:   customer.ID,
			Name: customer.Name,
			Age:  customer.Age,
		},
		Assessment: assessment,
		Recommendations: schema.RecommendationBundle{
			Approved:   verification.Approved,
			Modified:   verification.Modified,
			Additional: verification.Additional,
		},
		Urgency:            verification.Urgency,
		SuggestedProviders: suggested,
		ReportedAt:         assembledAt,
		NextReviewAt:       assembledAt.AddDate(0, 0, nextReviewOffsetDays),
		ReviewerID:         verification.ReviewerID,
	}
}

// Render produces the fixed-format text form of a report. Rendering is
// pure: identical reports render to identical text.
func Render(r schema.FinalReport) string {
	var b strings.Builder

	b.WriteString("MEDICAL HEALTH REPORT\n")
	b.WriteString("=====================\n\n")
	fmt.Fprintf(&b, "Report ID: %s\n", r.ID)
	fmt.Fprintf(&b, "Patient: %s (ID: %s)\n", r.Customer.Name, r.Customer.ID)
	fmt.Fprintf(&b, "Date: %s\n\n", r.ReportedAt.Format(renderedTimeFormat))

	b.WriteString("HEALTH ASSESSMENT\n")
	b.WriteString("-----------------\n")
	fmt.Fprintf(&b, "Overall Health Score: %.1f/100\n\n", r.Assessment.Score)

	b.WriteString("Risk Factors Identified:\n")
	writeBullets(&b, r.Assessment.RiskFactors)

	b.WriteString("\nRECOMMENDATIONS\n")
	b.WriteString("---------------\n")
	b.WriteString("AI-Verified Recommendations:\n")
	writeBullets(&b, r.Recommendations.Approved)
	b.WriteString("\nDoctor-Modified Recommendations:\n")
	writeBullets(&b, r.Recommendations.Modified)
	b.WriteString("\nAdditional Medical Advice:\n")
	writeBullets(&b, r.Recommendations.Additional)

	b.WriteString("\nSUGGESTED HEALTHCARE PROVIDERS\n")
	b.WriteString("------------------------------\n")
	for _, p := range r.SuggestedProviders {
		fmt.Fprintf(&b, "- %s - %s (%.1f stars)\n", p.Name, p.Specialty, p.Rating)
		fmt.Fprintf(&b, "  %.1fkm away - %s\n", p.DistanceKM, p.Affiliation)
		fmt.Fprintf(&b, "  %s - Fee: %.2f\n", p.Phone, p.ConsultationFee)
	}

	fmt.Fprintf(&b, "\nUrgency Level: %s\n", strings.ToUpper(string(r.Urgency)))
	fmt.Fprintf(&b, "Next Review: %s\n\n", r.NextReviewAt.Format(renderedDateFormat))
	fmt.Fprintf(&b, "Report verified by: %s\n", r.ReviewerID)

	return b.String()
}

func writeBullets(b *strings.Builder, lines []string) {
	for _, line := range lines {
		fmt.Fprintf(b, "- %s\n", line)
	}
}
