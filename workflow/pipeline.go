package workflow

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vitalio/triage-api/external/medtext"
	"github.com/vitalio/triage-api/geo"
	"github.com/vitalio/triage-api/match"
	"github.com/vitalio/triage-api/report"
	"github.com/vitalio/triage-api/schema"
	"github.com/vitalio/triage-api/score"
	"github.com/vitalio/triage-api/verify"
)

const logPrefix = "pipeline"

const (
	riskQuestion   = "What are the main health risks based on this data?"
	adviceQuestion = "What lifestyle recommendations would help improve these health metrics?"

	defaultMaxDistanceKM = 25.0
	maxAdjustmentFactor  = 1.2
)

var ErrInvalidCoordinates = fmt.Errorf("customer coordinates out of range")

// ReportArchive persists finalized reports. Archiving failures degrade the
// run, they never fail it.
type ReportArchive interface {
	SaveReport(report schema.FinalReport, rendered string) error
}

// Request is one assessment run for one customer.
type Request struct {
	Customer         schema.CustomerProfile
	Samples          []schema.VitalsSample
	Specialty        string
	MaxDistanceKM    float64
	RequireAvailable bool
}

// Result is a completed run. Degraded lists the collaborators that fell
// back to their documented defaults during the run.
type Result struct {
	Report   schema.FinalReport
	Rendered string
	Degraded []string
}

// Pipeline sequences aggregation, scoring, risk assessment,
// recommendation synthesis, provider matching, verification, and report
// assembly for one customer at a time. All collaborators are injected;
// the pipeline holds no mutable state across runs.
type Pipeline struct {
	analyzer  medtext.MedText
	matcher   *match.Matcher
	assembler *report.Assembler
	archive   ReportArchive
	resolver  geo.LocationResolver
	log       *log.Entry
}

// NewPipeline builds a pipeline. archive and resolver may be nil; the
// corresponding stages are then skipped.
func NewPipeline(analyzer medtext.MedText, matcher *match.Matcher, archive ReportArchive, resolver geo.LocationResolver) *Pipeline {
	return &Pipeline{
		analyzer:  analyzer,
		matcher:   matcher,
		assembler: report.NewAssembler(),
		archive:   archive,
		resolver:  resolver,
		log:       log.WithField("prefix", logPrefix),
	}
}

// Run executes the full assessment for one customer. The only
// caller-visible failures are an empty sample window and malformed
// coordinates; every external-dependency failure degrades gracefully and
// still yields a complete report.
func (p *Pipeline) Run(ctx context.Context, req Request) (*Result, error) {
	result := &Result{}

	metrics, err := score.Aggregate(req.Samples)
	if err != nil {
		return nil, err
	}

	location, ok := p.resolveLocation(req.Customer, result)
	if !ok {
		return nil, ErrInvalidCoordinates
	}

	healthContext := score.HealthContext(metrics, req.Customer.MedicalHistory)

	entities := p.extractEntities(ctx, req.Customer, result)
	adjustment := p.adjustment(ctx, healthContext, result)
	healthScore := score.HealthScore(metrics, adjustment)

	riskAnswer := p.answer(ctx, riskQuestion, healthContext, "risk answer", result)
	risks := score.Risks(metrics, entities, riskAnswer)

	assessment := schema.HealthAssessment{
		Score:       healthScore,
		RiskFactors: risks,
		Metrics:     metrics,
		Entities:    entities,
	}

	advice := p.answer(ctx, adviceQuestion, healthContext, "advice answer", result)
	recommendations := score.Recommendations(healthScore, risks, advice)

	maxDistance := req.MaxDistanceKM
	if maxDistance <= 0 {
		maxDistance = defaultMaxDistanceKM
	}

	var matches []schema.ProviderMatch
	if location.IsZero() {
		// No coordinates were supplied and geocoding produced none;
		// matching against the zero origin would rank providers around
		// (0,0), so the run proceeds without provider suggestions.
		p.log.WithField("customer_id", req.Customer.ID).
			Warn("no usable coordinates, skipping provider matching")
	} else {
		var live bool
		matches, live = p.matcher.FindNearby(ctx, location, req.Specialty, maxDistance, req.RequireAvailable)
		if !live {
			result.Degraded = append(result.Degraded, "provider repository")
		}
	}

	reviewerID := schema.ReviewerUnassigned
	if len(matches) > 0 {
		reviewerID = matches[0].Provider.ID
	}

	wf := verify.NewWorkflow()
	verification, err := wf.Review(reviewerID, assessment, recommendations)
	if err != nil {
		return nil, err
	}
	if err := wf.Finalize(); err != nil {
		return nil, err
	}

	finalReport := p.assembler.Assemble(req.Customer, assessment, verification, matches)
	result.Report = finalReport
	result.Rendered = report.Render(finalReport)

	if p.archive != nil {
		if err := p.archive.SaveReport(finalReport, result.Rendered); err != nil {
			p.log.WithError(err).Warn("report archiving failed")
			result.Degraded = append(result.Degraded, "report archive")
		}
	}

	p.log.WithFields(log.Fields{
		"report_id": finalReport.ID,
		"score":     finalReport.Assessment.Score,
		"urgency":   finalReport.Urgency,
		"providers": len(finalReport.SuggestedProviders),
	}).Info("assessment completed")

	return result, nil
}

// resolveLocation validates the customer coordinates, geocoding the
// free-text location first when no coordinates were supplied.
func (p *Pipeline) resolveLocation(customer schema.CustomerProfile, result *Result) (schema.Location, bool) {
	location := customer.Location

	if location.IsZero() && customer.Address != "" && p.resolver != nil {
		resolved, err := p.resolver.Resolve(customer.Address)
		if err != nil {
			p.log.WithError(err).Warn("location geocoding failed, keeping supplied coordinates")
			result.Degraded = append(result.Degraded, "location resolver")
		} else {
			location = resolved
		}
	}

	return location, location.Valid()
}

// extractEntities collects analyzer annotations for each history item.
// Analyzer failure yields an empty entity list.
func (p *Pipeline) extractEntities(ctx context.Context, customer schema.CustomerProfile, result *Result) []schema.EntityAnnotation {
	entities := []schema.EntityAnnotation{}
	degraded := false

	for _, item := range customer.MedicalHistory {
		found, err := p.analyzer.ExtractEntities(ctx, item)
		if err != nil {
			p.log.WithError(err).WithField("history", item).Warn("entity extraction failed")
			degraded = true
			continue
		}
		entities = append(entities, found...)
	}

	if degraded {
		result.Degraded = append(result.Degraded, "entity extraction")
	}

	return entities
}

// adjustment fetches the semantic adjustment factor, dropping values the
// analyzer should never produce.
func (p *Pipeline) adjustment(ctx context.Context, healthContext string, result *Result) *float64 {
	factor, err := p.analyzer.Adjustment(ctx, healthContext)
	if err != nil || factor < 0 || factor > maxAdjustmentFactor {
		if err != nil {
			p.log.WithError(err).Warn("semantic adjustment unavailable, using base score")
		}
		result.Degraded = append(result.Degraded, "semantic adjustment")
		return nil
	}

	return &factor
}

// answer runs one analyzer question; failures yield no signal.
func (p *Pipeline) answer(ctx context.Context, question, healthContext, stage string, result *Result) *schema.Answer {
	answer, err := p.analyzer.Answer(ctx, question, healthContext)
	if err != nil {
		p.log.WithError(err).WithField("question", question).Warn("analyzer answer unavailable")
		result.Degraded = append(result.Degraded, stage)
		return nil
	}

	return &answer
}
