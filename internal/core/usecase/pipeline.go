package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
	"github.com/abenezerm/fintech-review-analytics/internal/core/ports"
	"github.com/abenezerm/fintech-review-analytics/internal/observability/metrics"
)

// PipelineDeps wires the stage use cases and driven adapters into the
// end-to-end batch run.
type PipelineDeps struct {
	Cleaner ports.ReviewCleaner
	Scorer  ports.ReviewScorer
	Topics  *TopicsUseCase
	Builder ports.ReportBuilder
	Writers []ports.ReportWriter
	Store   ports.ReviewStore
	Metrics *metrics.Pipeline
	Log     *slog.Logger
}

// Pipeline orchestrates clean -> score -> topics -> aggregate -> report.
// Data flows strictly forward; each stage produces a new derived table.
type Pipeline struct {
	cleaner ports.ReviewCleaner
	scorer  ports.ReviewScorer
	topics  *TopicsUseCase
	builder ports.ReportBuilder
	writers []ports.ReportWriter
	store   ports.ReviewStore
	metrics *metrics.Pipeline
	log     *slog.Logger
}

func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		cleaner: deps.Cleaner,
		scorer:  deps.Scorer,
		topics:  deps.Topics,
		builder: deps.Builder,
		writers: deps.Writers,
		store:   deps.Store,
		metrics: deps.Metrics,
		log:     deps.Log,
	}
}

// Run processes one raw batch end to end and returns the finished report.
// An empty batch flows through every stage and yields an empty report rather
// than an error.
func (p *Pipeline) Run(ctx context.Context, raw []domain.RawReview) (*domain.AnalysisReport, error) {
	reviews, quality := p.timedClean(raw)
	if p.store != nil {
		if err := p.store.WriteClean(reviews); err != nil {
			return nil, fmt.Errorf("persist clean dataset: %w", err)
		}
		if err := p.store.WriteQuality(quality); err != nil {
			return nil, fmt.Errorf("persist quality report: %w", err)
		}
	}
	return p.Analyze(ctx, reviews, quality)
}

// Analyze runs the derived stages over an already-cleaned dataset. The CLI
// uses it to resume from the clean CSV without rescraping.
func (p *Pipeline) Analyze(ctx context.Context, reviews []domain.Review, quality domain.QualityReport) (*domain.AnalysisReport, error) {
	scored := p.timedScore(ctx, reviews)

	topics, err := p.timedTopics(ctx, reviews)
	if err != nil {
		return nil, fmt.Errorf("extract topics: %w", err)
	}

	report := p.timedBuild(scored, topics, quality)

	for _, w := range p.writers {
		if err := w.Write(ctx, report); err != nil {
			return nil, fmt.Errorf("write report: %w", err)
		}
	}
	return report, nil
}

func (p *Pipeline) timedClean(raw []domain.RawReview) ([]domain.Review, domain.QualityReport) {
	defer p.observe("clean", time.Now())
	reviews, quality := p.cleaner.Clean(raw)
	if p.metrics != nil {
		p.metrics.RecordQuality(quality)
	}
	return reviews, quality
}

func (p *Pipeline) timedScore(ctx context.Context, reviews []domain.Review) []domain.ScoredReview {
	defer p.observe("score", time.Now())
	return p.scorer.Score(ctx, reviews)
}

func (p *Pipeline) timedTopics(ctx context.Context, reviews []domain.Review) (domain.TopicResults, error) {
	defer p.observe("topics", time.Now())
	return p.topics.Extract(ctx, reviews)
}

func (p *Pipeline) timedBuild(scored []domain.ScoredReview, topics domain.TopicResults, quality domain.QualityReport) *domain.AnalysisReport {
	defer p.observe("aggregate", time.Now())
	return p.builder.Build(scored, topics, quality)
}

func (p *Pipeline) observe(stage string, start time.Time) {
	elapsed := time.Since(start)
	p.log.Info("stage complete", "stage", stage, "duration", elapsed.String())
	if p.metrics != nil {
		p.metrics.ObserveStage(stage, elapsed)
	}
}
