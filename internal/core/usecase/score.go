package usecase

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
	"github.com/abenezerm/fintech-review-analytics/internal/core/ports"
	"github.com/abenezerm/fintech-review-analytics/internal/observability/metrics"
)

// ScoreUseCase applies the sentiment engines to every review. Scoring is a
// pure function of each review's text, so the batch is fanned out across a
// fixed worker pool; results land at the review's own index and input order
// is preserved.
type ScoreUseCase struct {
	scorer  ports.SentimentScorer
	cfg     domain.AnalysisConfig
	log     *slog.Logger
	metrics *metrics.Pipeline
	workers int
}

func NewScoreUseCase(scorer ports.SentimentScorer, cfg domain.AnalysisConfig, log *slog.Logger, m *metrics.Pipeline) *ScoreUseCase {
	return &ScoreUseCase{
		scorer:  scorer,
		cfg:     cfg,
		log:     log,
		metrics: m,
		workers: runtime.GOMAXPROCS(0),
	}
}

func (uc *ScoreUseCase) Score(ctx context.Context, reviews []domain.Review) []domain.ScoredReview {
	out := make([]domain.ScoredReview, len(reviews))
	if len(reviews) == 0 {
		return out
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < uc.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				out[i] = uc.scoreOne(reviews[i])
			}
		}()
	}

feed:
	for i := range reviews {
		select {
		case <-ctx.Done():
			break feed
		case indexes <- i:
		}
	}
	close(indexes)
	wg.Wait()

	return out
}

func (uc *ScoreUseCase) scoreOne(review domain.Review) domain.ScoredReview {
	scores := uc.scorer.Score(review.Text)

	// Ingestion guarantees non-empty text; a lexicon defect can still yield
	// an out-of-range value. Clamp and log instead of failing the batch.
	if clamped := clampUnit(scores.VaderCompound); clamped != scores.VaderCompound {
		uc.reportAnomaly(review.ID, "vader_compound", scores.VaderCompound)
		scores.VaderCompound = clamped
	}
	if clamped := clampUnit(scores.TextBlobPolarity); clamped != scores.TextBlobPolarity {
		uc.reportAnomaly(review.ID, "textblob_polarity", scores.TextBlobPolarity)
		scores.TextBlobPolarity = clamped
	}
	if clamped := clamp(scores.TextBlobSubjectivity, 0, 1); clamped != scores.TextBlobSubjectivity {
		uc.reportAnomaly(review.ID, "textblob_subjectivity", scores.TextBlobSubjectivity)
		scores.TextBlobSubjectivity = clamped
	}

	return domain.ScoredReview{
		Review:   review,
		Scores:   scores,
		Category: uc.cfg.Categorize(scores.VaderCompound),
	}
}

func (uc *ScoreUseCase) reportAnomaly(reviewID, field string, value float64) {
	uc.log.Warn("scoring anomaly clamped", "review_id", reviewID, "field", field, "value", value)
	if uc.metrics != nil {
		uc.metrics.ScoringAnomaly(field)
	}
}

func clampUnit(v float64) float64 { return clamp(v, -1, 1) }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
