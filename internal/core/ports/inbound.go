package ports

import (
	"context"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
)

// ReviewCleaner normalizes raw scraped records into validated reviews.
type ReviewCleaner interface {
	Clean(raw []domain.RawReview) ([]domain.Review, domain.QualityReport)
}

// ReviewScorer attaches sentiment annotations to every review.
type ReviewScorer interface {
	Score(ctx context.Context, reviews []domain.Review) []domain.ScoredReview
}

// ReportBuilder aggregates scored reviews and topic results into the summary
// tables consumed by report writers.
type ReportBuilder interface {
	Build(scored []domain.ScoredReview, topics domain.TopicResults, quality domain.QualityReport) *domain.AnalysisReport
}
