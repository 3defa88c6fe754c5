package ports

import (
	"context"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
)

// ReviewSource fetches raw reviews for one app from an external store.
type ReviewSource interface {
	FetchReviews(ctx context.Context, target domain.AppTarget, count int) ([]domain.RawReview, error)
}

// SentimentScorer scores one text with all three engines. Implementations
// must be pure functions of the text so reviews can be scored in any order.
type SentimentScorer interface {
	Score(text string) domain.SentimentScores
}

// TopicModeler builds the shared term matrices over the whole corpus and fits
// both factorization models.
type TopicModeler interface {
	Extract(ctx context.Context, reviews []domain.Review, cfg domain.AnalysisConfig) (domain.TopicResults, error)
}

// ReviewRepository persists the normalized batch into relational storage.
// InsertReviews commits the whole batch in one transaction or not at all.
type ReviewRepository interface {
	EnsureSchema(ctx context.Context) error
	UpsertBanks(ctx context.Context, targets []domain.AppTarget) (map[string]int64, error)
	InsertReviews(ctx context.Context, reviews []domain.ScoredReview, bankIDs map[string]int64) (int, error)
	CountByBank(ctx context.Context) (map[string]int, error)
}

// ReportWriter renders one artifact set from a fully-built report.
type ReportWriter interface {
	Write(ctx context.Context, report *domain.AnalysisReport) error
}

// ReviewStore reads and writes the intermediate CSV datasets between CLI
// stages.
type ReviewStore interface {
	WriteRaw(reviews []domain.RawReview) error
	ReadRaw() ([]domain.RawReview, error)
	WriteClean(reviews []domain.Review) error
	ReadClean() ([]domain.Review, error)
	WriteQuality(report domain.QualityReport) error
	ReadQuality() (domain.QualityReport, error)
}
