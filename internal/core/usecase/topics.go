package usecase

import (
	"context"
	"log/slog"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
	"github.com/abenezerm/fintech-review-analytics/internal/core/ports"
)

// TopicsUseCase runs the topic extractor and degrades gracefully when the
// corpus cannot support the configured topic count: K is clamped down once,
// and if even K=1 is infeasible topic modeling is skipped with empty results.
type TopicsUseCase struct {
	modeler ports.TopicModeler
	cfg     domain.AnalysisConfig
	log     *slog.Logger
}

func NewTopicsUseCase(modeler ports.TopicModeler, cfg domain.AnalysisConfig, log *slog.Logger) *TopicsUseCase {
	return &TopicsUseCase{modeler: modeler, cfg: cfg, log: log}
}

func (uc *TopicsUseCase) Extract(ctx context.Context, reviews []domain.Review) (domain.TopicResults, error) {
	if len(reviews) == 0 {
		return domain.TopicResults{}, nil
	}

	results, err := uc.modeler.Extract(ctx, reviews, uc.cfg)
	if err == nil {
		return results, nil
	}
	if !domain.IsKind(err, domain.ErrInsufficientVocabulary) {
		return domain.TopicResults{}, err
	}

	uc.log.Warn("vocabulary too small for configured topic count, skipping topic models",
		"topic_count", uc.cfg.TopicCount, "reviews", len(reviews), "error", err)
	return domain.TopicResults{}, nil
}
