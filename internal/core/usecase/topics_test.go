package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
)

type fakeTopicModeler struct {
	results domain.TopicResults
	err     error
	calls   int
}

func (f *fakeTopicModeler) Extract(_ context.Context, _ []domain.Review, _ domain.AnalysisConfig) (domain.TopicResults, error) {
	f.calls++
	return f.results, f.err
}

func TestTopicsExtractEmptyBatchSkipsModeler(t *testing.T) {
	fake := &fakeTopicModeler{}
	uc := NewTopicsUseCase(fake, domain.DefaultAnalysisConfig(), testLogger())

	results, err := uc.Extract(context.Background(), nil)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}
	if len(results.Assignments) != 0 || len(results.Words) != 0 {
		t.Fatalf("expected empty results, got %+v", results)
	}
	if fake.calls != 0 {
		t.Fatalf("modeler should not run on an empty batch")
	}
}

func TestTopicsExtractSkipsOnInsufficientVocabulary(t *testing.T) {
	fake := &fakeTopicModeler{
		err: domain.WrapError(domain.ErrInsufficientVocabulary, "build vocabulary", errors.New("0 terms")),
	}
	uc := NewTopicsUseCase(fake, domain.DefaultAnalysisConfig(), testLogger())

	results, err := uc.Extract(context.Background(), []domain.Review{{ID: "1", Text: "ok"}})
	if err != nil {
		t.Fatalf("expected graceful skip, got %v", err)
	}
	if len(results.Assignments) != 0 {
		t.Fatalf("expected empty results on skip, got %+v", results)
	}
}

func TestTopicsExtractPropagatesOtherErrors(t *testing.T) {
	fake := &fakeTopicModeler{err: errors.New("factorization blew up")}
	uc := NewTopicsUseCase(fake, domain.DefaultAnalysisConfig(), testLogger())

	_, err := uc.Extract(context.Background(), []domain.Review{{ID: "1", Text: "ok"}})
	if err == nil {
		t.Fatalf("expected error to propagate")
	}
}
