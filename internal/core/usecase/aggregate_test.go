package usecase

import (
	"math"
	"math/rand"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
)

type fakeTokenizer struct{}

func (fakeTokenizer) Tokens(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

func scoredReview(id, bank string, rating int, compound float64, date time.Time, text string) domain.ScoredReview {
	cfg := domain.DefaultAnalysisConfig()
	return domain.ScoredReview{
		Review: domain.Review{
			ID: id, Bank: bank, Rating: rating, Date: date, Text: text, Source: "google_play",
		},
		Scores:   domain.SentimentScores{VaderCompound: compound},
		Category: cfg.Categorize(compound),
	}
}

func TestBuildBankSummaries(t *testing.T) {
	uc := NewAggregateUseCase(fakeTokenizer{}, domain.DefaultAnalysisConfig())
	jan := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)

	scored := []domain.ScoredReview{
		scoredReview("1", "cbe", 5, 0.8, jan, "transfer works"),
		scoredReview("2", "cbe", 1, -0.6, jan, "login fails daily"),
		scoredReview("3", "cbe", 3, 0.0, feb, "it is an app"),
		scoredReview("4", "boa", 4, 0.5, feb, "smooth transfer"),
	}
	report := uc.Build(scored, domain.TopicResults{}, domain.QualityReport{Initial: 4, Final: 4})

	if len(report.Banks) != 2 {
		t.Fatalf("expected 2 bank summaries, got %d", len(report.Banks))
	}
	if report.Banks[0].Bank != "boa" || report.Banks[1].Bank != "cbe" {
		t.Fatalf("expected banks sorted by name, got %s %s", report.Banks[0].Bank, report.Banks[1].Bank)
	}

	cbe := report.Banks[1]
	if cbe.TotalReviews != 3 {
		t.Fatalf("cbe: expected 3 reviews, got %d", cbe.TotalReviews)
	}
	if got := cbe.AvgRating; math.Abs(got-3.0) > 1e-9 {
		t.Fatalf("cbe: avg rating %f, want 3", got)
	}
	if cbe.PctPositive != 33.33 || cbe.PctNegative != 33.33 || cbe.PctNeutral != 33.34 {
		t.Fatalf("cbe: percentages %v %v %v", cbe.PctPositive, cbe.PctNegative, cbe.PctNeutral)
	}

	if report.Overall.Bank != domain.OverallBank || report.Overall.TotalReviews != 4 {
		t.Fatalf("overall: %+v", report.Overall)
	}
}

func TestBuildPercentagesSumToHundred(t *testing.T) {
	uc := NewAggregateUseCase(fakeTokenizer{}, domain.DefaultAnalysisConfig())
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// 7 reviews: 3 positive, 2 negative, 2 neutral. Raw thirds do not round
	// to a clean 100 without the neutral residue.
	var scored []domain.ScoredReview
	compounds := []float64{0.9, 0.8, 0.7, -0.9, -0.8, 0.0, 0.0}
	for i, c := range compounds {
		scored = append(scored, scoredReview(string(rune('a'+i)), "cbe", 3, c, date, "text"))
	}

	report := uc.Build(scored, domain.TopicResults{}, domain.QualityReport{})
	s := report.Banks[0]
	sum := s.PctPositive + s.PctNegative + s.PctNeutral
	if math.Abs(sum-100.0) > 1e-9 {
		t.Fatalf("percentages sum to %v, want exactly 100", sum)
	}
}

func TestBuildIsOrderIndependent(t *testing.T) {
	cfg := domain.DefaultAnalysisConfig()
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	var scored []domain.ScoredReview
	for i := 0; i < 40; i++ {
		bank := "cbe"
		if i%3 == 0 {
			bank = "boa"
		}
		compound := float64(i%7-3) / 3.0
		scored = append(scored, scoredReview(
			strings.Repeat("x", i+1), bank, i%5+1, compound,
			date.AddDate(0, i%4, 0), "slow transfer failed"))
	}

	build := func(rows []domain.ScoredReview) *domain.AnalysisReport {
		uc := NewAggregateUseCase(fakeTokenizer{}, cfg)
		uc.now = func() time.Time { return date }
		report := uc.Build(rows, domain.TopicResults{}, domain.QualityReport{})
		report.Scored = nil
		return report
	}

	first := build(scored)

	shuffled := make([]domain.ScoredReview, len(scored))
	copy(shuffled, scored)
	rand.New(rand.NewSource(7)).Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	second := build(shuffled)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("aggregation depends on input order")
	}
}

func TestBuildNegativeKeywords(t *testing.T) {
	uc := NewAggregateUseCase(fakeTokenizer{}, domain.DefaultAnalysisConfig())
	date := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	scored := []domain.ScoredReview{
		scoredReview("1", "cbe", 1, -0.7, date, "transfer failed"),
		scoredReview("2", "cbe", 2, -0.6, date, "transfer timeout"),
		scoredReview("3", "cbe", 5, 0.9, date, "transfer instant"),
	}
	report := uc.Build(scored, domain.TopicResults{}, domain.QualityReport{})

	if len(report.NegativeKeywords) == 0 {
		t.Fatalf("expected negative keywords")
	}
	top := report.NegativeKeywords[0]
	if top.Term != "transfer" || top.Count != 2 {
		t.Fatalf("expected transfer counted twice, got %+v", top)
	}
	if top.Pct != 100.0 {
		t.Fatalf("expected 100%% of negative reviews, got %v", top.Pct)
	}
	for _, kw := range report.NegativeKeywords {
		if kw.Term == "instant" {
			t.Fatalf("positive review tokens leaked into negative keywords")
		}
	}
}

func TestBuildTopicPrevalence(t *testing.T) {
	uc := NewAggregateUseCase(fakeTokenizer{}, domain.DefaultAnalysisConfig())
	date := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	scored := []domain.ScoredReview{
		scoredReview("r1", "cbe", 4, 0.5, date, "a"),
		scoredReview("r2", "cbe", 4, 0.5, date, "b"),
		scoredReview("r3", "cbe", 4, 0.5, date, "c"),
		scoredReview("r4", "boa", 4, 0.5, date, "d"),
	}
	topics := domain.TopicResults{
		Assignments: []domain.TopicAssignment{
			{ReviewID: "r1", Model: domain.ModelLDA, TopicID: 0, Weight: 0.9},
			{ReviewID: "r2", Model: domain.ModelLDA, TopicID: 0, Weight: 0.8},
			{ReviewID: "r3", Model: domain.ModelLDA, TopicID: 1, Weight: 0.7},
			{ReviewID: "r4", Model: domain.ModelLDA, TopicID: 1, Weight: 0.7},
			{ReviewID: "ghost", Model: domain.ModelLDA, TopicID: 2, Weight: 0.7},
		},
	}

	report := uc.Build(scored, topics, domain.QualityReport{})
	if len(report.TopicPrevalence) != 3 {
		t.Fatalf("expected 3 prevalence rows, got %d", len(report.TopicPrevalence))
	}
	for _, p := range report.TopicPrevalence {
		if p.Bank == "cbe" && p.TopicID == 0 {
			if p.Count != 2 || p.Pct != 66.67 {
				t.Fatalf("cbe topic 0: %+v", p)
			}
		}
		if p.TopicID == 2 {
			t.Fatalf("assignment for unknown review should be ignored")
		}
	}
}

func TestBuildRatingCorrelation(t *testing.T) {
	uc := NewAggregateUseCase(fakeTokenizer{}, domain.DefaultAnalysisConfig())
	date := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)

	// Compound rises linearly with rating: correlation must be 1.
	var scored []domain.ScoredReview
	for rating := 1; rating <= 5; rating++ {
		scored = append(scored, scoredReview(
			string(rune('0'+rating)), "cbe", rating, float64(rating-3)/2.0, date, "text"))
	}
	report := uc.Build(scored, domain.TopicResults{}, domain.QualityReport{})
	if math.Abs(report.RatingCorrelation-1.0) > 1e-9 {
		t.Fatalf("correlation %f, want 1", report.RatingCorrelation)
	}

	single := uc.Build(scored[:1], domain.TopicResults{}, domain.QualityReport{})
	if single.RatingCorrelation != 0 {
		t.Fatalf("correlation for single review should be 0, got %f", single.RatingCorrelation)
	}
}

func TestBuildMonthlyTrend(t *testing.T) {
	uc := NewAggregateUseCase(fakeTokenizer{}, domain.DefaultAnalysisConfig())

	scored := []domain.ScoredReview{
		scoredReview("1", "cbe", 5, 0.4, time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), "a"),
		scoredReview("2", "cbe", 5, 0.8, time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC), "b"),
		scoredReview("3", "cbe", 5, 0.2, time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), "c"),
	}
	report := uc.Build(scored, domain.TopicResults{}, domain.QualityReport{})

	if len(report.MonthlyTrend) != 2 {
		t.Fatalf("expected 2 monthly buckets, got %d", len(report.MonthlyTrend))
	}
	if report.MonthlyTrend[0].Month != "2024-01" || report.MonthlyTrend[1].Month != "2024-02" {
		t.Fatalf("expected chronological months, got %+v", report.MonthlyTrend)
	}
	feb := report.MonthlyTrend[1]
	if feb.Count != 2 || math.Abs(feb.MeanCompound-0.6) > 1e-9 {
		t.Fatalf("february bucket: %+v", feb)
	}
}
