package usecase

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
)

// Tokenizer exposes the topic stage's token stream for keyword counting so
// the negative-keyword table uses the same stop-word and lemma rules as the
// topic models.
type Tokenizer interface {
	Tokens(text string) []string
}

// AggregateUseCase computes the summary tables consumed by report writers.
// Aggregation is pure and idempotent: every output table is deterministically
// sorted, so the same scored table yields byte-identical summaries regardless
// of input row order.
type AggregateUseCase struct {
	tokenizer Tokenizer
	cfg       domain.AnalysisConfig
	now       func() time.Time
}

func NewAggregateUseCase(tokenizer Tokenizer, cfg domain.AnalysisConfig) *AggregateUseCase {
	return &AggregateUseCase{tokenizer: tokenizer, cfg: cfg, now: time.Now}
}

func (uc *AggregateUseCase) Build(scored []domain.ScoredReview, topics domain.TopicResults, quality domain.QualityReport) *domain.AnalysisReport {
	report := &domain.AnalysisReport{
		GeneratedAt: uc.now().UTC(),
		Quality:     quality,
		Scored:      scored,
		Topics:      topics,
	}

	report.Banks = uc.bankSummaries(scored)
	report.Overall = uc.summarize(domain.OverallBank, scored)
	report.RatingSentiment = uc.ratingSentiment(scored)
	report.MonthlyTrend = uc.monthlyTrend(scored)
	report.NegativeKeywords = uc.negativeKeywords(scored)
	report.TopicPrevalence = uc.topicPrevalence(scored, topics)
	report.RatingCorrelation = uc.ratingCorrelation(scored)

	return report
}

func (uc *AggregateUseCase) bankSummaries(scored []domain.ScoredReview) []domain.BankSummary {
	byBank := make(map[string][]domain.ScoredReview)
	for _, r := range scored {
		byBank[r.Bank] = append(byBank[r.Bank], r)
	}

	out := make([]domain.BankSummary, 0, len(byBank))
	for bank, rows := range byBank {
		out = append(out, uc.summarize(bank, rows))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Bank < out[j].Bank })
	return out
}

func (uc *AggregateUseCase) summarize(bank string, rows []domain.ScoredReview) domain.BankSummary {
	s := domain.BankSummary{Bank: bank, TotalReviews: len(rows)}
	if len(rows) == 0 {
		return s
	}

	var ratingSum, compoundSum float64
	var positive, neutral, negative int
	for _, r := range rows {
		ratingSum += float64(r.Rating)
		compoundSum += r.Scores.VaderCompound
		switch r.Category {
		case domain.CategoryPositive:
			positive++
		case domain.CategoryNegative:
			negative++
		default:
			neutral++
		}
	}

	n := float64(len(rows))
	s.AvgRating = ratingSum / n
	s.AvgSentiment = compoundSum / n
	s.PctPositive = roundHalfUp(float64(positive) / n * 100)
	s.PctNegative = roundHalfUp(float64(negative) / n * 100)
	// The neutral share absorbs the rounding residue so the three
	// percentages always sum to exactly 100.00.
	s.PctNeutral = roundHalfUp(100 - s.PctPositive - s.PctNegative)
	return s
}

func (uc *AggregateUseCase) ratingSentiment(scored []domain.ScoredReview) []domain.RatingSentiment {
	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, r := range scored {
		sums[r.Rating] += r.Scores.VaderCompound
		counts[r.Rating]++
	}

	out := make([]domain.RatingSentiment, 0, len(counts))
	for rating, count := range counts {
		out = append(out, domain.RatingSentiment{
			Rating:       rating,
			MeanCompound: sums[rating] / float64(count),
			Count:        count,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Rating < out[j].Rating })
	return out
}

func (uc *AggregateUseCase) monthlyTrend(scored []domain.ScoredReview) []domain.MonthlySentiment {
	type key struct {
		bank  string
		month string
	}
	sums := make(map[key]float64)
	counts := make(map[key]int)
	for _, r := range scored {
		k := key{bank: r.Bank, month: r.Month()}
		sums[k] += r.Scores.VaderCompound
		counts[k]++
	}

	out := make([]domain.MonthlySentiment, 0, len(counts))
	for k, count := range counts {
		out = append(out, domain.MonthlySentiment{
			Bank:         k.bank,
			Month:        k.month,
			MeanCompound: sums[k] / float64(count),
			Count:        count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Bank != out[j].Bank {
			return out[i].Bank < out[j].Bank
		}
		return out[i].Month < out[j].Month
	})
	return out
}

func (uc *AggregateUseCase) negativeKeywords(scored []domain.ScoredReview) []domain.NegativeKeyword {
	counts := make(map[string]int)
	negativeTotal := 0
	for _, r := range scored {
		if r.Category != domain.CategoryNegative {
			continue
		}
		negativeTotal++
		for _, tok := range uc.tokenizer.Tokens(r.Text) {
			counts[tok]++
		}
	}
	if negativeTotal == 0 {
		return nil
	}

	out := make([]domain.NegativeKeyword, 0, len(counts))
	for term, count := range counts {
		out = append(out, domain.NegativeKeyword{
			Term:  term,
			Count: count,
			Pct:   roundHalfUp(float64(count) / float64(negativeTotal) * 100),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Term < out[j].Term
	})
	if uc.cfg.KeywordTopN > 0 && len(out) > uc.cfg.KeywordTopN {
		out = out[:uc.cfg.KeywordTopN]
	}
	return out
}

func (uc *AggregateUseCase) topicPrevalence(scored []domain.ScoredReview, topics domain.TopicResults) []domain.TopicPrevalence {
	bankByReview := make(map[string]string, len(scored))
	for _, r := range scored {
		bankByReview[r.ID] = r.Bank
	}

	type key struct {
		bank  string
		model domain.TopicModel
		topic int
	}
	counts := make(map[key]int)
	for _, a := range topics.Assignments {
		bank, ok := bankByReview[a.ReviewID]
		if !ok {
			continue
		}
		counts[key{bank: bank, model: a.Model, topic: a.TopicID}]++
	}

	totals := make(map[key]int)
	for k, count := range counts {
		totals[key{bank: k.bank, model: k.model}] += count
	}

	out := make([]domain.TopicPrevalence, 0, len(counts))
	for k, count := range counts {
		total := totals[key{bank: k.bank, model: k.model}]
		pct := 0.0
		if total > 0 {
			pct = roundHalfUp(float64(count) / float64(total) * 100)
		}
		out = append(out, domain.TopicPrevalence{
			Bank:    k.bank,
			Model:   k.model,
			TopicID: k.topic,
			Count:   count,
			Pct:     pct,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Bank != out[j].Bank {
			return out[i].Bank < out[j].Bank
		}
		if out[i].Model != out[j].Model {
			return out[i].Model < out[j].Model
		}
		return out[i].TopicID < out[j].TopicID
	})
	return out
}

func (uc *AggregateUseCase) ratingCorrelation(scored []domain.ScoredReview) float64 {
	if len(scored) < 2 {
		return 0
	}
	ratings := make([]float64, len(scored))
	compounds := make([]float64, len(scored))
	for i, r := range scored {
		ratings[i] = float64(r.Rating)
		compounds[i] = r.Scores.VaderCompound
	}
	corr := stat.Correlation(ratings, compounds, nil)
	if math.IsNaN(corr) {
		return 0
	}
	return corr
}

// roundHalfUp rounds to two decimal places, ties toward positive infinity.
// Inputs here are non-negative percentage shares.
func roundHalfUp(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
