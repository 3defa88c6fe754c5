// Package report renders a finished AnalysisReport into static artifacts.
// Writers never receive a partially-built report; aggregation publishes the
// whole value or nothing.
package report

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
)

// CSVWriter emits the tabular outputs consumed by downstream plotting:
// scored reviews, bank summaries, negative keywords and topic keywords.
type CSVWriter struct {
	dir string
}

func NewCSVWriter(dir string) (*CSVWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	return &CSVWriter{dir: dir}, nil
}

func (w *CSVWriter) Write(_ context.Context, report *domain.AnalysisReport) error {
	files := []struct {
		name string
		rows [][]string
	}{
		{"sentiment_results.csv", scoredRows(report.Scored)},
		{"bank_summary.csv", bankRows(report)},
		{"negative_keywords.csv", negativeKeywordRows(report.NegativeKeywords)},
		{"topics_keywords.csv", topicKeywordRows(report.Topics)},
		{"monthly_sentiment.csv", monthlyRows(report.MonthlyTrend)},
	}
	for _, f := range files {
		if err := writeCSV(filepath.Join(w.dir, f.name), f.rows); err != nil {
			return err
		}
	}
	return nil
}

func scoredRows(scored []domain.ScoredReview) [][]string {
	rows := [][]string{{
		"review_id", "review", "rating", "date", "bank", "source",
		"vader_compound", "textblob_polarity", "textblob_subjectivity", "afinn_score", "sentiment_category",
	}}
	for _, r := range scored {
		rows = append(rows, []string{
			r.ID, r.Text, strconv.Itoa(r.Rating), r.Date.Format("2006-01-02"), r.Bank, r.Source,
			formatFloat(r.Scores.VaderCompound), formatFloat(r.Scores.TextBlobPolarity),
			formatFloat(r.Scores.TextBlobSubjectivity), strconv.Itoa(r.Scores.AfinnScore),
			string(r.Category),
		})
	}
	return rows
}

func bankRows(report *domain.AnalysisReport) [][]string {
	rows := [][]string{{
		"bank", "total_reviews", "avg_rating", "avg_sentiment",
		"pct_positive", "pct_neutral", "pct_negative",
	}}
	for _, b := range append(report.Banks, report.Overall) {
		rows = append(rows, []string{
			b.Bank, strconv.Itoa(b.TotalReviews), formatFloat(b.AvgRating), formatFloat(b.AvgSentiment),
			formatFloat(b.PctPositive), formatFloat(b.PctNeutral), formatFloat(b.PctNegative),
		})
	}
	return rows
}

func negativeKeywordRows(keywords []domain.NegativeKeyword) [][]string {
	rows := [][]string{{"keyword", "count", "pct_of_negative_reviews"}}
	for _, k := range keywords {
		rows = append(rows, []string{k.Term, strconv.Itoa(k.Count), formatFloat(k.Pct)})
	}
	return rows
}

func topicKeywordRows(topics domain.TopicResults) [][]string {
	rows := [][]string{{"model", "topic_id", "word", "weight"}}
	for _, w := range topics.Words {
		rows = append(rows, []string{
			string(w.Model), strconv.Itoa(w.TopicID), w.Word, formatFloat(w.Weight),
		})
	}
	for _, k := range topics.CorpusKeywords {
		rows = append(rows, []string{"tfidf", k.Scope, k.Term, formatFloat(k.Score)})
	}
	for _, k := range topics.BankKeywords {
		rows = append(rows, []string{"tfidf", k.Scope, k.Term, formatFloat(k.Score)})
	}
	for _, p := range topics.Phrases {
		model := "bigram"
		if p.Size == 3 {
			model = "trigram"
		}
		rows = append(rows, []string{model, "phrases", p.Phrase, strconv.Itoa(p.Count)})
	}
	return rows
}

func monthlyRows(trend []domain.MonthlySentiment) [][]string {
	rows := [][]string{{"bank", "month", "mean_compound", "count"}}
	for _, m := range trend {
		rows = append(rows, []string{m.Bank, m.Month, formatFloat(m.MeanCompound), strconv.Itoa(m.Count)})
	}
	return rows
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	cw := csv.NewWriter(f)
	if err := cw.WriteAll(rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
