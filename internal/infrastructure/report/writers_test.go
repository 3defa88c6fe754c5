package report

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
)

func sampleReport() *domain.AnalysisReport {
	cfg := domain.DefaultAnalysisConfig()
	scored := []domain.ScoredReview{
		{
			Review: domain.Review{
				ID: "r1", Text: "transfer failed", Rating: 1,
				Date: time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
				Bank: "Commercial Bank of Ethiopia", Source: "google_play",
			},
			Scores:   domain.SentimentScores{VaderCompound: -0.6, TextBlobPolarity: -0.5, TextBlobSubjectivity: 0.6, AfinnScore: -3},
			Category: cfg.Categorize(-0.6),
		},
		{
			Review: domain.Review{
				ID: "r2", Text: "lovely design", Rating: 5,
				Date: time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC),
				Bank: "Commercial Bank of Ethiopia", Source: "google_play",
			},
			Scores:   domain.SentimentScores{VaderCompound: 0.7, TextBlobPolarity: 0.6, TextBlobSubjectivity: 0.8, AfinnScore: 3},
			Category: cfg.Categorize(0.7),
		},
	}

	return &domain.AnalysisReport{
		GeneratedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Quality:     domain.QualityReport{Initial: 3, DroppedDuplicates: 1, Final: 2},
		Scored:      scored,
		Topics: domain.TopicResults{
			Assignments: []domain.TopicAssignment{
				{ReviewID: "r1", Model: domain.ModelLDA, TopicID: 0, Weight: 0.9},
				{ReviewID: "r2", Model: domain.ModelLDA, TopicID: 1, Weight: 0.8},
			},
			Words: []domain.TopicWord{
				{Model: domain.ModelLDA, TopicID: 0, Word: "transfer", Weight: 0.4},
				{Model: domain.ModelLDA, TopicID: 1, Word: "design", Weight: 0.3},
				{Model: domain.ModelNMF, TopicID: 0, Word: "transfer", Weight: 0.5},
			},
			CorpusKeywords: []domain.KeywordStat{
				{Term: "transfer", Scope: domain.KeywordScopeCorpus, Score: 1.2},
			},
			BankKeywords: []domain.KeywordStat{
				{Term: "transfer", Scope: "Commercial Bank of Ethiopia", Score: 1.2},
			},
			Phrases: []domain.PhraseStat{
				{Phrase: "transfer failed", Size: 2, Count: 6},
			},
			EffectiveTopicCount: 2,
		},
		Banks: []domain.BankSummary{
			{Bank: "Commercial Bank of Ethiopia", TotalReviews: 2, AvgRating: 3, AvgSentiment: 0.05, PctPositive: 50, PctNegative: 50, PctNeutral: 0},
		},
		Overall: domain.BankSummary{
			Bank: domain.OverallBank, TotalReviews: 2, AvgRating: 3, AvgSentiment: 0.05, PctPositive: 50, PctNegative: 50, PctNeutral: 0,
		},
		RatingSentiment: []domain.RatingSentiment{
			{Rating: 1, MeanCompound: -0.6, Count: 1},
			{Rating: 5, MeanCompound: 0.7, Count: 1},
		},
		MonthlyTrend: []domain.MonthlySentiment{
			{Bank: "Commercial Bank of Ethiopia", Month: "2024-01", MeanCompound: -0.6, Count: 1},
			{Bank: "Commercial Bank of Ethiopia", Month: "2024-02", MeanCompound: 0.7, Count: 1},
		},
		NegativeKeywords: []domain.NegativeKeyword{
			{Term: "transfer", Count: 1, Pct: 100},
		},
		TopicPrevalence: []domain.TopicPrevalence{
			{Bank: "Commercial Bank of Ethiopia", Model: domain.ModelLDA, TopicID: 0, Count: 1, Pct: 50},
			{Bank: "Commercial Bank of Ethiopia", Model: domain.ModelLDA, TopicID: 1, Count: 1, Pct: 50},
		},
		RatingCorrelation: 1,
	}
}

func readCSVFile(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return rows
}

func TestCSVWriterProducesAllArtifacts(t *testing.T) {
	dir := t.TempDir()
	w, err := NewCSVWriter(dir)
	if err != nil {
		t.Fatalf("NewCSVWriter() error = %v", err)
	}
	if err := w.Write(context.Background(), sampleReport()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	files := []string{
		"sentiment_results.csv",
		"bank_summary.csv",
		"negative_keywords.csv",
		"topics_keywords.csv",
		"monthly_sentiment.csv",
	}
	for _, name := range files {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing artifact %s: %v", name, err)
		}
	}

	rows := readCSVFile(t, filepath.Join(dir, "sentiment_results.csv"))
	if len(rows) != 3 {
		t.Fatalf("sentiment_results.csv: %d rows, want header + 2", len(rows))
	}
	if rows[1][0] != "r1" || rows[2][0] != "r2" {
		t.Fatalf("scored rows out of order: %v", rows)
	}

	banks := readCSVFile(t, filepath.Join(dir, "bank_summary.csv"))
	// Per-bank rows plus the overall row.
	if len(banks) != 3 {
		t.Fatalf("bank_summary.csv: %d rows", len(banks))
	}
}

func TestMarkdownWriterSections(t *testing.T) {
	dir := t.TempDir()
	w, err := NewMarkdownWriter(dir)
	if err != nil {
		t.Fatalf("NewMarkdownWriter() error = %v", err)
	}
	if err := w.Write(context.Background(), sampleReport()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "report.md"))
	if err != nil {
		t.Fatalf("read report.md: %v", err)
	}
	text := string(data)

	for _, want := range []string{
		"Data Quality",
		"Sentiment by Bank",
		"Sentiment by Star Rating",
		"Monthly Sentiment Trend",
		"Top Keywords in Negative Reviews",
		"Topic",
		"Commercial Bank of Ethiopia",
		"transfer",
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("report.md missing %q", want)
		}
	}
}

func TestExcelWriterSheets(t *testing.T) {
	dir := t.TempDir()
	w, err := NewExcelWriter(dir)
	if err != nil {
		t.Fatalf("NewExcelWriter() error = %v", err)
	}
	if err := w.Write(context.Background(), sampleReport()); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	f, err := excelize.OpenFile(filepath.Join(dir, "analysis_summary.xlsx"))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{"Banks", "Rating Sentiment", "Monthly Trend", "Negative Keywords", "Topic Keywords"}
	if len(sheets) != len(want) {
		t.Fatalf("sheets = %v", sheets)
	}
	for i, name := range want {
		if sheets[i] != name {
			t.Fatalf("sheet %d = %q, want %q", i, sheets[i], name)
		}
	}

	rows, err := f.GetRows("Banks")
	if err != nil {
		t.Fatalf("GetRows(Banks): %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("Banks sheet has %d rows", len(rows))
	}
}

func TestWritersTolerateEmptyReport(t *testing.T) {
	dir := t.TempDir()
	empty := &domain.AnalysisReport{GeneratedAt: time.Now()}

	csvW, err := NewCSVWriter(dir)
	if err != nil {
		t.Fatalf("NewCSVWriter() error = %v", err)
	}
	if err := csvW.Write(context.Background(), empty); err != nil {
		t.Fatalf("csv Write() on empty report: %v", err)
	}

	mdW, err := NewMarkdownWriter(dir)
	if err != nil {
		t.Fatalf("NewMarkdownWriter() error = %v", err)
	}
	if err := mdW.Write(context.Background(), empty); err != nil {
		t.Fatalf("markdown Write() on empty report: %v", err)
	}

	xlW, err := NewExcelWriter(dir)
	if err != nil {
		t.Fatalf("NewExcelWriter() error = %v", err)
	}
	if err := xlW.Write(context.Background(), empty); err != nil {
		t.Fatalf("excel Write() on empty report: %v", err)
	}
}
