package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
)

// MarkdownWriter assembles the stakeholder-facing report: dataset overview
// with drop accounting, per-bank summaries, sentiment distributions, trends
// and topic tables.
type MarkdownWriter struct {
	dir string
}

func NewMarkdownWriter(dir string) (*MarkdownWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	return &MarkdownWriter{dir: dir}, nil
}

func (w *MarkdownWriter) Write(_ context.Context, report *domain.AnalysisReport) error {
	var b strings.Builder

	b.WriteString("# Customer Review Analytics Report\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", report.GeneratedAt.Format("2006-01-02 15:04 MST"))

	w.qualitySection(&b, report.Quality)
	w.bankSection(&b, report)
	w.ratingSection(&b, report)
	w.trendSection(&b, report.MonthlyTrend)
	w.keywordSection(&b, report.NegativeKeywords)
	w.topicSection(&b, report)

	path := filepath.Join(w.dir, "report.md")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// qualitySection states which records were dropped and why, so the reader
// knows the corpus the statistics describe is smaller than the scrape.
func (w *MarkdownWriter) qualitySection(b *strings.Builder, q domain.QualityReport) {
	b.WriteString("## Data Quality\n\n")
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Scraped records", q.Initial},
		{"Dropped: empty text", q.DroppedEmptyText},
		{"Dropped: unparseable date", q.DroppedBadDate},
		{"Dropped: rating out of range", q.DroppedBadRating},
		{"Dropped: duplicate (text, bank)", q.DroppedDuplicates},
		{"Ratings imputed with median", q.ImputedRatings},
		{"Analyzed reviews", q.Final},
		{"Retention", fmt.Sprintf("%.2f%%", q.RetentionRate())},
	})
	b.WriteString(t.RenderMarkdown())
	b.WriteString("\n\n")
}

func (w *MarkdownWriter) bankSection(b *strings.Builder, report *domain.AnalysisReport) {
	b.WriteString("## Sentiment by Bank\n\n")
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Bank", "Reviews", "Avg Rating", "Avg Sentiment", "% Positive", "% Neutral", "% Negative"})
	for _, s := range append(report.Banks, report.Overall) {
		t.AppendRow(table.Row{
			s.Bank, s.TotalReviews,
			fmt.Sprintf("%.2f", s.AvgRating), fmt.Sprintf("%.3f", s.AvgSentiment),
			fmt.Sprintf("%.2f", s.PctPositive), fmt.Sprintf("%.2f", s.PctNeutral), fmt.Sprintf("%.2f", s.PctNegative),
		})
	}
	b.WriteString(t.RenderMarkdown())
	b.WriteString("\n\n")
}

func (w *MarkdownWriter) ratingSection(b *strings.Builder, report *domain.AnalysisReport) {
	b.WriteString("## Sentiment by Star Rating\n\n")
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Rating", "Mean Compound", "Reviews"})
	for _, r := range report.RatingSentiment {
		t.AppendRow(table.Row{r.Rating, fmt.Sprintf("%.3f", r.MeanCompound), r.Count})
	}
	b.WriteString(t.RenderMarkdown())
	fmt.Fprintf(b, "\n\nPearson correlation between rating and compound score: %.3f\n\n", report.RatingCorrelation)
}

func (w *MarkdownWriter) trendSection(b *strings.Builder, trend []domain.MonthlySentiment) {
	if len(trend) == 0 {
		return
	}
	b.WriteString("## Monthly Sentiment Trend\n\n")
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Bank", "Month", "Mean Compound", "Reviews"})
	for _, m := range trend {
		t.AppendRow(table.Row{m.Bank, m.Month, fmt.Sprintf("%.3f", m.MeanCompound), m.Count})
	}
	b.WriteString(t.RenderMarkdown())
	b.WriteString("\n\n")
}

func (w *MarkdownWriter) keywordSection(b *strings.Builder, keywords []domain.NegativeKeyword) {
	if len(keywords) == 0 {
		return
	}
	b.WriteString("## Top Keywords in Negative Reviews\n\n")
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Keyword", "Occurrences", "% of Negative Reviews"})
	for _, k := range keywords {
		t.AppendRow(table.Row{k.Term, k.Count, fmt.Sprintf("%.2f", k.Pct)})
	}
	b.WriteString(t.RenderMarkdown())
	b.WriteString("\n\n")
}

func (w *MarkdownWriter) topicSection(b *strings.Builder, report *domain.AnalysisReport) {
	if len(report.Topics.Words) == 0 {
		b.WriteString("## Topics\n\nTopic modeling was skipped: the corpus vocabulary was too small.\n")
		return
	}

	b.WriteString("## Topics\n\n")
	for _, model := range []domain.TopicModel{domain.ModelLDA, domain.ModelNMF} {
		fmt.Fprintf(b, "### %s\n\n", strings.ToUpper(string(model)))
		byTopic := make(map[int][]string)
		for _, word := range report.Topics.Words {
			if word.Model == model {
				byTopic[word.TopicID] = append(byTopic[word.TopicID], word.Word)
			}
		}
		t := table.NewWriter()
		t.AppendHeader(table.Row{"Topic", "Top Words"})
		for topicID := 0; topicID < report.Topics.EffectiveTopicCount; topicID++ {
			t.AppendRow(table.Row{topicID, strings.Join(byTopic[topicID], ", ")})
		}
		b.WriteString(t.RenderMarkdown())
		b.WriteString("\n\n")
	}

	if len(report.TopicPrevalence) > 0 {
		b.WriteString("### Topic Prevalence by Bank\n\n")
		t := table.NewWriter()
		t.AppendHeader(table.Row{"Bank", "Model", "Topic", "Reviews", "%"})
		for _, p := range report.TopicPrevalence {
			t.AppendRow(table.Row{p.Bank, string(p.Model), p.TopicID, p.Count, fmt.Sprintf("%.2f", p.Pct)})
		}
		b.WriteString(t.RenderMarkdown())
		b.WriteString("\n\n")
	}
}
