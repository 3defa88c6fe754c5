package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
)

// ExcelWriter renders the summary tables into one workbook, a sheet per
// table, for stakeholders who live in spreadsheets.
type ExcelWriter struct {
	dir string
}

func NewExcelWriter(dir string) (*ExcelWriter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create report dir: %w", err)
	}
	return &ExcelWriter{dir: dir}, nil
}

func (w *ExcelWriter) Write(_ context.Context, report *domain.AnalysisReport) error {
	f := excelize.NewFile()
	defer func() {
		_ = f.Close()
	}()

	sheets := []struct {
		name string
		rows [][]any
	}{
		{"Banks", anyRows(bankRows(report))},
		{"Rating Sentiment", ratingRows(report.RatingSentiment)},
		{"Monthly Trend", anyRows(monthlyRows(report.MonthlyTrend))},
		{"Negative Keywords", anyRows(negativeKeywordRows(report.NegativeKeywords))},
		{"Topic Keywords", anyRows(topicKeywordRows(report.Topics))},
	}

	for i, sheet := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.name); err != nil {
				return fmt.Errorf("rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet.name); err != nil {
				return fmt.Errorf("create sheet %s: %w", sheet.name, err)
			}
		}
		if err := fillSheet(f, sheet.name, sheet.rows); err != nil {
			return err
		}
	}

	path := filepath.Join(w.dir, "analysis_summary.xlsx")
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func fillSheet(f *excelize.File, sheet string, rows [][]any) error {
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		if err != nil {
			return fmt.Errorf("cell name for row %d: %w", r+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("fill sheet %s row %d: %w", sheet, r+1, err)
		}
	}
	return nil
}

func ratingRows(ratings []domain.RatingSentiment) [][]any {
	rows := [][]any{{"rating", "mean_compound", "count"}}
	for _, r := range ratings {
		rows = append(rows, []any{r.Rating, r.MeanCompound, r.Count})
	}
	return rows
}

func anyRows(rows [][]string) [][]any {
	out := make([][]any, len(rows))
	for i, row := range rows {
		converted := make([]any, len(row))
		for j, v := range row {
			converted[j] = v
		}
		out[i] = converted
	}
	return out
}
