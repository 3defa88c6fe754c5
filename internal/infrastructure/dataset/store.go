// Package dataset persists the intermediate CSV tables that let the CLI
// stages run independently: raw scrape output and the cleaned corpus.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
)

const (
	rawFile     = "bank_reviews_raw.csv"
	cleanFile   = "bank_reviews_clean.csv"
	qualityFile = "quality_report.json"
)

type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) WriteRaw(reviews []domain.RawReview) error {
	rows := make([][]string, 0, len(reviews)+1)
	rows = append(rows, []string{"review_id", "review_text", "rating", "date", "bank_name", "source"})
	for _, r := range reviews {
		rating := ""
		if r.Rating != nil {
			rating = strconv.Itoa(*r.Rating)
		}
		rows = append(rows, []string{r.ID, r.Text, rating, r.Date, r.Bank, r.Source})
	}
	return s.writeFile(rawFile, rows)
}

func (s *Store) ReadRaw() ([]domain.RawReview, error) {
	rows, err := s.readFile(rawFile)
	if err != nil {
		return nil, err
	}

	out := make([]domain.RawReview, 0, len(rows))
	for _, row := range rows {
		if len(row) < 6 {
			continue
		}
		raw := domain.RawReview{ID: row[0], Text: row[1], Date: row[3], Bank: row[4], Source: row[5]}
		if row[2] != "" {
			if rating, err := strconv.Atoi(row[2]); err == nil {
				raw.Rating = &rating
			}
		}
		out = append(out, raw)
	}
	return out, nil
}

func (s *Store) WriteClean(reviews []domain.Review) error {
	rows := make([][]string, 0, len(reviews)+1)
	rows = append(rows, []string{"review_id", "review", "rating", "date", "bank", "source"})
	for _, r := range reviews {
		rows = append(rows, []string{
			r.ID, r.Text, strconv.Itoa(r.Rating), r.Date.Format("2006-01-02"), r.Bank, r.Source,
		})
	}
	return s.writeFile(cleanFile, rows)
}

func (s *Store) ReadClean() ([]domain.Review, error) {
	rows, err := s.readFile(cleanFile)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Review, 0, len(rows))
	for _, row := range rows {
		if len(row) < 6 {
			continue
		}
		rating, err := strconv.Atoi(row[2])
		if err != nil {
			return nil, fmt.Errorf("clean dataset row for %q: bad rating %q", row[0], row[2])
		}
		date, err := time.Parse("2006-01-02", row[3])
		if err != nil {
			return nil, fmt.Errorf("clean dataset row for %q: bad date %q", row[0], row[3])
		}
		out = append(out, domain.Review{
			ID: row[0], Text: row[1], Rating: rating, Date: date, Bank: row[4], Source: row[5],
		})
	}
	return out, nil
}

// WriteQuality stores the drop accounting next to the clean dataset so a
// later analyze run can report it without recleaning.
func (s *Store) WriteQuality(report domain.QualityReport) error {
	path := filepath.Join(s.dir, qualityFile)
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("encode quality report: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReadQuality returns the zero report when the file does not exist.
func (s *Store) ReadQuality() (domain.QualityReport, error) {
	path := filepath.Join(s.dir, qualityFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return domain.QualityReport{}, nil
	}
	if err != nil {
		return domain.QualityReport{}, fmt.Errorf("read %s: %w", path, err)
	}
	var report domain.QualityReport
	if err := json.Unmarshal(data, &report); err != nil {
		return domain.QualityReport{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return report, nil
}

func (s *Store) writeFile(name string, rows [][]string) error {
	path := filepath.Join(s.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func (s *Store) readFile(name string) ([][]string, error) {
	path := filepath.Join(s.dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) <= 1 {
		return nil, nil
	}
	return rows[1:], nil
}
