package usecase

import (
	"log/slog"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"Jan 2, 2006",
	"January 2, 2006",
}

// CleanUseCase validates and reshapes raw scraped records into canonical
// reviews. It never fails a batch: malformed records are counted and dropped.
type CleanUseCase struct {
	log *slog.Logger
}

func NewCleanUseCase(log *slog.Logger) *CleanUseCase {
	return &CleanUseCase{log: log}
}

func (uc *CleanUseCase) Clean(raw []domain.RawReview) ([]domain.Review, domain.QualityReport) {
	report := domain.QualityReport{Initial: len(raw)}

	// The imputation median is computed over originally present ratings,
	// before any record is dropped, so drops cannot shift it.
	median, haveMedian := medianRating(raw)

	out := make([]domain.Review, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, rec := range raw {
		text := cleanText(rec.Text)
		if text == "" {
			report.DroppedEmptyText++
			continue
		}

		date, ok := parseDate(rec.Date)
		if !ok {
			report.DroppedBadDate++
			continue
		}

		if rec.Rating != nil && (*rec.Rating < 1 || *rec.Rating > 5) {
			report.DroppedBadRating++
			continue
		}

		dedupKey := text + "\x00" + rec.Bank
		if _, dup := seen[dedupKey]; dup {
			report.DroppedDuplicates++
			continue
		}
		seen[dedupKey] = struct{}{}

		rating := 0
		switch {
		case rec.Rating != nil:
			rating = *rec.Rating
		case haveMedian:
			rating = median
			report.ImputedRatings++
		default:
			// A batch with no usable rating anywhere falls back to the
			// scale midpoint.
			rating = 3
			report.ImputedRatings++
		}

		out = append(out, domain.Review{
			ID:     rec.ID,
			Text:   text,
			Rating: rating,
			Date:   date,
			Bank:   rec.Bank,
			Source: rec.Source,
		})
	}

	report.Final = len(out)
	uc.log.Info("cleaned review batch",
		"initial", report.Initial,
		"final", report.Final,
		"dropped_empty_text", report.DroppedEmptyText,
		"dropped_bad_date", report.DroppedBadDate,
		"dropped_bad_rating", report.DroppedBadRating,
		"dropped_duplicates", report.DroppedDuplicates,
		"imputed_ratings", report.ImputedRatings,
		"retention_pct", report.RetentionRate(),
	)
	return out, report
}

// cleanText trims, collapses whitespace and strips non-printable characters,
// keeping the ASCII printable range plus newlines.
func cleanText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	lastSpace := false
	for _, r := range text {
		if r == '\n' || unicode.IsSpace(r) {
			if !lastSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			lastSpace = true
			continue
		}
		if r < 0x20 || r > 0x7E {
			continue
		}
		b.WriteRune(r)
		lastSpace = false
	}
	return strings.TrimSpace(b.String())
}

func parseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// medianRating returns the median of the ratings present in the raw batch.
// Even-length batches take the mean of the middle pair, rounded half up.
func medianRating(raw []domain.RawReview) (int, bool) {
	present := make([]int, 0, len(raw))
	for _, rec := range raw {
		if rec.Rating != nil && *rec.Rating >= 1 && *rec.Rating <= 5 {
			present = append(present, *rec.Rating)
		}
	}
	if len(present) == 0 {
		return 0, false
	}
	sort.Ints(present)
	mid := len(present) / 2
	if len(present)%2 == 1 {
		return present[mid], true
	}
	return (present[mid-1] + present[mid] + 1) / 2, true
}
