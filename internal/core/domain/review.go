package domain

import "time"

// RawReview is one scraped record before validation. Any field may be
// missing or malformed; Rating is nil when the store did not return one.
type RawReview struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Rating *int   `json:"rating,omitempty"`
	Date   string `json:"date"`
	Bank   string `json:"bank"`
	Source string `json:"source"`
}

// Review is a validated, cleaned review. Immutable after ingestion;
// downstream stages attach derived values instead of mutating it.
type Review struct {
	ID     string    `json:"id"`
	Text   string    `json:"text"`
	Rating int       `json:"rating"`
	Date   time.Time `json:"date"`
	Bank   string    `json:"bank"`
	Source string    `json:"source"`
}

// Month returns the review date bucketed to YYYY-MM.
func (r Review) Month() string {
	return r.Date.Format("2006-01")
}

type SentimentCategory string

const (
	CategoryPositive SentimentCategory = "positive"
	CategoryNeutral  SentimentCategory = "neutral"
	CategoryNegative SentimentCategory = "negative"
)

// SentimentScores holds the three independent engine outputs for one review.
// The engines never observe each other; all three are retained so reports can
// show agreement between methods.
type SentimentScores struct {
	VaderCompound        float64 `json:"vader_compound"`
	TextBlobPolarity     float64 `json:"textblob_polarity"`
	TextBlobSubjectivity float64 `json:"textblob_subjectivity"`
	AfinnScore           int     `json:"afinn_score"`
}

// ScoredReview is a Review plus sentiment annotations. Category is always
// derived from VaderCompound via AnalysisConfig.Categorize, never set
// independently.
type ScoredReview struct {
	Review
	Scores   SentimentScores   `json:"scores"`
	Category SentimentCategory `json:"sentiment_category"`
}

// QualityReport accounts for every record dropped during ingestion so the
// report can state the retention rate rather than silently shrinking the
// corpus.
type QualityReport struct {
	Initial           int `json:"initial"`
	DroppedEmptyText  int `json:"dropped_empty_text"`
	DroppedBadDate    int `json:"dropped_bad_date"`
	DroppedBadRating  int `json:"dropped_bad_rating"`
	DroppedDuplicates int `json:"dropped_duplicates"`
	ImputedRatings    int `json:"imputed_ratings"`
	Final             int `json:"final"`
}

func (q QualityReport) RetentionRate() float64 {
	if q.Initial == 0 {
		return 0
	}
	return float64(q.Final) / float64(q.Initial) * 100
}

// AppTarget identifies one Play Store app to scrape.
type AppTarget struct {
	AppID     string `yaml:"app_id"`
	BankName  string `yaml:"bank_name"`
	ShortName string `yaml:"short_name"`
}
