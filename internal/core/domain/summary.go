package domain

import "time"

// OverallBank is the pseudo-bank identifier for the corpus-wide summary row.
const OverallBank = "overall"

// BankSummary aggregates scored reviews for one bank. Percentages are
// round-half-up to two decimals and sum to 100.00 within rounding.
type BankSummary struct {
	Bank         string  `json:"bank"`
	TotalReviews int     `json:"total_reviews"`
	AvgRating    float64 `json:"avg_rating"`
	AvgSentiment float64 `json:"avg_sentiment"`
	PctPositive  float64 `json:"pct_positive"`
	PctNeutral   float64 `json:"pct_neutral"`
	PctNegative  float64 `json:"pct_negative"`
}

// RatingSentiment maps one star rating to the mean compound score of reviews
// carrying it; used to validate rating/sentiment correlation.
type RatingSentiment struct {
	Rating       int     `json:"rating"`
	MeanCompound float64 `json:"mean_compound"`
	Count        int     `json:"count"`
}

// MonthlySentiment is one (bank, year-month) trend bucket.
type MonthlySentiment struct {
	Bank         string  `json:"bank"`
	Month        string  `json:"month"`
	MeanCompound float64 `json:"mean_compound"`
	Count        int     `json:"count"`
}

// NegativeKeyword is a term ranked by frequency across negative reviews.
// Pct is occurrences over the total negative review count.
type NegativeKeyword struct {
	Term  string  `json:"term"`
	Count int     `json:"count"`
	Pct   float64 `json:"pct_of_negative_reviews"`
}

// TopicPrevalence counts reviews per (bank, model, topic), normalized to a
// percentage within the bank.
type TopicPrevalence struct {
	Bank    string     `json:"bank"`
	Model   TopicModel `json:"model"`
	TopicID int        `json:"topic_id"`
	Count   int        `json:"count"`
	Pct     float64    `json:"pct"`
}

// AnalysisReport is the complete output of one pipeline run. It is built
// fully in memory and handed to report writers as a single value, so a
// half-produced report is never observable.
type AnalysisReport struct {
	GeneratedAt time.Time `json:"generated_at"`

	Quality QualityReport  `json:"quality"`
	Scored  []ScoredReview `json:"scored"`
	Topics  TopicResults   `json:"topics"`

	Banks             []BankSummary      `json:"banks"`
	Overall           BankSummary        `json:"overall"`
	RatingSentiment   []RatingSentiment  `json:"rating_sentiment"`
	MonthlyTrend      []MonthlySentiment `json:"monthly_trend"`
	NegativeKeywords  []NegativeKeyword  `json:"negative_keywords"`
	TopicPrevalence   []TopicPrevalence  `json:"topic_prevalence"`
	RatingCorrelation float64            `json:"rating_sentiment_correlation"`
}
