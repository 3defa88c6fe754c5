package domain

// AnalysisConfig carries the tunables of the scoring and topic stages. It is
// constructed once per pipeline run and passed by reference; engines hold no
// module-level state so runs never leak into each other.
type AnalysisConfig struct {
	// PositiveThreshold and NegativeThreshold bucket the VADER compound
	// score into categories.
	PositiveThreshold float64
	NegativeThreshold float64

	// TopicCount is K for both factorization models.
	TopicCount int
	// TopicTopWords is how many words describe each topic.
	TopicTopWords int
	// MinPhraseOccurrences filters bigram/trigram noise.
	MinPhraseOccurrences int
	// KeywordTopN limits TF-IDF keyword tables.
	KeywordTopN int
	// Seed fixes the random state of both topic models so reruns over an
	// identical corpus assign identical topics.
	Seed int64
}

func DefaultAnalysisConfig() AnalysisConfig {
	return AnalysisConfig{
		PositiveThreshold:    0.05,
		NegativeThreshold:    -0.05,
		TopicCount:           5,
		TopicTopWords:        10,
		MinPhraseOccurrences: 5,
		KeywordTopN:          20,
		Seed:                 42,
	}
}

// Categorize maps a compound score to its category. This is the single source
// of truth: TextBlob and AFINN scores never influence the label.
func (c AnalysisConfig) Categorize(compound float64) SentimentCategory {
	switch {
	case compound >= c.PositiveThreshold:
		return CategoryPositive
	case compound <= c.NegativeThreshold:
		return CategoryNegative
	default:
		return CategoryNeutral
	}
}
