// Package sentiment implements the three lexicon-based scoring engines.
// Each engine is a pure function of the review text; none observes another's
// output. The three scores are triangulation evidence, not an ensemble.
package sentiment

import (
	"github.com/jonreiter/govader"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
)

// Analyzer bundles the engines behind the SentimentScorer port. It is built
// once per pipeline run; the lexicons are plain values with no hidden
// cross-run state, so analyzers are safe to use from parallel workers.
type Analyzer struct {
	vader   *govader.SentimentIntensityAnalyzer
	afinn   *AfinnScorer
	pattern *PatternScorer
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		vader:   govader.NewSentimentIntensityAnalyzer(),
		afinn:   NewAfinnScorer(),
		pattern: NewPatternScorer(),
	}
}

func (a *Analyzer) Score(text string) domain.SentimentScores {
	if text == "" {
		return domain.SentimentScores{}
	}

	polarity, subjectivity := a.pattern.Score(text)
	return domain.SentimentScores{
		VaderCompound:        a.vader.PolarityScores(text).Compound,
		TextBlobPolarity:     polarity,
		TextBlobSubjectivity: subjectivity,
		AfinnScore:           a.afinn.Score(text),
	}
}
