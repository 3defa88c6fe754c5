package sentiment

// PatternScorer mirrors the TextBlob/pattern.en model: per-word polarity in
// [-1,1] and subjectivity in [0,1] averaged over matched lexicon entries,
// with negation flipping and intensity modifiers applied to the following
// word.
type PatternScorer struct {
	lexicon map[string]patternEntry
}

type patternEntry struct {
	polarity     float64
	subjectivity float64
}

func NewPatternScorer() *PatternScorer {
	return &PatternScorer{lexicon: patternLexicon}
}

// Score returns (polarity, subjectivity). Texts with no lexicon hits score
// (0, 0), matching the neutral fallback of the reference model.
func (s *PatternScorer) Score(text string) (float64, float64) {
	tokens := tokenize(text)

	var polaritySum, subjectivitySum float64
	matched := 0
	for i, tok := range tokens {
		entry, ok := s.lexicon[tok]
		if !ok {
			continue
		}

		polarity := entry.polarity
		if i > 0 {
			prev := tokens[i-1]
			if negations[prev] {
				// pattern.en dampens rather than fully inverts.
				polarity *= -0.5
			} else if boost, ok := intensifiers[prev]; ok {
				polarity *= boost
			}
		}

		polaritySum += clampf(polarity, -1, 1)
		subjectivitySum += entry.subjectivity
		matched++
	}
	if matched == 0 {
		return 0, 0
	}
	return polaritySum / float64(matched), subjectivitySum / float64(matched)
}

var intensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"extremely":  1.5,
	"absolutely": 1.5,
	"so":         1.2,
	"too":        1.2,
	"quite":      1.1,
	"totally":    1.3,
	"completely": 1.3,
	"highly":     1.3,
	"slightly":   0.8,
	"somewhat":   0.9,
	"barely":     0.7,
	"hardly":     0.7,
}

func clampf(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
