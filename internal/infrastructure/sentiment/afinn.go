package sentiment

// AfinnScorer sums per-word valence values from an AFINN-style lexicon.
// Word scores range -5..5; the sum is unbounded but small for app reviews.
type AfinnScorer struct {
	lexicon map[string]int
}

func NewAfinnScorer() *AfinnScorer {
	return &AfinnScorer{lexicon: afinnLexicon}
}

func (s *AfinnScorer) Score(text string) int {
	total := 0
	tokens := tokenize(text)
	for i, tok := range tokens {
		v, ok := s.lexicon[tok]
		if !ok {
			continue
		}
		// "not good" counts against "good".
		if i > 0 && negations[tokens[i-1]] {
			v = -v
		}
		total += v
	}
	return total
}

var negations = map[string]bool{
	"not": true, "no": true, "never": true, "neither": true, "nor": true,
	"cannot": true, "can't": true, "won't": true, "don't": true,
	"doesn't": true, "didn't": true, "isn't": true, "wasn't": true,
	"aren't": true, "couldn't": true, "wouldn't": true, "shouldn't": true,
}
