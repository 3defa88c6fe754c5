package topics

import (
	"sort"
	"strings"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
)

const maxReportedPhrases = 15

// DetectPhrases merges frequent adjacent token pairs into single phrase
// tokens, then repeats the pass once so trigrams emerge from merged bigrams.
// Phrases occurring fewer than minCount times are left as separate tokens.
func DetectPhrases(docs [][]string, minCount int) ([][]string, []domain.PhraseStat) {
	if minCount < 2 {
		minCount = 2
	}

	merged := mergePass(docs, minCount)
	merged = mergePass(merged, minCount)

	return merged, phraseStats(merged)
}

func mergePass(docs [][]string, minCount int) [][]string {
	pairCounts := make(map[[2]string]int)
	for _, doc := range docs {
		for i := 0; i+1 < len(doc); i++ {
			pairCounts[[2]string{doc[i], doc[i+1]}]++
		}
	}

	out := make([][]string, len(docs))
	for d, doc := range docs {
		row := make([]string, 0, len(doc))
		for i := 0; i < len(doc); i++ {
			if i+1 < len(doc) {
				pair := [2]string{doc[i], doc[i+1]}
				// Cap merged phrases at trigrams.
				if pairCounts[pair] >= minCount && phraseSize(doc[i])+phraseSize(doc[i+1]) <= 3 {
					row = append(row, doc[i]+"_"+doc[i+1])
					i++
					continue
				}
			}
			row = append(row, doc[i])
		}
		out[d] = row
	}
	return out
}

func phraseSize(tok string) int {
	return strings.Count(tok, "_") + 1
}

func phraseStats(docs [][]string) []domain.PhraseStat {
	counts := make(map[string]int)
	for _, doc := range docs {
		for _, tok := range doc {
			if strings.Contains(tok, "_") {
				counts[tok]++
			}
		}
	}

	stats := make([]domain.PhraseStat, 0, len(counts))
	for phrase, count := range counts {
		stats = append(stats, domain.PhraseStat{
			Phrase: strings.ReplaceAll(phrase, "_", " "),
			Size:   phraseSize(phrase),
			Count:  count,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Phrase < stats[j].Phrase
	})

	// Keep the top phrases per size, matching what the report displays.
	bySize := make(map[int]int)
	out := stats[:0]
	for _, s := range stats {
		if bySize[s.Size] >= maxReportedPhrases {
			continue
		}
		bySize[s.Size]++
		out = append(out, s)
	}
	return out
}
