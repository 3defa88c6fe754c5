package topics

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Vocabulary is the fixed term index shared by the count and TF-IDF matrices.
// It is finalized in one pass over the whole corpus before any model fitting
// starts.
type Vocabulary struct {
	Terms   []string
	Index   map[string]int
	DocFreq []int
	NumDocs int
}

// BuildVocabulary filters corpus extremes: terms in fewer than minDF
// documents or in more than maxDFRatio of all documents are dropped, and the
// vocabulary is capped at maxFeatures terms by total frequency. Term ids are
// assigned in lexicographic order so identical corpora always produce
// identical matrices.
func BuildVocabulary(docs [][]string, minDF int, maxDFRatio float64, maxFeatures int) *Vocabulary {
	df := make(map[string]int)
	tf := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{}, len(doc))
		for _, tok := range doc {
			tf[tok]++
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				df[tok]++
			}
		}
	}

	maxDF := int(maxDFRatio * float64(len(docs)))
	if maxDF < minDF {
		maxDF = len(docs)
	}

	kept := make([]string, 0, len(df))
	for term, n := range df {
		if n < minDF || n > maxDF {
			continue
		}
		kept = append(kept, term)
	}

	if maxFeatures > 0 && len(kept) > maxFeatures {
		sort.Slice(kept, func(i, j int) bool {
			if tf[kept[i]] != tf[kept[j]] {
				return tf[kept[i]] > tf[kept[j]]
			}
			return kept[i] < kept[j]
		})
		kept = kept[:maxFeatures]
	}
	sort.Strings(kept)

	v := &Vocabulary{
		Terms:   kept,
		Index:   make(map[string]int, len(kept)),
		DocFreq: make([]int, len(kept)),
		NumDocs: len(docs),
	}
	for i, term := range kept {
		v.Index[term] = i
		v.DocFreq[i] = df[term]
	}
	return v
}

func (v *Vocabulary) Size() int { return len(v.Terms) }

// Encode maps a token stream to vocabulary ids, dropping out-of-vocabulary
// tokens and preserving repetition.
func (v *Vocabulary) Encode(doc []string) []int {
	out := make([]int, 0, len(doc))
	for _, tok := range doc {
		if id, ok := v.Index[tok]; ok {
			out = append(out, id)
		}
	}
	return out
}

// CountMatrix builds the raw document-term count matrix, the input for the
// count-based factorization model.
func (v *Vocabulary) CountMatrix(encoded [][]int) *mat.Dense {
	m := mat.NewDense(len(encoded), v.Size(), nil)
	for d, doc := range encoded {
		for _, id := range doc {
			m.Set(d, id, m.At(d, id)+1)
		}
	}
	return m
}
