package topics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
)

// TFIDFMatrix reweights a count matrix with smoothed inverse document
// frequency and l2-normalizes each document row.
func TFIDFMatrix(counts *mat.Dense, v *Vocabulary) *mat.Dense {
	rows, cols := counts.Dims()
	idf := make([]float64, cols)
	for j := 0; j < cols; j++ {
		idf[j] = math.Log(float64(1+v.NumDocs)/float64(1+v.DocFreq[j])) + 1
	}

	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		var norm float64
		for j := 0; j < cols; j++ {
			w := counts.At(i, j) * idf[j]
			out.Set(i, j, w)
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := 0; j < cols; j++ {
				out.Set(i, j, out.At(i, j)/norm)
			}
		}
	}
	return out
}

// TopTerms ranks vocabulary terms by summed TF-IDF weight across all
// documents.
func TopTerms(tfidf *mat.Dense, v *Vocabulary, scope string, topN int) []domain.KeywordStat {
	rows, cols := tfidf.Dims()
	sums := make([]float64, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			sums[j] += tfidf.At(i, j)
		}
	}

	order := make([]int, cols)
	for j := range order {
		order[j] = j
	}
	sort.Slice(order, func(a, b int) bool {
		if sums[order[a]] != sums[order[b]] {
			return sums[order[a]] > sums[order[b]]
		}
		return v.Terms[order[a]] < v.Terms[order[b]]
	})

	if topN > 0 && len(order) > topN {
		order = order[:topN]
	}
	out := make([]domain.KeywordStat, 0, len(order))
	for _, j := range order {
		if sums[j] == 0 {
			break
		}
		out = append(out, domain.KeywordStat{Term: v.Terms[j], Scope: scope, Score: sums[j]})
	}
	return out
}

// RankKeywords builds a standalone TF-IDF model over one sub-corpus and
// returns its top terms. Used for the bank-scoped keyword tables, where
// inverse document frequency is computed within the bank's own reviews.
func RankKeywords(docs [][]string, scope string, topN int) []domain.KeywordStat {
	if len(docs) == 0 {
		return nil
	}
	v := BuildVocabulary(docs, 1, 1.0, 0)
	if v.Size() == 0 {
		return nil
	}
	encoded := make([][]int, len(docs))
	for i, doc := range docs {
		encoded[i] = v.Encode(doc)
	}
	tfidf := TFIDFMatrix(v.CountMatrix(encoded), v)
	return TopTerms(tfidf, v, scope, topN)
}
