package topics

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// syntheticCorpus builds documents drawn from two disjoint vocabularies so
// the models have an obvious two-topic structure to find.
func syntheticCorpus(t *testing.T) ([][]int, int) {
	t.Helper()
	rng := rand.New(rand.NewSource(1))

	docs := make([][]int, 40)
	for d := range docs {
		base := 0
		if d%2 == 1 {
			base = 5
		}
		doc := make([]int, 12)
		for i := range doc {
			doc[i] = base + rng.Intn(5)
		}
		docs[d] = doc
	}
	return docs, 10
}

func TestLDADeterministicForSeed(t *testing.T) {
	docs, vocabSize := syntheticCorpus(t)

	first := NewLDA(2, 42).Fit(docs, vocabSize)
	second := NewLDA(2, 42).Fit(docs, vocabSize)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same seed produced different fits")
	}
}

func TestLDADistributionsAreNormalized(t *testing.T) {
	docs, vocabSize := syntheticCorpus(t)

	result := NewLDA(3, 42).Fit(docs, vocabSize)
	if len(result.DocTopic) != len(docs) || len(result.TopicTerm) != 3 {
		t.Fatalf("unexpected shapes: %d docs, %d topics", len(result.DocTopic), len(result.TopicTerm))
	}
	for d, row := range result.DocTopic {
		var sum float64
		for _, v := range row {
			sum += v
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Fatalf("doc %d theta sums to %f", d, sum)
		}
	}
	for k, row := range result.TopicTerm {
		var sum float64
		for _, v := range row {
			sum += v
		}
		if math.Abs(sum-1.0) > 1e-9 {
			t.Fatalf("topic %d phi sums to %f", k, sum)
		}
	}
}

func TestLDASeparatesDisjointVocabularies(t *testing.T) {
	docs, vocabSize := syntheticCorpus(t)

	result := NewLDA(2, 42).Fit(docs, vocabSize)
	evenTopic, _ := argmax(result.DocTopic[0])
	agree := 0
	for d, row := range result.DocTopic {
		topic, _ := argmax(row)
		if (d%2 == 0) == (topic == evenTopic) {
			agree++
		}
	}
	// The two vocabularies never co-occur; the sampler should split them
	// almost perfectly.
	if agree < 36 {
		t.Fatalf("only %d/40 documents assigned consistently", agree)
	}
}

func TestNMFDeterministicForSeed(t *testing.T) {
	docs, vocabSize := syntheticCorpus(t)
	v := &Vocabulary{NumDocs: len(docs), DocFreq: make([]int, vocabSize)}
	for i := range v.DocFreq {
		v.DocFreq[i] = len(docs) / 2
	}
	counts := mat.NewDense(len(docs), vocabSize, nil)
	for d, doc := range docs {
		for _, w := range doc {
			counts.Set(d, w, counts.At(d, w)+1)
		}
	}
	tfidf := TFIDFMatrix(counts, v)

	w1, h1 := NewNMF(2, 42).Fit(tfidf)
	w2, h2 := NewNMF(2, 42).Fit(tfidf)
	if !mat.Equal(w1, w2) || !mat.Equal(h1, h2) {
		t.Fatalf("same seed produced different factorizations")
	}

	rows, _ := w1.Dims()
	_, cols := h1.Dims()
	if rows != len(docs) || cols != vocabSize {
		t.Fatalf("unexpected factor shapes: W %dx_, H _x%d", rows, cols)
	}
}

func TestNMFFactorsAreNonNegative(t *testing.T) {
	docs, vocabSize := syntheticCorpus(t)
	counts := mat.NewDense(len(docs), vocabSize, nil)
	for d, doc := range docs {
		for _, w := range doc {
			counts.Set(d, w, counts.At(d, w)+1)
		}
	}

	w, h := NewNMF(3, 7).Fit(counts)
	for _, m := range []*mat.Dense{w, h} {
		r, c := m.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if m.At(i, j) < 0 {
					t.Fatalf("negative factor entry at %d,%d", i, j)
				}
			}
		}
	}
}
