package topics

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/abenezerm/fintech-review-analytics/internal/core/domain"
)

const (
	// maxModelFeatures caps the factorization vocabulary.
	maxModelFeatures = 1000
	// maxVocabularyDFRatio drops terms appearing in more than half of all
	// documents.
	maxVocabularyDFRatio = 0.5
)

// Extractor implements the topic-modeling port: one tokenization pass
// finalizes the shared vocabulary, then LDA and NMF are fit with the same K
// and seed over the same term space.
type Extractor struct {
	tokenizer *Tokenizer
	log       *slog.Logger
}

func NewExtractor(tokenizer *Tokenizer, log *slog.Logger) *Extractor {
	return &Extractor{tokenizer: tokenizer, log: log}
}

func (e *Extractor) Extract(ctx context.Context, reviews []domain.Review, cfg domain.AnalysisConfig) (domain.TopicResults, error) {
	if len(reviews) == 0 {
		return domain.TopicResults{}, nil
	}

	// Tokenization must complete over the whole corpus before any model
	// fitting: the vocabulary is global.
	docs := make([][]string, len(reviews))
	for i, r := range reviews {
		docs[i] = e.tokenizer.Tokens(r.Text)
	}

	merged, phrases := DetectPhrases(docs, cfg.MinPhraseOccurrences)

	// Reviews with no surviving tokens cannot participate in the models.
	kept := make([][]string, 0, len(merged))
	keptReviews := make([]domain.Review, 0, len(merged))
	for i, doc := range merged {
		if len(doc) > 0 {
			kept = append(kept, doc)
			keptReviews = append(keptReviews, reviews[i])
		}
	}
	if len(kept) == 0 {
		return domain.TopicResults{}, domain.WrapError(domain.ErrInsufficientVocabulary, "build vocabulary",
			errors.New("no tokens survived preprocessing"))
	}

	vocab := BuildVocabulary(kept, minDocFreq(len(kept)), maxVocabularyDFRatio, maxModelFeatures)
	if vocab.Size() == 0 {
		return domain.TopicResults{}, domain.WrapError(domain.ErrInsufficientVocabulary, "build vocabulary",
			errors.New("all terms filtered as corpus extremes"))
	}

	k := cfg.TopicCount
	if vocab.Size() < k {
		e.log.Warn("vocabulary smaller than topic count, clamping",
			"vocabulary", vocab.Size(), "requested_k", cfg.TopicCount)
		k = vocab.Size()
	}

	encoded := make([][]int, len(kept))
	for i, doc := range kept {
		encoded[i] = vocab.Encode(doc)
	}
	counts := vocab.CountMatrix(encoded)
	tfidf := TFIDFMatrix(counts, vocab)

	if err := ctx.Err(); err != nil {
		return domain.TopicResults{}, err
	}

	results := domain.TopicResults{
		Phrases:             phrases,
		EffectiveTopicCount: k,
	}

	ldaResult := NewLDA(k, cfg.Seed).Fit(encoded, vocab.Size())
	results.Assignments = append(results.Assignments,
		assignFromRows(keptReviews, domain.ModelLDA, ldaResult.DocTopic)...)
	results.Words = append(results.Words,
		topicWords(domain.ModelLDA, ldaResult.TopicTerm, vocab, cfg.TopicTopWords)...)

	if err := ctx.Err(); err != nil {
		return domain.TopicResults{}, err
	}

	w, h := NewNMF(k, cfg.Seed).Fit(tfidf)
	results.Assignments = append(results.Assignments,
		assignFromRows(keptReviews, domain.ModelNMF, denseRows(w))...)
	results.Words = append(results.Words,
		topicWords(domain.ModelNMF, denseRows(h), vocab, cfg.TopicTopWords)...)

	results.CorpusKeywords = TopTerms(tfidf, vocab, domain.KeywordScopeCorpus, cfg.KeywordTopN)
	results.BankKeywords = e.bankKeywords(keptReviews, kept, cfg.KeywordTopN)

	return results, nil
}

// minDocFreq loosens the document-frequency floor for small corpora so a
// handful of reviews still yields a usable vocabulary.
func minDocFreq(numDocs int) int {
	switch {
	case numDocs < 20:
		return 1
	case numDocs < 100:
		return 2
	default:
		return 5
	}
}

// assignFromRows records the argmax topic per document, with the membership
// proportion as the weight.
func assignFromRows(reviews []domain.Review, model domain.TopicModel, rows [][]float64) []domain.TopicAssignment {
	out := make([]domain.TopicAssignment, 0, len(reviews))
	for d, row := range rows {
		best, weight := argmax(row)
		var sum float64
		for _, v := range row {
			sum += v
		}
		if sum > 0 {
			weight /= sum
		}
		out = append(out, domain.TopicAssignment{
			ReviewID: reviews[d].ID,
			Model:    model,
			TopicID:  best,
			Weight:   weight,
		})
	}
	return out
}

func topicWords(model domain.TopicModel, topicTerm [][]float64, vocab *Vocabulary, topN int) []domain.TopicWord {
	out := make([]domain.TopicWord, 0, len(topicTerm)*topN)
	for topicID, weights := range topicTerm {
		order := make([]int, len(weights))
		for i := range order {
			order[i] = i
		}
		sort.Slice(order, func(a, b int) bool {
			if weights[order[a]] != weights[order[b]] {
				return weights[order[a]] > weights[order[b]]
			}
			return vocab.Terms[order[a]] < vocab.Terms[order[b]]
		})
		if len(order) > topN {
			order = order[:topN]
		}
		for _, idx := range order {
			out = append(out, domain.TopicWord{
				Model:   model,
				TopicID: topicID,
				Word:    vocab.Terms[idx],
				Weight:  weights[idx],
			})
		}
	}
	return out
}

func (e *Extractor) bankKeywords(reviews []domain.Review, docs [][]string, topN int) []domain.KeywordStat {
	byBank := make(map[string][][]string)
	for i, r := range reviews {
		byBank[r.Bank] = append(byBank[r.Bank], docs[i])
	}

	banks := make([]string, 0, len(byBank))
	for bank := range byBank {
		banks = append(banks, bank)
	}
	sort.Strings(banks)

	var out []domain.KeywordStat
	for _, bank := range banks {
		out = append(out, RankKeywords(byBank[bank], bank, topN)...)
	}
	return out
}

func denseRows(m *mat.Dense) [][]float64 {
	r, _ := m.Dims()
	out := make([][]float64, r)
	for i := 0; i < r; i++ {
		out[i] = m.RawRowView(i)
	}
	return out
}

func argmax(row []float64) (int, float64) {
	best, bestVal := 0, 0.0
	for i, v := range row {
		if i == 0 || v > bestVal {
			best, bestVal = i, v
		}
	}
	return best, bestVal
}
