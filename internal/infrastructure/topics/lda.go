package topics

import "math/rand"

// LDA fits a latent Dirichlet allocation model by collapsed Gibbs sampling.
// All randomness comes from the seeded source, so fitting an identical
// encoded corpus twice yields identical assignments.
type LDA struct {
	K          int
	Alpha      float64
	Beta       float64
	Iterations int
	seed       int64
}

type LDAResult struct {
	// DocTopic holds theta: per-document topic proportions.
	DocTopic [][]float64
	// TopicTerm holds phi: per-topic term proportions.
	TopicTerm [][]float64
}

func NewLDA(k int, seed int64) *LDA {
	return &LDA{
		K:          k,
		Alpha:      50.0 / float64(k),
		Beta:       0.01,
		Iterations: 200,
		seed:       seed,
	}
}

// Fit runs the sampler over documents encoded as vocabulary-id sequences.
func (l *LDA) Fit(docs [][]int, vocabSize int) *LDAResult {
	rng := rand.New(rand.NewSource(l.seed))

	nDocs := len(docs)
	docTopic := make([][]int, nDocs)
	topicTerm := make([][]int, l.K)
	topicTotal := make([]int, l.K)
	for k := range topicTerm {
		topicTerm[k] = make([]int, vocabSize)
	}

	assignments := make([][]int, nDocs)
	for d, doc := range docs {
		docTopic[d] = make([]int, l.K)
		assignments[d] = make([]int, len(doc))
		for i, w := range doc {
			k := rng.Intn(l.K)
			assignments[d][i] = k
			docTopic[d][k]++
			topicTerm[k][w]++
			topicTotal[k]++
		}
	}

	probs := make([]float64, l.K)
	vBeta := float64(vocabSize) * l.Beta

	for it := 0; it < l.Iterations; it++ {
		for d, doc := range docs {
			for i, w := range doc {
				k := assignments[d][i]
				docTopic[d][k]--
				topicTerm[k][w]--
				topicTotal[k]--

				var total float64
				for t := 0; t < l.K; t++ {
					p := (float64(docTopic[d][t]) + l.Alpha) *
						(float64(topicTerm[t][w]) + l.Beta) /
						(float64(topicTotal[t]) + vBeta)
					probs[t] = p
					total += p
				}

				target := rng.Float64() * total
				k = 0
				for acc := probs[0]; acc < target && k < l.K-1; {
					k++
					acc += probs[k]
				}

				assignments[d][i] = k
				docTopic[d][k]++
				topicTerm[k][w]++
				topicTotal[k]++
			}
		}
	}

	return l.estimate(docs, docTopic, topicTerm, topicTotal, vocabSize)
}

func (l *LDA) estimate(docs [][]int, docTopic [][]int, topicTerm [][]int, topicTotal []int, vocabSize int) *LDAResult {
	theta := make([][]float64, len(docs))
	for d := range docs {
		theta[d] = make([]float64, l.K)
		denom := float64(len(docs[d])) + float64(l.K)*l.Alpha
		for k := 0; k < l.K; k++ {
			theta[d][k] = (float64(docTopic[d][k]) + l.Alpha) / denom
		}
	}

	phi := make([][]float64, l.K)
	for k := 0; k < l.K; k++ {
		phi[k] = make([]float64, vocabSize)
		denom := float64(topicTotal[k]) + float64(vocabSize)*l.Beta
		for w := 0; w < vocabSize; w++ {
			phi[k][w] = (float64(topicTerm[k][w]) + l.Beta) / denom
		}
	}

	return &LDAResult{DocTopic: theta, TopicTerm: phi}
}
