package domain

type TopicModel string

const (
	ModelLDA TopicModel = "lda"
	ModelNMF TopicModel = "nmf"
)

// TopicAssignment is one review's dominant topic under one model.
// Exactly one assignment exists per (review, model) pair.
type TopicAssignment struct {
	ReviewID string     `json:"review_id"`
	Model    TopicModel `json:"model"`
	TopicID  int        `json:"topic_id"`
	Weight   float64    `json:"weight"`
}

// TopicWord is one of the top-ranked words describing a topic.
type TopicWord struct {
	Model   TopicModel `json:"model"`
	TopicID int        `json:"topic_id"`
	Word    string     `json:"word"`
	Weight  float64    `json:"weight"`
}

// KeywordScopeCorpus scopes a KeywordStat to the whole corpus rather than a
// single bank.
const KeywordScopeCorpus = "corpus"

// KeywordStat is a TF-IDF ranked term, scoped either corpus-wide or to one
// bank's sub-corpus.
type KeywordStat struct {
	Term  string  `json:"term"`
	Scope string  `json:"scope"`
	Score float64 `json:"score"`
}

// PhraseStat is a frequent adjacent-token phrase (bigram or trigram).
type PhraseStat struct {
	Phrase string `json:"phrase"`
	Size   int    `json:"size"`
	Count  int    `json:"count"`
}

// TopicResults bundles everything the topic extractor produces over one
// corpus build.
type TopicResults struct {
	Assignments    []TopicAssignment `json:"assignments"`
	Words          []TopicWord       `json:"words"`
	CorpusKeywords []KeywordStat     `json:"corpus_keywords"`
	BankKeywords   []KeywordStat     `json:"bank_keywords"`
	Phrases        []PhraseStat      `json:"phrases"`
	// EffectiveTopicCount is the K the models were actually fit with; it is
	// lower than the configured K when the vocabulary was too small.
	EffectiveTopicCount int `json:"effective_topic_count"`
}
