package embedding

import (
	"math/rand"
)

// Word2Vec is the whole-token model variant: skip-gram with negative
// sampling over complete tokens. Tokens unseen in training have no vector.
// Safe for concurrent reads once trained.
type Word2Vec struct {
	cfg     Config
	vocab   *vocabulary
	vectors [][]float64
	trained bool
}

// NewWord2Vec creates an untrained whole-token model. Zero config fields
// take the package defaults.
func NewWord2Vec(cfg Config) *Word2Vec {
	cfg.applyDefaults()
	return &Word2Vec{cfg: cfg}
}

func (m *Word2Vec) Name() string { return "word2vec" }

// Dimension returns the configured vector dimensionality.
func (m *Word2Vec) Dimension() int { return m.cfg.VectorDim }

// Train learns a vector per vocabulary token from the corpus. It fails with
// domain.ErrEmptyCorpus when the corpus holds no tokens.
func (m *Word2Vec) Train(corpus [][]string) error {
	vocab, err := buildVocabulary(corpus, m.cfg.MinTokenCount)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(m.cfg.Seed))

	vectors := make([][]float64, len(vocab.tokens))
	syn1 := make([][]float64, len(vocab.tokens))
	for i := range vectors {
		vectors[i] = newVector(rng, m.cfg.VectorDim)
		syn1[i] = make([]float64, m.cfg.VectorDim)
	}

	components := func(word int) [][]float64 {
		return [][]float64{vectors[word]}
	}
	trainSkipGram(m.cfg, vocab.encode(corpus), vocab.counts, components, syn1, rng)

	m.vocab = vocab
	m.vectors = vectors
	m.trained = true
	return nil
}

// VectorOf returns the trained vector for token, or (nil, false) when the
// token is out of vocabulary or the model is untrained. The returned slice
// is shared and must not be mutated.
func (m *Word2Vec) VectorOf(token string) ([]float64, bool) {
	if !m.trained {
		return nil, false
	}
	id, ok := m.vocab.index[token]
	if !ok {
		return nil, false
	}
	return m.vectors[id], true
}
