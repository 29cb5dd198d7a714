package embedding

import (
	"hash/fnv"
	"math/rand"
)

// Character n-gram extraction bounds and the shared bucket space for n-gram
// vectors, following the fastText convention scaled down to catalog-sized
// corpora.
const (
	minGram     = 3
	maxGram     = 6
	gramBuckets = 100_003
)

// FastText is the subword model variant: skip-gram where every token is
// represented by its own vector plus shared character n-gram bucket vectors.
// Tokens unseen in training get a vector synthesized from their n-grams, so
// VectorOf never reports a non-empty token as missing.
// Safe for concurrent reads once trained.
type FastText struct {
	cfg   Config
	vocab *vocabulary
	// tokenVecs holds the precomputed word+grams mean per vocabulary token;
	// bucketVecs holds the trained n-gram bucket vectors.
	tokenVecs  [][]float64
	bucketVecs map[uint32][]float64
	trained    bool
}

// NewFastText creates an untrained subword model. Zero config fields take
// the package defaults.
func NewFastText(cfg Config) *FastText {
	cfg.applyDefaults()
	return &FastText{cfg: cfg}
}

func (m *FastText) Name() string { return "fasttext" }

// Dimension returns the configured vector dimensionality.
func (m *FastText) Dimension() int { return m.cfg.VectorDim }

// Train learns token and n-gram vectors from the corpus. It fails with
// domain.ErrEmptyCorpus when the corpus holds no tokens.
func (m *FastText) Train(corpus [][]string) error {
	vocab, err := buildVocabulary(corpus, m.cfg.MinTokenCount)
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(m.cfg.Seed))

	wordVecs := make([][]float64, len(vocab.tokens))
	syn1 := make([][]float64, len(vocab.tokens))
	for i := range wordVecs {
		wordVecs[i] = newVector(rng, m.cfg.VectorDim)
		syn1[i] = make([]float64, m.cfg.VectorDim)
	}

	// Bucket vectors are allocated in vocabulary order so that a fixed seed
	// yields identical initial state run to run.
	buckets := make(map[uint32][]float64)
	wordComps := make([][][]float64, len(vocab.tokens))
	for i, tok := range vocab.tokens {
		comps := [][]float64{wordVecs[i]}
		for _, h := range ngramHashes(tok) {
			vec, ok := buckets[h]
			if !ok {
				vec = newVector(rng, m.cfg.VectorDim)
				buckets[h] = vec
			}
			comps = append(comps, vec)
		}
		wordComps[i] = comps
	}

	components := func(word int) [][]float64 {
		return wordComps[word]
	}
	trainSkipGram(m.cfg, vocab.encode(corpus), vocab.counts, components, syn1, rng)

	tokenVecs := make([][]float64, len(vocab.tokens))
	for i := range tokenVecs {
		tokenVecs[i] = meanOf(wordComps[i], m.cfg.VectorDim)
	}

	m.vocab = vocab
	m.tokenVecs = tokenVecs
	m.bucketVecs = buckets
	m.trained = true
	return nil
}

// VectorOf returns the vector for token. In-vocabulary tokens get their
// trained vector; out-of-vocabulary tokens get the mean of their trained
// n-gram bucket vectors, or the zero vector when no n-gram was seen in
// training. Only the untrained model or an empty token yields (nil, false).
// The returned slice must not be mutated.
func (m *FastText) VectorOf(token string) ([]float64, bool) {
	if !m.trained || token == "" {
		return nil, false
	}
	if id, ok := m.vocab.index[token]; ok {
		return m.tokenVecs[id], true
	}
	var known [][]float64
	for _, h := range ngramHashes(token) {
		if vec, ok := m.bucketVecs[h]; ok {
			known = append(known, vec)
		}
	}
	if len(known) == 0 {
		return make([]float64, m.cfg.VectorDim), true
	}
	return meanOf(known, m.cfg.VectorDim), true
}

// ngramHashes returns the bucket ids of the character n-grams of token,
// computed over the boundary-marked form "<token>".
func ngramHashes(token string) []uint32 {
	runes := []rune("<" + token + ">")
	var out []uint32
	for n := minGram; n <= maxGram; n++ {
		for i := 0; i+n <= len(runes); i++ {
			h := fnv.New32a()
			h.Write([]byte(string(runes[i : i+n])))
			out = append(out, h.Sum32()%gramBuckets)
		}
	}
	return out
}

func meanOf(vecs [][]float64, dim int) []float64 {
	out := make([]float64, dim)
	for _, v := range vecs {
		for i := range out {
			out[i] += v[i]
		}
	}
	inv := 1.0 / float64(len(vecs))
	for i := range out {
		out[i] *= inv
	}
	return out
}
