package embedding

import (
	"math"
	"math/rand"
	"sort"

	"faqbot/internal/domain"
)

// Config holds the training hyperparameters shared by both model variants.
type Config struct {
	VectorDim     int
	WindowSize    int
	MinTokenCount int
	Epochs        int
	Seed          int64
}

// Defaults mirror the values the matcher was tuned with.
const (
	DefaultVectorDim     = 100
	DefaultWindowSize    = 5
	DefaultMinTokenCount = 1
	DefaultEpochs        = 15
	DefaultSeed          = 1
)

// Training constants not worth exposing: negative-sampling count, starting
// learning rate and its floor, unigram table smoothing and size.
const (
	negativeSamples  = 5
	startAlpha       = 0.025
	minAlphaFraction = 1e-4
	unigramPower     = 0.75
	unigramTableSize = 10_000
)

func (c *Config) applyDefaults() {
	if c.VectorDim <= 0 {
		c.VectorDim = DefaultVectorDim
	}
	if c.WindowSize <= 0 {
		c.WindowSize = DefaultWindowSize
	}
	if c.MinTokenCount <= 0 {
		c.MinTokenCount = DefaultMinTokenCount
	}
	if c.Epochs <= 0 {
		c.Epochs = DefaultEpochs
	}
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
}

// vocabulary is the token inventory built from a corpus. Tokens are ordered
// by descending corpus frequency with a lexicographic tie-break so that
// training is reproducible regardless of map iteration order.
type vocabulary struct {
	index  map[string]int
	tokens []string
	counts []int
}

func buildVocabulary(corpus [][]string, minCount int) (*vocabulary, error) {
	freq := make(map[string]int)
	total := 0
	for _, sentence := range corpus {
		for _, tok := range sentence {
			freq[tok]++
			total++
		}
	}
	if total == 0 {
		return nil, domain.ErrEmptyCorpus
	}
	tokens := make([]string, 0, len(freq))
	for tok, c := range freq {
		if c >= minCount {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return nil, domain.ErrEmptyCorpus
	}
	sort.Slice(tokens, func(i, j int) bool {
		if freq[tokens[i]] != freq[tokens[j]] {
			return freq[tokens[i]] > freq[tokens[j]]
		}
		return tokens[i] < tokens[j]
	})
	v := &vocabulary{
		index:  make(map[string]int, len(tokens)),
		tokens: tokens,
		counts: make([]int, len(tokens)),
	}
	for i, tok := range tokens {
		v.index[tok] = i
		v.counts[i] = freq[tok]
	}
	return v, nil
}

// encode maps sentences to vocabulary ids, dropping tokens below min count.
func (v *vocabulary) encode(corpus [][]string) [][]int {
	encoded := make([][]int, 0, len(corpus))
	for _, sentence := range corpus {
		ids := make([]int, 0, len(sentence))
		for _, tok := range sentence {
			if id, ok := v.index[tok]; ok {
				ids = append(ids, id)
			}
		}
		encoded = append(encoded, ids)
	}
	return encoded
}

// unigramTable builds the negative-sampling table with frequencies raised to
// unigramPower, following the word2vec convention.
func unigramTable(counts []int) []int {
	table := make([]int, unigramTableSize)
	pows := make([]float64, len(counts))
	total := 0.0
	for i, c := range counts {
		pows[i] = math.Pow(float64(c), unigramPower)
		total += pows[i]
	}
	word := 0
	cum := pows[0] / total
	for i := range table {
		table[i] = word
		if float64(i)/float64(len(table)) > cum && word < len(counts)-1 {
			word++
			cum += pows[word] / total
		}
	}
	return table
}

// newVector draws initial components uniformly from (-0.5/dim, 0.5/dim).
func newVector(rng *rand.Rand, dim int) []float64 {
	v := make([]float64, dim)
	for i := range v {
		v[i] = (rng.Float64() - 0.5) / float64(dim)
	}
	return v
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}

func dot(a, b []float64) float64 {
	sum := 0.0
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// trainSkipGram runs skip-gram with negative sampling over an encoded
// corpus. The input side of each center word is the mean of its component
// vectors as supplied by components; gradients are written back to those
// same slices, and to the output matrix syn1. A single seeded rng drives
// window shrinking and negative sampling, so the run is deterministic.
func trainSkipGram(cfg Config, corpus [][]int, counts []int, components func(word int) [][]float64, syn1 [][]float64, rng *rand.Rand) {
	table := unigramTable(counts)
	tokensPerEpoch := 0
	for _, sentence := range corpus {
		tokensPerEpoch += len(sentence)
	}
	totalTokens := cfg.Epochs * tokensPerEpoch
	processed := 0

	hidden := make([]float64, cfg.VectorDim)
	grad := make([]float64, cfg.VectorDim)

	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		for _, sentence := range corpus {
			for pos, center := range sentence {
				alpha := startAlpha * (1.0 - float64(processed)/float64(totalTokens+1))
				if alpha < startAlpha*minAlphaFraction {
					alpha = startAlpha * minAlphaFraction
				}
				processed++

				comps := components(center)
				inv := 1.0 / float64(len(comps))

				window := rng.Intn(cfg.WindowSize) + 1
				for off := -window; off <= window; off++ {
					if off == 0 {
						continue
					}
					ctxPos := pos + off
					if ctxPos < 0 || ctxPos >= len(sentence) {
						continue
					}
					ctx := sentence[ctxPos]

					for i := range hidden {
						hidden[i] = 0
					}
					for _, c := range comps {
						for i := range hidden {
							hidden[i] += c[i]
						}
					}
					for i := range hidden {
						hidden[i] *= inv
					}

					for i := range grad {
						grad[i] = 0
					}
					for s := 0; s <= negativeSamples; s++ {
						var target int
						var label float64
						if s == 0 {
							target = ctx
							label = 1
						} else {
							target = table[rng.Intn(len(table))]
							if target == ctx {
								continue
							}
							label = 0
						}
						out := syn1[target]
						g := (label - sigmoid(dot(hidden, out))) * alpha
						for i := range grad {
							grad[i] += g * out[i]
						}
						for i := range out {
							out[i] += g * hidden[i]
						}
					}
					// The hidden layer is a mean, so each component takes
					// the gradient scaled by the same factor.
					for _, c := range comps {
						for i := range c {
							c[i] += grad[i] * inv
						}
					}
				}
			}
		}
	}
}
