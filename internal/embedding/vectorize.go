package embedding

import "faqbot/internal/domain"

// Vectorize maps a token sequence to a single question vector: the
// per-dimension arithmetic mean over the vectors of all tokens the model
// knows. Tokens without a vector are skipped; when nothing contributes the
// result is the all-zero vector of the model's dimension, which callers
// treat as "no signal" rather than an error.
func Vectorize(model domain.Model, tokens []string) []float64 {
	out := make([]float64, model.Dimension())
	contributed := 0
	for _, tok := range tokens {
		vec, ok := model.VectorOf(tok)
		if !ok {
			continue
		}
		for i := range out {
			out[i] += vec[i]
		}
		contributed++
	}
	if contributed == 0 {
		return out
	}
	inv := 1.0 / float64(contributed)
	for i := range out {
		out[i] *= inv
	}
	return out
}
