package domain

// CatalogEntry is a single question/answer pair loaded from the FAQ catalog.
// Entries are identified by their position in the catalog.
type CatalogEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NoEntry marks a MatchResult that selected no catalog entry.
const NoEntry = -1

// MatchResult is the outcome of ranking one query against the catalog.
type MatchResult struct {
	EntryIndex int
	Similarity float64
	Matched    bool
}

// Answer is what the engine returns for a user query: either the matched
// catalog answer or the fallback message.
type Answer struct {
	Text       string
	Matched    bool
	Similarity float64
}

// Normalizer turns raw text into a cleaned token sequence.
type Normalizer interface {
	Normalize(text string) []string
}

// Model is a trained embedding model mapping tokens to dense vectors.
// Implementations must be safe for concurrent reads once trained.
type Model interface {
	Name() string
	Dimension() int
	// VectorOf reports the vector for a token. The second return value is
	// false when the token has no vector (out of vocabulary).
	VectorOf(token string) ([]float64, bool)
}

// Trainer is a Model that learns its vectors from a token corpus.
type Trainer interface {
	Model
	Train(corpus [][]string) error
}
