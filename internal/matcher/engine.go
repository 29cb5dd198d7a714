package matcher

import (
	"fmt"

	"faqbot/internal/domain"
	"faqbot/internal/embedding"
	"faqbot/internal/textnorm"
)

// Model variant names accepted by Config.Variant.
const (
	VariantWholeToken = "whole-token"
	VariantSubword    = "subword"
)

// DefaultThreshold is the minimum similarity for a catalog entry to count
// as a match. An empirically chosen constant, not a tuned optimum.
const DefaultThreshold = 0.3

// DefaultFallback is returned when no catalog entry clears the threshold.
const DefaultFallback = "Atsiprašau, bet negaliu rasti tinkamo atsakymo į jūsų klausimą. " +
	"Prašome kreiptis į klientų aptarnavimo centrą telefonu 1888 arba atvykti į filialą."

// Config selects the model variant and tunes the engine.
// Zero fields take the defaults.
type Config struct {
	Variant        string
	VectorDim      int
	WindowSize     int
	MinTokenCount  int
	Epochs         int
	Threshold      float64
	Seed           int64
	Fallback       string
	ExtraStopwords []string
}

type engineState int

const (
	stateUninitialized engineState = iota
	stateTraining
	stateReady
)

// Engine answers free-text questions from a fixed catalog. New trains the
// embedding model over the catalog questions and precomputes one vector per
// entry; nothing is mutated afterwards, so concurrent Answer calls are
// safe. The zero value is unusable and reports domain.ErrNotReady.
type Engine struct {
	state     engineState
	norm      domain.Normalizer
	model     domain.Model
	entries   []domain.CatalogEntry
	table     [][]float64
	threshold float64
	fallback  string
}

// New constructs a ready engine from the catalog. It fails with
// domain.ErrEmptyCatalog for an empty catalog and domain.ErrEmptyCorpus
// when every question normalizes to nothing.
func New(entries []domain.CatalogEntry, cfg Config) (*Engine, error) {
	if len(entries) == 0 {
		return nil, domain.ErrEmptyCatalog
	}
	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.Fallback == "" {
		cfg.Fallback = DefaultFallback
	}

	trainCfg := embedding.Config{
		VectorDim:     cfg.VectorDim,
		WindowSize:    cfg.WindowSize,
		MinTokenCount: cfg.MinTokenCount,
		Epochs:        cfg.Epochs,
		Seed:          cfg.Seed,
	}
	var trainer domain.Trainer
	switch cfg.Variant {
	case VariantWholeToken, "":
		trainer = embedding.NewWord2Vec(trainCfg)
	case VariantSubword:
		trainer = embedding.NewFastText(trainCfg)
	default:
		return nil, fmt.Errorf("unknown model variant %q", cfg.Variant)
	}

	e := &Engine{
		state:     stateTraining,
		norm:      textnorm.New(cfg.ExtraStopwords...),
		entries:   entries,
		threshold: cfg.Threshold,
		fallback:  cfg.Fallback,
	}

	corpus := make([][]string, len(entries))
	for i, entry := range entries {
		corpus[i] = e.norm.Normalize(entry.Question)
	}
	if err := trainer.Train(corpus); err != nil {
		return nil, fmt.Errorf("train %s model: %w", trainer.Name(), err)
	}
	e.model = trainer

	e.table = make([][]float64, len(corpus))
	for i, tokens := range corpus {
		e.table[i] = embedding.Vectorize(e.model, tokens)
	}

	e.state = stateReady
	return e, nil
}

// Answer returns the answer of the best-matching catalog entry, or the
// fallback message when nothing clears the threshold. It never fails for
// any query string, including the empty one; the only error is
// domain.ErrNotReady on an engine that did not come from New.
func (e *Engine) Answer(query string) (domain.Answer, error) {
	res, err := e.Match(query)
	if err != nil {
		return domain.Answer{}, err
	}
	if !res.Matched {
		return domain.Answer{Text: e.fallback, Similarity: res.Similarity}, nil
	}
	return domain.Answer{
		Text:       e.entries[res.EntryIndex].Answer,
		Matched:    true,
		Similarity: res.Similarity,
	}, nil
}

// Match runs the ranking for query without resolving the answer text.
func (e *Engine) Match(query string) (domain.MatchResult, error) {
	if e.state != stateReady {
		return domain.MatchResult{EntryIndex: domain.NoEntry}, domain.ErrNotReady
	}
	vec := embedding.Vectorize(e.model, e.norm.Normalize(query))
	return Rank(vec, e.table, e.threshold), nil
}

// Entries exposes the catalog the engine was built from.
func (e *Engine) Entries() []domain.CatalogEntry { return e.entries }
