package domain

import "errors"

var (
	// ErrEmptyCatalog is returned when the engine is constructed with a
	// catalog that has no entries.
	ErrEmptyCatalog = errors.New("catalog has no entries")

	// ErrEmptyCorpus is returned when every catalog question normalizes to
	// nothing, leaving no tokens to train on.
	ErrEmptyCorpus = errors.New("no tokens in training corpus")

	// ErrNotReady is returned when Answer is called on an engine that was
	// never constructed through matcher.New.
	ErrNotReady = errors.New("engine not ready")
)
