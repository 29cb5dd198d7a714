package textnorm

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// minTokenRunes drops very short tokens which carry no signal for matching
// (single letters, two-letter particles).
const minTokenRunes = 3

// Normalizer turns raw text into a cleaned token sequence: lowercase,
// NFC-normalized, letter tokens only, stopwords and short tokens removed.
// It is stateless after construction and safe for concurrent use.
type Normalizer struct {
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
}

// New creates a Normalizer with the built-in Lithuanian stopword set plus
// any extra stopwords supplied by the caller.
func New(extra ...string) *Normalizer {
	stop := lithuanianStopwords()
	for _, w := range extra {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			stop[w] = struct{}{}
		}
	}
	return &Normalizer{
		tokenPattern: regexp.MustCompile(`\p{L}+`),
		stopwords:    stop,
	}
}

// Normalize returns the cleaned tokens of text in order of appearance.
// Empty or all-stopword input yields an empty slice, never an error.
func (n *Normalizer) Normalize(text string) []string {
	// NFC first so that decomposed diacritics (a + combining ogonek) and
	// composed ones (ą) tokenize identically.
	lower := strings.ToLower(norm.NFC.String(text))
	raw := n.tokenPattern.FindAllString(lower, -1)
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if utf8.RuneCountInString(tok) < minTokenRunes {
			continue
		}
		if _, isStop := n.stopwords[tok]; isStop {
			continue
		}
		out = append(out, tok)
	}
	return out
}
