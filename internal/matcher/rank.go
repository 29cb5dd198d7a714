package matcher

import (
	"math"

	"faqbot/internal/domain"
)

// Cosine returns the cosine similarity of a and b. It is 0.0 when either
// vector has zero norm, so a "no signal" query never divides by zero.
func Cosine(a, b []float64) float64 {
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0.0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}

// Rank scores query against every vector in table and selects the best
// entry. Among exact similarity ties the lowest index wins. The result is
// matched only when the best similarity reaches threshold; an empty table
// yields an unmatched result.
func Rank(query []float64, table [][]float64, threshold float64) domain.MatchResult {
	best := domain.NoEntry
	bestSim := 0.0
	for i, vec := range table {
		sim := Cosine(query, vec)
		if best == domain.NoEntry || sim > bestSim {
			best = i
			bestSim = sim
		}
	}
	if best == domain.NoEntry {
		return domain.MatchResult{EntryIndex: domain.NoEntry}
	}
	if bestSim >= threshold {
		return domain.MatchResult{EntryIndex: best, Similarity: bestSim, Matched: true}
	}
	return domain.MatchResult{EntryIndex: domain.NoEntry, Similarity: bestSim}
}
