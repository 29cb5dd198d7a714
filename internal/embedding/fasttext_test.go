package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faqbot/internal/domain"
)

func TestFastTextTrainEmptyCorpus(t *testing.T) {
	m := NewFastText(Config{})
	assert.ErrorIs(t, m.Train(nil), domain.ErrEmptyCorpus)
}

func TestFastTextCoversTrainingVocabulary(t *testing.T) {
	m := NewFastText(Config{VectorDim: 30, Seed: 7})
	require.NoError(t, m.Train(testCorpus()))

	assert.Equal(t, 30, m.Dimension())
	for _, sentence := range testCorpus() {
		for _, tok := range sentence {
			vec, ok := m.VectorOf(tok)
			assert.True(t, ok)
			assert.Len(t, vec, 30)
		}
	}
}

func TestFastTextSynthesizesOutOfVocabularyVectors(t *testing.T) {
	m := NewFastText(Config{VectorDim: 30, Seed: 7})
	require.NoError(t, m.Train(testCorpus()))

	// Shares subwords with "sąskaitą" from the corpus.
	vec, ok := m.VectorOf("sąskaitėlė")
	require.True(t, ok)
	require.Len(t, vec, 30)
	nonZero := false
	for _, v := range vec {
		if v != 0 {
			nonZero = true
			break
		}
	}
	assert.True(t, nonZero, "overlapping subwords should give a non-zero vector")

	// No shared subwords at all still yields a defined vector.
	vec, ok = m.VectorOf("xyzzy")
	assert.True(t, ok)
	assert.Len(t, vec, 30)
}

func TestFastTextEmptyTokenHasNoVector(t *testing.T) {
	m := NewFastText(Config{Seed: 7})
	require.NoError(t, m.Train(testCorpus()))

	_, ok := m.VectorOf("")
	assert.False(t, ok)
}

func TestFastTextDeterministicForFixedSeed(t *testing.T) {
	a := NewFastText(Config{VectorDim: 30, Seed: 42})
	b := NewFastText(Config{VectorDim: 30, Seed: 42})
	require.NoError(t, a.Train(testCorpus()))
	require.NoError(t, b.Train(testCorpus()))

	for _, tok := range []string{"sąskaitą", "banko", "pavedimas", "nematytas"} {
		va, okA := a.VectorOf(tok)
		vb, okB := b.VectorOf(tok)
		assert.Equal(t, okA, okB)
		assert.Equal(t, va, vb, "token %q should resolve identically", tok)
	}
}

func TestNgramHashesBoundedAndDeterministic(t *testing.T) {
	first := ngramHashes("sąskaita")
	assert.NotEmpty(t, first)
	for _, h := range first {
		assert.Less(t, h, uint32(gramBuckets))
	}
	assert.Equal(t, first, ngramHashes("sąskaita"))
}
