package embedding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faqbot/internal/domain"
)

func testCorpus() [][]string {
	return [][]string{
		{"atidaryti", "sąskaitą", "banke"},
		{"sąskaitos", "valdymo", "mokesčiai"},
		{"internetinio", "banko", "prieiga"},
		{"pavedimas", "kitą", "banką", "kainuoja"},
		{"pakeisti", "kortelės", "pin", "kodą"},
	}
}

func TestWord2VecTrainEmptyCorpus(t *testing.T) {
	m := NewWord2Vec(Config{})
	assert.ErrorIs(t, m.Train(nil), domain.ErrEmptyCorpus)

	m = NewWord2Vec(Config{})
	assert.ErrorIs(t, m.Train([][]string{{}, {}}), domain.ErrEmptyCorpus)
}

func TestWord2VecCoversTrainingVocabulary(t *testing.T) {
	m := NewWord2Vec(Config{VectorDim: 50, Seed: 7})
	require.NoError(t, m.Train(testCorpus()))

	assert.Equal(t, 50, m.Dimension())
	for _, sentence := range testCorpus() {
		for _, tok := range sentence {
			vec, ok := m.VectorOf(tok)
			assert.True(t, ok, "token %q should be in vocabulary", tok)
			assert.Len(t, vec, 50)
		}
	}
}

func TestWord2VecOutOfVocabulary(t *testing.T) {
	m := NewWord2Vec(Config{Seed: 7})
	require.NoError(t, m.Train(testCorpus()))

	vec, ok := m.VectorOf("nematytas")
	assert.False(t, ok)
	assert.Nil(t, vec)
}

func TestWord2VecUntrainedHasNoVectors(t *testing.T) {
	m := NewWord2Vec(Config{})
	_, ok := m.VectorOf("sąskaitą")
	assert.False(t, ok)
}

func TestWord2VecDeterministicForFixedSeed(t *testing.T) {
	a := NewWord2Vec(Config{VectorDim: 40, Seed: 42})
	b := NewWord2Vec(Config{VectorDim: 40, Seed: 42})
	require.NoError(t, a.Train(testCorpus()))
	require.NoError(t, b.Train(testCorpus()))

	for _, sentence := range testCorpus() {
		for _, tok := range sentence {
			va, _ := a.VectorOf(tok)
			vb, _ := b.VectorOf(tok)
			assert.Equal(t, va, vb, "token %q should train identically", tok)
		}
	}
}

func TestWord2VecSeedChangesVectors(t *testing.T) {
	a := NewWord2Vec(Config{VectorDim: 40, Seed: 1})
	b := NewWord2Vec(Config{VectorDim: 40, Seed: 2})
	require.NoError(t, a.Train(testCorpus()))
	require.NoError(t, b.Train(testCorpus()))

	va, _ := a.VectorOf("sąskaitą")
	vb, _ := b.VectorOf("sąskaitą")
	assert.NotEqual(t, va, vb)
}

func TestWord2VecMinTokenCountFiltersRareTokens(t *testing.T) {
	corpus := [][]string{
		{"bankas", "sąskaita"},
		{"bankas", "kortelė"},
		{"bankas", "sąskaita"},
	}
	m := NewWord2Vec(Config{MinTokenCount: 2, Seed: 3})
	require.NoError(t, m.Train(corpus))

	_, ok := m.VectorOf("bankas")
	assert.True(t, ok)
	_, ok = m.VectorOf("sąskaita")
	assert.True(t, ok)
	_, ok = m.VectorOf("kortelė")
	assert.False(t, ok, "below-min-count token should be out of vocabulary")
}

func TestWord2VecSingleTokenCorpus(t *testing.T) {
	m := NewWord2Vec(Config{Seed: 5})
	require.NoError(t, m.Train([][]string{{"sąskaita"}}))

	vec, ok := m.VectorOf("sąskaita")
	assert.True(t, ok)
	assert.Len(t, vec, DefaultVectorDim)
}
