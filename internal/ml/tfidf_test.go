package ml

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTFIDFVectorizer_Fit(t *testing.T) {
	v := NewTFIDFVectorizer()
	require.NoError(t, v.Fit([]string{"apple banana", "apple cherry", "apple"}))

	assert.Equal(t, 3, v.VocabularySize())

	// sorted vocabulary order
	for i, term := range []string{"apple", "banana", "cherry"} {
		idx, ok := v.Index(term)
		require.True(t, ok, term)
		assert.Equal(t, i, idx, term)
	}

	// apple appears in every doc: ln(4/4) + 1 = 1
	assert.InDelta(t, 1.0, v.idf[0], 1e-12)
	// banana appears in one: ln(4/2) + 1
	assert.InDelta(t, math.Log(2)+1, v.idf[1], 1e-12)
}

func TestTFIDFVectorizer_Transform(t *testing.T) {
	v := NewTFIDFVectorizer()
	require.NoError(t, v.Fit([]string{"apple banana", "apple cherry", "apple"}))

	t.Run("rows are L2 normalized", func(t *testing.T) {
		vec, err := v.Transform("apple banana banana")
		require.NoError(t, err)

		var norm float64
		for _, w := range vec {
			norm += w * w
		}
		assert.InDelta(t, 1.0, norm, 1e-12)

		// banana: count 2 * idf (ln2+1); apple: count 1 * idf 1
		banana := 2 * (math.Log(2) + 1)
		apple := 1.0
		l2 := math.Sqrt(banana*banana + apple*apple)
		assert.InDelta(t, banana/l2, vec[1], 1e-12)
		assert.InDelta(t, apple/l2, vec[0], 1e-12)
	})

	t.Run("unknown terms are ignored", func(t *testing.T) {
		vec, err := v.Transform("durian")
		require.NoError(t, err)
		assert.Empty(t, vec)
	})

	t.Run("fails before fit", func(t *testing.T) {
		_, err := NewTFIDFVectorizer().Transform("apple")
		assert.ErrorIs(t, err, ErrNotFitted)
	})
}

func TestTFIDFVectorizer_FitTransform(t *testing.T) {
	docs := []string{"nike football boots", "python programming language"}
	vecs, err := NewTFIDFVectorizer().FitTransform(docs)

	require.NoError(t, err)
	require.Len(t, vecs, 2)
	assert.Len(t, vecs[0], 3)
	assert.Len(t, vecs[1], 3)
}

func TestTFIDFVectorizer_EmptyVocabulary(t *testing.T) {
	tests := []struct {
		name string
		docs []string
	}{
		{name: "no documents", docs: nil},
		{name: "punctuation and single letters", docs: []string{"!!! ?", "a b c", " "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewTFIDFVectorizer()

			_, err := v.FitTransform(tt.docs)

			assert.ErrorIs(t, err, ErrEmptyVocabulary)
			assert.Equal(t, 0, v.VocabularySize())
			_, err = v.Transform("apple")
			assert.ErrorIs(t, err, ErrNotFitted)
		})
	}
}
