package ml

import (
	"errors"
	"math"
	"sort"
)

var (
	// ErrNotFitted is returned when a model is used before Fit
	ErrNotFitted = errors.New("ml: model is not fitted")
	// ErrEmptyVocabulary is returned by Fit when no document has a token
	ErrEmptyVocabulary = errors.New("ml: empty vocabulary, documents contain no tokens")
)

// SparseVector maps a vocabulary index to its weight. Absent indices are zero.
type SparseVector map[int]float64

// TFIDFVectorizer converts documents to L2-normalized TF-IDF vectors
type TFIDFVectorizer struct {
	vocabulary map[string]int
	idf        []float64
}

// NewTFIDFVectorizer creates an unfitted vectorizer
func NewTFIDFVectorizer() *TFIDFVectorizer {
	return &TFIDFVectorizer{}
}

// Fit learns the vocabulary and inverse document frequencies of docs.
// Vocabulary indices are assigned in sorted term order. When docs yield no
// token Fit returns ErrEmptyVocabulary and leaves v unchanged.
func (v *TFIDFVectorizer) Fit(docs []string) error {
	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, token := range Tokenize(doc) {
			if !seen[token] {
				seen[token] = true
				docFreq[token]++
			}
		}
	}

	if len(docFreq) == 0 {
		return ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(docFreq))
	for term := range docFreq {
		terms = append(terms, term)
	}
	sort.Strings(terms)

	n := float64(len(docs))
	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for i, term := range terms {
		v.vocabulary[term] = i
		// smoothed idf = ln((1 + n) / (1 + df)) + 1
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
	return nil
}

// Transform vectorizes one document. Terms outside the vocabulary are ignored.
func (v *TFIDFVectorizer) Transform(doc string) (SparseVector, error) {
	if v.vocabulary == nil {
		return nil, ErrNotFitted
	}

	vec := make(SparseVector)
	for _, token := range Tokenize(doc) {
		if idx, ok := v.vocabulary[token]; ok {
			vec[idx]++
		}
	}

	var norm float64
	for idx, count := range vec {
		w := count * v.idf[idx]
		vec[idx] = w
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for idx := range vec {
			vec[idx] /= norm
		}
	}

	return vec, nil
}

// FitTransform fits on docs and returns their vectors
func (v *TFIDFVectorizer) FitTransform(docs []string) ([]SparseVector, error) {
	if err := v.Fit(docs); err != nil {
		return nil, err
	}

	out := make([]SparseVector, len(docs))
	for i, doc := range docs {
		vec, err := v.Transform(doc)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

// VocabularySize returns the number of learned terms
func (v *TFIDFVectorizer) VocabularySize() int {
	return len(v.idf)
}

// Index returns the vocabulary index of term
func (v *TFIDFVectorizer) Index(term string) (int, bool) {
	idx, ok := v.vocabulary[term]
	return idx, ok
}
