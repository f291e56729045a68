package ml

// Model is a fitted vectorizer and classifier pair
type Model struct {
	Vectorizer *TFIDFVectorizer
	Classifier *MultinomialNB
}

// Predict classifies a raw text
func (m *Model) Predict(text string) (string, error) {
	if m == nil || m.Vectorizer == nil || m.Classifier == nil {
		return "", ErrNotFitted
	}

	vec, err := m.Vectorizer.Transform(text)
	if err != nil {
		return "", err
	}
	return m.Classifier.Predict(vec)
}
