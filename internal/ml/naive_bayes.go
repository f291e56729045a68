package ml

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// DefaultAlpha is the additive smoothing parameter
const DefaultAlpha = 1.0

// MultinomialNB is a multinomial Naive Bayes classifier over sparse
// non-negative feature vectors
type MultinomialNB struct {
	Alpha float64

	classes        []string
	classLogPrior  []float64
	featureLogProb [][]float64 // [class][feature]
	numFeatures    int
}

// NewMultinomialNB creates a classifier with DefaultAlpha smoothing
func NewMultinomialNB() *MultinomialNB {
	return &MultinomialNB{Alpha: DefaultAlpha}
}

// Fit trains the classifier. numFeatures is the vocabulary size; every
// index in X must be below it.
func (nb *MultinomialNB) Fit(X []SparseVector, y []string, numFeatures int) error {
	if len(X) == 0 {
		return errors.New("ml: cannot fit on zero samples")
	}
	if len(X) != len(y) {
		return fmt.Errorf("ml: %d samples but %d labels", len(X), len(y))
	}
	if numFeatures <= 0 {
		return fmt.Errorf("ml: numFeatures must be positive, got %d", numFeatures)
	}
	if nb.Alpha < 0 {
		return fmt.Errorf("ml: alpha must be non-negative, got %v", nb.Alpha)
	}

	classIndex := make(map[string]int)
	for _, label := range y {
		classIndex[label] = 0
	}
	classes := make([]string, 0, len(classIndex))
	for label := range classIndex {
		classes = append(classes, label)
	}
	sort.Strings(classes)
	for i, label := range classes {
		classIndex[label] = i
	}

	classCount := make([]float64, len(classes))
	featureCount := make([][]float64, len(classes))
	for i := range featureCount {
		featureCount[i] = make([]float64, numFeatures)
	}

	for i, vec := range X {
		c := classIndex[y[i]]
		classCount[c]++
		for idx, w := range vec {
			if idx < 0 || idx >= numFeatures {
				return fmt.Errorf("ml: feature index %d out of range [0, %d)", idx, numFeatures)
			}
			featureCount[c][idx] += w
		}
	}

	total := float64(len(X))
	nb.classes = classes
	nb.numFeatures = numFeatures
	nb.classLogPrior = make([]float64, len(classes))
	nb.featureLogProb = make([][]float64, len(classes))
	for c := range classes {
		nb.classLogPrior[c] = math.Log(classCount[c] / total)

		var sum float64
		for _, fc := range featureCount[c] {
			sum += fc + nb.Alpha
		}
		logSum := math.Log(sum)

		row := make([]float64, numFeatures)
		for j, fc := range featureCount[c] {
			row[j] = math.Log(fc+nb.Alpha) - logSum
		}
		nb.featureLogProb[c] = row
	}

	return nil
}

// jointLogLikelihood returns the unnormalized log posterior per class
func (nb *MultinomialNB) jointLogLikelihood(x SparseVector) []float64 {
	jll := make([]float64, len(nb.classes))
	for c := range nb.classes {
		score := nb.classLogPrior[c]
		for idx, w := range x {
			if idx >= 0 && idx < nb.numFeatures {
				score += w * nb.featureLogProb[c][idx]
			}
		}
		jll[c] = score
	}
	return jll
}

// Predict returns the most likely class for x. Ties go to the class that
// sorts first.
func (nb *MultinomialNB) Predict(x SparseVector) (string, error) {
	if len(nb.classes) == 0 {
		return "", ErrNotFitted
	}

	jll := nb.jointLogLikelihood(x)
	best := 0
	for c := 1; c < len(jll); c++ {
		if jll[c] > jll[best] {
			best = c
		}
	}
	return nb.classes[best], nil
}

// PredictProba returns the posterior probability of every class
func (nb *MultinomialNB) PredictProba(x SparseVector) (map[string]float64, error) {
	if len(nb.classes) == 0 {
		return nil, ErrNotFitted
	}

	jll := nb.jointLogLikelihood(x)
	maxLL := jll[0]
	for _, v := range jll[1:] {
		if v > maxLL {
			maxLL = v
		}
	}

	var sum float64
	for _, v := range jll {
		sum += math.Exp(v - maxLL)
	}
	logNorm := maxLL + math.Log(sum)

	probs := make(map[string]float64, len(nb.classes))
	for c, label := range nb.classes {
		probs[label] = math.Exp(jll[c] - logNorm)
	}
	return probs, nil
}

// Classes returns the known class labels in sorted order
func (nb *MultinomialNB) Classes() []string {
	out := make([]string, len(nb.classes))
	copy(out, nb.classes)
	return out
}
