package ml

import (
	"math"
	"math/rand"
)

// DefaultTestSize and DefaultSeed give the 80/20 split used for training
const (
	DefaultTestSize = 0.2
	DefaultSeed     = 42
)

// TrainTestSplit shuffles the indices 0..n-1 with seed and returns the
// train and test partitions. The test partition holds ceil(n*testSize)
// indices, reduced if needed so at least one training index remains.
func TrainTestSplit(n int, testSize float64, seed int64) (train, test []int) {
	if n <= 0 {
		return nil, nil
	}

	nTest := int(math.Ceil(float64(n) * testSize))
	if nTest < 0 {
		nTest = 0
	}
	if nTest > n-1 {
		nTest = n - 1
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	return perm[nTest:], perm[:nTest]
}

// Accuracy returns the fraction of X predicted as y.
// It is zero when X is empty.
func Accuracy(nb *MultinomialNB, X []SparseVector, y []string) (float64, error) {
	if len(X) == 0 {
		return 0, nil
	}

	correct := 0
	for i, x := range X {
		pred, err := nb.Predict(x)
		if err != nil {
			return 0, err
		}
		if pred == y[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(X)), nil
}
