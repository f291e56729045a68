package ml

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrainTestSplit(t *testing.T) {
	tests := []struct {
		name      string
		n         int
		testSize  float64
		wantTrain int
		wantTest  int
	}{
		{name: "80/20 of 45", n: 45, testSize: 0.2, wantTrain: 36, wantTest: 9},
		{name: "rounds test size up", n: 11, testSize: 0.2, wantTrain: 8, wantTest: 3},
		{name: "single sample stays in train", n: 1, testSize: 0.2, wantTrain: 1, wantTest: 0},
		{name: "zero test size", n: 10, testSize: 0, wantTrain: 10, wantTest: 0},
		{name: "empty", n: 0, testSize: 0.2, wantTrain: 0, wantTest: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			train, test := TrainTestSplit(tt.n, tt.testSize, DefaultSeed)
			assert.Len(t, train, tt.wantTrain)
			assert.Len(t, test, tt.wantTest)

			all := append(append([]int{}, train...), test...)
			sort.Ints(all)
			for i, idx := range all {
				assert.Equal(t, i, idx)
			}
		})
	}
}

func TestTrainTestSplit_Deterministic(t *testing.T) {
	train1, test1 := TrainTestSplit(100, 0.2, 42)
	train2, test2 := TrainTestSplit(100, 0.2, 42)
	assert.Equal(t, train1, train2)
	assert.Equal(t, test1, test2)

	_, test3 := TrainTestSplit(100, 0.2, 7)
	assert.NotEqual(t, test1, test3)
}

func TestAccuracy_Empty(t *testing.T) {
	acc, err := Accuracy(NewMultinomialNB(), nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, acc)
}
