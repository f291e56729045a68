package usecase

import (
	"strings"
	"sync"

	"github.com/seeker/backend/internal/domain"
)

// TrainingSet is the ordered, in-memory list of training examples.
// Duplicates are kept.
type TrainingSet struct {
	mu       sync.RWMutex
	examples []domain.TrainingExample
}

// NewTrainingSet creates a training set holding a copy of initial
func NewTrainingSet(initial []domain.TrainingExample) *TrainingSet {
	examples := make([]domain.TrainingExample, len(initial))
	copy(examples, initial)
	return &TrainingSet{examples: examples}
}

// Add trims both fields and appends the pair. It returns
// domain.ErrInvalidExample, leaving the set unchanged, if either is empty.
func (s *TrainingSet) Add(term, category string) (domain.TrainingExample, error) {
	ex := domain.TrainingExample{
		Term:     strings.TrimSpace(term),
		Category: strings.TrimSpace(category),
	}
	if ex.Term == "" || ex.Category == "" {
		return domain.TrainingExample{}, domain.ErrInvalidExample
	}

	s.mu.Lock()
	s.examples = append(s.examples, ex)
	s.mu.Unlock()

	return ex, nil
}

// Snapshot returns a copy of the examples in insertion order
func (s *TrainingSet) Snapshot() []domain.TrainingExample {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.TrainingExample, len(s.examples))
	copy(out, s.examples)
	return out
}

// Len returns the number of examples
func (s *TrainingSet) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.examples)
}
