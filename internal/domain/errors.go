package domain

import "errors"

var (
	// ErrInvalidExample is returned when a training example is missing its term or category
	ErrInvalidExample = errors.New("training example requires both a search term and a category")

	// ErrEmptyQuery is returned when a search is requested with a blank query
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrModelNotTrained is returned when classification is requested before a model exists
	ErrModelNotTrained = errors.New("model has not been trained")

	// ErrNoTrainingData is returned when a training run collects zero documents
	ErrNoTrainingData = errors.New("no training data collected")

	// ErrSearchAPIFailure is returned when the search API request fails
	ErrSearchAPIFailure = errors.New("search API request failed")

	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
