package domain

import "time"

// TrainingExample pairs a search term with the category its results belong to
type TrainingExample struct {
	Term     string `json:"term"`
	Category string `json:"category"`
}

// Document is one search result collected for a training example
type Document struct {
	Title       string
	Description string
	Category    string
}

// Text returns the string the vectorizer is fitted on
func (d Document) Text() string {
	return d.Title + " " + d.Description
}

// TermFailure records a training term whose search request failed
type TermFailure struct {
	Term  string `json:"term"`
	Error string `json:"error"`
}

// TrainReport summarizes a completed training run
type TrainReport struct {
	RunID        string        `json:"runId"`
	Examples     int           `json:"examples"`
	Documents    int           `json:"documents"`
	Failures     []TermFailure `json:"failures,omitempty"`
	Vocabulary   int           `json:"vocabulary"`
	Classes      []string      `json:"classes"`
	TrainSize    int           `json:"trainSize"`
	TestSize     int           `json:"testSize"`
	TestAccuracy float64       `json:"testAccuracy"`
	Duration     time.Duration `json:"duration"`
	CompletedAt  time.Time     `json:"completedAt"`
}
