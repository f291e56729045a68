package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/seeker/backend/internal/domain"
	"github.com/seeker/backend/internal/metrics"
	"github.com/seeker/backend/internal/ml"
	"go.uber.org/zap"
)

// ClassifierServiceConfig holds configuration for the classifier service
type ClassifierServiceConfig struct {
	TestSize float64
	Seed     int64
}

// ClassifierService owns the training set and the fitted model. It
// collects training documents from the search API, fits the model and
// classifies ad-hoc query results.
type ClassifierService struct {
	client   domain.SearchClient
	examples *TrainingSet
	config   ClassifierServiceConfig
	logger   *zap.Logger

	// model is nil until the first successful Train and is swapped whole
	model      atomic.Pointer[ml.Model]
	lastReport atomic.Pointer[domain.TrainReport]
	trainMu    sync.Mutex

	now func() time.Time
}

// NewClassifierService creates a classifier service seeded with examples
func NewClassifierService(
	client domain.SearchClient,
	examples []domain.TrainingExample,
	config ClassifierServiceConfig,
	logger *zap.Logger,
) *ClassifierService {
	if config.TestSize < 0 || config.TestSize >= 1 {
		config.TestSize = ml.DefaultTestSize
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ClassifierService{
		client:   client,
		examples: NewTrainingSet(examples),
		config:   config,
		logger:   logger.Named("classifier"),
		now:      time.Now,
	}
}

// AddExample appends a (term, category) pair to the training set
func (s *ClassifierService) AddExample(term, category string) (domain.TrainingExample, error) {
	ex, err := s.examples.Add(term, category)
	if err != nil {
		return ex, err
	}

	s.logger.Info("training example added",
		zap.String("term", ex.Term),
		zap.String("category", ex.Category),
		zap.Int("examples", s.examples.Len()))
	return ex, nil
}

// Examples returns the training set in insertion order
func (s *ClassifierService) Examples() []domain.TrainingExample {
	return s.examples.Snapshot()
}

// Trained reports whether a model has been fitted
func (s *ClassifierService) Trained() bool {
	return s.model.Load() != nil
}

// LastReport returns the report of the last successful training run, or nil
func (s *ClassifierService) LastReport() *domain.TrainReport {
	return s.lastReport.Load()
}

// Train searches every training term, fits a new model on the collected
// results and publishes it. A term whose search fails is recorded in the
// report and skipped. If nothing is collected the previous model is kept
// and domain.ErrNoTrainingData is returned with the report.
func (s *ClassifierService) Train(ctx context.Context) (*domain.TrainReport, error) {
	s.trainMu.Lock()
	defer s.trainMu.Unlock()

	start := s.now()
	examples := s.examples.Snapshot()
	report := &domain.TrainReport{
		RunID:    uuid.NewString(),
		Examples: len(examples),
	}
	logger := s.logger.With(zap.String("run_id", report.RunID))
	logger.Info("training started", zap.Int("examples", len(examples)))

	docs, err := s.collect(ctx, examples, report, logger)
	if err != nil {
		metrics.TrainRuns.WithLabelValues("error").Inc()
		return report, err
	}
	report.Documents = len(docs)

	if len(docs) == 0 {
		metrics.TrainRuns.WithLabelValues("no_data").Inc()
		logger.Warn("no documents collected, keeping previous model",
			zap.Int("failures", len(report.Failures)))
		return report, domain.ErrNoTrainingData
	}

	model, err := s.fit(docs, report)
	if err != nil {
		result := "error"
		if errors.Is(err, domain.ErrNoTrainingData) {
			result = "no_data"
		}
		metrics.TrainRuns.WithLabelValues(result).Inc()
		logger.Warn("fit failed, keeping previous model", zap.Error(err))
		return report, err
	}

	report.Duration = s.now().Sub(start)
	report.CompletedAt = s.now()
	s.model.Store(model)
	s.lastReport.Store(report)

	metrics.TrainRuns.WithLabelValues("success").Inc()
	metrics.ModelDocuments.Set(float64(report.Documents))
	logger.Info("training completed",
		zap.Int("documents", report.Documents),
		zap.Int("vocabulary", report.Vocabulary),
		zap.Int("classes", len(report.Classes)),
		zap.Float64("test_accuracy", report.TestAccuracy),
		zap.Duration("duration", report.Duration))

	return report, nil
}

// collect runs one search per example and gathers the returned documents
func (s *ClassifierService) collect(
	ctx context.Context,
	examples []domain.TrainingExample,
	report *domain.TrainReport,
	logger *zap.Logger,
) ([]domain.Document, error) {
	var docs []domain.Document

	for _, ex := range examples {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resp, err := s.client.Search(ctx, ex.Term)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			logger.Warn("search failed for training term",
				zap.String("term", ex.Term),
				zap.Error(err))
			report.Failures = append(report.Failures, domain.TermFailure{
				Term:  ex.Term,
				Error: err.Error(),
			})
			continue
		}
		if resp == nil {
			continue
		}

		for _, r := range resp.Results {
			docs = append(docs, domain.Document{
				Title:       r.Title,
				Description: r.Description,
				Category:    ex.Category,
			})
		}
	}

	return docs, nil
}

// fit vectorizes every document, fits the classifier on the training
// split and scores it on the held-out split
func (s *ClassifierService) fit(docs []domain.Document, report *domain.TrainReport) (*ml.Model, error) {
	texts := make([]string, len(docs))
	labels := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text()
		labels[i] = d.Category
	}

	vectorizer := ml.NewTFIDFVectorizer()
	X, err := vectorizer.FitTransform(texts)
	if err != nil {
		if errors.Is(err, ml.ErrEmptyVocabulary) {
			return nil, fmt.Errorf("%w: %w", domain.ErrNoTrainingData, err)
		}
		return nil, fmt.Errorf("failed to vectorize documents: %w", err)
	}

	trainIdx, testIdx := ml.TrainTestSplit(len(X), s.config.TestSize, s.config.Seed)
	trainX, trainY := pick(X, labels, trainIdx)
	testX, testY := pick(X, labels, testIdx)

	classifier := ml.NewMultinomialNB()
	if err := classifier.Fit(trainX, trainY, vectorizer.VocabularySize()); err != nil {
		return nil, fmt.Errorf("failed to fit classifier: %w", err)
	}

	accuracy, err := ml.Accuracy(classifier, testX, testY)
	if err != nil {
		return nil, fmt.Errorf("failed to score classifier: %w", err)
	}

	report.Vocabulary = vectorizer.VocabularySize()
	report.Classes = classifier.Classes()
	report.TrainSize = len(trainIdx)
	report.TestSize = len(testIdx)
	report.TestAccuracy = accuracy

	return &ml.Model{Vectorizer: vectorizer, Classifier: classifier}, nil
}

// Search runs one search for query and classifies every result in order
func (s *ClassifierService) Search(ctx context.Context, query string) ([]domain.ClassifiedResult, error) {
	query = NormalizeQuery(query)
	if query == "" {
		return nil, domain.ErrEmptyQuery
	}

	model := s.model.Load()
	if model == nil {
		return nil, domain.ErrModelNotTrained
	}

	resp, err := s.client.Search(ctx, query)
	if err != nil {
		if errors.Is(err, domain.ErrSearchAPIFailure) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchAPIFailure, err)
	}

	results := make([]domain.ClassifiedResult, 0)
	if resp == nil {
		return results, nil
	}

	for _, r := range resp.Results {
		category, err := model.Predict(r.Text())
		if err != nil {
			return nil, fmt.Errorf("failed to classify result %q: %w", r.Title, err)
		}
		metrics.Classifications.WithLabelValues(categoryLabel(category)).Inc()
		results = append(results, domain.ClassifiedResult{
			Title:    r.Title,
			Category: category,
			URL:      r.URL,
		})
	}

	s.logger.Info("query classified",
		zap.String("query", query),
		zap.Int("results", len(results)))

	return results, nil
}

// pick gathers the rows and labels at idx
func pick(X []ml.SparseVector, y []string, idx []int) ([]ml.SparseVector, []string) {
	outX := make([]ml.SparseVector, len(idx))
	outY := make([]string, len(idx))
	for i, j := range idx {
		outX[i] = X[j]
		outY[i] = y[j]
	}
	return outX, outY
}
