package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/seeker/backend/internal/domain"
	"github.com/seeker/backend/internal/usecase"
	"go.uber.org/zap"
)

const (
	serviceName    = "seeker"
	serviceVersion = "1.0.0"
)

// Classifier is the application surface the handlers drive
type Classifier interface {
	AddExample(term, category string) (domain.TrainingExample, error)
	Examples() []domain.TrainingExample
	Train(ctx context.Context) (*domain.TrainReport, error)
	Search(ctx context.Context, query string) ([]domain.ClassifiedResult, error)
	Trained() bool
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	classifier Classifier
	logger     *zap.Logger
}

// NewHandler creates a new HTTP handler. A nil classifier makes every API
// endpoint answer 503.
func NewHandler(classifier Classifier, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		classifier: classifier,
		logger:     logger.Named("http"),
	}
}

// AddExampleRequest is the body of POST /api/v1/examples
type AddExampleRequest struct {
	Term     string `json:"term"`
	Category string `json:"category"`
}

// configured writes 503 and returns false when no classifier is wired
func (h *Handler) configured(c *gin.Context) bool {
	if h.classifier == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "classifier not configured",
		})
		return false
	}
	return true
}

// Index renders the single-page form
func (h *Handler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.tmpl", gin.H{
		"Title": "Search Classifier",
	})
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	trained := h.classifier != nil && h.classifier.Trained()
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": serviceName,
		"version": serviceVersion,
		"trained": trained,
	})
}

// ListExamples returns the training set
func (h *Handler) ListExamples(c *gin.Context) {
	if !h.configured(c) {
		return
	}

	examples := h.classifier.Examples()
	c.JSON(http.StatusOK, gin.H{
		"examples": examples,
		"count":    len(examples),
	})
}

// AddExample appends a training example
func (h *Handler) AddExample(c *gin.Context) {
	if !h.configured(c) {
		return
	}

	var req AddExampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": domain.ErrInvalidRequest.Error(),
		})
		return
	}

	ex, err := h.classifier.AddExample(req.Term, req.Category)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidExample) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": usecase.MsgMissingExample,
			})
			return
		}
		h.internalError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"example": ex,
		"message": usecase.FormatAdded(ex),
	})
}

// Train collects search results for every example and fits the model
func (h *Handler) Train(c *gin.Context) {
	if !h.configured(c) {
		return
	}

	report, err := h.classifier.Train(c.Request.Context())

	output := []string{usecase.MsgTraining}
	if report != nil {
		for _, f := range report.Failures {
			output = append(output, usecase.FormatTermFailure(f))
		}
	}

	if err != nil {
		if errors.Is(err, domain.ErrNoTrainingData) {
			output = append(output, usecase.MsgNoData)
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":  usecase.MsgNoData,
				"report": report,
				"output": strings.Join(output, "\n"),
			})
			return
		}
		h.internalError(c, err)
		return
	}

	output = append(output, usecase.MsgTrained)
	c.JSON(http.StatusOK, gin.H{
		"message": usecase.MsgTrained,
		"report":  report,
		"output":  strings.Join(output, "\n"),
	})
}

// Search classifies the results of an ad-hoc query. The query comes from
// the JSON body on POST or the q parameter on GET.
func (h *Handler) Search(c *gin.Context) {
	if !h.configured(c) {
		return
	}

	var req domain.SearchRequest
	if c.Request.Method == http.MethodGet {
		req.Query = c.Query("q")
	} else if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": domain.ErrInvalidRequest.Error(),
		})
		return
	}

	results, err := h.classifier.Search(c.Request.Context(), req.Query)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyQuery):
			c.JSON(http.StatusBadRequest, gin.H{"error": usecase.MsgMissingQuery})
		case errors.Is(err, domain.ErrModelNotTrained):
			c.JSON(http.StatusConflict, gin.H{"error": usecase.MsgNotTrained})
		case errors.Is(err, domain.ErrSearchAPIFailure):
			c.JSON(http.StatusBadGateway, gin.H{"error": usecase.FormatAPIFailure(err)})
		default:
			h.internalError(c, err)
		}
		return
	}

	var out strings.Builder
	_ = usecase.FormatResults(&out, results)

	body := gin.H{
		"query":   strings.TrimSpace(req.Query),
		"results": results,
		"output":  out.String(),
	}
	if len(results) == 0 {
		body["message"] = usecase.MsgNoResults
	}
	c.JSON(http.StatusOK, body)
}

// internalError logs err and answers 500
func (h *Handler) internalError(c *gin.Context, err error) {
	h.logger.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.String("request_id", c.GetString(requestIDKey)),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "internal server error",
	})
}
