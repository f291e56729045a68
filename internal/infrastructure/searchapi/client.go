package searchapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/seeker/backend/internal/domain"
	"github.com/seeker/backend/internal/metrics"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// maxErrorBodyBytes caps how much of a failed response is copied into the error
	maxErrorBodyBytes = 1024
	// maxResponseBytes caps the decoded size of a successful response
	maxResponseBytes = 4 << 20
)

// ClientConfig holds settings for the search API client
type ClientConfig struct {
	BaseURL         string
	Host            string
	APIKey          string
	Limit           int
	RelatedKeywords bool
	Timeout         time.Duration
	RatePerSecond   float64
	Burst           int
}

// Client handles communication with the RapidAPI web search endpoint
type Client struct {
	httpClient  *http.Client
	cfg         ClientConfig
	rateLimiter *rate.Limiter
	logger      *zap.Logger
}

// NewClient creates a new search API client
func NewClient(cfg ClientConfig, logger *zap.Logger) *Client {
	if cfg.Limit <= 0 {
		cfg.Limit = 10
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = 5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		cfg:         cfg,
		rateLimiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		logger:      logger.Named("searchapi"),
	}
}

// buildURL returns the request URL for a query
func (c *Client) buildURL(query string) (string, error) {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return "", err
	}

	params := u.Query()
	params.Set("query", query)
	params.Set("limit", strconv.Itoa(c.cfg.Limit))
	params.Set("related_keywords", strconv.FormatBool(c.cfg.RelatedKeywords))
	u.RawQuery = params.Encode()

	return u.String(), nil
}

// Search issues a single GET for the query. Non-2xx responses and
// transport failures are returned as errors wrapping domain.ErrSearchAPIFailure.
func (c *Client) Search(ctx context.Context, query string) (*domain.SearchResponse, error) {
	c.logger.Debug("search requested", zap.String("query", query))

	reqURL, err := c.buildURL(query)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("x-rapidapi-host", c.cfg.Host)
	req.Header.Set("x-rapidapi-key", c.cfg.APIKey)
	req.Header.Set("User-Agent", "Seeker/1.0")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.SearchAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.SearchAPIRequests.WithLabelValues("error").Inc()
		c.logger.Warn("search request failed", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchAPIFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.SearchAPIRequests.WithLabelValues("error").Inc()
		body, _ := readLimitedBody(resp.Body, maxErrorBodyBytes)
		c.logger.Warn("search API returned error status",
			zap.String("query", query),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrSearchAPIFailure, resp.StatusCode, string(body))
	}

	var searchResp domain.SearchResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&searchResp); err != nil {
		metrics.SearchAPIRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: failed to decode response: %v", domain.ErrSearchAPIFailure, err)
	}
	if searchResp.Results == nil {
		searchResp.Results = []domain.SearchResult{}
	}

	metrics.SearchAPIRequests.WithLabelValues("success").Inc()
	c.logger.Debug("search completed",
		zap.String("query", query),
		zap.Int("results", len(searchResp.Results)))

	return &searchResp, nil
}

// readLimitedBody reads at most limit bytes from r
func readLimitedBody(r io.Reader, limit int64) ([]byte, error) {
	return io.ReadAll(io.LimitReader(r, limit))
}
