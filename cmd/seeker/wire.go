package main

import (
	"fmt"

	"github.com/seeker/backend/config"
	"github.com/seeker/backend/internal/domain"
	"github.com/seeker/backend/internal/infrastructure/cache"
	"github.com/seeker/backend/internal/infrastructure/searchapi"
	"github.com/seeker/backend/internal/logging"
	"github.com/seeker/backend/internal/metrics"
	"github.com/seeker/backend/internal/usecase"
	"go.uber.org/zap"
)

// app holds the wired dependencies shared by the subcommands
type app struct {
	cfg        *config.Config
	logger     *zap.Logger
	classifier *usecase.ClassifierService
	cache      *cache.MemoryCache
}

// newApp loads configuration and wires the classifier service
func newApp(examples []domain.TrainingExample) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	a := &app{cfg: cfg, logger: logger}

	var client domain.SearchClient = searchapi.NewClient(searchapi.ClientConfig{
		BaseURL:         cfg.Search.BaseURL,
		Host:            cfg.Search.Host,
		APIKey:          cfg.Search.APIKey,
		Limit:           cfg.Search.Limit,
		RelatedKeywords: cfg.Search.RelatedKeywords,
		Timeout:         cfg.Search.Timeout,
		RatePerSecond:   cfg.Search.RatePerSecond,
		Burst:           cfg.Search.Burst,
	}, logger)

	logger.Info("search API configured",
		zap.String("base_url", cfg.Search.BaseURL),
		zap.String("api_key", logging.MaskSecret(cfg.Search.APIKey)),
		zap.Int("limit", cfg.Search.Limit),
		zap.Float64("rate_per_second", cfg.Search.RatePerSecond))

	if cfg.Cache.TTL > 0 {
		a.cache = cache.NewMemoryCacheWithSweep(cfg.Cache.TTL)
		client = usecase.NewCachingSearchClient(client, a.cache, cfg.Cache.TTL, logger)
		metrics.RegisterCacheEntries(func() float64 { return float64(a.cache.Size()) })
		logger.Info("search response cache enabled", zap.Duration("ttl", cfg.Cache.TTL))
	}

	a.classifier = usecase.NewClassifierService(client, examples, usecase.ClassifierServiceConfig{
		TestSize: cfg.Model.TestSize,
		Seed:     cfg.Model.Seed,
	}, logger)

	return a, nil
}

// Close releases background resources
func (a *app) Close() {
	if a.cache != nil {
		a.cache.Close()
	}
	_ = a.logger.Sync()
}
