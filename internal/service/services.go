package service

import (
	"fmt"
	"log/slog"

	appconfig "github.com/dropshipai/branding-api/internal/config"
	"github.com/dropshipai/branding-api/internal/llm"
	"github.com/dropshipai/branding-api/internal/repository"
	"github.com/dropshipai/branding-api/internal/segments"
	"github.com/dropshipai/branding-api/internal/webfetch"
)

// Services holds all service instances.
type Services struct {
	Branding  *BrandingService
	Analyzer  *AnalyzerService
	Marketing *MarketingService
	Storage   *StorageService
	Segments  *segments.Catalog
}

// NewServices creates all service instances.
func NewServices(cfg *appconfig.Config, repos *repository.Repositories, logger *slog.Logger) (*Services, error) {
	storageSvc, err := NewStorageService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage service: %w", err)
	}

	var catalogLoader *appconfig.S3Loader
	if storageSvc.IsEnabled() {
		catalogLoader = appconfig.NewS3Loader(appconfig.S3LoaderConfig{
			S3Client: storageSvc.Client(),
			Bucket:   storageSvc.Bucket(),
			Key:      cfg.SegmentCatalogKey,
			Logger:   logger,
		})
	}
	catalog := segments.NewCatalog(catalogLoader, logger)

	completer := llm.NewClient(llm.ClientConfig{
		APIKey:              cfg.OpenAIAPIKey,
		BaseURL:             cfg.OpenAIBaseURL,
		Model:               cfg.Model,
		TemperatureOverride: cfg.TemperatureOverride,
		MaxTokensOverride:   cfg.MaxTokensOverride,
		Logger:              logger,
	})
	logger.Info("model client initialized", "model", completer.Model())

	fetcher := webfetch.NewFetcher(cfg.FetchTimeout, cfg.FetchMaxPages, logger)

	return &Services{
		Branding:  NewBrandingService(repos, completer, logger),
		Analyzer:  NewAnalyzerService(fetcher, completer, catalog, logger),
		Marketing: NewMarketingService(completer, logger),
		Storage:   storageSvc,
		Segments:  catalog,
	}, nil
}
