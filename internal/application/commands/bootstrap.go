package commands

import (
	"context"
	"fmt"
	"log/slog"

	"ordina/internal/adapters/extract"
	"ordina/internal/adapters/filesystem"
	"ordina/internal/adapters/gdrive"
	"ordina/internal/adapters/openaicls"
	"ordina/internal/adapters/rediscache"
	"ordina/internal/adapters/s3store"
	"ordina/internal/adapters/sqlitecache"
	"ordina/internal/config"
	"ordina/internal/ports"
	"ordina/internal/sorter"
)

// OptionsFromConfig converts the config's sorter section into pipeline
// options; zero fields keep the pipeline defaults.
func OptionsFromConfig(cfg *config.Config) sorter.Options {
	return sorter.Options{
		SimilarityThreshold: cfg.Sorter.SimilarityThreshold,
		MaxAICalls:          cfg.Sorter.MaxAICalls,
		MaxBytes:            cfg.Sorter.MaxBytes,
		TextMax:             cfg.Sorter.TextMax,
		Concurrency:         cfg.Sorter.Concurrency,
		AICallsPerMinute:    cfg.Sorter.AICallsPerMinute,
	}
}

// BuildPipeline wires the configured adapters into a runnable pipeline.
// The returned closer releases the cache store; call it after the run.
func BuildPipeline(ctx context.Context, cfg *config.Config, opts sorter.Options, log *slog.Logger) (*sorter.Pipeline, func() error, error) {
	storage, err := BuildStorage(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	cache, err := BuildCache(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	closer := func() error {
		if cache != nil {
			return cache.Close()
		}
		return nil
	}

	var classifier ports.Classifier
	if cfg.Classifier.APIKey != "" {
		classifier = openaicls.New(cfg.Classifier)
	}

	extractors := []ports.Extractor{
		extract.NewPDF(),
		extract.NewSpreadsheet(),
		extract.NewPlainText(),
	}
	if cfg.Classifier.APIKey != "" && cfg.Classifier.VisionModel != "" {
		extractors = append(extractors, extract.NewVisionOCR(cfg.Classifier))
	}
	dispatcher := extract.NewDispatcher(extractors...)

	pipeline := sorter.New(storage, classifier, dispatcher, cache, cfg.Folders, opts, log)
	return pipeline, closer, nil
}

// BuildStorage opens the configured storage backend.
func BuildStorage(ctx context.Context, cfg *config.Config) (ports.Storage, error) {
	switch cfg.Storage.Backend {
	case "local":
		return filesystem.New(), nil
	case "s3":
		return s3store.New(cfg.Storage.S3)
	case "drive":
		return gdrive.New(ctx, cfg.Storage.Drive.CredentialsFile)
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Storage.Backend)
	}
}

// BuildCache opens the configured cache store; nil when caching is
// disabled.
func BuildCache(ctx context.Context, cfg *config.Config) (ports.CacheStore, error) {
	switch cfg.Cache.Backend {
	case "none":
		return nil, nil
	case "sqlite":
		return sqlitecache.Open(cfg.Cache.Path)
	case "redis":
		return rediscache.Open(ctx, cfg.Cache.Redis)
	default:
		return nil, fmt.Errorf("unknown cache backend: %q", cfg.Cache.Backend)
	}
}
