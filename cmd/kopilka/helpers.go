package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/evseev/kopilka/internal/classifier"
	"github.com/evseev/kopilka/internal/common"
	"github.com/evseev/kopilka/internal/config"
	"github.com/evseev/kopilka/internal/embeddings"
	"github.com/evseev/kopilka/internal/service"
	"github.com/evseev/kopilka/internal/storage"
)

// openStorage opens the ledger and brings its schema up to date.
func openStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := config.ExpandPath(viper.GetString("database.path"))

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate storage: %w", err)
	}
	return store, nil
}

// buildClassifier constructs the embedding provider and the classifier state.
// Index construction is retried: embedding backends often need a moment to
// load model weights on cold start.
func buildClassifier(ctx context.Context) (*classifier.Classifier, error) {
	provider, err := embeddings.NewProvider(embeddings.Config{
		Provider: viper.GetString("embeddings.provider"),
		Model:    viper.GetString("embeddings.model"),
		BaseURL:  viper.GetString("embeddings.base_url"),
		APIKey:   viper.GetString("embeddings.api_key"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embedding provider: %w", err)
	}

	cfg := classifier.Config{
		Threshold: viper.GetFloat64("classifier.threshold"),
	}

	var c *classifier.Classifier
	err = common.WithRetry(ctx, func() error {
		var buildErr error
		c, buildErr = classifier.New(ctx, provider, cfg)
		return buildErr
	}, service.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: 2 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build classifier index: %w", err)
	}
	return c, nil
}
