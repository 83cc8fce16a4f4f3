package container

import (
	"context"
	"fmt"

	"github.com/saulo-duarte/mocktest-lambda/internal/aiquiz"
	"github.com/saulo-duarte/mocktest-lambda/internal/config"
	"github.com/saulo-duarte/mocktest-lambda/internal/mocktest"
)

type Container struct {
	MockTestContainer *mocktest.MockTestContainer
	AIQuizContainer   *aiquiz.AIQuizContainer
}

func New(ctx context.Context, cfg *config.Config) (*Container, error) {
	repo, err := newRepository(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}

	if cfg.Gemini.APIKey == "" {
		config.WithContext(ctx).Warn("GEMINI_API_KEY is not set; AI endpoints will fail until it is configured")
	}

	return &Container{
		MockTestContainer: mocktest.NewMockTestContainer(repo),
		AIQuizContainer:   aiquiz.NewAIQuizContainer(cfg.Gemini),
	}, nil
}

func newRepository(ctx context.Context, cfg config.StorageConfig) (mocktest.Repository, error) {
	switch cfg.Driver {
	case config.StoragePostgres:
		db, err := config.Connect(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		if err := mocktest.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate mock tests table: %w", err)
		}
		return mocktest.NewGormRepository(db), nil
	default:
		config.WithContext(ctx).WithField("path", cfg.FilePath).Info("Using JSON file store")
		return mocktest.NewFileRepository(cfg.FilePath), nil
	}
}
