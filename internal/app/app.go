// Package app wires the application's dependencies: storage, the GitHub
// connector, the generation pipeline, and the HTTP handlers.
package app

import (
	"context"
	"fmt"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gitscribe/internal/common"
	githubconn "github.com/ternarybob/gitscribe/internal/connectors/github"
	"github.com/ternarybob/gitscribe/internal/handlers"
	"github.com/ternarybob/gitscribe/internal/interfaces"
	"github.com/ternarybob/gitscribe/internal/services/generator"
	"github.com/ternarybob/gitscribe/internal/services/retention"
	"github.com/ternarybob/gitscribe/internal/storage/badger"
)

// App holds all application components and dependencies
type App struct {
	Config *common.Config
	Logger arbor.ILogger

	StorageManager interfaces.StorageManager

	// Repository source (GitHub API)
	Source interfaces.RepositorySource

	// Services
	GeneratorService   *generator.Service
	RetentionScheduler *retention.Scheduler

	// HTTP handlers
	APIHandler      *handlers.APIHandler
	GenerateHandler *handlers.GenerateHandler
	AnalysisHandler *handlers.AnalysisHandler
	StatusHandler   *handlers.StatusHandler
}

// New initializes the application with all dependencies
func New(cfg *common.Config, logger arbor.ILogger) (*App, error) {
	app := &App{
		Config: cfg,
		Logger: logger,
	}

	// Initialize storage
	storageManager, err := badger.NewManager(logger, &cfg.Storage.Badger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	app.StorageManager = storageManager

	// Initialize the GitHub connector
	connector := githubconn.NewConnector(githubconn.Options{
		Token:          cfg.GitHub.Token,
		RateLimit:      cfg.GitHub.RateLimit,
		RequestTimeout: cfg.GitHub.RequestTimeout,
	}, logger)
	app.Source = connector

	// Verify API reachability in the background; startup does not block on
	// the network and a failure is only a warning.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), githubconn.DefaultRequestTimeout)
		defer cancel()

		if err := connector.TestConnection(ctx); err != nil {
			logger.Warn().Err(err).Msg("GitHub API connectivity check failed")
			return
		}
		logger.Info().Msg("GitHub API connection verified")
	}()

	// Initialize services
	analysisStorage := storageManager.AnalysisStorage()
	app.GeneratorService = generator.NewService(app.Source, analysisStorage, logger)

	if cfg.Retention.Enabled {
		app.RetentionScheduler = retention.NewScheduler(analysisStorage, cfg.RetentionMaxAge(), logger)
		if err := app.RetentionScheduler.Start(cfg.Retention.Schedule); err != nil {
			return nil, fmt.Errorf("failed to start retention scheduler: %w", err)
		}
	}

	// Initialize handlers
	app.APIHandler = handlers.NewAPIHandler()
	app.GenerateHandler = handlers.NewGenerateHandler(app.GeneratorService, logger)
	app.AnalysisHandler = handlers.NewAnalysisHandler(analysisStorage, logger)
	app.StatusHandler = handlers.NewStatusHandler(analysisStorage, app.RetentionScheduler, logger)

	logger.Info().Msg("Application initialized")

	return app, nil
}

// Close releases application resources
func (a *App) Close() error {
	if a.RetentionScheduler != nil {
		a.RetentionScheduler.Stop()
	}
	if a.StorageManager != nil {
		if err := a.StorageManager.Close(); err != nil {
			return fmt.Errorf("failed to close storage: %w", err)
		}
	}
	a.Logger.Info().Msg("Application closed")
	return nil
}
