// Package retention periodically removes stored analyses older than the
// configured maximum age.
package retention

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/gitscribe/internal/interfaces"
)

// Scheduler handles periodic analysis cleanup
type Scheduler struct {
	storage interfaces.AnalysisStorage
	maxAge  time.Duration
	cron    *cron.Cron
	logger  arbor.ILogger
}

// NewScheduler creates a new retention scheduler
func NewScheduler(storage interfaces.AnalysisStorage, maxAge time.Duration, logger arbor.ILogger) *Scheduler {
	return &Scheduler{
		storage: storage,
		maxAge:  maxAge,
		cron:    cron.New(),
		logger:  logger,
	}
}

// Start begins the scheduled cleanup
func (s *Scheduler) Start(schedule string) error {
	if schedule == "" {
		// Default: daily at midnight
		schedule = "0 0 * * *"
	}

	_, err := s.cron.AddFunc(schedule, func() {
		s.runCleanup()
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info().
		Str("schedule", schedule).
		Str("max_age", s.maxAge.String()).
		Msg("Analysis retention scheduler started")

	return nil
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info().Msg("Analysis retention scheduler stopped")
}

// RunNow triggers an immediate cleanup run
func (s *Scheduler) RunNow() {
	go s.runCleanup()
}

func (s *Scheduler) runCleanup() {
	cutoff := time.Now().Add(-s.maxAge)

	deleted, err := s.storage.DeleteOlderThan(cutoff)
	if err != nil {
		s.logger.Error().Err(err).Msg("Analysis cleanup failed")
		return
	}

	s.logger.Info().
		Int("deleted", deleted).
		Str("cutoff", cutoff.Format(time.RFC3339)).
		Msg("Analysis cleanup complete")
}
