package services

import (
	"context"
	"fmt"
	"time"

	"lifecover/internal/adapters/persistence/repositories"
	"lifecover/internal/config"
	"lifecover/internal/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// purgeTimeout bounds a single purge run
const purgeTimeout = 5 * time.Minute

// RetentionService periodically deletes old submissions
type RetentionService struct {
	submissions repositories.SubmissionRepository
	cfg         config.RetentionConfig
	cron        *cron.Cron
	log         *zap.Logger
	now         func() time.Time
}

// NewRetentionService creates a new retention service
func NewRetentionService(submissions repositories.SubmissionRepository, cfg config.RetentionConfig, log *zap.Logger) *RetentionService {
	return &RetentionService{
		submissions: submissions,
		cfg:         cfg,
		cron:        cron.New(),
		log:         logger.Named(log, "retention"),
		now:         time.Now,
	}
}

// Start schedules the purge job; it is a no-op when retention is disabled
func (s *RetentionService) Start() error {
	if s.cfg.Days <= 0 {
		s.log.Info("submission retention disabled")
		return nil
	}

	_, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), purgeTimeout)
		defer cancel()

		if _, err := s.Purge(ctx); err != nil {
			s.log.Error("❌ submission purge failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("invalid SUBMISSION_RETENTION_SCHEDULE %q: %w", s.cfg.Schedule, err)
	}

	s.cron.Start()
	s.log.Info("🚀 retention job started",
		zap.String("schedule", s.cfg.Schedule),
		zap.Int("days", s.cfg.Days),
	)
	return nil
}

// Stop waits for a running purge to finish
func (s *RetentionService) Stop() {
	<-s.cron.Stop().Done()
}

// Purge deletes submissions older than the retention window
func (s *RetentionService) Purge(ctx context.Context) (int64, error) {
	if s.cfg.Days <= 0 {
		return 0, nil
	}

	cutoff := s.now().Add(-time.Duration(s.cfg.Days) * 24 * time.Hour)
	deleted, err := s.submissions.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	s.log.Info("🧹 old submissions purged", zap.Int64("deleted", deleted), zap.Time("cutoff", cutoff))
	return deleted, nil
}
