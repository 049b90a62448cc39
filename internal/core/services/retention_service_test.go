package services

import (
	"context"
	"testing"
	"time"

	"lifecover/internal/adapters/persistence/models"
	"lifecover/internal/adapters/persistence/repositories"
	"lifecover/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetentionService_Purge(t *testing.T) {
	repo := repositories.NewSubmissionRepositoryMemory()
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &models.Submission{CreatedAt: now.Add(-40 * 24 * time.Hour)}))
	require.NoError(t, repo.Create(ctx, &models.Submission{CreatedAt: now.Add(-10 * 24 * time.Hour)}))

	svc := NewRetentionService(repo, config.RetentionConfig{Days: 30, Schedule: "@daily"}, nil)
	svc.now = func() time.Time { return now }

	deleted, err := svc.Purge(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}

func TestRetentionService_Disabled(t *testing.T) {
	svc := NewRetentionService(repositories.NewSubmissionRepositoryMemory(), config.RetentionConfig{}, nil)

	require.NoError(t, svc.Start())
	deleted, err := svc.Purge(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, deleted)
	svc.Stop()
}

func TestRetentionService_InvalidSchedule(t *testing.T) {
	svc := NewRetentionService(repositories.NewSubmissionRepositoryMemory(), config.RetentionConfig{Days: 1, Schedule: "every tuesday-ish"}, nil)

	assert.Error(t, svc.Start())
}

func TestRetentionService_StartStop(t *testing.T) {
	svc := NewRetentionService(repositories.NewSubmissionRepositoryMemory(), config.RetentionConfig{Days: 1, Schedule: "@hourly"}, nil)

	require.NoError(t, svc.Start())
	svc.Stop()
}
