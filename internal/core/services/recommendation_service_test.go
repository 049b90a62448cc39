package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"lifecover/internal/adapters/persistence/models"
	"lifecover/internal/adapters/persistence/repositories"
	"lifecover/internal/core/domain"
	"lifecover/internal/core/validation"
	"lifecover/internal/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioA() validation.ProfileInput {
	return validation.ProfileInput{
		Age:           validation.Float(25),
		Income:        validation.Float(50000),
		Dependents:    validation.Float(2),
		RiskTolerance: "Medium",
	}
}

func TestRecommendationService_RecommendStoresSubmission(t *testing.T) {
	repo := repositories.NewSubmissionRepositoryMemory()
	svc := NewRecommendationService(repo, nil)
	fixed := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	rec, err := svc.Recommend(context.Background(), scenarioA(), nil)
	require.NoError(t, err)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, fixed, rec.CreatedAt)
	assert.Equal(t, int64(700000), rec.CoverageAmount)
	assert.Equal(t, "Term Life – $700,000 for 30 years", rec.RecommendationText)

	row, err := repo.GetByID(context.Background(), rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, row.Age)
	assert.Equal(t, 50000.0, row.Income)
	assert.Equal(t, 2, row.Dependents)
	assert.Equal(t, "Medium", row.RiskTolerance)
	assert.Equal(t, rec.RecommendationText, row.Recommendation)
	assert.Equal(t, rec.ExplanationText, row.Explanation)
	assert.Nil(t, row.UserID)
}

type spySubmissionRepo struct {
	repositories.SubmissionRepository
	creates int
}

func (s *spySubmissionRepo) Create(ctx context.Context, sub *models.Submission) error {
	s.creates++
	return s.SubmissionRepository.Create(ctx, sub)
}

func TestRecommendationService_InvalidProfileIsNotStored(t *testing.T) {
	repo := &spySubmissionRepo{SubmissionRepository: repositories.NewSubmissionRepositoryMemory()}
	svc := NewRecommendationService(repo, nil)

	in := scenarioA()
	in.Age = validation.Float(12)
	_, err := svc.Recommend(context.Background(), in, nil)

	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Zero(t, repo.creates)
}

type failingSubmissionRepo struct {
	repositories.SubmissionRepository
}

func (failingSubmissionRepo) Create(ctx context.Context, s *models.Submission) error {
	return errors.New("insert failed")
}

func TestRecommendationService_StoreFailureIsInternal(t *testing.T) {
	svc := NewRecommendationService(failingSubmissionRepo{}, nil)

	_, err := svc.Recommend(context.Background(), scenarioA(), nil)

	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}

func TestRecommendationService_GetAndHistoryAreScopedToOwner(t *testing.T) {
	repo := repositories.NewSubmissionRepositoryMemory()
	svc := NewRecommendationService(repo, nil)
	ctx := context.Background()
	owner, other := "user-1", "user-2"

	base := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 3; i++ {
		svc.now = func() time.Time { return base.Add(time.Duration(i) * time.Minute) }
		rec, err := svc.Recommend(ctx, scenarioA(), &owner)
		require.NoError(t, err)
		ids = append(ids, rec.ID)
	}
	anon, err := svc.Recommend(ctx, scenarioA(), nil)
	require.NoError(t, err)

	got, err := svc.Get(ctx, ids[0], owner)
	require.NoError(t, err)
	assert.Equal(t, ids[0], got.ID)

	_, err = svc.Get(ctx, ids[0], other)
	assert.ErrorIs(t, err, domain.ErrRecommendationNotFound)
	_, err = svc.Get(ctx, anon.ID, owner)
	assert.ErrorIs(t, err, domain.ErrRecommendationNotFound)
	_, err = svc.Get(ctx, "missing", owner)
	assert.ErrorIs(t, err, domain.ErrRecommendationNotFound)

	recs, total, err := svc.History(ctx, owner, pagination.NewParams(1, 2))
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, recs, 2)
	assert.Equal(t, ids[2], recs[0].ID)
	assert.Equal(t, ids[1], recs[1].ID)
}
