package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lifecover/internal/adapters/persistence/models"
	"lifecover/internal/adapters/persistence/repositories"
	"lifecover/internal/core/domain"
	"lifecover/internal/core/engine"
	"lifecover/internal/core/validation"
	"lifecover/internal/pkg/logger"
	"lifecover/internal/pkg/pagination"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecommendationService validates profiles, runs the engine and keeps the submission history
type RecommendationService struct {
	submissions repositories.SubmissionRepository
	log         *zap.Logger
	now         func() time.Time
}

// NewRecommendationService creates a new recommendation service
func NewRecommendationService(submissions repositories.SubmissionRepository, log *zap.Logger) *RecommendationService {
	return &RecommendationService{
		submissions: submissions,
		log:         logger.Named(log, "recommendation"),
		now:         time.Now,
	}
}

// Recommend computes and stores a recommendation. userID is nil for anonymous submissions.
func (s *RecommendationService) Recommend(ctx context.Context, input validation.ProfileInput, userID *string) (*domain.Recommendation, error) {
	// 1. Validate profile
	profile, err := validation.ValidateProfile(input)
	if err != nil {
		return nil, err
	}

	// 2. Compute
	rec := engine.Compute(profile)
	rec.ID = uuid.NewString()
	rec.UserID = userID
	rec.CreatedAt = s.now().UTC()

	// 3. Persist as a historical record
	row := models.NewSubmission(&rec)
	if err := s.submissions.Create(ctx, row); err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("store submission: %w", err))
	}
	rec.CreatedAt = row.CreatedAt

	s.log.Debug("recommendation stored",
		zap.String("id", rec.ID),
		zap.Int64("coverage", rec.CoverageAmount),
		zap.Int("term_years", rec.TermYears),
	)
	return &rec, nil
}

// Get returns one of the caller's recommendations
func (s *RecommendationService) Get(ctx context.Context, id, userID string) (*domain.Recommendation, error) {
	row, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrRecommendationNotFound
		}
		return nil, domain.NewInternalError(fmt.Errorf("find submission: %w", err))
	}

	// Other users' and anonymous submissions are reported as missing
	if row.UserID == nil || *row.UserID != userID {
		return nil, domain.ErrRecommendationNotFound
	}
	return row.ToDomain(), nil
}

// History lists the caller's recommendations, newest first
func (s *RecommendationService) History(ctx context.Context, userID string, params *pagination.Params) ([]*domain.Recommendation, int64, error) {
	rows, total, err := s.submissions.ListByUser(ctx, userID, params.Offset, params.Limit)
	if err != nil {
		return nil, 0, domain.NewInternalError(fmt.Errorf("list submissions: %w", err))
	}

	recs := make([]*domain.Recommendation, 0, len(rows))
	for _, row := range rows {
		recs = append(recs, row.ToDomain())
	}
	return recs, total, nil
}
