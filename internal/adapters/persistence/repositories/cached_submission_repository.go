package repositories

import (
	"context"
	"encoding/json"
	"time"

	"lifecover/internal/adapters/cache"
	"lifecover/internal/adapters/persistence/models"

	"go.uber.org/zap"
)

const submissionKeyPrefix = "lifecover:submission:"

// cachedSubmissionRepository puts a read-through cache in front of GetByID.
// Submissions are never updated, so cached entries cannot go stale.
type cachedSubmissionRepository struct {
	SubmissionRepository
	cache cache.Cache
	ttl   time.Duration
	log   *zap.Logger
}

// NewCachedSubmissionRepository wraps next with a read-through cache
func NewCachedSubmissionRepository(next SubmissionRepository, c cache.Cache, ttl time.Duration, log *zap.Logger) SubmissionRepository {
	if log == nil {
		log = zap.NewNop()
	}
	return &cachedSubmissionRepository{
		SubmissionRepository: next,
		cache:                c,
		ttl:                  ttl,
		log:                  log,
	}
}

// Create stores the submission and primes the cache
func (r *cachedSubmissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	if err := r.SubmissionRepository.Create(ctx, submission); err != nil {
		return err
	}
	r.store(ctx, submission)
	return nil
}

// GetByID serves from cache when possible
func (r *cachedSubmissionRepository) GetByID(ctx context.Context, id string) (*models.Submission, error) {
	if raw, ok := r.cache.Get(ctx, submissionKeyPrefix+id); ok {
		var submission models.Submission
		if err := json.Unmarshal([]byte(raw), &submission); err == nil {
			return &submission, nil
		}
	}

	submission, err := r.SubmissionRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, submission)
	return submission, nil
}

func (r *cachedSubmissionRepository) store(ctx context.Context, submission *models.Submission) {
	raw, err := json.Marshal(submission)
	if err != nil {
		return
	}
	if err := r.cache.Set(ctx, submissionKeyPrefix+submission.ID, string(raw), r.ttl); err != nil {
		r.log.Warn("⚠️ submission cache write failed", zap.String("id", submission.ID), zap.Error(err))
	}
}
