package repositories

import (
	"context"
	"time"

	"lifecover/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// submissionRepository implements SubmissionRepository interface
type submissionRepository struct {
	db *gorm.DB
}

// NewSubmissionRepository creates a new submission repository
func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

// Create stores a submission
func (r *submissionRepository) Create(ctx context.Context, submission *models.Submission) error {
	return translateError(r.db.WithContext(ctx).Create(submission).Error)
}

// GetByID gets a submission by ID
func (r *submissionRepository) GetByID(ctx context.Context, id string) (*models.Submission, error) {
	var submission models.Submission
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&submission).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &submission, nil
}

// ListByUser lists a user's submissions, newest first
func (r *submissionRepository) ListByUser(ctx context.Context, userID string, offset, limit int) ([]*models.Submission, int64, error) {
	var submissions []*models.Submission
	var total int64

	// Count total
	if err := r.db.WithContext(ctx).Model(&models.Submission{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Get submissions with pagination
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&submissions).Error; err != nil {
		return nil, 0, err
	}

	return submissions, total, nil
}

// DeleteOlderThan removes submissions created before cutoff
func (r *submissionRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&models.Submission{})
	return result.RowsAffected, result.Error
}
