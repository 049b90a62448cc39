package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lifecover/internal/adapters/persistence/models"
	"lifecover/internal/core/domain"

	"gorm.io/gorm"
)

// UserRepository defines user repository interface.
// Create must fail with domain.ErrDuplicateEntry when the email is taken;
// the store's unique constraint is the only uniqueness check.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// SubmissionRepository defines submission repository interface
type SubmissionRepository interface {
	Create(ctx context.Context, submission *models.Submission) error
	GetByID(ctx context.Context, id string) (*models.Submission, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]*models.Submission, int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// translateError maps driver-level errors onto domain sentinels
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", domain.ErrDuplicateEntry, err)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	default:
		return err
	}
}
