package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"lifecover/internal/adapters/persistence/models"
	"lifecover/internal/core/domain"

	"github.com/google/uuid"
)

// UserRepositoryMemory is an in-memory UserRepository.
// The email index plays the role of the SQL unique constraint.
type UserRepositoryMemory struct {
	mu      sync.RWMutex
	byID    map[string]*models.User
	byEmail map[string]string
}

// NewUserRepositoryMemory creates a new in-memory user repository
func NewUserRepositoryMemory() *UserRepositoryMemory {
	return &UserRepositoryMemory{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]string),
	}
}

// Create stores the user, failing with domain.ErrDuplicateEntry on a taken email
func (r *UserRepositoryMemory) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return domain.ErrDuplicateEntry
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	stored := *user
	r.byID[user.ID] = &stored
	r.byEmail[user.Email] = user.ID
	return nil
}

// GetByID gets a user by ID
func (r *UserRepositoryMemory) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

// GetByEmail gets a user by email
func (r *UserRepositoryMemory) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *r.byID[id]
	return &copied, nil
}

// SubmissionRepositoryMemory is an in-memory SubmissionRepository
type SubmissionRepositoryMemory struct {
	mu   sync.RWMutex
	data map[string]*models.Submission
}

// NewSubmissionRepositoryMemory creates a new in-memory submission repository
func NewSubmissionRepositoryMemory() *SubmissionRepositoryMemory {
	return &SubmissionRepositoryMemory{
		data: make(map[string]*models.Submission),
	}
}

// Create stores a submission
func (r *SubmissionRepositoryMemory) Create(ctx context.Context, submission *models.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if submission.ID == "" {
		submission.ID = uuid.NewString()
	}
	if _, exists := r.data[submission.ID]; exists {
		return domain.ErrDuplicateEntry
	}
	if submission.CreatedAt.IsZero() {
		submission.CreatedAt = time.Now()
	}

	stored := *submission
	r.data[submission.ID] = &stored
	return nil
}

// GetByID gets a submission by ID
func (r *SubmissionRepositoryMemory) GetByID(ctx context.Context, id string) (*models.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	submission, ok := r.data[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *submission
	return &copied, nil
}

// ListByUser lists a user's submissions, newest first
func (r *SubmissionRepositoryMemory) ListByUser(ctx context.Context, userID string, offset, limit int) ([]*models.Submission, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var owned []*models.Submission
	for _, s := range r.data {
		if s.UserID != nil && *s.UserID == userID {
			copied := *s
			owned = append(owned, &copied)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})

	total := int64(len(owned))
	if offset >= len(owned) {
		return []*models.Submission{}, total, nil
	}
	end := offset + limit
	if end > len(owned) {
		end = len(owned)
	}
	return owned[offset:end], total, nil
}

// DeleteOlderThan removes submissions created before cutoff
func (r *SubmissionRepositoryMemory) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var deleted int64
	for id, s := range r.data {
		if s.CreatedAt.Before(cutoff) {
			delete(r.data, id)
			deleted++
		}
	}
	return deleted, nil
}
