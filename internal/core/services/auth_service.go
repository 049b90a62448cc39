package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lifecover/internal/adapters/persistence/models"
	"lifecover/internal/adapters/persistence/repositories"
	"lifecover/internal/config"
	"lifecover/internal/core/domain"
	"lifecover/internal/core/validation"
	"lifecover/internal/pkg/jwt"
	"lifecover/internal/pkg/logger"
	"lifecover/internal/pkg/password"

	"go.uber.org/zap"
)

// AuthService handles registration, login and session token verification.
// It keeps no state of its own; the user store is the source of truth.
type AuthService struct {
	userRepo repositories.UserRepository
	hasher   *password.Hasher
	cfg      *config.Config
	log      *zap.Logger
	now      func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repositories.UserRepository,
	hasher *password.Hasher,
	cfg *config.Config,
	log *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		cfg:      cfg,
		log:      logger.Named(log, "auth"),
		now:      time.Now,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
}

// LoginInput represents login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is a signed session token and the account it belongs to
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *domain.UserAccount
}

// Register creates an account. A taken email yields domain.ErrEmailTaken;
// concurrent registrations for one email are serialized by the store's unique index.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*domain.UserAccount, error) {
	// 1. Validate and normalize
	creds, err := validation.ValidateRegistration(validation.CredentialsInput{
		Email:           input.Email,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
	})
	if err != nil {
		return nil, err
	}

	// 2. Hash password
	hash, err := s.hasher.Hash(ctx, creds.Password)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("hash password: %w", err))
	}

	// 3. Create user; the unique index decides who wins a race
	user := &models.User{
		Email:        creds.Email,
		PasswordHash: hash,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, domain.ErrEmailTaken
		}
		return nil, domain.NewInternalError(fmt.Errorf("create user: %w", err))
	}

	s.log.Info("✅ User registered", zap.String("user_id", user.ID))
	return user.ToDomain(), nil
}

// Login authenticates a user and issues a session token.
// Unknown email and wrong password return the same error.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginResult, error) {
	// 1. Validate and normalize
	creds, err := validation.ValidateCredentials(validation.CredentialsInput{
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return nil, err
	}

	// 2. Find user by email
	user, err := s.userRepo.GetByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			// Spend the same bcrypt work as a real comparison
			if burnErr := s.hasher.Burn(ctx, creds.Password); burnErr != nil {
				return nil, domain.NewInternalError(burnErr)
			}
			return nil, domain.ErrInvalidCredentials
		}
		return nil, domain.NewInternalError(fmt.Errorf("find user: %w", err))
	}

	// 3. Verify password
	ok, err := s.hasher.Verify(ctx, creds.Password, user.PasswordHash)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("verify password: %w", err))
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}

	// 4. Issue session token
	token, expiresAt, err := jwt.GenerateSessionToken(
		user.ID,
		user.Email,
		s.cfg.JWT.Secret,
		s.cfg.JWT.TokenTTL(),
		s.now(),
	)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("sign token: %w", err))
	}

	s.log.Info("✅ User logged in", zap.String("user_id", user.ID))

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.ToDomain(),
	}, nil
}

// VerifyToken checks a session token's signature and expiry without touching the store
func (s *AuthService) VerifyToken(token string) (*domain.SessionClaims, error) {
	claims, err := jwt.ValidateSessionToken(token, s.cfg.JWT.Secret, s.now)
	if err != nil {
		return nil, &domain.AppError{Kind: domain.KindAuthentication, Message: domain.ErrInvalidToken.Message, Err: err}
	}

	return &domain.SessionClaims{
		UserID:    claims.UserID,
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// CurrentUser gets the account behind a verified session
func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.UserAccount, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, domain.NewInternalError(fmt.Errorf("find user: %w", err))
	}
	return user.ToDomain(), nil
}
