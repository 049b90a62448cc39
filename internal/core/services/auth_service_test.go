package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"lifecover/internal/adapters/persistence/models"
	"lifecover/internal/adapters/persistence/repositories"
	"lifecover/internal/config"
	"lifecover/internal/core/domain"
	"lifecover/internal/pkg/jwt"
	"lifecover/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-test-secret-test-secret"

func testConfig() *config.Config {
	return &config.Config{
		AppMode: "dev",
		JWT:     config.JWTConfig{Secret: testSecret, TokenTTLDays: 7},
		Security: config.SecurityConfig{
			BcryptCost:          bcrypt.MinCost,
			MaxConcurrentHashes: 4,
		},
	}
}

func newTestAuthService(t *testing.T, repo repositories.UserRepository) *AuthService {
	t.Helper()
	hasher, err := password.NewHasher(bcrypt.MinCost, 4)
	require.NoError(t, err)
	return NewAuthService(repo, hasher, testConfig(), nil)
}

func appErrorOf(t *testing.T, err error) *domain.AppError {
	t.Helper()
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	return appErr
}

func TestAuthService_RegisterThenLogin(t *testing.T) {
	repo := repositories.NewUserRepositoryMemory()
	svc := newTestAuthService(t, repo)
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{Email: "Jane@Example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.False(t, user.CreatedAt.IsZero())

	stored, err := repo.GetByEmail(ctx, "jane@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2a$"))

	result, err := svc.Login(ctx, &LoginInput{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, user.ID, result.User.ID)

	claims, err := svc.VerifyToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
}

func TestAuthService_RegisterValidation(t *testing.T) {
	svc := newTestAuthService(t, repositories.NewUserRepositoryMemory())

	_, err := svc.Register(context.Background(), &RegisterInput{Email: "nope", Password: "123"})

	appErr := appErrorOf(t, err)
	assert.Equal(t, domain.KindValidation, appErr.Kind)
	assert.Contains(t, appErr.Details, "email")
	assert.Contains(t, appErr.Details, "password")
}

func TestAuthService_RegisterOverlongPassword(t *testing.T) {
	repo := repositories.NewUserRepositoryMemory()
	svc := newTestAuthService(t, repo)

	_, err := svc.Register(context.Background(), &RegisterInput{Email: "jane@example.com", Password: strings.Repeat("x", 80)})

	appErr := appErrorOf(t, err)
	assert.Equal(t, domain.KindValidation, appErr.Kind)
	assert.Equal(t, "Password must be at most 72 bytes", appErr.Details["password"])

	_, err = repo.GetByEmail(context.Background(), "jane@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAuthService_RegisterDuplicate(t *testing.T) {
	svc := newTestAuthService(t, repositories.NewUserRepositoryMemory())
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterInput{Email: "JANE@example.com ", Password: "another1"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
	assert.Equal(t, domain.KindDuplicateResource, domain.KindOf(err))
}

func TestAuthService_ConcurrentRegisterSameEmail(t *testing.T) {
	svc := newTestAuthService(t, repositories.NewUserRepositoryMemory())

	const attempts = 2
	errs := make([]error, attempts)
	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			_, errs[i] = svc.Register(context.Background(), &RegisterInput{Email: "race@example.com", Password: "secret1"})
		}(i)
	}
	close(start)
	wg.Wait()

	var successes, duplicates int
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case errors.Is(err, domain.ErrEmailTaken):
			duplicates++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, duplicates)
}

type failingUserRepo struct {
	repositories.UserRepository
}

func (failingUserRepo) Create(ctx context.Context, user *models.User) error {
	return errors.New("disk on fire")
}

func (failingUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, errors.New("disk on fire")
}

func TestAuthService_StoreFailuresAreInternal(t *testing.T) {
	svc := newTestAuthService(t, failingUserRepo{})
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Email: "jane@example.com", Password: "secret1"})
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))

	_, err = svc.Login(ctx, &LoginInput{Email: "jane@example.com", Password: "secret1"})
	assert.Equal(t, domain.KindInternal, domain.KindOf(err))
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	svc := newTestAuthService(t, repositories.NewUserRepositoryMemory())
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, wrongPassword := svc.Login(ctx, &LoginInput{Email: "jane@example.com", Password: "wrong-password"})
	_, unknownEmail := svc.Login(ctx, &LoginInput{Email: "nobody@example.com", Password: "secret1"})

	assert.ErrorIs(t, wrongPassword, domain.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, domain.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_LoginValidation(t *testing.T) {
	svc := newTestAuthService(t, repositories.NewUserRepositoryMemory())

	_, err := svc.Login(context.Background(), &LoginInput{Email: "", Password: ""})

	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestAuthService_TokenExpiry(t *testing.T) {
	svc := newTestAuthService(t, repositories.NewUserRepositoryMemory())
	ctx := context.Background()
	issued := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	_, err := svc.Register(ctx, &RegisterInput{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)
	result, err := svc.Login(ctx, &LoginInput{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, issued.Add(7*24*time.Hour), result.ExpiresAt)

	svc.now = func() time.Time { return issued.Add(7*24*time.Hour - time.Second) }
	_, err = svc.VerifyToken(result.Token)
	assert.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(7 * 24 * time.Hour) }
	_, err = svc.VerifyToken(result.Token)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestAuthService_TamperedToken(t *testing.T) {
	svc := newTestAuthService(t, repositories.NewUserRepositoryMemory())
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)
	result, err := svc.Login(ctx, &LoginInput{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)

	last := result.Token[len(result.Token)-2]
	replacement := byte('A')
	if last == 'A' {
		replacement = 'B'
	}
	tampered := result.Token[:len(result.Token)-2] + string(replacement) + result.Token[len(result.Token)-1:]

	_, err = svc.VerifyToken(tampered)
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
	assert.Equal(t, domain.KindAuthentication, domain.KindOf(err))
}

func TestAuthService_CurrentUser(t *testing.T) {
	svc := newTestAuthService(t, repositories.NewUserRepositoryMemory())
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{Email: "jane@example.com", Password: "secret1"})
	require.NoError(t, err)

	got, err := svc.CurrentUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	_, err = svc.CurrentUser(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
