package services

import (
	"lifecover/internal/core/domain"
)

// Note: AuthService implementation is in auth_service.go
// Note: RecommendationService implementation is in recommendation_service.go

// TokenVerifier verifies bearer session tokens (implemented by AuthService)
type TokenVerifier interface {
	VerifyToken(token string) (*domain.SessionClaims, error)
}

var _ TokenVerifier = (*AuthService)(nil)
