package middleware

import (
	"errors"
	"strings"

	"lifecover/internal/core/services"
	"lifecover/internal/pkg/jwt"
	"lifecover/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// bearerToken extracts the token from the Authorization header
func bearerToken(c *fiber.Ctx) string {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
}

// AuthMiddleware creates authentication middleware
func AuthMiddleware(verifier services.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// 1. Get token from Authorization header
		accessToken := bearerToken(c)
		if accessToken == "" {
			return response.Unauthorized(c, "Access token required")
		}

		// 2. Validate token
		claims, err := verifier.VerifyToken(accessToken)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return response.Unauthorized(c, "Access token expired")
			}
			return response.Unauthorized(c, "Invalid access token")
		}

		// 3. Set user info in context
		c.Locals("userID", claims.UserID)
		c.Locals("email", claims.Email)

		return c.Next()
	}
}

// OptionalAuth middleware - doesn't require auth but sets user info if token present
func OptionalAuth(verifier services.TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if accessToken := bearerToken(c); accessToken != "" {
			claims, err := verifier.VerifyToken(accessToken)
			if err == nil {
				c.Locals("userID", claims.UserID)
				c.Locals("email", claims.Email)
			}
		}

		return c.Next()
	}
}
