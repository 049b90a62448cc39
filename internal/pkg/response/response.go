package response

import (
	"errors"

	"lifecover/internal/core/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Response represents a standard API response
type Response struct {
	Success bool              `json:"success"`
	Message string            `json:"message,omitempty"`
	Token   string            `json:"token,omitempty"`
	Data    interface{}       `json:"data,omitempty"`
	Error   string            `json:"error,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// Success sends a success response
func Success(c *fiber.Ctx, data interface{}) error {
	return c.JSON(Response{
		Success: true,
		Data:    data,
	})
}

// WithToken sends a success response carrying a session token
func WithToken(c *fiber.Ctx, token string, data interface{}) error {
	return c.JSON(Response{
		Success: true,
		Token:   token,
		Data:    data,
	})
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Success: false,
		Error:   message,
	})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx) error {
	return Error(c, fiber.StatusInternalServerError, "Internal server error")
}

// StatusFor maps an error kind to its HTTP status
func StatusFor(kind domain.ErrorKind) int {
	switch kind {
	case domain.KindValidation, domain.KindDuplicateResource:
		return fiber.StatusBadRequest
	case domain.KindAuthentication:
		return fiber.StatusUnauthorized
	case domain.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// FromError renders err according to its kind.
// Anything that is not a tagged client error is logged and answered with a content-free 500.
func FromError(c *fiber.Ctx, log *zap.Logger, err error) error {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) || appErr.Kind == domain.KindInternal {
		if log != nil {
			log.Error("❌ request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err),
			)
		}
		return InternalServerError(c)
	}

	return c.Status(StatusFor(appErr.Kind)).JSON(Response{
		Success: false,
		Error:   appErr.Message,
		Details: appErr.Details,
	})
}
