package routes

import (
	"time"

	"lifecover/internal/adapters/http/handlers"
	"lifecover/internal/adapters/http/middleware"
	"lifecover/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// historyCacheAge is how long browsers may keep a caller's stored recommendations
const historyCacheAge = time.Minute

// Handlers groups everything the router mounts
type Handlers struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Recommendation *handlers.RecommendationHandler
	Verifier       services.TokenVerifier
}

// Setup configures all routes for the application
func Setup(app *fiber.App, h *Handlers) {
	// Health check & root routes
	app.Get("/", h.Health.Root)
	app.Get("/health", h.Health.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Public paths are served both at the root and under /api/v1
	setupAPIRoutes(app, h)

	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", h.Health.APIInfo)
	setupAPIRoutes(apiV1, h)
}

// setupAPIRoutes configures auth and recommendation routes on a router
func setupAPIRoutes(router fiber.Router, h *Handlers) {
	authRoutes := router.Group("/auth", middleware.NoCacheHeaders())
	setupAuthRoutes(authRoutes, h)

	router.Post("/recommendation", middleware.OptionalAuth(h.Verifier), h.Recommendation.Create)

	recommendationRoutes := router.Group("/recommendations")
	recommendationRoutes.Use(middleware.AuthMiddleware(h.Verifier))
	recommendationRoutes.Use(middleware.PrivateCacheHeaders(historyCacheAge))
	recommendationRoutes.Get("/", h.Recommendation.List)
	recommendationRoutes.Get("/:id", h.Recommendation.Get)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, h *Handlers) {
	// Public routes
	router.Post("/register", h.Auth.Register)
	router.Post("/login", h.Auth.Login)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(h.Verifier), h.Auth.Me)
}
