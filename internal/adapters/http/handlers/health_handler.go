package handlers

import (
	"context"
	"time"

	"lifecover/internal/config"

	"github.com/gofiber/fiber/v2"
)

// Pinger is anything whose liveness can be probed
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cfg   *config.Config
	cache Pinger
}

// NewHealthHandler creates a new health handler; cache may be nil
func NewHealthHandler(cfg *config.Config, cache Pinger) *HealthHandler {
	return &HealthHandler{cfg: cfg, cache: cache}
}

// Root handles root endpoint
// @Summary Root endpoint
// @Description Returns API status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "running",
		"message": "🚀 lifecover API v1.0 is running",
		"mode":    h.cfg.AppMode,
		"docs":    "/swagger/index.html",
	})
}

// HealthCheck handles health check
// @Summary Health check
// @Description Check API, database and cache health
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	// Check database
	dbStatus := "healthy"
	if h.cfg.Database.Driver == "memory" {
		dbStatus = "in-memory"
	} else if err := config.HealthCheck(); err != nil {
		dbStatus = "unhealthy"
	}

	// Check cache
	cacheStatus := "disabled"
	if h.cache != nil {
		ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()

		cacheStatus = "healthy"
		if err := h.cache.Ping(ctx); err != nil {
			cacheStatus = "unhealthy"
		}
	}

	return c.JSON(fiber.Map{
		"status": "ok",
		"checks": fiber.Map{
			"api":      "healthy",
			"database": dbStatus,
			"cache":    cacheStatus,
		},
	})
}

// APIInfo handles API v1 info
// @Summary API v1 Info
// @Description Returns API v1 information
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1 [get]
func (h *HealthHandler) APIInfo(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "lifecover API v1.0",
		"version": "1.0.0",
	})
}
