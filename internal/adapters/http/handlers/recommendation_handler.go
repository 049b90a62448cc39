package handlers

import (
	"time"

	"lifecover/internal/core/domain"
	"lifecover/internal/core/services"
	"lifecover/internal/core/validation"
	"lifecover/internal/pkg/pagination"
	"lifecover/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RecommendationHandler handles recommendation endpoints
type RecommendationHandler struct {
	recommendationService *services.RecommendationService
	log                   *zap.Logger
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(recommendationService *services.RecommendationService, log *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{
		recommendationService: recommendationService,
		log:                   log,
	}
}

// RecommendationRequest represents the applicant profile body
type RecommendationRequest = validation.ProfileInput

// RecommendationResponse represents a stored recommendation
type RecommendationResponse struct {
	ID             string    `json:"id"`
	Recommendation string    `json:"recommendation"`
	Explanation    string    `json:"explanation"`
	CoverageAmount int64     `json:"coverageAmount"`
	TermYears      int       `json:"termYears"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toRecommendationResponse(rec *domain.Recommendation) RecommendationResponse {
	return RecommendationResponse{
		ID:             rec.ID,
		Recommendation: rec.RecommendationText,
		Explanation:    rec.ExplanationText,
		CoverageAmount: rec.CoverageAmount,
		TermYears:      rec.TermYears,
		CreatedAt:      rec.CreatedAt,
	}
}

// Create handles a recommendation request
// @Summary Get a coverage recommendation
// @Description Compute a term life recommendation for an applicant profile and store it.
// @Description A bearer token is optional and attributes the submission to the caller.
// @Tags Recommendation
// @Accept json
// @Produce json
// @Param body body RecommendationRequest true "Applicant profile"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 500 {object} response.Response
// @Router /recommendation [post]
func (h *RecommendationHandler) Create(c *fiber.Ctx) error {
	var req RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	var userID *string
	if id, ok := c.Locals("userID").(string); ok && id != "" {
		userID = &id
	}

	rec, err := h.recommendationService.Recommend(c.Context(), req, userID)
	if err != nil {
		return response.FromError(c, h.log, err)
	}

	return response.Success(c, toRecommendationResponse(rec))
}

// List returns the caller's recommendation history
// @Summary List my recommendations
// @Tags Recommendation
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Router /recommendations [get]
func (h *RecommendationHandler) List(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	params := pagination.GetParams(c)
	recs, total, err := h.recommendationService.History(c.Context(), userID, params)
	if err != nil {
		return response.FromError(c, h.log, err)
	}

	items := make([]RecommendationResponse, 0, len(recs))
	for _, rec := range recs {
		items = append(items, toRecommendationResponse(rec))
	}

	return response.Success(c, pagination.NewResponse(items, params, total))
}

// Get returns one of the caller's recommendations
// @Summary Get a stored recommendation
// @Tags Recommendation
// @Produce json
// @Security BearerAuth
// @Param id path string true "Recommendation ID"
// @Success 200 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /recommendations/{id} [get]
func (h *RecommendationHandler) Get(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(string)
	if !ok {
		return response.Unauthorized(c, "Unauthorized")
	}

	rec, err := h.recommendationService.Get(c.Context(), c.Params("id"), userID)
	if err != nil {
		return response.FromError(c, h.log, err)
	}

	return response.Success(c, toRecommendationResponse(rec))
}
