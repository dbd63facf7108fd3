package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rahullath/serializd-ai/internal/service"
)

const maxListLimit = 50

// RecommendationHandler handles HTTP requests for recommendations.
type RecommendationHandler struct {
	svc *service.RecommendationService
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(svc *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{svc: svc}
}

// ListRecommendations returns the top unwatched recommendations.
// @Summary List recommendations
// @Tags recommendations
// @Produce json
// @Param limit query int false "Number of results" default(10)
// @Success 200 {array} models.ScoredRecommendation
// @Failure 500 {object} ErrorResponse
// @Router /recommendations [get]
func (h *RecommendationHandler) ListRecommendations(c fiber.Ctx) error {
	limit := fiber.Query(c, "limit", service.DefaultListLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	recs, err := h.svc.Recommendations(c.Context(), limit)
	if err != nil {
		return respondError(c, err, "failed to retrieve recommendations")
	}
	return c.JSON(recs)
}

// Generate runs the recommendation pipeline and replaces the stored batch.
// @Summary Generate recommendations
// @Tags recommendations
// @Produce json
// @Param limit query int false "Candidate cap, defaults to CANDIDATE_LIMIT"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /recommendations/generate [post]
func (h *RecommendationHandler) Generate(c fiber.Ctx) error {
	limit := fiber.Query(c, "limit", 0)

	recs, err := h.svc.Generate(c.Context(), limit)
	if err != nil {
		return respondError(c, err, "recommendation generation failed")
	}
	return c.JSON(fiber.Map{
		"message":         "recommendations generated",
		"generated":       len(recs),
		"recommendations": recs,
	})
}

// MarkWatched flags a recommendation as watched so it drops out of the list.
// @Summary Mark recommendation watched
// @Tags recommendations
// @Param id path int true "Recommendation ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /recommendations/{id}/watched [post]
func (h *RecommendationHandler) MarkWatched(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid recommendation ID",
		})
	}
	if err := h.svc.MarkWatched(c.Context(), id); err != nil {
		return respondError(c, err, "failed to update recommendation")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
