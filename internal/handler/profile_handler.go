package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/rahullath/serializd-ai/internal/service"
)

// ProfileHandler serves the taste profile.
type ProfileHandler struct {
	svc *service.AnalysisService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc *service.AnalysisService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// GetProfile returns the last saved taste profile.
// @Summary Get taste profile
// @Tags profile
// @Produce json
// @Success 200 {object} models.TasteProfile
// @Failure 409 {object} ErrorResponse
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c fiber.Ctx) error {
	profile, err := h.svc.Profile(c.Context())
	if err != nil {
		return respondError(c, err, "failed to load taste profile")
	}
	return c.JSON(profile)
}

// Analyze rebuilds the taste profile from the watched-shows and reviews
// tables.
// @Summary Rebuild taste profile
// @Tags profile
// @Produce json
// @Success 200 {object} models.TasteProfile
// @Failure 409 {object} ErrorResponse
// @Router /profile/analyze [post]
func (h *ProfileHandler) Analyze(c fiber.Ctx) error {
	profile, err := h.svc.Analyze(c.Context())
	if err != nil {
		return respondError(c, err, "analysis failed")
	}
	return c.JSON(profile)
}
