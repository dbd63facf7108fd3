package handler

import (
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/rahullath/serializd-ai/internal/models"
	"github.com/rahullath/serializd-ai/internal/service"
)

const watchDateLayout = "2006-01-02"

// TrackingHandler handles the watchlist, watch log and stats endpoints.
type TrackingHandler struct {
	svc *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(svc *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{svc: svc}
}

// WatchlistRequest is the body accepted by AddToWatchlist.
type WatchlistRequest struct {
	Title    string `json:"title"`
	TMDBID   *int   `json:"tmdb_id"`
	Priority int    `json:"priority"`
	Notes    string `json:"notes"`
}

// WatchLogRequest is the body accepted by LogWatch. WatchDate is optional
// and formatted YYYY-MM-DD.
type WatchLogRequest struct {
	Title      string `json:"title"`
	Season     *int   `json:"season"`
	Episode    *int   `json:"episode"`
	Rating     *int   `json:"rating"`
	ReviewText string `json:"review_text"`
	TMDBID     *int   `json:"tmdb_id"`
	WatchDate  string `json:"watch_date"`
}

// ListWatchlist returns unwatched watchlist entries, highest priority first.
// @Summary List watchlist
// @Tags watchlist
// @Produce json
// @Success 200 {array} models.WatchlistEntry
// @Router /watchlist [get]
func (h *TrackingHandler) ListWatchlist(c fiber.Ctx) error {
	entries, err := h.svc.Watchlist(c.Context())
	if err != nil {
		return respondError(c, err, "failed to retrieve watchlist")
	}
	return c.JSON(entries)
}

// AddToWatchlist adds a show to the watchlist.
// @Summary Add to watchlist
// @Tags watchlist
// @Accept json
// @Produce json
// @Param body body WatchlistRequest true "Watchlist entry"
// @Success 201 {object} models.WatchlistEntry
// @Failure 400 {object} ErrorResponse
// @Router /watchlist [post]
func (h *TrackingHandler) AddToWatchlist(c fiber.Ctx) error {
	var req WatchlistRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body",
		})
	}

	entry := &models.WatchlistEntry{
		Title:    req.Title,
		TMDBID:   req.TMDBID,
		Priority: req.Priority,
		Notes:    req.Notes,
	}
	if err := h.svc.AddToWatchlist(c.Context(), entry); err != nil {
		return respondError(c, err, "failed to add to watchlist")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// MarkWatchlistWatched removes an entry from the active watchlist.
// @Summary Mark watchlist entry watched
// @Tags watchlist
// @Param id path int true "Watchlist entry ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /watchlist/{id}/watched [post]
func (h *TrackingHandler) MarkWatchlistWatched(c fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid watchlist ID",
		})
	}
	if err := h.svc.MarkWatchlistWatched(c.Context(), id); err != nil {
		return respondError(c, err, "failed to update watchlist")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LogWatch records a watch event.
// @Summary Log a watch
// @Tags watch-logs
// @Accept json
// @Produce json
// @Param body body WatchLogRequest true "Watch event"
// @Success 201 {object} models.WatchLogEntry
// @Failure 400 {object} ErrorResponse
// @Router /watch-logs [post]
func (h *TrackingHandler) LogWatch(c fiber.Ctx) error {
	var req WatchLogRequest
	if err := c.Bind().Body(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid request body",
		})
	}

	entry := &models.WatchLogEntry{
		Title:      req.Title,
		Season:     req.Season,
		Episode:    req.Episode,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		TMDBID:     req.TMDBID,
	}
	if req.WatchDate != "" {
		d, err := time.Parse(watchDateLayout, req.WatchDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
				Error: "watch_date must be formatted YYYY-MM-DD",
			})
		}
		entry.WatchDate = d
	}

	if err := h.svc.LogWatch(c.Context(), entry); err != nil {
		return respondError(c, err, "failed to log watch")
	}
	return c.Status(fiber.StatusCreated).JSON(entry)
}

// Stats returns watch log statistics.
// @Summary Watch statistics
// @Tags watch-logs
// @Produce json
// @Success 200 {object} models.WatchStats
// @Router /stats [get]
func (h *TrackingHandler) Stats(c fiber.Ctx) error {
	stats, err := h.svc.Stats(c.Context())
	if err != nil {
		return respondError(c, err, "failed to compute stats")
	}
	return c.JSON(stats)
}
