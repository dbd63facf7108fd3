package handler

import "github.com/gofiber/fiber/v3"

// Handlers bundles the route handlers registered by Register.
type Handlers struct {
	Profile         *ProfileHandler
	Recommendations *RecommendationHandler
	Tracking        *TrackingHandler
}

// Register mounts the health check and the /api/v1 routes. guards run in
// front of the API group only.
func Register(app *fiber.App, h Handlers, guards ...fiber.Handler) {
	app.Get("/health", Health)

	api := app.Group("/api/v1")
	for _, g := range guards {
		api.Use(g)
	}
	api.Get("/profile", h.Profile.GetProfile)
	api.Post("/profile/analyze", h.Profile.Analyze)

	api.Get("/recommendations", h.Recommendations.ListRecommendations)
	api.Post("/recommendations/generate", h.Recommendations.Generate)
	api.Post("/recommendations/:id/watched", h.Recommendations.MarkWatched)

	api.Get("/watchlist", h.Tracking.ListWatchlist)
	api.Post("/watchlist", h.Tracking.AddToWatchlist)
	api.Post("/watchlist/:id/watched", h.Tracking.MarkWatchlistWatched)

	api.Post("/watch-logs", h.Tracking.LogWatch)
	api.Get("/stats", h.Tracking.Stats)
}
