package handler

import (
	"errors"
	"log/slog"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"

	"github.com/rahullath/serializd-ai/internal/repository"
	"github.com/rahullath/serializd-ai/internal/service"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewApp creates a Fiber app with the shared error handler and JSON codec.
func NewApp(name string) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:      name,
		ServerHeader: "Serializd-AI",
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}
			slog.Error("unhandled error", "error", err, "status", code)
			return c.Status(code).JSON(ErrorResponse{Error: err.Error()})
		},
	})
}

// Health returns service health status.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func Health(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "serializd-ai",
	})
}

// respondError maps service errors onto status codes. fallback is the
// message shown for unexpected failures, which are logged.
func respondError(c fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: err.Error()})
	case service.IsUnavailable(err):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrMissingAPIKey):
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrInvalidPriority),
		errors.Is(err, service.ErrInvalidRating):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}
	slog.Error(fallback, "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: fallback})
}

func parseID(c fiber.Ctx) (int, bool) {
	id := fiber.Params[int](c, "id")
	return id, id > 0
}
