package cli

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/rahullath/serializd-ai/internal/handler"
	"github.com/rahullath/serializd-ai/internal/middleware"
)

func newServeCmd(opts *options) *cobra.Command {
	var docsPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the profile, recommendations and tracking over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

			return withDeps(cmd, opts, func(d *deps) error {
				app := newServer(opts, d, docsPath)

				go func() {
					<-cmd.Context().Done()
					slog.Info("shutting down server...")
					_ = app.Shutdown()
				}()

				addr := ":" + opts.cfg.Port
				slog.Info("starting server", "addr", addr)
				return app.Listen(addr)
			})
		},
	}
	cmd.Flags().StringVar(&docsPath, "docs", "docs/swagger.yaml", "OpenAPI document served at /swagger")
	return cmd
}

func newServer(opts *options, d *deps, docsPath string) *fiber.App {
	app := handler.NewApp("Serializd AI")

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	swaggerYAML, err := os.ReadFile(docsPath)
	if err != nil {
		slog.Warn("swagger.yaml not found, swagger UI will be unavailable", "error", err)
	} else {
		handler.RegisterSwagger(app, swaggerYAML)
	}

	limiter := middleware.NewRateLimiter(d.rdb, opts.cfg.RateLimitMax, opts.cfg.RateLimitWindowSeconds)
	handler.Register(app, handler.Handlers{
		Profile:         handler.NewProfileHandler(analysisService(opts.cfg)),
		Recommendations: handler.NewRecommendationHandler(d.recommendations()),
		Tracking:        handler.NewTrackingHandler(d.tracking()),
	}, limiter.Handler(), middleware.RequireToken(opts.cfg.APIToken))
	return app
}
