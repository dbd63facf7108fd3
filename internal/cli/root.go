package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rahullath/serializd-ai/internal/config"
)

type options struct {
	verbose bool
	cfg     *config.Config
}

// NewRootCommand builds the serializd-ai command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "serializd-ai",
		Short: "TV taste analysis and recommendations from your Serializd history",
		Long: `serializd-ai enriches a scraped Serializd watch history with TMDB
metadata, builds a taste profile from it, and ranks TMDB shows into a
personalised recommendation list you can track from the terminal.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newAnalyzeCmd(opts),
		newEnrichCmd(opts),
		newGenerateCmd(opts),
		newRecommendationsCmd(opts),
		newWatchlistCmd(opts),
		newLogCmd(opts),
		newStatsCmd(opts),
		newMenuCmd(opts),
		newServeCmd(opts),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure. SIGINT and
// SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := NewRootCommand().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// withDeps connects to the store for the duration of fn.
func withDeps(cmd *cobra.Command, opts *options, fn func(*deps) error) error {
	d, err := connect(cmd.Context(), opts.cfg)
	if err != nil {
		return err
	}
	defer d.Close()
	return fn(d)
}
