package cli

import (
	"github.com/spf13/cobra"

	"github.com/rahullath/serializd-ai/internal/service"
)

func newAnalyzeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Build and save the taste profile",
		Long: `Reads the enriched watched-shows table (falling back to the basic one)
and the reviews table, builds the taste profile and writes it to
TASTE_PROFILE_FILE.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := NewPrinter(cmd.OutOrStdout())
			profile, err := analysisService(opts.cfg).Analyze(cmd.Context())
			if err != nil {
				if service.IsUnavailable(err) {
					p.Error("taste analysis unavailable: %v", err)
				}
				return err
			}
			p.Profile(profile)
			p.Success("Taste profile saved to %s", opts.cfg.Files.TasteProfile)
			return nil
		},
	}
}

func newEnrichCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "enrich",
		Short: "Add TMDB metadata to the watched-shows table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p := NewPrinter(cmd.OutOrStdout())
			svc := service.NewEnrichService(tmdbClient(opts.cfg), opts.cfg.Files, opts.cfg.TMDB.APIKey)
			res, err := svc.Enrich(cmd.Context())
			if err != nil {
				return err
			}

			p.Success("Enriched %d of %d shows, saved to %s", res.Matched, res.Total, opts.cfg.Files.EnrichedShows)
			if len(res.Failed) > 0 {
				p.Warning("no TMDB match for %d shows", len(res.Failed))
				for _, title := range res.Failed {
					p.Printf("  - %s\n", title)
				}
			}
			return nil
		},
	}
}
