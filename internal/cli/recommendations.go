package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/rahullath/serializd-ai/internal/service"
)

func newGenerateCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Score fresh TMDB candidates against the taste profile",
		Long: `Fetches shows similar to the ones you watched plus this week's trending
list, scores them against the saved taste profile and replaces the stored
recommendations.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireAPIKey(opts.cfg); err != nil {
				return err
			}
			return withDeps(cmd, opts, func(d *deps) error {
				p := NewPrinter(cmd.OutOrStdout())
				recs, err := d.recommendations().Generate(cmd.Context(), limit)
				if err != nil {
					return err
				}
				p.Success("Generated %d recommendations", len(recs))
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "Candidate cap (default CANDIDATE_LIMIT)")
	return cmd
}

func newRecommendationsCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "recommendations",
		Aliases: []string{"recs"},
		Short:   "List the top unwatched recommendations",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, opts, func(d *deps) error {
				recs, err := d.recommendations().Recommendations(cmd.Context(), limit)
				if err != nil {
					return fmt.Errorf("recommendations unavailable: %w", err)
				}
				NewPrinter(cmd.OutOrStdout()).Recommendations(recs)
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", service.DefaultListLimit, "Number of recommendations to show")

	cmd.AddCommand(&cobra.Command{
		Use:   "watched <id>",
		Short: "Mark a recommendation as watched",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withDeps(cmd, opts, func(d *deps) error {
				if err := d.recommendations().MarkWatched(cmd.Context(), id); err != nil {
					return err
				}
				NewPrinter(cmd.OutOrStdout()).Success("Marked recommendation %d as watched", id)
				return nil
			})
		},
	})
	return cmd
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
