package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rahullath/serializd-ai/internal/models"
)

const dateLayout = "2006-01-02"

func newWatchlistCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watchlist",
		Short: "Manage the shows you plan to watch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listWatchlist(cmd, opts)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List unwatched entries by priority",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listWatchlist(cmd, opts)
		},
	})

	var (
		priority int
		notes    string
		tmdbID   int
	)
	add := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a show to the watchlist",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := &models.WatchlistEntry{
				Title:    strings.Join(args, " "),
				Priority: priority,
				Notes:    notes,
			}
			if cmd.Flags().Changed("tmdb-id") {
				entry.TMDBID = &tmdbID
			}
			return withDeps(cmd, opts, func(d *deps) error {
				if err := d.tracking().AddToWatchlist(cmd.Context(), entry); err != nil {
					return err
				}
				NewPrinter(cmd.OutOrStdout()).Success("Added %s to watchlist with priority %d", entry.Title, entry.Priority)
				return nil
			})
		},
	}
	add.Flags().IntVarP(&priority, "priority", "p", models.DefaultPriority, "Priority 1-10")
	add.Flags().StringVar(&notes, "notes", "", "Free-form notes")
	add.Flags().IntVar(&tmdbID, "tmdb-id", 0, "TMDB show id")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "done <id>",
		Short: "Mark a watchlist entry as watched",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return withDeps(cmd, opts, func(d *deps) error {
				if err := d.tracking().MarkWatchlistWatched(cmd.Context(), id); err != nil {
					return err
				}
				NewPrinter(cmd.OutOrStdout()).Success("Marked watchlist entry %d as watched", id)
				return nil
			})
		},
	})
	return cmd
}

func listWatchlist(cmd *cobra.Command, opts *options) error {
	return withDeps(cmd, opts, func(d *deps) error {
		entries, err := d.tracking().Watchlist(cmd.Context())
		if err != nil {
			return fmt.Errorf("watchlist unavailable: %w", err)
		}
		NewPrinter(cmd.OutOrStdout()).Watchlist(entries)
		return nil
	})
}

func newLogCmd(opts *options) *cobra.Command {
	var (
		season, episode, rating, tmdbID int
		review, date                    string
	)

	cmd := &cobra.Command{
		Use:   "log <title>",
		Short: "Record a watch",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry := &models.WatchLogEntry{
				Title:      strings.Join(args, " "),
				ReviewText: review,
			}
			flags := cmd.Flags()
			if flags.Changed("season") {
				entry.Season = &season
			}
			if flags.Changed("episode") {
				entry.Episode = &episode
			}
			if flags.Changed("rating") {
				entry.Rating = &rating
			}
			if flags.Changed("tmdb-id") {
				entry.TMDBID = &tmdbID
			}
			if date != "" {
				d, err := time.ParseInLocation(dateLayout, date, time.Local)
				if err != nil {
					return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", date)
				}
				entry.WatchDate = d
			}

			return withDeps(cmd, opts, func(d *deps) error {
				if err := d.tracking().LogWatch(cmd.Context(), entry); err != nil {
					return err
				}
				NewPrinter(cmd.OutOrStdout()).Success("Logged watch: %s", describeWatch(entry))
				return nil
			})
		},
	}
	f := cmd.Flags()
	f.IntVarP(&season, "season", "s", 0, "Season number")
	f.IntVarP(&episode, "episode", "e", 0, "Episode number")
	f.IntVarP(&rating, "rating", "r", 0, "Rating 1-10")
	f.IntVar(&tmdbID, "tmdb-id", 0, "TMDB show id")
	f.StringVar(&review, "review", "", "Review text")
	f.StringVar(&date, "date", "", "Watch date YYYY-MM-DD (default now)")
	return cmd
}

func newStatsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show watching statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, opts, func(d *deps) error {
				stats, err := d.tracking().Stats(cmd.Context())
				if err != nil {
					return fmt.Errorf("statistics unavailable: %w", err)
				}
				NewPrinter(cmd.OutOrStdout()).Stats(stats)
				return nil
			})
		},
	}
}

// describeWatch renders "Title S2E7" style labels.
func describeWatch(e *models.WatchLogEntry) string {
	var b strings.Builder
	b.WriteString(e.Title)
	if e.Season != nil {
		fmt.Fprintf(&b, " S%d", *e.Season)
	}
	if e.Episode != nil {
		fmt.Fprintf(&b, "E%d", *e.Episode)
	}
	return b.String()
}
