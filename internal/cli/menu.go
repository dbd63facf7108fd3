package cli

import (
	"bufio"
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rahullath/serializd-ai/internal/models"
	"github.com/rahullath/serializd-ai/internal/service"
)

type recommender interface {
	Generate(ctx context.Context, limit int) ([]models.ScoredRecommendation, error)
	Recommendations(ctx context.Context, limit int) ([]models.ScoredRecommendation, error)
}

type tracker interface {
	AddToWatchlist(ctx context.Context, e *models.WatchlistEntry) error
	Watchlist(ctx context.Context) ([]models.WatchlistEntry, error)
	LogWatch(ctx context.Context, e *models.WatchLogEntry) error
	Stats(ctx context.Context) (*models.WatchStats, error)
}

// Menu is the interactive numbered-choice loop.
type Menu struct {
	in      *bufio.Scanner
	p       *Printer
	recs    recommender
	tracker tracker
}

func NewMenu(in io.Reader, out io.Writer, recs recommender, t tracker) *Menu {
	return &Menu{
		in:      bufio.NewScanner(in),
		p:       NewPrinter(out),
		recs:    recs,
		tracker: t,
	}
}

func newMenuCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Interactive recommendation and tracking menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd, opts, func(d *deps) error {
				m := NewMenu(cmd.InOrStdin(), cmd.OutOrStdout(), d.recommendations(), d.tracking())
				return m.Run(cmd.Context())
			})
		},
	}
}

// Run loops until the user exits or input ends. Failed operations are
// reported and the loop carries on.
func (m *Menu) Run(ctx context.Context) error {
	m.p.Info("TV Recommendation & Tracking System")
	m.p.Println("=====================================")

	for {
		m.p.Println()
		m.p.Println("Options:")
		m.p.Println("1. Generate new recommendations")
		m.p.Println("2. View recommendations")
		m.p.Println("3. View watchlist")
		m.p.Println("4. Add to watchlist")
		m.p.Println("5. Log a watch")
		m.p.Println("6. View statistics")
		m.p.Println("7. Exit")

		choice, ok := m.prompt("\nEnter your choice (1-7): ")
		if !ok {
			return m.in.Err()
		}

		switch choice {
		case "1":
			m.generate(ctx)
		case "2":
			limit, _ := m.prompt("How many recommendations to show? (default 10): ")
			m.showRecommendations(ctx, atoiOr(limit, service.DefaultListLimit))
		case "3":
			m.showWatchlist(ctx)
		case "4":
			m.addToWatchlist(ctx)
		case "5":
			m.logWatch(ctx)
		case "6":
			m.showStats(ctx)
		case "7":
			m.p.Println("Goodbye!")
			return nil
		default:
			m.p.Println("Invalid choice. Please try again.")
		}
	}
}

func (m *Menu) generate(ctx context.Context) {
	recs, err := m.recs.Generate(ctx, 0)
	if err != nil {
		m.p.Error("recommendation generation unavailable: %v", err)
		return
	}
	m.p.Success("Generated %d recommendations", len(recs))
}

func (m *Menu) showRecommendations(ctx context.Context, limit int) {
	recs, err := m.recs.Recommendations(ctx, limit)
	if err != nil {
		m.p.Error("recommendations unavailable: %v", err)
		return
	}
	m.p.Recommendations(recs)
}

func (m *Menu) showWatchlist(ctx context.Context) {
	entries, err := m.tracker.Watchlist(ctx)
	if err != nil {
		m.p.Error("watchlist unavailable: %v", err)
		return
	}
	m.p.Watchlist(entries)
}

func (m *Menu) addToWatchlist(ctx context.Context) {
	title, _ := m.prompt("Enter show title: ")
	priority, _ := m.prompt("Enter priority (1-10, default 5): ")
	notes, _ := m.prompt("Enter notes (optional): ")

	entry := &models.WatchlistEntry{
		Title:    title,
		Priority: atoiOr(priority, models.DefaultPriority),
		Notes:    notes,
	}
	if err := m.tracker.AddToWatchlist(ctx, entry); err != nil {
		m.p.Error("could not add to watchlist: %v", err)
		return
	}
	m.p.Success("Added %s to watchlist with priority %d", entry.Title, entry.Priority)
}

func (m *Menu) logWatch(ctx context.Context) {
	title, _ := m.prompt("Enter show title: ")
	season, _ := m.prompt("Enter season (optional): ")
	episode, _ := m.prompt("Enter episode (optional): ")
	rating, _ := m.prompt("Enter rating 1-10 (optional): ")
	review, _ := m.prompt("Enter review (optional): ")

	entry := &models.WatchLogEntry{
		Title:      title,
		Season:     optionalInt(season),
		Episode:    optionalInt(episode),
		ReviewText: review,
	}
	// Out-of-range ratings are dropped rather than rejected.
	if r := optionalInt(rating); r != nil && models.ValidUserRating(*r) {
		entry.Rating = r
	}
	if err := m.tracker.LogWatch(ctx, entry); err != nil {
		m.p.Error("could not log watch: %v", err)
		return
	}
	m.p.Success("Logged watch: %s", describeWatch(entry))
}

func (m *Menu) showStats(ctx context.Context) {
	stats, err := m.tracker.Stats(ctx)
	if err != nil {
		m.p.Error("statistics unavailable: %v", err)
		return
	}
	m.p.Stats(stats)
}

// prompt prints label and reads one trimmed line. ok is false at end of
// input.
func (m *Menu) prompt(label string) (string, bool) {
	m.p.Printf("%s", label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// optionalInt parses a non-negative integer answer, nil otherwise.
func optionalInt(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}

func atoiOr(s string, fallback int) int {
	if n := optionalInt(s); n != nil && *n > 0 {
		return *n
	}
	return fallback
}
