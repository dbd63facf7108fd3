package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/rahullath/serializd-ai/internal/models"
)

const overviewPreview = 100

// Printer writes human-readable, coloured command output.
type Printer struct {
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Success prints a success message
func (p *Printer) Success(msg string, args ...any) {
	color.New(color.FgGreen).Fprintf(p.out, msg+"\n", args...)
}

// Error prints an error message
func (p *Printer) Error(msg string, args ...any) {
	color.New(color.FgRed).Fprintf(p.out, "Error: "+msg+"\n", args...)
}

// Info prints an info message
func (p *Printer) Info(msg string, args ...any) {
	color.New(color.FgCyan).Fprintf(p.out, msg+"\n", args...)
}

// Warning prints a warning message
func (p *Printer) Warning(msg string, args ...any) {
	color.New(color.FgYellow).Fprintf(p.out, "Warning: "+msg+"\n", args...)
}

func (p *Printer) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) header(title string, width int) {
	rule := strings.Repeat("=", width)
	p.Println()
	p.Println(rule)
	color.New(color.Bold).Fprintln(p.out, title)
	p.Println(rule)
}

func (p *Printer) footer(width int) {
	p.Println()
	p.Println(strings.Repeat("=", width))
}

// Recommendations prints a ranked recommendation list.
func (p *Printer) Recommendations(recs []models.ScoredRecommendation) {
	if len(recs) == 0 {
		p.Println("No recommendations available. Run generate first.")
		return
	}

	p.header("YOUR PERSONALIZED TV RECOMMENDATIONS", 60)
	for i, r := range recs {
		p.Println()
		color.New(color.FgCyan, color.Bold).Fprintf(p.out, "%d. %s\n", i+1, r.Title)
		p.Printf("   Score: %.2f/1.0\n", r.Score)
		p.Printf("   Rating: %.1f/10\n", r.VoteAverage)
		p.Printf("   Reason: %s\n", r.Reason)
		if len(r.ScoreReasons) > 0 {
			p.Printf("   Why: %s\n", strings.Join(r.ScoreReasons, "; "))
		}
		if r.Overview != "" {
			p.Printf("   Overview: %s\n", truncate(r.Overview, overviewPreview))
		}
	}
	p.footer(60)
}

// Watchlist prints the unwatched watchlist entries.
func (p *Printer) Watchlist(entries []models.WatchlistEntry) {
	if len(entries) == 0 {
		p.Println("Your watchlist is empty.")
		return
	}

	p.header("YOUR WATCHLIST", 40)
	for i, e := range entries {
		p.Println()
		color.New(color.FgCyan, color.Bold).Fprintf(p.out, "%d. %s\n", i+1, e.Title)
		p.Printf("   ID: %d\n", e.ID)
		p.Printf("   Priority: %d/10\n", e.Priority)
		if e.Notes != "" {
			p.Printf("   Notes: %s\n", e.Notes)
		}
		p.Printf("   Added: %s\n", e.AddedDate.Format("2006-01-02"))
	}
	p.footer(40)
}

// Stats prints the watch log statistics.
func (p *Printer) Stats(s *models.WatchStats) {
	if s == nil {
		p.Println("No watching statistics available.")
		return
	}

	p.header("YOUR WATCHING STATISTICS", 40)
	p.Printf("Total Episodes/Shows Watched: %d\n", s.TotalWatches)
	p.Printf("Watched This Week: %d\n", s.WeekWatches)
	p.Printf("Average Rating: %g/10\n", s.AverageRating)
	if len(s.TopShows) > 0 {
		p.Println()
		p.Println("Most Watched Shows:")
		for i, t := range s.TopShows {
			p.Printf("  %d. %s: %d episodes\n", i+1, t.Title, t.Count)
		}
	}
	p.footer(40)
}

// Profile prints a summary of a freshly built taste profile.
func (p *Printer) Profile(tp *models.TasteProfile) {
	p.header("YOUR TV TASTE PROFILE", 50)
	p.Printf("Total shows analyzed: %d\n", tp.Summary.TotalShowsWatched)
	p.Printf("Shows with genre data: %d\n", tp.Summary.ShowsWithGenreData)
	p.Printf("Reviews written: %d\n", tp.Summary.TotalReviewsWritten)

	if len(tp.GenrePreferences) > 0 {
		p.Println()
		p.Println("Top 5 Genres:")
		for i, g := range tp.GenrePreferences {
			if i == 5 {
				break
			}
			p.Printf("  %d. %s: %d shows (%.1f%%)\n", i+1, g.Genre, g.Count, g.Percentage)
		}
	}

	if rp := tp.RatingPatterns; rp != nil {
		p.Println()
		p.Println("Rating Patterns:")
		p.Printf("  Average rating: %.2f/10\n", rp.AverageRating)
		p.Printf("  Rating range: %.1f - %.1f\n", rp.MinRating, rp.MaxRating)
		p.Printf("  Total rated shows: %d\n", rp.TotalRatedShows)
	}

	if len(tp.Insights) > 0 {
		p.Println()
		p.Println("Key Insights:")
		for _, in := range tp.Insights {
			p.Printf("  - %s\n", in)
		}
	}
	p.footer(50)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
