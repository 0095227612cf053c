package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/aretw0/cleanerbot"
	"github.com/charmbracelet/glamour"
)

// ReportMarkdown formats a run report as markdown.
func ReportMarkdown(r *cleanerbot.Report) string {
	var b strings.Builder

	title := "Cleaning run"
	if r.Scenario != "" {
		title += ": " + r.Scenario
	}
	fmt.Fprintf(&b, "## %s\n\n", title)

	b.WriteString("| | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Strategy | %s |\n", r.Strategy)
	fmt.Fprintf(&b, "| Grid | %dx%d |\n", r.Width, r.Height)
	fmt.Fprintf(&b, "| Moves | %d |\n", r.Stats.Moves)
	fmt.Fprintf(&b, "| Blocked moves | %d |\n", r.Stats.BlockedMoves)
	fmt.Fprintf(&b, "| Cells cleaned | %d |\n", r.Stats.CellsCleaned)
	fmt.Fprintf(&b, "| Dirt remaining | %d |\n", r.DirtRemaining)
	fmt.Fprintf(&b, "| Final position | %s |\n", r.Position)
	fmt.Fprintf(&b, "| Duration | %s |\n", r.Stats.Duration.Round(time.Millisecond))

	if r.DirtRemaining > 0 {
		fmt.Fprintf(&b, "\n> %d dirty cell(s) were out of reach for the **%s** strategy.\n", r.DirtRemaining, r.Strategy)
	}
	return b.String()
}

// NewReportRenderer returns a function that renders markdown using glamour.
// When styled is false the markdown is returned as is.
func NewReportRenderer(styled bool) func(string) (string, error) {
	if !styled {
		return func(md string) (string, error) { return md, nil }
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return func(md string) (string, error) { return md, nil }
	}
	return r.Render
}
