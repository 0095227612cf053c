package tui

import (
	"testing"

	"github.com/aretw0/cleanerbot"
	"github.com/aretw0/cleanerbot/pkg/domain"
	"github.com/aretw0/cleanerbot/pkg/robot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportMarkdown(t *testing.T) {
	r := &cleanerbot.Report{
		Scenario:      "office",
		Strategy:      "perimeter",
		Width:         10,
		Height:        6,
		Position:      domain.Pt(0, 0),
		DirtRemaining: 1,
		Stats:         robot.Stats{Moves: 29, CellsCleaned: 2},
	}

	md := ReportMarkdown(r)

	assert.Contains(t, md, "## Cleaning run: office")
	assert.Contains(t, md, "| Moves | 29 |")
	assert.Contains(t, md, "| Final position | (0,0) |")
	assert.Contains(t, md, "1 dirty cell(s) were out of reach")
}

func TestReportMarkdown_Clean(t *testing.T) {
	md := ReportMarkdown(&cleanerbot.Report{Strategy: "spiral"})

	assert.Contains(t, md, "## Cleaning run\n")
	assert.NotContains(t, md, "out of reach")
}

func TestNewReportRenderer_Plain(t *testing.T) {
	render := NewReportRenderer(false)

	out, err := render("## Title")
	require.NoError(t, err)
	assert.Equal(t, "## Title", out)
}
