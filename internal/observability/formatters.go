// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-fit/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// barWidth is the width of a score bar
	barWidth = 20
)

// Printer handles formatted output for the CLI
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", pad(title, boxWidth-4))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %s │\n", pad(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// pad truncates or right-pads s to exactly width runes.
func pad(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width-3]) + "..."
	}
	return s + strings.Repeat(" ", width-len(runes))
}

// bar renders a percentage as a fixed-width bar.
func bar(percent types.Percent) string {
	filled := int(float64(percent) / 100 * barWidth)
	filled = max(0, min(barWidth, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", barWidth-filled)
}

// PrintScoreCard outputs the scores as bars followed by the suggestions.
func (p *Printer) PrintScoreCard(card *types.ScoreCard) {
	if card == nil {
		return
	}

	rows := []struct {
		name  string
		value types.Percent
	}{
		{"Overall", card.OverallScore},
		{"Skills", card.SkillsScore},
		{"Experience", card.ExperienceScore},
		{"Education", card.EducationScore},
		{"Keywords", card.KeywordsScore},
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-11s %5.1f%%  %s\n", row.name, float64(row.value), bar(row.value)))
	}

	if len(card.Suggestions) > 0 {
		sb.WriteString("\nSuggestions:\n")
		for _, s := range card.Suggestions {
			sb.WriteString(fmt.Sprintf("  • %s\n", s))
		}
	}

	p.printBox("RESUME FIT", strings.TrimSuffix(sb.String(), "\n"))
}
