// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/nexflow/campaign-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxProofPointsToShow is the default number of proof points to display
	maxProofPointsToShow = 5
)

// Printer handles formatted output for verbose mode
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
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStrategy outputs a human-readable summary of a generated strategy.
func (p *Printer) PrintStrategy(strategy *types.Strategy) {
	if strategy == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Persona:  %s\n", strategy.Persona))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Key Insight:\n  %s\n", strategy.KeyInsight))
	sb.WriteString(fmt.Sprintf("Value Proposition:\n  %s\n", strategy.ValueProposition))
	sb.WriteString(fmt.Sprintf("Strategic Angle:\n  %s\n", strategy.StrategicCampaignAngle))

	if len(strategy.SupportingProofPoints) > 0 {
		sb.WriteString("\nProof Points:\n")
		count := min(len(strategy.SupportingProofPoints), maxProofPointsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", strategy.SupportingProofPoints[i]))
		}
		if len(strategy.SupportingProofPoints) > maxProofPointsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(strategy.SupportingProofPoints)-maxProofPointsToShow))
		}
	}

	if len(strategy.Sources) > 0 {
		sb.WriteString("\nSources:\n")
		for _, s := range strategy.Sources {
			sb.WriteString(fmt.Sprintf("  %s (%s)\n", s.Source, s.Category))
		}
	}

	p.printBox("Campaign Strategy", strings.TrimRight(sb.String(), "\n"))
}

// PrintScore outputs the score total, quality label, and per-dimension breakdown.
func (p *Printer) PrintScore(score *types.ScoreResult) {
	if score == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total: %d/100 (%s)\n\n", score.TotalScore, score.Label()))

	// Stable dimension order for readable output
	dimensions := []string{
		types.DimensionPersona,
		types.DimensionKeyInsight,
		types.DimensionValueProposition,
		types.DimensionProofPoints,
		types.DimensionStrategicAngle,
		types.DimensionSources,
	}
	for _, dim := range dimensions {
		sb.WriteString(fmt.Sprintf("%-18s %d pts\n", dim, score.Breakdown[dim]))
	}

	p.printBox("Campaign Quality", strings.TrimRight(sb.String(), "\n"))
}

// PrintAssets outputs each rendered channel asset in its own box.
func (p *Printer) PrintAssets(assets *types.CampaignAssets) {
	if assets == nil {
		return
	}

	if assets.LinkedInPost != "" {
		p.printBox("LinkedIn Post", assets.LinkedInPost)
	}
	if assets.ColdEmail != "" {
		p.printBox("Cold Email", assets.ColdEmail)
	}
	if assets.LandingHero != "" {
		p.printBox("Landing Hero", strings.TrimSpace(assets.LandingHero))
	}
	if assets.PaidAd != "" {
		p.printBox("Paid Ad", strings.TrimSpace(assets.PaidAd))
	}
}

// PrintGreeting outputs the greeting short-circuit message.
func (p *Printer) PrintGreeting(message string) {
	p.printBox("Assistant", message)
}
