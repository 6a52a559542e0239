package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Hiviexd/loved-cli/round"
)

var (
	// Status colors
	ColorSuccess = lipgloss.Color("#10B981") // Green
	ColorWarning = lipgloss.Color("#F59E0B") // Amber
	ColorError   = lipgloss.Color("#EF4444") // Red
	ColorInfo    = lipgloss.Color("#3B82F6") // Blue

	// UI colors
	ColorPrimary   = lipgloss.Color("#FF66AA") // Loved pink
	ColorBorder    = lipgloss.Color("#6B7280") // Gray
	ColorText      = lipgloss.Color("#F9FAFB") // Almost white
	ColorTextMuted = lipgloss.Color("#9CA3AF") // Gray
)

type Theme struct {
	TitleStyle      lipgloss.Style
	NormalStyle     lipgloss.Style
	MutedStyle      lipgloss.Style
	SuccessStyle    lipgloss.Style
	WarningStyle    lipgloss.Style
	ErrorStyle      lipgloss.Style
	InfoStyle       lipgloss.Style
	SummaryBoxStyle lipgloss.Style
}

func DefaultTheme() *Theme {
	return &Theme{
		TitleStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1),

		NormalStyle: lipgloss.NewStyle().
			Foreground(ColorText),

		MutedStyle: lipgloss.NewStyle().
			Foreground(ColorTextMuted),

		SuccessStyle: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),

		WarningStyle: lipgloss.NewStyle().
			Foreground(ColorWarning).
			Bold(true),

		ErrorStyle: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),

		InfoStyle: lipgloss.NewStyle().
			Foreground(ColorInfo),

		SummaryBoxStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2),
	}
}

const (
	IconCheck  = "✓"
	IconCross  = "✗"
	IconCached = "•"
	IconSkip   = "⊘"
)

// resultLine renders one completed batch entry for the progress view.
func resultLine(res round.Result, theme *Theme) string {
	label := fmt.Sprintf("%d %s", res.Beatmapset.ID, res.Beatmapset.DisplayTitle())

	switch res.Outcome {
	case round.OutcomeGenerated:
		return theme.SuccessStyle.Render(IconCheck) + " " + theme.NormalStyle.Render(label)
	case round.OutcomeCached:
		return theme.MutedStyle.Render(IconCached + " " + label + " (cached)")
	case round.OutcomeFailed:
		return theme.ErrorStyle.Render(IconCross) + " " + theme.NormalStyle.Render(label) +
			" " + theme.ErrorStyle.Render(res.Err.Error())
	case round.OutcomeSkipped:
		return theme.WarningStyle.Render(IconSkip + " " + label + " (skipped)")
	default:
		return label
	}
}

// renderSummary styles the aggregate counts of a batch run.
func renderSummary(s round.Summary) string {
	theme := DefaultTheme()

	parts := []string{
		theme.SuccessStyle.Render(fmt.Sprintf("%s %d generated", IconCheck, s.Generated)),
		theme.MutedStyle.Render(fmt.Sprintf("%s %d cached", IconCached, s.Cached)),
	}
	if s.Failed > 0 {
		parts = append(parts, theme.ErrorStyle.Render(fmt.Sprintf("%s %d failed", IconCross, s.Failed)))
	}
	if s.Skipped > 0 {
		parts = append(parts, theme.WarningStyle.Render(fmt.Sprintf("%s %d skipped", IconSkip, s.Skipped)))
	}

	line := strings.Join(parts, theme.MutedStyle.Render("  │  "))
	header := theme.TitleStyle.Render(fmt.Sprintf("Round summary (%d beatmapsets)", s.Total))

	return theme.SummaryBoxStyle.Render(header + "\n" + line)
}

func formatFileSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
