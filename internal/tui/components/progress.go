package components

import (
	"github.com/alcancia-dev/alcancia/internal/tui/theme"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
)

// Bar renders a solid progress bar in the given color.
// pct is clamped to [0, 1]; the bar never overflows its width.
func Bar(pct float64, width int, color lipgloss.Color) string {
	t := theme.Active

	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 1 {
		width = 1
	}

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(t.TextDim)

	return bar.ViewAs(pct)
}

// SavingsColor returns a color that warms up as a goal approaches its target:
// cyan while starting out, accent midway, green when nearly or fully funded.
func SavingsColor(pct float64) lipgloss.Color {
	t := theme.Active
	switch {
	case pct >= 1:
		return t.GreenBright
	case pct >= 0.75:
		return t.Green
	case pct >= 0.4:
		return t.Accent
	default:
		return t.Cyan
	}
}
