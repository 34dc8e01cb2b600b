package components

import (
	"testing"

	"github.com/alcancia-dev/alcancia/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

func TestBarClampsAndKeepsWidth(t *testing.T) {
	theme.SetActive("flexoki-dark")
	color := theme.Active.Blue

	for _, pct := range []float64{-0.5, 0, 0.3, 1, 2.5} {
		bar := Bar(pct, 20, color)
		if w := lipgloss.Width(bar); w != 20 {
			t.Errorf("Bar(%v, 20) width = %d, want 20", pct, w)
		}
	}
}

func TestSavingsColorThresholds(t *testing.T) {
	theme.SetActive("flexoki-dark")
	tm := theme.Active

	cases := []struct {
		pct  float64
		want lipgloss.Color
	}{
		{0, tm.Cyan},
		{0.39, tm.Cyan},
		{0.4, tm.Accent},
		{0.75, tm.Green},
		{1, tm.GreenBright},
		{1.5, tm.GreenBright},
	}
	for _, tc := range cases {
		if got := SavingsColor(tc.pct); got != tc.want {
			t.Errorf("SavingsColor(%v) = %q, want %q", tc.pct, got, tc.want)
		}
	}
}
