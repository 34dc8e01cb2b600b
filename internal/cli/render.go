// Package cli renders goals for static terminal output.
package cli

import (
	"fmt"
	"strings"

	"github.com/alcancia-dev/alcancia/internal/format"
	"github.com/alcancia-dev/alcancia/internal/model"
	"github.com/alcancia-dev/alcancia/internal/tui/components"
	"github.com/alcancia-dev/alcancia/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Align(lipgloss.Center)

	headerStyle = func() lipgloss.Style {
		return lipgloss.NewStyle().Bold(true).Foreground(theme.Active.Accent)
	}
	valueStyle = func() lipgloss.Style {
		return lipgloss.NewStyle().Foreground(theme.Active.TextPrimary)
	}
	mutedStyle = func() lipgloss.Style {
		return lipgloss.NewStyle().Foreground(theme.Active.TextMuted)
	}
	dimStyle = func() lipgloss.Style {
		return lipgloss.NewStyle().Foreground(theme.Active.TextDim)
	}
)

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(55).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(titleStyle.Foreground(theme.Active.TextPrimary).Render(title))
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTable renders a bordered table with headers and rows.
// The first column is left-aligned, the rest right-aligned.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}

	numCols := len(t.Headers)
	if numCols == 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols && lipgloss.Width(cell) > widths[i] {
				widths[i] = lipgloss.Width(cell)
			}
		}
	}

	rule := func(left, mid, right string) string {
		var b strings.Builder
		b.WriteString(left)
		for i, w := range widths {
			b.WriteString(strings.Repeat("─", w+2))
			if i < numCols-1 {
				b.WriteString(mid)
			}
		}
		b.WriteString(right)
		return dimStyle().Render(b.String())
	}

	line := func(cells []string, style lipgloss.Style, leftAlignAll bool) string {
		var b strings.Builder
		b.WriteString(dimStyle().Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			if i == 0 || leftAlignAll {
				b.WriteString(style.Render(" " + cell + strings.Repeat(" ", pad) + " "))
			} else {
				b.WriteString(style.Render(" " + strings.Repeat(" ", pad) + cell + " "))
			}
			if i < numCols-1 {
				b.WriteString(dimStyle().Render("│"))
			}
		}
		b.WriteString(dimStyle().Render("│"))
		return b.String()
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  " + headerStyle().Render(t.Title) + "\n")
	}
	b.WriteString(rule("╭", "┬", "╮") + "\n")
	if len(t.Headers) > 0 {
		b.WriteString(line(t.Headers, headerStyle(), true) + "\n")
		b.WriteString(rule("├", "┼", "┤") + "\n")
	}
	for _, row := range t.Rows {
		b.WriteString(line(row, valueStyle(), false) + "\n")
	}
	b.WriteString(rule("╰", "┴", "╯") + "\n")

	return b.String()
}

// GoalTable builds the goal listing table.
func GoalTable(goals []model.Goal, money format.Money) Table {
	t := Table{
		Title:   "Metas de ahorro",
		Headers: []string{"Meta", "Ahorrado", "Objetivo", "Avance", "Fecha"},
	}
	for _, g := range goals {
		target := format.NoLimitLabel
		pct := ""
		if g.HasTarget() {
			target = money.Format(*g.TargetAmount)
			pct = format.Percent(g.Progress())
		}
		date := ""
		if g.TargetDate != nil {
			date = format.Date(*g.TargetDate)
		}
		t.Rows = append(t.Rows, []string{g.Name, money.Format(g.CurrentAmount), target, pct, date})
	}
	return t
}

// RenderGoalCards lays the goals out as card rows, perRow cards wide.
func RenderGoalCards(goals []model.Goal, money format.Money, totalWidth, perRow int) string {
	if len(goals) == 0 {
		return ""
	}
	if perRow < 1 {
		perRow = 1
	}

	var b strings.Builder
	for start := 0; start < len(goals); start += perRow {
		end := start + perRow
		if end > len(goals) {
			end = len(goals)
		}
		row := goals[start:end]
		widths := components.LayoutRow(totalWidth, len(row))

		cards := make([]string, len(row))
		for i, g := range row {
			cards[i] = components.NewGoalCard(g, widths[i], components.WithMoney(money)).View()
		}
		b.WriteString(components.CardRow(cards))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderSummary renders the totals line below the goal cards.
func RenderSummary(goals []model.Goal, money format.Money) string {
	var saved, targeted int64
	reached := 0
	for _, g := range goals {
		saved += g.CurrentAmount
		if g.HasTarget() {
			targeted += *g.TargetAmount
		}
		if g.Reached() {
			reached++
		}
	}

	parts := []string{
		fmt.Sprintf("%d metas", len(goals)),
		"ahorrado " + money.Format(saved),
	}
	if targeted > 0 {
		parts = append(parts, "objetivo "+money.Format(targeted))
	}
	if reached > 0 {
		parts = append(parts, fmt.Sprintf("%d cumplidas", reached))
	}
	return "  " + mutedStyle().Render(strings.Join(parts, "  ·  "))
}
