// Package components provides reusable TUI widgets for the alcancia dashboard.
package components

import (
	"strings"

	"github.com/alcancia-dev/alcancia/internal/format"
	"github.com/alcancia-dev/alcancia/internal/model"
	"github.com/alcancia-dev/alcancia/internal/tui/icons"
	"github.com/alcancia-dev/alcancia/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
)

// GoalCard renders a single savings goal as a bordered card: icon chip
// tinted with the goal color, name, progress bar, amounts, and due date.
// It holds no state of its own; deletion is a capability supplied by the
// parent, and the card only raises the intent.
type GoalCard struct {
	goal     model.Goal
	width    int
	focused  bool
	onDelete func()
	money    format.Money
}

// GoalCardOption configures a GoalCard.
type GoalCardOption func(*GoalCard)

// WithOnDelete gives the card a delete capability. Cards built without it
// render no delete affordance at all.
func WithOnDelete(fn func()) GoalCardOption {
	return func(c *GoalCard) { c.onDelete = fn }
}

// WithFocus marks the card as the focused one; the delete affordance only
// surfaces on focus.
func WithFocus(focused bool) GoalCardOption {
	return func(c *GoalCard) { c.focused = focused }
}

// WithMoney overrides the default CLP currency convention.
func WithMoney(m format.Money) GoalCardOption {
	return func(c *GoalCard) { c.money = m }
}

// NewGoalCard builds a card for the goal at the given outer width
// (including border).
func NewGoalCard(g model.Goal, width int, opts ...GoalCardOption) GoalCard {
	c := GoalCard{goal: g, width: width, money: format.CLP}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// CanDelete reports whether the card carries a delete capability.
func (c GoalCard) CanDelete() bool {
	return c.onDelete != nil
}

// HandleDelete invokes the delete callback and reports whether the event
// was handled. A handled event must not propagate to the parent's own key
// handling. Cards without the capability do nothing and report false.
func (c GoalCard) HandleDelete() bool {
	if c.onDelete == nil {
		return false
	}
	c.onDelete()
	return true
}

// View renders the card.
func (c GoalCard) View() string {
	t := theme.Active
	g := c.goal

	contentWidth := c.width - 2 // subtract border
	if contentWidth < 16 {
		contentWidth = 16
	}
	innerWidth := contentWidth - 2 // subtract padding

	borderColor := t.Border
	if c.focused {
		borderColor = t.BorderAccent
	}
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(contentWidth).
		Padding(0, 1)

	goalColor := theme.GoalColor(g.Color)

	chipStyle := lipgloss.NewStyle().
		Background(goalColor).
		Foreground(t.TextPrimary).
		Padding(0, 1)
	nameStyle := lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		Bold(true)
	deleteStyle := lipgloss.NewStyle().
		Foreground(t.Red)
	mutedStyle := lipgloss.NewStyle().
		Foreground(t.TextMuted)
	pctStyle := lipgloss.NewStyle().
		Foreground(goalColor).
		Bold(true)

	// Title row: icon chip, name, delete affordance on focus only.
	chip := chipStyle.Render(string(icons.Lookup(g.Icon)))
	affordance := ""
	if c.focused && c.onDelete != nil {
		affordance = deleteStyle.Render("✕ [d]")
	}
	nameAvail := innerWidth - lipgloss.Width(chip) - lipgloss.Width(affordance) - 2
	title := chip + " " + nameStyle.Render(truncate(g.Name, nameAvail))
	if affordance != "" {
		gap := innerWidth - lipgloss.Width(title) - lipgloss.Width(affordance)
		if gap < 1 {
			gap = 1
		}
		title += strings.Repeat(" ", gap) + affordance
	}

	// Progress row: bar plus rounded percentage, blank without a target.
	pctLabel := ""
	if g.HasTarget() {
		pctLabel = pctStyle.Render(format.Percent(g.Progress()))
	}
	barWidth := innerWidth - lipgloss.Width(pctLabel)
	if pctLabel != "" {
		barWidth--
	}
	progressRow := Bar(g.Progress(), barWidth, goalColor)
	if pctLabel != "" {
		progressRow += " " + pctLabel
	}

	// Amount row: "current / target" or the no-limit placeholder.
	targetLabel := format.NoLimitLabel
	if g.HasTarget() {
		targetLabel = c.money.Format(*g.TargetAmount)
	}
	amounts := nameStyle.Render(c.money.Format(g.CurrentAmount)) +
		mutedStyle.Render(" / "+targetLabel)

	lines := []string{title, progressRow, amounts}
	if g.TargetDate != nil {
		lines = append(lines, mutedStyle.Render("Meta: "+format.Date(*g.TargetDate)))
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

// truncate cuts a string to at most max runes, ellipsized.
func truncate(s string, max int) string {
	if max < 1 {
		return ""
	}
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(r[:max-1]) + "…"
}

// LayoutRow distributes totalWidth into n widths that sum to exactly totalWidth.
// First items absorb the remainder from integer division.
func LayoutRow(totalWidth, n int) []int {
	if n <= 0 {
		return nil
	}
	base := totalWidth / n
	remainder := totalWidth % n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
		if i < remainder {
			widths[i]++
		}
	}
	return widths
}

// CardRow joins pre-rendered card strings horizontally.
func CardRow(cards []string) string {
	if len(cards) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}
