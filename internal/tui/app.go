// Package tui provides the interactive Bubble Tea dashboard for alcancia.
// The app owns the goal list and the store; goal cards are pure views that
// raise deletion intent back up through a callback.
package tui

import (
	"strings"

	"github.com/alcancia-dev/alcancia/internal/config"
	"github.com/alcancia-dev/alcancia/internal/format"
	"github.com/alcancia-dev/alcancia/internal/model"
	"github.com/alcancia-dev/alcancia/internal/store"
	"github.com/alcancia-dev/alcancia/internal/tui/components"
	"github.com/alcancia-dev/alcancia/internal/tui/theme"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// goalsLoadedMsg carries a fresh goal list, optionally with a status note.
type goalsLoadedMsg struct {
	goals  []model.Goal
	status string
}

// errMsg reports a failed store operation.
type errMsg struct {
	err error
}

type mode int

const (
	modeList mode = iota
	modeAdd
	modeAmount
	modeConfirmDelete
)

const (
	minCardWidth    = 32
	maxContentWidth = 150
)

// App is the root Bubble Tea model.
type App struct {
	st    *store.Store
	money format.Money

	goals  []model.Goal
	loaded bool
	cursor int

	width  int
	height int
	status string

	mode          mode
	form          *huh.Form
	addVals       addValues
	amountVals    amountValues
	withdrawing   bool
	confirmVal    bool
	pendingDelete model.Goal

	themeIdx int
	spinner  spinner.Model
}

// NewApp creates the dashboard model.
func NewApp(st *store.Store, cfg config.Config) App {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Active.Accent)

	themeIdx := 0
	for i, t := range theme.All {
		if t.Name == theme.Active.Name {
			themeIdx = i
		}
	}

	return App{
		st:       st,
		money:    config.Money(cfg),
		addVals:  addValues{color: cfg.Appearance.DefaultGoalColor},
		themeIdx: themeIdx,
		spinner:  sp,
	}
}

// Init implements tea.Model.
func (a App) Init() tea.Cmd {
	return tea.Batch(loadGoalsCmd(a.st, ""), a.spinner.Tick)
}

func loadGoalsCmd(st *store.Store, status string) tea.Cmd {
	return func() tea.Msg {
		goals, err := st.ListGoals()
		if err != nil {
			return errMsg{err}
		}
		return goalsLoadedMsg{goals: goals, status: status}
	}
}

// Update implements tea.Model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.form != nil {
			a.form = a.form.WithWidth(min(msg.Width-4, 64))
		}
		return a, nil

	case spinner.TickMsg:
		if a.loaded {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case goalsLoadedMsg:
		a.goals = msg.goals
		a.loaded = true
		a.status = msg.status
		if a.cursor >= len(a.goals) {
			a.cursor = len(a.goals) - 1
		}
		if a.cursor < 0 {
			a.cursor = 0
		}
		return a, nil

	case errMsg:
		a.loaded = true
		a.status = "error: " + msg.err.Error()
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if !a.loaded {
			return a, nil
		}
		if a.mode != modeList {
			return a.updateForm(msg)
		}
		return a.updateList(msg)
	}

	if a.mode != modeList && a.form != nil {
		return a.updateForm(msg)
	}
	return a, nil
}

func (a App) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	perRow := a.cardsPerRow()

	switch msg.String() {
	case "q":
		return a, tea.Quit

	case "j", "down":
		if a.cursor+perRow < len(a.goals) {
			a.cursor += perRow
		}
		return a, nil
	case "k", "up":
		if a.cursor-perRow >= 0 {
			a.cursor -= perRow
		}
		return a, nil
	case "l", "right":
		if a.cursor < len(a.goals)-1 {
			a.cursor++
		}
		return a, nil
	case "h", "left":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case "a":
		a.addVals = addValues{color: a.addVals.color}
		a.form = newAddForm(&a.addVals)
		a.mode = modeAdd
		return a, a.form.Init()

	case "+", "-":
		if len(a.goals) == 0 {
			return a, nil
		}
		a.withdrawing = msg.String() == "-"
		a.amountVals = amountValues{}
		a.form = newAmountForm(&a.amountVals, a.goals[a.cursor].Name, a.withdrawing)
		a.mode = modeAmount
		return a, a.form.Init()

	case "d":
		// The focused card owns the delete affordance; deletion intent is
		// raised through its callback and must not be handled twice.
		card, handled := a.deleteViaFocusedCard()
		if handled {
			a.pendingDelete = card
			a.confirmVal = false
			a.form = newConfirmForm(&a.confirmVal, card.Name)
			a.mode = modeConfirmDelete
			return a, a.form.Init()
		}
		return a, nil

	case "t":
		a.themeIdx = (a.themeIdx + 1) % len(theme.All)
		theme.SetActive(theme.All[a.themeIdx].Name)
		a.status = "tema: " + theme.Active.Name
		return a, nil

	case "r":
		return a, loadGoalsCmd(a.st, "recargado")
	}

	return a, nil
}

// deleteViaFocusedCard routes the delete key through the focused goal card,
// mirroring how the card's affordance works: cards without the capability
// report the event unhandled and nothing happens.
func (a *App) deleteViaFocusedCard() (model.Goal, bool) {
	if len(a.goals) == 0 {
		return model.Goal{}, false
	}

	var requested *model.Goal
	goal := a.goals[a.cursor]
	card := components.NewGoalCard(goal, minCardWidth,
		components.WithFocus(true),
		components.WithMoney(a.money),
		components.WithOnDelete(func() { requested = &goal }),
	)
	if !card.HandleDelete() || requested == nil {
		return model.Goal{}, false
	}
	return *requested, true
}

func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	f, cmd := a.form.Update(msg)
	if form, ok := f.(*huh.Form); ok {
		a.form = form
	}

	switch a.form.State {
	case huh.StateCompleted:
		prev := a.mode
		a.mode = modeList
		a.form = nil
		switch prev {
		case modeAdd:
			return a.submitAdd()
		case modeAmount:
			return a.submitAmount()
		case modeConfirmDelete:
			return a.submitDelete()
		}
		return a, nil

	case huh.StateAborted:
		a.mode = modeList
		a.form = nil
		return a, nil
	}

	return a, cmd
}

func (a App) submitAdd() (tea.Model, tea.Cmd) {
	g, err := a.addVals.toGoal()
	if err != nil {
		a.status = "error: " + err.Error()
		return a, nil
	}

	st := a.st
	return a, func() tea.Msg {
		if err := st.SaveGoal(g); err != nil {
			return errMsg{err}
		}
		goals, err := st.ListGoals()
		if err != nil {
			return errMsg{err}
		}
		return goalsLoadedMsg{goals: goals, status: "meta creada: " + g.Name}
	}
}

func (a App) submitAmount() (tea.Model, tea.Cmd) {
	amount, err := a.amountVals.parseAmount()
	if err != nil {
		a.status = "error: " + err.Error()
		return a, nil
	}
	if a.withdrawing {
		amount = -amount
	}

	goal := a.goals[a.cursor]
	c := model.NewContribution(goal.ID, amount, a.amountVals.note)

	st := a.st
	money := a.money
	return a, func() tea.Msg {
		updated, err := st.AddContribution(c)
		if err != nil {
			return errMsg{err}
		}
		goals, err := st.ListGoals()
		if err != nil {
			return errMsg{err}
		}
		return goalsLoadedMsg{goals: goals, status: goal.Name + ": " + money.Format(updated.CurrentAmount)}
	}
}

func (a App) submitDelete() (tea.Model, tea.Cmd) {
	if !a.confirmVal {
		a.status = ""
		return a, nil
	}

	st := a.st
	g := a.pendingDelete
	return a, func() tea.Msg {
		if err := st.DeleteGoal(g.ID); err != nil {
			return errMsg{err}
		}
		goals, err := st.ListGoals()
		if err != nil {
			return errMsg{err}
		}
		return goalsLoadedMsg{goals: goals, status: "meta eliminada: " + g.Name}
	}
}

// cardsPerRow picks the card grid density for the current terminal width.
func (a App) cardsPerRow() int {
	w := a.contentWidth()
	per := w / minCardWidth
	if per < 1 {
		per = 1
	}
	if per > 4 {
		per = 4
	}
	return per
}

func (a App) contentWidth() int {
	w := a.width
	if w <= 0 {
		w = 80
	}
	if w > maxContentWidth {
		w = maxContentWidth
	}
	return w
}

// View implements tea.Model.
func (a App) View() string {
	t := theme.Active

	if !a.loaded {
		return "\n  " + a.spinner.View() + " Cargando metas...\n"
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	b.WriteString("\n " + titleStyle.Render("alcancia — metas de ahorro") + "\n\n")

	if a.mode != modeList && a.form != nil {
		b.WriteString(a.form.View())
		b.WriteString("\n")
		return b.String()
	}

	if len(a.goals) == 0 {
		empty := lipgloss.NewStyle().Foreground(t.TextMuted)
		b.WriteString(empty.Render("  Sin metas todavía. Pulsa [a] para crear la primera.") + "\n")
	} else {
		b.WriteString(a.renderCards())
	}

	b.WriteString("\n")
	b.WriteString(components.RenderStatusBar(a.contentWidth(), a.status))
	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (a App) renderCards() string {
	perRow := a.cardsPerRow()
	cw := a.contentWidth()

	var b strings.Builder
	for start := 0; start < len(a.goals); start += perRow {
		end := start + perRow
		if end > len(a.goals) {
			end = len(a.goals)
		}
		row := a.goals[start:end]
		widths := components.LayoutRow(cw, len(row))

		cards := make([]string, len(row))
		for i, g := range row {
			focused := start+i == a.cursor
			opts := []components.GoalCardOption{
				components.WithMoney(a.money),
				components.WithFocus(focused),
				components.WithOnDelete(func() {}),
			}
			cards[i] = components.NewGoalCard(g, widths[i], opts...).View()
		}
		b.WriteString(components.CardRow(cards))
		b.WriteString("\n")
	}
	return b.String()
}
