package components

import (
	"strings"
	"testing"
	"time"

	"github.com/alcancia-dev/alcancia/internal/model"
	"github.com/alcancia-dev/alcancia/internal/tui/theme"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Force TrueColor output so ANSI codes are generated in tests
	lipgloss.SetColorProfile(termenv.TrueColor)
}

func target(n int64) *int64 { return &n }

func tripGoal() model.Goal {
	return model.Goal{
		ID:            "g1",
		Name:          "Trip",
		CurrentAmount: 3000,
		TargetAmount:  target(10000),
		Icon:          "Plane",
		Color:         "#ff0000",
	}
}

func TestGoalCardTripScenario(t *testing.T) {
	theme.SetActive("flexoki-dark")

	view := NewGoalCard(tripGoal(), 40).View()

	for _, want := range []string{"Trip", "30%", "$3.000", "$10.000", "✈"} {
		if !strings.Contains(view, want) {
			t.Errorf("card missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Sin límite") {
		t.Error("card with target should not show the no-limit placeholder")
	}
}

func TestGoalCardNoLimitScenario(t *testing.T) {
	theme.SetActive("flexoki-dark")

	g := model.Goal{ID: "g2", Name: "Emergency Fund", CurrentAmount: 5000}
	view := NewGoalCard(g, 40).View()

	if !strings.Contains(view, "Sin límite") {
		t.Errorf("open-ended card missing no-limit placeholder:\n%s", view)
	}
	if strings.Contains(view, "%") {
		t.Errorf("open-ended card should have no percentage label:\n%s", view)
	}
	if !strings.Contains(view, "$5.000") {
		t.Errorf("card missing current amount:\n%s", view)
	}
}

func TestGoalCardUnknownIconFallsBack(t *testing.T) {
	theme.SetActive("flexoki-dark")

	g := tripGoal()
	g.Icon = "NoSuchIcon"
	view := NewGoalCard(g, 40).View()
	if !strings.Contains(view, "◎") {
		t.Errorf("card with unknown icon missing default glyph:\n%s", view)
	}
}

func TestGoalCardDueDate(t *testing.T) {
	theme.SetActive("flexoki-dark")

	g := tripGoal()
	d := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	g.TargetDate = &d
	view := NewGoalCard(g, 40).View()
	if !strings.Contains(view, "01-06-2026") {
		t.Errorf("card missing due date:\n%s", view)
	}

	g.TargetDate = nil
	view = NewGoalCard(g, 40).View()
	if strings.Contains(view, "Meta:") {
		t.Errorf("card without due date should not render the date line:\n%s", view)
	}
}

func TestDeleteAffordanceOnlyWithCapabilityAndFocus(t *testing.T) {
	theme.SetActive("flexoki-dark")
	g := tripGoal()

	plain := NewGoalCard(g, 40, WithFocus(true)).View()
	if strings.Contains(plain, "✕") {
		t.Error("card without delete capability rendered a delete affordance")
	}

	unfocused := NewGoalCard(g, 40, WithOnDelete(func() {})).View()
	if strings.Contains(unfocused, "✕") {
		t.Error("unfocused card rendered a delete affordance")
	}

	focused := NewGoalCard(g, 40, WithOnDelete(func() {}), WithFocus(true)).View()
	if !strings.Contains(focused, "✕") {
		t.Errorf("focused deletable card missing delete affordance:\n%s", focused)
	}
}

func TestHandleDeleteFiresOnceAndReportsHandled(t *testing.T) {
	calls := 0
	card := NewGoalCard(tripGoal(), 40, WithOnDelete(func() { calls++ }), WithFocus(true))

	if !card.HandleDelete() {
		t.Fatal("HandleDelete() = false with capability present")
	}
	if calls != 1 {
		t.Fatalf("callback fired %d times, want exactly 1", calls)
	}

	none := NewGoalCard(tripGoal(), 40)
	if none.HandleDelete() {
		t.Error("HandleDelete() = true without capability; event must propagate")
	}
	if none.CanDelete() {
		t.Error("CanDelete() = true without capability")
	}
}

func TestCardRowHeightMatchesTallest(t *testing.T) {
	theme.SetActive("flexoki-dark")

	short := NewGoalCard(model.Goal{Name: "Corto", CurrentAmount: 100}, 30).View()
	tallGoal := tripGoal()
	d := time.Now().AddDate(1, 0, 0)
	tallGoal.TargetDate = &d
	tall := NewGoalCard(tallGoal, 30).View()

	shortLines := len(strings.Split(short, "\n"))
	tallLines := len(strings.Split(tall, "\n"))
	if shortLines >= tallLines {
		t.Fatalf("test setup: short card (%d lines) should be shorter than tall card (%d)", shortLines, tallLines)
	}

	joined := CardRow([]string{tall, short})
	if got := len(strings.Split(joined, "\n")); got != tallLines {
		t.Errorf("joined height = %d, want tallest card height %d", got, tallLines)
	}
}

func TestLayoutRowSumsExactly(t *testing.T) {
	for _, n := range []int{1, 2, 3, 4, 5} {
		for _, total := range []int{40, 81, 99, 120} {
			widths := LayoutRow(total, n)
			sum := 0
			for _, w := range widths {
				sum += w
			}
			if sum != total {
				t.Errorf("LayoutRow(%d, %d) sums to %d", total, n, sum)
			}
		}
	}
	if LayoutRow(80, 0) != nil {
		t.Error("LayoutRow with n=0 should be nil")
	}
}

func TestTruncate(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want string
	}{
		{"Viaje", 10, "Viaje"},
		{"Fondo de emergencia", 8, "Fondo d…"},
		{"abc", 1, "…"},
		{"abc", 0, ""},
	}
	for _, tc := range cases {
		if got := truncate(tc.in, tc.max); got != tc.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}
