package model

import (
	"errors"
	"testing"
	"time"
)

func target(n int64) *int64 { return &n }

func TestProgressClampedAt100(t *testing.T) {
	g := Goal{CurrentAmount: 15000, TargetAmount: target(10000)}
	if got := g.Progress(); got != 1.0 {
		t.Errorf("Progress() = %v, want 1.0 (clamped)", got)
	}
	if got := g.ProgressPercent(); got != 100 {
		t.Errorf("ProgressPercent() = %d, want 100", got)
	}
}

func TestProgressPartial(t *testing.T) {
	g := Goal{CurrentAmount: 3000, TargetAmount: target(10000)}
	if got := g.Progress(); got != 0.3 {
		t.Errorf("Progress() = %v, want 0.3", got)
	}
	if got := g.ProgressPercent(); got != 30 {
		t.Errorf("ProgressPercent() = %d, want 30", got)
	}
}

func TestProgressRounding(t *testing.T) {
	g := Goal{CurrentAmount: 666, TargetAmount: target(1000)}
	if got := g.ProgressPercent(); got != 67 {
		t.Errorf("ProgressPercent() = %d, want 67", got)
	}
}

func TestProgressNoTarget(t *testing.T) {
	cases := []struct {
		name string
		g    Goal
	}{
		{"nil target", Goal{CurrentAmount: 5000}},
		{"zero target", Goal{CurrentAmount: 5000, TargetAmount: target(0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.g.Progress(); got != 0 {
				t.Errorf("Progress() = %v, want 0", got)
			}
			if tc.g.HasTarget() {
				t.Error("HasTarget() = true, want false")
			}
		})
	}
}

func TestProgressAlwaysInRange(t *testing.T) {
	amounts := []int64{0, 1, 500, 9999, 10000, 10001, 1 << 40}
	for _, cur := range amounts {
		g := Goal{CurrentAmount: cur, TargetAmount: target(10000)}
		pct := g.ProgressPercent()
		if pct < 0 || pct > 100 {
			t.Errorf("ProgressPercent() = %d for current=%d, want in [0,100]", pct, cur)
		}
	}
}

func TestRemaining(t *testing.T) {
	g := Goal{CurrentAmount: 3000, TargetAmount: target(10000)}
	if got := g.Remaining(); got != 7000 {
		t.Errorf("Remaining() = %d, want 7000", got)
	}

	g.CurrentAmount = 12000
	if got := g.Remaining(); got != 0 {
		t.Errorf("Remaining() exceeded = %d, want 0", got)
	}
	if !g.Reached() {
		t.Error("Reached() = false, want true")
	}

	open := Goal{CurrentAmount: 5000}
	if got := open.Remaining(); got != 0 {
		t.Errorf("Remaining() open-ended = %d, want 0", got)
	}
}

func TestValidate(t *testing.T) {
	ok := NewGoal("Viaje")
	ok.TargetAmount = target(10000)
	if err := Validate(ok); err != nil {
		t.Errorf("Validate(valid) = %v, want nil", err)
	}

	if err := Validate(Goal{}); !errors.Is(err, ErrEmptyName) {
		t.Errorf("Validate(empty name) = %v, want ErrEmptyName", err)
	}

	neg := Goal{Name: "x", CurrentAmount: -1}
	if err := Validate(neg); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("Validate(negative) = %v, want ErrNegativeAmount", err)
	}

	bad := Goal{Name: "x", TargetAmount: target(0)}
	if err := Validate(bad); !errors.Is(err, ErrInvalidTarget) {
		t.Errorf("Validate(zero target) = %v, want ErrInvalidTarget", err)
	}
}

func TestNewGoal(t *testing.T) {
	g := NewGoal("Fondo de emergencia")
	if g.ID == "" {
		t.Error("NewGoal ID is empty")
	}
	if g.CreatedAt.IsZero() {
		t.Error("NewGoal CreatedAt is zero")
	}
	if g.HasTarget() {
		t.Error("new goal should be open-ended by default")
	}
}

func TestNewContribution(t *testing.T) {
	c := NewContribution("goal-1", -500, "retiro")
	if c.ID == "" || c.GoalID != "goal-1" || c.Amount != -500 {
		t.Errorf("NewContribution = %+v", c)
	}
	if time.Since(c.At) > time.Minute {
		t.Error("NewContribution timestamp not current")
	}
}
