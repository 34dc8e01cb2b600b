// Package model defines domain types for alcancia savings goals.
package model

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

// Goal is a savings target. Amounts are integer Chilean pesos.
// TargetAmount is nil for open-ended goals ("Sin límite").
type Goal struct {
	ID            string
	Name          string
	CurrentAmount int64
	TargetAmount  *int64
	Icon          string
	Color         string
	TargetDate    *time.Time
	CreatedAt     time.Time
}

// NewGoal creates a goal with a fresh ID and creation timestamp.
func NewGoal(name string) Goal {
	return Goal{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// HasTarget reports whether the goal has a positive target amount.
func (g Goal) HasTarget() bool {
	return g.TargetAmount != nil && *g.TargetAmount > 0
}

// Progress returns the fraction of the target reached, clamped to [0, 1].
// Goals without a target always report 0.
func (g Goal) Progress() float64 {
	if !g.HasTarget() {
		return 0
	}
	p := float64(g.CurrentAmount) / float64(*g.TargetAmount)
	if p > 1 {
		return 1
	}
	if p < 0 {
		return 0
	}
	return p
}

// ProgressPercent returns Progress as a rounded integer percentage in [0, 100].
func (g Goal) ProgressPercent() int {
	return int(math.Round(g.Progress() * 100))
}

// Reached reports whether the goal has met or exceeded its target.
func (g Goal) Reached() bool {
	return g.HasTarget() && g.CurrentAmount >= *g.TargetAmount
}

// Remaining returns the amount left to save, never negative.
// Goals without a target have nothing remaining.
func (g Goal) Remaining() int64 {
	if !g.HasTarget() {
		return 0
	}
	r := *g.TargetAmount - g.CurrentAmount
	if r < 0 {
		return 0
	}
	return r
}

// Contribution records a deposit into (or withdrawal from) a goal.
// Withdrawals carry a negative amount.
type Contribution struct {
	ID     string
	GoalID string
	Amount int64
	Note   string
	At     time.Time
}

// NewContribution creates a contribution with a fresh ID and timestamp.
func NewContribution(goalID string, amount int64, note string) Contribution {
	return Contribution{
		ID:     uuid.NewString(),
		GoalID: goalID,
		Amount: amount,
		Note:   note,
		At:     time.Now(),
	}
}

var (
	// ErrEmptyName is returned for goals without a display name.
	ErrEmptyName = errors.New("goal name is empty")
	// ErrNegativeAmount is returned when the saved amount is below zero.
	ErrNegativeAmount = errors.New("current amount is negative")
	// ErrInvalidTarget is returned for a present but non-positive target.
	ErrInvalidTarget = errors.New("target amount must be positive")
)

// Validate checks the goal invariants before it is stored.
func Validate(g Goal) error {
	if g.Name == "" {
		return ErrEmptyName
	}
	if g.CurrentAmount < 0 {
		return ErrNegativeAmount
	}
	if g.TargetAmount != nil && *g.TargetAmount <= 0 {
		return ErrInvalidTarget
	}
	return nil
}
