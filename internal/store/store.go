// Package store provides SQLite-backed persistence for savings goals.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alcancia-dev/alcancia/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// ErrNotFound is returned when a goal does not exist.
var ErrNotFound = errors.New("goal not found")

// Store persists goals and their contributions.
type Store struct {
	db *sql.DB
}

// Open opens or creates the goals database at the given path.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening goals db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveGoal inserts or updates a goal.
func (s *Store) SaveGoal(g model.Goal) error {
	if err := model.Validate(g); err != nil {
		return err
	}

	var target sql.NullInt64
	if g.TargetAmount != nil {
		target = sql.NullInt64{Int64: *g.TargetAmount, Valid: true}
	}
	var targetDate sql.NullString
	if g.TargetDate != nil {
		targetDate = sql.NullString{String: g.TargetDate.UTC().Format(time.RFC3339), Valid: true}
	}

	_, err := s.db.Exec(`INSERT OR REPLACE INTO goals
		(id, name, current_amount, target_amount, icon, color, target_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID, g.Name, g.CurrentAmount, target, g.Icon, g.Color, targetDate,
		g.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving goal: %w", err)
	}
	return nil
}

const goalColumns = "id, name, current_amount, target_amount, icon, color, target_date, created_at"

func scanGoal(row interface{ Scan(...any) error }) (model.Goal, error) {
	var g model.Goal
	var target sql.NullInt64
	var targetDate sql.NullString
	var createdAt string

	if err := row.Scan(&g.ID, &g.Name, &g.CurrentAmount, &target, &g.Icon, &g.Color, &targetDate, &createdAt); err != nil {
		return model.Goal{}, err
	}

	if target.Valid {
		g.TargetAmount = &target.Int64
	}
	if targetDate.Valid {
		if d, err := time.Parse(time.RFC3339, targetDate.String); err == nil {
			g.TargetDate = &d
		}
	}
	if c, err := time.Parse(time.RFC3339, createdAt); err == nil {
		g.CreatedAt = c
	}
	return g, nil
}

// GetGoal returns a goal by ID.
func (s *Store) GetGoal(id string) (model.Goal, error) {
	row := s.db.QueryRow("SELECT "+goalColumns+" FROM goals WHERE id = ?", id)
	g, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Goal{}, ErrNotFound
	}
	if err != nil {
		return model.Goal{}, fmt.Errorf("loading goal: %w", err)
	}
	return g, nil
}

// FindGoalByName returns a goal by case-insensitive exact name match.
func (s *Store) FindGoalByName(name string) (model.Goal, error) {
	row := s.db.QueryRow("SELECT "+goalColumns+" FROM goals WHERE name = ? COLLATE NOCASE", strings.TrimSpace(name))
	g, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Goal{}, ErrNotFound
	}
	if err != nil {
		return model.Goal{}, fmt.Errorf("finding goal: %w", err)
	}
	return g, nil
}

// ListGoals returns all goals, oldest first.
func (s *Store) ListGoals() ([]model.Goal, error) {
	rows, err := s.db.Query("SELECT " + goalColumns + " FROM goals ORDER BY created_at, name")
	if err != nil {
		return nil, fmt.Errorf("listing goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var goals []model.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning goal: %w", err)
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

// DeleteGoal removes a goal and, via cascade, its contributions.
func (s *Store) DeleteGoal(id string) error {
	res, err := s.db.Exec("DELETE FROM goals WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting goal: %w", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// AddContribution records a deposit or withdrawal and updates the goal's
// current amount in the same transaction. The saved amount floors at zero.
func (s *Store) AddContribution(c model.Contribution) (model.Goal, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return model.Goal{}, err
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRow("SELECT "+goalColumns+" FROM goals WHERE id = ?", c.GoalID)
	g, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Goal{}, ErrNotFound
	}
	if err != nil {
		return model.Goal{}, fmt.Errorf("loading goal: %w", err)
	}

	g.CurrentAmount += c.Amount
	if g.CurrentAmount < 0 {
		g.CurrentAmount = 0
	}

	if _, err := tx.Exec("UPDATE goals SET current_amount = ? WHERE id = ?", g.CurrentAmount, g.ID); err != nil {
		return model.Goal{}, fmt.Errorf("updating goal amount: %w", err)
	}

	if _, err := tx.Exec(`INSERT INTO contributions (id, goal_id, amount, note, at)
		VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.GoalID, c.Amount, c.Note, c.At.UTC().Format(time.RFC3339Nano),
	); err != nil {
		return model.Goal{}, fmt.Errorf("saving contribution: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.Goal{}, err
	}
	return g, nil
}

// ListContributions returns a goal's contributions, newest first.
func (s *Store) ListContributions(goalID string) ([]model.Contribution, error) {
	rows, err := s.db.Query(`SELECT id, goal_id, amount, note, at
		FROM contributions WHERE goal_id = ? ORDER BY at DESC`, goalID)
	if err != nil {
		return nil, fmt.Errorf("listing contributions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []model.Contribution
	for rows.Next() {
		var c model.Contribution
		var at string
		if err := rows.Scan(&c.ID, &c.GoalID, &c.Amount, &c.Note, &at); err != nil {
			return nil, fmt.Errorf("scanning contribution: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, at); err == nil {
			c.At = ts
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
