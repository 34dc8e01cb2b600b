package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS goals (
    id              TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    current_amount  INTEGER NOT NULL DEFAULT 0,
    target_amount   INTEGER,
    icon            TEXT NOT NULL DEFAULT '',
    color           TEXT NOT NULL DEFAULT '',
    target_date     TEXT,
    created_at      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS contributions (
    id              TEXT PRIMARY KEY,
    goal_id         TEXT NOT NULL REFERENCES goals(id) ON DELETE CASCADE,
    amount          INTEGER NOT NULL,
    note            TEXT NOT NULL DEFAULT '',
    at              TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_goals_created ON goals(created_at);
CREATE INDEX IF NOT EXISTS idx_goals_name ON goals(name COLLATE NOCASE);
CREATE INDEX IF NOT EXISTS idx_contributions_goal ON contributions(goal_id);
`
