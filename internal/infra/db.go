package infra

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS donations (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	name          TEXT,
	phone         TEXT NOT NULL,
	email         TEXT,
	animal_type   TEXT,
	weight_lbs    REAL,
	city          TEXT,
	delivery_type TEXT NOT NULL,
	submitted_at  DATETIME NOT NULL
);

CREATE TABLE IF NOT EXISTS outbox (
	id         TEXT PRIMARY KEY,
	recipient  TEXT NOT NULL,
	subject    TEXT NOT NULL,
	body       TEXT NOT NULL,
	status     TEXT NOT NULL DEFAULT 'pending',
	attempts   INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME NOT NULL,
	sent_at    DATETIME
);

CREATE INDEX IF NOT EXISTS idx_outbox_status ON outbox (status, created_at);
`

// NewDB opens the SQLite database file and creates the schema when absent.
func NewDB(ctx context.Context, cfg *Config) (*sql.DB, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	db, err := sql.Open("sqlite3", cfg.DatabasePath+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite serializes writers; a single connection avoids busy errors.
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return db, nil
}
