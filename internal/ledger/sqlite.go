// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteLedger stores completions in a SQLite database. It keeps the same
// at-least-once semantics as the file format: rows are append-only and
// duplicates are preserved. The completed set is loaded once at open.
type SQLiteLedger struct {
	db   *sql.DB
	done map[string]bool
}

// OpenSQLite opens or creates the ledger database at path and loads the
// completed set.
func OpenSQLite(path string) (*SQLiteLedger, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS completed (
		id TEXT NOT NULL,
		completed_at TEXT NOT NULL
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}

	done := make(map[string]bool)
	rows, err := db.Query(`SELECT id FROM completed`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("reading ledger: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			db.Close()
			return nil, fmt.Errorf("reading ledger: %w", err)
		}
		done[id] = true
	}
	if err := rows.Err(); err != nil {
		db.Close()
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	return &SQLiteLedger{db: db, done: done}, nil
}

// Completed returns the set of recorded identifiers.
func (l *SQLiteLedger) Completed() map[string]bool {
	return l.done
}

// Append records one identifier with a completion timestamp.
func (l *SQLiteLedger) Append(id string) error {
	_, err := l.db.Exec(
		`INSERT INTO completed (id, completed_at) VALUES (?, ?)`,
		id, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("appending to ledger: %w", err)
	}
	l.done[id] = true
	return nil
}

// Close releases the database connection.
func (l *SQLiteLedger) Close() error {
	return l.db.Close()
}
