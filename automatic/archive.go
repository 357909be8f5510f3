package automatic

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const archiveSchema = `
CREATE TABLE IF NOT EXISTS solves (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	seed INTEGER NOT NULL,
	deal TEXT NOT NULL,
	solved INTEGER NOT NULL,
	moves INTEGER NOT NULL,
	searched INTEGER NOT NULL,
	deduped INTEGER NOT NULL,
	evicted INTEGER NOT NULL,
	duration_ms INTEGER NOT NULL,
	created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// Archive persists batch results in a SQLite database so long tuning
// runs can be compared across weight configurations.
type Archive struct {
	db *sql.DB
}

func OpenArchive(path string) (*Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", path, err)
	}
	if _, err := db.Exec(archiveSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating archive schema: %w", err)
	}
	return &Archive{db: db}, nil
}

func (a *Archive) Record(ctx context.Context, deal string, res GameResult) error {
	_, err := a.db.ExecContext(ctx,
		`INSERT INTO solves (seed, deal, solved, moves, searched, deduped, evicted, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		int64(res.Seed), deal, res.Solved, res.Moves,
		int64(res.Searched), int64(res.Deduped), int64(res.Evicted), res.Millis)
	return err
}

// Count returns the number of archived games.
func (a *Archive) Count(ctx context.Context) (int, error) {
	var n int
	err := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM solves`).Scan(&n)
	return n, err
}

// SolvedCount returns how many archived games were solved.
func (a *Archive) SolvedCount(ctx context.Context) (int, error) {
	var n int
	err := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM solves WHERE solved`).Scan(&n)
	return n, err
}

func (a *Archive) Close() error {
	return a.db.Close()
}
