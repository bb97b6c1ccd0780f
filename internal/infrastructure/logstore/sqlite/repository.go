// Package sqlite provides a SQLite implementation of the LogStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ersonp/wikilog/internal/domain/entities"
	"github.com/ersonp/wikilog/internal/infrastructure/config"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Repository implements ports.LogStore using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite log store.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Fetched log entries, keyed by the wiki-assigned log id
	CREATE TABLE IF NOT EXISTS log_entries (
		logid INTEGER PRIMARY KEY,
		batch_id TEXT NOT NULL,
		type TEXT NOT NULL,
		action TEXT NOT NULL,
		user TEXT NOT NULL,
		ns INTEGER NOT NULL,
		pageid INTEGER NOT NULL,
		title TEXT,
		comment TEXT,
		timestamp TIMESTAMP NOT NULL,
		data TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_log_entries_type ON log_entries(type);
	CREATE INDEX IF NOT EXISTS idx_log_entries_batch ON log_entries(batch_id);
	CREATE INDEX IF NOT EXISTS idx_log_entries_timestamp ON log_entries(timestamp);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

// SaveBatch persists entries under one fetch batch id. Entries already
// stored (same logid) are skipped.
func (r *Repository) SaveBatch(ctx context.Context, batchID string, entries []entities.LogEntry) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT OR IGNORE INTO log_entries
			(logid, batch_id, type, action, user, ns, pageid, title, comment, timestamp, data)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		data, err := json.Marshal(e.Data())
		if err != nil {
			return fmt.Errorf("encoding entry %d: %w", e.LogID(), err)
		}
		title := e.Data().String("title")
		if _, err := stmt.ExecContext(ctx,
			e.LogID(), batchID, string(e.Type()), e.Action(), e.User(),
			e.NS(), e.PageID(), title, e.Comment(),
			e.Timestamp().UTC().Format(time.RFC3339), string(data),
		); err != nil {
			return fmt.Errorf("inserting entry %d: %w", e.LogID(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing batch: %w", err)
	}
	return nil
}

// ListByType lists stored entries of a kind, newest first.
func (r *Repository) ListByType(ctx context.Context, kind entities.Kind, limit int) ([]entities.StoredEntry, error) {
	query := `
		SELECT logid, batch_id, type, action, user, ns, pageid, title, comment, timestamp, data
		FROM log_entries
	`
	args := []any{}
	if kind != "" {
		query += " WHERE type = ?"
		args = append(args, string(kind))
	}
	query += " ORDER BY timestamp DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	defer rows.Close()

	var out []entities.StoredEntry
	for rows.Next() {
		var (
			e              entities.StoredEntry
			typ, ts        string
			title, comment sql.NullString
			data           sql.NullString
		)
		if err := rows.Scan(&e.LogID, &e.BatchID, &typ, &e.Action, &e.User,
			&e.NS, &e.PageID, &title, &comment, &ts, &data); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		e.Type = entities.Kind(typ)
		e.Title = title.String
		e.Comment = comment.String
		e.Data = data.String
		e.Timestamp, err = time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing stored timestamp: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// CountByType returns per-kind entry counts, sorted by kind.
func (r *Repository) CountByType(ctx context.Context) ([]entities.KindCount, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT type, COUNT(*) FROM log_entries GROUP BY type ORDER BY type
	`)
	if err != nil {
		return nil, fmt.Errorf("counting entries: %w", err)
	}
	defer rows.Close()

	var out []entities.KindCount
	for rows.Next() {
		var (
			typ string
			n   int
		)
		if err := rows.Scan(&typ, &n); err != nil {
			return nil, fmt.Errorf("scanning count: %w", err)
		}
		out = append(out, entities.KindCount{Kind: entities.Kind(typ), Count: n})
	}
	return out, rows.Err()
}
