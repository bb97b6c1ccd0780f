package ports

import (
	"context"

	"github.com/ersonp/wikilog/internal/domain/entities"
)

// LogStore persists fetched log entries for reporting.
type LogStore interface {
	// EnsureSchema creates the store schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the store.
	Close() error

	// SaveBatch persists entries under one fetch batch id. Entries whose
	// logid is already stored are skipped, not duplicated.
	SaveBatch(ctx context.Context, batchID string, entries []entities.LogEntry) error

	// ListByType lists stored entries of a kind, newest first. An empty
	// kind lists all entries.
	ListByType(ctx context.Context, kind entities.Kind, limit int) ([]entities.StoredEntry, error)

	// CountByType returns per-kind entry counts, sorted by kind.
	CountByType(ctx context.Context) ([]entities.KindCount, error)
}
