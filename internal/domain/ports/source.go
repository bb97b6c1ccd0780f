package ports

import (
	"context"
	"errors"

	"github.com/ersonp/wikilog/internal/domain/entities"
)

// ErrExhausted signals that no records exist for the requested filter.
var ErrExhausted = errors.New("no log records for filter")

// LogQuery selects which log records to fetch.
type LogQuery struct {
	// Kind filters by entry type; empty means all kinds.
	Kind entities.Kind

	// Limit bounds the number of returned records. Zero means the
	// source's default page size.
	Limit int
}

// RecordSource yields raw log records from a wiki. Implementations own all
// transport concerns (HTTP, rate limiting, continuation); the entry model
// never performs I/O itself.
type RecordSource interface {
	// LogEvents returns up to q.Limit raw records matching the query,
	// newest first. Returns ErrExhausted when the wiki has no records
	// for the filter at all.
	LogEvents(ctx context.Context, q LogQuery) ([]entities.RawRecord, error)
}
