package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ersonp/wikilog/internal/domain/entities"
	"github.com/ersonp/wikilog/internal/domain/ports"
)

// RecordFailure describes one raw record that could not be parsed during a
// batch fetch.
type RecordFailure struct {
	Index int
	LogID int
	Err   error
}

// FetchResult is the outcome of one fetch: successfully constructed entries
// plus any per-record failures.
type FetchResult struct {
	Entries  []entities.LogEntry
	Failures []RecordFailure
}

// QueryService fetches raw records from a source and turns them into typed
// log entries.
type QueryService struct {
	source  ports.RecordSource
	site    ports.Site
	factory *Factory
}

// NewQueryService creates a new QueryService.
func NewQueryService(source ports.RecordSource, site ports.Site, factory *Factory) *QueryService {
	return &QueryService{
		source:  source,
		site:    site,
		factory: factory,
	}
}

// Fetch retrieves up to limit records of the given kind and constructs
// entries from them. A record that fails to parse is reported in the result
// and skipped; the rest of the batch is unaffected. An exhausted filter
// yields an empty result, not an error.
func (s *QueryService) Fetch(ctx context.Context, kind entities.Kind, limit int) (*FetchResult, error) {
	records, err := s.source.LogEvents(ctx, ports.LogQuery{Kind: kind, Limit: limit})
	if errors.Is(err, ports.ErrExhausted) {
		return &FetchResult{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("fetching log events: %w", err)
	}

	result := &FetchResult{Entries: make([]entities.LogEntry, 0, len(records))}
	for i, raw := range records {
		entry, err := s.factory.Create(raw, s.site)
		if err != nil {
			logID, _ := raw.Int("logid")
			result.Failures = append(result.Failures, RecordFailure{Index: i, LogID: logID, Err: err})
			continue
		}
		result.Entries = append(result.Entries, entry)
	}
	return result, nil
}

// FetchAndStore fetches entries and persists them to the store under a fresh
// batch id. Returns the batch id alongside the fetch result.
func (s *QueryService) FetchAndStore(ctx context.Context, store ports.LogStore, kind entities.Kind, limit int) (string, *FetchResult, error) {
	result, err := s.Fetch(ctx, kind, limit)
	if err != nil {
		return "", nil, err
	}

	batchID := uuid.New().String()
	if len(result.Entries) > 0 {
		if err := store.SaveBatch(ctx, batchID, result.Entries); err != nil {
			return "", nil, fmt.Errorf("storing log entries: %w", err)
		}
	}
	return batchID, result, nil
}
