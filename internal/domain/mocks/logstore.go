package mocks

import (
	"context"
	"sort"

	"github.com/ersonp/wikilog/internal/domain/entities"
)

// LogStore is a mock implementation of ports.LogStore keeping entries in
// memory.
type LogStore struct {
	Saved map[string][]entities.LogEntry // batch id -> entries
	Err   error
}

// NewLogStore creates an empty mock log store.
func NewLogStore() *LogStore {
	return &LogStore{Saved: make(map[string][]entities.LogEntry)}
}

// EnsureSchema is a no-op.
func (m *LogStore) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close is a no-op.
func (m *LogStore) Close() error {
	return nil
}

// SaveBatch records the entries under the batch id.
func (m *LogStore) SaveBatch(_ context.Context, batchID string, entries []entities.LogEntry) error {
	if m.Err != nil {
		return m.Err
	}
	m.Saved[batchID] = append(m.Saved[batchID], entries...)
	return nil
}

// ListByType lists saved entries of a kind as stored rows.
func (m *LogStore) ListByType(_ context.Context, kind entities.Kind, limit int) ([]entities.StoredEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var out []entities.StoredEntry
	for batchID, entries := range m.Saved {
		for _, e := range entries {
			if kind != "" && e.Type() != kind {
				continue
			}
			out = append(out, entities.StoredEntry{
				BatchID:   batchID,
				LogID:     e.LogID(),
				Type:      e.Type(),
				Action:    e.Action(),
				User:      e.User(),
				NS:        e.NS(),
				PageID:    e.PageID(),
				Comment:   e.Comment(),
				Timestamp: e.Timestamp(),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Timestamp.After(out[j].Timestamp) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// CountByType returns per-kind counts of saved entries.
func (m *LogStore) CountByType(_ context.Context) ([]entities.KindCount, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	counts := make(map[entities.Kind]int)
	for _, entries := range m.Saved {
		for _, e := range entries {
			counts[e.Type()]++
		}
	}
	out := make([]entities.KindCount, 0, len(counts))
	for k, n := range counts {
		out = append(out, entities.KindCount{Kind: k, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Kind < out[j].Kind })
	return out, nil
}
