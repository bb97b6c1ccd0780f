package mocks

import (
	"context"

	"github.com/ersonp/wikilog/internal/domain/entities"
	"github.com/ersonp/wikilog/internal/domain/ports"
)

// RecordSource is a mock implementation of ports.RecordSource serving canned
// records.
type RecordSource struct {
	Records []entities.RawRecord
	Err     error

	// Queries records every query received, for assertions.
	Queries []ports.LogQuery
}

// LogEvents returns the canned records, honoring the query's kind filter and
// limit.
func (m *RecordSource) LogEvents(_ context.Context, q ports.LogQuery) ([]entities.RawRecord, error) {
	m.Queries = append(m.Queries, q)
	if m.Err != nil {
		return nil, m.Err
	}

	var out []entities.RawRecord
	for _, r := range m.Records {
		if q.Kind != "" && entities.Kind(r.String("type")) != q.Kind {
			continue
		}
		out = append(out, r)
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
	}
	if len(out) == 0 {
		return nil, ports.ErrExhausted
	}
	return out, nil
}
