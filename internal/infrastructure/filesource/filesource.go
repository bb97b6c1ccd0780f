// Package filesource provides a RecordSource reading raw log records from a
// JSON dump instead of the live API. Useful for offline reporting and for
// replaying captured fixtures.
package filesource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ersonp/wikilog/internal/domain/entities"
	"github.com/ersonp/wikilog/internal/domain/ports"
)

// Source serves records parsed from a JSON document. Two layouts are
// accepted: a bare array of records, or a full action API response with the
// records under query.logevents.
type Source struct {
	records []entities.RawRecord
}

// FromFile loads a dump from disk.
func FromFile(path string) (*Source, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dump file: %w", err)
	}
	defer f.Close()
	return FromReader(f)
}

// FromReader parses a dump from the reader.
func FromReader(r io.Reader) (*Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading dump: %w", err)
	}

	var records []entities.RawRecord
	if err := json.Unmarshal(data, &records); err == nil {
		return &Source{records: records}, nil
	}

	var envelope struct {
		Query struct {
			LogEvents []entities.RawRecord `json:"logevents"`
		} `json:"query"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("parsing dump JSON: %w", err)
	}
	return &Source{records: envelope.Query.LogEvents}, nil
}

// LogEvents returns records matching the query.
func (s *Source) LogEvents(_ context.Context, q ports.LogQuery) ([]entities.RawRecord, error) {
	var out []entities.RawRecord
	for _, r := range s.records {
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
