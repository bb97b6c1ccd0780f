// Package handlers wires domain services to the command layer.
package handlers

import (
	"context"
	"fmt"

	"github.com/ersonp/wikilog/internal/domain/entities"
	"github.com/ersonp/wikilog/internal/domain/ports"
	"github.com/ersonp/wikilog/internal/domain/services"
)

// LogsHandler handles log entry queries.
type LogsHandler struct {
	queryService *services.QueryService
}

// NewLogsHandler creates a new logs handler.
func NewLogsHandler(queryService *services.QueryService) *LogsHandler {
	return &LogsHandler{
		queryService: queryService,
	}
}

// LogsResult contains the result of a log query.
type LogsResult struct {
	Kind     entities.Kind
	Entries  []entities.LogEntry
	Failures []services.RecordFailure
}

// Handle fetches entries of a kind.
func (h *LogsHandler) Handle(ctx context.Context, kind entities.Kind, limit int) (*LogsResult, error) {
	result, err := h.queryService.Fetch(ctx, kind, limit)
	if err != nil {
		return nil, fmt.Errorf("querying log entries: %w", err)
	}

	return &LogsResult{
		Kind:     kind,
		Entries:  result.Entries,
		Failures: result.Failures,
	}, nil
}

// FetchResult contains the result of a persisted fetch.
type FetchResult struct {
	BatchID  string
	Entries  []entities.LogEntry
	Failures []services.RecordFailure
}

// HandleFetch fetches entries and persists them to the store.
func (h *LogsHandler) HandleFetch(ctx context.Context, store ports.LogStore, kind entities.Kind, limit int) (*FetchResult, error) {
	batchID, result, err := h.queryService.FetchAndStore(ctx, store, kind, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching log entries: %w", err)
	}

	return &FetchResult{
		BatchID:  batchID,
		Entries:  result.Entries,
		Failures: result.Failures,
	}, nil
}
