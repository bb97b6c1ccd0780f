package entities

import "time"

// StoredEntry is the flat row shape used when fetched log entries are
// persisted for reporting. Data holds the entry's generic field namespace
// re-encoded as JSON; the typed variant accessors are only available on live
// LogEntry values, not on rows read back from the store.
type StoredEntry struct {
	BatchID   string    `json:"batch_id"`
	LogID     int       `json:"logid"`
	Type      Kind      `json:"type"`
	Action    string    `json:"action"`
	User      string    `json:"user"`
	NS        int       `json:"ns"`
	PageID    int       `json:"pageid"`
	Title     string    `json:"title,omitempty"`
	Comment   string    `json:"comment,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Data      string    `json:"data,omitempty"`
}

// KindCount is one row of a per-kind entry count.
type KindCount struct {
	Kind  Kind `json:"kind"`
	Count int  `json:"count"`
}
