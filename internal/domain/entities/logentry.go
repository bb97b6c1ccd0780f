package entities

import (
	"sync"
	"time"
)

// Kind is the server-declared category of a log entry (block, rights, move,
// patrol, ...). The set of kinds with specialized variants is fixed, but the
// server may report kinds outside it; those construct as GenericEntry.
type Kind string

// Kinds with a dedicated variant type.
const (
	KindBlock    Kind = "block"
	KindProtect  Kind = "protect"
	KindRights   Kind = "rights"
	KindDelete   Kind = "delete"
	KindUpload   Kind = "upload"
	KindMove     Kind = "move"
	KindImport   Kind = "import"
	KindPatrol   Kind = "patrol"
	KindNewUsers Kind = "newusers"
)

// timestampLayout is the wire format for timestamps ("2020-01-01T00:00:00Z").
const timestampLayout = time.RFC3339

// LogEntry is the common accessor surface shared by every variant. Entries
// are immutable after construction; all accessors are pure reads over the
// wrapped record plus memoized derived state, so one entry may be shared
// across goroutines.
type LogEntry interface {
	// LogID returns the numeric log id (>= 0).
	LogID() int

	// Type returns the server-declared entry kind, verbatim.
	Type() Kind

	// Action returns the granular action string. It can differ from Type
	// (e.g. type "rights" with action "autopromote").
	Action() string

	// NS returns the namespace id of the affected page (>= -2).
	NS() int

	// PageID returns the page id of the affected page; 0 means no
	// associated page.
	PageID() int

	// User returns the acting user's name. Empty when the record is
	// redacted.
	User() string

	// Comment returns the log comment, possibly empty.
	Comment() string

	// Timestamp returns when the logged action happened.
	Timestamp() time.Time

	// Title returns a page reference for the affected page. Fails with
	// *FieldAbsentError when the record carries no title, which is
	// legitimate for some kinds.
	Title() (Page, error)

	// ExpectedKind returns the kind whose specialized builder constructed
	// this entry. ok is false when the entry went through the generic
	// fallback, letting callers tell "recognized kind" apart from the
	// string the server reported.
	ExpectedKind() (Kind, bool)

	// Data returns the entry's generic field namespace. For current-shape
	// records the consumed params container is already withheld from it.
	// The returned record must not be modified.
	Data() RawRecord
}

// base carries the validated common core shared by all variants. Variant
// structs embed it by pointer so memoized state is shared between copies.
type base struct {
	data     RawRecord
	params   RawRecord
	site     SiteResolver
	ts       time.Time
	logID    int
	expected Kind
	known    bool

	titleOnce sync.Once
	titlePage Page
	titleErr  error
}

// parseBase validates the required common fields and detects the record's
// wire shape. Current-shape records nest action-specific data under a
// "params" key (or, on older servers, a key named after the entry type);
// that container is unwrapped into the variant namespace and removed from
// the generic one. Legacy records have no container at all and keep their
// variant fields at top level.
func parseBase(raw RawRecord, site SiteResolver) (*base, error) {
	typ := raw.String("type")
	if typ == "" {
		return nil, newParseError("type", "missing or not a string")
	}
	if !raw.Has("logid") {
		return nil, newParseError("logid", "missing")
	}
	logID, ok := raw.Int("logid")
	if !ok || logID < 0 {
		return nil, newParseError("logid", "not a non-negative integer")
	}
	tsRaw := raw.String("timestamp")
	if tsRaw == "" {
		return nil, newParseError("timestamp", "missing or not a string")
	}
	ts, err := time.Parse(timestampLayout, tsRaw)
	if err != nil {
		return nil, &ParseError{Field: "timestamp", Reason: "not an ISO-8601 timestamp", Err: err}
	}
	if ns, ok := raw.Int("ns"); raw.Has("ns") && (!ok || ns < -2) {
		return nil, newParseError("ns", "not an integer >= -2")
	}
	if pageID, ok := raw.Int("pageid"); raw.Has("pageid") && (!ok || pageID < 0) {
		return nil, newParseError("pageid", "not a non-negative integer")
	}

	data := raw.clone()
	var params RawRecord
	switch {
	case data.Map("params") != nil:
		params = data.Map("params")
		delete(data, "params")
	case data.Map(typ) != nil:
		params = data.Map(typ)
		delete(data, typ)
	default:
		// Legacy shape: action-specific fields sit at top level.
		params = data
	}

	return &base{
		data:   data,
		params: params,
		site:   site,
		ts:     ts,
		logID:  logID,
	}, nil
}

func (b *base) LogID() int           { return b.logID }
func (b *base) Type() Kind           { return Kind(b.data.String("type")) }
func (b *base) Action() string       { return b.data.String("action") }
func (b *base) User() string         { return b.data.String("user") }
func (b *base) Comment() string      { return b.data.String("comment") }
func (b *base) Timestamp() time.Time { return b.ts }

func (b *base) NS() int {
	ns, _ := b.data.Int("ns")
	return ns
}

func (b *base) PageID() int {
	id, _ := b.data.Int("pageid")
	return id
}

// Title builds the page reference on first access and caches it.
func (b *base) Title() (Page, error) {
	b.titleOnce.Do(func() {
		if !b.data.Has("title") {
			b.titleErr = &FieldAbsentError{Field: "title"}
			return
		}
		b.titlePage, b.titleErr = b.site.NewPage(b.NS(), b.data.String("title"))
	})
	return b.titlePage, b.titleErr
}

func (b *base) ExpectedKind() (Kind, bool) { return b.expected, b.known }
func (b *base) Data() RawRecord            { return b.data }

// markExpected records which specialized builder produced the entry.
func (b *base) markExpected(kind Kind) {
	b.expected = kind
	b.known = true
}
