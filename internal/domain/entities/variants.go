package entities

import (
	"strings"
	"sync"
	"time"
)

// GenericEntry is the fallback variant for kinds without a specialized
// representation. It exposes only the common accessor surface; asking it for
// action-specific data is a compile-time impossibility rather than a runtime
// check.
type GenericEntry struct {
	*base
}

// NewGenericEntry wraps a raw record of any kind.
func NewGenericEntry(raw RawRecord, site SiteResolver) (*GenericEntry, error) {
	b, err := parseBase(raw, site)
	if err != nil {
		return nil, err
	}
	return &GenericEntry{base: b}, nil
}

// indefiniteExpiry matches the sentinel strings the API uses for blocks that
// never expire.
func indefiniteExpiry(s string) bool {
	switch strings.ToLower(s) {
	case "infinity", "infinite", "indefinite", "never":
		return true
	}
	return false
}

// BlockEntry is a log entry for a user block or unblock.
type BlockEntry struct {
	*base

	flags  []string
	expiry *time.Time

	durOnce sync.Once
	dur     *time.Duration
}

// NewBlockEntry wraps a raw record declared as type "block".
func NewBlockEntry(raw RawRecord, site SiteResolver) (*BlockEntry, error) {
	b, err := parseBase(raw, site)
	if err != nil {
		return nil, err
	}
	b.markExpected(KindBlock)

	e := &BlockEntry{base: b}
	// StringSlice drops empty tokens, which the comma-joined wire form of
	// the flags field is known to contain.
	e.flags = b.params.StringSlice("flags")
	if e.flags == nil {
		e.flags = []string{}
	}

	if s := b.params.String("expiry"); s != "" && !indefiniteExpiry(s) {
		ts, err := time.Parse(timestampLayout, s)
		if err != nil {
			return nil, &ParseError{Field: "expiry", Reason: "not an ISO-8601 timestamp", Err: err}
		}
		e.expiry = &ts
	}
	return e, nil
}

// Flags returns the block modifiers (e.g. "nocreate", "noemail"). Never
// contains empty strings.
func (e *BlockEntry) Flags() []string {
	return e.flags
}

// Expiry returns when the block ends. ok is false for indefinite blocks.
func (e *BlockEntry) Expiry() (time.Time, bool) {
	if e.expiry == nil {
		return time.Time{}, false
	}
	return *e.expiry, true
}

// Duration returns the block length, derived as expiry minus the entry
// timestamp rather than parsed independently, so the two server-reported
// fields can never disagree. ok is false when the block is indefinite.
func (e *BlockEntry) Duration() (time.Duration, bool) {
	e.durOnce.Do(func() {
		if e.expiry == nil {
			return
		}
		d := e.expiry.Sub(e.Timestamp())
		e.dur = &d
	})
	if e.dur == nil {
		return 0, false
	}
	return *e.dur, true
}

// RightsEntry is a log entry for a group-membership change.
type RightsEntry struct {
	*base

	oldGroups []string
	newGroups []string
}

// NewRightsEntry wraps a raw record declared as type "rights". The group
// delta is required: current-shape records carry "oldgroups"/"newgroups"
// lists, legacy records comma-joined "old"/"new" strings.
func NewRightsEntry(raw RawRecord, site SiteResolver) (*RightsEntry, error) {
	b, err := parseBase(raw, site)
	if err != nil {
		return nil, err
	}
	b.markExpected(KindRights)

	old, err := requiredGroups(b.params, "oldgroups", "old")
	if err != nil {
		return nil, err
	}
	updated, err := requiredGroups(b.params, "newgroups", "new")
	if err != nil {
		return nil, err
	}
	return &RightsEntry{base: b, oldGroups: old, newGroups: updated}, nil
}

func requiredGroups(params RawRecord, field, legacyField string) ([]string, error) {
	switch {
	case params.Has(field):
		return append([]string{}, params.StringSlice(field)...), nil
	case params.Has(legacyField):
		return append([]string{}, params.StringSlice(legacyField)...), nil
	default:
		return nil, newParseError(field, "missing on rights entry")
	}
}

// OldGroups returns the groups the user held before the change. May be
// empty, never nil.
func (e *RightsEntry) OldGroups() []string {
	return e.oldGroups
}

// NewGroups returns the groups the user holds after the change. May be
// empty, never nil.
func (e *RightsEntry) NewGroups() []string {
	return e.newGroups
}

// MoveEntry is a log entry for a page move.
type MoveEntry struct {
	*base

	targetNS    Namespace
	targetTitle string
	suppressed  bool

	pageOnce sync.Once
	page     Page
	pageErr  error
}

// NewMoveEntry wraps a raw record declared as type "move". Both the current
// "target_ns"/"target_title" and the older "new_ns"/"new_title" param names
// are accepted.
func NewMoveEntry(raw RawRecord, site SiteResolver) (*MoveEntry, error) {
	b, err := parseBase(raw, site)
	if err != nil {
		return nil, err
	}
	b.markExpected(KindMove)

	nsField := "target_ns"
	if !b.params.Has(nsField) {
		nsField = "new_ns"
	}
	nsID, ok := b.params.Int(nsField)
	if !ok {
		return nil, newParseError("target_ns", "missing on move entry")
	}
	ns, err := site.Namespace(nsID)
	if err != nil {
		return nil, &ParseError{Field: "target_ns", Reason: "unknown namespace", Err: err}
	}

	title := b.params.String("target_title")
	if title == "" {
		title = b.params.String("new_title")
	}
	if title == "" {
		return nil, newParseError("target_title", "missing on move entry")
	}

	suppressed := b.params.Bool("suppressedredirect") || b.params.Bool("suppressed")
	return &MoveEntry{base: b, targetNS: ns, targetTitle: title, suppressed: suppressed}, nil
}

// TargetNamespace returns the namespace the page was moved into.
func (e *MoveEntry) TargetNamespace() Namespace {
	return e.targetNS
}

// TargetTitle returns the title the page was moved to.
func (e *MoveEntry) TargetTitle() string {
	return e.targetTitle
}

// TargetPage returns a page reference for the move target, built on first
// access through the site context and cached.
func (e *MoveEntry) TargetPage() (Page, error) {
	e.pageOnce.Do(func() {
		e.page, e.pageErr = e.site.NewPage(e.targetNS.ID, e.targetTitle)
	})
	return e.page, e.pageErr
}

// SuppressedRedirect reports whether the move left no redirect behind.
func (e *MoveEntry) SuppressedRedirect() bool {
	return e.suppressed
}

// NewNamespaceID returns the target namespace id.
//
// Deprecated: use TargetNamespace.
func (e *MoveEntry) NewNamespaceID() int {
	DeprecationHook("MoveEntry.NewNamespaceID", "MoveEntry.TargetNamespace")
	return e.TargetNamespace().ID
}

// NewTitle returns the target title.
//
// Deprecated: use TargetTitle.
func (e *MoveEntry) NewTitle() string {
	DeprecationHook("MoveEntry.NewTitle", "MoveEntry.TargetTitle")
	return e.TargetTitle()
}

// PatrolEntry is a log entry for a revision being marked as patrolled.
type PatrolEntry struct {
	*base

	currentID  int
	previousID int
	auto       bool
}

// NewPatrolEntry wraps a raw record declared as type "patrol".
func NewPatrolEntry(raw RawRecord, site SiteResolver) (*PatrolEntry, error) {
	b, err := parseBase(raw, site)
	if err != nil {
		return nil, err
	}
	b.markExpected(KindPatrol)

	curID, ok := b.params.Int("curid")
	if !ok {
		return nil, newParseError("curid", "missing on patrol entry")
	}
	prevID, ok := b.params.Int("previd")
	if !ok {
		return nil, newParseError("previd", "missing on patrol entry")
	}
	return &PatrolEntry{
		base:       b,
		currentID:  curID,
		previousID: prevID,
		auto:       b.params.Bool("auto"),
	}, nil
}

// CurrentRevisionID returns the id of the patrolled revision.
func (e *PatrolEntry) CurrentRevisionID() int {
	return e.currentID
}

// PreviousRevisionID returns the id of the revision before it.
func (e *PatrolEntry) PreviousRevisionID() int {
	return e.previousID
}

// Automatic reports whether the revision was autopatrolled.
func (e *PatrolEntry) Automatic() bool {
	return e.auto
}

// The remaining registered kinds carry no accessors beyond the common
// surface but keep their own static type so ExpectedKind distinguishes them
// from the generic fallback.

// ProtectEntry is a log entry for a page protection change.
type ProtectEntry struct{ *base }

// NewProtectEntry wraps a raw record declared as type "protect".
func NewProtectEntry(raw RawRecord, site SiteResolver) (*ProtectEntry, error) {
	b, err := parseBase(raw, site)
	if err != nil {
		return nil, err
	}
	b.markExpected(KindProtect)
	return &ProtectEntry{base: b}, nil
}

// DeleteEntry is a log entry for a page deletion or restore.
type DeleteEntry struct{ *base }

// NewDeleteEntry wraps a raw record declared as type "delete".
func NewDeleteEntry(raw RawRecord, site SiteResolver) (*DeleteEntry, error) {
	b, err := parseBase(raw, site)
	if err != nil {
		return nil, err
	}
	b.markExpected(KindDelete)
	return &DeleteEntry{base: b}, nil
}

// UploadEntry is a log entry for a file upload.
type UploadEntry struct{ *base }

// NewUploadEntry wraps a raw record declared as type "upload".
func NewUploadEntry(raw RawRecord, site SiteResolver) (*UploadEntry, error) {
	b, err := parseBase(raw, site)
	if err != nil {
		return nil, err
	}
	b.markExpected(KindUpload)
	return &UploadEntry{base: b}, nil
}

// ImportEntry is a log entry for a page import.
type ImportEntry struct{ *base }

// NewImportEntry wraps a raw record declared as type "import".
func NewImportEntry(raw RawRecord, site SiteResolver) (*ImportEntry, error) {
	b, err := parseBase(raw, site)
	if err != nil {
		return nil, err
	}
	b.markExpected(KindImport)
	return &ImportEntry{base: b}, nil
}

// NewUsersEntry is a log entry for an account creation.
type NewUsersEntry struct{ *base }

// NewNewUsersEntry wraps a raw record declared as type "newusers".
func NewNewUsersEntry(raw RawRecord, site SiteResolver) (*NewUsersEntry, error) {
	b, err := parseBase(raw, site)
	if err != nil {
		return nil, err
	}
	b.markExpected(KindNewUsers)
	return &NewUsersEntry{base: b}, nil
}
