// Package services contains the log entry registry, factory and query
// logic.
package services

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ersonp/wikilog/internal/domain/entities"
)

// ErrDuplicateKind is returned when a kind is registered twice. Duplicate
// registration is a configuration mistake made at startup, not a per-record
// condition.
var ErrDuplicateKind = errors.New("log entry kind already registered")

// Builder constructs one variant from a raw record.
type Builder func(raw entities.RawRecord, site entities.SiteResolver) (entities.LogEntry, error)

// Registry maps entry kinds to variant builders. It is built once at startup
// and read-only afterwards; there is deliberately no package-global
// instance.
//
// The registry is intentionally incomplete: the wiki platform grows new
// action types without client updates, so unregistered kinds resolve to the
// generic builder instead of failing.
type Registry struct {
	builders map[entities.Kind]Builder
}

// NewEmptyRegistry creates a registry with no kinds registered.
func NewEmptyRegistry() *Registry {
	return &Registry{builders: make(map[entities.Kind]Builder)}
}

// NewRegistry creates a registry pre-loaded with the standard kind set.
func NewRegistry() *Registry {
	r := NewEmptyRegistry()
	for kind, b := range standardBuilders() {
		// Registering a fixed set into an empty registry cannot collide.
		if err := r.Register(kind, b); err != nil {
			panic(err)
		}
	}
	return r
}

// Register associates a kind with a builder. Registering a kind twice
// returns ErrDuplicateKind.
func (r *Registry) Register(kind entities.Kind, builder Builder) error {
	if _, exists := r.builders[kind]; exists {
		return fmt.Errorf("%q: %w", kind, ErrDuplicateKind)
	}
	r.builders[kind] = builder
	return nil
}

// Resolve returns the builder for the kind, falling back to the generic
// builder for unregistered kinds. found reports whether a specialized
// builder matched; resolution itself never fails.
func (r *Registry) Resolve(kind entities.Kind) (builder Builder, found bool) {
	if b, ok := r.builders[kind]; ok {
		return b, true
	}
	return genericBuilder, false
}

// Kinds returns the sorted list of kinds with specialized builders.
func (r *Registry) Kinds() []entities.Kind {
	out := make([]entities.Kind, 0, len(r.builders))
	for k := range r.builders {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func genericBuilder(raw entities.RawRecord, site entities.SiteResolver) (entities.LogEntry, error) {
	return entities.NewGenericEntry(raw, site)
}

func standardBuilders() map[entities.Kind]Builder {
	return map[entities.Kind]Builder{
		entities.KindBlock: func(raw entities.RawRecord, site entities.SiteResolver) (entities.LogEntry, error) {
			return entities.NewBlockEntry(raw, site)
		},
		entities.KindProtect: func(raw entities.RawRecord, site entities.SiteResolver) (entities.LogEntry, error) {
			return entities.NewProtectEntry(raw, site)
		},
		entities.KindRights: func(raw entities.RawRecord, site entities.SiteResolver) (entities.LogEntry, error) {
			return entities.NewRightsEntry(raw, site)
		},
		entities.KindDelete: func(raw entities.RawRecord, site entities.SiteResolver) (entities.LogEntry, error) {
			return entities.NewDeleteEntry(raw, site)
		},
		entities.KindUpload: func(raw entities.RawRecord, site entities.SiteResolver) (entities.LogEntry, error) {
			return entities.NewUploadEntry(raw, site)
		},
		entities.KindMove: func(raw entities.RawRecord, site entities.SiteResolver) (entities.LogEntry, error) {
			return entities.NewMoveEntry(raw, site)
		},
		entities.KindImport: func(raw entities.RawRecord, site entities.SiteResolver) (entities.LogEntry, error) {
			return entities.NewImportEntry(raw, site)
		},
		entities.KindPatrol: func(raw entities.RawRecord, site entities.SiteResolver) (entities.LogEntry, error) {
			return entities.NewPatrolEntry(raw, site)
		},
		entities.KindNewUsers: func(raw entities.RawRecord, site entities.SiteResolver) (entities.LogEntry, error) {
			return entities.NewNewUsersEntry(raw, site)
		},
	}
}
