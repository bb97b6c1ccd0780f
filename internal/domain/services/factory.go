package services

import (
	"github.com/ersonp/wikilog/internal/domain/entities"
)

// Factory is the sole construction entry point for log entries. It inspects
// the record's declared type, resolves a builder through the registry and
// hands the record to it; unregistered kinds go through the generic
// fallback. Construction is all-or-nothing: a builder error yields no entry.
type Factory struct {
	registry *Registry
}

// NewFactory creates a factory over the given registry.
func NewFactory(registry *Registry) *Factory {
	return &Factory{registry: registry}
}

// Registry returns the factory's registry.
func (f *Factory) Registry() *Registry {
	return f.registry
}

// Create builds the variant matching the record's declared type. The raw
// record is never mutated; variant builders copy before unwrapping the
// nested params container.
func (f *Factory) Create(raw entities.RawRecord, site entities.SiteResolver) (entities.LogEntry, error) {
	builder, _ := f.registry.Resolve(entities.Kind(raw.String("type")))
	return builder(raw, site)
}
