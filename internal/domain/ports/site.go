// Package ports defines the interfaces the domain consumes from
// infrastructure.
package ports

import "github.com/ersonp/wikilog/internal/domain/entities"

// Site is the wiki platform context: version reporting plus the resolver
// surface the entry model needs to build namespace and page references.
type Site interface {
	entities.SiteResolver

	// Version returns the wiki software version string (e.g. "1.43.0").
	// Informational only; record shape is detected structurally, never
	// from the version.
	Version() string
}
