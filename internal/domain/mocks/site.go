// Package mocks contains hand-written mock implementations of the domain
// ports for use in tests.
package mocks

import (
	"fmt"

	"github.com/ersonp/wikilog/internal/domain/entities"
)

// Site is a mock implementation of ports.Site backed by a static namespace
// table.
type Site struct {
	Ver        string
	Namespaces map[int]entities.Namespace
	Err        error
}

// NewSite creates a mock site with the core MediaWiki namespaces.
func NewSite() *Site {
	return &Site{
		Ver: "1.43.0",
		Namespaces: map[int]entities.Namespace{
			-2: {ID: -2, Name: "Media", Canonical: "Media"},
			-1: {ID: -1, Name: "Special", Canonical: "Special"},
			0:  {ID: 0, Name: "", Canonical: ""},
			1:  {ID: 1, Name: "Talk", Canonical: "Talk"},
			2:  {ID: 2, Name: "User", Canonical: "User"},
			3:  {ID: 3, Name: "User talk", Canonical: "User talk"},
			4:  {ID: 4, Name: "Project", Canonical: "Project"},
		},
	}
}

// Version returns the configured version string.
func (m *Site) Version() string {
	return m.Ver
}

// Namespace resolves a namespace id from the static table.
func (m *Site) Namespace(id int) (entities.Namespace, error) {
	if m.Err != nil {
		return entities.Namespace{}, m.Err
	}
	ns, ok := m.Namespaces[id]
	if !ok {
		return entities.Namespace{}, fmt.Errorf("unknown namespace id %d", id)
	}
	return ns, nil
}

// NewPage builds a page reference in the given namespace.
func (m *Site) NewPage(ns int, title string) (entities.Page, error) {
	namespace, err := m.Namespace(ns)
	if err != nil {
		return entities.Page{}, err
	}
	return entities.Page{Namespace: namespace, Title: title}, nil
}
