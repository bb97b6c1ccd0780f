package entities

// Namespace is one wiki namespace. Virtual namespaces (Special, Media) use
// negative ids, so valid ids start at -2.
type Namespace struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`      // Localized name (e.g. "Benutzer")
	Canonical string `json:"canonical"` // English canonical name (e.g. "User")
}

// Page is a reference to a wiki page: a namespace plus a title. It carries
// no content; resolving content or existence is the API client's concern.
type Page struct {
	Namespace Namespace `json:"namespace"`
	Title     string    `json:"title"`
}

// SiteResolver is the part of the site context the entry model consumes:
// namespace lookup and page-reference construction. The full site port
// (including the software version) lives in the ports package.
type SiteResolver interface {
	// Namespace resolves a namespace id to its Namespace.
	Namespace(id int) (Namespace, error)

	// NewPage builds a page reference in the given namespace.
	NewPage(ns int, title string) (Page, error)
}
