package types

import "context"

// Registry resolves logical location names to filesystem paths. It is
// consumed read-only: the catalog never creates, updates, or removes
// registry entries.
//
// Implementations must be safe for concurrent use.
type Registry interface {
	// Lookup returns the path registered under name. Matching is
	// case-sensitive. When a backing store holds several rows for the same
	// name, the first match wins. Returns ErrNameNotFound (possibly
	// wrapped) when the name has no entry.
	Lookup(ctx context.Context, name string) (string, error)
}
