// Package authz holds the ownership-filtering half of the authorization
// policy: deciding which already-produced response payloads a caller may
// see. Route admission (role checks) lives in the middleware layer; the
// split keeps "may call this endpoint" independent from "may see this
// document".
package authz

import (
	"github.com/recordkeep/records-api/internal/core/domain"
)

// Owned is implemented by documents carrying an ownership field.
type Owned interface {
	OwnerID() string
}

// restrictedSegments are the leading path segments whose GET responses are
// ownership-filtered for non-admin callers.
var restrictedSegments = map[string]struct{}{
	"clients": {},
	"client":  {},
	"bills":   {},
}

// RestrictedSegment reports whether a route's first path segment falls under
// the ownership-filtering rule.
func RestrictedSegment(segment string) bool {
	_, ok := restrictedSegments[segment]
	return ok
}

// FilterPayload applies the ownership rule to a handler's payload. Owned
// collections are narrowed to the caller's documents, preserving order; a
// single foreign document yields ErrAccessDenied; anything else passes
// through untouched.
func FilterPayload(payload any, callerID string) (any, error) {
	switch p := payload.(type) {
	case Owned:
		if p.OwnerID() != callerID {
			return nil, domain.ErrAccessDenied
		}
		return payload, nil
	case []domain.Client:
		return filterOwned(p, callerID), nil
	case []domain.Bill:
		return filterOwned(p, callerID), nil
	default:
		return payload, nil
	}
}

func filterOwned[T Owned](docs []T, callerID string) []T {
	kept := make([]T, 0, len(docs))
	for _, doc := range docs {
		if doc.OwnerID() == callerID {
			kept = append(kept, doc)
		}
	}
	return kept
}
