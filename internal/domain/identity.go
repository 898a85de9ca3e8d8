package domain

import "regexp"

var idRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]{1,64}$`)

// IsValidID reports whether s is a syntactically valid document identifier.
// Identifiers are opaque strings minted by the store layer; the shape check
// exists so malformed filter input can be ignored or rejected before it
// reaches a query.
func IsValidID(s string) bool {
	return idRegex.MatchString(s)
}
