// Package identifier generates the opaque identifiers used for users, books
// and wishlists.
//
// Identifiers are random (version 4) UUIDs in their canonical lowercase
// textual form, e.g. "9b2f4c1e-3c1a-4f7e-8a55-0d6c2b7f1e90".
package identifier

import (
	"regexp"

	"github.com/google/uuid"
)

// canonicalPattern matches the hyphenated lowercase form produced by New.
// uuid.Parse is more lenient (braces, urn prefix, uppercase) so it is not
// used on its own for validation.
var canonicalPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

// New returns a fresh random identifier.
func New() string {
	return uuid.NewString()
}

// Valid reports whether s is a well-formed identifier.
func Valid(s string) bool {
	if !canonicalPattern.MatchString(s) {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
