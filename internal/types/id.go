// README: Shared identifier type and generator used across modules.
package types

import "github.com/google/uuid"

type ID string

// NewID returns a random UUIDv4 string identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// Valid reports whether v looks like an identifier this service can store:
// non-empty, at most 64 characters, letters, digits, '-' and '_' only.
func Valid(v string) bool {
	if v == "" || len(v) > 64 {
		return false
	}
	for _, c := range v {
		if (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '-' || c == '_' {
			continue
		}
		return false
	}
	return true
}
