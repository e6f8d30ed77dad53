// Package session defines the compilation-session handle used to scope
// configuration and target-backend lookups.
//
// A session identifies one compilation unit. Registries key their entries by
// session ID; the distinguished Nil ID holds the process-wide default entry
// that lookups fall back to when no exact entry exists.
package session

import "github.com/google/uuid"

// ID identifies one compilation session. The zero value is Nil.
type ID struct {
	id uuid.UUID
}

// Nil is the distinguished null session. Registries use it for the
// default/global entry.
var Nil = ID{}

// New returns a fresh, unique session ID.
func New() ID {
	return ID{id: uuid.New()}
}

// IsNil reports whether the ID is the distinguished null session.
func (s ID) IsNil() bool {
	return s.id == uuid.Nil
}

func (s ID) String() string {
	if s.IsNil() {
		return "<default>"
	}
	return s.id.String()
}
