package core

import "github.com/google/uuid"

// ID identifies a scene entity for the lifetime of the process.
type ID = uuid.UUID

// NilID is the zero identifier.
var NilID = uuid.Nil

// IdentifierAquireNewID returns a fresh random identifier.
func IdentifierAquireNewID() ID {
	return uuid.New()
}

// IdentifierParse reads an identifier in its canonical string form.
func IdentifierParse(s string) (ID, error) {
	return uuid.Parse(s)
}
