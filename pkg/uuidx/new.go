// Package uuidx generates v7 uuids, which sort by creation time. Streams and
// topics that are not explicitly named use these for log correlation.
package uuidx

import "github.com/google/uuid"

// New returns a fresh version 7 UUID. It panics if generation fails, which
// only happens when the system's entropy source is broken.
func New() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}

// NewString returns a fresh version 7 UUID in its canonical string form.
func NewString() string {
	return New().String()
}
