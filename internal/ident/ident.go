// Package ident produces opaque identifiers for tasks and time entries.
package ident

import "github.com/google/uuid"

// Generator returns a new unique identifier on every call.
type Generator interface {
	NewID() string
}

// GeneratorFunc adapts a plain function to the Generator interface.
type GeneratorFunc func() string

// NewID calls f.
func (f GeneratorFunc) NewID() string {
	return f()
}

// UUID generates random (version 4) UUID strings.
type UUID struct{}

// NewID returns a fresh random UUID.
func (UUID) NewID() string {
	return uuid.New().String()
}
