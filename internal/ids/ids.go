// Package ids issues the opaque identifiers stamped on every captured record.
package ids

import "github.com/google/uuid"

// Generator produces a globally unique opaque string per call.
type Generator interface {
	NewID() string
}

// UUID issues random (version 4) UUID strings.
type UUID struct{}

func (UUID) NewID() string { return uuid.NewString() }

// Func adapts a plain function to Generator.
type Func func() string

func (f Func) NewID() string { return f() }
