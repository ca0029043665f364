package core

// Logger interface for tracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// ElementID identifies an element registered in an optical system.
// The zero value means "no element".
type ElementID int

// NoElement is the zero ElementID
const NoElement ElementID = 0
