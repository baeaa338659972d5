package compiler

import (
	"errors"
	"fmt"
)

var (
	// ErrNoInstructions means the source holds no instruction characters.
	ErrNoInstructions = errors.New("no instructions")
	// ErrUnmatchedClose means a ']' has no opening partner.
	ErrUnmatchedClose = errors.New("unmatched ']'")
	// ErrUnmatchedOpen means a '[' is never closed.
	ErrUnmatchedOpen = errors.New("unmatched '['")
	// ErrUnresolvedJump means validation found a jump without a target.
	ErrUnresolvedJump = errors.New("unresolved jump target")
)

// ParseError is returned when source text cannot be compiled.
type ParseError struct {
	Err error
	// Rune offset in the source, -1 when the error has no position.
	Offset int
}

func (e *ParseError) Error() string {
	if e.Offset < 0 {
		return "parse error: " + e.Err.Error()
	}
	return fmt.Sprintf("parse error: %s at offset %d", e.Err, e.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
