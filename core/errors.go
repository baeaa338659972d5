package core

import (
	"errors"
	"fmt"

	"github.com/sarchlab/bfvm/program"
)

var (
	// ErrTapeBounds means the pointer tried to leave the tape.
	ErrTapeBounds = errors.New("tape pointer out of bounds")
	// ErrInputExhausted means Input ran at end of stream under EOFFail.
	ErrInputExhausted = errors.New("input exhausted")
)

// RuntimeError stops execution at the failing instruction.
type RuntimeError struct {
	Err     error
	PC      int
	Pointer int
	OpCode  program.Opcode
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error: %s at pc=%d (%s, pointer=%d)",
		e.Err, e.PC, e.OpCode, e.Pointer)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}
