// Package core implements the tape machine that runs compiled programs.
package core

import (
	"log/slog"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/bfvm/program"
)

// DefaultTapeSize is the number of cells on the tape.
const DefaultTapeSize = 30000

// Core executes one instruction per tick against its own tape.
type Core struct {
	*sim.TickingComponent

	state coreState
	emu   instEmulator
}

// MapProgram loads a program and resets the tape, pointer and PC.
func (c *Core) MapProgram(p program.Program) {
	c.state.reset(p)

	slog.Debug("MapProgram",
		"Core", c.Name(),
		"Insts", p.Len(),
		"TapeSize", len(c.state.Tape),
	)
}

// Tick runs the program for one cycle.
func (c *Core) Tick() (madeProgress bool) {
	if c.state.Err != nil || c.state.halted() {
		return false
	}

	if err := c.emu.RunInst(&c.state); err != nil {
		c.state.Err = err
		slog.Debug("RuntimeError", "Core", c.Name(), "Err", err)
		LogState(&c.state)
		return false
	}

	if c.state.halted() {
		slog.Debug("Halted", "Core", c.Name())
		LogState(&c.state)
	}

	return true
}

// Halted reports whether the PC has run past the last instruction.
func (c *Core) Halted() bool {
	return c.state.halted()
}

// Err returns the error that stopped the machine, if any.
func (c *Core) Err() error {
	return c.state.Err
}

// PC returns the program counter.
func (c *Core) PC() int {
	return c.state.PC
}

// Pointer returns the index of the current cell.
func (c *Core) Pointer() int {
	return c.state.Pointer
}

// Cell returns the value of tape cell i.
func (c *Core) Cell(i int) int32 {
	return c.state.Tape[i]
}

// TapeSize returns the number of cells on the tape.
func (c *Core) TapeSize() int {
	return len(c.state.Tape)
}
