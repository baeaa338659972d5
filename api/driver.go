// Package api defines the driver API for the tape machine.
package api

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/bfvm/compiler"
	"github.com/sarchlab/bfvm/core"
	"github.com/sarchlab/bfvm/program"
)

// Driver provides the interface to control the machine.
type Driver interface {
	// MapProgram loads a compiled program onto the core. The tape is reset.
	MapProgram(p program.Program)

	// Run executes the mapped program until it halts or fails. Output that
	// was written before a failure stays written.
	Run() error

	// Core returns the machine the driver controls.
	Core() *core.Core
}

type driverImpl struct {
	engine sim.Engine
	core   *core.Core
}

func (d *driverImpl) MapProgram(p program.Program) {
	d.core.MapProgram(p)
}

func (d *driverImpl) Core() *core.Core {
	return d.core
}

func (d *driverImpl) Run() error {
	// A reused engine's clock may sit on the core's last tick.
	d.core.TickLater()

	if err := d.engine.Run(); err != nil {
		return fmt.Errorf("engine: %w", err)
	}

	slog.Debug("DriverRunDone",
		"Core", d.core.Name(),
		"PC", d.core.PC(),
		"Halted", d.core.Halted(),
	)

	return d.core.Err()
}

// RunSource compiles source and runs it with the default tape.
func RunSource(source string, in io.ByteReader, out io.Writer) error {
	prog, err := compiler.Compile(source)
	if err != nil {
		return err
	}

	driver := DriverBuilder{}.
		WithInput(in).
		WithOutput(out).
		Build("Driver")
	driver.MapProgram(prog)

	return driver.Run()
}
