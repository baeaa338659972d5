package api

import (
	"io"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/bfvm/core"
)

// DriverBuilder creates a new instance of Driver.
type DriverBuilder struct {
	engine   sim.Engine
	freq     sim.Freq
	tapeSize int
	in       io.ByteReader
	out      io.Writer
	eof      core.EOFPolicy
}

// WithEngine sets the engine. A serial engine is created when none is set.
func (b DriverBuilder) WithEngine(engine sim.Engine) DriverBuilder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the machine.
func (b DriverBuilder) WithFreq(freq sim.Freq) DriverBuilder {
	b.freq = freq
	return b
}

// WithTapeSize sets the number of cells on the tape.
func (b DriverBuilder) WithTapeSize(size int) DriverBuilder {
	b.tapeSize = size
	return b
}

// WithInput sets the console input stream.
func (b DriverBuilder) WithInput(in io.ByteReader) DriverBuilder {
	b.in = in
	return b
}

// WithOutput sets the console output stream.
func (b DriverBuilder) WithOutput(out io.Writer) DriverBuilder {
	b.out = out
	return b
}

// WithEOFPolicy sets what Input does at end of stream.
func (b DriverBuilder) WithEOFPolicy(eof core.EOFPolicy) DriverBuilder {
	b.eof = eof
	return b
}

// Build create a driver.
func (b DriverBuilder) Build(name string) Driver {
	engine := b.engine
	if engine == nil {
		engine = sim.NewSerialEngine()
	}

	freq := b.freq
	if freq == 0 {
		freq = 1 * sim.GHz
	}

	cb := core.NewBuilder().
		WithEngine(engine).
		WithFreq(freq).
		WithInput(b.in).
		WithOutput(b.out).
		WithEOFPolicy(b.eof)
	if b.tapeSize > 0 {
		cb = cb.WithTapeSize(b.tapeSize)
	}

	return &driverImpl{
		engine: engine,
		core:   cb.Build(name + ".Core"),
	}
}
