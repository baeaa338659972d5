package core

import (
	"bytes"
	"io"

	"github.com/sarchlab/akita/v4/sim"
)

// Builder can create new cores.
type Builder struct {
	engine   sim.Engine
	freq     sim.Freq
	tapeSize int
	in       io.ByteReader
	out      io.Writer
	eof      EOFPolicy
}

// NewBuilder returns a builder with a 1 GHz clock and the default tape.
func NewBuilder() Builder {
	return Builder{
		freq:     1 * sim.GHz,
		tapeSize: DefaultTapeSize,
	}
}

// WithEngine sets the engine.
func (b Builder) WithEngine(engine sim.Engine) Builder {
	b.engine = engine
	return b
}

// WithFreq sets the frequency of the core.
func (b Builder) WithFreq(freq sim.Freq) Builder {
	b.freq = freq
	return b
}

// WithTapeSize sets the number of cells.
func (b Builder) WithTapeSize(size int) Builder {
	if size < 1 {
		panic("Need at least 1 tape cell")
	}
	b.tapeSize = size
	return b
}

// WithInput sets the console input stream.
func (b Builder) WithInput(in io.ByteReader) Builder {
	b.in = in
	return b
}

// WithOutput sets the console output stream.
func (b Builder) WithOutput(out io.Writer) Builder {
	b.out = out
	return b
}

// WithEOFPolicy sets what Input does at end of stream.
func (b Builder) WithEOFPolicy(eof EOFPolicy) Builder {
	b.eof = eof
	return b
}

// Build creates a core.
func (b Builder) Build(name string) *Core {
	c := &Core{emu: newInstEmulator()}

	c.TickingComponent = sim.NewTickingComponent(name, b.engine, b.freq, c)
	c.state = coreState{
		Tape: make([]int32, b.tapeSize),
		in:   b.in,
		out:  b.out,
		eof:  b.eof,
	}

	if c.state.in == nil {
		c.state.in = bytes.NewReader(nil)
	}
	if c.state.out == nil {
		c.state.out = io.Discard
	}

	return c
}
