// Package compiler translates brainfuck source text into a program.
package compiler

import (
	"log/slog"

	"github.com/sarchlab/bfvm/program"
	"github.com/sarchlab/bfvm/verify"
)

// Compiler builds programs for one ISA.
type Compiler struct {
	isa *program.ISA
}

// New creates a compiler for the given ISA.
func New(isa *program.ISA) *Compiler {
	if isa == nil {
		panic("compiler needs an ISA")
	}
	return &Compiler{isa: isa}
}

// Compile compiles source with the default brainfuck ISA.
func Compile(source string) (program.Program, error) {
	return New(program.DefaultISA()).Compile(source)
}

// Compile builds a program from source and validates it. Characters outside
// the ISA are discarded. A program is only returned when both steps pass.
func (c *Compiler) Compile(source string) (program.Program, error) {
	prog, err := c.build(source)
	if err != nil {
		return program.Program{}, err
	}

	if !verify.Validate(prog) {
		return program.Program{}, &ParseError{Err: ErrUnresolvedJump, Offset: -1}
	}

	slog.Debug("Compiled",
		"ISA", c.isa.Name(),
		"Insts", prog.Len(),
	)

	return prog, nil
}

type token struct {
	op     program.Opcode
	offset int
}

func (c *Compiler) filter(source string) []token {
	var tokens []token
	offset := 0
	for _, r := range source {
		if op, ok := c.isa.Lookup(r); ok {
			tokens = append(tokens, token{op: op, offset: offset})
		}
		offset++
	}
	return tokens
}

// build runs the single pass over the filtered source.
func (c *Compiler) build(source string) (program.Program, error) {
	tokens := c.filter(source)
	if len(tokens) == 0 {
		return program.Program{}, &ParseError{Err: ErrNoInstructions, Offset: -1}
	}

	insts := make([]program.Inst, 0, len(tokens))
	var openers []int

	for _, tok := range tokens {
		pc := len(insts)

		switch tok.op {
		case program.JumpForward:
			openers = append(openers, pc)
			insts = append(insts, program.NewInst(program.JumpForward, tok.offset))
		case program.JumpBackward:
			if len(openers) == 0 {
				return program.Program{}, &ParseError{Err: ErrUnmatchedClose, Offset: tok.offset}
			}
			open := openers[len(openers)-1]
			openers = openers[:len(openers)-1]

			insts[open].Target = pc
			insts = append(insts, program.NewJump(program.JumpBackward, open, tok.offset))
		default:
			insts = append(insts, program.NewInst(tok.op, tok.offset))
		}
	}

	if len(openers) > 0 {
		open := openers[len(openers)-1]
		return program.Program{}, &ParseError{Err: ErrUnmatchedOpen, Offset: insts[open].Offset}
	}

	return program.Program{Insts: insts}, nil
}
