// Package program defines the instruction set consumed by the tape machine.
package program

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Opcode identifies the operation of an instruction.
type Opcode uint8

const (
	// Invalid is the zero value and is never emitted by the compiler.
	Invalid Opcode = iota
	// MoveRight moves the pointer one cell to the right.
	MoveRight
	// MoveLeft moves the pointer one cell to the left.
	MoveLeft
	// Increment adds one to the current cell.
	Increment
	// Decrement subtracts one from the current cell.
	Decrement
	// Output writes the low byte of the current cell.
	Output
	// Input reads one byte into the current cell.
	Input
	// JumpForward jumps past its partner when the current cell is zero.
	JumpForward
	// JumpBackward jumps back to its partner when the current cell is not zero.
	JumpBackward
)

var opcodeNames = map[Opcode]string{
	Invalid:      "INVALID",
	MoveRight:    "MOVE_RIGHT",
	MoveLeft:     "MOVE_LEFT",
	Increment:    "INCREMENT",
	Decrement:    "DECREMENT",
	Output:       "OUTPUT",
	Input:        "INPUT",
	JumpForward:  "JUMP_FORWARD",
	JumpBackward: "JUMP_BACKWARD",
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("OPCODE(%d)", uint8(op))
}

// Valid reports whether op is one of the emitted opcodes.
func (op Opcode) Valid() bool {
	return op >= MoveRight && op <= JumpBackward
}

// IsJump reports whether op carries a jump target.
func (op Opcode) IsJump() bool {
	return op == JumpForward || op == JumpBackward
}

// Unresolved marks a jump whose partner is not known yet.
const Unresolved = -1

// Inst is a single compiled instruction.
type Inst struct {
	OpCode Opcode
	// Index of the partner jump. Unresolved for non-jumps and for openers
	// that have not been closed.
	Target int
	// Rune offset in the source text, for diagnostics.
	Offset int
}

// NewInst creates a non-jump instruction.
func NewInst(op Opcode, offset int) Inst {
	return Inst{OpCode: op, Target: Unresolved, Offset: offset}
}

// NewJump creates a jump instruction with the given target.
func NewJump(op Opcode, target, offset int) Inst {
	return Inst{OpCode: op, Target: target, Offset: offset}
}

// Resolved reports whether the instruction has a jump target.
func (i Inst) Resolved() bool {
	return i.Target != Unresolved
}

func (i Inst) String() string {
	if i.OpCode.IsJump() {
		if !i.Resolved() {
			return fmt.Sprintf("%s(?)", i.OpCode)
		}
		return fmt.Sprintf("%s(%d)", i.OpCode, i.Target)
	}
	return i.OpCode.String()
}

// Program is an ordered, immutable instruction sequence.
type Program struct {
	Insts []Inst
}

// Len returns the number of instructions.
func (p Program) Len() int {
	return len(p.Insts)
}

// Opcodes returns the opcode sequence of the program.
func (p Program) Opcodes() []Opcode {
	ops := make([]Opcode, len(p.Insts))
	for i, inst := range p.Insts {
		ops[i] = inst.OpCode
	}
	return ops
}

// Source rebuilds the filtered source text using the given ISA.
func (p Program) Source(isa *ISA) string {
	var sb strings.Builder
	for _, inst := range p.Insts {
		if c, ok := isa.Char(inst.OpCode); ok {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}

func (p Program) String() string {
	parts := make([]string, len(p.Insts))
	for i, inst := range p.Insts {
		parts[i] = inst.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// WriteTable renders the program as a disassembly table.
func (p Program) WriteTable(w io.Writer) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("Program (%d instructions)", len(p.Insts)))
	t.AppendHeader(table.Row{"PC", "Op", "Target", "Offset"})

	for pc, inst := range p.Insts {
		target := ""
		if inst.OpCode.IsJump() {
			target = "?"
			if inst.Resolved() {
				target = fmt.Sprintf("%d", inst.Target)
			}
		}
		t.AppendRow(table.Row{pc, inst.OpCode, target, inst.Offset})
	}

	t.Render()
}
