package core

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sarchlab/bfvm/program"
)

// EOFPolicy decides what Input does at end of stream.
type EOFPolicy int

const (
	// EOFFail stops the machine with ErrInputExhausted.
	EOFFail EOFPolicy = iota
	// EOFZero stores 0 in the current cell.
	EOFZero
	// EOFKeep leaves the current cell unchanged.
	EOFKeep
)

var eofPolicyNames = []string{"fail", "zero", "keep"}

func (p EOFPolicy) String() string {
	if p < 0 || int(p) >= len(eofPolicyNames) {
		return fmt.Sprintf("EOFPolicy(%d)", int(p))
	}
	return eofPolicyNames[p]
}

// ParseEOFPolicy reads a policy name such as "zero".
func ParseEOFPolicy(s string) (EOFPolicy, error) {
	for i, name := range eofPolicyNames {
		if strings.EqualFold(s, name) {
			return EOFPolicy(i), nil
		}
	}
	return EOFFail, fmt.Errorf("unknown EOF policy %q", s)
}

type coreState struct {
	PC      int
	Pointer int
	Tape    []int32
	Code    program.Program

	in  io.ByteReader
	out io.Writer
	eof EOFPolicy

	Err error
}

func (s *coreState) halted() bool {
	return s.PC >= len(s.Code.Insts)
}

func (s *coreState) reset(p program.Program) {
	clear(s.Tape)
	s.PC = 0
	s.Pointer = 0
	s.Code = p
	s.Err = nil
}

type instFunc func(inst program.Inst, state *coreState) error

type instEmulator struct {
	instFuncs map[program.Opcode]instFunc
}

func newInstEmulator() instEmulator {
	i := instEmulator{}
	i.instFuncs = map[program.Opcode]instFunc{
		program.MoveRight:    i.runMoveRight,
		program.MoveLeft:     i.runMoveLeft,
		program.Increment:    i.runIncrement,
		program.Decrement:    i.runDecrement,
		program.Output:       i.runOutput,
		program.Input:        i.runInput,
		program.JumpForward:  i.runJumpForward,
		program.JumpBackward: i.runJumpBackward,
	}
	return i
}

// RunInst executes the instruction at the PC and advances the PC. A taken
// jump sets the PC to its target before the advance.
func (i instEmulator) RunInst(state *coreState) error {
	inst := state.Code.Insts[state.PC]

	run, ok := i.instFuncs[inst.OpCode]
	if !ok {
		panic(fmt.Sprintf("unknown instruction '%s' at PC %d", inst.OpCode, state.PC))
	}

	if err := run(inst, state); err != nil {
		return &RuntimeError{
			Err:     err,
			PC:      state.PC,
			Pointer: state.Pointer,
			OpCode:  inst.OpCode,
		}
	}

	state.PC++
	return nil
}

func (i instEmulator) runMoveRight(_ program.Inst, state *coreState) error {
	if state.Pointer+1 >= len(state.Tape) {
		return ErrTapeBounds
	}
	state.Pointer++
	return nil
}

func (i instEmulator) runMoveLeft(_ program.Inst, state *coreState) error {
	if state.Pointer == 0 {
		return ErrTapeBounds
	}
	state.Pointer--
	return nil
}

func (i instEmulator) runIncrement(_ program.Inst, state *coreState) error {
	state.Tape[state.Pointer]++
	return nil
}

func (i instEmulator) runDecrement(_ program.Inst, state *coreState) error {
	state.Tape[state.Pointer]--
	return nil
}

func (i instEmulator) runOutput(_ program.Inst, state *coreState) error {
	data := byte(state.Tape[state.Pointer])

	n, err := state.out.Write([]byte{data})
	if err == nil && n != 1 {
		err = io.ErrShortWrite
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	Trace("IO",
		"Behavior", "Output",
		"PC", state.PC,
		"Pointer", state.Pointer,
		"Data", data,
	)
	return nil
}

func (i instEmulator) runInput(_ program.Inst, state *coreState) error {
	data, err := state.in.ReadByte()
	if errors.Is(err, io.EOF) {
		return i.inputExhausted(state)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	state.Tape[state.Pointer] = int32(data)

	Trace("IO",
		"Behavior", "Input",
		"PC", state.PC,
		"Pointer", state.Pointer,
		"Data", data,
	)
	return nil
}

func (i instEmulator) inputExhausted(state *coreState) error {
	switch state.eof {
	case EOFZero:
		state.Tape[state.Pointer] = 0
	case EOFKeep:
	default:
		return ErrInputExhausted
	}

	Trace("IO",
		"Behavior", "InputEOF",
		"PC", state.PC,
		"Policy", state.eof.String(),
	)
	return nil
}

func (i instEmulator) runJumpForward(inst program.Inst, state *coreState) error {
	if state.Tape[state.Pointer] == 0 {
		state.PC = inst.Target
	}
	return nil
}

func (i instEmulator) runJumpBackward(inst program.Inst, state *coreState) error {
	if state.Tape[state.Pointer] != 0 {
		state.PC = inst.Target
	}
	return nil
}
