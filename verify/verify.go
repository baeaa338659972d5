// Package verify checks compiled programs before they reach the tape machine.
//
// Two checks are provided:
//
// 1. Validate: the gate used by the compiler. A program passes when every
// jump instruction carries a resolved target. Nothing else is examined.
//
// 2. Static Lint (lint.go): structural checks on jump pairs
//   - STRUCT checks: target range, partner kind, partner pointing back,
//     opcodes outside the instruction set
//
// # IR Structure
//
//	program.Program
//	  └── Inst (one per source character kept by the ISA)
//	      ├── OpCode (MOVE_RIGHT, INCREMENT, JUMP_FORWARD, ...)
//	      ├── Target (partner index, or program.Unresolved)
//	      └── Offset (rune offset in the source text)
//
// A well formed pair has JUMP_FORWARD at i targeting the JUMP_BACKWARD at j,
// and j targeting i.
//
// # Usage Example
//
//	prog, err := compiler.Compile(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report := verify.GenerateReport(prog)
//	report.WriteReport(os.Stdout)
package verify

import (
	"github.com/sarchlab/bfvm/program"
)

// IssueType categorizes lint issues
type IssueType string

const (
	IssueStruct IssueType = "STRUCT" // Malformed jump pair or opcode
)

// Issue represents a single lint issue
type Issue struct {
	Type    IssueType              // STRUCT
	Index   int                    // Instruction index, -1 if not applicable
	Offset  int                    // Source offset, -1 if not applicable
	Message string                 // Human-readable description
	Details map[string]interface{} // Additional structured data
}

// Validate reports whether every jump instruction in p has a resolved target.
func Validate(p program.Program) bool {
	for _, inst := range p.Insts {
		if inst.OpCode.IsJump() && !inst.Resolved() {
			return false
		}
	}
	return true
}
