package verify

import (
	"fmt"

	"github.com/sarchlab/bfvm/program"
)

// RunLint performs static structural checks on a program.
// Returns a list of issues found, or empty list if no issues.
func RunLint(p program.Program) []Issue {
	var issues []Issue

	for idx, inst := range p.Insts {
		if !inst.OpCode.Valid() {
			issues = append(issues, Issue{
				Type:    IssueStruct,
				Index:   idx,
				Offset:  inst.Offset,
				Message: fmt.Sprintf("Invalid opcode %s at pc=%d", inst.OpCode, idx),
				Details: map[string]interface{}{"opcode": uint8(inst.OpCode)},
			})
			continue
		}

		if !inst.OpCode.IsJump() {
			continue
		}

		if issue, ok := checkJump(p, idx); !ok {
			issues = append(issues, issue)
		}
	}

	return issues
}

// checkJump validates the jump at idx against its partner.
func checkJump(p program.Program, idx int) (Issue, bool) {
	inst := p.Insts[idx]
	issue := Issue{
		Type:    IssueStruct,
		Index:   idx,
		Offset:  inst.Offset,
		Details: map[string]interface{}{"target": inst.Target},
	}

	if !inst.Resolved() {
		issue.Message = fmt.Sprintf("Unresolved %s at pc=%d", inst.OpCode, idx)
		return issue, false
	}

	if inst.Target < 0 || inst.Target >= len(p.Insts) {
		issue.Message = fmt.Sprintf(
			"%s at pc=%d targets %d, outside program of %d instructions",
			inst.OpCode, idx, inst.Target, len(p.Insts))
		return issue, false
	}

	partner := p.Insts[inst.Target]
	want := program.JumpBackward
	if inst.OpCode == program.JumpBackward {
		want = program.JumpForward
	}

	if partner.OpCode != want {
		issue.Message = fmt.Sprintf(
			"%s at pc=%d targets %s at pc=%d, expected %s",
			inst.OpCode, idx, partner.OpCode, inst.Target, want)
		issue.Details["partner"] = partner.OpCode.String()
		return issue, false
	}

	if partner.Target != idx {
		issue.Message = fmt.Sprintf(
			"%s at pc=%d targets pc=%d, which points back to %d",
			inst.OpCode, idx, inst.Target, partner.Target)
		issue.Details["partner_target"] = partner.Target
		return issue, false
	}

	if inst.OpCode == program.JumpForward && inst.Target <= idx {
		issue.Message = fmt.Sprintf(
			"%s at pc=%d targets earlier pc=%d", inst.OpCode, idx, inst.Target)
		return issue, false
	}

	return Issue{}, true
}
