package verify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sarchlab/bfvm/program"
)

// VerificationReport represents a complete verification report
type VerificationReport struct {
	InstCount  int
	JumpPairs  int
	Resolved   bool
	LintIssues []Issue
	Program    program.Program
}

// GenerateReport runs validation and lint, returns a report
func GenerateReport(p program.Program) *VerificationReport {
	report := &VerificationReport{
		InstCount: p.Len(),
		Resolved:  Validate(p),
		Program:   p,
	}

	for _, inst := range p.Insts {
		if inst.OpCode == program.JumpForward {
			report.JumpPairs++
		}
	}

	report.LintIssues = RunLint(p)

	return report
}

// OK reports whether the program passed every check.
func (r *VerificationReport) OK() bool {
	return r.Resolved && len(r.LintIssues) == 0
}

// WriteReport writes a formatted report to a writer
func (r *VerificationReport) WriteReport(w io.Writer) {
	separator := strings.Repeat("=", 60)
	dash := strings.Repeat("-", 60)

	fmt.Fprintln(w, separator)
	fmt.Fprintln(w, "PROGRAM VERIFICATION REPORT")
	fmt.Fprintln(w, separator)

	fmt.Fprintf(w, "\nInstructions: %d\n", r.InstCount)
	fmt.Fprintf(w, "Jump pairs:   %d\n", r.JumpPairs)

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 1: JUMP RESOLUTION")
	fmt.Fprintln(w, separator)

	if r.Resolved {
		fmt.Fprintln(w, "✓ All jump targets resolved")
	} else {
		fmt.Fprintln(w, "⚠ Unresolved jump targets present")
	}

	fmt.Fprintln(w, "\n"+separator)
	fmt.Fprintln(w, "STAGE 2: STATIC LINT CHECKS")
	fmt.Fprintln(w, separator)

	if len(r.LintIssues) == 0 {
		fmt.Fprintln(w, "✓ No lint issues found!")
	} else {
		fmt.Fprintf(w, "⚠ Found %d lint issues:\n", len(r.LintIssues))
		fmt.Fprintln(w, dash)
		for _, issue := range r.LintIssues {
			fmt.Fprintf(w, "  [%s pc=%d offset=%d] %s\n",
				issue.Type, issue.Index, issue.Offset, issue.Message)
		}
	}

	fmt.Fprintln(w, "\n"+separator)
	if r.OK() {
		fmt.Fprintln(w, "✓ PROGRAM PASSED ALL CHECKS")
	} else {
		fmt.Fprintln(w, "⚠ PROGRAM FAILED VERIFICATION")
	}
	fmt.Fprintln(w)
}

// SaveReportToFile saves the report to a file
func (r *VerificationReport) SaveReportToFile(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	r.WriteReport(file)
	return nil
}
