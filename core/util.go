package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	LevelTrace slog.Level = slog.LevelInfo + 1

	// Cells shown on each side of the pointer by RenderState.
	stateWindow = 8
)

func Trace(msg string, args ...any) {
	slog.Log(context.Background(), LevelTrace, msg, args...)
}

// RenderState draws the cells around the pointer as a table.
func RenderState(w io.Writer, c *Core) {
	state := &c.state

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetTitle(fmt.Sprintf("State@%s PC=%d Pointer=%d", c.Name(), state.PC, state.Pointer))
	t.AppendHeader(table.Row{"Cell", "Value", "Byte", ""})

	lo := max(state.Pointer-stateWindow, 0)
	hi := min(state.Pointer+stateWindow, len(state.Tape)-1)
	for i := lo; i <= hi; i++ {
		mark := ""
		if i == state.Pointer {
			mark = "<"
		}
		v := state.Tape[i]
		t.AppendRow(table.Row{i, v, fmt.Sprintf("0x%02x", byte(v)), mark})
	}

	t.Render()
}

func LogState(state *coreState) {
	lo := max(state.Pointer-stateWindow, 0)
	hi := min(state.Pointer+stateWindow+1, len(state.Tape))

	slog.Debug("StateCheckpoint",
		"PC", state.PC,
		"Pointer", state.Pointer,
		"Insts", state.Code.Len(),
		"Window", state.Tape[lo:hi],
		"Err", state.Err,
	)
}
