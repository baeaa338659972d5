package main

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/sarchlab/akita/v4/sim"
	"github.com/sarchlab/bfvm/api"
	"github.com/sarchlab/bfvm/compiler"
	"github.com/tebeka/atexit"
)

//go:embed hello.bf
var helloKernel string

func main() {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	slog.SetDefault(slog.New(handler))

	prog, err := compiler.Compile(helloKernel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Invalid brainfuck code:", err)
		atexit.Exit(1)
	}

	engine := sim.NewSerialEngine()

	driver := api.DriverBuilder{}.
		WithEngine(engine).
		WithFreq(1 * sim.GHz).
		WithOutput(os.Stdout).
		Build("Driver")

	driver.MapProgram(prog)

	if err := driver.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		atexit.Exit(2)
	}

	slog.Info("Done", "Time", float64(engine.CurrentTime()*1e9))

	atexit.Exit(0)
}
