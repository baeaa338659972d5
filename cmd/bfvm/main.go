// Command bfvm reads a brainfuck program from the first line of stdin and
// runs it. The rest of stdin is the program's input.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/sarchlab/bfvm/compiler"
	"github.com/sarchlab/bfvm/config"
	"github.com/sarchlab/bfvm/core"
	"github.com/sarchlab/bfvm/verify"
	"github.com/tebeka/atexit"
)

const (
	exitOK      = 0
	exitCompile = 1
	exitRuntime = 2
	exitConfig  = 3
)

type options struct {
	configPath string
	logLevel   string
	dump       bool
	check      bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options

	fs := flag.NewFlagSet("bfvm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "YAML run configuration")
	fs.StringVar(&opts.logLevel, "log-level", "", "override the configured log level")
	fs.BoolVar(&opts.dump, "dump", false, "print the compiled program and exit")
	fs.BoolVar(&opts.check, "check", false, "print the verification report and exit")

	err := fs.Parse(args)
	return opts, err
}

func loadConfig(opts options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return config.Config{}, err
		}
	}

	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	return cfg, cfg.Validate()
}

func readSource(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRightFunc(line, unicode.IsSpace), nil
}

func run(opts options, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	logger, closer, err := cfg.NewLogger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}
	defer closer.Close()
	slog.SetDefault(logger)

	in := bufio.NewReader(stdin)
	source, err := readSource(in)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to read program: %v\n", err)
		return exitCompile
	}

	prog, err := compiler.Compile(source)
	if err != nil {
		fmt.Fprintf(stderr, "Invalid brainfuck code: %v\n", err)
		return exitCompile
	}

	if opts.dump {
		prog.WriteTable(stdout)
		return exitOK
	}

	if opts.check {
		report := verify.GenerateReport(prog)
		report.WriteReport(stdout)
		if !report.OK() {
			return exitCompile
		}
		return exitOK
	}

	builder, err := cfg.DriverBuilder()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitConfig
	}

	driver := builder.
		WithInput(in).
		WithOutput(stdout).
		Build("Driver")
	driver.MapProgram(prog)

	if err := driver.Run(); err != nil {
		fmt.Fprintln(stderr, err)

		var rerr *core.RuntimeError
		if errors.As(err, &rerr) {
			core.RenderState(stderr, driver.Core())
		}
		return exitRuntime
	}

	return exitOK
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		atexit.Exit(exitOK)
	}
	if err != nil {
		atexit.Exit(exitConfig)
	}

	atexit.Exit(run(opts, os.Stdin, os.Stdout, os.Stderr))
}
