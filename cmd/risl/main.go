package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/risl-lang/risl/risl"
)

const version = "0.1.0"

// BSD sysexits codes.
const (
	exitOK       = 0
	exitUsage    = 64
	exitNoInput  = 66
	exitSoftware = 70
	exitIOErr    = 74
)

const usage = `
Usage:
  risl [-hiv] [ --command=<command> | <file> | --stdin ] [ [--] <arguments>... ]

Options:
  -h --help                 Show this screen.
  -v --version              Show version.
  -i --interactive          Run interactively.
  -s --stdin                Read program from the standard input.
  -c --command <command>    Read program from the <command> string.
`

func main() {
	os.Exit(runCLI(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

func runCLI(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	args, err := parseArgs(argv)
	if err != nil {
		if errors.Is(err, errHelpRequested) {
			fmt.Fprint(stdout, usage)
			return exitOK
		}
		fmt.Fprintf(stderr, "Error: %s\n", err)
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	if args.Version {
		fmt.Fprintf(stdout, "risl %s\n", version)
	}

	code := exitOK
	switch {
	case args.HasInputFile:
		code = runFile(args.InputFile, stdout, stderr)
	case args.HasInputCommand:
		code = runSource(args.InputCommand, stdout, stderr)
	case args.InputIsStdin:
		code = runFromStdin(stdin, stdout, stderr)
	}
	if code != exitOK {
		return code
	}

	if args.Interactive {
		if err := runREPL(); err != nil {
			fmt.Fprintln(stderr, err)
			return exitSoftware
		}
	}
	return exitOK
}

func runFile(path string, stdout, stderr io.Writer) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Cannot read input file '%s': %v\n", path, err)
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return exitNoInput
		}
		return exitIOErr
	}
	return runSource(string(source), stdout, stderr)
}

func runFromStdin(stdin io.Reader, stdout, stderr io.Writer) int {
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if code := runSource(scanner.Text(), stdout, stderr); code != exitOK {
			return code
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(stderr, "Error reading input: %v\n", err)
		return exitIOErr
	}
	return exitOK
}

// runSource lexes one program and prints its token stream. There is no
// parser yet; Err tokens become error diagnostics so malformed input is
// already reported the way later phases will report theirs.
func runSource(source string, stdout, stderr io.Writer) int {
	diag := risl.NewDiagContext(risl.NewHumanReadableEmitter(stderr))
	ctx := risl.NewParseContext(diag)
	tokens := risl.Lex(ctx, source)
	fmt.Fprint(stdout, renderTokens(tokens, source))
	for _, token := range tokens {
		if token.Kind == risl.KindErr {
			diag.Emit(risl.Diagnostic{
				Level:   risl.LevelError,
				Message: fmt.Sprintf("unrecognized characters %q", token.Text.In(source)),
				Span:    token.Text,
			})
		}
	}
	return exitOK
}
