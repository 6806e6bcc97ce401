package main

import (
	"errors"
	"fmt"
	"strings"
)

// errHelpRequested short-circuits parsing when -h/--help is present,
// bypassing any validation.
var errHelpRequested = errors.New("help requested")

type missingArgValueError struct {
	arg string
}

func (e *missingArgValueError) Error() string {
	return fmt.Sprintf("a value is required for '%s' but none was supplied", e.arg)
}

type unexpectedArgsError struct {
	args []string
}

func (e *unexpectedArgsError) Error() string {
	if len(e.args) == 1 {
		return fmt.Sprintf("unexpected argument '%s' found", e.args[0])
	}
	return fmt.Sprintf("unexpected arguments found: '%s'", strings.Join(e.args, "', '"))
}

type conflictingArgsError struct {
	args []string
}

func (e *conflictingArgsError) Error() string {
	if len(e.args) == 2 {
		return fmt.Sprintf("the argument '%s' cannot be used with '%s'", e.args[0], e.args[1])
	}
	return fmt.Sprintf("the argument '%s' cannot be used with:\n  %s",
		e.args[0], strings.Join(e.args[1:], "\n  "))
}

// Args holds the parsed command line. The program source comes from exactly
// one of InputFile, InputCommand, or standard input; everything after that
// input designator is forwarded to the script untouched.
type Args struct {
	InputFile       string
	HasInputFile    bool
	InputCommand    string
	HasInputCommand bool
	InputIsStdin    bool
	Interactive     bool
	Help            bool
	Version         bool
	ScriptArguments []string
}

// parseArgs parses argv, whose first element is the executable name. Help
// requests surface as errHelpRequested before any validation runs.
func parseArgs(argv []string) (Args, error) {
	args, err := innerParseArgs(argv)
	if err != nil {
		return Args{}, err
	}
	if args.Help {
		return args, errHelpRequested
	}
	if err := args.validate(); err != nil {
		return Args{}, err
	}
	return args, nil
}

func innerParseArgs(argv []string) (Args, error) {
	if len(argv) == 0 {
		panic("unsupported platform: argument #0 should be the executable name")
	}
	rest := argv[1:]
	var result Args
	var unexpected []string
	endOfArgList := false
	for i := 0; i < len(rest); i++ {
		arg := rest[i]
		if endOfArgList {
			// Forward the remaining arguments to the script, dropping a
			// single leading escape (--).
			if arg != "--" {
				result.ScriptArguments = append(result.ScriptArguments, arg)
			}
			result.ScriptArguments = append(result.ScriptArguments, rest[i+1:]...)
			break
		}
		if strings.HasPrefix(arg, "-") {
			switch arg {
			case "--":
				endOfArgList = true
			case "-c", "--command":
				if i+1 >= len(rest) {
					return Args{}, &missingArgValueError{arg: "--command"}
				}
				i++
				result.InputCommand = rest[i]
				result.HasInputCommand = true
				endOfArgList = true
			case "-h", "--help":
				result.Help = true
			case "-i", "--interactive":
				result.Interactive = true
			case "-s", "--stdin":
				result.InputIsStdin = true
				endOfArgList = true
			case "-v", "--version":
				result.Version = true
			default:
				unexpected = append(unexpected, arg)
			}
		} else if !result.HasInputFile {
			result.InputFile = arg
			result.HasInputFile = true
			endOfArgList = true
		}
	}
	if len(unexpected) > 0 {
		return Args{}, &unexpectedArgsError{args: unexpected}
	}
	return result, nil
}

func (a Args) validate() error {
	return a.validateNoInputConflict()
}

// validateNoInputConflict ensures at most one of <file>, --command, and
// --stdin was given. Each of them ends the option list, so conflicts can
// only arise from options placed before the input designator.
func (a Args) validateNoInputConflict() error {
	var conflicting []string
	switch {
	case a.HasInputCommand && a.HasInputFile && a.InputIsStdin:
		conflicting = []string{"--command=<command>", "<file>", "--stdin"}
	case a.HasInputCommand && a.HasInputFile:
		conflicting = []string{"--command=<command>", "<file>"}
	case a.HasInputCommand && a.InputIsStdin:
		conflicting = []string{"--command=<command>", "--stdin"}
	case a.HasInputFile && a.InputIsStdin:
		conflicting = []string{"<file>", "--stdin"}
	}
	if len(conflicting) > 0 {
		return &conflictingArgsError{args: conflicting}
	}
	return nil
}
