package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLIForTest(t *testing.T, argv []string, stdin string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut strings.Builder
	code = runCLI(argv, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeScript(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.risl")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestRunCLIHelp(t *testing.T) {
	code, stdout, _ := runCLIForTest(t, []string{"risl", "--help"}, "")
	if code != exitOK {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Fatalf("usage not printed: %q", stdout)
	}
}

func TestRunCLIVersion(t *testing.T) {
	code, stdout, _ := runCLIForTest(t, []string{"risl", "--version"}, "")
	if code != exitOK {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(stdout, "risl "+version) {
		t.Fatalf("version not printed: %q", stdout)
	}
}

func TestRunCLIUnexpectedArgument(t *testing.T) {
	code, _, stderr := runCLIForTest(t, []string{"risl", "--nope"}, "")
	if code != exitUsage {
		t.Fatalf("exit code %d want %d", code, exitUsage)
	}
	if !strings.Contains(stderr, "unexpected argument '--nope' found") {
		t.Fatalf("missing error: %q", stderr)
	}
	if !strings.Contains(stderr, "Usage:") {
		t.Fatalf("usage not printed after error: %q", stderr)
	}
}

func TestRunCLIFile(t *testing.T) {
	path := writeScript(t, "let answer = 42;")
	code, stdout, stderr := runCLIForTest(t, []string{"risl", path}, "")
	if code != exitOK {
		t.Fatalf("exit code %d, stderr %q", code, stderr)
	}
	for _, want := range []string{"Identifier", "Equal", "Integer", "Semicolon"} {
		if !strings.Contains(stdout, want) {
			t.Fatalf("token dump missing %q:\n%s", want, stdout)
		}
	}
}

func TestRunCLIMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.risl")
	code, _, stderr := runCLIForTest(t, []string{"risl", path}, "")
	if code != exitNoInput {
		t.Fatalf("exit code %d want %d", code, exitNoInput)
	}
	if !strings.Contains(stderr, "Cannot read input file") {
		t.Fatalf("missing error: %q", stderr)
	}
}

func TestRunCLICommand(t *testing.T) {
	code, stdout, _ := runCLIForTest(t, []string{"risl", "-c", "1 + 2"}, "")
	if code != exitOK {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(stdout, "Plus") {
		t.Fatalf("token dump missing Plus:\n%s", stdout)
	}
}

func TestRunCLIStdin(t *testing.T) {
	code, stdout, _ := runCLIForTest(t, []string{"risl", "--stdin"}, "let a = 1;\nlet b = 2;\n")
	if code != exitOK {
		t.Fatalf("exit code %d", code)
	}
	if got := strings.Count(stdout, "Semicolon"); got != 2 {
		t.Fatalf("expected both lines lexed, got %d semicolons:\n%s", got, stdout)
	}
}

func TestRunSourceReportsUnrecognizedCharacters(t *testing.T) {
	code, _, stderr := runCLIForTest(t, []string{"risl", "-c", "let @@@ = 1;"}, "")
	if code != exitOK {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(stderr, "unrecognized characters") {
		t.Fatalf("diagnostic not emitted: %q", stderr)
	}
	if !strings.Contains(stderr, `"@@@"`) {
		t.Fatalf("diagnostic does not quote the bad run: %q", stderr)
	}
}
