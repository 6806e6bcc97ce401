package risl

import (
	"strings"
	"testing"
)

func TestDiagContextRecordsAndForwards(t *testing.T) {
	var out strings.Builder
	diag := NewDiagContext(NewHumanReadableEmitter(&out))

	diag.Emit(Diagnostic{Level: LevelError, Message: "unrecognized characters", Span: NewSpan(5, 10)})
	diag.Emit(Diagnostic{Level: LevelNote, Message: "lexing continued"})

	recorded := diag.Diagnostics()
	if len(recorded) != 2 {
		t.Fatalf("recorded %d diagnostics, want 2", len(recorded))
	}
	if recorded[0].Level != LevelError || recorded[1].Level != LevelNote {
		t.Fatalf("unexpected levels: %+v", recorded)
	}

	printed := out.String()
	if !strings.Contains(printed, "unrecognized characters") {
		t.Fatalf("emitter output missing message: %q", printed)
	}
	if !strings.Contains(printed, "bytes 5..10") {
		t.Fatalf("emitter output missing span: %q", printed)
	}
	if !strings.Contains(printed, "lexing continued") {
		t.Fatalf("emitter output missing second diagnostic: %q", printed)
	}
}

func TestDiscardEmitterDropsEverything(t *testing.T) {
	diag := NewDiagContext(NewDiscardEmitter())
	diag.Emit(Diagnostic{Level: LevelFatal, Message: "nothing should print"})
	if len(diag.Diagnostics()) != 1 {
		t.Fatalf("context should still record discarded diagnostics")
	}
}

func TestLexerWorksWithDiscardEmitter(t *testing.T) {
	ctx := NewParseContext(NewDiagContext(NewDiscardEmitter()))
	tokens := Lex(ctx, "let x = @;")
	if len(tokens) == 0 {
		t.Fatalf("expected tokens")
	}
	if ctx.Diag() == nil {
		t.Fatalf("context should expose its diagnostics")
	}
}
