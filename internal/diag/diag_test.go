package diag

import (
	"strings"
	"testing"

	"github.com/fieldlang/fieldc/pkg/token"
)

func TestDiagnosticErrorUnpositioned(t *testing.T) {
	d := NewUnpositioned("no main function found")
	if got, want := d.Error(), "?\n\tno main function found"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestDiagnosticErrorPositioned(t *testing.T) {
	pos := token.PosRange{Start: token.Position{Line: 2, Column: 1}, End: token.Position{Line: 2, Column: 1}}
	d := New(pos, "identifier %q is undefined", "x")
	if got, want := d.Error(), "2:1\n\tidentifier \"x\" is undefined"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestListErrorSingle(t *testing.T) {
	l := List{NewUnpositioned("boom")}
	if got, want := l.Error(), "?\n\tboom"; got != want {
		t.Errorf("single-element List.Error() should pass through verbatim, got %q want %q", got, want)
	}
}

func TestListErrorMultiIncludesCount(t *testing.T) {
	l := List{NewUnpositioned("first"), NewUnpositioned("second")}
	got := l.Error()
	if !strings.Contains(got, "2 errors") {
		t.Errorf("expected error count in multi-error rendering, got %q", got)
	}
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Errorf("expected both messages present, got %q", got)
	}
}

func TestListEmptyError(t *testing.T) {
	var l List
	if got := l.Error(); got == "" {
		t.Error("empty list should still render a non-empty error string")
	}
}
