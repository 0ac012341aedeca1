package builtins

import (
	"testing"

	"github.com/fieldlang/fieldc/internal/flat"
	"github.com/fieldlang/fieldc/internal/types"
)

func TestCastBoolToFieldID(t *testing.T) {
	fn := Cast(types.Bool(), types.Field())
	if fn.ID != "_bool_to_field" {
		t.Errorf("ID = %q, want %q", fn.ID, "_bool_to_field")
	}
}

func TestCastBoolToFieldLayout(t *testing.T) {
	fn := Cast(types.Bool(), types.Field())
	if fn.Inputs != 1 || fn.Outputs != 1 {
		t.Fatalf("Inputs/Outputs = %d/%d, want 1/1", fn.Inputs, fn.Outputs)
	}
	if len(fn.Arguments) != 1 || fn.Arguments[0].ID != flat.Variable(0) || !fn.Arguments[0].Private {
		t.Fatalf("unexpected arguments: %+v", fn.Arguments)
	}
	if len(fn.Statements) != 2 {
		t.Fatalf("expected one Definition and one Return, got %d statements", len(fn.Statements))
	}
	def, ok := fn.Statements[0].(flat.Definition)
	if !ok || def.Var != flat.Variable(1) {
		t.Fatalf("expected Definition of variable 1, got %+v", fn.Statements[0])
	}
	ret, ok := fn.Statements[1].(flat.Return)
	if !ok || len(ret.Expressions) != 1 {
		t.Fatalf("expected a single-value Return, got %+v", fn.Statements[1])
	}
}

func TestCastRejectsUnsupportedConversions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Cast to panic for an unsupported conversion")
		}
	}()
	Cast(types.Field(), types.Bool())
}
