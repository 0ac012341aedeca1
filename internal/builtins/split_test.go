package builtins

import (
	"testing"

	"github.com/fieldlang/fieldc/internal/flat"
	"github.com/gkampitakis/go-snaps/snaps"
)

func TestSplitStatementCount(t *testing.T) {
	const n = 8
	prog := Split(n)
	if len(prog.Functions) != 1 {
		t.Fatalf("expected a single function, got %d", len(prog.Functions))
	}
	fn := prog.Functions[0]
	// directive + n bit-range conditions + 1 reconstruction condition + return
	want := 1 + n + 1 + 1
	if len(fn.Statements) != want {
		t.Fatalf("expected %d statements, got %d", want, len(fn.Statements))
	}
}

func TestSplitDirectiveLayout(t *testing.T) {
	const n = 4
	fn := Split(n).Functions[0]
	d, ok := fn.Statements[0].(flat.DirectiveStatement)
	if !ok {
		t.Fatalf("expected the first statement to be a DirectiveStatement, got %T", fn.Statements[0])
	}
	if len(d.Directive.Inputs) != 1 {
		t.Fatalf("expected a single directive input, got %d", len(d.Directive.Inputs))
	}
	if len(d.Directive.Outputs) != n {
		t.Fatalf("expected %d directive outputs, got %d", n, len(d.Directive.Outputs))
	}
	for i, v := range d.Directive.Outputs {
		if v != flat.Variable(i+1) {
			t.Fatalf("directive output %d = %v, want %v", i, v, flat.Variable(i+1))
		}
	}
	if d.Directive.Helper.Name != "bits" {
		t.Fatalf("helper = %q, want %q", d.Directive.Helper.Name, "bits")
	}
}

func TestSplitBitConstraintsAreMSBFirst(t *testing.T) {
	const n = 4
	fn := Split(n).Functions[0]
	// statements[1..n] are the per-bit range checks; the k-th (0-indexed)
	// must reference variable n-k.
	for k := 0; k < n; k++ {
		cond, ok := fn.Statements[1+k].(flat.Condition)
		if !ok {
			t.Fatalf("statement %d is not a Condition: %T", 1+k, fn.Statements[1+k])
		}
		if cond.Lhs.Var != flat.Variable(n-k) {
			t.Fatalf("bit constraint %d references variable %v, want %v", k, cond.Lhs.Var, flat.Variable(n-k))
		}
	}
}

func TestSplitReturnsVariablesInSourceBitOrder(t *testing.T) {
	const n = 5
	fn := Split(n).Functions[0]
	ret, ok := fn.Statements[len(fn.Statements)-1].(flat.Return)
	if !ok {
		t.Fatalf("expected last statement to be Return, got %T", fn.Statements[len(fn.Statements)-1])
	}
	if len(ret.Expressions) != n {
		t.Fatalf("expected %d return values, got %d", n, len(ret.Expressions))
	}
	for i, e := range ret.Expressions {
		if e.Var != flat.Variable(i+1) {
			t.Fatalf("return value %d = %v, want %v", i, e.Var, flat.Variable(i+1))
		}
	}
}

func TestSplitFunctionLayout(t *testing.T) {
	const n = 8
	fn := Split(n).Functions[0]
	if fn.ID != "main" {
		t.Errorf("ID = %q, want %q", fn.ID, "main")
	}
	if fn.Inputs != 1 || fn.Outputs != n {
		t.Errorf("Inputs/Outputs = %d/%d, want 1/%d", fn.Inputs, fn.Outputs, n)
	}
	if len(fn.Arguments) != 1 || !fn.Arguments[0].Private {
		t.Errorf("expected a single private argument, got %+v", fn.Arguments)
	}
}

func TestSplitCanonicalRendering(t *testing.T) {
	fn := Split(8).Functions[0]
	snaps.MatchSnapshot(t, "split_8_bits", fn.String())
}
