package semantic

import (
	"strings"
	"testing"

	"github.com/fieldlang/fieldc/internal/diag"
	"github.com/fieldlang/fieldc/pkg/ast"
	"github.com/fieldlang/fieldc/pkg/token"
)

func fieldType() *ast.TypeAnnotation  { return &ast.TypeAnnotation{Name: "field"} }
func boolType() *ast.TypeAnnotation   { return &ast.TypeAnnotation{Name: "bool"} }

func ident(name string) *ast.Identifier { return &ast.Identifier{Name: name} }

func fn(name string, params []*ast.Parameter, outputs []*ast.TypeAnnotation, body ...ast.Statement) *ast.FunctionDecl {
	return &ast.FunctionDecl{Name: name, Parameters: params, Outputs: outputs, Body: body}
}

func program(fns ...*ast.FunctionDecl) *ast.Program {
	return &ast.Program{Functions: fns}
}

func checkErr(t *testing.T, prog *ast.Program, wantSubstring string) {
	t.Helper()
	_, err := New().Check(prog, nil)
	if err == nil {
		t.Fatalf("expected error containing %q, got none", wantSubstring)
	}
	if !strings.Contains(err.Error(), wantSubstring) {
		t.Fatalf("expected error containing %q, got: %v", wantSubstring, err)
	}
}

func checkOK(t *testing.T, prog *ast.Program) {
	t.Helper()
	if _, err := New().Check(prog, nil); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

// Scenario 1: undefined variable.
func TestUndefinedVariable(t *testing.T) {
	prog := program(fn("foo", nil, []*ast.TypeAnnotation{fieldType()},
		&ast.ReturnStmt{Results: []ast.Expression{ident("a")}},
	), fn("main", nil, nil))
	checkErr(t, prog, `Identifier "a" is undefined`)
}

// Scenario 2: duplicate main.
func TestDuplicateMain(t *testing.T) {
	prog := program(
		fn("main", []*ast.Parameter{{Name: "x", Type: fieldType()}}, nil),
		fn("main", nil, nil),
	)
	checkErr(t, prog, "Only one main function allowed, found 2")
}

func TestNoMain(t *testing.T) {
	prog := program(fn("helper", nil, nil))
	checkErr(t, prog, "No main function found")
}

// Scenario 3: for-loop scoping.
func TestForLoopScoping(t *testing.T) {
	prog := program(fn("main", nil, nil,
		&ast.ForStmt{
			Variable: "i",
			VarType:  fieldType(),
			From:     &ast.FieldLiteral{Value: "0"},
			To:       &ast.FieldLiteral{Value: "10"},
			Body: []ast.Statement{
				&ast.DefinitionStmt{Assignee: ident("a"), Value: ident("i")},
			},
		},
	))
	// "a" is never declared, so the loop body itself fails, but that
	// failure must not leak the loop variable's binding outside the loop.
	checkErr(t, prog, `Identifier "a" is undefined`)

	prog2 := program(fn("main", nil, nil,
		&ast.DeclarationStmt{Name: "a", Type: fieldType()},
		&ast.ForStmt{
			Variable: "i",
			VarType:  fieldType(),
			From:     &ast.FieldLiteral{Value: "0"},
			To:       &ast.FieldLiteral{Value: "10"},
			Body: []ast.Statement{
				&ast.DefinitionStmt{Assignee: ident("a"), Value: ident("i")},
			},
		},
		&ast.ReturnStmt{Results: []ast.Expression{ident("i")}},
	))
	checkErr(t, prog2, `Identifier "i" is undefined`)
}

// Scenario 4: multi-return inference.
func TestMultiReturnInference(t *testing.T) {
	prog := program(
		fn("foo", nil, []*ast.TypeAnnotation{fieldType(), fieldType()},
			&ast.ReturnStmt{Results: []ast.Expression{
				&ast.FieldLiteral{Value: "1"},
				&ast.FieldLiteral{Value: "2"},
			}},
		),
		fn("main", nil, []*ast.TypeAnnotation{fieldType()},
			&ast.MultipleDefinitionStmt{
				Assignees: []ast.Assignee{ident("a"), ident("b")},
				Call:      &ast.CallExpr{Name: "foo"},
			},
			&ast.ReturnStmt{Results: []ast.Expression{
				&ast.ArithExpr{Op: ast.Add, Left: ident("a"), Right: ident("b")},
			}},
		),
	)
	checkOK(t, prog)
}

// Scenario 5: arity mismatch — a multi-definition with fewer assignees
// than the callee actually returns.
func TestArityMismatch(t *testing.T) {
	prog := program(
		fn("foo", nil, []*ast.TypeAnnotation{fieldType(), fieldType()},
			&ast.ReturnStmt{Results: []ast.Expression{
				&ast.FieldLiteral{Value: "1"},
				&ast.FieldLiteral{Value: "2"},
			}},
		),
		fn("main", nil, nil,
			&ast.MultipleDefinitionStmt{
				Assignees: []ast.Assignee{ident("a")},
				Call:      &ast.CallExpr{Name: "foo"},
			},
		),
	)
	checkErr(t, prog, "Function definition for function foo with signature () -> (_) not found.")
}

func TestDuplicateDeclaration(t *testing.T) {
	prog := program(fn("main", nil, nil,
		&ast.DeclarationStmt{Name: "a", Type: fieldType()},
		&ast.DeclarationStmt{Name: "a", Type: fieldType()},
	))
	checkErr(t, prog, "Duplicate declaration for variable named a")
}

func TestDuplicateFunction(t *testing.T) {
	body := []ast.Statement{&ast.ReturnStmt{Results: []ast.Expression{&ast.FieldLiteral{Value: "1"}}}}
	prog := program(
		fn("foo", nil, []*ast.TypeAnnotation{fieldType()}, body...),
		fn("foo", nil, []*ast.TypeAnnotation{fieldType()}, body...),
		fn("main", nil, nil),
	)
	checkErr(t, prog, "Duplicate definition for function foo with signature () -> (field)")
}

func TestNonFieldForIterator(t *testing.T) {
	prog := program(fn("main", nil, nil,
		&ast.ForStmt{
			Variable: "i",
			VarType:  boolType(),
			From:     &ast.FieldLiteral{Value: "0"},
			To:       &ast.FieldLiteral{Value: "1"},
		},
	))
	checkErr(t, prog, "Variable in for loop cannot have type bool")
}

func TestConditionTypeMismatch(t *testing.T) {
	prog := program(fn("main", nil, nil,
		&ast.DeclarationStmt{Name: "a", Type: fieldType()},
		&ast.DeclarationStmt{Name: "b", Type: boolType()},
		&ast.ConditionStmt{Left: ident("a"), Right: ident("b")},
	))
	checkErr(t, prog, "Cannot compare a of type field to b of type bool")
}

func TestSelectRangeOutOfBounds(t *testing.T) {
	prog := program(fn("main", nil, []*ast.TypeAnnotation{{Name: "field", IsArray: true, ArraySize: 2}},
		&ast.DeclarationStmt{Name: "a", Type: &ast.TypeAnnotation{Name: "field", IsArray: true, ArraySize: 3}},
		&ast.ReturnStmt{Results: []ast.Expression{
			&ast.SelectExpr{Base: ident("a"), Slice: &ast.RangeIndex{
				Lo: &ast.FieldLiteral{Value: "1"},
				Hi: &ast.FieldLiteral{Value: "5"},
			}},
		}},
	))
	checkErr(t, prog, "Higher range bound 5 is out of array bounds [0, 3]")
}

func TestInlineArrayNonField(t *testing.T) {
	prog := program(fn("main", nil, []*ast.TypeAnnotation{{Name: "field", IsArray: true, ArraySize: 1}},
		&ast.ReturnStmt{Results: []ast.Expression{
			&ast.InlineArrayExpr{Elements: []ast.InlineArrayElement{
				{Expression: &ast.BooleanLiteral{Value: true}},
			}},
		}},
	))
	checkErr(t, prog, "Only arrays of field are supported, found bool")
}

func TestMultiCallOutsideMultidef(t *testing.T) {
	prog := program(
		fn("foo", nil, []*ast.TypeAnnotation{fieldType(), fieldType()},
			&ast.ReturnStmt{Results: []ast.Expression{
				&ast.FieldLiteral{Value: "1"},
				&ast.FieldLiteral{Value: "2"},
			}},
		),
		fn("main", nil, []*ast.TypeAnnotation{fieldType()},
			&ast.ReturnStmt{Results: []ast.Expression{
				&ast.CallExpr{Name: "foo"},
			}},
		),
	)
	checkErr(t, prog, "foo returns 2 values but is called outside of a definition")
}

func TestDiagnosticRendersMissingPositionAsQuestionMark(t *testing.T) {
	d := diag.NewUnpositioned("No main function found")
	if got, want := d.Error(), "?\n\tNo main function found"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDiagnosticRendersPosition(t *testing.T) {
	d := diag.New(token.PosRange{Start: token.Position{Line: 3, Column: 4}, End: token.Position{Line: 3, Column: 5}}, "boom")
	if got, want := d.Error(), "3:4-3:5\n\tboom"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
