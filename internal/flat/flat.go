// Package flat is the post-type-erasure representation the built-in
// synthesizer emits: variables are numeric indices, statements are
// equality constraints, directives, or returns. Grounded on
// original_source/zokrates_core/src/flat_absy (referenced by
// types/conversions.rs) and original_source/zokrates_core/src/helpers.rs.
package flat

import (
	"fmt"
	"math/big"
)

// Variable is a numeric index into a flat function's variable space.
// Variable 0 always denotes the first input parameter, matching the
// original's FlatVariable::new convention.
type Variable int

func (v Variable) String() string { return fmt.Sprintf("_%d", int(v)) }

// Parameter is a flat function argument: a variable slot and a
// private/public visibility flag. All parameters synthesized here are
// private witness inputs.
type Parameter struct {
	ID      Variable
	Private bool
}

// ExprKind tags the shape of a flat expression.
type ExprKind int

const (
	ExprIdentifier ExprKind = iota
	ExprNumber
	ExprAdd
	ExprMul
)

// Expression is a flat arithmetic expression over variables and constants.
// Only the operators the synthesizer actually emits (identifier reference,
// numeric literal, addition, multiplication) are represented; a full
// constraint-system lowering pass is out of scope here.
type Expression struct {
	Kind       ExprKind
	Var        Variable
	Number     string // decimal text, mirroring the field literal representation used elsewhere
	Left, Right *Expression
}

// Identifier builds a reference to a flat variable.
func Identifier(v Variable) *Expression { return &Expression{Kind: ExprIdentifier, Var: v} }

// Number builds an integer literal expression.
func Number(n int) *Expression { return &Expression{Kind: ExprNumber, Number: fmt.Sprintf("%d", n)} }

// NumberBig builds an integer literal expression from an arbitrary-precision
// value, needed for the split synthesizer's 2^k coefficients once k grows
// past what an int64 can hold.
func NumberBig(n *big.Int) *Expression { return &Expression{Kind: ExprNumber, Number: n.String()} }

// Add builds an addition expression.
func Add(l, r *Expression) *Expression { return &Expression{Kind: ExprAdd, Left: l, Right: r} }

// Mul builds a multiplication expression.
func Mul(l, r *Expression) *Expression { return &Expression{Kind: ExprMul, Left: l, Right: r} }

// Helper names a witness-generation routine a Directive invokes. "bits" is
// the only helper the synthesizer needs (bit-decomposition); others would
// be added by a fuller flattening pass.
type Helper struct {
	Name string
}

// BitsHelper is the canonical bit-decomposition witness helper.
func BitsHelper() Helper { return Helper{Name: "bits"} }

// Directive is a non-constraint hint to the witness generator.
type Directive struct {
	Inputs  []*Expression
	Outputs []Variable
	Helper  Helper
}

// Statement is one of Condition (an equality constraint), Definition (a
// straight-line assignment), Directive, or Return.
type Statement interface {
	flatStatementNode()
}

// Condition asserts Lhs == Rhs as a constraint.
type Condition struct {
	Lhs, Rhs *Expression
}

func (Condition) flatStatementNode() {}

// Definition assigns Rhs to variable Var, with no constraint implied.
type Definition struct {
	Var Variable
	Rhs *Expression
}

func (Definition) flatStatementNode() {}

// DirectiveStatement wraps a Directive as a statement.
type DirectiveStatement struct {
	Directive Directive
}

func (DirectiveStatement) flatStatementNode() {}

// Return yields the final expression list of a flat function.
type Return struct {
	Expressions []*Expression
}

func (Return) flatStatementNode() {}

// Function is one flat function: an id, its parameters, its statement
// body, and its signature (kept as input/output primitive counts since
// flat functions operate below the type system proper).
type Function struct {
	ID         string
	Arguments  []Parameter
	Statements []Statement
	Inputs     int
	Outputs    int
}

// Program is a flat program — a whole bundle of flat functions. The
// synthesizer's `split` produces a one-function program named "main"
// because flattening consumes it as an entrypoint, not a callee.
type Program struct {
	Functions []*Function
}

// String renders an expression the way the teacher's AST nodes render
// themselves: a compact, debuggable textual form, not a pretty-printer.
func (e *Expression) String() string {
	if e == nil {
		return "<nil>"
	}
	switch e.Kind {
	case ExprIdentifier:
		return e.Var.String()
	case ExprNumber:
		return e.Number
	case ExprAdd:
		return fmt.Sprintf("(%s + %s)", e.Left, e.Right)
	case ExprMul:
		return fmt.Sprintf("(%s * %s)", e.Left, e.Right)
	default:
		return "?"
	}
}

func (d Directive) String() string {
	ins := make([]string, len(d.Inputs))
	for i, e := range d.Inputs {
		ins[i] = e.String()
	}
	outs := make([]string, len(d.Outputs))
	for i, v := range d.Outputs {
		outs[i] = v.String()
	}
	return fmt.Sprintf("%v = %s(%v)", outs, d.Helper.Name, ins)
}

func (s Condition) String() string   { return fmt.Sprintf("%s == %s", s.Lhs, s.Rhs) }
func (s Definition) String() string  { return fmt.Sprintf("%s = %s", s.Var, s.Rhs) }
func (s DirectiveStatement) String() string { return "# " + s.Directive.String() }
func (s Return) String() string {
	parts := make([]string, len(s.Expressions))
	for i, e := range s.Expressions {
		parts[i] = e.String()
	}
	return fmt.Sprintf("return %v", parts)
}

// String renders the full function body, one statement per line.
func (f *Function) String() string {
	out := fmt.Sprintf("def %s(%d private input(s)) -> %d output(s):\n", f.ID, f.Inputs, f.Outputs)
	for _, stmt := range f.Statements {
		out += "  " + stringifyStatement(stmt) + "\n"
	}
	return out
}

func stringifyStatement(s Statement) string {
	switch v := s.(type) {
	case Condition:
		return v.String()
	case Definition:
		return v.String()
	case DirectiveStatement:
		return v.String()
	case Return:
		return v.String()
	default:
		return "?"
	}
}
