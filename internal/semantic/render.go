package semantic

import (
	"fmt"
	"strings"

	"github.com/fieldlang/fieldc/internal/typedast"
)

// describe renders a typed expression in a short source-like form, the way
// the original's Display impls for TypedExpression render operands into
// diagnostic messages (e.g. "Expression (a + b) of type field cannot be
// assigned to ...").
func describe(e *typedast.TypedExpr) string {
	if e == nil {
		return "?"
	}
	switch e.Kind {
	case typedast.FieldKind:
		return describeField(e.Field)
	case typedast.BoolKind:
		return describeBool(e.Bool)
	case typedast.ArrayKind:
		return describeArray(e.Array)
	default:
		return "?"
	}
}

func describeField(f typedast.FieldExpr) string {
	switch v := f.(type) {
	case typedast.FieldIdentifier:
		return v.Name
	case typedast.FieldLiteral:
		return v.Value
	case typedast.FieldArith:
		return fmt.Sprintf("(%s %s %s)", describe(v.Left), arithOpSymbol(v.Op), describe(v.Right))
	case typedast.FieldConditional:
		return fmt.Sprintf("if %s then %s else %s", describe(v.Condition), describe(v.Then), describe(v.Else))
	case typedast.FieldSelect:
		return fmt.Sprintf("%s[%s]", describe(v.Base), describe(v.Index))
	case typedast.FieldCall:
		return fmt.Sprintf("%s(%s)", v.Name, describeList(v.Arguments))
	default:
		return "?"
	}
}

func describeBool(b typedast.BoolExpr) string {
	switch v := b.(type) {
	case typedast.BoolIdentifier:
		return v.Name
	case typedast.BoolLiteral:
		if v.Value {
			return "true"
		}
		return "false"
	case typedast.Relational:
		return fmt.Sprintf("(%s %s %s)", describe(v.Left), relOpSymbol(v.Op), describe(v.Right))
	case typedast.BoolConnective:
		if v.Op == typedast.Not {
			return fmt.Sprintf("!%s", describe(v.Left))
		}
		return fmt.Sprintf("(%s %s %s)", describe(v.Left), boolOpSymbol(v.Op), describe(v.Right))
	case typedast.BoolConditional:
		return fmt.Sprintf("if %s then %s else %s", describe(v.Condition), describe(v.Then), describe(v.Else))
	case typedast.BoolCall:
		return fmt.Sprintf("%s(%s)", v.Name, describeList(v.Arguments))
	default:
		return "?"
	}
}

func describeArray(a typedast.ArrayExpr) string {
	switch v := a.(type) {
	case typedast.ArrayIdentifier:
		return v.Name
	case typedast.ArrayLiteral:
		return fmt.Sprintf("[%s]", describeList(v.Elements))
	case typedast.ArrayConditional:
		return fmt.Sprintf("if %s then %s else %s", describe(v.Condition), describe(v.Then), describe(v.Else))
	case typedast.ArrayRangeSelect:
		return fmt.Sprintf("%s[%d..%d]", describe(v.Base), v.Lo, v.Hi)
	case typedast.ArrayCall:
		return fmt.Sprintf("%s(%s)", v.Name, describeList(v.Arguments))
	default:
		return "?"
	}
}

func describeList(es []*typedast.TypedExpr) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = describe(e)
	}
	return strings.Join(parts, ", ")
}

func describeAssignee(a typedast.TypedAssignee) string {
	switch v := a.(type) {
	case typedast.IdentifierAssignee:
		return v.Name
	case typedast.IndexAssignee:
		return fmt.Sprintf("%s[%s]", describeAssignee(v.Base), describe(v.Index))
	default:
		return "?"
	}
}

func arithOpSymbol(op typedast.ArithOp) string {
	switch op {
	case typedast.Add:
		return "+"
	case typedast.Sub:
		return "-"
	case typedast.Mul:
		return "*"
	case typedast.Div:
		return "/"
	case typedast.Pow:
		return "**"
	default:
		return "?"
	}
}

func relOpSymbol(op typedast.RelOp) string {
	switch op {
	case typedast.Lt:
		return "<"
	case typedast.Le:
		return "<="
	case typedast.Eq:
		return "=="
	case typedast.Ge:
		return ">="
	case typedast.Gt:
		return ">"
	default:
		return "?"
	}
}

func boolOpSymbol(op typedast.BoolOp) string {
	switch op {
	case typedast.And:
		return "&&"
	case typedast.Or:
		return "||"
	default:
		return "?"
	}
}
