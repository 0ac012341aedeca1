package typedast

import (
	"testing"

	"github.com/fieldlang/fieldc/internal/types"
)

func TestTypedExprTypeDispatchesOnKind(t *testing.T) {
	field := &TypedExpr{Kind: FieldKind, Field: FieldLiteral{Value: "1"}}
	if !field.Type().Equal(types.Field()) {
		t.Errorf("field-kind TypedExpr.Type() = %v, want field", field.Type())
	}

	boolean := &TypedExpr{Kind: BoolKind, Bool: BoolLiteral{Value: true}}
	if !boolean.Type().Equal(types.Bool()) {
		t.Errorf("bool-kind TypedExpr.Type() = %v, want bool", boolean.Type())
	}

	arr := &TypedExpr{Kind: ArrayKind, ArraySize: 4, Array: ArrayIdentifier{Name: "a"}}
	if !arr.Type().Equal(types.Array(4)) {
		t.Errorf("array-kind TypedExpr.Type() = %v, want field[4]", arr.Type())
	}
}

func TestVariantsImplementTheirMarkerInterfaces(t *testing.T) {
	var _ FieldExpr = FieldIdentifier{}
	var _ FieldExpr = FieldLiteral{}
	var _ FieldExpr = FieldArith{}
	var _ FieldExpr = FieldConditional{}
	var _ FieldExpr = FieldSelect{}
	var _ FieldExpr = FieldCall{}

	var _ BoolExpr = BoolIdentifier{}
	var _ BoolExpr = BoolLiteral{}
	var _ BoolExpr = Relational{}
	var _ BoolExpr = BoolConnective{}
	var _ BoolExpr = BoolConditional{}
	var _ BoolExpr = BoolCall{}

	var _ ArrayExpr = ArrayIdentifier{}
	var _ ArrayExpr = ArrayLiteral{}
	var _ ArrayExpr = ArrayConditional{}
	var _ ArrayExpr = ArrayRangeSelect{}
	var _ ArrayExpr = ArrayCall{}

	var _ TypedAssignee = IdentifierAssignee{}
	var _ TypedAssignee = IndexAssignee{}

	var _ TypedStatement = DeclarationStatement{}
	var _ TypedStatement = DefinitionStatement{}
	var _ TypedStatement = MultipleDefinitionStatement{}
	var _ TypedStatement = ConditionStatement{}
	var _ TypedStatement = ReturnStatement{}
	var _ TypedStatement = ForStatement{}
}
