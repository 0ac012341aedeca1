// Package typedast is the checker's output tree: every expression carries
// its type via a three-way tagged union (field / boolean / array) rather
// than through an interface hierarchy, per the checker's design notes —
// dispatch on kept code is by switching on the variant, not by virtual call.
package typedast

import (
	"github.com/fieldlang/fieldc/internal/types"
	"github.com/fieldlang/fieldc/pkg/token"
)

// Variable is a name bound to a Type, carrying the source position of its
// binding site for diagnostics raised after the fact (e.g. unused-variable
// passes a future lowering stage might add).
type Variable struct {
	Name string
	Type types.Type
	Pos  token.PosRange
}

// ExprKind tags which member of the typed-expression union a TypedExpr
// holds.
type ExprKind int

const (
	FieldKind ExprKind = iota
	BoolKind
	ArrayKind
)

// TypedExpr is the tagged union every checked expression is wrapped in.
// Exactly one of Field, Bool, or Array is non-nil, selected by Kind.
type TypedExpr struct {
	Kind  ExprKind
	Field FieldExpr
	Bool  BoolExpr
	Array ArrayExpr

	ArraySize int // populated when Kind == ArrayKind
}

// Type reconstructs the types.Type a TypedExpr statically carries.
func (e *TypedExpr) Type() types.Type {
	switch e.Kind {
	case FieldKind:
		return types.Field()
	case BoolKind:
		return types.Bool()
	case ArrayKind:
		return types.Array(e.ArraySize)
	default:
		return types.Type{}
	}
}

// FieldExpr is any typed expression whose result is a single field
// element.
type FieldExpr interface {
	fieldExprNode()
}

// BoolExpr is any typed expression whose result is a single boolean.
type BoolExpr interface {
	boolExprNode()
}

// ArrayExpr is any typed expression whose result is a fixed-length field
// array.
type ArrayExpr interface {
	arrayExprNode()
}

// ---- Field-valued variants ----

type FieldIdentifier struct{ Name string }

func (FieldIdentifier) fieldExprNode() {}

type FieldLiteral struct{ Value string }

func (FieldLiteral) fieldExprNode() {}

type FieldArith struct {
	Op          ArithOp
	Left, Right *TypedExpr
}

func (FieldArith) fieldExprNode() {}

type ArithOp int

const (
	Add ArithOp = iota
	Sub
	Mul
	Div
	Pow
)

// FieldConditional is `if c then x else y` where x and y are field-typed.
type FieldConditional struct {
	Condition   *TypedExpr
	Then, Else  *TypedExpr
}

func (FieldConditional) fieldExprNode() {}

// FieldSelect is a single-element array index yielding a field element.
type FieldSelect struct {
	Base  *TypedExpr
	Index *TypedExpr
}

func (FieldSelect) fieldExprNode() {}

// FieldCall is a function call resolved to a single field-element output.
type FieldCall struct {
	Name      string
	Arguments []*TypedExpr
}

func (FieldCall) fieldExprNode() {}

// ---- Boolean-valued variants ----

type BoolIdentifier struct{ Name string }

func (BoolIdentifier) boolExprNode() {}

type BoolLiteral struct{ Value bool }

func (BoolLiteral) boolExprNode() {}

type Relational struct {
	Op          RelOp
	Left, Right *TypedExpr // field-valued operands
}

func (Relational) boolExprNode() {}

type RelOp int

const (
	Lt RelOp = iota
	Le
	Eq
	Ge
	Gt
)

type BoolConnective struct {
	Op          BoolOp
	Left, Right *TypedExpr // boolean-valued operands; Right nil for Not
}

func (BoolConnective) boolExprNode() {}

type BoolOp int

const (
	And BoolOp = iota
	Or
	Not
)

type BoolConditional struct {
	Condition  *TypedExpr
	Then, Else *TypedExpr
}

func (BoolConditional) boolExprNode() {}

type BoolCall struct {
	Name      string
	Arguments []*TypedExpr
}

func (BoolCall) boolExprNode() {}

// ---- Array-valued variants ----

type ArrayIdentifier struct{ Name string }

func (ArrayIdentifier) arrayExprNode() {}

// ArrayLiteral is the typed form of an inline-array expression after spread
// expansion: every element is a field-valued expression.
type ArrayLiteral struct {
	Elements []*TypedExpr
}

func (ArrayLiteral) arrayExprNode() {}

// ArrayConditional is `if c then x else y` where x and y are arrays of
// matching size.
type ArrayConditional struct {
	Condition  *TypedExpr
	Then, Else *TypedExpr
}

func (ArrayConditional) arrayExprNode() {}

// ArrayRangeSelect is a range index `a[lo..hi]` yielding a new array whose
// elements are selects at lo, lo+1, ..., hi-1.
type ArrayRangeSelect struct {
	Base     *TypedExpr
	Lo, Hi   int
}

func (ArrayRangeSelect) arrayExprNode() {}

// ArrayCall is a function call resolved to a single array-typed output.
type ArrayCall struct {
	Name      string
	Arguments []*TypedExpr
}

func (ArrayCall) arrayExprNode() {}

// ---- Assignees ----

// TypedAssignee is the checked left-hand side of a definition statement.
type TypedAssignee interface {
	assigneeNode()
}

type IdentifierAssignee struct {
	Name string
	Type types.Type
}

func (IdentifierAssignee) assigneeNode() {}

type IndexAssignee struct {
	Base  TypedAssignee
	Index *TypedExpr
}

func (IndexAssignee) assigneeNode() {}

// ---- Statements ----

type TypedStatement interface {
	statementNode()
}

type DeclarationStatement struct {
	Variable Variable
}

func (DeclarationStatement) statementNode() {}

type DefinitionStatement struct {
	Assignee TypedAssignee
	Value    *TypedExpr
}

func (DefinitionStatement) statementNode() {}

type MultipleDefinitionStatement struct {
	Names     []string
	Types     []types.Type
	Function  string
	Arguments []*TypedExpr
}

func (MultipleDefinitionStatement) statementNode() {}

type ConditionStatement struct {
	Left, Right *TypedExpr
}

func (ConditionStatement) statementNode() {}

type ReturnStatement struct {
	Results []*TypedExpr
}

func (ReturnStatement) statementNode() {}

type ForStatement struct {
	Variable Variable
	From, To *TypedExpr
	Body     []TypedStatement
}

func (ForStatement) statementNode() {}

// ---- Functions & program ----

// TypedFunction is one checked function: its declaration plus the checked
// statement sequence.
type TypedFunction struct {
	Name       string
	Parameters []Variable
	Signature  types.Signature
	Body       []TypedStatement
}

// ImportValue is the checked form of a program import; resolution of the
// referenced module is an external collaborator, so this only records what
// the checker itself observed.
type ImportValue struct {
	Path  string
	Alias string
}

// TypedProgram is the checker's successful output.
type TypedProgram struct {
	Functions         []*TypedFunction
	ImportedFunctions []types.FunctionDeclaration
	Imports           []ImportValue
}
