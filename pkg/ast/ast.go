// Package ast defines the untyped abstract syntax tree the parser hands to
// the checker. Every node is a positioned value type; lowering to the typed
// AST (package typedast) transfers ownership of the children, so no node
// here holds a back-reference to its parent.
package ast

import "github.com/fieldlang/fieldc/pkg/token"

// Node is the base interface for all AST nodes: every node can report the
// source range it was parsed from.
type Node interface {
	Pos() token.PosRange
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Statement is any node that performs an action without itself producing a
// value.
type Statement interface {
	Node
	statementNode()
}

// Assignee is the left-hand side of a single-definition statement: either a
// bare identifier or an indexed array element.
type Assignee interface {
	Node
	assigneeNode()
}

// TypeAnnotation is a surface-syntax type name as written by the
// programmer, resolved against types.Type during checking.
type TypeAnnotation struct {
	Range     token.PosRange
	Name      string // "field" or "bool"
	IsArray   bool
	ArraySize int
}

func (t *TypeAnnotation) Pos() token.PosRange { return t.Range }

// Parameter is a function argument: a name, its declared type, and whether
// it is a private (witness-only) input.
type Parameter struct {
	Range   token.PosRange
	Name    string
	Type    *TypeAnnotation
	Private bool
}

func (p *Parameter) Pos() token.PosRange { return p.Range }

// Import names a foreign module the program draws declarations from; file
// resolution itself is an external collaborator.
type Import struct {
	Range token.PosRange
	Path  string
	Alias string
}

func (i *Import) Pos() token.PosRange { return i.Range }

// FunctionDecl is one untyped function: a name, parameter list, declared
// output types, and a statement body.
type FunctionDecl struct {
	Range      token.PosRange
	Name       string
	Parameters []*Parameter
	Outputs    []*TypeAnnotation
	Body       []Statement
}

func (f *FunctionDecl) Pos() token.PosRange { return f.Range }

// Program is an ordered list of functions and the imports it draws on.
// Already-typed foreign declarations are not part of it: they are passed to
// the checker as a separate argument.
type Program struct {
	Functions []*FunctionDecl
	Imports   []*Import
}

// ---- Expressions ----

// Identifier references a bound name.
type Identifier struct {
	Range token.PosRange
	Name  string
}

func (i *Identifier) Pos() token.PosRange { return i.Range }
func (i *Identifier) expressionNode()     {}
func (i *Identifier) assigneeNode()       {}

// FieldLiteral is a field-element constant, stored as decimal text since the
// prime's modulus is out of scope here.
type FieldLiteral struct {
	Range token.PosRange
	Value string
}

func (l *FieldLiteral) Pos() token.PosRange { return l.Range }
func (l *FieldLiteral) expressionNode()     {}

// BooleanLiteral is a `true`/`false` constant.
type BooleanLiteral struct {
	Range token.PosRange
	Value bool
}

func (l *BooleanLiteral) Pos() token.PosRange { return l.Range }
func (l *BooleanLiteral) expressionNode()     {}

// ArithOp enumerates the field-arithmetic binary operators.
type ArithOp int

const (
	Add ArithOp = iota
	Sub
	Mul
	Div
	Pow
)

// ArithExpr is a binary arithmetic expression over two field elements.
type ArithExpr struct {
	Range token.PosRange
	Op    ArithOp
	Left  Expression
	Right Expression
}

func (e *ArithExpr) Pos() token.PosRange { return e.Range }
func (e *ArithExpr) expressionNode()     {}

// RelOp enumerates the relational operators.
type RelOp int

const (
	Lt RelOp = iota
	Le
	Eq
	Ge
	Gt
)

// RelExpr is a relational comparison between two field elements, yielding a
// boolean.
type RelExpr struct {
	Range token.PosRange
	Op    RelOp
	Left  Expression
	Right Expression
}

func (e *RelExpr) Pos() token.PosRange { return e.Range }
func (e *RelExpr) expressionNode()     {}

// BoolOp enumerates the boolean connectives. Not is unary; the Right
// operand is unused for it.
type BoolOp int

const (
	And BoolOp = iota
	Or
	Not
)

// BoolExpr is a boolean connective over one or two boolean operands.
type BoolExpr struct {
	Range token.PosRange
	Op    BoolOp
	Left  Expression
	Right Expression // nil for Not
}

func (e *BoolExpr) Pos() token.PosRange { return e.Range }
func (e *BoolExpr) expressionNode()     {}

// ConditionalExpr is `if cond then then_ else else_`.
type ConditionalExpr struct {
	Range     token.PosRange
	Condition Expression
	Then      Expression
	Else      Expression
}

func (e *ConditionalExpr) Pos() token.PosRange { return e.Range }
func (e *ConditionalExpr) expressionNode()     {}

// InlineArrayElement is one entry of an inline-array literal: either a
// plain expression or a spread over an array expression.
type InlineArrayElement struct {
	Expression Expression
	Spread     bool
}

// InlineArrayExpr is `[e1, ..., ek]`, with optional spread elements.
type InlineArrayExpr struct {
	Range    token.PosRange
	Elements []InlineArrayElement
}

func (e *InlineArrayExpr) Pos() token.PosRange { return e.Range }
func (e *InlineArrayExpr) expressionNode()     {}

// RangeIndex is an optional-bound slice index `[lo..hi]`. Lo/Hi are nil
// when the corresponding bound was omitted by the programmer.
type RangeIndex struct {
	Lo Expression
	Hi Expression
}

// SelectExpr indexes into an array expression, either with a single index
// expression or a range.
type SelectExpr struct {
	Range token.PosRange
	Base  Expression
	Index Expression  // set when this is a single-element select
	Slice *RangeIndex // set when this is a range select
}

func (e *SelectExpr) Pos() token.PosRange { return e.Range }
func (e *SelectExpr) expressionNode()     {}

// CallExpr invokes a named function with a list of argument expressions.
type CallExpr struct {
	Range     token.PosRange
	Name      string
	Arguments []Expression
}

func (e *CallExpr) Pos() token.PosRange { return e.Range }
func (e *CallExpr) expressionNode()     {}

// SpreadExpr is the node the JSON decoder builds for a "spread" expression.
// Inline-array literals do not use it: they mark a spread element with
// InlineArrayElement.Spread. The checker has no case for a SpreadExpr and
// panics on one as an unknown expression type.
type SpreadExpr struct {
	Range      token.PosRange
	Expression Expression
}

func (e *SpreadExpr) Pos() token.PosRange { return e.Range }
func (e *SpreadExpr) expressionNode()     {}

// ---- Assignees ----

// IndexAssignee is an assignment target of the form `a[index]`. Slice is
// set instead of Index when the programmer wrote a range subscript there
// — a range index is not a valid assignment target, and the checker
// reports it as such rather than the parser refusing to build the node.
type IndexAssignee struct {
	Range token.PosRange
	Base  Assignee
	Index Expression
	Slice *RangeIndex
}

func (a *IndexAssignee) Pos() token.PosRange { return a.Range }
func (a *IndexAssignee) assigneeNode()       {}

// ---- Statements ----

// DeclarationStmt introduces a new variable binding with no initializer.
type DeclarationStmt struct {
	Range token.PosRange
	Name  string
	Type  *TypeAnnotation
}

func (s *DeclarationStmt) Pos() token.PosRange { return s.Range }
func (s *DeclarationStmt) statementNode()      {}

// DefinitionStmt assigns a single non-call expression to an assignee.
type DefinitionStmt struct {
	Range    token.PosRange
	Assignee Assignee
	Value    Expression
}

func (s *DefinitionStmt) Pos() token.PosRange { return s.Range }
func (s *DefinitionStmt) statementNode()      {}

// MultipleDefinitionStmt assigns the results of a call expression to a list
// of assignees. Each assignee must turn out to be a bare identifier; an
// indexed assignee here is a checker-reported error, not a parse error.
type MultipleDefinitionStmt struct {
	Range     token.PosRange
	Assignees []Assignee
	Call      *CallExpr
}

func (s *MultipleDefinitionStmt) Pos() token.PosRange { return s.Range }
func (s *MultipleDefinitionStmt) statementNode()      {}

// ConditionStmt asserts equality between two expressions.
type ConditionStmt struct {
	Range token.PosRange
	Left  Expression
	Right Expression
}

func (s *ConditionStmt) Pos() token.PosRange { return s.Range }
func (s *ConditionStmt) statementNode()      {}

// ReturnStmt yields a sequence of expressions from the enclosing function.
type ReturnStmt struct {
	Range   token.PosRange
	Results []Expression
}

func (s *ReturnStmt) Pos() token.PosRange { return s.Range }
func (s *ReturnStmt) statementNode()      {}

// ForStmt is a `for` loop with a field-element iterator, bounded by
// already-typed numeric literals `from`/`to`.
type ForStmt struct {
	Range    token.PosRange
	Variable string
	VarType  *TypeAnnotation
	From     Expression
	To       Expression
	Body     []Statement
}

func (s *ForStmt) Pos() token.PosRange { return s.Range }
func (s *ForStmt) statementNode()      {}
