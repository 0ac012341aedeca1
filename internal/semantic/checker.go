// Package semantic implements the checker: it walks the untyped AST once
// and produces either a typed program or an accumulated error list.
// Grounded on the original Checker in semantics.rs (enter_scope/
// exit_scope/check_program/check_function/check_statement/check_assignee/
// check_expression), translated from Rust's ownership-based dispatch into
// Go type switches, in the idiom the teacher repo uses for its own
// semantic.Analyzer (single struct, accumulated string/diagnostic errors,
// no shared mutable state beyond the instance itself).
package semantic

import (
	"fmt"

	"github.com/fieldlang/fieldc/internal/diag"
	"github.com/fieldlang/fieldc/internal/typedast"
	"github.com/fieldlang/fieldc/internal/types"
	"github.com/fieldlang/fieldc/pkg/ast"
)

// Checker holds the scope set, function registry, and level counter for a
// single check run. It is single-threaded and synchronous: no field here
// is touched by anything but the Checker's own methods.
type Checker struct {
	scope *scopeTable
	funcs *registry
}

// New creates a Checker with empty scope and registry.
func New() *Checker {
	return &Checker{scope: newScopeTable(), funcs: newRegistry()}
}

// Check walks prog once and returns either the typed program or the
// accumulated diagnostics as an error (a non-empty diag.List).
func (c *Checker) Check(prog *ast.Program, importedFunctions []types.FunctionDeclaration) (*typedast.TypedProgram, error) {
	for _, f := range importedFunctions {
		c.funcs.insert(f)
	}

	var diags diag.List
	var checkedFns []*typedast.TypedFunction

	for _, fn := range prog.Functions {
		c.scope.enter()

		decl := types.FunctionDeclaration{Name: fn.Name, Signature: signatureOf(fn)}

		checkedFn, fnErrs := c.checkFunction(fn)
		if len(fnErrs) == 0 {
			checkedFns = append(checkedFns, checkedFn)
		} else {
			diags = append(diags, fnErrs...)
		}

		// Inserted regardless of success, so that downstream functions see
		// it; duplicates are reported at the call site rather than here.
		c.funcs.insert(decl)
		c.scope.exit()
	}

	switch n := c.funcs.countNamed("main"); n {
	case 1:
	case 0:
		diags = append(diags, diag.NewUnpositioned("No main function found"))
	default:
		diags = append(diags, diag.NewUnpositioned("Only one main function allowed, found %d", n))
	}

	if len(diags) > 0 {
		return nil, diags
	}

	var imports []typedast.ImportValue
	for _, imp := range prog.Imports {
		imports = append(imports, typedast.ImportValue{Path: imp.Path, Alias: imp.Alias})
	}

	return &typedast.TypedProgram{
		Functions:         checkedFns,
		ImportedFunctions: importedFunctions,
		Imports:           imports,
	}, nil
}

func signatureOf(fn *ast.FunctionDecl) types.Signature {
	inputs := make([]types.Type, len(fn.Parameters))
	for i, p := range fn.Parameters {
		inputs[i] = resolveType(p.Type)
	}
	outputs := make([]types.Type, len(fn.Outputs))
	for i, o := range fn.Outputs {
		outputs[i] = resolveType(o)
	}
	return types.Signature{Inputs: inputs, Outputs: outputs}
}

func resolveType(ann *ast.TypeAnnotation) types.Type {
	if ann.IsArray {
		return types.Array(ann.ArraySize)
	}
	if ann.Name == "bool" {
		return types.Bool()
	}
	return types.Field()
}

// checkFunction assumes the scope for this function has already been
// entered by the caller, matching check_program's enter_scope/exit_scope
// bracketing of check_function in the original.
func (c *Checker) checkFunction(fn *ast.FunctionDecl) (*typedast.TypedFunction, diag.List) {
	var diags diag.List

	sig := signatureOf(fn)
	if len(fn.Parameters) != len(sig.Inputs) {
		panic("parser invariant violated: argument count does not match signature input count")
	}

	ownOutputs := make([]*types.Type, len(sig.Outputs))
	for i := range sig.Outputs {
		t := sig.Outputs[i]
		ownOutputs[i] = &t
	}
	q := query{Name: fn.Name, Inputs: sig.Inputs, Outputs: ownOutputs}
	if candidates := findCandidates(c.funcs, q); len(candidates) == 1 {
		diags = append(diags, diag.New(fn.Pos(), "Duplicate definition for function %s with signature %s", fn.Name, sig.String()))
	}

	params := make([]typedast.Variable, len(fn.Parameters))
	for i, p := range fn.Parameters {
		t := resolveType(p.Type)
		c.scope.insert(p.Name, t)
		params[i] = typedast.Variable{Name: p.Name, Type: t, Pos: p.Pos()}
	}

	var body []typedast.TypedStatement
	for _, stmt := range fn.Body {
		ts, err := c.checkStatement(stmt, sig.Outputs)
		if err != nil {
			diags = append(diags, err)
			continue
		}
		body = append(body, ts)
	}

	if len(diags) > 0 {
		return nil, diags
	}

	return &typedast.TypedFunction{
		Name:       fn.Name,
		Parameters: params,
		Signature:  sig,
		Body:       body,
	}, nil
}

func (c *Checker) checkStatement(stmt ast.Statement, expectedOutputs []types.Type) (typedast.TypedStatement, *diag.Diagnostic) {
	switch s := stmt.(type) {
	case *ast.ReturnStmt:
		return c.checkReturn(s, expectedOutputs)
	case *ast.DeclarationStmt:
		return c.checkDeclaration(s)
	case *ast.DefinitionStmt:
		return c.checkDefinition(s)
	case *ast.ConditionStmt:
		return c.checkCondition(s)
	case *ast.ForStmt:
		return c.checkFor(s, expectedOutputs)
	case *ast.MultipleDefinitionStmt:
		return c.checkMultipleDefinition(s)
	default:
		panic(fmt.Sprintf("unreachable: unknown statement type %T", stmt))
	}
}

func (c *Checker) checkReturn(s *ast.ReturnStmt, expectedOutputs []types.Type) (typedast.TypedStatement, *diag.Diagnostic) {
	results := make([]*typedast.TypedExpr, 0, len(s.Results))
	for _, e := range s.Results {
		te, err := c.checkExpression(e)
		if err != nil {
			return nil, err
		}
		results = append(results, te)
	}
	actual := typesOf(results)
	if !typeSeqEqual(actual, expectedOutputs) {
		return nil, diag.New(s.Pos(), "Expected (%s) in return statement, found (%s)", joinTypeNames(expectedOutputs), joinTypeNames(actual))
	}
	return typedast.ReturnStatement{Results: results}, nil
}

func (c *Checker) checkDeclaration(s *ast.DeclarationStmt) (typedast.TypedStatement, *diag.Diagnostic) {
	t := resolveType(s.Type)
	if !c.scope.insert(s.Name, t) {
		return nil, diag.New(s.Pos(), "Duplicate declaration for variable named %s", s.Name)
	}
	return typedast.DeclarationStatement{Variable: typedast.Variable{Name: s.Name, Type: t, Pos: s.Pos()}}, nil
}

func (c *Checker) checkDefinition(s *ast.DefinitionStmt) (typedast.TypedStatement, *diag.Diagnostic) {
	if _, isCall := s.Value.(*ast.CallExpr); isCall {
		panic("parser invariant violated: a single-definition right-hand side must not be a direct function call")
	}

	checkedExpr, err := c.checkExpression(s.Value)
	if err != nil {
		return nil, err
	}

	assignee, err := c.checkAssignee(s.Assignee)
	if err != nil {
		return nil, err
	}

	assigneeT := assigneeType(assignee)
	exprT := checkedExpr.Type()
	if !assigneeT.Equal(exprT) {
		return nil, diag.New(s.Pos(), "Expression %s of type %s cannot be assigned to %s of type %s",
			describe(checkedExpr), exprT, describeAssignee(assignee), assigneeT)
	}
	return typedast.DefinitionStatement{Assignee: assignee, Value: checkedExpr}, nil
}

func (c *Checker) checkCondition(s *ast.ConditionStmt) (typedast.TypedStatement, *diag.Diagnostic) {
	left, err := c.checkExpression(s.Left)
	if err != nil {
		return nil, err
	}
	right, err := c.checkExpression(s.Right)
	if err != nil {
		return nil, err
	}
	if !left.Type().Equal(right.Type()) {
		return nil, diag.New(s.Pos(), "Cannot compare %s of type %s to %s of type %s",
			describe(left), left.Type(), describe(right), right.Type())
	}
	return typedast.ConditionStatement{Left: left, Right: right}, nil
}

func (c *Checker) checkFor(s *ast.ForStmt, expectedOutputs []types.Type) (typedast.TypedStatement, *diag.Diagnostic) {
	from, err := c.checkExpression(s.From)
	if err != nil {
		return nil, err
	}
	to, err := c.checkExpression(s.To)
	if err != nil {
		return nil, err
	}

	t := resolveType(s.VarType)
	if t.Kind != types.FieldElement {
		return nil, diag.New(s.Pos(), "Variable in for loop cannot have type %s", t)
	}

	c.scope.enter()
	c.scope.insert(s.Variable, t)

	var body []typedast.TypedStatement
	for _, stmt := range s.Body {
		ts, bodyErr := c.checkStatement(stmt, expectedOutputs)
		if bodyErr != nil {
			c.scope.exit()
			return nil, bodyErr
		}
		body = append(body, ts)
	}
	c.scope.exit()

	return typedast.ForStatement{
		Variable: typedast.Variable{Name: s.Variable, Type: t, Pos: s.Pos()},
		From:     from,
		To:       to,
		Body:     body,
	}, nil
}

func (c *Checker) checkMultipleDefinition(s *ast.MultipleDefinitionStmt) (typedast.TypedStatement, *diag.Diagnostic) {
	names := make([]string, len(s.Assignees))
	outputHints := make([]*types.Type, len(s.Assignees))
	for i, a := range s.Assignees {
		ident, ok := a.(*ast.Identifier)
		if !ok {
			return nil, diag.New(s.Pos(), "Left hand side of function return assignment must be a list of identifiers, found %s", describeUntypedAssignee(a))
		}
		names[i] = ident.Name
		if v, found := c.scope.lookup(ident.Name); found {
			t := v.typ
			outputHints[i] = &t
		}
	}

	arguments := make([]*typedast.TypedExpr, 0, len(s.Call.Arguments))
	for _, a := range s.Call.Arguments {
		te, err := c.checkExpression(a)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, te)
	}

	q := query{Name: s.Call.Name, Inputs: typesOf(arguments), Outputs: outputHints}
	candidates := findCandidates(c.funcs, q)

	switch len(candidates) {
	case 1:
		decl := candidates[0]
		outTypes := decl.Signature.Outputs
		for i, name := range names {
			// Already-declared names were checked compatible by the
			// overload match; insert is a no-op failure for those and a
			// fresh binding for newly inferred ones.
			c.scope.insert(name, outTypes[i])
		}
		return typedast.MultipleDefinitionStatement{
			Names:     names,
			Types:     outTypes,
			Function:  decl.Name,
			Arguments: arguments,
		}, nil
	case 0:
		return nil, diag.New(s.Pos(), "Function definition for function %s with signature %s not found.", s.Call.Name, q.String())
	default:
		return nil, diag.New(s.Pos(), "Function call for function %s with arguments (%s) is ambiguous.", s.Call.Name, joinTypeNames(q.Inputs))
	}
}

func describeUntypedAssignee(a ast.Assignee) string {
	switch v := a.(type) {
	case *ast.Identifier:
		return v.Name
	case *ast.IndexAssignee:
		return describeUntypedAssignee(v.Base) + "[...]"
	default:
		return "?"
	}
}

func (c *Checker) checkAssignee(a ast.Assignee) (typedast.TypedAssignee, *diag.Diagnostic) {
	switch v := a.(type) {
	case *ast.Identifier:
		sv, ok := c.scope.lookup(v.Name)
		if !ok {
			return nil, diag.New(v.Pos(), "Identifier \"%s\" is undefined", v.Name)
		}
		return typedast.IdentifierAssignee{Name: v.Name, Type: sv.typ}, nil
	case *ast.IndexAssignee:
		base, err := c.checkAssignee(v.Base)
		if err != nil {
			return nil, err
		}
		if v.Slice != nil {
			return nil, diag.New(v.Pos(), "Using slices in assignments is not supported, found %s[...]", describeAssignee(base))
		}
		index, err := c.checkExpression(v.Index)
		if err != nil {
			return nil, err
		}
		if index.Kind != typedast.FieldKind {
			return nil, diag.New(v.Pos(), "Expected array %s index to have type field, found %s", describeAssignee(base), index.Type())
		}
		return typedast.IndexAssignee{Base: base, Index: index}, nil
	default:
		panic(fmt.Sprintf("unreachable: unknown assignee type %T", a))
	}
}

func assigneeType(a typedast.TypedAssignee) types.Type {
	switch v := a.(type) {
	case typedast.IdentifierAssignee:
		return v.Type
	case typedast.IndexAssignee:
		return types.Field()
	default:
		return types.Type{}
	}
}

func (c *Checker) checkSpreadOrExpression(elem ast.InlineArrayElement) ([]*typedast.TypedExpr, *diag.Diagnostic) {
	if !elem.Spread {
		te, err := c.checkExpression(elem.Expression)
		if err != nil {
			return nil, err
		}
		return []*typedast.TypedExpr{te}, nil
	}

	checked, err := c.checkExpression(elem.Expression)
	if err != nil {
		return nil, err
	}
	if checked.Kind != typedast.ArrayKind {
		return nil, diag.New(elem.Expression.Pos(), "Expected spread operator to apply on field element array, found %s", checked.Type())
	}
	out := make([]*typedast.TypedExpr, checked.ArraySize)
	for i := 0; i < checked.ArraySize; i++ {
		out[i] = &typedast.TypedExpr{
			Kind: typedast.FieldKind,
			Field: typedast.FieldSelect{
				Base:  checked,
				Index: fieldNumberExpr(i),
			},
		}
	}
	return out, nil
}

func fieldNumberExpr(n int) *typedast.TypedExpr {
	return &typedast.TypedExpr{Kind: typedast.FieldKind, Field: typedast.FieldLiteral{Value: fmt.Sprintf("%d", n)}}
}

func (c *Checker) checkExpression(expr ast.Expression) (*typedast.TypedExpr, *diag.Diagnostic) {
	switch e := expr.(type) {
	case *ast.BooleanLiteral:
		return &typedast.TypedExpr{Kind: typedast.BoolKind, Bool: typedast.BoolLiteral{Value: e.Value}}, nil

	case *ast.FieldLiteral:
		return &typedast.TypedExpr{Kind: typedast.FieldKind, Field: typedast.FieldLiteral{Value: e.Value}}, nil

	case *ast.Identifier:
		sv, ok := c.scope.lookup(e.Name)
		if !ok {
			return nil, diag.New(e.Pos(), "Identifier \"%s\" is undefined", e.Name)
		}
		switch sv.typ.Kind {
		case types.Boolean:
			return &typedast.TypedExpr{Kind: typedast.BoolKind, Bool: typedast.BoolIdentifier{Name: e.Name}}, nil
		case types.FieldElement:
			return &typedast.TypedExpr{Kind: typedast.FieldKind, Field: typedast.FieldIdentifier{Name: e.Name}}, nil
		default:
			return &typedast.TypedExpr{Kind: typedast.ArrayKind, ArraySize: sv.typ.Size, Array: typedast.ArrayIdentifier{Name: e.Name}}, nil
		}

	case *ast.ArithExpr:
		return c.checkArith(e)

	case *ast.RelExpr:
		return c.checkRelational(e)

	case *ast.BoolExpr:
		return c.checkBoolean(e)

	case *ast.ConditionalExpr:
		return c.checkConditional(e)

	case *ast.CallExpr:
		return c.checkCall(e)

	case *ast.SelectExpr:
		return c.checkSelect(e)

	case *ast.InlineArrayExpr:
		return c.checkInlineArray(e)

	default:
		panic(fmt.Sprintf("unreachable: unknown expression type %T", expr))
	}
}

func (c *Checker) checkArith(e *ast.ArithExpr) (*typedast.TypedExpr, *diag.Diagnostic) {
	left, err := c.checkExpression(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := c.checkExpression(e.Right)
	if err != nil {
		return nil, err
	}
	if left.Kind != typedast.FieldKind || right.Kind != typedast.FieldKind {
		return nil, diag.New(e.Pos(), "Expected only field elements, found %s, %s", left.Type(), right.Type())
	}
	return &typedast.TypedExpr{Kind: typedast.FieldKind, Field: typedast.FieldArith{Op: arithOpOf(e.Op), Left: left, Right: right}}, nil
}

func arithOpOf(op ast.ArithOp) typedast.ArithOp {
	switch op {
	case ast.Add:
		return typedast.Add
	case ast.Sub:
		return typedast.Sub
	case ast.Mul:
		return typedast.Mul
	case ast.Div:
		return typedast.Div
	case ast.Pow:
		return typedast.Pow
	default:
		panic("unreachable: unknown arithmetic operator")
	}
}

func (c *Checker) checkRelational(e *ast.RelExpr) (*typedast.TypedExpr, *diag.Diagnostic) {
	left, err := c.checkExpression(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := c.checkExpression(e.Right)
	if err != nil {
		return nil, err
	}
	if left.Kind != typedast.FieldKind || right.Kind != typedast.FieldKind {
		return nil, diag.New(e.Pos(), "Cannot compare %s of type %s to %s of type %s",
			describe(left), left.Type(), describe(right), right.Type())
	}
	return &typedast.TypedExpr{Kind: typedast.BoolKind, Bool: typedast.Relational{Op: relOpOf(e.Op), Left: left, Right: right}}, nil
}

func relOpOf(op ast.RelOp) typedast.RelOp {
	switch op {
	case ast.Lt:
		return typedast.Lt
	case ast.Le:
		return typedast.Le
	case ast.Eq:
		return typedast.Eq
	case ast.Ge:
		return typedast.Ge
	case ast.Gt:
		return typedast.Gt
	default:
		panic("unreachable: unknown relational operator")
	}
}

func (c *Checker) checkBoolean(e *ast.BoolExpr) (*typedast.TypedExpr, *diag.Diagnostic) {
	left, err := c.checkExpression(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Op == ast.Not {
		if left.Kind != typedast.BoolKind {
			return nil, diag.New(e.Pos(), "cannot negate %s", left.Type())
		}
		return &typedast.TypedExpr{Kind: typedast.BoolKind, Bool: typedast.BoolConnective{Op: typedast.Not, Left: left}}, nil
	}

	right, err := c.checkExpression(e.Right)
	if err != nil {
		return nil, err
	}
	if left.Kind != typedast.BoolKind || right.Kind != typedast.BoolKind {
		if e.Op == ast.And {
			return nil, diag.New(e.Pos(), "cannot apply boolean operators to %s and %s", left.Type(), right.Type())
		}
		return nil, diag.New(e.Pos(), "cannot compare %s to %s", left.Type(), right.Type())
	}
	return &typedast.TypedExpr{Kind: typedast.BoolKind, Bool: typedast.BoolConnective{Op: boolOpOf(e.Op), Left: left, Right: right}}, nil
}

func boolOpOf(op ast.BoolOp) typedast.BoolOp {
	switch op {
	case ast.And:
		return typedast.And
	case ast.Or:
		return typedast.Or
	default:
		panic("unreachable: unknown boolean operator")
	}
}

func (c *Checker) checkConditional(e *ast.ConditionalExpr) (*typedast.TypedExpr, *diag.Diagnostic) {
	cond, err := c.checkExpression(e.Condition)
	if err != nil {
		return nil, err
	}
	then, err := c.checkExpression(e.Then)
	if err != nil {
		return nil, err
	}
	els, err := c.checkExpression(e.Else)
	if err != nil {
		return nil, err
	}

	if cond.Kind != typedast.BoolKind {
		return nil, diag.New(e.Pos(), "condition after `if` should be a boolean, found %s", cond.Type())
	}
	if !then.Type().Equal(els.Type()) {
		return nil, diag.New(e.Pos(), "consequence and alternative in `if/else` expression should have the same type, found %s, %s", then.Type(), els.Type())
	}

	switch then.Kind {
	case typedast.FieldKind:
		return &typedast.TypedExpr{Kind: typedast.FieldKind, Field: typedast.FieldConditional{Condition: cond, Then: then, Else: els}}, nil
	case typedast.BoolKind:
		return &typedast.TypedExpr{Kind: typedast.BoolKind, Bool: typedast.BoolConditional{Condition: cond, Then: then, Else: els}}, nil
	default:
		return &typedast.TypedExpr{Kind: typedast.ArrayKind, ArraySize: then.ArraySize, Array: typedast.ArrayConditional{Condition: cond, Then: then, Else: els}}, nil
	}
}

func (c *Checker) checkCall(e *ast.CallExpr) (*typedast.TypedExpr, *diag.Diagnostic) {
	arguments := make([]*typedast.TypedExpr, 0, len(e.Arguments))
	for _, a := range e.Arguments {
		te, err := c.checkExpression(a)
		if err != nil {
			return nil, err
		}
		arguments = append(arguments, te)
	}

	q := query{Name: e.Name, Inputs: typesOf(arguments), Outputs: []*types.Type{nil}}
	candidates := findCandidatesByInputs(c.funcs, q)

	switch len(candidates) {
	case 1:
		decl := candidates[0]
		if len(decl.Signature.Outputs) != 1 {
			return nil, diag.New(e.Pos(), "%s returns %d values but is called outside of a definition", decl.Name, len(decl.Signature.Outputs))
		}
		out := decl.Signature.Outputs[0]
		switch out.Kind {
		case types.FieldElement:
			return &typedast.TypedExpr{Kind: typedast.FieldKind, Field: typedast.FieldCall{Name: decl.Name, Arguments: arguments}}, nil
		case types.FieldElementArray:
			return &typedast.TypedExpr{Kind: typedast.ArrayKind, ArraySize: out.Size, Array: typedast.ArrayCall{Name: decl.Name, Arguments: arguments}}, nil
		default:
			return &typedast.TypedExpr{Kind: typedast.BoolKind, Bool: typedast.BoolCall{Name: decl.Name, Arguments: arguments}}, nil
		}
	case 0:
		return nil, diag.New(e.Pos(), "Function definition for function %s with signature %s not found.", e.Name, q.String())
	default:
		return nil, diag.New(e.Pos(), "Function call for function %s with arguments (%s) is ambiguous.", e.Name, joinTypeNames(q.Inputs))
	}
}

func (c *Checker) checkSelect(e *ast.SelectExpr) (*typedast.TypedExpr, *diag.Diagnostic) {
	base, err := c.checkExpression(e.Base)
	if err != nil {
		return nil, err
	}
	if base.Kind != typedast.ArrayKind {
		return nil, diag.New(e.Pos(), "Cannot access element on expression of type %s", base.Type())
	}
	size := base.ArraySize

	if e.Slice != nil {
		lo := 0
		if e.Slice.Lo != nil {
			lo, err = c.evalConstIndex(e.Slice.Lo)
			if err != nil {
				return nil, err
			}
		}
		hi := size
		if e.Slice.Hi != nil {
			hi, err = c.evalConstIndex(e.Slice.Hi)
			if err != nil {
				return nil, err
			}
		}
		switch {
		case lo > size:
			return nil, diag.New(e.Pos(), "Lower range bound %d is out of array bounds [0, %d]", lo, size)
		case hi > size:
			return nil, diag.New(e.Pos(), "Higher range bound %d is out of array bounds [0, %d]", hi, size)
		case lo > hi:
			return nil, diag.New(e.Pos(), "Lower range bound %d is larger than higher range bound %d", lo, hi)
		}
		return &typedast.TypedExpr{
			Kind:      typedast.ArrayKind,
			ArraySize: hi - lo,
			Array:     typedast.ArrayRangeSelect{Base: base, Lo: lo, Hi: hi},
		}, nil
	}

	index, err := c.checkExpression(e.Index)
	if err != nil {
		return nil, err
	}
	if index.Kind != typedast.FieldKind {
		return nil, diag.New(e.Pos(), "Cannot access element %s on expression of type %s", describe(index), base.Type())
	}
	return &typedast.TypedExpr{Kind: typedast.FieldKind, Field: typedast.FieldSelect{Base: base, Index: index}}, nil
}

// evalConstIndex resolves a range bound, which the parser emits as a plain
// field-literal expression, to its integer value.
func (c *Checker) evalConstIndex(e ast.Expression) (int, *diag.Diagnostic) {
	lit, ok := e.(*ast.FieldLiteral)
	if !ok {
		return 0, diag.New(e.Pos(), "Array range bounds must be literal integers")
	}
	var n int
	if _, scanErr := fmt.Sscanf(lit.Value, "%d", &n); scanErr != nil {
		return 0, diag.New(e.Pos(), "Array range bounds must be literal integers")
	}
	return n, nil
}

func (c *Checker) checkInlineArray(e *ast.InlineArrayExpr) (*typedast.TypedExpr, *diag.Diagnostic) {
	if len(e.Elements) == 0 {
		panic("parser invariant violated: inline array literal must have at least one element")
	}

	var expanded []*typedast.TypedExpr
	for _, elem := range e.Elements {
		checked, err := c.checkSpreadOrExpression(elem)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, checked...)
	}

	for _, te := range expanded {
		if te.Kind != typedast.FieldKind {
			return nil, diag.New(e.Pos(), "Only arrays of field are supported, found %s", te.Type())
		}
	}

	return &typedast.TypedExpr{
		Kind:      typedast.ArrayKind,
		ArraySize: len(expanded),
		Array:     typedast.ArrayLiteral{Elements: expanded},
	}, nil
}

func typesOf(es []*typedast.TypedExpr) []types.Type {
	out := make([]types.Type, len(es))
	for i, e := range es {
		out[i] = e.Type()
	}
	return out
}

func typeSeqEqual(a, b []types.Type) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

func joinTypeNames(ts []types.Type) string {
	out := ""
	for i, t := range ts {
		if i > 0 {
			out += ", "
		}
		out += t.String()
	}
	return out
}
