package builtins

import (
	"fmt"

	"github.com/fieldlang/fieldc/internal/flat"
	"github.com/fieldlang/fieldc/internal/types"
)

// Cast produces the canonical flat function converting a value of type
// from to type to. The only supported conversion is Boolean -> FieldElement:
// the witness is identical, so the body is a single relabeling definition
// followed by a return. Any other combination is a programmer bug, not a
// user-facing error — callers are expected to have already checked that
// the conversion is one the language actually performs.
func Cast(from, to types.Type) *flat.Function {
	if from.Kind != types.Boolean || to.Kind != types.FieldElement {
		panic(fmt.Sprintf("can't cast %s to %s", from, to))
	}

	arguments := make([]flat.Parameter, from.PrimitiveCount())
	for i := range arguments {
		arguments[i] = flat.Parameter{ID: flat.Variable(i), Private: true}
	}

	inputs := make([]flat.Variable, from.PrimitiveCount())
	for i := range inputs {
		inputs[i] = flat.Variable(i)
	}
	outputs := make([]flat.Variable, to.PrimitiveCount())
	for i := range outputs {
		outputs[i] = flat.Variable(from.PrimitiveCount() + i)
	}

	statements := make([]flat.Statement, 0, len(outputs)+1)
	for i, o := range outputs {
		statements = append(statements, flat.Definition{Var: o, Rhs: flat.Identifier(inputs[i])})
	}

	returnExprs := make([]*flat.Expression, len(outputs))
	for i, o := range outputs {
		returnExprs[i] = flat.Identifier(o)
	}
	statements = append(statements, flat.Return{Expressions: returnExprs})

	return &flat.Function{
		ID:         fmt.Sprintf("_%s_to_%s", from, to),
		Arguments:  arguments,
		Statements: statements,
		Inputs:     from.PrimitiveCount(),
		Outputs:    to.PrimitiveCount(),
	}
}
