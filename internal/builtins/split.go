// Package builtins synthesizes the canonical flat definitions of the two
// primitives the surface language cannot express itself: bit-decomposition
// (Split) and boolean-to-field casting (Cast). Grounded directly on
// original_source/zokrates_core/src/types/conversions.rs's split/cast
// functions; the variable numbering and statement ordering here reproduce
// that source exactly, since downstream consumers index into both by
// position.
package builtins

import (
	"math/big"

	"github.com/fieldlang/fieldc/internal/flat"
)

// Split produces the canonical bit-decomposition program for a field whose
// order requires n bits to represent. The emitted program has a single
// function, "main" (it is consumed as a whole program by flattening, not
// as a callee), taking one private input and returning n boolean-range
// outputs in source bit order.
//
// Variable layout: parameter is variable 0; outputs occupy 1..=n. The k-th
// bit constraint (0-indexed) references variable n-k, and the
// reconstruction sum uses coefficient 2^k on that same variable — both
// orderings are externally observable and must not be reordered.
func Split(n int) *flat.Program {
	directiveOutputs := make([]flat.Variable, n)
	for i := 0; i < n; i++ {
		directiveOutputs[i] = flat.Variable(i + 1)
	}

	directive := flat.Directive{
		Inputs:  []*flat.Expression{flat.Identifier(flat.Variable(0))},
		Outputs: directiveOutputs,
		Helper:  flat.BitsHelper(),
	}

	statements := make([]flat.Statement, 0, n+1+1+1)
	statements = append(statements, flat.DirectiveStatement{Directive: directive})

	// n..1, most-significant bit first: the k-th constraint (0-indexed)
	// uses variable n-k.
	for k := 0; k < n; k++ {
		v := flat.Variable(n - k)
		bit := flat.Identifier(v)
		statements = append(statements, flat.Condition{Lhs: bit, Rhs: flat.Mul(bit, bit)})
	}

	lhsSum := flat.Number(0)
	two := big.NewInt(2)
	coeff := big.NewInt(1)
	for i := 0; i < n; i++ {
		v := flat.Variable(n - i)
		term := flat.Mul(flat.Identifier(v), flat.NumberBig(coeff))
		lhsSum = flat.Add(lhsSum, term)
		coeff = new(big.Int).Mul(coeff, two)
	}
	statements = append(statements, flat.Condition{
		Lhs: lhsSum,
		Rhs: flat.Mul(flat.Identifier(flat.Variable(0)), flat.Number(1)),
	})

	outputs := make([]*flat.Expression, n)
	for i := 0; i < n; i++ {
		outputs[i] = flat.Identifier(flat.Variable(i + 1))
	}
	statements = append(statements, flat.Return{Expressions: outputs})

	return &flat.Program{
		Functions: []*flat.Function{{
			ID:         "main",
			Arguments:  []flat.Parameter{{ID: flat.Variable(0), Private: true}},
			Statements: statements,
			Inputs:     1,
			Outputs:    n,
		}},
	}
}
