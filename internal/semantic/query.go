package semantic

import (
	"strings"

	"github.com/fieldlang/fieldc/internal/types"
)

// query is a partial description of a call site: a name, the checked input
// types, and one output slot per expected return value. A nil entry in
// Outputs means "any type" (inference); a non-nil entry means the caller
// requires exactly that type at that position.
type query struct {
	Name    string
	Inputs  []types.Type
	Outputs []*types.Type
}

// String renders "(t1, t2) -> (t3, _)", with "_" standing in for an
// unresolved (nil) output slot — the exact shape the "function not found"
// diagnostic embeds.
func (q query) String() string {
	var sb strings.Builder
	sb.WriteString("(")
	for i, t := range q.Inputs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.String())
	}
	sb.WriteString(") -> (")
	for i, t := range q.Outputs {
		if i > 0 {
			sb.WriteString(", ")
		}
		if t != nil {
			sb.WriteString(t.String())
		} else {
			sb.WriteString("_")
		}
	}
	sb.WriteString(")")
	return sb.String()
}

// matches reports whether decl satisfies this query: equal name, equal
// input sequence, equal output arity, and every non-nil output slot equal
// to the declaration's output at that index.
func (q query) matches(decl types.FunctionDeclaration) bool {
	if q.Name != decl.Name {
		return false
	}
	if len(q.Inputs) != len(decl.Signature.Inputs) {
		return false
	}
	for i, t := range q.Inputs {
		if !t.Equal(decl.Signature.Inputs[i]) {
			return false
		}
	}
	if len(q.Outputs) != len(decl.Signature.Outputs) {
		return false
	}
	for i, want := range q.Outputs {
		if want != nil && !want.Equal(decl.Signature.Outputs[i]) {
			return false
		}
	}
	return true
}

// findCandidates returns every registered declaration the query matches.
func findCandidates(reg *registry, q query) []types.FunctionDeclaration {
	var out []types.FunctionDeclaration
	for _, d := range reg.all() {
		if q.matches(d) {
			out = append(out, d)
		}
	}
	return out
}

// matchesInputs reports whether decl satisfies this query by name and input
// sequence alone, ignoring output arity. Used at a call site in expression
// position: the query carries a single inference slot regardless of how
// many values the callee actually returns, since arity itself is part of
// what's being diagnosed there.
func (q query) matchesInputs(decl types.FunctionDeclaration) bool {
	if q.Name != decl.Name {
		return false
	}
	if len(q.Inputs) != len(decl.Signature.Inputs) {
		return false
	}
	for i, t := range q.Inputs {
		if !t.Equal(decl.Signature.Inputs[i]) {
			return false
		}
	}
	return true
}

// findCandidatesByInputs returns every registered declaration matching q by
// name and inputs only.
func findCandidatesByInputs(reg *registry, q query) []types.FunctionDeclaration {
	var out []types.FunctionDeclaration
	for _, d := range reg.all() {
		if q.matchesInputs(d) {
			out = append(out, d)
		}
	}
	return out
}
