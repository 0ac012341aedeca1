package semantic

import "github.com/fieldlang/fieldc/internal/types"

// registry is a set of FunctionDeclaration with structural equality;
// duplicates (equal name and signature) are rejected by insert.
type registry struct {
	decls []types.FunctionDeclaration
}

func newRegistry() *registry {
	return &registry{}
}

// insert adds a declaration, returning false if an equal one is already
// present.
func (r *registry) insert(d types.FunctionDeclaration) bool {
	for _, existing := range r.decls {
		if existing.Equal(d) {
			return false
		}
	}
	r.decls = append(r.decls, d)
	return true
}

// all returns every registered declaration, in insertion order.
func (r *registry) all() []types.FunctionDeclaration {
	return r.decls
}

// countNamed counts declarations with the given name, used to enforce
// exactly-one-main.
func (r *registry) countNamed(name string) int {
	n := 0
	for _, d := range r.decls {
		if d.Name == name {
			n++
		}
	}
	return n
}
