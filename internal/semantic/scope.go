package semantic

import "github.com/fieldlang/fieldc/internal/types"

// scopedVariable is a name bound to a type at a given scope level. Identity
// for scope-lookup purposes is the name alone: two scopedVariables collide
// iff their names are equal, matching the object language's "no shadowing,
// anywhere" rule. The level is retained only so exit() can bulk-drop
// bindings introduced in the scope being torn down.
type scopedVariable struct {
	name  string
	typ   types.Type
	level int
}

// scopeTable is a flat, name-keyed set of live bindings plus a level
// counter. A single HashSet with name-based identity suffices because the
// object language forbids shadowing entirely — there is no need for a
// stack of maps.
type scopeTable struct {
	vars  map[string]scopedVariable
	level int
}

func newScopeTable() *scopeTable {
	return &scopeTable{vars: make(map[string]scopedVariable)}
}

// lookup returns the current binding for name, if any.
func (s *scopeTable) lookup(name string) (scopedVariable, bool) {
	v, ok := s.vars[name]
	return v, ok
}

// insert adds a binding at the current level. It returns false without
// modifying the table if a binding with the same name already exists at
// any live level — duplicate declaration is forbidden within a function,
// including across nested scopes.
func (s *scopeTable) insert(name string, t types.Type) bool {
	if _, exists := s.vars[name]; exists {
		return false
	}
	s.vars[name] = scopedVariable{name: name, typ: t, level: s.level}
	return true
}

// enter begins a new nested scope (function body, for-body).
func (s *scopeTable) enter() {
	s.level++
}

// exit tears down the scope just entered, dropping every binding
// introduced at that level.
func (s *scopeTable) exit() {
	current := s.level
	for name, v := range s.vars {
		if v.level >= current {
			delete(s.vars, name)
		}
	}
	s.level--
}
