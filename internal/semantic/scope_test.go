package semantic

import (
	"testing"

	"github.com/fieldlang/fieldc/internal/types"
)

func TestScopeTableInsertAndLookup(t *testing.T) {
	s := newScopeTable()
	if !s.insert("a", types.Field()) {
		t.Fatal("first insert of a should succeed")
	}
	v, ok := s.lookup("a")
	if !ok || !v.typ.Equal(types.Field()) {
		t.Fatalf("lookup(a) = %v, %v", v, ok)
	}
	if _, ok := s.lookup("b"); ok {
		t.Fatal("lookup(b) should fail, never inserted")
	}
}

func TestScopeTableForbidsShadowing(t *testing.T) {
	s := newScopeTable()
	s.insert("a", types.Field())
	s.enter()
	if s.insert("a", types.Bool()) {
		t.Fatal("re-declaring a in a nested scope should fail: no shadowing allowed")
	}
}

func TestScopeTableRejectsDuplicateAtSameLevel(t *testing.T) {
	s := newScopeTable()
	if !s.insert("a", types.Field()) {
		t.Fatal("first insert should succeed")
	}
	if s.insert("a", types.Field()) {
		t.Fatal("second insert of a at the same level should fail")
	}
}

func TestScopeTableExitDropsNestedBindings(t *testing.T) {
	s := newScopeTable()
	s.insert("outer", types.Field())
	s.enter()
	s.insert("inner", types.Bool())
	if _, ok := s.lookup("inner"); !ok {
		t.Fatal("inner should be visible before exit")
	}
	s.exit()
	if _, ok := s.lookup("inner"); ok {
		t.Fatal("inner should be gone after exit")
	}
	if _, ok := s.lookup("outer"); !ok {
		t.Fatal("outer should survive the nested scope's exit")
	}
}

func TestScopeTableAllowsReuseAfterExit(t *testing.T) {
	s := newScopeTable()
	s.enter()
	s.insert("x", types.Field())
	s.exit()
	if !s.insert("x", types.Bool()) {
		t.Fatal("x should be free to redeclare once its scope has exited")
	}
	v, _ := s.lookup("x")
	if !v.typ.Equal(types.Bool()) {
		t.Fatalf("expected re-declared x to be bool, got %v", v.typ)
	}
}
