// Released under an MIT license. See LICENSE.

package env

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/num"
)

func TestConstants(t *testing.T) {
	e := New(nil)

	err := e.SetConstant("k", num.Int(1))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	err = e.Set("k", num.Int(2), false)
	if !errors.Is(err, issue.ErrConstant) {
		t.Fatalf("Expected a constant redefinition error; got %v", err)
	}

	err = e.SetConstant("k", num.Int(3))
	if !errors.Is(err, issue.ErrConstant) {
		t.Fatalf("Expected a constant redefinition error; got %v", err)
	}

	v, _ := e.Lookup("k", false)
	if !v.Equal(num.Int(1)) {
		t.Fatalf("Expected k to remain 1; got %v", v)
	}
}

func TestConstantInParentDoesNotBlockChild(t *testing.T) {
	parent := New(nil)
	child := New(parent)

	_ = parent.SetConstant("k", num.Int(1))

	err := child.SetConstant("k", num.Int(2))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	v, _ := child.Lookup("k", true)
	if !v.Equal(num.Int(2)) {
		t.Fatalf("Expected the child's k to shadow the parent's; got %v", v)
	}
}

func TestEnumerate(t *testing.T) {
	e := New(nil)

	_ = e.Set("b", num.Int(2), false)
	_ = e.Set("a", num.Int(1), false)

	var keys []string

	for k := range e.Enumerate() {
		keys = append(keys, k)
	}

	if len(keys) != 2 || keys[0] != "b" || keys[1] != "a" {
		t.Fatalf("Expected [b a]; got %v", keys)
	}
}

func TestLabel(t *testing.T) {
	m := NewModule("main", nil)
	child := New(m)

	if l := child.Label(); l != "main" {
		t.Fatalf("Expected main; got %q", l)
	}

	if l := New(nil).Label(); l != "" {
		t.Fatalf("Expected no label; got %q", l)
	}
}

func TestLookup(t *testing.T) {
	a := New(nil)
	b := New(a)

	_ = a.Set("x", num.Int(1), false)
	_ = b.Set("y", num.Int(2), false)

	if v, ok := b.Lookup("x", true); !ok || !v.Equal(num.Int(1)) {
		t.Fatalf("Expected x to be 1; got %v, %v", v, ok)
	}

	if _, ok := b.Lookup("x", false); ok {
		t.Fatal("Expected x not to be found without searching parents")
	}

	if _, ok := a.Lookup("y", true); ok {
		t.Fatal("Expected y not to be found in the parent")
	}
}

func TestRemove(t *testing.T) {
	a := New(nil)
	b := New(a)

	_ = a.Set("x", num.Int(1), false)

	b.Remove("x", false)

	if _, ok := a.Lookup("x", false); !ok {
		t.Fatal("Expected x to survive a remove that does not search parents")
	}

	b.Remove("x", true)

	if _, ok := a.Lookup("x", false); ok {
		t.Fatal("Expected x to be removed")
	}

	b.Remove("missing", true)
}

func TestSetSearchesParents(t *testing.T) {
	a := New(nil)
	b := New(a)

	_ = a.Set("x", num.Int(1), false)

	err := b.Set("x", num.Int(2), true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, ok := b.Lookup("x", false); ok {
		t.Fatal("Expected x to be updated in the parent, not bound in the child")
	}

	if v, _ := a.Lookup("x", false); !v.Equal(num.Int(2)) {
		t.Fatalf("Expected x to be 2; got %v", v)
	}

	err = b.Set("z", num.Int(3), true)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, ok := b.Lookup("z", false); !ok {
		t.Fatal("Expected an unbound name to be bound in the current scope")
	}
}
