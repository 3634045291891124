// Released under an MIT license. See LICENSE.

// Package sym provides stein's symbol cell type.
package sym

import (
	"sync"

	"github.com/michaelmacinnis/stein/internal/common"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
	"github.com/michaelmacinnis/stein/internal/common/struct/loc"
)

const name = "symbol"

// T (sym) is a name. A symbol may be quoted and may know where it was read.
type T struct {
	quoted bool
	source *loc.T
	text   string
}

type sym = T

// Table interns symbol names. A table is safe for concurrent use.
type Table struct {
	sync.RWMutex
	m map[string]*sym
}

// NewTable creates a new, empty symbol table.
func NewTable() *Table {
	return &Table{m: map[string]*sym{}}
}

// Intern returns the one unquoted, location-less symbol named v.
func (t *Table) Intern(v string) *sym {
	t.RLock()
	s, ok := t.m[v]
	t.RUnlock()

	if ok {
		return s
	}

	t.Lock()
	defer t.Unlock()

	if s, ok = t.m[v]; ok {
		return s
	}

	s = &sym{text: v}
	t.m[v] = s

	return s
}

// New creates a symbol named v read at source. The name is interned.
func (t *Table) New(v string, quoted bool, source *loc.T) *sym {
	s := t.Intern(v)
	if !quoted && source == nil {
		return s
	}

	return &sym{quoted: quoted, source: source, text: s.text}
}

// Size returns the number of interned names.
func (t *Table) Size() int {
	t.RLock()
	defer t.RUnlock()

	return len(t.m)
}

// Bool returns true. Symbols are always true.
func (s *sym) Bool() bool {
	return true
}

// Equal returns true if c is a sym with the same name. Quoting is ignored.
func (s *sym) Equal(c cell.I) bool {
	o, ok := c.(*sym)

	return ok && (s == o || s.text == o.text)
}

// Literal returns the literal representation of the sym s.
func (s *sym) Literal() string {
	if s.quoted {
		return "'" + s.text
	}

	return s.text
}

// Loc returns where the sym s was read, if known.
func (s *sym) Loc() *loc.T {
	return s.source
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return name
}

// Quoted returns true if the sym s evaluates to itself.
func (s *sym) Quoted() bool {
	return s.quoted
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return s.text
}

// Is returns true if c is a sym.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)

	// The sym type has a literal representation.
	_ = literal.I(&t)

	// The sym type is a stringer.
	_ = common.Stringer(&t)
}
