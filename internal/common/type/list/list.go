// Released under an MIT license. See LICENSE.

// Package list provides stein's list type. Lists hold both data and code.
package list

import (
	"strings"

	"github.com/michaelmacinnis/stein/internal/common"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
	"github.com/michaelmacinnis/stein/internal/common/struct/loc"
)

const name = "list"

// Flag marks how a list was written or how it is being used.
type Flag uint8

// List flags.
const (
	// Quoted lists evaluate to themselves.
	Quoted Flag = 1 << iota

	// Block lists, written with square brackets, are evaluated in a new scope.
	Block

	// Definition lists are the bodies of closures.
	Definition

	// DefinitionParameters lists name the parameters of a closure.
	DefinitionParameters
)

// T (list) is an ordered, mutable sequence of cells.
type T struct {
	flags  Flag
	items  []cell.I
	source *loc.T
}

type list = T

// New creates a new list containing items.
func New(items ...cell.I) *list {
	return &list{items: items}
}

// At creates a new list, read at source, containing items.
func At(source *loc.T, flags Flag, items ...cell.I) *list {
	return &list{flags: flags, items: items, source: source}
}

// Append adds cs to the end of the list l.
func (l *list) Append(cs ...cell.I) {
	l.items = append(l.items, cs...)
}

// At returns the element at index i, if there is one.
func (l *list) At(i int) (cell.I, bool) {
	if i < 0 || i >= len(l.items) {
		return nil, false
	}

	return l.items[i], true
}

// Bool returns true if the list l is not empty.
func (l *list) Bool() bool {
	return len(l.items) != 0
}

// Copy returns a shallow copy of the list l with the same flags and location.
func (l *list) Copy() *list {
	return &list{
		flags:  l.flags,
		items:  l.Items(),
		source: l.source,
	}
}

// Equal returns true if c is a list with equal elements in the same order.
func (l *list) Equal(c cell.I) bool {
	o, ok := c.(*list)
	if !ok {
		return false
	}

	if l == o {
		return true
	}

	if len(l.items) != len(o.items) {
		return false
	}

	for i, e := range l.items {
		if !equal(e, o.items[i]) {
			return false
		}
	}

	return true
}

// Has returns true if the flag f is set on the list l.
func (l *list) Has(f Flag) bool {
	return l.flags&f != 0
}

// Head returns the first element of the list l or nil if l is empty.
func (l *list) Head() cell.I {
	if len(l.items) == 0 {
		return nil
	}

	return l.items[0]
}

// Insert places c at index i, shifting later elements right.
func (l *list) Insert(i int, c cell.I) bool {
	if i < 0 || i > len(l.items) {
		return false
	}

	l.items = append(l.items, nil)
	copy(l.items[i+1:], l.items[i:])
	l.items[i] = c

	return true
}

// Items returns a copy of the elements of the list l.
func (l *list) Items() []cell.I {
	return append([]cell.I(nil), l.items...)
}

// Len returns the number of elements in the list l.
func (l *list) Len() int {
	return len(l.items)
}

// Literal returns the literal representation of the list l.
func (l *list) Literal() string {
	var b strings.Builder

	if l.Has(Quoted) {
		b.WriteByte('\'')
	}

	opening, closing := "(", ")"
	if l.Has(Block) {
		opening, closing = "[", "]"
	}

	b.WriteString(opening)

	for i, e := range l.items {
		if i > 0 {
			b.WriteByte(' ')
		}

		b.WriteString(literal.String(e))
	}

	b.WriteString(closing)

	return b.String()
}

// Loc returns where the list l was read, if known.
func (l *list) Loc() *loc.T {
	return l.source
}

// Name returns the type name for the list l.
func (l *list) Name() string {
	return name
}

// Remove deletes the element at index i.
func (l *list) Remove(i int) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}

	l.items = append(l.items[:i], l.items[i+1:]...)

	return true
}

// Set replaces the element at index i with c.
func (l *list) Set(i int, c cell.I) bool {
	if i < 0 || i >= len(l.items) {
		return false
	}

	l.items[i] = c

	return true
}

// SetFlag sets (or clears) the flag f on the list l.
func (l *list) SetFlag(f Flag, on bool) {
	if on {
		l.flags |= f
	} else {
		l.flags &^= f
	}
}

// Slice returns a new list with the elements from i up to, not including, j.
func (l *list) Slice(i, j int) *list {
	n := len(l.items)

	i = max(0, min(i, n))
	j = max(i, min(j, n))

	return New(append([]cell.I(nil), l.items[i:j]...)...)
}

// String returns the printed form of the list l.
func (l *list) String() string {
	return l.Literal()
}

// Tail returns a new list with every element of l but the first.
func (l *list) Tail() *list {
	return l.Slice(1, len(l.items))
}

// Is returns true if c is a list.
func Is(c cell.I) bool {
	_, ok := c.(*list)

	return ok
}

func equal(a, b cell.I) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(b)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(&t)

	// The list type has a literal representation.
	_ = literal.I(&t)

	// The list type is a stringer.
	_ = common.Stringer(&t)
}
