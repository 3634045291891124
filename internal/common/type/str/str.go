// Released under an MIT license. See LICENSE.

// Package str provides stein's string type.
package str

import (
	"strings"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/stein/internal/common"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
)

const name = "string"

// T (str) wraps Go's string type.
type T string

type str = T

// New creates a new str cell.
func New(v string) cell.I {
	s := str(v)

	return &s
}

// Bool returns true if the str s is not empty.
func (s *str) Bool() bool {
	return *s != ""
}

// Equal returns true if the cell c wraps the same string and false otherwise.
func (s *str) Equal(c cell.I) bool {
	o, ok := c.(*str)

	return ok && *s == *o
}

// Literal returns the literal representation of the str s.
func (s *str) Literal() string {
	return Quote(string(*s))
}

// Name returns the name of the str type.
func (s *str) Name() string {
	return name
}

// String returns the text of the str s.
func (s *str) String() string {
	return string(*s)
}

// Is returns true if c is a str.
func Is(c cell.I) bool {
	_, ok := c.(*str)

	return ok
}

// Quote returns s as a double-quoted string literal that reads back as s.
func Quote(s string) string {
	q := adapted.CanonicalString(s)

	// Strip the leading $' and trailing ' from the canonical form.
	q = q[2 : len(q)-1]

	q = strings.ReplaceAll(q, `\'`, `'`)
	q = strings.ReplaceAll(q, `"`, `\"`)
	q = strings.ReplaceAll(q, `%(`, `\x25(`)

	return `"` + q + `"`
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t str

	// The str type is a cell.
	_ = cell.I(&t)

	// The str type has a literal representation.
	_ = literal.I(&t)

	// The str type is a stringer.
	_ = common.Stringer(&t)
}
