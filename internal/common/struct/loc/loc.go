// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track where tokens, symbols
// and lists were created.
package loc

import (
	"strconv"
)

// T (loc) is a lexical location.
type T struct {
	Char int    // Character position (column), 1-based.
	Line int    // Line number (row), 1-based.
	Name string // Label for the source of this token.
}

type loc = T

// New creates a new location.
func New(name string, line, char int) *loc {
	return &loc{Char: char, Line: line, Name: name}
}

func (l *loc) String() string {
	if l == nil {
		return "<unknown>"
	}

	return l.Name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}
