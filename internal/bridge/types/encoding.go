// Released under an MIT license. See LICENSE.

package types

import (
	"strings"

	"github.com/michaelmacinnis/stein/internal/common/type/issue"
)

const (
	pointerSize = 8
	qualifiers  = "NORVnor"
)

// Field is a member of a native struct.
type Field struct {
	Offset int
	Type   string
}

// Layout describes the size and alignment of a native type.
type Layout struct {
	Align  int
	Fields []Field
	Size   int
}

// SizeOf returns the size, in bytes, of the native type t.
func SizeOf(t string) (int, error) {
	l, err := LayoutOf(t)
	if err != nil {
		return 0, err
	}

	return l.Size, nil
}

// LayoutOf returns the layout of the native type t.
func LayoutOf(t string) (Layout, error) {
	t = strings.TrimLeft(t, qualifiers)
	if t == "" {
		return Layout{}, issue.New(issue.TypeBridge, nil, "empty type encoding")
	}

	switch t[0] {
	case 'c', 'C', 'B':
		return scalar(1), nil
	case 's', 'S':
		return scalar(2), nil //nolint:gomnd
	case 'i', 'I', 'l', 'L', 'f':
		return scalar(4), nil //nolint:gomnd
	case 'q', 'Q', 'd':
		return scalar(8), nil //nolint:gomnd
	case 'v':
		return Layout{Align: 1}, nil
	case '*', '@', '#', ':', '^':
		return scalar(pointerSize), nil
	case '{':
		return structure(t)
	}

	return Layout{}, issue.New(issue.TypeBridge, nil, "unknown type encoding '%s'", t)
}

// Split returns each type in signature. Qualifiers and the stack
// offsets found in method signatures are dropped.
func Split(signature string) ([]string, error) {
	var types []string

	for s := signature; s != ""; {
		s = strings.TrimLeft(s, qualifiers)

		n, err := next(s)
		if err != nil {
			return nil, err
		}

		types = append(types, s[:n])

		s = strings.TrimLeft(s[n:], "0123456789")
	}

	return types, nil
}

// StructName returns the name of the struct type t, if t is a struct.
func StructName(t string) (string, bool) {
	if len(t) < 2 || t[0] != '{' || t[len(t)-1] != '}' {
		return "", false
	}

	inner := t[1 : len(t)-1]
	if i := strings.IndexByte(inner, '='); i >= 0 {
		inner = inner[:i]
	}

	return inner, true
}

func next(s string) (int, error) {
	if s == "" {
		return 0, issue.New(issue.TypeBridge, nil, "unexpected end of type encoding")
	}

	switch s[0] {
	case 'c', 'C', 's', 'S', 'i', 'I', 'l', 'L', 'q', 'Q', 'f', 'd', 'B', 'v', '*', '@', '#', ':':
		return 1, nil
	case '^':
		rest := strings.TrimLeft(s[1:], qualifiers)

		n, err := next(rest)
		if err != nil {
			return 0, err
		}

		return len(s) - len(rest) + n, nil
	case '{':
		depth := 0

		for i := 0; i < len(s); i++ {
			switch s[i] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return i + 1, nil
				}
			}
		}

		return 0, issue.New(issue.TypeBridge, nil, "unterminated struct in '%s'", s)
	}

	return 0, issue.New(issue.TypeBridge, nil, "unknown type encoding '%s'", s)
}

func scalar(n int) Layout {
	return Layout{Align: n, Size: n}
}

func structure(t string) (Layout, error) {
	n, err := next(t)
	if err != nil {
		return Layout{}, err
	}

	inner := t[1 : n-1]

	i := strings.IndexByte(inner, '=')
	if i < 0 {
		return Layout{}, issue.New(issue.TypeBridge, nil, "struct '%s' has no field types", t)
	}

	types, err := Split(inner[i+1:])
	if err != nil {
		return Layout{}, err
	}

	l := Layout{Align: 1}

	for _, ft := range types {
		fl, err := LayoutOf(ft)
		if err != nil {
			return Layout{}, err
		}

		l.Size = align(l.Size, fl.Align)
		l.Fields = append(l.Fields, Field{Offset: l.Size, Type: ft})
		l.Size += fl.Size

		l.Align = max(l.Align, fl.Align)
	}

	l.Size = align(l.Size, l.Align)

	return l, nil
}

func align(n, a int) int {
	if a <= 1 {
		return n
	}

	return (n + a - 1) / a * a
}
