// Released under an MIT license. See LICENSE.

package types

import (
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
)

// Struct is a value that has a native struct representation.
type Struct interface {
	cell.I

	Encoding() string
	Fields() []cell.I
}

// Wrapper converts between a native struct and a stein value.
type Wrapper struct {
	encoding string
	label    string
	layout   Layout
	build    func(fields []cell.I) (cell.I, error)
}

// NewWrapper creates a wrapper for the struct type encoding. The function
// build makes a value from the struct's fields.
func NewWrapper(encoding string, build func(fields []cell.I) (cell.I, error)) (*Wrapper, error) {
	label, ok := StructName(encoding)
	if !ok {
		return nil, issue.New(issue.TypeBridge, nil, "'%s' is not a struct type", encoding)
	}

	l, err := LayoutOf(encoding)
	if err != nil {
		return nil, err
	}

	return &Wrapper{encoding: encoding, label: label, layout: l, build: build}, nil
}

// CanWrap returns true if c can be converted to the wrapper's native type.
func (w *Wrapper) CanWrap(c cell.I) bool {
	s, ok := c.(Struct)

	return ok && s.Encoding() == w.encoding
}

// Label returns the name of the wrapped struct.
func (w *Wrapper) Label() string {
	return w.label
}

// Size returns the size, in bytes, of the native struct.
func (w *Wrapper) Size() int {
	return w.layout.Size
}

// Type returns the struct's type encoding.
func (w *Wrapper) Type() string {
	return w.encoding
}

// Wrap builds a value from the struct's fields.
func (w *Wrapper) Wrap(fields []cell.I) (cell.I, error) {
	if len(fields) != len(w.layout.Fields) {
		return nil, issue.New(
			issue.TypeBridge, nil, "%s has %d fields, got %d",
			w.label, len(w.layout.Fields), len(fields),
		)
	}

	return w.build(fields)
}
