// Released under an MIT license. See LICENSE.

// Package handle provides stein's opaque host value type.
package handle

import (
	"github.com/michaelmacinnis/stein/internal/common"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/handler"
	"github.com/michaelmacinnis/stein/internal/common/interface/scope"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
)

const name = "handle"

// T (handle) wraps a host value that stein code can pass around but not
// inspect. Messages are passed on to values that can handle them.
type T struct {
	label string
	value any
}

type handle = T

// New creates a handle for value described by label.
func New(label string, value any) *handle {
	return &handle{label: label, value: value}
}

// Bool returns true if the handle h refers to something.
func (h *handle) Bool() bool {
	return h.value != nil
}

// CanHandle returns true if the host value answers selector.
func (h *handle) CanHandle(selector string) bool {
	v, ok := h.value.(handler.I)

	return ok && v.CanHandle(selector)
}

// Equal returns true if c is the same handle as h.
func (h *handle) Equal(c cell.I) bool {
	o, ok := c.(*handle)

	return ok && h == o
}

// Handle passes the message selector, with args, to the host value.
func (h *handle) Handle(selector string, args []cell.I, s scope.I) (cell.I, error) {
	v, ok := h.value.(handler.I)
	if !ok {
		return nil, issue.New(issue.Dispatch, nil, "%s does not understand %s", h.String(), selector)
	}

	return v.Handle(selector, args, s)
}

// Label returns the description given to the handle h.
func (h *handle) Label() string {
	return h.label
}

// Name returns the type name for the handle h.
func (h *handle) Name() string {
	return name
}

// String returns a description of the handle h.
func (h *handle) String() string {
	return "<" + name + " " + h.label + ">"
}

// Value returns the host value.
func (h *handle) Value() any {
	return h.value
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t handle

	// The handle type is a cell.
	_ = cell.I(&t)

	// The handle type passes messages to its value.
	_ = handler.I(&t)

	// The handle type is a stringer.
	_ = common.Stringer(&t)
}
