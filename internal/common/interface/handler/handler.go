// Released under an MIT license. See LICENSE.

// Package handler defines the method-missing capability for message receivers.
package handler

import (
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/scope"
)

// I (handler) is implemented by host values that answer messages
// their class does not define.
type I interface {
	CanHandle(selector string) bool
	Handle(selector string, args []cell.I, s scope.I) (cell.I, error)
}
