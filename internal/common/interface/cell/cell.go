// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all stein values.
package cell

// I (cell) is the basic unit of storage in stein.
//
// Every value has a truth value and a printed form.
type I interface {
	Bool() bool
	Equal(c I) bool
	Name() string
	String() string
}
