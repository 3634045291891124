// Released under an MIT license. See LICENSE.

// Package signal provides the non-local exits used by break and continue.
//
// Signals travel through the same error channel as failures but are not
// failures. Every iteration construct must catch them.
package signal

import (
	"errors"

	"github.com/michaelmacinnis/stein/internal/common/struct/loc"
)

// Kind is the kind of non-local exit.
type Kind int

// Signal kinds.
const (
	Break Kind = iota + 1
	Continue
)

// T (signal) is a break or continue on its way to the nearest iteration.
type T struct {
	kind   Kind
	source *loc.T
}

type signal = T

// New creates a new signal of kind k raised at source.
func New(k Kind, source *loc.T) *signal {
	return &signal{kind: k, source: source}
}

// Error allows a signal to travel as an error.
func (s *signal) Error() string {
	name := "continue"
	if s.kind == Break {
		name = "break"
	}

	if s.source == nil {
		return name
	}

	return s.source.String() + ": " + name
}

// Kind returns the signal's kind.
func (s *signal) Kind() Kind {
	return s.kind
}

// Loc returns where the signal was raised.
func (s *signal) Loc() *loc.T {
	return s.source
}

// As returns the signal carried by err, if err is a signal.
func As(err error) (*signal, bool) {
	var s *signal
	if errors.As(err, &s) {
		return s, true
	}

	return nil, false
}

// Loop translates the result of one iteration step. It reports whether
// iteration should stop and returns any error that must propagate.
func Loop(err error) (stop bool, _ error) {
	if err == nil {
		return false, nil
	}

	s, ok := As(err)
	if !ok {
		return true, err
	}

	return s.kind == Break, nil
}

// Locate sets the location for err if err is a signal without one.
func Locate(err error, source *loc.T) error {
	if s, ok := err.(*signal); ok && s.source == nil && source != nil { //nolint:errorlint
		s.source = source
	}

	return err
}
