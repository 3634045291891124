// Released under an MIT license. See LICENSE.

// Package trace provides the envelope that collects the expressions an
// error unwinds through on its way to the top level.
package trace

import (
	"errors"
	"strings"

	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/struct/frame"
	"github.com/michaelmacinnis/stein/internal/common/struct/loc"
	"github.com/michaelmacinnis/stein/internal/common/type/signal"
)

// T (trace) is an error with an expression-level backtrace.
type T struct {
	err    error
	frames []*frame.T
}

type trace = T

// Wrap records that err unwound through the expression c created at source.
// Signals are returned unchanged.
func Wrap(err error, c cell.I, source *loc.T) error {
	if err == nil {
		return nil
	}

	if _, ok := signal.As(err); ok {
		return err
	}

	t, ok := err.(*trace) //nolint:errorlint
	if !ok {
		t = &trace{err: err}
	}

	t.frames = append(t.frames, frame.New(c, source))

	return t
}

// Backtrace returns one line per frame, innermost first.
func (t *trace) Backtrace() []string {
	lines := make([]string, len(t.frames))

	for i, f := range t.frames {
		lines[i] = f.String()
	}

	return lines
}

// Error returns the message of the original error.
func (t *trace) Error() string {
	return t.err.Error()
}

// Frames returns the recorded frames, innermost first.
func (t *trace) Frames() []*frame.T {
	return t.frames
}

// Unwrap returns the original error.
func (t *trace) Unwrap() error {
	return t.err
}

// Format renders err followed by its backtrace, if it has one.
func Format(err error) string {
	var b strings.Builder

	b.WriteString(err.Error())

	var t *trace
	if errors.As(err, &t) {
		for _, line := range t.Backtrace() {
			b.WriteString("\n    at ")
			b.WriteString(line)
		}
	}

	return b.String()
}
