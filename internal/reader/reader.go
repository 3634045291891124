// Released under an MIT license. See LICENSE.

// Package reader encapsulates the stein lexer and parser.
package reader

import (
	"errors"
	"io"
	"strings"

	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/sym"
	"github.com/michaelmacinnis/stein/internal/reader/lexer"
	"github.com/michaelmacinnis/stein/internal/reader/parser"
)

// T (reader) accumulates lines of input until they form complete forms.
type T struct {
	buffer  strings.Builder
	name    string
	symbols *sym.Table
}

type reader = T

// New creates a new reader for name.
func New(symbols *sym.Table, name string) *reader {
	return &reader{name: name, symbols: symbols}
}

// Incomplete returns true if the reader is holding a partial form.
func (r *reader) Incomplete() bool {
	return r.buffer.Len() > 0
}

// Reset discards any partial form.
func (r *reader) Reset() {
	r.buffer.Reset()
}

// Scan reads the line and returns the forms it completes, if any.
// A line that leaves a form incomplete returns no forms and no error.
// Any other error discards the accumulated input.
func (r *reader) Scan(line string) ([]cell.I, error) {
	r.buffer.WriteString(line)

	cs, err := Parse(r.symbols, r.buffer.String(), r.name)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, nil
		}

		r.buffer.Reset()

		return nil, err
	}

	r.buffer.Reset()

	return cs, nil
}

// Parse reads every form in text. The name is used to report locations.
func Parse(symbols *sym.Table, text, name string) ([]cell.I, error) {
	if strings.HasPrefix(text, "#!") {
		// Keep the newline so that line numbers are unchanged.
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			text = text[i:]
		} else {
			text = ""
		}
	}

	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	l := lexer.New(name)
	l.Scan(text)

	var cs []cell.I

	err := parser.New(symbols, func(c cell.I) {
		cs = append(cs, c)
	}, l.Token).Parse()

	if source, s, ok := l.Pending(); ok && strings.HasPrefix(s, `"`) {
		return nil, issue.Wrap(issue.Syntax, &source, io.ErrUnexpectedEOF, "unterminated string")
	}

	if err != nil {
		return nil, err
	}

	return cs, nil
}
