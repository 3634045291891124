// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the stein language.
package parser

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/struct/loc"
	"github.com/michaelmacinnis/stein/internal/common/struct/token"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/type/num"
	"github.com/michaelmacinnis/stein/internal/common/type/str"
	"github.com/michaelmacinnis/stein/internal/common/type/strcode"
	"github.com/michaelmacinnis/stein/internal/common/type/sym"
	"github.com/michaelmacinnis/stein/internal/reader/lexer"
)

// T holds the state of the parser.
type T struct {
	ahead   int             // Lookahead count.
	emit    func(cell.I)    // Function to call to emit a parsed form.
	item    func() *token.T // Function to call to get another token.
	symbols *sym.Table      // Where symbol names are interned.
	token   *token.T        // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
func New(symbols *sym.Table, emit func(cell.I), item func() *token.T) *T {
	return &T{emit: emit, item: item, symbols: symbols}
}

// Parse consumes tokens and emits cells until there are no more tokens.
func (p *T) Parse() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		if i, ok := r.(*issue.T); ok {
			err = i

			return
		}

		panic(r)
	}()

	for t := p.peek(); t != nil; t = p.peek() {
		if t.Is('\n') {
			p.consume()

			continue
		}

		p.emit(p.line())
	}

	return nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic(issue.New(issue.Syntax, nil, "nothing to consume"))
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

// T state functions.

// <line> ::= <element>+ ('\n' | EOF) .
// A line with one element is that element. Otherwise it is a list.
func (p *T) line() cell.I {
	first := p.peek().Source()

	var items []cell.I

	for t := p.peek(); t != nil && !t.Is('\n'); t = p.peek() {
		items = append(items, p.element())
	}

	if len(items) == 1 {
		return items[0]
	}

	return list.At(first, 0, items...)
}

// <element> ::= '\'' <element> | <list> | <block> | Number | String | Symbol .
func (p *T) element() cell.I {
	t := p.peek()
	if t == nil {
		panic(issue.Wrap(issue.Syntax, nil, io.ErrUnexpectedEOF, "unexpected end of input"))
	}

	switch t.Class() {
	case '\'':
		p.consume()

		return p.quote(t)
	case '(':
		p.consume()

		return p.list(t, ')', 0)
	case '[':
		p.consume()

		return p.list(t, ']', list.Block)
	case ')', ']':
		panic(issue.New(issue.Syntax, t.Source(), "unexpected '%s'", t.Value()))
	case token.Number:
		p.consume()

		n, err := num.Parse(t.Value())
		if err != nil {
			panic(issue.New(issue.Syntax, t.Source(), "malformed number '%s'", t.Value()))
		}

		return n
	case token.String:
		p.consume()

		return p.text(t)
	case token.Symbol:
		p.consume()

		return p.symbols.New(t.Value(), false, t.Source())
	}

	panic(issue.New(issue.Syntax, t.Source(), "unexpected '%s'", t.Value()))
}

// <list> ::= '(' <element>* ')' .
// <block> ::= '[' <element>* ']' .
// Newlines inside a list or block are whitespace.
func (p *T) list(opening *token.T, closing token.Class, flags list.Flag) cell.I {
	var items []cell.I

	for {
		t := p.peek()

		switch {
		case t == nil:
			panic(issue.Wrap(
				issue.Syntax, opening.Source(), io.ErrUnexpectedEOF,
				"unterminated list",
			))
		case t.Is('\n'):
			p.consume()

			continue
		case t.Is(closing):
			p.consume()

			return list.At(opening.Source(), flags, items...)
		}

		items = append(items, p.element())
	}
}

func (p *T) quote(q *token.T) cell.I {
	t := p.peek()
	if t == nil {
		panic(issue.Wrap(issue.Syntax, q.Source(), io.ErrUnexpectedEOF, "nothing to quote"))
	}

	if t.Is('\n') {
		panic(issue.New(issue.Syntax, q.Source(), "nothing to quote"))
	}

	switch c := p.element().(type) {
	case *list.T:
		c.SetFlag(list.Quoted, true)

		return c
	case *sym.T:
		return p.symbols.New(c.String(), true, c.Loc())
	default:
		return c
	}
}

// text converts a string token into a str or, if the string contains
// interpolated expressions, a strcode.
func (p *T) text(t *token.T) cell.I {
	v := t.Value()
	raw := v[1 : len(v)-1]

	if !utf8.ValidString(raw) {
		panic(issue.New(issue.Syntax, t.Source(), "invalid UTF-8 in string"))
	}

	var (
		code   []strcode.Code
		pieces []string
	)

	last := 0

	for i := 0; i < len(raw); i++ {
		switch {
		case raw[i] == '\\':
			i++
		case strings.HasPrefix(raw[i:], "%("):
			n := lexer.Interpolated(raw[i:])

			pieces = append(pieces, p.decode(t, raw[last:i]))
			code = append(code, strcode.Code{
				Expr:  p.interpolation(t, raw, i+2, i+n-1),
				Start: i,
				End:   i + n,
			})

			i += n - 1
			last = i + 1
		}
	}

	if code == nil {
		return str.New(p.decode(t, raw))
	}

	pieces = append(pieces, p.decode(t, raw[last:]))

	return strcode.New(raw, pieces, code)
}

func (p *T) decode(t *token.T, s string) string {
	d, err := adapted.ActualBytes(s)
	if err != nil {
		panic(issue.Wrap(issue.Syntax, t.Source(), err, "invalid escape sequence in string"))
	}

	return d
}

// interpolation parses raw[start:end], the text between "%(" and ")".
func (p *T) interpolation(t *token.T, raw string, start, end int) cell.I {
	source := offset(*t.Source(), `"`+raw[:start])

	l := lexer.NewAt(source)
	l.Scan(raw[start:end] + "\n")

	var cs []cell.I

	err := New(p.symbols, func(c cell.I) {
		cs = append(cs, c)
	}, l.Token).Parse()
	if err != nil {
		panic(err)
	}

	if len(cs) != 1 {
		panic(issue.New(
			issue.Syntax, &source,
			"interpolation must contain exactly one expression, found %d", len(cs),
		))
	}

	return cs[0]
}

// offset returns the location reached after reading s from source.
func offset(source loc.T, s string) loc.T {
	for _, r := range s {
		if r == '\n' {
			source.Line++
			source.Char = 1
		} else {
			source.Char++
		}
	}

	return source
}
