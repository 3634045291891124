// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the stein language.
//
// The stein lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go". See https://talks.golang.org/2011/lex.slide.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/stein/internal/common/struct/loc"
	"github.com/michaelmacinnis/stein/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes  string     // Buffer being scanned.
	first  int        // Index of the current token's first byte.
	index  int        // Index of the current byte.
	queue  []string   // Buffers waiting to be scanned.
	state  action     // Current action.
	tokens []*token.T // Tokens scanned but not yet returned.

	source loc.T // Location of the current byte.
	start  loc.T // Location of the current token's first byte.
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	return NewAt(loc.T{
		Char: 1,
		Line: 1,
		Name: label,
	})
}

// NewAt creates a new T that starts scanning at source.
func NewAt(source loc.T) *T {
	return &T{
		source: source,
		start:  source,
		state:  skipWhitespace,
	}
}

// Pending returns the location and text of a token that has been started
// but not finished. It returns false if there is no such token.
func (l *T) Pending() (loc.T, string, bool) {
	if l.first >= len(l.bytes) {
		return loc.T{}, "", false
	}

	return l.start, l.bytes[l.first:], true
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		if len(l.tokens) > 0 {
			t := l.tokens[0]
			l.tokens = l.tokens[1:]

			return t
		}

		l.gather()

		state := l.state(l)
		if state == nil {
			if len(l.tokens) > 0 {
				continue
			}

			return nil
		}

		l.state = state
	}
}

type action func(*T) action

const eof = -1

func (l *T) accept(r token.Class, w int) {
	if r == '\n' {
		l.source.Line++
		l.source.Char = 1
	} else {
		l.source.Char++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens = append(l.tokens, token.New(c, v, l.start))
	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	bytes := strings.Join(l.queue, "")
	if l.first < len(l.bytes) {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
}

func (l *T) next() token.Class {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *T) peek() (token.Class, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return token.Class(r), w
}

func (l *T) skip() {
	l.start = l.source
	l.first = l.index
}

// T states.

func scanAtom(l *T) action {
	for {
		r, w := l.peek()

		if r == eof {
			return nil
		}

		if delimiter(r) {
			s := l.Text()
			if numeric(s) {
				l.emit(token.Number, s)
			} else {
				l.emit(token.Symbol, s)
			}

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func scanString(l *T) action {
	n := Quoted(l.bytes[l.first:])
	if n < 0 {
		return nil
	}

	for l.index < l.first+n {
		l.next()
	}

	l.emit(token.String, l.Text())

	return skipWhitespace
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n':
			l.skip()

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			return nil
		case '\n', '\'', '(', ')', '[', ']':
			l.accept(r, w)
			l.emit(r, l.Text())

			continue
		case ';':
			return skipComment
		case '"':
			return scanString
		}

		if unicode.IsSpace(rune(r)) {
			l.accept(r, w)
			l.skip()

			continue
		}

		return scanAtom
	}
}

// Helper functions.

// Interpolated returns the length, in bytes, of the interpolated
// expression at the start of s, including the opening "%(" and closing ")".
// It returns -1 if the expression is not terminated.
func Interpolated(s string) int {
	depth := 0

	for i := 2; i < len(s); i++ {
		switch s[i] {
		case '"':
			n := Quoted(s[i:])
			if n < 0 {
				return -1
			}

			i += n - 1
		case ';':
			for i < len(s) && s[i] != '\n' {
				i++
			}
		case '(', '[':
			depth++
		case ')', ']':
			if depth == 0 {
				return i + 1
			}

			depth--
		}
	}

	return -1
}

// Quoted returns the length, in bytes, of the double quoted string at the
// start of s, including both quotes. It returns -1 if the string is not
// terminated.
func Quoted(s string) int {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '"':
			return i + 1
		case '\\':
			i++
		case '%':
			if strings.HasPrefix(s[i:], "%(") {
				n := Interpolated(s[i:])
				if n < 0 {
					return -1
				}

				i += n - 1
			}
		}
	}

	return -1
}

func delimiter(r token.Class) bool {
	switch r {
	case '"', '\'', '(', ')', ';', '[', ']':
		return true
	}

	return unicode.IsSpace(rune(r))
}

func numeric(s string) bool {
	s = strings.TrimLeft(s, "+-")
	s = strings.TrimPrefix(s, ".")

	return s != "" && s[0] >= '0' && s[0] <= '9'
}
