// Released under an MIT license. See LICENSE.

package lexer

import (
	"testing"

	"github.com/michaelmacinnis/stein/internal/common/struct/loc"
	"github.com/michaelmacinnis/stein/internal/common/struct/token"
)

func TestBlock(t *testing.T) {
	h := setup(t, "Block")

	h.scan("[(print x)]\n",
		h.literal("["),
		h.literal("("),
		h.symbol("print"),
		h.space(1),
		h.symbol("x"),
		h.literal(")"),
		h.literal("]"),
		h.literal("\n"),
		nil,
	)
}

func TestComment(t *testing.T) {
	h := setup(t, "Comment")

	h.scan("x ; ignored (\ny\n",
		h.symbol("x"),
		h.space(len(" ; ignored (")),
		h.literal("\n"),
		h.symbol("y"),
		h.literal("\n"),
		nil,
	)
}

func TestInterpolation(t *testing.T) {
	h := setup(t, "Interpolation")

	h.scan(`"a %(f ")") b" c`+"\n",
		h.text(`"a %(f ")") b"`),
		h.space(1),
		h.symbol("c"),
		h.literal("\n"),
		nil,
	)
}

func TestList(t *testing.T) {
	h := setup(t, "List")

	h.scan("(+ 1 2)\n",
		h.literal("("),
		h.symbol("+"),
		h.space(1),
		h.number("1"),
		h.space(1),
		h.number("2"),
		h.literal(")"),
		h.literal("\n"),
		nil,
	)
}

func TestMultipleLines(t *testing.T) {
	h := setup(t, "MultipleLines")

	h.scan("let x = 10\n(if x y)\n",
		h.symbol("let"),
		h.space(1),
		h.symbol("x"),
		h.space(1),
		h.symbol("="),
		h.space(1),
		h.number("10"),
		h.literal("\n"),
		h.literal("("),
		h.symbol("if"),
		h.space(1),
		h.symbol("x"),
		h.space(1),
		h.symbol("y"),
		h.literal(")"),
		h.literal("\n"),
		nil,
	)
}

func TestNumbers(t *testing.T) {
	h := setup(t, "Numbers")

	h.scan("-1 +2.5 .5 1e3 -x\n",
		h.number("-1"),
		h.space(1),
		h.number("+2.5"),
		h.space(1),
		h.number(".5"),
		h.space(1),
		h.number("1e3"),
		h.space(1),
		h.symbol("-x"),
		h.literal("\n"),
		nil,
	)
}

func TestQuote(t *testing.T) {
	h := setup(t, "Quote")

	h.scan("'(a b) 'c\n",
		h.literal("'"),
		h.literal("("),
		h.symbol("a"),
		h.space(1),
		h.symbol("b"),
		h.literal(")"),
		h.space(1),
		h.literal("'"),
		h.symbol("c"),
		h.literal("\n"),
		nil,
	)
}

func TestRestartable(t *testing.T) {
	h := setup(t, "Restartable")

	h.scan(`(print "hello`,
		h.literal("("),
		h.symbol("print"),
		h.space(1),
		nil,
	)

	h.scan(` world")`+"\n",
		h.text(`"hello world"`),
		h.literal(")"),
		h.literal("\n"),
		nil,
	)
}

func TestStringEscapes(t *testing.T) {
	h := setup(t, "StringEscapes")

	h.scan(`"say \"hi\""`+"\n",
		h.text(`"say \"hi\""`),
		h.literal("\n"),
		nil,
	)
}

func TestQuoted(t *testing.T) {
	for _, tc := range []struct {
		text string
		want int
	}{
		{`"abc" tail`, 5},
		{`"a\"b"`, 6},
		{`"%(f ")")"`, 10},
		{`"unterminated`, -1},
		{`"%(unterminated"`, -1},
	} {
		if got := Quoted(tc.text); got != tc.want {
			t.Errorf("Quoted(%q) = %d; want %d", tc.text, got, tc.want)
		}
	}
}

func TestPending(t *testing.T) {
	l := New("Pending")

	l.Scan(`x "abc`)

	for l.Token() != nil {
	}

	source, text, ok := l.Pending()
	if !ok {
		t.Fatal("Expected a pending token")
	}

	if text != `"abc` {
		t.Fatalf("Expected pending text %q; got %q", `"abc`, text)
	}

	if source.Char != 3 || source.Line != 1 {
		t.Fatalf("Expected pending token at 1:3; got %s", source.String())
	}
}

type harness struct {
	index  int
	lexer  *T
	source loc.T
	t      *testing.T
}

func setup(t *testing.T, label string) *harness {
	return &harness{
		index: 1,
		lexer: New(label),
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
		t: t,
	}
}

// skip marks positions that produce no token.
var skip = &token.T{} //nolint:gochecknoglobals

func (h *harness) expect(tokens ...*token.T) {
	h.t.Helper()

	for _, e := range tokens {
		if e == skip {
			continue
		}

		a := h.lexer.Token()

		switch {
		case a == nil && e == nil:
			continue
		case a == nil:
			h.t.Fatalf("Expected %v but there are no tokens", e)
		case e == nil:
			h.t.Fatalf("Expected no tokens; got %v", a)
		case *a != *e:
			h.t.Fatalf("Expected %v; got %v", e, a)
		}
	}
}

func (h *harness) literal(s string) *token.T {
	t := h.other(token.Class(s[0]), s)

	if s == "\n" {
		h.index = 1
		h.source.Line++
	}

	return t
}

func (h *harness) number(s string) *token.T {
	return h.other(token.Number, s)
}

func (h *harness) other(id token.Class, s string) *token.T {
	h.source.Char = h.index
	h.index += len(s)

	return token.New(id, s, h.source)
}

func (h *harness) scan(s string, tokens ...*token.T) {
	h.t.Helper()

	h.lexer.Scan(s)
	h.expect(tokens...)
}

func (h *harness) space(n int) *token.T {
	h.index += n

	return skip
}

func (h *harness) symbol(s string) *token.T {
	return h.other(token.Symbol, s)
}

func (h *harness) text(s string) *token.T {
	return h.other(token.String, s)
}
