// Released under an MIT license. See LICENSE.

package parser

import (
	"errors"
	"io"
	"testing"

	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/type/strcode"
	"github.com/michaelmacinnis/stein/internal/common/type/sym"
	"github.com/michaelmacinnis/stein/internal/engine/boot"
	"github.com/michaelmacinnis/stein/internal/reader/lexer"
)

func parse(t *testing.T, s string) ([]cell.I, error) {
	t.Helper()

	l := lexer.New("test")

	l.Scan(s)

	var cs []cell.I

	err := New(sym.NewTable(), func(c cell.I) {
		cs = append(cs, c)
	}, l.Token).Parse()

	return cs, err
}

func render(cs []cell.I) string {
	s := ""
	for _, c := range cs {
		s += literal.String(c) + "\n"
	}

	return s
}

func check(t *testing.T, s string) {
	t.Helper()

	cs, err := parse(t, s)
	if err != nil {
		t.Fatalf("Parsing failed: %v", err)
	}

	p := render(cs)

	cs, err = parse(t, p)
	if err != nil {
		t.Fatalf("Reparsing (%s) failed: %v", p, err)
	}

	r := render(cs)

	if p != r {
		t.Fatalf("Parsed (%s) and reparsed (%s) do not match", p, r)
	}
}

func expect(t *testing.T, s, want string) {
	t.Helper()

	cs, err := parse(t, s)
	if err != nil {
		t.Fatalf("Parsing %q failed: %v", s, err)
	}

	if got := render(cs); got != want {
		t.Fatalf("Parsing %q: expected %q; got %q", s, want, got)
	}
}

func TestBlock(t *testing.T) {
	check(t, "[(print 1)\n(print 2)]\n")
}

func TestBoot(t *testing.T) {
	check(t, boot.Script())
}

func TestImplicitList(t *testing.T) {
	expect(t, "let x = 10\n(if (> x 5) \"big\" \"small\")\n",
		"(let x = 10)\n(if (> x 5) \"big\" \"small\")\n")
}

func TestInterpolation(t *testing.T) {
	cs, err := parse(t, `"sum: %((+ 1 2))!"`+"\n")
	if err != nil {
		t.Fatalf("Parsing failed: %v", err)
	}

	s, ok := cs[0].(*strcode.T)
	if !ok {
		t.Fatalf("Expected a string with code; got %v", cs[0])
	}

	if got := s.Literal(); got != `"sum: %((+ 1 2))!"` {
		t.Fatalf("Unexpected literal %s", got)
	}
}

func TestInterpolationWithTwoExpressions(t *testing.T) {
	_, err := parse(t, "\"%(a\nb)\"\n")
	if err == nil {
		t.Fatal("Expected an error for an interpolation with two expressions")
	}
}

func TestInvalidUTF8(t *testing.T) {
	_, err := parse(t, "(print \"a\xffb\")\n")
	if !errors.Is(err, issue.ErrSyntax) {
		t.Fatalf("Expected a syntax error; got %v", err)
	}

	_, err = parse(t, "\"h\u00e9llo\"\n")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

func TestMalformedNumbers(t *testing.T) {
	for _, s := range []string{"1_000", "1__0", "2.5_0", "1e1_0"} {
		_, err := parse(t, s+"\n")
		if !errors.Is(err, issue.ErrSyntax) {
			t.Fatalf("Parsing %q: expected a syntax error; got %v", s, err)
		}
	}

	expect(t, "_1\n", "_1\n")
}

func TestMultilineList(t *testing.T) {
	expect(t, "(func f (x)\n    (+ x 1))\n", "(func f (x) (+ x 1))\n")
}

func TestNestedLists(t *testing.T) {
	check(t, "(a (b (c [d e])) 'f '(g h))\n")
}

func TestQuoted(t *testing.T) {
	cs, err := parse(t, "'(a b) 'c\n")
	if err != nil {
		t.Fatalf("Parsing failed: %v", err)
	}

	l, ok := cs[0].(*list.T)
	if !ok || l.Len() != 2 {
		t.Fatalf("Expected a two element line; got %v", cs[0])
	}

	q, ok := l.Head().(*list.T)
	if !ok || !q.Has(list.Quoted) {
		t.Fatalf("Expected a quoted list; got %v", l.Head())
	}

	s, ok := l.Items()[1].(*sym.T)
	if !ok || !s.Quoted() {
		t.Fatalf("Expected a quoted symbol; got %v", l.Items()[1])
	}
}

func TestSourceLocations(t *testing.T) {
	cs, err := parse(t, "\n  (a\n   b)\n")
	if err != nil {
		t.Fatalf("Parsing failed: %v", err)
	}

	l := cs[0].(*list.T) //nolint:forcetypeassert

	if l.Loc().Line != 2 || l.Loc().Char != 3 {
		t.Fatalf("Expected list at 2:3; got %s", l.Loc())
	}

	b := l.Items()[1].(*sym.T) //nolint:forcetypeassert

	if b.Loc().Line != 3 || b.Loc().Char != 4 {
		t.Fatalf("Expected symbol at 3:4; got %s", b.Loc())
	}
}

func TestStrings(t *testing.T) {
	expect(t, `"tab\there" "quote\"d"`+"\n", `("tab\there" "quote\"d")`+"\n")
}

func TestUnexpectedClose(t *testing.T) {
	_, err := parse(t, "(a))\n")
	if !errors.Is(err, issue.ErrSyntax) {
		t.Fatalf("Expected a syntax error; got %v", err)
	}
}

func TestUnterminatedList(t *testing.T) {
	_, err := parse(t, "(a (b\n")
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("Expected unexpected EOF; got %v", err)
	}
}
