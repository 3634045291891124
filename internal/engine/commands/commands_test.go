// Released under an MIT license. See LICENSE.

package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
	"github.com/michaelmacinnis/stein/internal/common/type/boolean"
	"github.com/michaelmacinnis/stein/internal/common/type/env"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/type/sym"
	"github.com/michaelmacinnis/stein/internal/engine/builtin"
	"github.com/michaelmacinnis/stein/internal/engine/closure"
	evaluator "github.com/michaelmacinnis/stein/internal/engine/eval"
	"github.com/michaelmacinnis/stein/internal/reader"
)

type harness struct {
	eval *evaluator.T
	out  *bytes.Buffer
	root *env.T
	t    *testing.T
}

func setup(t *testing.T) *harness {
	t.Helper()

	h := &harness{
		out:  &bytes.Buffer{},
		root: env.NewModule("test", nil),
		t:    t,
	}

	h.eval = evaluator.New(h.root, sym.NewTable(), nil)

	for _, table := range []map[string]*builtin.T{Syntax(), Functions(h.out, h.out)} {
		for k, v := range table {
			_ = h.root.SetConstant(k, v)
		}
	}

	_ = h.root.SetConstant("true", boolean.True)
	_ = h.root.SetConstant("false", boolean.False)

	return h
}

func (h *harness) evaluate(text string) (cell.I, error) {
	cs, err := reader.Parse(h.eval.Symbols(), text, "test")
	if err != nil {
		return nil, err
	}

	return h.eval.EvaluateAll(cs, h.root)
}

func (h *harness) expect(text, want string) {
	h.t.Helper()

	v, err := h.evaluate(text)
	if err != nil {
		h.t.Fatalf("Evaluating %q failed: %v", text, err)
	}

	if got := literal.String(v); got != want {
		h.t.Fatalf("Evaluating %q: expected %s; got %s", text, want, got)
	}
}

func (h *harness) fail(text string, target error) {
	h.t.Helper()

	_, err := h.evaluate(text)
	if !errors.Is(err, target) {
		h.t.Fatalf("Evaluating %q: expected %v; got %v", text, target, err)
	}
}

func TestAppend(t *testing.T) {
	h := setup(t)

	h.expect("(let l = (list 1))\n(append l 2 3)\nl", "(1 2 3)")
	h.fail("(append 1 2)", issue.ErrType)
}

func TestApply(t *testing.T) {
	h := setup(t)

	h.expect("(apply + (list 1 2 3))", "6")
	h.expect("(apply (func (a b) (- a b)) '(5 3))", "2")
}

func TestArity(t *testing.T) {
	h := setup(t)

	h.fail("(not)", issue.ErrArity)
	h.fail("(not 1 2)", issue.ErrArity)
	h.fail("(quote)", issue.ErrArity)
}

func TestBindings(t *testing.T) {
	h := setup(t)

	h.expect(`(func f (a) (bindings))
(f 1)`, `(("a" 1))`)
}

func TestConst(t *testing.T) {
	h := setup(t)

	h.expect("(const k = 1)", "1")
	h.fail("(set k = 2)", issue.ErrConstant)
	h.fail("(const k 3)", issue.ErrConstant)
	h.expect("k", "1")
}

func TestDefined(t *testing.T) {
	h := setup(t)

	h.expect("(defined x)", "false")
	h.expect("(let x = 1)\n(defined x)", "true")
	h.expect("(unset x)\n(defined x)", "false")
}

func TestFilter(t *testing.T) {
	h := setup(t)

	h.expect("(filter (range 6) (func (x) (= (% x 2) 0)))", "(0 2 4)")
}

func TestFunctionNames(t *testing.T) {
	h := setup(t)

	h.expect("(func named () 1)\nnamed", "(func () 1)")
	h.expect("(let anonymous = (func (x) x))\n(str anonymous)", `"<function anonymous>"`)
}

func TestFunctionMarksDefinition(t *testing.T) {
	h := setup(t)

	cs, err := reader.Parse(h.eval.Symbols(), "(func f (a b) (+ a b))", "test")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	v, err := h.eval.EvaluateAll(cs, h.root)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	f, ok := v.(*closure.T)
	if !ok {
		t.Fatalf("Expected a closure; got %s", literal.String(v))
	}

	if body := f.Body(); !body.Has(list.Definition) || literal.String(body) != "((+ a b))" {
		t.Fatalf("Expected a definition body; got %s", literal.String(body))
	}

	form, _ := cs[0].(*list.T)

	params, _ := form.At(2)
	if l, ok := params.(*list.T); !ok || !l.Has(list.DefinitionParameters) {
		t.Fatalf("Expected marked parameters; got %s", literal.String(params))
	}
}

func TestGensym(t *testing.T) {
	h := setup(t)

	a, err := h.evaluate("(gensym)")
	if err != nil {
		t.Fatalf("gensym failed: %v", err)
	}

	b, err := h.evaluate(`(gensym "tmp")`)
	if err != nil {
		t.Fatalf("gensym failed: %v", err)
	}

	if a.Equal(b) || !strings.HasPrefix(b.String(), "tmp-") {
		t.Fatalf("Expected two distinct symbols; got %v and %v", a, b)
	}
}

func TestLength(t *testing.T) {
	h := setup(t)

	h.expect("(length (list 1 2 3))", "3")
	h.expect(`(length "héllo")`, "5")
	h.fail("(length 1)", issue.ErrType)
}

func TestLike(t *testing.T) {
	h := setup(t)

	h.expect(`(like "main.st" "*.st")`, "true")
	h.expect(`(like "main.go" "*.st")`, "false")
}

func TestNth(t *testing.T) {
	h := setup(t)

	h.expect("(nth (list 1 2 3) 0)", "1")
	h.expect("(nth (list 1 2 3) -1)", "3")
	h.fail("(nth (list 1 2 3) 3)", issue.ErrType)
}

func TestNthReportsIndexAsWritten(t *testing.T) {
	h := setup(t)

	_, err := h.evaluate("(nth (list 1 2 3) -5)")
	if !errors.Is(err, issue.ErrType) || !strings.Contains(err.Error(), "index -5 out of range") {
		t.Fatalf("Expected index -5 in the error; got %v", err)
	}
}

func TestParseAndEval(t *testing.T) {
	h := setup(t)

	h.expect(`(parse "(+ 1 2)")`, "((+ 1 2))")
	h.expect(`(eval (nth (parse "(+ 1 2)") 0))`, "3")
	h.fail(`(parse ")")`, issue.ErrSyntax)
}

func TestRange(t *testing.T) {
	h := setup(t)

	h.expect("(range 3)", "(0 1 2)")
	h.expect("(range 1 4)", "(1 2 3)")
	h.expect("(range 10 0 -3)", "(10 7 4 1)")
	h.expect("(range 0)", "()")
	h.fail("(range 0 1 0)", issue.ErrType)
}

func TestSend(t *testing.T) {
	h := setup(t)

	h.fail(`(send "s" 'length)`, issue.ErrDispatch)
}

func TestStrings(t *testing.T) {
	h := setup(t)

	h.expect(`(concat "a" 1 'b)`, `"a1b"`)
	h.expect(`(str 12)`, `"12"`)
	h.expect(`(type-of 1)`, `"number"`)
	h.expect(`(type-of "s")`, `"string"`)
	h.expect(`(type-of (list))`, `"list"`)
}

func TestVariadicArithmetic(t *testing.T) {
	h := setup(t)

	h.expect("(+)", "0")
	h.expect("(*)", "1")
	h.expect("(/ 2)", "0.5")
	h.expect("(>= 3 3 2)", "true")
	h.expect("(!= 1 2)", "true")
	h.expect(`(= "a" "a")`, "true")
}

func TestWrite(t *testing.T) {
	h := setup(t)

	h.expect(`(print "x" 'y 2)`, "null")
	h.expect(`(debug "x")`, `"x"`)

	if got := h.out.String(); got != "x y 2\n\"x\"\n" {
		t.Fatalf("Unexpected output %q", got)
	}
}
