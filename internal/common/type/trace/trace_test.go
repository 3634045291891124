// Released under an MIT license. See LICENSE.

package trace

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/stein/internal/common/struct/loc"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/type/num"
	"github.com/michaelmacinnis/stein/internal/common/type/signal"
)

func TestFormat(t *testing.T) {
	var err error = issue.New(issue.User, loc.New("f", 1, 2), "boom")

	if got := Format(err); got != "f:1:2: boom" {
		t.Fatalf("Expected the bare message; got %q", got)
	}

	inner := list.New(num.New(1))
	outer := list.New(num.New(2), inner)

	err = Wrap(Wrap(err, inner, loc.New("f", 1, 2)), outer, loc.New("f", 1, 1))

	want := "f:1:2: boom\n    at f:1:2: (1)\n    at f:1:1: (2 (1))"
	if got := Format(err); got != want {
		t.Fatalf("Expected %q; got %q", want, got)
	}
}

func TestFramesInnermostFirst(t *testing.T) {
	a := list.New(num.New(1))
	b := list.New(num.New(2))

	err := Wrap(errors.New("x"), a, loc.New("f", 2, 1))
	err = Wrap(err, b, loc.New("f", 1, 1))

	var tr *T
	if !errors.As(err, &tr) {
		t.Fatalf("Expected a trace; got %T", err)
	}

	fs := tr.Frames()
	if len(fs) != 2 || fs[0].Expression() != a || fs[1].Expression() != b {
		t.Fatalf("Unexpected frames %v", tr.Backtrace())
	}
}

func TestKindSurvives(t *testing.T) {
	err := Wrap(issue.New(issue.Arity, nil, "f: expected 1 argument, passed 2"), list.New(), nil)

	if !errors.Is(err, issue.ErrArity) {
		t.Fatalf("Expected an arity error; got %v", err)
	}

	if err.Error() != "f: expected 1 argument, passed 2" {
		t.Fatalf("Unexpected message %q", err.Error())
	}
}

func TestNil(t *testing.T) {
	if err := Wrap(nil, list.New(), nil); err != nil {
		t.Fatalf("Expected nil; got %v", err)
	}
}

func TestSignalsAreNotWrapped(t *testing.T) {
	s := signal.New(signal.Break, nil)

	if err := Wrap(s, list.New(), nil); err != s {
		t.Fatalf("Expected the signal unchanged; got %v", err)
	}
}
