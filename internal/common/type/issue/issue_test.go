// Released under an MIT license. See LICENSE.

package issue

import (
	"errors"
	"io"
	"testing"

	"github.com/michaelmacinnis/stein/internal/common/struct/loc"
)

func TestError(t *testing.T) {
	i := New(Unbound, nil, "%s is not defined", "x")
	if i.Error() != "x is not defined" {
		t.Fatalf("Unexpected message %q", i.Error())
	}

	i = New(Unbound, loc.New("f", 3, 4), "%s is not defined", "x")
	if i.Error() != "f:3:4: x is not defined" {
		t.Fatalf("Unexpected message %q", i.Error())
	}

	if i.Message() != "x is not defined" {
		t.Fatalf("Unexpected message %q", i.Message())
	}
}

func TestIs(t *testing.T) {
	i := New(Syntax, nil, "bad")

	if !errors.Is(i, ErrSyntax) {
		t.Fatal("Expected a syntax error")
	}

	if errors.Is(i, ErrUnbound) {
		t.Fatal("Did not expect an unbound error")
	}
}

func TestLocate(t *testing.T) {
	l := loc.New("f", 1, 1)

	i := New(Type, nil, "bad")
	if Locate(i, l); i.Loc() != l {
		t.Fatal("Expected the location to be set")
	}

	other := loc.New("g", 2, 2)
	if Locate(i, other); i.Loc() != l {
		t.Fatal("Expected the first location to stick")
	}
}

func TestWrap(t *testing.T) {
	i := Wrap(Load, nil, io.ErrUnexpectedEOF, "loading %s", "m")

	if !errors.Is(i, ErrLoad) || !errors.Is(i, io.ErrUnexpectedEOF) {
		t.Fatalf("Expected both kinds to match; got %v", i)
	}
}
