// Released under an MIT license. See LICENSE.

package native

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/stein/internal/bridge/types"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/type/num"
	"github.com/michaelmacinnis/stein/internal/common/type/str"
)

func TestMath(t *testing.T) {
	fns, err := Math(types.New())
	if err != nil {
		t.Fatalf("Math failed: %v", err)
	}

	v, err := fns["hypot"].Apply(nil, list.New(num.Int(3), num.Int(4)), nil)
	if err != nil || !v.Equal(num.Int(5)) {
		t.Fatalf("Expected 5; got %v, %v", v, err)
	}

	v, err = fns["sqrt"].Apply(nil, list.New(num.Int(81)), nil)
	if err != nil || !v.Equal(num.Int(9)) {
		t.Fatalf("Expected 9; got %v, %v", v, err)
	}

	_, err = fns["pow"].Apply(nil, list.New(num.Int(2)), nil)
	if !errors.Is(err, issue.ErrArity) {
		t.Fatalf("Expected an arity error; got %v", err)
	}

	_, err = fns["sqrt"].Apply(nil, list.New(str.New("x")), nil)
	if !errors.Is(err, issue.ErrTypeBridge) {
		t.Fatalf("Expected a type bridge error; got %v", err)
	}
}

func TestNew(t *testing.T) {
	b := types.New()

	_, err := New(b, "empty", "", nil)
	if !errors.Is(err, issue.ErrTypeBridge) {
		t.Fatalf("Expected a type bridge error; got %v", err)
	}

	_, err = New(b, "bad", "dz", nil)
	if !errors.Is(err, issue.ErrTypeBridge) {
		t.Fatalf("Expected a type bridge error; got %v", err)
	}

	n, err := New(b, "length", "d{pair=dd}", func(args [][]byte, ret []byte) error {
		put(ret, get(args[0])+get(args[0][8:]))

		return nil
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	v, err := n.Apply(nil, list.New(list.New(num.Int(1), num.Int(2))), nil)
	if err != nil || !v.Equal(num.Int(3)) {
		t.Fatalf("Expected 3; got %v, %v", v, err)
	}
}

func TestArgumentHandlesAreReleased(t *testing.T) {
	b := types.New()

	identity, err := New(b, "identity", "@@", func(args [][]byte, ret []byte) error {
		copy(ret, args[0])

		return nil
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	for range 3 {
		v, err := identity.Apply(nil, list.New(str.New("x")), nil)
		if err != nil || !v.Equal(str.New("x")) {
			t.Fatalf("Expected \"x\"; got %v, %v", v, err)
		}
	}

	fail, err := New(b, "fail", "v@", func(_ [][]byte, _ []byte) error {
		return errors.New("failed")
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = fail.Apply(nil, list.New(str.New("x")), nil)
	if err == nil {
		t.Fatal("Expected an error")
	}

	if n := b.Handles().Len(); n != 0 {
		t.Fatalf("Expected argument handles to be released; got %d", n)
	}
}
