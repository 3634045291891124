// Released under an MIT license. See LICENSE.

// Package native provides functions that take and return native values.
package native

import (
	"encoding/binary"
	"math"

	"github.com/michaelmacinnis/stein/internal/bridge/types"
	"github.com/michaelmacinnis/stein/internal/common"
	"github.com/michaelmacinnis/stein/internal/common/interface/callable"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/scope"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/validate"
)

const name = "native"

// Function is the Go implementation of a native function. It reads its
// arguments from args and writes its result to ret.
type Function func(args [][]byte, ret []byte) error

// T (native) is a function whose arguments and result are marshalled
// through the type bridge.
type T struct {
	args      []string
	bridge    *types.T
	fn        Function
	label     string
	result    string
	signature string
}

type native = T

// New creates a native function. The first type in signature is the
// result type. The rest are the argument types.
func New(bridge *types.T, label, signature string, fn Function) (*native, error) {
	ts, err := types.Split(signature)
	if err != nil {
		return nil, err
	}

	if len(ts) == 0 {
		return nil, issue.New(issue.TypeBridge, nil, "%s has an empty signature", label)
	}

	for _, t := range ts {
		if _, err := types.SizeOf(t); err != nil {
			return nil, err
		}
	}

	return &native{
		args:      ts[1:],
		bridge:    bridge,
		fn:        fn,
		label:     label,
		result:    ts[0],
		signature: signature,
	}, nil
}

// Apply marshals args, calls the function, and unmarshals the result.
func (n *native) Apply(_ callable.Evaluator, args *list.T, _ scope.I) (cell.I, error) {
	err := validate.Arity(n.label, args.Len(), len(n.args), len(n.args))
	if err != nil {
		return nil, err
	}

	buffers := make([][]byte, len(n.args))

	defer func() {
		for i, b := range buffers {
			if b != nil {
				n.bridge.Release(b, n.args[i])
			}
		}
	}()

	for i, a := range args.Items() {
		size, _ := types.SizeOf(n.args[i])
		buf := make([]byte, size)

		err := n.bridge.ValueToNative(a, n.args[i], buf)
		if err != nil {
			return nil, err
		}

		buffers[i] = buf
	}

	size, _ := types.SizeOf(n.result)
	ret := make([]byte, size)

	err = n.fn(buffers, ret)
	if err != nil {
		return nil, err
	}

	return n.bridge.NativeToValue(ret, n.result)
}

// Bool returns true.
func (n *native) Bool() bool {
	return true
}

// Equal returns true if c is the same native function as n.
func (n *native) Equal(c cell.I) bool {
	o, ok := c.(*native)

	return ok && n == o
}

// EvaluatesOwnArguments returns false.
func (n *native) EvaluatesOwnArguments() bool {
	return false
}

// Name returns the type name for a native function.
func (n *native) Name() string {
	return name
}

// Signature returns the native function's type encoding.
func (n *native) Signature() string {
	return n.signature
}

// String returns a description of n.
func (n *native) String() string {
	return "<" + name + " " + n.label + " " + n.signature + ">"
}

// Superscope returns nil.
func (n *native) Superscope() scope.I {
	return nil
}

// Math returns native versions of common math functions.
func Math(bridge *types.T) (map[string]*native, error) {
	fns := map[string]struct {
		signature string
		fn        Function
	}{
		"hypot": {"ddd", binary64(math.Hypot)},
		"pow":   {"ddd", binary64(math.Pow)},
		"sqrt": {"dd", func(args [][]byte, ret []byte) error {
			put(ret, math.Sqrt(get(args[0])))

			return nil
		}},
	}

	natives := make(map[string]*native, len(fns))

	for label, f := range fns {
		n, err := New(bridge, label, f.signature, f.fn)
		if err != nil {
			return nil, err
		}

		natives[label] = n
	}

	return natives, nil
}

func binary64(f func(x, y float64) float64) Function {
	return func(args [][]byte, ret []byte) error {
		put(ret, f(get(args[0]), get(args[1])))

		return nil
	}
}

func get(b []byte) float64 {
	return math.Float64frombits(binary.NativeEndian.Uint64(b))
}

func put(b []byte, f float64) {
	binary.NativeEndian.PutUint64(b, math.Float64bits(f))
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t native

	// The native type is callable.
	_ = callable.I(&t)

	// The native type is a stringer.
	_ = common.Stringer(&t)
}
