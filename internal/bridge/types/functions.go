// Released under an MIT license. See LICENSE.

package types

import (
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/integer"
	"github.com/michaelmacinnis/stein/internal/common/type/num"
	"github.com/michaelmacinnis/stein/internal/common/validate"
	"github.com/michaelmacinnis/stein/internal/engine/builtin"
)

// Functions returns the built-ins that expose the type bridge.
func (b *bridge) Functions() map[string]*builtin.T {
	return map[string]*builtin.T{
		"make-point": builtin.New("make-point", 2, 2, func(c *builtin.Call) (cell.I, error) {
			fs, err := floats(c.Args)
			if err != nil {
				return nil, err
			}

			return &Point{fs[0], fs[1]}, nil
		}),
		"make-range": builtin.New("make-range", 2, 2, func(c *builtin.Call) (cell.I, error) {
			fs, err := floats(c.Args)
			if err != nil {
				return nil, err
			}

			return &Range{fs[0], fs[1]}, nil
		}),
		"make-rect": builtin.New("make-rect", 4, 4, func(c *builtin.Call) (cell.I, error) {
			fs, err := floats(c.Args)
			if err != nil {
				return nil, err
			}

			return &Rect{Point{fs[0], fs[1]}, Size{fs[2], fs[3]}}, nil
		}),
		"make-size": builtin.New("make-size", 2, 2, func(c *builtin.Call) (cell.I, error) {
			fs, err := floats(c.Args)
			if err != nil {
				return nil, err
			}

			return &Size{fs[0], fs[1]}, nil
		}),
		"pointer": builtin.New("pointer", 1, 2, func(c *builtin.Call) (cell.I, error) {
			t, err := validate.Text(c.Args[0])
			if err != nil {
				return nil, err
			}

			count := int64(1)
			if len(c.Args) > 1 {
				count, err = integer.Value(c.Args[1])
				if err != nil {
					return nil, err
				}
			}

			p, err := b.NewPointer(t, int(count))
			if err != nil {
				return nil, err
			}

			return p, nil
		}),
		"sizeof": builtin.New("sizeof", 1, 1, func(c *builtin.Call) (cell.I, error) {
			t, err := validate.Text(c.Args[0])
			if err != nil {
				return nil, err
			}

			n, err := SizeOf(t)
			if err != nil {
				return nil, err
			}

			return num.Int(n), nil
		}),
	}
}
