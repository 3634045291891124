// Released under an MIT license. See LICENSE.

// Package reference defines the interface for stein's variable type.
package reference

import (
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
)

// I (reference) is anything that can hold a value.
type I interface {
	Constant() bool
	Copy() I
	Get() cell.I
	Set(cell.I)
}
