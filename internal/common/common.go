// Released under an MIT license. See LICENSE.

// Package common defines common interfaces
package common

import (
	"fmt"

	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
)

type Stringer = fmt.Stringer

// String returns the printed form of a cell. A nil cell prints as null.
func String(c cell.I) string {
	if c == nil {
		return "null"
	}

	return c.String()
}
