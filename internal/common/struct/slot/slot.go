// Released under an MIT license. See LICENSE.

// Package slot provides stein's variable type.
package slot

import (
	"sync"

	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/reference"
)

// T (slot) holds a cell value.
type T struct {
	sync.RWMutex
	c        cell.I
	constant bool
}

type slot = T

// New creates a new slot with the cell c.
func New(c cell.I) *slot {
	return &slot{c: c}
}

// Constant creates a new slot that holds c and is marked constant.
func Constant(c cell.I) *slot {
	return &slot{c: c, constant: true}
}

// Constant returns true if the slot s is marked constant.
func (s *slot) Constant() bool {
	s.RLock()
	defer s.RUnlock()

	return s.constant
}

// Copy creates a new slot with the same cell as slot s.
func (s *slot) Copy() reference.I {
	s.RLock()
	defer s.RUnlock()

	return &slot{c: s.c, constant: s.constant}
}

// Get returns the cell in slot s.
func (s *slot) Get() cell.I {
	s.RLock()
	defer s.RUnlock()

	return s.c
}

// Set replaces the cell in slot s with the cell c.
func (s *slot) Set(c cell.I) {
	s.Lock()
	defer s.Unlock()

	s.c = c
}
