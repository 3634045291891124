// Released under an MIT license. See LICENSE.

package types

import (
	"sync"

	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
)

// Handles maps the pointer-sized values passed to native code back to
// the stein values they stand for. Zero is never used.
type Handles struct {
	sync.RWMutex

	last   uint64
	values map[uint64]cell.I
}

// NewHandles creates an empty handle table.
func NewHandles() *Handles {
	return &Handles{values: map[uint64]cell.I{}}
}

// Get returns the value for the handle id.
func (h *Handles) Get(id uint64) (cell.I, bool) {
	h.RLock()
	defer h.RUnlock()

	c, ok := h.values[id]

	return c, ok
}

// Len returns the number of live handles.
func (h *Handles) Len() int {
	h.RLock()
	defer h.RUnlock()

	return len(h.values)
}

// Put returns a new handle for c.
func (h *Handles) Put(c cell.I) uint64 {
	h.Lock()
	defer h.Unlock()

	h.last++
	h.values[h.last] = c

	return h.last
}

// Release forgets the handle id.
func (h *Handles) Release(id uint64) {
	h.Lock()
	defer h.Unlock()

	delete(h.values, id)
}
