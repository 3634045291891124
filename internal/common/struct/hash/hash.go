// Released under an MIT license. See LICENSE.

// Package hash provides stein's name to value mapping type.
package hash

import (
	"sync"

	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/reference"
	"github.com/michaelmacinnis/stein/internal/common/struct/slot"
)

// T (hash) maps names to values. Names are remembered in insertion order.
type T struct {
	sync.RWMutex
	m     map[string]reference.I
	order []string
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{m: map[string]reference.I{}}
}

// Copy creates a new hash with a copy of every reference.
func (h *hash) Copy() *hash {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	fresh := New()
	for _, k := range h.order {
		fresh.m[k] = h.m[k].Copy()
	}

	fresh.order = append(fresh.order, h.order...)

	return fresh
}

// Del frees the name k from any association in the hash h.
func (h *hash) Del(k string) bool {
	if h == nil {
		return false
	}

	h.Lock()
	defer h.Unlock()

	_, ok := h.m[k]
	if !ok {
		return false
	}

	delete(h.m, k)

	for i, v := range h.order {
		if v == k {
			h.order = append(h.order[:i], h.order[i+1:]...)

			break
		}
	}

	return true
}

// Get retrieves the reference associated with the name k in the hash h.
func (h *hash) Get(k string) reference.I {
	if h == nil {
		return nil
	}

	h.RLock()
	defer h.RUnlock()

	return h.m[k]
}

// Put associates the name k with the cell v in the hash h.
// It returns false, and changes nothing, if k is bound to a constant.
func (h *hash) Put(k string, v cell.I) bool {
	h.Lock()
	defer h.Unlock()

	r, ok := h.m[k]
	if !ok {
		h.insert(k, slot.New(v))

		return true
	}

	if r.Constant() {
		return false
	}

	r.Set(v)

	return true
}

// PutConstant associates the name k with the constant v in the hash h.
// It returns false, and changes nothing, if k is already a constant.
func (h *hash) PutConstant(k string, v cell.I) bool {
	h.Lock()
	defer h.Unlock()

	r, ok := h.m[k]
	if !ok {
		h.insert(k, slot.Constant(v))

		return true
	}

	if r.Constant() {
		return false
	}

	h.m[k] = slot.Constant(v)

	return true
}

// Size returns the number of entries in the hash h.
func (h *hash) Size() int {
	h.RLock()
	defer h.RUnlock()

	return len(h.m)
}

// Snapshot returns the names and values in h, in insertion order,
// as they were when the read lock was taken.
func (h *hash) Snapshot() ([]string, []cell.I) {
	h.RLock()
	defer h.RUnlock()

	keys := make([]string, len(h.order))
	values := make([]cell.I, len(h.order))

	for i, k := range h.order {
		keys[i] = k
		values[i] = h.m[k].Get()
	}

	return keys, values
}

func (h *hash) insert(k string, r reference.I) {
	h.m[k] = r
	h.order = append(h.order, k)
}
