// Released under an MIT license. See LICENSE.

package types

import (
	"strconv"
	"sync"

	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/scope"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/null"
	"github.com/michaelmacinnis/stein/internal/common/type/num"
	"github.com/michaelmacinnis/stein/internal/common/type/str"
	"github.com/michaelmacinnis/stein/internal/common/validate"
)

// Pointer is a buffer of count native values of one type.
type Pointer struct {
	sync.Mutex

	bridge   *bridge
	count    int
	encoding string
	free     func([]byte) error
	memory   []byte
	size     int
}

// NewPointer allocates memory for count values of type t.
func (b *bridge) NewPointer(t string, count int) (*Pointer, error) {
	if count < 1 {
		return nil, issue.New(issue.TypeBridge, nil, "pointer count must be positive, got %d", count)
	}

	size, err := SizeOf(t)
	if err != nil {
		return nil, err
	}

	memory, free, err := allocate(size * count)
	if err != nil {
		return nil, issue.Wrap(issue.TypeBridge, nil, err, "cannot allocate %d bytes", size*count)
	}

	return &Pointer{
		bridge:   b,
		count:    count,
		encoding: t,
		free:     free,
		memory:   memory,
		size:     size,
	}, nil
}

// At returns the value at index i.
func (p *Pointer) At(i int) (cell.I, error) {
	p.Lock()
	defer p.Unlock()

	b, err := p.element(i)
	if err != nil {
		return nil, err
	}

	return p.bridge.NativeToValue(b, p.encoding)
}

// Bool returns true until the pointer is freed.
func (p *Pointer) Bool() bool {
	p.Lock()
	defer p.Unlock()

	return p.memory != nil
}

// CanHandle returns true if p answers selector.
func (p *Pointer) CanHandle(selector string) bool {
	switch selector {
	case "at:", "at:put:", "count", "free", "setValue:", "type", "value":
		return true
	}

	return false
}

// Count returns the number of values p holds.
func (p *Pointer) Count() int {
	return p.count
}

// Equal returns true if c is the same pointer as p.
func (p *Pointer) Equal(c cell.I) bool {
	o, ok := c.(*Pointer)

	return ok && p == o
}

// Free releases the pointer's memory. Freeing twice is an error.
func (p *Pointer) Free() error {
	p.Lock()
	defer p.Unlock()

	if p.memory == nil {
		return freed()
	}

	for i := 0; i < p.count; i++ {
		p.bridge.Release(p.memory[i*p.size:], p.encoding)
	}

	err := p.free(p.memory)
	p.memory = nil

	return err
}

// Handle answers the message selector.
func (p *Pointer) Handle(selector string, args []cell.I, _ scope.I) (cell.I, error) {
	switch selector {
	case "at:":
		i, err := validate.Index(args[0], p.count)
		if err != nil {
			return nil, err
		}

		return p.At(i)
	case "at:put:":
		i, err := validate.Index(args[0], p.count)
		if err != nil {
			return nil, err
		}

		return p, p.Put(i, args[1])
	case "count":
		return num.Int(p.count), nil
	case "free":
		return null.Null, p.Free()
	case "setValue:":
		return p, p.Put(0, args[0])
	case "type":
		return str.New(p.encoding), nil
	case "value":
		return p.At(0)
	}

	return nil, issue.New(issue.Dispatch, nil, "pointer does not understand %s", selector)
}

// Name returns the type name for a pointer.
func (p *Pointer) Name() string {
	return "pointer"
}

// Put stores c at index i.
func (p *Pointer) Put(i int, c cell.I) error {
	p.Lock()
	defer p.Unlock()

	b, err := p.element(i)
	if err != nil {
		return err
	}

	v := make([]byte, p.size)

	err = p.bridge.ValueToNative(c, p.encoding, v)
	if err != nil {
		return err
	}

	p.bridge.Release(b, p.encoding)
	copy(b, v)

	return nil
}

// String returns a description of the pointer p.
func (p *Pointer) String() string {
	return "^" + p.encoding + "[" + strconv.Itoa(p.count) + "]"
}

// Type returns the type of the values p holds.
func (p *Pointer) Type() string {
	return p.encoding
}

func (p *Pointer) element(i int) ([]byte, error) {
	if p.memory == nil {
		return nil, freed()
	}

	if i < 0 || i >= p.count {
		return nil, issue.New(issue.TypeBridge, nil, "index %d out of range [0:%d]", i, p.count)
	}

	return p.memory[i*p.size : (i+1)*p.size], nil
}

func freed() error {
	return issue.New(issue.TypeBridge, nil, "pointer has been freed")
}
