// Released under an MIT license. See LICENSE.

// Package types converts between stein values and native memory laid
// out according to Objective-C style type encodings.
package types

import (
	"encoding/binary"
	"math"
	"strings"
	"sync"

	"github.com/google/btree"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/literal"
	"github.com/michaelmacinnis/stein/internal/common/interface/numeric"
	"github.com/michaelmacinnis/stein/internal/common/type/boolean"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/type/null"
	"github.com/michaelmacinnis/stein/internal/common/type/num"
)

const degree = 8

// T (types) is a type bridge: a registry of struct wrappers and a table
// of handles for values passed by reference.
type T struct {
	sync.RWMutex

	handles  *Handles
	wrappers *btree.BTreeG[*Wrapper]
}

type bridge = T

// New creates a type bridge with the standard geometry wrappers registered.
func New() *bridge {
	b := &bridge{
		handles: NewHandles(),
		wrappers: btree.NewG[*Wrapper](degree, func(a, b *Wrapper) bool {
			return a.label < b.label
		}),
	}

	for _, w := range standard() {
		b.Register(w)
	}

	return b
}

// Handles returns the bridge's handle table.
func (b *bridge) Handles() *Handles {
	return b.handles
}

// Lookup returns the wrapper for the struct named label.
func (b *bridge) Lookup(label string) (*Wrapper, bool) {
	b.RLock()
	defer b.RUnlock()

	return b.wrappers.Get(&Wrapper{label: label})
}

// Register adds (or replaces) a wrapper.
func (b *bridge) Register(w *Wrapper) {
	b.Lock()
	defer b.Unlock()

	b.wrappers.ReplaceOrInsert(w)
}

// Wrappers returns the registered wrappers in name order.
func (b *bridge) Wrappers() []*Wrapper {
	b.RLock()
	defer b.RUnlock()

	ws := make([]*Wrapper, 0, b.wrappers.Len())

	b.wrappers.Ascend(func(w *Wrapper) bool {
		ws = append(ws, w)

		return true
	})

	return ws
}

// NativeToValue converts the native value of type t in buf to a stein value.
func (b *bridge) NativeToValue(buf []byte, t string) (cell.I, error) {
	t = strings.TrimLeft(t, qualifiers)

	l, err := LayoutOf(t)
	if err != nil {
		return nil, err
	}

	if len(buf) < l.Size {
		return nil, short(t, l.Size, len(buf))
	}

	e := binary.NativeEndian

	switch t[0] {
	case 'c':
		return num.Int(int(int8(buf[0]))), nil
	case 'C':
		return num.Int(int(buf[0])), nil
	case 's':
		return num.Int(int(int16(e.Uint16(buf)))), nil
	case 'S':
		return num.Int(int(e.Uint16(buf))), nil
	case 'i', 'l':
		return num.Int(int(int32(e.Uint32(buf)))), nil
	case 'I', 'L':
		return num.New(float64(e.Uint32(buf))), nil
	case 'q':
		return num.New(float64(int64(e.Uint64(buf)))), nil
	case 'Q':
		return num.New(float64(e.Uint64(buf))), nil
	case 'f':
		return num.New(float64(math.Float32frombits(e.Uint32(buf)))), nil
	case 'd':
		return num.New(math.Float64frombits(e.Uint64(buf))), nil
	case 'B':
		return boolean.Bool(buf[0] != 0), nil
	case 'v':
		return null.Null, nil
	case '*', '@', '#', ':', '^':
		id := e.Uint64(buf)
		if id == 0 {
			return null.Null, nil
		}

		c, ok := b.handles.Get(id)
		if !ok {
			return nil, issue.New(issue.TypeBridge, nil, "unknown handle %d", id)
		}

		return c, nil
	}

	fields := make([]cell.I, len(l.Fields))

	for i, f := range l.Fields {
		fields[i], err = b.NativeToValue(buf[f.Offset:], f.Type)
		if err != nil {
			return nil, err
		}
	}

	if label, ok := StructName(t); ok {
		if w, ok := b.Lookup(label); ok && w.encoding == t {
			return w.Wrap(fields)
		}
	}

	return list.New(fields...), nil
}

// Release forgets the handles held by the native value of type t in buf.
func (b *bridge) Release(buf []byte, t string) {
	t = strings.TrimLeft(t, qualifiers)

	l, err := LayoutOf(t)
	if err != nil || len(buf) < l.Size {
		return
	}

	switch t[0] {
	case '*', '@', '#', ':', '^':
		if id := binary.NativeEndian.Uint64(buf); id != 0 {
			b.handles.Release(id)
		}

		return
	}

	for _, f := range l.Fields {
		b.Release(buf[f.Offset:], f.Type)
	}
}

// ValueToNative converts c to the native type t and writes it to out.
func (b *bridge) ValueToNative(c cell.I, t string, out []byte) error {
	t = strings.TrimLeft(t, qualifiers)

	l, err := LayoutOf(t)
	if err != nil {
		return err
	}

	if len(out) < l.Size {
		return short(t, l.Size, len(out))
	}

	e := binary.NativeEndian

	switch t[0] {
	case 'B':
		out[0] = 0
		if c.Bool() {
			out[0] = 1
		}

		return nil
	case 'v':
		return nil
	case '*', '@', '#', ':', '^':
		var id uint64
		if !null.Is(c) {
			id = b.handles.Put(c)
		}

		e.PutUint64(out, id)

		return nil
	case '{':
		return b.structure(c, t, l, out)
	}

	f, err := number(c, t)
	if err != nil {
		return err
	}

	switch t[0] {
	case 'c', 'C':
		out[0] = byte(int64(f))
	case 's', 'S':
		e.PutUint16(out, uint16(int64(f)))
	case 'i', 'I', 'l', 'L':
		e.PutUint32(out, uint32(int64(f)))
	case 'q':
		e.PutUint64(out, uint64(int64(f)))
	case 'Q':
		e.PutUint64(out, uint64(f))
	case 'f':
		e.PutUint32(out, math.Float32bits(float32(f)))
	case 'd':
		e.PutUint64(out, math.Float64bits(f))
	}

	return nil
}

func (b *bridge) structure(c cell.I, t string, l Layout, out []byte) error {
	var fields []cell.I

	switch v := c.(type) {
	case Struct:
		if v.Encoding() != t {
			return issue.New(issue.TypeBridge, nil, "cannot convert %s to %s", v.Encoding(), t)
		}

		fields = v.Fields()
	case *list.T:
		fields = v.Items()
	default:
		return issue.New(issue.TypeBridge, nil, "cannot convert %s to %s", literal.String(c), t)
	}

	if len(fields) != len(l.Fields) {
		return issue.New(
			issue.TypeBridge, nil, "%s has %d fields, got %d", t, len(l.Fields), len(fields),
		)
	}

	for i, f := range l.Fields {
		err := b.ValueToNative(fields[i], f.Type, out[f.Offset:])
		if err != nil {
			return err
		}
	}

	return nil
}

func number(c cell.I, t string) (float64, error) {
	if v, ok := c.(*boolean.T); ok {
		if v.Bool() {
			return 1, nil
		}

		return 0, nil
	}

	f, err := numeric.Value(c)
	if err != nil {
		return 0, issue.Wrap(issue.TypeBridge, nil, err, "cannot convert %s to %s", literal.String(c), t)
	}

	return f, nil
}

func short(t string, need, have int) error {
	return issue.New(issue.TypeBridge, nil, "%s needs %d bytes, have %d", t, need, have)
}
