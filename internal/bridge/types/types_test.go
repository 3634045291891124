// Released under an MIT license. See LICENSE.

package types

import (
	"errors"
	"testing"

	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/type/boolean"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/list"
	"github.com/michaelmacinnis/stein/internal/common/type/null"
	"github.com/michaelmacinnis/stein/internal/common/type/num"
	"github.com/michaelmacinnis/stein/internal/common/type/str"
)

func TestSizeOf(t *testing.T) {
	for _, tc := range []struct {
		encoding string
		size     int
	}{
		{"c", 1},
		{"B", 1},
		{"s", 2},
		{"i", 4},
		{"l", 4},
		{"f", 4},
		{"q", 8},
		{"d", 8},
		{"*", 8},
		{"^d", 8},
		{"r^v", 8},
		{"{x=cd}", 16},
		{"{x=dc}", 16},
		{"{x=cs}", 4},
		{PointType, 16},
		{RangeType, 16},
		{RectType, 32},
	} {
		n, err := SizeOf(tc.encoding)
		if err != nil {
			t.Fatalf("SizeOf(%s) failed: %v", tc.encoding, err)
		}

		if n != tc.size {
			t.Fatalf("SizeOf(%s) = %d; want %d", tc.encoding, n, tc.size)
		}
	}

	_, err := SizeOf("z")
	if !errors.Is(err, issue.ErrTypeBridge) {
		t.Fatalf("Expected a type bridge error; got %v", err)
	}
}

func TestLayout(t *testing.T) {
	l, err := LayoutOf("{x=cid}")
	if err != nil {
		t.Fatalf("LayoutOf failed: %v", err)
	}

	offsets := []int{0, 4, 8}
	for i, f := range l.Fields {
		if f.Offset != offsets[i] {
			t.Fatalf("Field %d at offset %d; want %d", i, f.Offset, offsets[i])
		}
	}

	if l.Size != 16 || l.Align != 8 {
		t.Fatalf("Expected size 16 and alignment 8; got %d and %d", l.Size, l.Align)
	}
}

func TestSplit(t *testing.T) {
	types, err := Split("v24@0:8{CGPoint=dd}16")
	if err != nil {
		t.Fatalf("Split failed: %v", err)
	}

	want := []string{"v", "@", ":", "{CGPoint=dd}"}
	if len(types) != len(want) {
		t.Fatalf("Expected %v; got %v", want, types)
	}

	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("Expected %v; got %v", want, types)
		}
	}
}

func roundTrip(t *testing.T, b *T, c cell.I, encoding string) cell.I {
	t.Helper()

	n, err := SizeOf(encoding)
	if err != nil {
		t.Fatalf("SizeOf(%s) failed: %v", encoding, err)
	}

	buf := make([]byte, n)

	err = b.ValueToNative(c, encoding, buf)
	if err != nil {
		t.Fatalf("ValueToNative(%s) failed: %v", encoding, err)
	}

	v, err := b.NativeToValue(buf, encoding)
	if err != nil {
		t.Fatalf("NativeToValue(%s) failed: %v", encoding, err)
	}

	return v
}

func TestRoundTrip(t *testing.T) {
	b := New()

	for _, tc := range []struct {
		encoding string
		value    cell.I
	}{
		{"c", num.Int(-7)},
		{"C", num.Int(200)},
		{"s", num.Int(-300)},
		{"i", num.Int(-70000)},
		{"I", num.Int(70000)},
		{"q", num.Int(-1 << 40)},
		{"f", num.New(1.5)},
		{"d", num.New(3.25)},
		{"B", boolean.True},
		{"@", str.New("handle")},
		{"@", null.Null},
	} {
		v := roundTrip(t, b, tc.value, tc.encoding)
		if !v.Equal(tc.value) {
			t.Fatalf("Round trip through %s: expected %v; got %v", tc.encoding, tc.value, v)
		}
	}
}

func TestStructs(t *testing.T) {
	b := New()

	r := &Rect{Point{1, 2}, Size{3, 4}}

	v := roundTrip(t, b, r, RectType)
	if !v.Equal(r) {
		t.Fatalf("Expected %v; got %v", r, v)
	}

	l := list.New(num.Int(1), num.New(2.5))

	v = roundTrip(t, b, l, "{pair=id}")
	if !v.Equal(l) {
		t.Fatalf("Expected %v; got %v", l, v)
	}

	err := b.ValueToNative(list.New(num.Int(1)), "{pair=id}", make([]byte, 16))
	if !errors.Is(err, issue.ErrTypeBridge) {
		t.Fatalf("Expected a type bridge error; got %v", err)
	}

	err = b.ValueToNative(r, PointType, make([]byte, 16))
	if !errors.Is(err, issue.ErrTypeBridge) {
		t.Fatalf("Expected a type bridge error; got %v", err)
	}
}

func TestShortBuffer(t *testing.T) {
	b := New()

	err := b.ValueToNative(num.Int(1), "d", make([]byte, 4))
	if !errors.Is(err, issue.ErrTypeBridge) {
		t.Fatalf("Expected a type bridge error; got %v", err)
	}

	_, err = b.NativeToValue(make([]byte, 2), "i")
	if !errors.Is(err, issue.ErrTypeBridge) {
		t.Fatalf("Expected a type bridge error; got %v", err)
	}
}

func TestPointer(t *testing.T) {
	b := New()

	p, err := b.NewPointer("d", 3)
	if err != nil {
		t.Fatalf("NewPointer failed: %v", err)
	}

	for i := range 3 {
		err = p.Put(i, num.Int(i*10))
		if err != nil {
			t.Fatalf("Put(%d) failed: %v", i, err)
		}
	}

	v, err := p.Handle("at:", []cell.I{num.Int(2)}, nil)
	if err != nil || !v.Equal(num.Int(20)) {
		t.Fatalf("Expected 20; got %v, %v", v, err)
	}

	_, err = p.At(3)
	if !errors.Is(err, issue.ErrTypeBridge) {
		t.Fatalf("Expected an out of range error; got %v", err)
	}

	if s := p.String(); s != "^d[3]" {
		t.Fatalf("Expected ^d[3]; got %s", s)
	}

	err = p.Free()
	if err != nil {
		t.Fatalf("Free failed: %v", err)
	}

	if p.Bool() {
		t.Fatal("Expected a freed pointer to be false")
	}

	if !errors.Is(p.Free(), issue.ErrTypeBridge) {
		t.Fatal("Expected freeing twice to fail")
	}

	_, err = p.At(0)
	if !errors.Is(err, issue.ErrTypeBridge) {
		t.Fatalf("Expected an error reading freed memory; got %v", err)
	}
}

func TestWrappers(t *testing.T) {
	b := New()

	w, ok := b.Lookup("CGPoint")
	if !ok {
		t.Fatal("Expected a wrapper for CGPoint")
	}

	if w.Size() != 16 || w.Type() != PointType {
		t.Fatalf("Unexpected wrapper %s: size %d, type %s", w.Label(), w.Size(), w.Type())
	}

	if !w.CanWrap(&Point{1, 2}) || w.CanWrap(&Size{1, 2}) {
		t.Fatal("Expected CGPoint to wrap points only")
	}

	v, err := w.Wrap([]cell.I{num.Int(1), num.Int(2)})
	if err != nil || !v.Equal(&Point{1, 2}) {
		t.Fatalf("Expected (1, 2); got %v, %v", v, err)
	}

	if n := len(b.Wrappers()); n != 4 {
		t.Fatalf("Expected 4 standard wrappers; got %d", n)
	}
}

func TestHandlesAreReleased(t *testing.T) {
	b := New()

	p, err := b.NewPointer("@", 2)
	if err != nil {
		t.Fatalf("NewPointer failed: %v", err)
	}

	for range 3 {
		err = p.Put(0, str.New("a"))
		if err != nil {
			t.Fatalf("Put failed: %v", err)
		}
	}

	err = p.Put(1, str.New("b"))
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if n := b.Handles().Len(); n != 2 {
		t.Fatalf("Expected one handle per slot; got %d", n)
	}

	v, err := p.At(0)
	if err != nil || !v.Equal(str.New("a")) {
		t.Fatalf("Expected \"a\"; got %v, %v", v, err)
	}

	err = p.Put(1, null.Null)
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if n := b.Handles().Len(); n != 1 {
		t.Fatalf("Expected null to release a handle; got %d", n)
	}

	err = p.Free()
	if err != nil {
		t.Fatalf("Free failed: %v", err)
	}

	if n := b.Handles().Len(); n != 0 {
		t.Fatalf("Expected free to release every handle; got %d", n)
	}
}
