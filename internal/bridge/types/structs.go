// Released under an MIT license. See LICENSE.

package types

import (
	"strconv"

	"github.com/michaelmacinnis/stein/internal/common"
	"github.com/michaelmacinnis/stein/internal/common/interface/cell"
	"github.com/michaelmacinnis/stein/internal/common/interface/handler"
	"github.com/michaelmacinnis/stein/internal/common/interface/numeric"
	"github.com/michaelmacinnis/stein/internal/common/interface/scope"
	"github.com/michaelmacinnis/stein/internal/common/type/boolean"
	"github.com/michaelmacinnis/stein/internal/common/type/issue"
	"github.com/michaelmacinnis/stein/internal/common/type/num"
)

// Struct type encodings.
const (
	PointType = "{CGPoint=dd}"
	RangeType = "{_NSRange=QQ}"
	RectType  = "{CGRect={CGPoint=dd}{CGSize=dd}}"
	SizeType  = "{CGSize=dd}"
)

// Point is a location in two dimensions.
type Point struct {
	X, Y float64
}

// Range is a span of locations.
type Range struct {
	Location, Length float64
}

// Rect is a rectangle with an origin and a size.
type Rect struct {
	Origin Point
	Size   Size
}

// Size is a width and a height.
type Size struct {
	Width, Height float64
}

type reply func(args []cell.I) (cell.I, error)

func answer(selector string, replies map[string]reply, args []cell.I) (cell.I, error) {
	r, ok := replies[selector]
	if !ok {
		return nil, issue.New(issue.Dispatch, nil, "does not understand %s", selector)
	}

	return r(args)
}

func constant(c cell.I) reply {
	return func([]cell.I) (cell.I, error) {
		return c, nil
	}
}

func format(fs ...float64) string {
	s := "{"

	for i, f := range fs {
		if i > 0 {
			s += ", "
		}

		s += strconv.FormatFloat(f, 'g', -1, 64)
	}

	return s + "}"
}

func floats(cs []cell.I) ([]float64, error) {
	fs := make([]float64, len(cs))

	for i, c := range cs {
		f, err := numeric.Value(c)
		if err != nil {
			return nil, err
		}

		fs[i] = f
	}

	return fs, nil
}

// Point.

func (p *Point) replies() map[string]reply {
	return map[string]reply{
		"x": constant(num.New(p.X)),
		"y": constant(num.New(p.Y)),
	}
}

// Bool returns true.
func (p *Point) Bool() bool { return true }

// CanHandle returns true if p answers selector.
func (p *Point) CanHandle(selector string) bool {
	_, ok := p.replies()[selector]

	return ok
}

// Encoding returns the native type of a point.
func (p *Point) Encoding() string { return PointType }

// Equal returns true if c is a point at the same location.
func (p *Point) Equal(c cell.I) bool {
	o, ok := c.(*Point)

	return ok && *p == *o
}

// Fields returns the point's native fields.
func (p *Point) Fields() []cell.I {
	return []cell.I{num.New(p.X), num.New(p.Y)}
}

// Handle answers the message selector.
func (p *Point) Handle(selector string, args []cell.I, _ scope.I) (cell.I, error) {
	return answer(selector, p.replies(), args)
}

// Name returns the type name for a point.
func (p *Point) Name() string { return "point" }

// String returns the text of the point p.
func (p *Point) String() string { return format(p.X, p.Y) }

// Range.

func (r *Range) replies() map[string]reply {
	return map[string]reply{
		"containsLocation:": func(args []cell.I) (cell.I, error) {
			f, err := numeric.Value(args[0])
			if err != nil {
				return nil, err
			}

			return boolean.Bool(f >= r.Location && f < r.Location+r.Length), nil
		},
		"length":   constant(num.New(r.Length)),
		"location": constant(num.New(r.Location)),
		"max":      constant(num.New(r.Location + r.Length)),
	}
}

// Bool returns true if the range r is not empty.
func (r *Range) Bool() bool { return r.Length != 0 }

// CanHandle returns true if r answers selector.
func (r *Range) CanHandle(selector string) bool {
	_, ok := r.replies()[selector]

	return ok
}

// Encoding returns the native type of a range.
func (r *Range) Encoding() string { return RangeType }

// Equal returns true if c is the same range as r.
func (r *Range) Equal(c cell.I) bool {
	o, ok := c.(*Range)

	return ok && *r == *o
}

// Fields returns the range's native fields.
func (r *Range) Fields() []cell.I {
	return []cell.I{num.New(r.Location), num.New(r.Length)}
}

// Handle answers the message selector.
func (r *Range) Handle(selector string, args []cell.I, _ scope.I) (cell.I, error) {
	return answer(selector, r.replies(), args)
}

// Name returns the type name for a range.
func (r *Range) Name() string { return "range" }

// String returns the text of the range r.
func (r *Range) String() string { return format(r.Location, r.Length) }

// Rect.

func (r *Rect) replies() map[string]reply {
	return map[string]reply{
		"containsPoint:": func(args []cell.I) (cell.I, error) {
			p, ok := args[0].(*Point)
			if !ok {
				return nil, issue.New(issue.Type, nil, "expected point, got %s", args[0].Name())
			}

			return boolean.Bool(
				p.X >= r.Origin.X && p.X < r.Origin.X+r.Size.Width &&
					p.Y >= r.Origin.Y && p.Y < r.Origin.Y+r.Size.Height,
			), nil
		},
		"height": constant(num.New(r.Size.Height)),
		"origin": constant(&Point{r.Origin.X, r.Origin.Y}),
		"size":   constant(&Size{r.Size.Width, r.Size.Height}),
		"width":  constant(num.New(r.Size.Width)),
		"x":      constant(num.New(r.Origin.X)),
		"y":      constant(num.New(r.Origin.Y)),
	}
}

// Bool returns true.
func (r *Rect) Bool() bool { return true }

// CanHandle returns true if r answers selector.
func (r *Rect) CanHandle(selector string) bool {
	_, ok := r.replies()[selector]

	return ok
}

// Encoding returns the native type of a rect.
func (r *Rect) Encoding() string { return RectType }

// Equal returns true if c is the same rectangle as r.
func (r *Rect) Equal(c cell.I) bool {
	o, ok := c.(*Rect)

	return ok && *r == *o
}

// Fields returns the rect's native fields.
func (r *Rect) Fields() []cell.I {
	return []cell.I{&Point{r.Origin.X, r.Origin.Y}, &Size{r.Size.Width, r.Size.Height}}
}

// Handle answers the message selector.
func (r *Rect) Handle(selector string, args []cell.I, _ scope.I) (cell.I, error) {
	return answer(selector, r.replies(), args)
}

// Name returns the type name for a rect.
func (r *Rect) Name() string { return "rect" }

// String returns the text of the rect r.
func (r *Rect) String() string {
	return "{" + r.Origin.String() + ", " + r.Size.String() + "}"
}

// Size.

func (s *Size) replies() map[string]reply {
	return map[string]reply{
		"height": constant(num.New(s.Height)),
		"width":  constant(num.New(s.Width)),
	}
}

// Bool returns true.
func (s *Size) Bool() bool { return true }

// CanHandle returns true if s answers selector.
func (s *Size) CanHandle(selector string) bool {
	_, ok := s.replies()[selector]

	return ok
}

// Encoding returns the native type of a size.
func (s *Size) Encoding() string { return SizeType }

// Equal returns true if c is the same size as s.
func (s *Size) Equal(c cell.I) bool {
	o, ok := c.(*Size)

	return ok && *s == *o
}

// Fields returns the size's native fields.
func (s *Size) Fields() []cell.I {
	return []cell.I{num.New(s.Width), num.New(s.Height)}
}

// Handle answers the message selector.
func (s *Size) Handle(selector string, args []cell.I, _ scope.I) (cell.I, error) {
	return answer(selector, s.replies(), args)
}

// Name returns the type name for a size.
func (s *Size) Name() string { return "size" }

// String returns the text of the size s.
func (s *Size) String() string { return format(s.Width, s.Height) }

func standard() []*Wrapper {
	encodings := map[string]func([]cell.I) (cell.I, error){
		PointType: func(fields []cell.I) (cell.I, error) {
			fs, err := floats(fields)
			if err != nil {
				return nil, err
			}

			return &Point{fs[0], fs[1]}, nil
		},
		RangeType: func(fields []cell.I) (cell.I, error) {
			fs, err := floats(fields)
			if err != nil {
				return nil, err
			}

			return &Range{fs[0], fs[1]}, nil
		},
		RectType: func(fields []cell.I) (cell.I, error) {
			p, ok := fields[0].(*Point)
			if !ok {
				return nil, issue.New(issue.TypeBridge, nil, "rect origin must be a point")
			}

			s, ok := fields[1].(*Size)
			if !ok {
				return nil, issue.New(issue.TypeBridge, nil, "rect size must be a size")
			}

			return &Rect{*p, *s}, nil
		},
		SizeType: func(fields []cell.I) (cell.I, error) {
			fs, err := floats(fields)
			if err != nil {
				return nil, err
			}

			return &Size{fs[0], fs[1]}, nil
		},
	}

	ws := make([]*Wrapper, 0, len(encodings))

	for t, build := range encodings {
		w, err := NewWrapper(t, build)
		if err != nil {
			panic(err.Error())
		}

		ws = append(ws, w)
	}

	return ws
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var (
		p  Point
		pt Pointer
		r  Range
		rc Rect
		sz Size
	)

	// Each struct type has a native representation.
	_ = Struct(&p)
	_ = Struct(&r)
	_ = Struct(&rc)
	_ = Struct(&sz)

	// Each struct type answers messages.
	_ = handler.I(&p)
	_ = handler.I(&r)
	_ = handler.I(&rc)
	_ = handler.I(&sz)
	_ = handler.I(&pt)

	// Each struct type is a stringer.
	_ = common.Stringer(&p)
}
