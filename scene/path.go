package scene

import (
	"strconv"
	"strings"

	"golang.org/x/image/math/fixed"
)

// This file defines the basic path structure

// Operation groups the different path commands:
// MoveTo, LineTo, QuadTo, CubicTo and Close.
type Operation interface {
	// points returns the points used by the operation, in drawing order.
	points() []Vec2
	// transform returns the operation with its points mapped by m.
	transform(m Matrix) Operation
}

// MoveTo starts a new sub-path.
type MoveTo Vec2

// LineTo draws a segment from the current point.
type LineTo Vec2

// QuadTo draws a quadratic bezier curve: control point, then end point.
type QuadTo [2]Vec2

// CubicTo draws a cubic bezier curve: two control points, then end point.
type CubicTo [3]Vec2

// Close draws a segment back to the start of the current sub-path.
type Close struct{}

func (op MoveTo) points() []Vec2  { return []Vec2{Vec2(op)} }
func (op LineTo) points() []Vec2  { return []Vec2{Vec2(op)} }
func (op QuadTo) points() []Vec2  { return op[:] }
func (op CubicTo) points() []Vec2 { return op[:] }
func (Close) points() []Vec2      { return nil }

func (op MoveTo) transform(m Matrix) Operation { return MoveTo(m.Apply(Vec2(op))) }
func (op LineTo) transform(m Matrix) Operation { return LineTo(m.Apply(Vec2(op))) }
func (op QuadTo) transform(m Matrix) Operation { return QuadTo{m.Apply(op[0]), m.Apply(op[1])} }
func (op CubicTo) transform(m Matrix) Operation {
	return CubicTo{m.Apply(op[0]), m.Apply(op[1]), m.Apply(op[2])}
}
func (op Close) transform(Matrix) Operation { return op }

// Path describes a sequence of basic operations.
// Higher-level shapes are reduced to a path.
//
// A path may start without a MoveTo, in which case the origin is used.
// Drawing after a Close resumes from the start of the closed sub-path.
type Path []Operation

// drawTo sends the path to `d`, after applying the transform `m`.
// Each sub-path is bracketed by Start and Stop.
func (p Path) drawTo(d Drawer, m Matrix) {
	var (
		open  bool
		start Vec2 // in local space
	)
	tr := func(v Vec2) fixed.Point26_6 { return ToFixed(m.Apply(v)) }
	ensureStarted := func() {
		if !open {
			d.Start(tr(start))
			open = true
		}
	}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			if open {
				d.Stop(false)
			}
			start = Vec2(op)
			d.Start(tr(start))
			open = true
		case LineTo:
			ensureStarted()
			d.Line(tr(Vec2(op)))
		case QuadTo:
			ensureStarted()
			d.QuadBezier(tr(op[0]), tr(op[1]))
		case CubicTo:
			ensureStarted()
			d.CubeBezier(tr(op[0]), tr(op[1]), tr(op[2]))
		case Close:
			if open {
				d.Stop(true)
				open = false
			}
		}
	}
	if open {
		d.Stop(false)
	}
}

// Transform returns a new path, with all the points mapped by m.
func (p Path) Transform(m Matrix) Path {
	out := make(Path, len(p))
	for i, op := range p {
		out[i] = op.transform(m)
	}
	return out
}

// String returns the SVG path data of the path, using absolute commands,
// which may be read back with ParsePath.
func (p Path) String() string {
	var sb strings.Builder
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			sb.WriteByte('M')
			writePoints(&sb, Vec2(op))
		case LineTo:
			sb.WriteByte('L')
			writePoints(&sb, Vec2(op))
		case QuadTo:
			sb.WriteByte('Q')
			writePoints(&sb, op[:]...)
		case CubicTo:
			sb.WriteByte('C')
			writePoints(&sb, op[:]...)
		case Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

func writePoints(sb *strings.Builder, points ...Vec2) {
	for i, p := range points {
		if i != 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.FormatFloat(p.X, 'g', -1, 64))
		sb.WriteByte(' ')
		sb.WriteString(strconv.FormatFloat(p.Y, 'g', -1, 64))
	}
}

// The following methods make *Path a recorder for the draw operations
// sent by Paint: backends which need the whole path before emitting it
// may accumulate it in a Path.

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo(FromFixed(a)))
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo(FromFixed(b)))
}

// QuadBezier adds a quadratic segment to the current curve.
func (p *Path) QuadBezier(b, c fixed.Point26_6) {
	*p = append(*p, QuadTo{FromFixed(b), FromFixed(c)})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d fixed.Point26_6) {
	*p = append(*p, CubicTo{FromFixed(b), FromFixed(c), FromFixed(d)})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}
