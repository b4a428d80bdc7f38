package scene

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Vec2 is a point or a displacement in canvas space.
type Vec2 struct{ X, Y float64 }

func (v Vec2) Add(u Vec2) Vec2 { return Vec2{v.X + u.X, v.Y + u.Y} }

func (v Vec2) Sub(u Vec2) Vec2 { return Vec2{v.X - u.X, v.Y - u.Y} }

func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Length is the distance from the origin of the point
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec2) Distance(u Vec2) float64 { return v.Sub(u).Length() }

// Rotate returns v rotated around the origin by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// IsFinite reports whether both coordinates are neither NaN nor infinite.
func (v Vec2) IsFinite() bool { return isFinite(v.X) && isFinite(v.Y) }

// UVec2 holds unsigned dimensions: X is the width and Y the height.
type UVec2 struct{ X, Y uint32 }

// Size is a shortcut for UVec2{X: width, Y: height}.
func Size(width, height uint32) UVec2 { return UVec2{width, height} }

// Empty reports whether one of the dimensions is zero.
func (u UVec2) Empty() bool { return u.X == 0 || u.Y == 0 }

// Matrix is an affine transform, using the SVG convention:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
type Matrix struct{ A, B, C, D, E, F float64 }

// Identity is the transform which does nothing.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

// Mult returns the transform applying n first, then m.
func (m Matrix) Mult(n Matrix) Matrix {
	return Matrix{
		A: m.A*n.A + m.C*n.B,
		B: m.B*n.A + m.D*n.B,
		C: m.A*n.C + m.C*n.D,
		D: m.B*n.C + m.D*n.D,
		E: m.A*n.E + m.C*n.F + m.E,
		F: m.B*n.E + m.D*n.F + m.F,
	}
}

// Translate appends a translation, applied to points before m.
func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mult(Matrix{1, 0, 0, 1, x, y})
}

// Scale appends a scaling, applied to points before m.
func (m Matrix) Scale(x, y float64) Matrix {
	return m.Mult(Matrix{x, 0, 0, y, 0, 0})
}

// Rotate appends a rotation of theta radians, applied to points before m.
func (m Matrix) Rotate(theta float64) Matrix {
	sin, cos := math.Sincos(theta)
	return m.Mult(Matrix{cos, sin, -sin, cos, 0, 0})
}

// Apply transforms the point p.
func (m Matrix) Apply(p Vec2) Vec2 {
	return Vec2{m.A*p.X + m.C*p.Y + m.E, m.B*p.X + m.D*p.Y + m.F}
}

// ScaleFactor is the mean linear scaling of m, used to scale stroke widths
// and blur radii.
func (m Matrix) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
}

func (m Matrix) isFinite() bool {
	return isFinite(m.A) && isFinite(m.B) && isFinite(m.C) &&
		isFinite(m.D) && isFinite(m.E) && isFinite(m.F)
}

// NewTransform builds the transform which scales, then rotates
// (in radians) and finally translates.
func NewTransform(translate Vec2, rotation float64, scale Vec2) Matrix {
	return Identity.Translate(translate.X, translate.Y).Rotate(rotation).Scale(scale.X, scale.Y)
}

// ToFixed converts p to the 26.6 fixed point representation used by drawers.
func ToFixed(p Vec2) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(p.X * 64)), Y: fixed.Int26_6(math.Round(p.Y * 64))}
}

// FromFixed is the inverse of ToFixed.
func FromFixed(p fixed.Point26_6) Vec2 {
	return Vec2{float64(p.X) / 64, float64(p.Y) / 64}
}

// fToFixed converts a length to 26.6 fixed point.
func fToFixed(f float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(f * 64))
}

func isFinite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

// Rect is an axis aligned rectangle, such as a path extent.
type Rect struct{ Min, Max Vec2 }

// W returns the width of the rectangle.
func (r Rect) W() float64 { return r.Max.X - r.Min.X }

// H returns the height of the rectangle.
func (r Rect) H() float64 { return r.Max.Y - r.Min.Y }

// Union returns the smallest rectangle containing r and s.
func (r Rect) Union(s Rect) Rect {
	return Rect{
		Min: Vec2{math.Min(r.Min.X, s.Min.X), math.Min(r.Min.Y, s.Min.Y)},
		Max: Vec2{math.Max(r.Max.X, s.Max.X), math.Max(r.Max.Y, s.Max.Y)},
	}
}

func (r Rect) add(p Vec2) Rect {
	return r.Union(Rect{p, p})
}
