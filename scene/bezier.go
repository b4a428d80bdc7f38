package scene

import "math"

// Curve helpers shared by Bounds and Flatten.

type bezier interface {
	// compute the t zeroing the derivative
	criticalPoints() (tX, tY []float64)
	// compute the point a time t
	evaluateCurve(t float64) Vec2
	// length of the control polygon, an upper bound of the curve length
	hullLength() float64
}

type quadBezier [3]Vec2

// one coordinate of a quadratic curve, expanded as
// (p0 + p2 - 2p1)t^2 + 2(p1 - p0)t + p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// derivative of bezierQuad, as at + b
func quadraticDerivative(p0, p1, p2 float64) (a, b float64) {
	return 2 * (p2 - p1 - (p1 - p0)), 2 * (p1 - p0)
}

// root of at + b, if any
func linearRoots(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

func (cu quadBezier) criticalPoints() (tX, tY []float64) {
	aX, bX := quadraticDerivative(cu[0].X, cu[1].X, cu[2].X)
	aY, bY := quadraticDerivative(cu[0].Y, cu[1].Y, cu[2].Y)
	return linearRoots(aX, bX), linearRoots(aY, bY)
}

func (cu quadBezier) evaluateCurve(t float64) Vec2 {
	return Vec2{bezierQuad(cu[0].X, cu[1].X, cu[2].X, t), bezierQuad(cu[0].Y, cu[1].Y, cu[2].Y, t)}
}

func (cu quadBezier) hullLength() float64 {
	return cu[0].Distance(cu[1]) + cu[1].Distance(cu[2])
}

type cubicBezier [4]Vec2

// one coordinate of a cubic curve, in power basis
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		(p0)
}

// derivative of bezierSpline, as at^2 + bt + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 { // simple line
		return linearRoots(b, c)
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	if d == 0 {
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

func (cu cubicBezier) criticalPoints() (tX, tY []float64) {
	aX, bX, cX := cubicDerivative(cu[0].X, cu[1].X, cu[2].X, cu[3].X)
	aY, bY, cY := cubicDerivative(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y)
	return quadraticRoots(aX, bX, cX), quadraticRoots(aY, bY, cY)
}

func (cu cubicBezier) evaluateCurve(t float64) Vec2 {
	return Vec2{
		bezierSpline(cu[0].X, cu[1].X, cu[2].X, cu[3].X, t),
		bezierSpline(cu[0].Y, cu[1].Y, cu[2].Y, cu[3].Y, t),
	}
}

func (cu cubicBezier) hullLength() float64 {
	return cu[0].Distance(cu[1]) + cu[1].Distance(cu[2]) + cu[2].Distance(cu[3])
}

func curveBounds(curve bezier) Rect {
	start := curve.evaluateCurve(0)
	box := Rect{start, start}.add(curve.evaluateCurve(1))
	resX, resY := curve.criticalPoints()
	for _, t := range append(resX, resY...) {
		// extrema outside the curve
		if !(0 < t && t < 1) {
			continue
		}
		box = box.add(curve.evaluateCurve(t))
	}
	return box
}

// Bounds returns the exact extent of the path (control points
// are not included). It returns the zero Rect for an empty path.
func (p Path) Bounds() Rect {
	var (
		box          Rect
		started      bool
		current, beg Vec2
	)
	extend := func(r Rect) {
		if !started {
			box, started = r, true
		} else {
			box = box.Union(r)
		}
	}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current, beg = Vec2(op), Vec2(op)
			extend(Rect{current, current})
		case LineTo:
			extend(Rect{current, current}.add(Vec2(op)))
			current = Vec2(op)
		case QuadTo:
			extend(curveBounds(quadBezier{current, op[0], op[1]}))
			current = op[1]
		case CubicTo:
			extend(curveBounds(cubicBezier{current, op[0], op[1], op[2]}))
			current = op[2]
		case Close:
			current = beg
		}
	}
	return box
}

// Subpath is a polyline approximation of a sub-path.
type Subpath struct {
	Points []Vec2
	Closed bool
}

// maxCurveSegments bounds the number of segments used for one curve.
const maxCurveSegments = 1000

// Flatten approximates the path by polylines, splitting
// curves in segments no longer than `tolerance` (which must be positive).
func (p Path) Flatten(tolerance float64) []Subpath {
	var (
		out     []Subpath
		current Subpath
		cursor  Vec2
	)
	flush := func(closed bool) {
		if len(current.Points) != 0 {
			current.Closed = closed
			out = append(out, current)
		}
		current = Subpath{}
	}
	ensureStarted := func() {
		if len(current.Points) == 0 {
			current.Points = append(current.Points, cursor)
		}
	}
	addCurve := func(curve bezier) {
		ensureStarted()
		n := int(math.Ceil(curve.hullLength() / tolerance))
		if n < 1 {
			n = 1
		} else if n > maxCurveSegments {
			n = maxCurveSegments
		}
		for i := 1; i <= n; i++ {
			current.Points = append(current.Points, curve.evaluateCurve(float64(i)/float64(n)))
		}
	}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			flush(false)
			cursor = Vec2(op)
			current.Points = append(current.Points, cursor)
		case LineTo:
			ensureStarted()
			cursor = Vec2(op)
			current.Points = append(current.Points, cursor)
		case QuadTo:
			addCurve(quadBezier{cursor, op[0], op[1]})
			cursor = op[1]
		case CubicTo:
			addCurve(cubicBezier{cursor, op[0], op[1], op[2]})
			cursor = op[2]
		case Close:
			if len(current.Points) != 0 {
				cursor = current.Points[0]
			}
			flush(true)
		}
	}
	flush(false)
	return out
}
