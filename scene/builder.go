package scene

import "math"

// PathBuilder incrementally builds a Path, tracking the current point.
// The zero value is ready to use, with the pen at the origin.
type PathBuilder struct {
	path    Path
	start   Vec2 // start of the current sub-path
	current Vec2
}

// NewPathBuilder returns an empty builder.
func NewPathBuilder() *PathBuilder { return new(PathBuilder) }

// Current returns the position of the pen.
func (b *PathBuilder) Current() Vec2 { return b.current }

// MoveTo starts a new sub-path at p.
func (b *PathBuilder) MoveTo(p Vec2) *PathBuilder {
	b.path = append(b.path, MoveTo(p))
	b.start, b.current = p, p
	return b
}

// LineTo adds a segment to p.
func (b *PathBuilder) LineTo(p Vec2) *PathBuilder {
	b.path = append(b.path, LineTo(p))
	b.current = p
	return b
}

// QuadTo adds a quadratic bezier curve.
func (b *PathBuilder) QuadTo(ctrl, end Vec2) *PathBuilder {
	b.path = append(b.path, QuadTo{ctrl, end})
	b.current = end
	return b
}

// CubicTo adds a cubic bezier curve.
func (b *PathBuilder) CubicTo(ctrl1, ctrl2, end Vec2) *PathBuilder {
	b.path = append(b.path, CubicTo{ctrl1, ctrl2, end})
	b.current = end
	return b
}

// Close closes the current sub-path, moving the pen back to its start.
func (b *PathBuilder) Close() *PathBuilder {
	b.path = append(b.path, Close{})
	b.current = b.start
	return b
}

// maxDx is the maximum radians a cubic spline can span in an arc approximation.
const maxDx = math.Pi / 8

// ArcTo adds an elliptical arc to end, with the SVG semantics:
// rx and ry are the radii, rotation is the angle (in radians) of the x axis of
// the ellipse, largeArc and sweep select one of the four candidate arcs.
// Radii too small to reach end are scaled up. The arc is approximated
// by cubic bezier curves.
func (b *PathBuilder) ArcTo(rx, ry, rotation float64, largeArc, sweep bool, end Vec2) *PathBuilder {
	start := b.current
	if start == end {
		return b
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return b.LineTo(end)
	}
	cx, cy := findEllipseCenter(&rx, &ry, rotation, start.X, start.Y, end.X, end.Y, sweep, !largeArc)

	startAngle := math.Atan2(start.Y-cy, start.X-cx) - rotation
	endAngle := math.Atan2(end.Y-cy, end.X-cx) - rotation
	deltaTheta := endAngle - startAngle
	arcBig := math.Abs(deltaTheta) > math.Pi

	etaStart := math.Atan2(math.Sin(startAngle)/ry, math.Cos(startAngle)/rx)
	etaEnd := math.Atan2(math.Sin(endAngle)/ry, math.Cos(endAngle)/rx)
	deltaEta := etaEnd - etaStart
	if arcBig != largeArc {
		if deltaEta < 0 {
			deltaEta += math.Pi * 2
		} else {
			deltaEta -= math.Pi * 2
		}
	}
	// needed if the center of the ellipse is the midpoint of start and end
	if deltaEta < 0 && sweep {
		deltaEta += math.Pi * 2
	} else if deltaEta >= 0 && !sweep {
		deltaEta -= math.Pi * 2
	}

	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	segs := int(math.Abs(deltaEta)/maxDx) + 1
	dEta := deltaEta / float64(segs)
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	sinTheta, cosTheta := math.Sincos(rotation)
	last := start
	lastPrime := ellipsePrime(rx, ry, sinTheta, cosTheta, etaStart)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		p := end // exact end point, without roundoff error
		if i != segs {
			p = ellipsePointAt(rx, ry, sinTheta, cosTheta, eta, cx, cy)
		}
		prime := ellipsePrime(rx, ry, sinTheta, cosTheta, eta)
		b.CubicTo(last.Add(lastPrime.Scale(alpha)), p.Sub(prime.Scale(alpha)), p)
		last, lastPrime = p, prime
	}
	return b
}

// Path returns a copy of the path built so far.
func (b *PathBuilder) Path() Path {
	return append(Path(nil), b.path...)
}

// ellipsePrime gives tangent vectors for parameterized elipse; a, b, radii, eta parameter
func ellipsePrime(a, b, sinTheta, cosTheta, eta float64) Vec2 {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	return Vec2{-aSinEta*cosTheta - bCosEta*sinTheta, -aSinEta*sinTheta + bCosEta*cosTheta}
}

// ellipsePointAt gives points for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) Vec2 {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	return Vec2{cx + aCosEta*cosTheta - bSinEta*sinTheta, cy + aCosEta*sinTheta + bSinEta*cosTheta}
}

// findEllipseCenter locates the center of the ellipse if it exists. If it does not exist,
// the radius values are increased minimally for a solution to be possible
// while preserving the ra to rb ratio.
// This method uses coordinate transformations to reduce the problem to finding
// the center of a circle that includes the origin and an arbitrary point.
func findEllipseCenter(ra, rb *float64, rotX, startX, startY, endX, endY float64, sweep, smallArc bool) (cx, cy float64) {
	sin, cos := math.Sincos(rotX)

	// Move origin to start point
	nx, ny := endX-startX, endY-startY

	// Rotate ellipse x-axis to coordinate x-axis
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	// Scale X dimension so that ra = rb
	nx *= *rb / *ra

	midX, midY := nx/2, ny/2
	midlenSq := midX*midX + midY*midY

	var hr float64
	if *rb**rb < midlenSq {
		// Requested ellipse does not exist; scale ra, rb to fit.
		nrb := math.Sqrt(midlenSq)
		if *ra == *rb {
			*ra = nrb // prevents roundoff
		} else {
			*ra = *ra * nrb / *rb
		}
		*rb = nrb
	} else {
		hr = math.Sqrt(*rb**rb-midlenSq) / math.Sqrt(midlenSq)
	}
	// if hr is zero, both answers are the same.
	if sweep == smallArc {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}

	// reverse scale
	cx *= *ra / *rb
	// reverse rotate and translate back to original coordinates
	return cx*cos - cy*sin + startX, cx*sin + cy*cos + startY
}
