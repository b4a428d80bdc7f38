package scene

import (
	"math/rand"
	"testing"

	"github.com/tdewolff/test"
)

func randVec(rng *rand.Rand) Vec2 {
	return Vec2{rng.Float64()*200 - 100, rng.Float64()*200 - 100}
}

func (r Rect) contains(p Vec2, eps float64) bool {
	return r.Min.X-eps <= p.X && p.X <= r.Max.X+eps && r.Min.Y-eps <= p.Y && p.Y <= r.Max.Y+eps
}

func TestCurveBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		var curve bezier
		if i%2 == 0 {
			curve = quadBezier{randVec(rng), randVec(rng), randVec(rng)}
		} else {
			curve = cubicBezier{randVec(rng), randVec(rng), randVec(rng), randVec(rng)}
		}
		box := curveBounds(curve)

		// every point is inside, and the box is reached on each side
		var touched Rect
		for j := 0; j <= 1000; j++ {
			p := curve.evaluateCurve(float64(j) / 1000)
			test.That(t, box.contains(p, 1e-9), "point", p, "outside of", box)
			if j == 0 {
				touched = Rect{p, p}
			} else {
				touched = touched.add(p)
			}
		}
		test.That(t, touched.W() >= box.W()-0.01 && touched.H() >= box.H()-0.01, "box", box, "is not tight:", touched)
	}
}

func TestQuadraticRoots(t *testing.T) {
	test.T(t, len(quadraticRoots(1, 0, 1)), 0)
	test.T(t, quadraticRoots(1, -2, 1), []float64{1})
	test.T(t, quadraticRoots(0, 2, -1), []float64{0.5})
	test.T(t, len(quadraticRoots(0, 0, 1)), 0)
	roots := quadraticRoots(1, 0, -4)
	test.T(t, len(roots), 2)
	test.Float(t, roots[0]*roots[1], -4)
}
