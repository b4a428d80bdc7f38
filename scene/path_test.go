package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestParsePath(t *testing.T) {
	var tts = []struct {
		d        string
		expected Path
	}{
		{"", nil},
		{"M10 20L30 40", Path{MoveTo{10, 20}, LineTo{30, 40}}},
		{"M10,20 30,40z", Path{MoveTo{10, 20}, LineTo{30, 40}, Close{}}},
		{"m10 20l5 5", Path{MoveTo{10, 20}, LineTo{15, 25}}},
		{"m10 20 5 5", Path{MoveTo{10, 20}, LineTo{15, 25}}},
		{"M0 0H10V10h-5v-5", Path{MoveTo{0, 0}, LineTo{10, 0}, LineTo{10, 10}, LineTo{5, 10}, LineTo{5, 5}}},
		{"M0 0Q5 5 10 0T20 0", Path{MoveTo{0, 0}, QuadTo{{5, 5}, {10, 0}}, QuadTo{{15, -5}, {20, 0}}}},
		{"M0 0C0 5 10 5 10 0S20-5 20 0", Path{MoveTo{0, 0}, CubicTo{{0, 5}, {10, 5}, {10, 0}}, CubicTo{{10, -5}, {20, -5}, {20, 0}}}},
		{"M.5.5L1e1-2E-1", Path{MoveTo{0.5, 0.5}, LineTo{10, -0.2}}},
		{"M0 0L10 0ZL0 10", Path{MoveTo{0, 0}, LineTo{10, 0}, Close{}, LineTo{0, 10}}},
		{"M5 5zm1 1", Path{MoveTo{5, 5}, Close{}, MoveTo{6, 6}}},
	}
	for _, tt := range tts {
		t.Run(tt.d, func(t *testing.T) {
			p, err := ParsePath(tt.d)
			test.Error(t, err)
			test.T(t, p, tt.expected)
		})
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, d := range []string{
		"10 20",
		"M10",
		"M10 20L",
		"M10 20 Z 5",
		"M0 0A5 5 0 2 1 10 0",
		"M0 0X",
		"M0 0L--5 2",
	} {
		t.Run(d, func(t *testing.T) {
			_, err := ParsePath(d)
			test.That(t, errors.Is(err, ErrPathSyntax), "expected ErrPathSyntax, got", err)
		})
	}
}

func TestParsePathArc(t *testing.T) {
	// half circle of radius 5 from (0,0) to (10,0)
	p := MustParsePath("M0 0A5 5 0 0 1 10 0")
	test.That(t, len(p) > 2)
	end := p[len(p)-1].(CubicTo)
	test.T(t, end[2], Vec2{10, 0})

	box := p.Bounds()
	test.That(t, math.Abs(box.Min.X) < 1e-6)
	test.That(t, math.Abs(box.Max.X-10) < 1e-6)
	// sweep flag set: the arc goes through negative y
	test.That(t, math.Abs(box.Min.Y+5) < 1e-3, "got", box)
	test.That(t, math.Abs(box.Max.Y) < 1e-6, "got", box)

	// compact flags
	test.T(t, MustParsePath("M0 0a5 5 0 0110 0"), MustParsePath("M0 0a5 5 0 0 1 10 0"))

	// zero radius is a line
	test.T(t, MustParsePath("M0 0A0 5 0 0 1 10 0"), Path{MoveTo{0, 0}, LineTo{10, 0}})
}

func TestPathStringRoundTrip(t *testing.T) {
	for _, d := range []string{
		"M10 20L30 40Z",
		"M0.5 -1.25Q1 2 3 4C5 6 7 8 9 10Z",
		"M1e-05 100000L3 4M5 6L7 8",
	} {
		p := MustParsePath(d)
		test.T(t, p.String(), d)
		test.T(t, MustParsePath(p.String()), p)
	}
}

func TestPathBuilder(t *testing.T) {
	b := NewPathBuilder()
	b.LineTo(Vec2{10, 0}).QuadTo(Vec2{15, 5}, Vec2{10, 10}).Close()
	test.T(t, b.Current(), Vec2{0, 0})
	b.MoveTo(Vec2{20, 20}).CubicTo(Vec2{20, 30}, Vec2{30, 30}, Vec2{30, 20})
	test.T(t, b.Current(), Vec2{30, 20})

	p := b.Path()
	test.T(t, p, Path{
		LineTo{10, 0}, QuadTo{{15, 5}, {10, 10}}, Close{},
		MoveTo{20, 20}, CubicTo{{20, 30}, {30, 30}, {30, 20}},
	})

	// Path returns a copy
	p[0] = Close{}
	test.T(t, b.Path()[0], Operation(LineTo{10, 0}))
}

func TestPathBounds(t *testing.T) {
	test.T(t, Path(nil).Bounds(), Rect{})
	test.T(t, MustParsePath("M10 20L30 -5L0 0").Bounds(), Rect{Vec2{0, -5}, Vec2{30, 20}})

	box := MustParsePath("M0 0Q5 10 10 0").Bounds()
	test.Float(t, box.Max.Y, 5.0)
	test.Float(t, box.W(), 10.0)

	box = ellipsePath(Vec2{50, 50}, 20, 10).Bounds()
	test.That(t, math.Abs(box.Min.X-30) < 1e-9, box)
	test.That(t, math.Abs(box.Max.Y-60) < 1e-9, box)
}

func TestPathTransform(t *testing.T) {
	p := MustParsePath("M0 0L10 0Q10 10 0 10Z")
	q := p.Transform(Identity.Translate(5, 5).Scale(2, 2))
	test.T(t, q, Path{MoveTo{5, 5}, LineTo{25, 5}, QuadTo{{25, 25}, {5, 25}}, Close{}})
	test.T(t, p[1], Operation(LineTo{10, 0})) // unchanged
}

func TestPathFlatten(t *testing.T) {
	subpaths := MustParsePath("M0 0L10 0L10 10zM20 20L30 30").Flatten(1)
	test.T(t, subpaths, []Subpath{
		{Points: []Vec2{{0, 0}, {10, 0}, {10, 10}}, Closed: true},
		{Points: []Vec2{{20, 20}, {30, 30}}},
	})

	subpaths = ellipsePath(Vec2{0, 0}, 10, 10).Flatten(0.5)
	test.T(t, len(subpaths), 1)
	test.That(t, subpaths[0].Closed)
	for _, p := range subpaths[0].Points {
		test.That(t, math.Abs(p.Length()-10) < 0.01, "point", p, "too far from the circle")
	}
	test.That(t, len(subpaths[0].Points) > 60)
}
