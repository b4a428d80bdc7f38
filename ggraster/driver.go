package ggraster

import (
	"github.com/benoitkugler/denim/internal/blur"
	"github.com/benoitkugler/denim/scene"
	"github.com/fogleman/gg"
	"golang.org/x/image/math/fixed"
)

var (
	_ scene.Driver  = (*driver)(nil) // assert interface conformance
	_ scene.Layerer = (*driver)(nil)
)

type layer struct {
	dc   *gg.Context
	blur float64
}

// driver draws on the top of a stack of contexts:
// the output, then one context per blurred element being drawn.
type driver struct {
	stack []layer
}

func newDriver(dc *gg.Context) *driver {
	return &driver{stack: []layer{{dc: dc}}}
}

func (d *driver) top() *gg.Context { return d.stack[len(d.stack)-1].dc }

func (d *driver) SetupDrawers(willFill, willStroke bool) (f scene.Filler, s scene.Stroker) {
	p := pather{dc: d.top()}
	if willFill {
		f = filler{p}
	}
	if willStroke {
		s = stroker{p}
	}
	return f, s
}

func (d *driver) PushLayer(blurStdDev float64) {
	dc := d.top()
	d.stack = append(d.stack, layer{dc: gg.NewContext(dc.Width(), dc.Height()), blur: blurStdDev})
}

// PopLayer blurs the current layer and draws it on the previous one.
func (d *driver) PopLayer() {
	l := d.stack[len(d.stack)-1]
	d.stack = d.stack[:len(d.stack)-1]
	img := (&Image{dc: l.dc}).ToRGBAImage()
	blur.Gaussian(img, l.blur)
	d.top().DrawImage(img, 0, 0)
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

// pather implements the path construction
// of a gg context.
type pather struct {
	dc *gg.Context
}

func (p pather) Clear() { p.dc.ClearPath() }

func (p pather) Start(a fixed.Point26_6) {
	p.dc.MoveTo(fixedTof(a))
}

func (p pather) Line(b fixed.Point26_6) {
	p.dc.LineTo(fixedTof(b))
}

func (p pather) QuadBezier(b, c fixed.Point26_6) {
	x1, y1 := fixedTof(b)
	x2, y2 := fixedTof(c)
	p.dc.QuadraticTo(x1, y1, x2, y2)
}

func (p pather) CubeBezier(b, c, d fixed.Point26_6) {
	x1, y1 := fixedTof(b)
	x2, y2 := fixedTof(c)
	x3, y3 := fixedTof(d)
	p.dc.CubicTo(x1, y1, x2, y2, x3, y3)
}

func (p pather) Stop(closeLoop bool) {
	if closeLoop {
		p.dc.ClosePath()
	}
	p.dc.NewSubPath()
}

func (p pather) SetColor(c scene.Color) { p.dc.SetColor(c.NRGBA()) }

type filler struct {
	pather
}

func (f filler) SetWinding(useNonZeroWinding bool) {
	if useNonZeroWinding {
		f.dc.SetFillRule(gg.FillRuleWinding)
	} else {
		f.dc.SetFillRule(gg.FillRuleEvenOdd)
	}
}

func (f filler) Draw() { f.dc.Fill() }

type stroker struct {
	pather
}

var (
	joinToJoin = [...]gg.LineJoin{
		scene.JoinMiter: gg.LineJoinBevel,
		scene.JoinRound: gg.LineJoinRound,
		scene.JoinBevel: gg.LineJoinBevel,
	}

	capToCap = [...]gg.LineCap{
		scene.CapButt:   gg.LineCapButt,
		scene.CapRound:  gg.LineCapRound,
		scene.CapSquare: gg.LineCapSquare,
	}
)

func (s stroker) SetStrokeOptions(options scene.StrokeOptions) {
	s.dc.SetLineWidth(float64(options.LineWidth) / 64)
	s.dc.SetLineCap(capToCap[options.Cap])
	s.dc.SetLineJoin(joinToJoin[options.Join])
}

func (s stroker) Draw() { s.dc.Stroke() }
