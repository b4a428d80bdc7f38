package pdfrender

import (
	"github.com/benoitkugler/denim/scene"
	"github.com/jung-kurt/gofpdf"
)

// assert interface conformance
var (
	_ scene.Driver  = (*driver)(nil)
	_ scene.Filler  = (*filler)(nil)
	_ scene.Stroker = (*stroker)(nil)
)

type driver struct {
	pdf *gofpdf.Fpdf
}

func (d *driver) SetupDrawers(willFill, willStroke bool) (f scene.Filler, s scene.Stroker) {
	if willFill {
		f = &filler{pather: pather{pdf: d.pdf}}
	}
	if willStroke {
		s = &stroker{pather: pather{pdf: d.pdf}}
	}
	return f, s
}

// pather records the path, which is only written
// in Draw, once the graphic state has been set:
// PDF forbids color operators inside a path construction.
type pather struct {
	scene.Path
	pdf   *gofpdf.Fpdf
	color scene.Color
}

func (p *pather) SetColor(c scene.Color) { p.color = c }

// writePath replays the recorded path on the page
func (p *pather) writePath() {
	for _, op := range p.Path {
		switch op := op.(type) {
		case scene.MoveTo:
			p.pdf.MoveTo(op.X, op.Y)
		case scene.LineTo:
			p.pdf.LineTo(op.X, op.Y)
		case scene.QuadTo:
			p.pdf.CurveTo(op[0].X, op[0].Y, op[1].X, op[1].Y)
		case scene.CubicTo:
			p.pdf.CurveBezierCubicTo(op[0].X, op[0].Y, op[1].X, op[1].Y, op[2].X, op[2].Y)
		case scene.Close:
			p.pdf.ClosePath()
		}
	}
}

func setFillColor(pdf *gofpdf.Fpdf, c scene.Color) {
	nrgba := c.NRGBA()
	pdf.SetFillColor(int(nrgba.R), int(nrgba.G), int(nrgba.B))
	pdf.SetAlpha(float64(nrgba.A)/255, "Normal")
}

type filler struct {
	pather
	useNonZeroWinding bool
}

func (f *filler) SetWinding(useNonZeroWinding bool) { f.useNonZeroWinding = useNonZeroWinding }

func (f *filler) Draw() {
	setFillColor(f.pdf, f.color)
	f.writePath()
	styleStr := "F*"
	if f.useNonZeroWinding {
		styleStr = "F"
	}
	f.pdf.DrawPath(styleStr)
}

type stroker struct {
	pather
	options scene.StrokeOptions
}

func (s *stroker) SetStrokeOptions(options scene.StrokeOptions) { s.options = options }

func (s *stroker) Draw() {
	nrgba := s.color.NRGBA()
	s.pdf.SetDrawColor(int(nrgba.R), int(nrgba.G), int(nrgba.B))
	s.pdf.SetAlpha(float64(nrgba.A)/255, "Normal")
	s.pdf.SetLineWidth(float64(s.options.LineWidth) / 64)
	s.pdf.SetLineCapStyle(s.options.Cap.String())
	s.pdf.SetLineJoinStyle(s.options.Join.String())
	s.writePath()
	s.pdf.DrawPath("D")
}
