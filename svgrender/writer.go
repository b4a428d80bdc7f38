package svgrender

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/benoitkugler/denim/scene"
	"github.com/tdewolff/minify/v2"
	"golang.org/x/image/math/fixed"
)

var (
	_ scene.Driver  = (*writer)(nil) // assert interface conformance
	_ scene.Layerer = (*writer)(nil)
)

// writer accumulates the SVG content.
type writer struct {
	buf       bytes.Buffer
	settings  Settings
	precision int
	filterID  int

	// fill waiting for the stroke of the same shape
	pendingFill *fillStyle
}

type fillStyle struct {
	color   scene.Color
	evenOdd bool
}

func newWriter(settings Settings) *writer {
	return &writer{settings: settings, precision: settings.precision()}
}

// dec formats a coordinate, with at most `precision` decimals
func (w *writer) dec(f float64) string {
	if w.settings.IntsOnly {
		return strconv.Itoa(int(math.Round(f)))
	}
	return formatDecimal(f, w.precision)
}

// length formats a stroke width or a blur radius, which are never rounded
// to integers: a thin line must stay visible
func (w *writer) length(f float64) string {
	prec := w.settings.Precision
	if prec <= 0 {
		prec = DefaultPrecision
	}
	return formatDecimal(f, prec)
}

// formatDecimal drops the trailing zeros and the leading zero of
// the fixed point representation of f
func formatDecimal(f float64, prec int) string {
	s := strconv.FormatFloat(f, 'f', prec, 64)
	return string(minify.Decimal([]byte(s), 0))
}

func (w *writer) header() {
	width, height := w.settings.Size.X, w.settings.Size.Y
	fmt.Fprintf(&w.buf, `<svg xmlns="http://www.w3.org/2000/svg" version="1.1" width="%d" height="%d" viewBox="0 0 %d %d">`,
		width, height, width, height)
	if bg := w.settings.Background; bg != nil {
		fmt.Fprintf(&w.buf, `<rect width="%d" height="%d"%s/>`, width, height, colorAttrs("fill", *bg))
	}
}

func (w *writer) footer() {
	w.buf.WriteString("</svg>")
}

// colorAttrs returns the attributes for color and opacity,
// the later being omitted when 1.
func colorAttrs(name string, c scene.Color) string {
	out := fmt.Sprintf(` %s="%s"`, name, c.Hex(false))
	if !c.IsOpaque() {
		out += fmt.Sprintf(` %s-opacity="%s"`, name, formatDecimal(math.Max(c.A, 0), 3))
	}
	return out
}

func (w *writer) SetupDrawers(willFill, willStroke bool) (f scene.Filler, s scene.Stroker) {
	if willFill {
		f = &filler{pather: pather{w: w}, waitStroke: willStroke}
	}
	if willStroke {
		s = &stroker{pather: pather{w: w}}
	}
	return f, s
}

func (w *writer) PushLayer(blurStdDev float64) {
	w.filterID++
	id := fmt.Sprintf("blur%d", w.filterID)
	fmt.Fprintf(&w.buf, `<defs><filter id="%s" x="-50%%" y="-50%%" width="200%%" height="200%%"><feGaussianBlur stdDeviation="%s"/></filter></defs>`,
		id, w.length(blurStdDev))
	fmt.Fprintf(&w.buf, `<g filter="url(#%s)">`, id)
}

func (w *writer) PopLayer() {
	w.buf.WriteString("</g>")
}

// writePath writes the path element, with the given style attributes.
func (w *writer) writePath(path scene.Path, attrs string) {
	w.buf.WriteString(`<path d="`)
	w.writePathData(path)
	w.buf.WriteString(`"`)
	w.buf.WriteString(attrs)
	w.buf.WriteString("/>")
}

func (w *writer) writePathData(path scene.Path) {
	for i, op := range path {
		if i != 0 {
			w.buf.WriteByte(' ')
		}
		switch op := op.(type) {
		case scene.MoveTo:
			fmt.Fprintf(&w.buf, "M%s %s", w.dec(op.X), w.dec(op.Y))
		case scene.LineTo:
			fmt.Fprintf(&w.buf, "L%s %s", w.dec(op.X), w.dec(op.Y))
		case scene.QuadTo:
			fmt.Fprintf(&w.buf, "Q%s %s %s %s", w.dec(op[0].X), w.dec(op[0].Y), w.dec(op[1].X), w.dec(op[1].Y))
		case scene.CubicTo:
			fmt.Fprintf(&w.buf, "C%s %s %s %s %s %s", w.dec(op[0].X), w.dec(op[0].Y),
				w.dec(op[1].X), w.dec(op[1].Y), w.dec(op[2].X), w.dec(op[2].Y))
		case scene.Close:
			w.buf.WriteByte('Z')
		}
	}
}

// pather records the path sent by the painter
type pather struct {
	scene.Path
	w     *writer
	color scene.Color
}

func (p *pather) SetColor(c scene.Color) { p.color = c }

type filler struct {
	pather
	evenOdd    bool
	waitStroke bool // the stroker will write the path
}

func (f *filler) SetWinding(useNonZeroWinding bool) { f.evenOdd = !useNonZeroWinding }

func (f *filler) Draw() {
	style := fillStyle{color: f.color, evenOdd: f.evenOdd}
	if f.waitStroke {
		f.w.pendingFill = &style
		return
	}
	f.w.writePath(f.Path, style.attrs())
}

func (fs fillStyle) attrs() string {
	out := colorAttrs("fill", fs.color)
	if fs.evenOdd {
		out += ` fill-rule="evenodd"`
	}
	return out
}

type stroker struct {
	pather
	options scene.StrokeOptions
}

func (s *stroker) SetStrokeOptions(options scene.StrokeOptions) { s.options = options }

func (s *stroker) Draw() {
	var attrs string
	if fill := s.w.pendingFill; fill != nil {
		attrs = fill.attrs()
		s.w.pendingFill = nil
	} else {
		attrs = ` fill="none"`
	}
	attrs += colorAttrs("stroke", s.color)
	attrs += fmt.Sprintf(` stroke-width="%s"`, s.w.length(fixedToF(s.options.LineWidth)))
	if s.options.Cap != scene.CapButt {
		attrs += fmt.Sprintf(` stroke-linecap="%s"`, s.options.Cap)
	}
	if s.options.Join != scene.JoinMiter {
		attrs += fmt.Sprintf(` stroke-linejoin="%s"`, s.options.Join)
	}
	s.w.writePath(s.Path, attrs)
}

func fixedToF(f fixed.Int26_6) float64 { return float64(f) / 64 }
