package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

type drawnShape struct {
	kind    string // fill or stroke
	path    Path
	color   Color
	nonZero bool
	options StrokeOptions
}

// recordingDriver stores the shapes sent by Paint
type recordingDriver struct {
	shapes []drawnShape
	layers []float64 // blur of pushed layers, -1 for pops
}

func (d *recordingDriver) SetupDrawers(willFill, willStroke bool) (f Filler, s Stroker) {
	if willFill {
		f = &recordingDrawer{driver: d, kind: "fill"}
	}
	if willStroke {
		s = &recordingDrawer{driver: d, kind: "stroke"}
	}
	return f, s
}

func (d *recordingDriver) PushLayer(blur float64) { d.layers = append(d.layers, blur) }
func (d *recordingDriver) PopLayer()              { d.layers = append(d.layers, -1) }

// sharpDriver does not support layers
type sharpDriver struct{ rec *recordingDriver }

func (d sharpDriver) SetupDrawers(willFill, willStroke bool) (Filler, Stroker) {
	return d.rec.SetupDrawers(willFill, willStroke)
}

type recordingDrawer struct {
	Path
	driver  *recordingDriver
	kind    string
	color   Color
	nonZero bool
	options StrokeOptions
}

func (r *recordingDrawer) SetColor(c Color)                 { r.color = c }
func (r *recordingDrawer) SetWinding(nonZero bool)          { r.nonZero = nonZero }
func (r *recordingDrawer) SetStrokeOptions(o StrokeOptions) { r.options = o }
func (r *recordingDrawer) Draw() {
	r.driver.shapes = append(r.driver.shapes, drawnShape{r.kind, append(Path(nil), r.Path...), r.color, r.nonZero, r.options})
}

var triangle = []Vec2{{0, 0}, {10, 0}, {10, 10}}

func TestPaintOrder(t *testing.T) {
	elements := []CanvasElement{
		NewElement(Polygon{Points: triangle, Fill: &Fill{Color: Red}}),
		NewElement(Polygon{Points: triangle, Fill: &Fill{Color: Blue}}),
	}
	var d recordingDriver
	test.Error(t, Paint(elements, &d))
	test.T(t, len(d.shapes), 2)
	test.T(t, d.shapes[0].color, Red)
	test.T(t, d.shapes[1].color, Blue)
}

func TestPaintFillThenStroke(t *testing.T) {
	elements := []CanvasElement{
		NewElement(Polygon{
			Points: triangle,
			Fill:   &Fill{Color: Red, EvenOdd: true},
			Stroke: &Stroke{Color: Green, Width: 2, Join: JoinRound},
		}),
	}
	var d recordingDriver
	test.Error(t, Paint(elements, &d))
	test.T(t, len(d.shapes), 2)

	fill, stroke := d.shapes[0], d.shapes[1]
	test.T(t, fill.kind, "fill")
	test.That(t, !fill.nonZero)
	test.T(t, fill.path, Path{MoveTo{0, 0}, LineTo{10, 0}, LineTo{10, 10}, Close{}})

	test.T(t, stroke.kind, "stroke")
	test.T(t, stroke.path, fill.path)
	test.T(t, stroke.color, Green)
	test.T(t, stroke.options.LineWidth, fToFixed(2))
	test.T(t, stroke.options.Join, JoinRound)
	test.T(t, stroke.options.Cap, CapButt)
}

func TestPaintPolyLine(t *testing.T) {
	var d recordingDriver
	test.Error(t, Paint([]CanvasElement{NewElement(PolyLine{Points: triangle, Stroke: Stroke{Color: Black, Width: 1}})}, &d))
	test.T(t, len(d.shapes), 1)
	test.T(t, d.shapes[0].kind, "stroke")
	test.T(t, d.shapes[0].path, Path{MoveTo{0, 0}, LineTo{10, 0}, LineTo{10, 10}})
}

func TestPaintSkipsInvisible(t *testing.T) {
	red := &Fill{Color: Red}
	elements := []CanvasElement{
		{}, // zero value
		NewElement(nil),
		NewElement(Blank{}),
		NewElement(Polygon{Points: triangle}), // neither fill nor stroke
		NewElement(Polygon{Points: triangle, Stroke: &Stroke{Color: Red}}), // zero width
		NewElement(Polygon{Points: triangle[:1], Fill: red}),               // degenerate
		NewElement(Polygon{Points: triangle, Fill: red}, WithHidden(true)),
		NewElement(Cluster{Children: []CanvasElement{
			NewElement(Polygon{Points: triangle, Fill: red}),
		}}, WithHidden(true)),
		NewElement(Circle{Radius: 0, Fill: red}),
	}
	var d recordingDriver
	test.Error(t, Paint(elements, &d))
	test.T(t, len(d.shapes), 0)

	// invisible elements do not alter the others
	elements = append(elements, NewElement(Polygon{Points: triangle, Fill: &Fill{Color: Blue}}))
	test.Error(t, Paint(elements, &d))
	test.T(t, len(d.shapes), 1)
	test.T(t, d.shapes[0].color, Blue)
}

func TestPaintTransformAndOpacity(t *testing.T) {
	child := NewElement(Rectangle{
		Origin: Vec2{1, 1},
		Size:   Vec2{1, 2},
		Fill:   &Fill{Color: Red.WithAlpha(0.8)},
		Stroke: &Stroke{Color: Black, Width: 3},
	}, WithTransform(Identity.Scale(2, 2)), WithOpacity(0.5))
	cluster := NewElement(Cluster{Children: []CanvasElement{child}},
		WithTransform(Identity.Translate(10, 20)), WithOpacity(0.5))

	var d recordingDriver
	test.Error(t, Paint([]CanvasElement{cluster}, &d))
	test.T(t, len(d.shapes), 2)
	test.T(t, d.shapes[0].path, Path{MoveTo{12, 22}, LineTo{14, 22}, LineTo{14, 26}, LineTo{12, 26}, Close{}})
	test.That(t, math.Abs(d.shapes[0].color.A-0.2) < 1e-12)
	test.Float(t, d.shapes[1].color.A, 0.25)
	test.T(t, d.shapes[1].options.LineWidth, fToFixed(6))
}

func TestPaintBlur(t *testing.T) {
	elements := []CanvasElement{
		NewElement(Polygon{Points: triangle, Fill: &Fill{Color: Red}}, WithBlur(2), WithTransform(Identity.Scale(3, 3))),
		NewElement(Polygon{Points: triangle, Fill: &Fill{Color: Red}}),
	}
	var d recordingDriver
	test.Error(t, Paint(elements, &d))
	test.T(t, d.layers, []float64{6, -1})
	test.T(t, len(d.shapes), 2)

	// drivers without layers still draw the shapes
	var rec recordingDriver
	test.Error(t, Paint(elements, sharpDriver{&rec}))
	test.T(t, len(rec.shapes), 2)
	test.T(t, len(rec.layers), 0)
}

func TestValidate(t *testing.T) {
	nan := math.NaN()
	var tts = []struct {
		name     string
		elements []CanvasElement
		path     []int
		err      error
	}{
		{"nan point", []CanvasElement{
			NewElement(Polygon{Points: triangle}),
			NewElement(Polygon{Points: []Vec2{{0, 0}, {nan, 1}}}),
		}, []int{1}, ErrNonFinite},
		{"nested", []CanvasElement{
			NewElement(Blank{}),
			NewElement(Cluster{Children: []CanvasElement{
				NewElement(Blank{}),
				NewElement(Circle{Radius: math.Inf(1)}),
			}}),
		}, []int{1, 1}, ErrNonFinite},
		{"negative radius", []CanvasElement{NewElement(Circle{Radius: -1})}, []int{0}, ErrNegative},
		{"negative width", []CanvasElement{NewElement(PolyLine{Stroke: Stroke{Width: -2}})}, []int{0}, ErrNegative},
		{"negative blur", []CanvasElement{NewElement(Blank{}, WithBlur(-1))}, []int{0}, ErrNegative},
		{"nan transform", []CanvasElement{NewElement(Blank{}, WithTransform(Identity.Translate(nan, 0)))}, []int{0}, ErrNonFinite},
		{"hidden nan color", []CanvasElement{NewElement(Ellipse{Fill: &Fill{Color: Color{R: nan}}}, WithHidden(true))}, []int{0}, ErrNonFinite},
		{"nan path", []CanvasElement{NewElement(PathShape{Path: Path{MoveTo{0, 0}, QuadTo{{nan, 0}, {1, 1}}}})}, []int{0}, ErrNonFinite},
		{"overflow after transform", []CanvasElement{
			NewElement(Polygon{Points: []Vec2{{1e200, 0}, {1e200, 10}, {0, 10}}}, WithTransform(Identity.Scale(1e200, 1e200))),
		}, []int{0}, ErrNonFinite},
		{"out of fixed range", []CanvasElement{
			NewElement(Polygon{Points: []Vec2{{0, 0}, {4e7, 0}, {0, 10}}}),
		}, []int{0}, ErrOutOfRange},
		{"out of range in cluster", []CanvasElement{
			NewElement(Cluster{Children: []CanvasElement{
				NewElement(Blank{}),
				NewElement(Circle{Center: Vec2{10, 10}, Radius: 1, Fill: &Fill{}}),
			}}, WithTransform(Identity.Scale(1e7, 1e7))),
		}, []int{0, 1}, ErrOutOfRange},
		{"stroke width out of range", []CanvasElement{
			NewElement(PolyLine{Points: triangle, Stroke: Stroke{Width: 1e8}}),
		}, []int{0}, ErrOutOfRange},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			var d recordingDriver
			err := Paint(tt.elements, &d)
			var renderErr *RenderError
			test.That(t, errors.As(err, &renderErr), "expected a *RenderError, got", err)
			test.T(t, renderErr.Path, tt.path)
			test.That(t, errors.Is(err, tt.err))
			test.T(t, len(d.shapes), 0)
		})
	}
}

func TestValidateDeviceSpace(t *testing.T) {
	// large local coordinates are fine once scaled down
	elements := []CanvasElement{
		NewElement(Polygon{Points: []Vec2{{0, 0}, {1e9, 0}, {0, 1e9}}, Fill: &Fill{Color: Red}}, WithTransform(Identity.Scale(1e-6, 1e-6))),
	}
	var d recordingDriver
	test.Error(t, Paint(elements, &d))
	test.T(t, len(d.shapes), 1)

	// a huge blur is not an error
	test.Error(t, Validate([]CanvasElement{NewElement(Blank{}, WithBlur(1e18))}))
}

func TestRenderErrorMessage(t *testing.T) {
	err := &RenderError{Path: []int{1, 0, 4}, Err: ErrNonFinite}
	test.T(t, err.Error(), "scene: element 1/0/4: non finite value")
	err = &RenderError{Err: ErrEmptySurface}
	test.T(t, err.Error(), "scene: render: empty output surface")
}
