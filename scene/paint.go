package scene

import "math"

// maxCoord is the largest magnitude representable in 26.6 fixed point.
const maxCoord = math.MaxInt32 / 64.

// Validate checks the whole element tree, without painting anything.
// The first faulty element is reported as a *RenderError wrapping
// ErrNonFinite, ErrNegative or ErrOutOfRange. Hidden elements are checked too.
//
// Coordinates are checked both in element space and in device space,
// that is after the transforms of the element and its ancestors.
func Validate(elements []CanvasElement) error {
	return validate(elements, nil, Identity)
}

func validate(elements []CanvasElement, parents []int, parent Matrix) error {
	for i, e := range elements {
		m := parent.Mult(e.transform)
		err := e.check()
		if err == nil {
			err = checkDevice(e, m)
		}
		if err != nil {
			path := append(append([]int(nil), parents...), i)
			return &RenderError{Path: path, Err: err}
		}
		if cluster, ok := e.Variant().(Cluster); ok {
			if err := validate(cluster.Children, append(parents, i), m); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkDevice checks that the geometry of `e`, mapped by `m`,
// may be converted to fixed point.
func checkDevice(e CanvasElement, m Matrix) error {
	// large blurs are clamped by drivers
	if e.blur > 0 && !isFinite(e.blur*m.ScaleFactor()) {
		return ErrNonFinite
	}
	v := e.Variant()
	for _, op := range v.outline() {
		for _, p := range op.points() {
			q := m.Apply(p)
			if err := checkDeviceValue(q.X); err != nil {
				return err
			}
			if err := checkDeviceValue(q.Y); err != nil {
				return err
			}
		}
	}
	if _, stroke := v.paint(); stroke != nil {
		return checkDeviceValue(stroke.Width * m.ScaleFactor())
	}
	return nil
}

func checkDeviceValue(f float64) error {
	if !isFinite(f) {
		return ErrNonFinite
	}
	if math.Abs(f) > maxCoord {
		return ErrOutOfRange
	}
	return nil
}

// Paint validates `elements`, then draws them in order on the driver `d`:
// each shape is filled first, then stroked, with the transforms of its
// element and ancestors applied, and its alpha multiplied by their opacities.
// Invisible elements and shapes with neither fill nor stroke are skipped.
//
// Nothing is sent to `d` if the validation fails.
func Paint(elements []CanvasElement, d Driver) error {
	if err := Validate(elements); err != nil {
		return err
	}
	p := painter{driver: d}
	p.layerer, _ = d.(Layerer)
	for _, e := range elements {
		p.paintElement(e, Identity, 1)
	}
	return nil
}

type painter struct {
	driver  Driver
	layerer Layerer // optional
}

func (p painter) paintElement(e CanvasElement, parent Matrix, opacity float64) {
	if !e.Visible() {
		return
	}
	m := parent.Mult(e.transform)
	opacity *= e.opacity

	layered := false
	if e.blur > 0 {
		if p.layerer != nil {
			p.layerer.PushLayer(e.blur * m.ScaleFactor())
			layered = true
		} else {
			Logger().Debug("blur not supported by driver, drawing sharp", "driver", driverName(p.driver))
		}
	}

	switch v := e.variant.(type) {
	case Cluster:
		for _, child := range v.Children {
			p.paintElement(child, m, opacity)
		}
	default:
		p.paintShape(v, m, opacity)
	}

	if layered {
		p.layerer.PopLayer()
	}
}

func (p painter) paintShape(v Variant, m Matrix, opacity float64) {
	path := v.outline()
	if len(path) == 0 {
		return
	}
	fill, stroke := v.paint()
	willFill := fill != nil
	willStroke := stroke != nil && stroke.Width > 0
	if !willFill && !willStroke {
		return
	}

	filler, stroker := p.driver.SetupDrawers(willFill, willStroke)
	if filler != nil {
		filler.Clear()
		filler.SetWinding(!fill.EvenOdd)
		path.drawTo(filler, m)
		filler.SetColor(fill.Color.WithAlpha(fill.Color.A * opacity))
		filler.Draw()
	}
	if stroker != nil {
		stroker.Clear()
		stroker.SetStrokeOptions(StrokeOptions{
			LineWidth:  fToFixed(stroke.Width * m.ScaleFactor()),
			MiterLimit: fToFixed(DefaultMiterLimit),
			Cap:        stroke.Cap,
			Join:       stroke.Join,
		})
		path.drawTo(stroker, m)
		stroker.SetColor(stroke.Color.WithAlpha(stroke.Color.A * opacity))
		stroker.Draw()
	}
}
