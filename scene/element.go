package scene

import "math"

// Stroke describes how the outline of a shape is painted.
// A zero Width disables the stroke.
type Stroke struct {
	Color Color
	Width float64
	Cap   CapMode
	Join  JoinMode
}

// Fill describes how the interior of a shape is painted.
type Fill struct {
	Color   Color
	EvenOdd bool // use the even-odd rule instead of non-zero winding
}

// Variant is the geometry and style of a CanvasElement.
// The set of variants is closed: Blank, Polygon, PolyLine, Rectangle,
// Circle, Ellipse, PathShape and Cluster.
type Variant interface {
	// outline returns the geometry to paint, in local coordinates
	outline() Path
	// paint returns the style of the shape. Both may be nil.
	paint() (*Fill, *Stroke)
	// check validates the numeric content of the variant.
	check() error
}

// Blank draws nothing.
type Blank struct{}

// Polygon is a closed shape. Fewer than 2 points draws nothing.
type Polygon struct {
	Points []Vec2
	Fill   *Fill
	Stroke *Stroke
}

// PolyLine is an open chain of segments.
type PolyLine struct {
	Points []Vec2
	Stroke Stroke
}

// Rectangle is an axis aligned (in local coordinates) rectangle.
type Rectangle struct {
	Origin Vec2 // top left corner
	Size   Vec2
	Fill   *Fill
	Stroke *Stroke
}

type Circle struct {
	Center Vec2
	Radius float64
	Fill   *Fill
	Stroke *Stroke
}

type Ellipse struct {
	Center Vec2
	Radius Vec2 // horizontal and vertical radii
	Fill   *Fill
	Stroke *Stroke
}

// PathShape paints an arbitrary path.
type PathShape struct {
	Path   Path
	Fill   *Fill
	Stroke *Stroke
}

// Cluster groups elements: its transform, opacity, visibility
// and blur apply to all the children.
type Cluster struct {
	Children []CanvasElement
}

var (
	_ Variant = Blank{}
	_ Variant = Polygon{}
	_ Variant = PolyLine{}
	_ Variant = Rectangle{}
	_ Variant = Circle{}
	_ Variant = Ellipse{}
	_ Variant = PathShape{}
	_ Variant = Cluster{}
)

func (Blank) outline() Path {
	return nil
}

func (Blank) paint() (*Fill, *Stroke) {
	return nil, nil
}

func (Blank) check() error {
	return nil
}

func (p Polygon) outline() Path {
	if len(p.Points) < 2 {
		return nil
	}
	out := make(Path, 0, len(p.Points)+1)
	out = append(out, MoveTo(p.Points[0]))
	for _, pt := range p.Points[1:] {
		out = append(out, LineTo(pt))
	}
	return append(out, Close{})
}

func (p Polygon) paint() (*Fill, *Stroke) {
	return p.Fill, p.Stroke
}

func (p Polygon) check() error {
	if err := checkPoints(p.Points); err != nil {
		return err
	}
	return checkStyle(p.Fill, p.Stroke)
}

func (p PolyLine) outline() Path {
	if len(p.Points) < 2 {
		return nil
	}
	out := make(Path, 0, len(p.Points))
	out = append(out, MoveTo(p.Points[0]))
	for _, pt := range p.Points[1:] {
		out = append(out, LineTo(pt))
	}
	return out
}

func (p PolyLine) paint() (*Fill, *Stroke) {
	return nil, &p.Stroke
}

func (p PolyLine) check() error {
	if err := checkPoints(p.Points); err != nil {
		return err
	}
	return checkStyle(nil, &p.Stroke)
}

func (r Rectangle) outline() Path {
	if r.Size.X == 0 && r.Size.Y == 0 {
		return nil
	}
	x, y, w, h := r.Origin.X, r.Origin.Y, r.Size.X, r.Size.Y
	return Path{
		MoveTo{x, y},
		LineTo{x + w, y},
		LineTo{x + w, y + h},
		LineTo{x, y + h},
		Close{},
	}
}

func (r Rectangle) paint() (*Fill, *Stroke) {
	return r.Fill, r.Stroke
}

func (r Rectangle) check() error {
	if !r.Origin.IsFinite() || !r.Size.IsFinite() {
		return ErrNonFinite
	}
	if r.Size.X < 0 || r.Size.Y < 0 {
		return ErrNegative
	}
	return checkStyle(r.Fill, r.Stroke)
}

func (c Circle) outline() Path {
	return ellipsePath(c.Center, c.Radius, c.Radius)
}

func (c Circle) paint() (*Fill, *Stroke) {
	return c.Fill, c.Stroke
}

func (c Circle) check() error {
	return checkEllipse(c.Center, Vec2{c.Radius, c.Radius}, c.Fill, c.Stroke)
}

func (e Ellipse) outline() Path {
	return ellipsePath(e.Center, e.Radius.X, e.Radius.Y)
}

func (e Ellipse) paint() (*Fill, *Stroke) {
	return e.Fill, e.Stroke
}

func (e Ellipse) check() error {
	return checkEllipse(e.Center, e.Radius, e.Fill, e.Stroke)
}

func (p PathShape) outline() Path {
	return p.Path
}

func (p PathShape) paint() (*Fill, *Stroke) {
	return p.Fill, p.Stroke
}

func (Cluster) outline() Path {
	return nil
}

func (Cluster) paint() (*Fill, *Stroke) {
	return nil, nil
}

// children are checked by Validate
func (Cluster) check() error {
	return nil
}

func (p PathShape) check() error {
	for _, op := range p.Path {
		for _, pt := range op.points() {
			if !pt.IsFinite() {
				return ErrNonFinite
			}
		}
	}
	return checkStyle(p.Fill, p.Stroke)
}

// kappa is the control point distance used to approximate
// a quarter of circle with a cubic bezier.
const kappa = 4 * (math.Sqrt2 - 1) / 3

func ellipsePath(c Vec2, rx, ry float64) Path {
	if rx == 0 || ry == 0 {
		return nil
	}
	kx, ky := rx*kappa, ry*kappa
	return Path{
		MoveTo{c.X + rx, c.Y},
		CubicTo{{c.X + rx, c.Y + ky}, {c.X + kx, c.Y + ry}, {c.X, c.Y + ry}},
		CubicTo{{c.X - kx, c.Y + ry}, {c.X - rx, c.Y + ky}, {c.X - rx, c.Y}},
		CubicTo{{c.X - rx, c.Y - ky}, {c.X - kx, c.Y - ry}, {c.X, c.Y - ry}},
		CubicTo{{c.X + kx, c.Y - ry}, {c.X + rx, c.Y - ky}, {c.X + rx, c.Y}},
		Close{},
	}
}

func checkPoints(points []Vec2) error {
	for _, p := range points {
		if !p.IsFinite() {
			return ErrNonFinite
		}
	}
	return nil
}

func checkEllipse(center, radius Vec2, fill *Fill, stroke *Stroke) error {
	if !center.IsFinite() || !radius.IsFinite() {
		return ErrNonFinite
	}
	if radius.X < 0 || radius.Y < 0 {
		return ErrNegative
	}
	return checkStyle(fill, stroke)
}

func checkStyle(fill *Fill, stroke *Stroke) error {
	if fill != nil && !fill.Color.isFinite() {
		return ErrNonFinite
	}
	if stroke != nil {
		if !stroke.Color.isFinite() || !isFinite(stroke.Width) {
			return ErrNonFinite
		}
		if stroke.Width < 0 {
			return ErrNegative
		}
	}
	return nil
}

// CanvasElement is a Variant with its rendering attributes.
// The zero value is a hidden Blank element: use NewElement
// to build visible ones.
type CanvasElement struct {
	variant   Variant
	transform Matrix
	opacity   float64
	hidden    bool
	blur      float64
}

// ElementOption customizes an element built by NewElement.
type ElementOption func(*CanvasElement)

// WithTransform sets the transform from the element space to the parent space.
func WithTransform(m Matrix) ElementOption {
	return func(e *CanvasElement) { e.transform = m }
}

// WithOpacity multiplies the alpha of the element (and its children) by opacity.
func WithOpacity(opacity float64) ElementOption {
	return func(e *CanvasElement) { e.opacity = opacity }
}

// WithHidden hides the element, and its children.
func WithHidden(hidden bool) ElementOption {
	return func(e *CanvasElement) { e.hidden = hidden }
}

// WithBlur applies a gaussian blur of the given standard deviation,
// in element units. Zero means no blur.
func WithBlur(stdDev float64) ElementOption {
	return func(e *CanvasElement) { e.blur = stdDev }
}

// NewElement returns a visible, opaque element with an identity
// transform, customized by opts. A nil variant is replaced by Blank.
func NewElement(v Variant, opts ...ElementOption) CanvasElement {
	if v == nil {
		v = Blank{}
	}
	e := CanvasElement{variant: v, transform: Identity, opacity: 1}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// Variant returns the content of the element, never nil.
func (e CanvasElement) Variant() Variant {
	if e.variant == nil {
		return Blank{}
	}
	return e.variant
}

func (e CanvasElement) Transform() Matrix { return e.transform }

func (e CanvasElement) Opacity() float64 { return e.opacity }

// Visible returns false for hidden elements and for the zero CanvasElement.
func (e CanvasElement) Visible() bool { return e.variant != nil && !e.hidden }

// Blur returns the blur standard deviation, 0 meaning no blur.
func (e CanvasElement) Blur() float64 { return e.blur }

// check validates the attributes of e, but not its children.
func (e CanvasElement) check() error {
	if !e.transform.isFinite() || !isFinite(e.opacity) || !isFinite(e.blur) {
		return ErrNonFinite
	}
	if e.blur < 0 || e.opacity < 0 {
		return ErrNegative
	}
	return e.Variant().check()
}
