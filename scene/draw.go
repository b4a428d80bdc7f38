package scene

import (
	"golang.org/x/image/math/fixed"
)

// Given a scene, Paint implements how to draw it.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.

// Drawer knows how to do the actual draw operations
// but doesn't need any scene kwowledge.
// In particular, transforms are already applied to the points
// before sending them to the Drawer.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new sub-path at the given point.
	Start(a fixed.Point26_6)

	// Line adds a line from the current point to `b`
	Line(b fixed.Point26_6)

	// QuadBezier adds a quadratic bezier curve to the path
	QuadBezier(b, c fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Stop ends the current sub-path, closing it to its start point
	// if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor sets the color for the current path.
	// The element opacity is already applied to the alpha component.
	SetColor(c Color)

	// Draw fills or strokes the accumulated path using the current settings
	Draw()
}

type Filler interface {
	Drawer

	// Decide to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// Parametrize the stroking style for the current path
	SetStrokeOptions(options StrokeOptions)
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every shape.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	// When both booleans are true, one can assume that the exact same draw operations
	// will be performed on the Filler first and then on the Stroker.
	// This promise may enable the implementation to avoid duplicating filled and stroked paths
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

// Layerer is implemented by drivers supporting blurred elements.
// Every shape drawn between PushLayer and the matching PopLayer
// must be gathered and blurred as a whole, then composited onto
// the previous layer. Layers nest.
//
// Drivers not implementing Layerer draw blurred elements sharp.
type Layerer interface {
	// PushLayer starts a layer with the given gaussian standard deviation,
	// in device units.
	PushLayer(blurStdDev float64)
	PopLayer()
}

// JoinMode type to specify how segments join.
type JoinMode uint8

const (
	JoinMiter JoinMode = iota // default value
	JoinRound
	JoinBevel
)

func (j JoinMode) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return "<unknown JoinMode>"
	}
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	CapButt CapMode = iota // default value
	CapRound
	CapSquare
)

func (c CapMode) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return "<unknown CapMode>"
	}
}

// DefaultMiterLimit is the SVG default.
const DefaultMiterLimit = 4

// StrokeOptions is the device space version of a Stroke,
// as sent to Stroker.SetStrokeOptions.
type StrokeOptions struct {
	LineWidth  fixed.Int26_6 // width of the line, already scaled by the transform
	MiterLimit fixed.Int26_6 // the miter cutoff value for JoinMiter
	Cap        CapMode
	Join       JoinMode
}
