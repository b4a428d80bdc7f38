// Package objrender writes scenes to the Wavefront .obj format.
//
// Each shape is written as a flat polygon, in the z = k*ZOffset plane,
// where k is its painting index, so that the painting order is kept
// as depth. Curves are approximated by line segments.
//
// Fills are written as faces, using one material per color, defined
// in the companion .mtl file. Strokes are written as line elements:
// their width, caps and joins are ignored.
// Holes (even-odd fill rule), blur and backgrounds are not supported.
package objrender

import (
	"io"
	"strings"

	"github.com/benoitkugler/denim/export"
	"github.com/benoitkugler/denim/scene"
)

// Default values used for the zero fields of Settings.
const (
	DefaultTolerance   = 1.
	DefaultMTLFilename = "scene.mtl"
)

// Settings configures the OBJ backend.
// Only the size is used from the common settings: it is
// written as a comment.
type Settings struct {
	scene.RenderSettings

	// ZOffset is the distance between two consecutive shapes.
	ZOffset float64
	// Tolerance is the maximum length of the segments used
	// to approximate curves.
	Tolerance float64
	// MTLFilename is the name of the material file referenced
	// by the .obj content.
	MTLFilename string
}

func (s Settings) tolerance() float64 {
	if s.Tolerance <= 0 {
		return DefaultTolerance
	}
	return s.Tolerance
}

func (s Settings) mtlFilename() string {
	if s.MTLFilename == "" {
		return DefaultMTLFilename
	}
	return s.MTLFilename
}

// Output is the content of the .obj file and of its
// material library.
type Output struct {
	OBJ, MTL string
}

// WriteTo writes the .obj content.
func (out Output) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, out.OBJ)
	return int64(n), err
}

// Renderer is the OBJ backend.
type Renderer struct{}

var _ scene.Renderer[Settings, Output] = Renderer{}

// Render converts `elements` to an .obj model.
func (Renderer) Render(elements []scene.CanvasElement, settings Settings) (Output, error) {
	if err := settings.Check(); err != nil {
		return Output{}, err
	}
	if settings.Background != nil {
		scene.Logger().Debug("objrender: background ignored")
	}
	w := newWriter(settings)
	if err := scene.Paint(elements, w); err != nil {
		return Output{}, err
	}
	if w.strokes != 0 {
		scene.Logger().Warn("objrender: stroke widths ignored", "strokes", w.strokes)
	}
	return Output{OBJ: w.obj.String(), MTL: w.mtl.String()}, nil
}

// Render is a shortcut for scene.Render(c, Renderer{}, settings)
func Render(c *scene.Canvas, settings Settings) (Output, error) {
	return scene.Render[Settings, Output](c, Renderer{}, settings)
}

func writeOBJ(w io.Writer, c *scene.Canvas, settings scene.RenderSettings) error {
	out, err := Render(c, Settings{RenderSettings: settings})
	if err != nil {
		return err
	}
	_, err = out.WriteTo(w)
	return err
}

func init() {
	export.Register("obj", writeOBJ)
}

// materialName returns a name usable in .mtl files
func materialName(c scene.Color) string {
	return "c" + strings.TrimPrefix(c.Hex(true), "#")
}
