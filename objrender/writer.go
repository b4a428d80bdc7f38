package objrender

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/benoitkugler/denim/scene"
	"github.com/tdewolff/minify/v2"
)

const precision = 4

// num formats a coordinate with at most `precision` decimals
type num float64

func (f num) String() string {
	s := strconv.FormatFloat(float64(f), 'f', precision, 64)
	s = string(minify.Decimal([]byte(s), 0))
	if s == "" || s == "-0" {
		return "0"
	}
	return s
}

var _ scene.Driver = (*writer)(nil)

type writer struct {
	settings Settings
	obj, mtl strings.Builder

	shapes    int // number of shapes already written, used for the z coordinate
	vertices  int // number of vertices already written
	materials map[scene.Color]string
	strokes   int
}

func newWriter(settings Settings) *writer {
	w := &writer{settings: settings, materials: make(map[scene.Color]string)}
	fmt.Fprintf(&w.obj, "# %dx%d\nmtllib %s\n", settings.Size.X, settings.Size.Y, settings.mtlFilename())
	return w
}

func (w *writer) SetupDrawers(willFill, willStroke bool) (f scene.Filler, s scene.Stroker) {
	z := num(float64(w.shapes) * w.settings.ZOffset)
	w.shapes++
	if willFill {
		f = &filler{pather{w: w, z: z}}
	}
	if willStroke {
		s = &stroker{pather{w: w, z: z}}
	}
	return f, s
}

// useMaterial defines the material for `c`, if needed,
// and selects it.
func (w *writer) useMaterial(c scene.Color) {
	name, ok := w.materials[c]
	if !ok {
		name = materialName(c)
		w.materials[c] = name
		fmt.Fprintf(&w.mtl, "newmtl %s\nKd %s %s %s\nd %s\n", name, num(c.R), num(c.G), num(c.B), num(c.A))
	}
	fmt.Fprintf(&w.obj, "usemtl %s\n", name)
}

// writeVertices writes the points and returns
// the (1-based) index of the first one
func (w *writer) writeVertices(points []scene.Vec2, z num) int {
	first := w.vertices + 1
	for _, p := range points {
		fmt.Fprintf(&w.obj, "v %s %s %s\n", num(p.X), num(p.Y), z)
	}
	w.vertices += len(points)
	return first
}

// writeElement writes a face or line element referencing
// `count` vertices starting at `first`
func (w *writer) writeElement(kind string, first, count int, loop bool) {
	w.obj.WriteString(kind)
	for i := 0; i < count; i++ {
		fmt.Fprintf(&w.obj, " %d", first+i)
	}
	if loop {
		fmt.Fprintf(&w.obj, " %d", first)
	}
	w.obj.WriteByte('\n')
}

// pather records the path, flattened in Draw
type pather struct {
	scene.Path
	w     *writer
	z     num
	color scene.Color
}

func (p *pather) SetColor(c scene.Color) { p.color = c }

func (p *pather) subpaths() []scene.Subpath {
	return p.Flatten(p.w.settings.tolerance())
}

type filler struct{ pather }

// SetWinding is a no-op: holes are not supported
func (f *filler) SetWinding(bool) {}

func (f *filler) Draw() {
	f.w.useMaterial(f.color)
	for _, sub := range f.subpaths() {
		points := sub.Points
		if n := len(points); n > 1 && points[0] == points[n-1] {
			points = points[:n-1]
		}
		if len(points) < 3 { // no area
			continue
		}
		first := f.w.writeVertices(points, f.z)
		f.w.writeElement("f", first, len(points), false)
	}
}

type stroker struct{ pather }

func (s *stroker) SetStrokeOptions(scene.StrokeOptions) { s.w.strokes++ }

func (s *stroker) Draw() {
	s.w.useMaterial(s.color)
	for _, sub := range s.subpaths() {
		points := sub.Points
		loop := sub.Closed
		if n := len(points); loop && n > 1 && points[0] == points[n-1] {
			points = points[:n-1]
		}
		if len(points) < 2 {
			continue
		}
		first := s.w.writeVertices(points, s.z)
		s.w.writeElement("l", first, len(points), loop)
	}
}
