// Package svgrender converts scenes to SVG documents.
//
// Each shape is written as a <path> element, in painting order,
// with its transform already applied. Blurred elements are wrapped
// in a group using a feGaussianBlur filter.
package svgrender

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"image"
	"io"

	"github.com/benoitkugler/denim/export"
	"github.com/benoitkugler/denim/scene"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/svg"
)

// DefaultPrecision is the number of decimals used when
// Settings.Precision is zero.
const DefaultPrecision = 4

// Settings configures the SVG backend.
// When Background is nil, no background rectangle is written.
type Settings struct {
	scene.RenderSettings

	// IntsOnly rounds all the coordinates to integers
	IntsOnly bool
	// Precision is the maximum number of decimals of the coordinates
	Precision int
	// Minify post-processes the output with the tdewolff SVG minifier
	Minify bool
}

func (s Settings) precision() int {
	if s.IntsOnly {
		return 0
	}
	if s.Precision <= 0 {
		return DefaultPrecision
	}
	return s.Precision
}

// Document is the output of the SVG backend.
type Document struct {
	data          []byte
	raw           []byte // before minification
	width, height int
}

var _ scene.ImageConverter = (*Document)(nil)

// Bytes returns the content of the SVG file.
func (doc *Document) Bytes() []byte { return doc.data }

func (doc *Document) String() string { return string(doc.data) }

// WriteTo implements io.WriterTo
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(doc.data)
	return int64(n), err
}

// ToRGBAImage rasterizes the document with oksvg.
func (doc *Document) ToRGBAImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, doc.width, doc.height))
	icon, err := oksvg.ReadIconStream(bytes.NewReader(doc.raw), oksvg.IgnoreErrorMode)
	if err != nil { // should not happen on our own output
		scene.Logger().Error("svgrender: rasterizing document", "error", err)
		return img
	}
	icon.SetTarget(0, 0, float64(doc.width), float64(doc.height))
	scanner := rasterx.NewScannerGV(doc.width, doc.height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(doc.width, doc.height, scanner), 1)
	return img
}

// Renderer is the SVG backend.
type Renderer struct{}

var _ scene.Renderer[Settings, *Document] = Renderer{} // assert interface conformance

// Render writes `elements` as an SVG document.
func (Renderer) Render(elements []scene.CanvasElement, settings Settings) (*Document, error) {
	if err := settings.Check(); err != nil {
		return nil, err
	}
	w := newWriter(settings)
	w.header()
	if err := scene.Paint(elements, w); err != nil {
		return nil, err
	}
	w.footer()

	doc := &Document{raw: w.buf.Bytes(), width: int(settings.Size.X), height: int(settings.Size.Y)}
	doc.data = doc.raw
	if settings.Minify {
		m := minify.New()
		m.AddFunc("image/svg+xml", svg.Minify)
		out, err := m.Bytes("image/svg+xml", doc.raw)
		if err != nil {
			return nil, &scene.RenderError{Err: fmt.Errorf("minifying svg: %w", err)}
		}
		doc.data = out
	}
	scene.Logger().Debug("svgrender: document written", "bytes", len(doc.data), "minified", settings.Minify)
	return doc, nil
}

// Render is a shortcut for scene.Render(c, Renderer{}, settings)
func Render(c *scene.Canvas, settings Settings) (*Document, error) {
	return scene.Render[Settings, *Document](c, Renderer{}, settings)
}

func writeSVG(w io.Writer, c *scene.Canvas, settings scene.RenderSettings) error {
	doc, err := Render(c, Settings{RenderSettings: settings})
	if err != nil {
		return err
	}
	_, err = doc.WriteTo(w)
	return err
}

func writeSVGZ(w io.Writer, c *scene.Canvas, settings scene.RenderSettings) error {
	doc, err := Render(c, Settings{RenderSettings: settings, Minify: true})
	if err != nil {
		return err
	}
	zw := gzip.NewWriter(w)
	if _, err = doc.WriteTo(zw); err != nil {
		return err
	}
	return zw.Close() // does not close underlying writer
}

func init() {
	export.Register("svg", writeSVG)
	export.Register("svgz", writeSVGZ)
}
