// Package raster implements a raster backend to render scenes
// to images, by wrapping rasterx.
package raster

import (
	"image"
	"io"

	"github.com/benoitkugler/denim/export"
	"github.com/benoitkugler/denim/scene"
	"golang.org/x/image/draw"
)

// ScannerKind selects the rasterx scanner implementation.
type ScannerKind uint8

const (
	// ScannerGV is the default anti-aliasing scanner of rasterx,
	// derived from the golang.org/x/image/vector rasterizer.
	ScannerGV ScannerKind = iota
	// ScannerScanx uses the scanx span-based scanner,
	// which is faster for large, simple shapes.
	ScannerScanx
)

func (s ScannerKind) String() string {
	switch s {
	case ScannerGV:
		return "gv"
	case ScannerScanx:
		return "scanx"
	default:
		return "<unknown ScannerKind>"
	}
}

// Settings configures the raster backend.
// The background defaults to transparent.
type Settings struct {
	scene.RenderSettings
	Scanner ScannerKind
}

// Image is the output of the raster backend.
type Image struct {
	rgba *image.RGBA
}

var _ scene.ImageConverter = (*Image)(nil)

// ToRGBAImage returns the rendered pixels. The image is not copied.
func (img *Image) ToRGBAImage() *image.RGBA { return img.rgba }

// Renderer is the raster backend.
type Renderer struct{}

var _ scene.Renderer[Settings, *Image] = Renderer{} // assert interface conformance

// Render rasterizes `elements` into a new image of size settings.Size.
func (Renderer) Render(elements []scene.CanvasElement, settings Settings) (*Image, error) {
	if err := settings.Check(); err != nil {
		return nil, err
	}
	w, h := int(settings.Size.X), int(settings.Size.Y)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if bg := settings.Background; bg != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(*bg), image.Point{}, draw.Src)
	}

	d := newDriver(img, settings.Scanner)
	if err := scene.Paint(elements, d); err != nil {
		return nil, err
	}
	scene.Logger().Debug("raster: canvas rendered", "width", w, "height", h, "scanner", settings.Scanner)
	return &Image{rgba: img}, nil
}

// Render is a shortcut for scene.Render(c, Renderer{}, settings)
func Render(c *scene.Canvas, settings Settings) (*Image, error) {
	return scene.Render[Settings, *Image](c, Renderer{}, settings)
}

// ImageWriter returns an export.Writer encoding the rendered image
// in the given format (see export.Encode).
func ImageWriter(format string) export.Writer {
	return func(w io.Writer, c *scene.Canvas, settings scene.RenderSettings) error {
		img, err := Render(c, Settings{RenderSettings: settings})
		if err != nil {
			return err
		}
		return export.Encode(w, img.ToRGBAImage(), format)
	}
}

func init() {
	for _, format := range export.ImageFormats {
		export.Register(format, ImageWriter(format))
	}
}
