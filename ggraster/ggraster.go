// Package ggraster implements a raster backend built on the
// fogleman/gg 2D drawing context.
//
// It produces images equivalent to the raster package, with a
// different anti-aliasing engine. Miter joins are not supported by gg
// and are drawn as bevel joins.
package ggraster

import (
	"image"

	"github.com/benoitkugler/denim/scene"
	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
)

// Settings configures the gg backend.
// The background defaults to transparent.
type Settings struct {
	scene.RenderSettings
}

// Image is the output of the gg backend. It gives access to
// the gg context, so that callers may keep drawing on it.
type Image struct {
	dc *gg.Context
}

var _ scene.ImageConverter = (*Image)(nil)

// Context returns the drawing context holding the rendered scene.
func (img *Image) Context() *gg.Context { return img.dc }

// ToRGBAImage returns the rendered pixels, without copy when possible.
func (img *Image) ToRGBAImage() *image.RGBA {
	src := img.dc.Image()
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(src.Bounds())
	draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
	return out
}

// Renderer is the gg backend.
type Renderer struct{}

var _ scene.Renderer[Settings, *Image] = Renderer{} // assert interface conformance

// Render draws `elements` on a new gg context of size settings.Size.
func (Renderer) Render(elements []scene.CanvasElement, settings Settings) (*Image, error) {
	if err := settings.Check(); err != nil {
		return nil, err
	}
	dc := gg.NewContext(int(settings.Size.X), int(settings.Size.Y))
	if bg := settings.Background; bg != nil {
		dc.SetColor(*bg)
		dc.Clear()
	}
	if err := scene.Paint(elements, newDriver(dc)); err != nil {
		return nil, err
	}
	return &Image{dc: dc}, nil
}

// Render is a shortcut for scene.Render(c, Renderer{}, settings)
func Render(c *scene.Canvas, settings Settings) (*Image, error) {
	return scene.Render[Settings, *Image](c, Renderer{}, settings)
}
