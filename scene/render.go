package scene

import (
	"fmt"
	"image"
)

// RenderSettings are the settings common to every renderer.
// Backend settings embed it.
type RenderSettings struct {
	// Size is the output size, in pixels (or points for documents).
	// Both dimensions must be positive.
	Size UVec2
	// Background is painted below the elements.
	// When nil, the default of the backend is used (transparent for images).
	Background *Color
}

// Common implements Settings.
func (s RenderSettings) Common() RenderSettings { return s }

// Check returns a *RenderError if the settings can't describe an output surface.
func (s RenderSettings) Check() error {
	if s.Size.Empty() {
		return &RenderError{Err: fmt.Errorf("%w: size %dx%d", ErrEmptySurface, s.Size.X, s.Size.Y)}
	}
	if s.Background != nil && !s.Background.isFinite() {
		return &RenderError{Err: fmt.Errorf("%w: background color", ErrNonFinite)}
	}
	return nil
}

// Settings is implemented by the settings of every backend,
// usually by embedding RenderSettings.
type Settings interface {
	Common() RenderSettings
}

// Renderer converts elements to the output O of a backend,
// configured by the settings S.
type Renderer[S Settings, O any] interface {
	// Render must not modify elements, and must return a *RenderError
	// when the elements or the settings are invalid.
	Render(elements []CanvasElement, settings S) (O, error)
}

// ImageConverter is implemented by outputs which can be rasterized.
type ImageConverter interface {
	// ToRGBAImage returns an image whose bounds start at (0, 0), with the
	// output size. The pixels are alpha premultiplied, as always with *image.RGBA.
	ToRGBAImage() *image.RGBA
}

// Render is the single entry point of the scene model: it hands the elements
// of `c`, in painting order, to the renderer `r`.
// The output is only meaningful if the error is nil.
func Render[S Settings, O any](c *Canvas, r Renderer[S, O], settings S) (O, error) {
	common := settings.Common()
	Logger().Debug("render canvas", "renderer", fmt.Sprintf("%T", r),
		"elements", len(c.elements), "width", common.Size.X, "height", common.Size.Y)
	out, err := r.Render(c.elements, settings)
	if err != nil {
		Logger().Debug("render failed", "error", err)
		var zero O
		return zero, err
	}
	return out, nil
}

// RenderImage renders `c` with a renderer whose output may be rasterized.
func RenderImage[S Settings, O ImageConverter](c *Canvas, r Renderer[S, O], settings S) (*image.RGBA, error) {
	out, err := Render(c, r, settings)
	if err != nil {
		return nil, err
	}
	return out.ToRGBAImage(), nil
}

func driverName(d Driver) string { return fmt.Sprintf("%T", d) }
