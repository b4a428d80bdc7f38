package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrColorParse is returned (wrapped) for malformed hex color strings.
	ErrColorParse = errors.New("scene: malformed hex color")
	// ErrNonFinite reports a NaN or infinite coordinate, size or color.
	ErrNonFinite = errors.New("non finite value")
	// ErrNegative reports a negative radius, stroke width or blur.
	ErrNegative = errors.New("negative value")
	// ErrOutOfRange reports a finite coordinate or length too large
	// to be drawn, once mapped to the output.
	ErrOutOfRange = errors.New("value out of drawable range")
	// ErrEmptySurface is returned when the output size has a zero dimension.
	ErrEmptySurface = errors.New("empty output surface")
	// ErrPathSyntax is returned (wrapped) by ParsePath.
	ErrPathSyntax = errors.New("scene: invalid path data")
)

// RenderError is returned by renderers when the scene or the output
// surface can't be processed.
type RenderError struct {
	// Path is the chain of indices leading to the faulty element:
	// the top level index first, then the index inside each cluster.
	// It is empty for errors about the output surface.
	Path []int
	Err  error
}

func (e *RenderError) Error() string {
	if len(e.Path) == 0 {
		return "scene: render: " + e.Err.Error()
	}
	chunks := make([]string, len(e.Path))
	for i, index := range e.Path {
		chunks[i] = strconv.Itoa(index)
	}
	return fmt.Sprintf("scene: element %s: %s", strings.Join(chunks, "/"), e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
