// Package scene provides a backend agnostic description of 2D vector
// scenes: a Canvas holds an ordered list of elements (polygons, lines,
// circles, paths, clusters...) which are converted to concrete outputs
// (images, SVG or PDF documents, 3D meshes) by renderers.
//
// Renderers share the walk implemented by Paint, which sends device space
// paths to a Driver, in painting order.
package scene

// Canvas is an ordered collection of elements: earlier elements
// are painted first, so that later ones appear on top.
//
// The zero value is an empty canvas, ready to use.
// A Canvas is not safe for concurrent mutation, but once built, it may
// be rendered concurrently by several renderers.
type Canvas struct {
	elements []CanvasElement
}

// NewCanvas returns a canvas holding a copy of `elements`.
func NewCanvas(elements ...CanvasElement) *Canvas {
	return &Canvas{elements: append([]CanvasElement(nil), elements...)}
}

// Draw appends `element`, on top of the previous ones.
func (c *Canvas) Draw(element CanvasElement) {
	c.elements = append(c.elements, element)
}

// DrawVariant is a shortcut for Draw(NewElement(v, opts...))
func (c *Canvas) DrawVariant(v Variant, opts ...ElementOption) {
	c.Draw(NewElement(v, opts...))
}

// Elements returns a copy of the elements, in painting order.
func (c *Canvas) Elements() []CanvasElement {
	return append([]CanvasElement(nil), c.elements...)
}

// Len returns the number of top level elements.
func (c *Canvas) Len() int { return len(c.elements) }

// Clear removes all the elements.
func (c *Canvas) Clear() { c.elements = c.elements[:0] }
