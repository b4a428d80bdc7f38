package scene

import (
	"fmt"
	"math"
)

// RegularPolygonPoints returns the `sides` vertices of the regular polygon
// centered on `center`, with circumradius `radius`. The first vertex is
// at angle `rotation` (radians, clockwise on screen since the y axis points down),
// the next ones following in increasing angle order.
//
// It panics if sides < 3.
func RegularPolygonPoints(center Vec2, sides int, radius, rotation float64) []Vec2 {
	if sides < 3 {
		panic(fmt.Sprintf("scene: a regular polygon needs at least 3 sides, got %d", sides))
	}
	out := make([]Vec2, sides)
	step := 2 * math.Pi / float64(sides)
	for i := range out {
		sin, cos := math.Sincos(rotation + float64(i)*step)
		out[i] = Vec2{center.X + radius*cos, center.Y + radius*sin}
	}
	return out
}

// RectPolygonPoints returns the 4 corners of the rectangle with top left
// corner `origin` and dimensions `size`, clockwise on screen starting
// at the origin.
func RectPolygonPoints(origin, size Vec2) []Vec2 {
	return []Vec2{
		origin,
		{origin.X + size.X, origin.Y},
		origin.Add(size),
		{origin.X, origin.Y + size.Y},
	}
}
