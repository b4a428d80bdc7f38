package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/benoitkugler/denim/scene"
)

// a scene is drawn in the [-1, 1] square, y up,
// and fitted in the output by the camera transform
type sceneFunc func() []scene.CanvasElement

var scenes = map[string]sceneFunc{
	"hexagons": hexagons,
	"spiral":   spiral,
	"smile":    smile,
	"shapes":   shapes,
}

func sceneNames() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// camera maps the [-1, 1] square to the center of the output
func camera(width, height uint32) scene.Matrix {
	s := math.Min(float64(width), float64(height)) / 2
	return scene.NewTransform(scene.Vec2{X: float64(width) / 2, Y: float64(height) / 2}, 0, scene.Vec2{X: s, Y: -s})
}

func buildCanvas(name string, width, height uint32) (*scene.Canvas, error) {
	fn, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, sceneNames())
	}
	c := scene.NewCanvas()
	c.DrawVariant(scene.Cluster{Children: fn()}, scene.WithTransform(camera(width, height)))
	return c, nil
}

func hexagons() []scene.CanvasElement {
	stroke := &scene.Stroke{Color: scene.MustHex("#5E81AC"), Width: 0.01}
	out := make([]scene.CanvasElement, 0, 2)
	for _, r := range []float64{0.8, 0.84} {
		out = append(out, scene.NewElement(scene.Polygon{
			Points: scene.RegularPolygonPoints(scene.Vec2{}, 6, r, math.Pi/2),
			Stroke: stroke,
		}))
	}
	return out
}

func spiral() []scene.CanvasElement {
	points := make([]scene.Vec2, 1000)
	for n := range points {
		r := float64(n) / 500
		theta := 2 * math.Pi * float64(n) / 200
		points[n] = scene.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
	}
	out := make([]scene.CanvasElement, 8)
	for i := range out {
		out[i] = scene.NewElement(scene.PolyLine{
			Points: points,
			Stroke: scene.Stroke{Color: scene.White.WithAlpha(float64(i+1) / 8), Width: 0.01, Cap: scene.CapRound},
		}, scene.WithTransform(scene.Identity.Rotate(float64(i)*math.Pi/4)))
	}
	return out
}

func smile() []scene.CanvasElement {
	eye := scene.Stroke{Color: scene.Black, Width: 0.2, Cap: scene.CapRound}
	var mouth scene.PathBuilder
	mouth.MoveTo(scene.Vec2{X: -0.5, Y: -0.3}).
		QuadTo(scene.Vec2{Y: -0.5}, scene.Vec2{X: 0.5, Y: -0.3}).
		QuadTo(scene.Vec2{Y: -0.9}, scene.Vec2{X: -0.5, Y: -0.3}).
		Close()
	return []scene.CanvasElement{
		scene.NewElement(scene.Circle{Radius: 0.95, Fill: &scene.Fill{Color: scene.MustHex("#FECB00")}}),
		scene.NewElement(scene.PolyLine{Points: []scene.Vec2{{X: -0.5, Y: 0.25}, {X: -0.5, Y: 0}}, Stroke: eye}),
		scene.NewElement(scene.PolyLine{Points: []scene.Vec2{{X: 0.5, Y: 0.25}, {X: 0.5, Y: 0}}, Stroke: eye}),
		scene.NewElement(scene.PathShape{Path: mouth.Path(), Fill: &scene.Fill{Color: scene.Black}}),
	}
}

func shapes() []scene.CanvasElement {
	white := &scene.Fill{Color: scene.White}
	return []scene.CanvasElement{
		scene.NewElement(scene.Circle{Center: scene.Vec2{X: -0.4, Y: 0.4}, Radius: 0.3, Fill: &scene.Fill{Color: scene.Red}}, scene.WithBlur(0.01)),
		scene.NewElement(scene.Cluster{Children: []scene.CanvasElement{
			scene.NewElement(scene.Polygon{
				Points: []scene.Vec2{{}, {X: 0.5, Y: 0.5}, {X: 0.5}},
				Fill:   white,
				Stroke: &scene.Stroke{Color: scene.MustHex("#FF00FF"), Width: 0.05, Join: scene.JoinRound},
			}),
			scene.NewElement(scene.PolyLine{Points: []scene.Vec2{{}, {X: 0.5, Y: 0.5}}, Stroke: scene.Stroke{Color: scene.White, Width: 0.01}}),
			scene.NewElement(scene.Circle{Center: scene.Vec2{X: 0.25, Y: -0.4}, Radius: 0.2, Fill: white}),
		}}, scene.WithBlur(0.02), scene.WithOpacity(0.8)),
		scene.NewElement(scene.Ellipse{
			Center: scene.Vec2{X: -0.4, Y: -0.5},
			Radius: scene.Vec2{X: 0.4, Y: 0.2},
			Stroke: &scene.Stroke{Color: scene.FromHSV(0.55, 0.6, 0.9), Width: 0.03},
		}),
		scene.NewElement(scene.PathShape{
			Path: scene.MustParsePath("M-0.9 0.9h0.3v-0.3a0.3 0.3 0 0 1-0.3-0.3z"),
			Fill: &scene.Fill{Color: scene.Green.WithAlpha(0.6), EvenOdd: true},
		}),
	}
}
