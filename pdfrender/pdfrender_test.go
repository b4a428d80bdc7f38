package pdfrender

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/benoitkugler/denim/export"
	"github.com/benoitkugler/denim/scene"
	"github.com/tdewolff/test"
)

func hexagons() *scene.Canvas {
	var c scene.Canvas
	for _, r := range []float64{40, 42} {
		c.DrawVariant(scene.Polygon{
			Points: scene.RegularPolygonPoints(scene.Vec2{X: 50, Y: 50}, 6, r, 1.5*math.Pi),
			Stroke: &scene.Stroke{Color: scene.MustHex("#5E81AC"), Width: 0.5},
		})
	}
	c.DrawVariant(scene.PathShape{
		Path: scene.MustParsePath("M10 10Q20 0 30 10C40 20 50 0 60 10Z"),
		Fill: &scene.Fill{Color: scene.Red.WithAlpha(0.5), EvenOdd: true},
	})
	return &c
}

func TestRender(t *testing.T) {
	bg := scene.MustHex("#2E3440")
	for _, compress := range []bool{false, true} {
		doc, err := Render(hexagons(), Settings{
			RenderSettings: scene.RenderSettings{Size: scene.Size(100, 100), Background: &bg},
			Compress:       compress,
			Title:          "hexagons",
		})
		test.Error(t, err)
		test.That(t, bytes.HasPrefix(doc.Bytes(), []byte("%PDF-")))
		test.That(t, bytes.Contains(doc.Bytes(), []byte("%%EOF")))
	}
}

func TestPageContent(t *testing.T) {
	c := scene.NewCanvas(scene.NewElement(scene.Rectangle{
		Origin: scene.Vec2{X: 10, Y: 10},
		Size:   scene.Vec2{X: 20, Y: 20},
		Fill:   &scene.Fill{Color: scene.Red},
		Stroke: &scene.Stroke{Color: scene.Blue, Width: 2, Join: scene.JoinRound},
	}))
	doc, err := Render(c, Settings{RenderSettings: scene.RenderSettings{Size: scene.Size(100, 100)}})
	test.Error(t, err)
	content := string(doc.Bytes())

	fill := strings.Index(content, "1.000 0.000 0.000 rg")
	stroke := strings.Index(content, "0.000 0.000 1.000 RG")
	test.That(t, fill != -1 && stroke != -1, content)
	test.That(t, fill < stroke, "fill must be painted first")
}

func TestRenderErrors(t *testing.T) {
	_, err := Render(scene.NewCanvas(), Settings{})
	test.That(t, errors.Is(err, scene.ErrEmptySurface))

	_, err = Render(scene.NewCanvas(), Settings{RenderSettings: scene.RenderSettings{Size: scene.Size(10, 10)}, Unit: "px"})
	var renderErr *scene.RenderError
	test.That(t, errors.As(err, &renderErr), err)

	c := scene.NewCanvas(scene.NewElement(scene.Circle{Center: scene.Vec2{X: math.NaN()}, Radius: 2, Fill: &scene.Fill{}}))
	doc, err := Render(c, Settings{RenderSettings: scene.RenderSettings{Size: scene.Size(10, 10)}})
	test.That(t, errors.Is(err, scene.ErrNonFinite), err)
	test.That(t, doc == nil)
}

func TestExport(t *testing.T) {
	var buf bytes.Buffer
	err := export.Write(&buf, "pdf", hexagons(), scene.RenderSettings{Size: scene.Size(100, 100)})
	test.Error(t, err)
	test.That(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
