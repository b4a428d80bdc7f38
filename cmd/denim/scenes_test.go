package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/denim/scene"
	"github.com/tdewolff/test"
)

func TestScenesAreValid(t *testing.T) {
	for _, name := range sceneNames() {
		t.Run(name, func(t *testing.T) {
			c, err := buildCanvas(name, 400, 300)
			test.Error(t, err)
			test.T(t, c.Len(), 1)
			test.Error(t, scene.Validate(c.Elements()))
		})
	}
	_, err := buildCanvas("unknown", 10, 10)
	test.That(t, err != nil)
}

func TestCamera(t *testing.T) {
	m := camera(400, 300)
	test.T(t, m.Apply(scene.Vec2{}), scene.Vec2{X: 200, Y: 150})
	test.T(t, m.Apply(scene.Vec2{X: 1, Y: 1}), scene.Vec2{X: 350, Y: 0})
	test.Float(t, m.ScaleFactor(), 150)
}

func TestWriteGG(t *testing.T) {
	c, err := buildCanvas("shapes", 40, 30)
	test.Error(t, err)
	settings := scene.RenderSettings{Size: scene.Size(40, 30)}
	dir := t.TempDir()

	png := filepath.Join(dir, "out.png")
	test.Error(t, writeGG(png, c, settings))
	info, err := os.Stat(png)
	test.Error(t, err)
	test.That(t, info.Size() > 0)

	svg := filepath.Join(dir, "out.svg")
	test.That(t, writeGG(svg, c, settings) != nil, "svg is not supported by gg")
	_, err = os.Stat(svg)
	test.That(t, errors.Is(err, fs.ErrNotExist), "no file must be left behind", err)
}
