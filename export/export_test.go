package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/denim/scene"
	"github.com/tdewolff/test"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// writes the number of elements
func countWriter(w io.Writer, c *scene.Canvas, settings scene.RenderSettings) error {
	_, err := fmt.Fprintf(w, "%d elements, %dx%d", c.Len(), settings.Size.X, settings.Size.Y)
	return err
}

var errBroken = errors.New("broken writer")

func brokenWriter(w io.Writer, c *scene.Canvas, settings scene.RenderSettings) error {
	io.WriteString(w, "partial")
	return errBroken
}

func TestRegistry(t *testing.T) {
	Register(".Count", countWriter)
	defer Unregister("count")

	test.That(t, func() bool {
		for _, f := range Formats() {
			if f == "count" {
				return true
			}
		}
		return false
	}(), Formats())

	var buf bytes.Buffer
	c := scene.NewCanvas(scene.NewElement(scene.Blank{}), scene.NewElement(scene.Blank{}))
	test.Error(t, Write(&buf, "COUNT", c, scene.RenderSettings{Size: scene.Size(3, 4)}))
	test.String(t, buf.String(), "2 elements, 3x4")

	_, err := Lookup("unknown")
	test.That(t, err != nil)

	Unregister("count")
	_, err = Lookup("count")
	test.That(t, err != nil)
}

func TestRegisterPanics(t *testing.T) {
	Register("dup", countWriter)
	defer Unregister("dup")

	assertPanic := func(f func()) {
		t.Helper()
		defer func() {
			test.That(t, recover() != nil, "expected a panic")
		}()
		f()
	}
	assertPanic(func() { Register("dup", countWriter) })
	assertPanic(func() { Register("nil", nil) })
}

func TestWriteFile(t *testing.T) {
	Register("count", countWriter)
	defer Unregister("count")
	Register("broken", brokenWriter)
	defer Unregister("broken")

	dir := t.TempDir()
	c := scene.NewCanvas(scene.NewElement(scene.Blank{}))
	settings := scene.RenderSettings{Size: scene.Size(1, 1)}

	name := filepath.Join(dir, "scene.count")
	test.Error(t, WriteFile(name, c, settings))
	content, err := os.ReadFile(name)
	test.Error(t, err)
	test.String(t, string(content), "1 elements, 1x1")

	name = filepath.Join(dir, "scene.broken")
	err = WriteFile(name, c, settings)
	test.That(t, errors.Is(err, errBroken), err)
	_, err = os.Stat(name)
	test.That(t, os.IsNotExist(err), "file should be removed")

	err = WriteFile(filepath.Join(dir, "scene.unknown"), c, settings)
	test.That(t, err != nil)
}

func TestEncode(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	img.SetRGBA(1, 1, color.RGBA{0, 0, 0, 255})

	decoders := map[string]func(io.Reader) (image.Image, error){
		"png":  png.Decode,
		"jpg":  jpeg.Decode,
		"jpeg": jpeg.Decode,
		"gif":  gif.Decode,
		"tif":  tiff.Decode,
		"tiff": tiff.Decode,
		"bmp":  bmp.Decode,
	}
	for _, format := range ImageFormats {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			test.Error(t, Encode(&buf, img, format))
			decoded, err := decoders[format](&buf)
			test.Error(t, err)
			test.T(t, decoded.Bounds(), img.Bounds())
		})
	}

	err := Encode(io.Discard, img, "webp")
	test.That(t, err != nil)
}

func TestIsImageFormat(t *testing.T) {
	test.That(t, IsImageFormat("png"))
	test.That(t, IsImageFormat(".JPG"))
	test.That(t, IsImageFormat(".tiff"))
	test.That(t, !IsImageFormat(".svg"))
	test.That(t, !IsImageFormat(""))
}
