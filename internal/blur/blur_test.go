package blur

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestGaussianSpreads(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 21, 21))
	img.SetRGBA(10, 10, color.RGBA{255, 255, 255, 255})

	Gaussian(img, 1.5)
	center := img.RGBAAt(10, 10)
	near := img.RGBAAt(11, 10)
	far := img.RGBAAt(0, 0)
	test.That(t, center.A < 255 && center.A > 0, "center", center)
	test.That(t, near.A > 0 && near.A <= center.A, "near", near)
	test.T(t, far, color.RGBA{})
	test.T(t, img.RGBAAt(9, 10), near) // symmetry
}

func TestGaussianUniform(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	for i := range img.Pix {
		img.Pix[i] = 200
	}
	Gaussian(img, 2)
	test.T(t, img.RGBAAt(20, 20), color.RGBA{200, 200, 200, 200})
}

func TestGaussianNoColorBleeding(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 1))
	for x := 0; x < 5; x++ {
		img.SetRGBA(x, 0, color.RGBA{255, 0, 0, 255})
	}
	Gaussian(img, 1)
	for x := 0; x < 10; x++ {
		c := img.RGBAAt(x, 0)
		test.T(t, c.G, uint8(0))
		test.T(t, c.B, uint8(0))
		test.That(t, c.R <= c.A, "premultiplied", c)
	}
}

func TestGaussianNoop(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	img.SetRGBA(1, 1, color.RGBA{10, 20, 30, 40})
	Gaussian(img, 0)
	test.T(t, img.RGBAAt(1, 1), color.RGBA{10, 20, 30, 40})
	Gaussian(img, math.NaN())
	test.T(t, img.RGBAAt(1, 1), color.RGBA{10, 20, 30, 40})

	Gaussian(image.NewRGBA(image.Rectangle{}), 2)
}

func TestGaussianHugeSigma(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	for y := 2; y < 8; y++ {
		for x := 2; x < 8; x++ {
			img.SetRGBA(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	for _, sigma := range []float64{1e6, 1e18, math.MaxFloat64, math.Inf(1)} {
		c := image.NewRGBA(img.Bounds())
		copy(c.Pix, img.Pix)
		Gaussian(c, sigma)
		test.That(t, c.RGBAAt(0, 0).A > 0, "the shape is spread over the image", sigma)
	}
	test.Float(t, MaxSigma(10, 30), 30)
}
