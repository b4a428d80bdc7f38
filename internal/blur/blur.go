// Package blur applies gaussian blurs to the RGBA layers of the
// raster backends.
package blur

import (
	"image"
	"image/draw"

	"github.com/disintegration/imaging"
)

// MaxSigma returns the largest useful standard deviation for an
// image of the given size: beyond it, the blur spreads each pixel
// over the whole image anyway.
func MaxSigma(width, height int) float64 {
	return float64(max(width, height))
}

// Gaussian blurs img in place with the standard deviation sigma.
// sigma is clamped to MaxSigma, so that arbitrary large values
// are accepted. Pixels outside of img are ignored.
func Gaussian(img *image.RGBA, sigma float64) {
	bounds := img.Bounds()
	if !(sigma > 0) || bounds.Empty() {
		return
	}
	sigma = min(sigma, MaxSigma(bounds.Dx(), bounds.Dy()))

	blurred := imaging.Blur(img, sigma)
	draw.Draw(img, bounds, blurred, blurred.Bounds().Min, draw.Src)
}
