package export

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"slices"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// JPEGQuality is the quality used when encoding JPEG images.
var JPEGQuality = 90

// ImageFormats are the formats supported by Encode.
var ImageFormats = []string{"png", "jpg", "jpeg", "gif", "tif", "tiff", "bmp"}

// IsImageFormat returns true if format, with or without a leading dot,
// is one of ImageFormats.
func IsImageFormat(format string) bool {
	return slices.Contains(ImageFormats, normalize(format))
}

// Encode writes img with the encoder of the given image format.
func Encode(w io.Writer, img image.Image, format string) error {
	switch normalize(format) {
	case "png":
		return png.Encode(w, img)
	case "jpg", "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
	case "gif":
		return gif.Encode(w, img, nil)
	case "tif", "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	case "bmp":
		return bmp.Encode(w, img)
	default:
		return fmt.Errorf("export: unsupported image format %q", format)
	}
}
