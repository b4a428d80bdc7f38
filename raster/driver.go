package raster

import (
	"image"

	"github.com/benoitkugler/denim/internal/blur"
	"github.com/benoitkugler/denim/scene"
	"github.com/srwiley/rasterx"
	"github.com/srwiley/scanx"
	"golang.org/x/image/draw"
)

var (
	_ scene.Driver  = (*driver)(nil) // assert interface conformance
	_ scene.Layerer = (*driver)(nil)
)

// target is a destination image, with its rasterizers.
// The filler and the dasher share the scanner.
type target struct {
	img    *image.RGBA
	filler *rasterx.Filler
	dasher *rasterx.Dasher
	blur   float64 // for layers
}

func newTarget(img *image.RGBA, kind ScannerKind) target {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	var scanner rasterx.Scanner
	switch kind {
	case ScannerScanx:
		scanner = scanx.NewScanner(scanx.NewImgSpanner(img), w, h)
	default:
		scanner = rasterx.NewScannerGV(w, h, img, img.Bounds())
	}
	return target{
		img:    img,
		filler: rasterx.NewFiller(w, h, scanner),
		dasher: rasterx.NewDasher(w, h, scanner),
	}
}

// driver draws on the top of a stack of images:
// the output, then one image per blurred element being drawn.
type driver struct {
	kind  ScannerKind
	stack []target
}

func newDriver(img *image.RGBA, kind ScannerKind) *driver {
	return &driver{kind: kind, stack: []target{newTarget(img, kind)}}
}

func (d *driver) top() target { return d.stack[len(d.stack)-1] }

func (d *driver) SetupDrawers(willFill, willStroke bool) (f scene.Filler, s scene.Stroker) {
	t := d.top()
	if willFill {
		f = filler{t.filler}
	}
	if willStroke {
		s = stroker{t.dasher}
	}
	return f, s
}

// PushLayer redirects the drawing to a new transparent image.
func (d *driver) PushLayer(blurStdDev float64) {
	bounds := d.top().img.Bounds()
	layer := newTarget(image.NewRGBA(bounds), d.kind)
	layer.blur = blurStdDev
	d.stack = append(d.stack, layer)
}

// PopLayer blurs the current layer and composites it
// on the previous one.
func (d *driver) PopLayer() {
	layer := d.top()
	d.stack = d.stack[:len(d.stack)-1]
	blur.Gaussian(layer.img, layer.blur)
	dst := d.top().img
	draw.Draw(dst, dst.Bounds(), layer.img, image.Point{}, draw.Over)
}

type filler struct{ *rasterx.Filler }

func (f filler) SetColor(c scene.Color) { f.Filler.SetColor(c.NRGBA()) }

type stroker struct{ *rasterx.Dasher }

func (s stroker) SetColor(c scene.Color) { s.Dasher.SetColor(c.NRGBA()) }

func (s stroker) SetStrokeOptions(options scene.StrokeOptions) {
	capFunc := capToFunc[options.Cap]
	s.Dasher.SetWinding(true) // the scanner is shared with the filler
	s.Dasher.SetStroke(options.LineWidth, options.MiterLimit, capFunc, capFunc,
		rasterx.FlatGap, joinToJoin[options.Join], nil, 0)
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		scene.JoinMiter: rasterx.Miter,
		scene.JoinRound: rasterx.Round,
		scene.JoinBevel: rasterx.Bevel,
	}

	capToFunc = [...]rasterx.CapFunc{
		scene.CapButt:   rasterx.ButtCap,
		scene.CapRound:  rasterx.RoundCap,
		scene.CapSquare: rasterx.SquareCap,
	}
)
