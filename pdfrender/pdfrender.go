// Package pdfrender implements a PDF backend for scenes,
// by wrapping github.com/jung-kurt/gofpdf.
//
// The output is a single page document, whose size is the render size,
// expressed in Settings.Unit. When no background is given, the page
// is left white. Blur is not supported and is ignored.
package pdfrender

import (
	"bytes"
	"fmt"
	"io"

	"github.com/benoitkugler/denim/export"
	"github.com/benoitkugler/denim/scene"
	"github.com/jung-kurt/gofpdf"
)

// DefaultUnit is used when Settings.Unit is empty.
const DefaultUnit = "pt"

// Settings configures the PDF backend.
type Settings struct {
	scene.RenderSettings

	// Unit is the user unit, one of "pt", "mm", "cm" or "in".
	Unit string
	// Compress enables the compression of the page content.
	Compress bool
	// Title is written in the document metadata.
	Title string
}

func (s Settings) unit() string {
	if s.Unit == "" {
		return DefaultUnit
	}
	return s.Unit
}

func (s Settings) check() error {
	if err := s.Check(); err != nil {
		return err
	}
	switch s.unit() {
	case "pt", "mm", "cm", "in":
		return nil
	default:
		return &scene.RenderError{Err: fmt.Errorf("pdfrender: invalid unit %q", s.Unit)}
	}
}

// Document is the output of the PDF backend.
type Document struct {
	data []byte
}

// Bytes returns the content of the PDF file.
func (doc *Document) Bytes() []byte { return doc.data }

// WriteTo implements io.WriterTo
func (doc *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(doc.data)
	return int64(n), err
}

// Renderer is the PDF backend.
type Renderer struct{}

var _ scene.Renderer[Settings, *Document] = Renderer{}

// Render draws `elements` on a new PDF page.
func (Renderer) Render(elements []scene.CanvasElement, settings Settings) (*Document, error) {
	if err := settings.check(); err != nil {
		return nil, err
	}
	width, height := float64(settings.Size.X), float64(settings.Size.Y)
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        settings.unit(),
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(settings.Compress)
	if settings.Title != "" {
		pdf.SetTitle(settings.Title, true)
	}
	pdf.AddPage()

	if bg := settings.Background; bg != nil {
		setFillColor(pdf, *bg)
		pdf.Rect(0, 0, width, height, "F")
	}

	if err := scene.Paint(elements, &driver{pdf: pdf}); err != nil {
		return nil, err
	}

	if err := pdf.Error(); err != nil {
		return nil, &scene.RenderError{Err: fmt.Errorf("pdfrender: %w", err)}
	}
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &scene.RenderError{Err: fmt.Errorf("pdfrender: %w", err)}
	}
	scene.Logger().Debug("pdfrender: document written", "bytes", buf.Len())
	return &Document{data: buf.Bytes()}, nil
}

// Render is a shortcut for scene.Render(c, Renderer{}, settings)
func Render(c *scene.Canvas, settings Settings) (*Document, error) {
	return scene.Render[Settings, *Document](c, Renderer{}, settings)
}

func writePDF(w io.Writer, c *scene.Canvas, settings scene.RenderSettings) error {
	doc, err := Render(c, Settings{RenderSettings: settings, Compress: true})
	if err != nil {
		return err
	}
	_, err = doc.WriteTo(w)
	return err
}

func init() {
	export.Register("pdf", writePDF)
}
