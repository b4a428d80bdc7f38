// Command denim renders the built-in demo scenes to any of the
// supported formats: the output format is given by the extension
// of the output file.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/denim/export"
	"github.com/benoitkugler/denim/ggraster"
	_ "github.com/benoitkugler/denim/objrender"
	_ "github.com/benoitkugler/denim/pdfrender"
	_ "github.com/benoitkugler/denim/raster"
	"github.com/benoitkugler/denim/scene"
	_ "github.com/benoitkugler/denim/svgrender"
	"github.com/tdewolff/argp"
)

type Render struct {
	Output     string `short:"o" default:"out.png" desc:"Output file, whose extension selects the format"`
	Scene      string `short:"s" default:"hexagons" desc:"Scene to draw: hexagons, spiral, smile or shapes"`
	Width      int    `default:"1000" desc:"Output width"`
	Height     int    `default:"1000" desc:"Output height"`
	Background string `short:"b" default:"#2E3440" desc:"Background color (#RRGGBB or #RRGGBBAA), empty for none"`
	Engine     string `short:"e" default:"rasterx" desc:"Rasterizer for image formats: rasterx or gg"`
	Verbose    bool   `short:"v" desc:"Log debug information"`
}

type Formats struct{}

func main() {
	root := argp.NewCmd(&Render{}, "Render demo vector scenes")
	root.AddCmd(&Formats{}, "formats", "List the supported output formats")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Formats) Run() error {
	fmt.Println(strings.Join(export.Formats(), " "))
	return nil
}

func (cmd *Render) Run() error {
	if cmd.Verbose {
		scene.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if cmd.Width <= 0 || cmd.Height <= 0 {
		return fmt.Errorf("invalid output size %dx%d", cmd.Width, cmd.Height)
	}
	width, height := uint32(cmd.Width), uint32(cmd.Height)
	settings := scene.RenderSettings{Size: scene.Size(width, height)}
	if cmd.Background != "" {
		bg, err := scene.FromHex(cmd.Background)
		if err != nil {
			return err
		}
		settings.Background = &bg
	}

	c, err := buildCanvas(cmd.Scene, width, height)
	if err != nil {
		return err
	}

	switch cmd.Engine {
	case "rasterx":
		err = export.WriteFile(cmd.Output, c, settings)
	case "gg":
		err = writeGG(cmd.Output, c, settings)
	default:
		return fmt.Errorf("unknown engine %q", cmd.Engine)
	}
	if err != nil {
		return err
	}
	fmt.Printf("%s written (%dx%d)\n", cmd.Output, cmd.Width, cmd.Height)
	return nil
}

// writeGG renders with the gg backend, which only
// supports image formats
func writeGG(filename string, c *scene.Canvas, settings scene.RenderSettings) error {
	ext := filepath.Ext(filename)
	if !export.IsImageFormat(ext) {
		return fmt.Errorf("the gg engine only supports image formats (%s), got %q", strings.Join(export.ImageFormats, ", "), ext)
	}
	img, err := scene.RenderImage[ggraster.Settings, *ggraster.Image](c, ggraster.Renderer{}, ggraster.Settings{RenderSettings: settings})
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err = export.Encode(f, img, ext); err != nil {
		f.Close()
		os.Remove(filename)
		return err
	}
	return f.Close()
}
