// Package export writes canvases to files, selecting the renderer
// from the file format.
//
// Formats are provided by the renderer packages, which register
// themselves when imported, following the database/sql driver pattern:
//
//	import _ "github.com/benoitkugler/denim/raster" // png, jpeg, gif, tiff, bmp
//	import _ "github.com/benoitkugler/denim/svgrender" // svg, svgz
//
//	err := export.WriteFile("out.png", canvas, scene.RenderSettings{Size: scene.Size(800, 600)})
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/benoitkugler/denim/scene"
)

// Writer renders a canvas and writes the result to w.
type Writer func(w io.Writer, c *scene.Canvas, settings scene.RenderSettings) error

// Registry state - protected by mutex for thread-safe access.
var (
	registryMu sync.RWMutex
	writers    = make(map[string]Writer)
)

// Register makes a writer available for the given format, which is
// the lower case file extension, without dot.
//
// Register panics if writer is nil or if the format is already registered.
func Register(format string, writer Writer) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if writer == nil {
		panic("export: Register writer is nil")
	}
	format = normalize(format)
	if _, dup := writers[format]; dup {
		panic("export: Register called twice for " + format)
	}
	writers[format] = writer
}

// Unregister removes a format from the registry.
// If the format is not registered, this is a no-op.
func Unregister(format string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(writers, normalize(format))
}

// Lookup returns the writer registered for format.
// The error message includes a hint about forgotten imports.
func Lookup(format string) (Writer, error) {
	registryMu.RLock()
	writer, ok := writers[normalize(format)]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("export: unknown format %q (forgotten import?)", format)
	}
	return writer, nil
}

// Formats returns the sorted list of registered formats.
func Formats() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Write renders c in the given format.
func Write(w io.Writer, format string, c *scene.Canvas, settings scene.RenderSettings) error {
	writer, err := Lookup(format)
	if err != nil {
		return err
	}
	return writer(w, c, settings)
}

// WriteFile renders c to filename, whose extension selects the format.
// On failure, the partially written file is removed.
func WriteFile(filename string, c *scene.Canvas, settings scene.RenderSettings) error {
	writer, err := Lookup(filepath.Ext(filename))
	if err != nil {
		return err
	}
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	err = writer(f, c, settings)
	if errClose := f.Close(); err == nil {
		err = errClose
	}
	if err != nil {
		os.Remove(filename)
		return err
	}
	scene.Logger().Info("canvas exported", "file", filename, "elements", c.Len())
	return nil
}

func normalize(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}
