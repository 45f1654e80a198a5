package hunkicon

import (
	"errors"
	"image"
	"io"
	"runtime"
	"sync"

	"github.com/esimov/hunkicon/utils"
)

// DefaultSize is the edge length of the rendered icon when none is provided.
const DefaultSize = 1024

type worker struct {
	img  *image.NRGBA
	name string
	done bool
}

// Generator holds the rendering options of the icon artwork.
type Generator struct {
	// Size is the width and the height of the rendered icon in pixels.
	// When left zero the icon is rendered at the default size.
	Size int

	// Workers caps the number of goroutines rendering scanline bands.
	// It defaults to the number of the available CPU cores.
	Workers int

	// Preview displays each rendered variant in a GUI window.
	Preview bool

	// Spinner is the progress indicator shown while rendering.
	Spinner *utils.Spinner

	// The preview window plumbing, wired up by Execute in preview mode.
	wrk    chan worker
	quit   chan struct{}
	guiErr error
}

// Render rasterizes the icon with the given theme into raw RGBA scanlines.
// Each scanline is prefixed with a zero filter byte, so the returned buffer
// can be handed straight to the PNG encoder. The scanline bands are rendered
// concurrently into disjoint slices of the buffer, which keeps the output
// bytes identical regardless of the worker count.
func (g *Generator) Render(t *Theme) ([]byte, error) {
	if t == nil {
		return nil, errors.New("the icon cannot be rendered without a theme")
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}

	size := g.size()
	sc := newScene(t)

	rowLen := 1 + size*4
	buf := make([]byte, size*rowLen)

	workers := g.workers(size)
	band := (size + workers - 1) / workers

	var wg sync.WaitGroup
	for y0 := 0; y0 < size; y0 += band {
		y1 := utils.Min(y0+band, size)

		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				renderRow(sc, buf[y*rowLen:(y+1)*rowLen], y, size)
			}
		}(y0, y1)
	}
	wg.Wait()

	return buf, nil
}

// renderRow rasterizes a single scanline, sampling the scene at each pixel center.
func renderRow(sc *scene, row []byte, y, size int) {
	row[0] = 0 // PNG filter type

	fy := (float64(y) + 0.5) / float64(size)
	for x := 0; x < size; x++ {
		fx := (float64(x) + 0.5) / float64(size)
		c := sc.shade(fx, fy)

		o := 1 + x*4
		row[o] = c.R
		row[o+1] = c.G
		row[o+2] = c.B
		row[o+3] = c.A
	}
}

// Process renders the icon with the given theme and writes it PNG encoded
// to the destination writer.
func (g *Generator) Process(w io.Writer, t *Theme) error {
	raw, err := g.Render(t)
	if err != nil {
		return err
	}

	size := g.size()
	return EncodePNG(w, size, size, raw)
}

// Image renders the icon with the given theme into an NRGBA image.
func (g *Generator) Image(t *Theme) (*image.NRGBA, error) {
	raw, err := g.Render(t)
	if err != nil {
		return nil, err
	}
	return scanlinesToImage(g.size(), raw), nil
}

func (g *Generator) size() int {
	if g.Size > 0 {
		return g.Size
	}
	return DefaultSize
}

func (g *Generator) workers(size int) int {
	n := g.Workers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return utils.Min(n, size)
}
