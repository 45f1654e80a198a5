package hunkicon

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
)

const (
	maxScreenX = 1366
	maxScreenY = 768
)

const windowTitle = "hunkicon preview"

// The neutral backdrop the transparent icon corners are composited against.
var previewBg = color.NRGBA{R: 18, G: 18, B: 22, A: 0xff}

// showPreview spawns a new Gio GUI window and updates its content with each
// rendered variant received from the worker channel. The quit channel gets
// closed once the window goes away, releasing every pending frame producer.
func (g *Generator) showPreview() {
	width, height := windowSize(g.size())

	w := app.NewWindow(
		app.Title(windowTitle),
		app.Size(unit.Dp(width), unit.Dp(height)),
	)

	g.guiErr = g.run(w)
	close(g.quit)
}

// run processes the window event loop until a DestroyEvent or an ESC key
// press is captured. Every rendered variant received on the worker channel
// swaps the displayed image and updates the window title.
func (g *Generator) run(w *app.Window) error {
	var (
		ops op.Ops
		img image.Image
	)

	for {
		select {
		case e := <-w.Events():
			switch e := e.(type) {
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, e)

				key.InputOp{
					Tag:  w,
					Keys: key.NameEscape,
				}.Add(gtx.Ops)

				for _, ev := range gtx.Events(w) {
					if ke, ok := ev.(key.Event); ok {
						if ke.State == key.Press && ke.Name == key.NameEscape {
							w.Perform(system.ActionClose)
						}
					}
				}

				paint.Fill(gtx.Ops, previewBg)
				if img != nil {
					src := paint.NewImageOp(img)
					src.Add(gtx.Ops)

					widget.Image{
						Src:   src,
						Scale: 1 / float32(gtx.Dp(unit.Dp(1))),
						Fit:   widget.Contain,
					}.Layout(gtx)
				}
				e.Frame(gtx.Ops)
			case key.Event:
				switch e.Name {
				case key.NameEscape:
					w.Perform(system.ActionClose)
				}
			case system.DestroyEvent:
				return e.Err
			}
		case res := <-g.wrk:
			if res.done {
				w.Option(app.Title(windowTitle + " ⇢ done, you may close this window"))
			} else {
				img = res.img
				w.Option(app.Title(fmt.Sprintf("%s ⇢ %s", windowTitle, res.name)))
			}
			w.Invalidate()
		}
	}
}

// pushFrame hands a rendered variant over to the preview window. It bails
// out when the window has been closed before the frame could be delivered.
func (g *Generator) pushFrame(img *image.NRGBA, name string, done bool) {
	if !g.Preview || g.wrk == nil {
		return
	}

	select {
	case g.wrk <- worker{img: img, name: name, done: done}:
	case <-g.quit:
	}
}

// windowSize scales down the window dimensions in case the rendered icon
// would not fit the screen, retaining the aspect ratio.
func windowSize(size int) (float64, float64) {
	w, h := float64(size), float64(size)

	if w > maxScreenX || h > maxScreenY {
		ratio := math.Min(maxScreenX/w, maxScreenY/h)
		w *= ratio
		h *= ratio
	}
	return w, h
}
