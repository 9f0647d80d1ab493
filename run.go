package roboface

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// ClearColor fills the screen before the face is drawn.
	ClearColor Color

	// Debug enables the face's per-frame state log.
	Debug bool
}

// game adapts a Face to the ebiten.Game interface for Run.
type game struct {
	face    *Face
	clear   Color
	overlay *fpsOverlay
}

func (g *game) Update() error {
	g.face.Update(1.0 / float64(ebiten.TPS()))
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.clear.toRGBA())
	g.face.Draw(screen)
	if g.overlay != nil {
		g.overlay.draw(screen)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

// Run creates a window and drives the face's update/draw loop until the
// window closes. For full control (multiple faces, other scene content),
// implement ebiten.Game yourself and call Face.Update and Face.Draw
// directly.
func Run(face *Face, cfg RunConfig) error {
	if face == nil {
		panic("roboface: Run requires a non-nil face")
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = 640
	}
	if h <= 0 {
		h = 480
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Title)
	face.SetDebug(cfg.Debug)
	g := &game{face: face, clear: cfg.ClearColor}
	if cfg.Debug {
		g.overlay = newFPSOverlay()
	}
	return ebiten.RunGame(g)
}

// fpsOverlay draws the current FPS and TPS in the top-left corner of the
// screen, refreshed every half second.
type fpsOverlay struct {
	img         *ebiten.Image
	lastRefresh float64
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 fits "FPS: 60.0\nTPS: 60.0".
	o := &fpsOverlay{img: ebiten.NewImage(100, 32)}
	o.refresh()
	return o
}

func (o *fpsOverlay) refresh() {
	o.img.Clear()
	// Semi-transparent background for readability.
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	o.lastRefresh += 1.0 / float64(ebiten.TPS())
	if o.lastRefresh >= 0.5 {
		o.lastRefresh = 0
		o.refresh()
	}
	screen.DrawImage(o.img, nil)
}
