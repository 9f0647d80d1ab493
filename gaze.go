package roboface

import "github.com/hajimehoshi/ebiten/v2"

// Gaze limits. MaxPupilOffset is the pupil's maximum displacement from the
// eye center on either axis, in viewbox units; followGain amplifies the
// normalized cursor offset in pointer-follow mode.
const (
	MaxPupilOffset = 4.0
	followGain     = 20.0
)

// PointerSource supplies the current cursor position in screen coordinates.
// The default implementation reads the Ebitengine cursor; tests inject a
// fake so gaze behavior is verifiable without a display.
type PointerSource interface {
	CursorPosition() (x, y float64)
}

// ebitenPointer is the production PointerSource.
type ebitenPointer struct{}

func (ebitenPointer) CursorPosition() (float64, float64) {
	x, y := ebiten.CursorPosition()
	return float64(x), float64(y)
}

// gaze computes the pupil offset. Exactly one of two modes is active:
//
//   - driven: an external (x, y) signal is present; each component is
//     clamped to [-1, 1] and scaled by MaxPupilOffset.
//   - pointer-follow: no external signal; the cursor position relative to
//     the face bounds is normalized, amplified, and clamped.
//
// Setting or clearing the external signal switches modes live.
type gaze struct {
	pointer PointerSource

	driven   bool
	inX, inY float64

	x, y float64
}

func newGaze(pointer PointerSource) *gaze {
	if pointer == nil {
		pointer = ebitenPointer{}
	}
	return &gaze{pointer: pointer}
}

// setDriven supplies the external gaze signal and switches to driven mode.
func (g *gaze) setDriven(x, y float64) {
	g.driven = true
	g.inX = x
	g.inY = y
}

// clearDriven removes the external signal and returns to pointer-follow mode.
func (g *gaze) clearDriven() {
	g.driven = false
}

// Offset returns the current pupil offset in viewbox units.
func (g *gaze) Offset() (x, y float64) {
	return g.x, g.y
}

// update recomputes the offset. bounds is the face's on-screen rectangle,
// used to localize the cursor in pointer-follow mode. Reduced motion forces
// the offset to (0, 0) in both modes.
func (g *gaze) update(bounds Rect, reducedMotion bool) {
	if reducedMotion {
		g.x, g.y = 0, 0
		return
	}
	if g.driven {
		g.x = clamp(g.inX, -1, 1) * MaxPupilOffset
		g.y = clamp(g.inY, -1, 1) * MaxPupilOffset
		return
	}

	cx, cy := g.pointer.CursorPosition()
	if !bounds.Contains(cx, cy) || bounds.Width <= 0 || bounds.Height <= 0 {
		// Pointer left the face region: neutral fallback.
		g.x, g.y = 0, 0
		return
	}
	center := bounds.Center()
	nx := (cx - center.X) / bounds.Width
	ny := (cy - center.Y) / bounds.Height
	g.x = clamp(nx*followGain, -MaxPupilOffset, MaxPupilOffset)
	g.y = clamp(ny*followGain, -MaxPupilOffset, MaxPupilOffset)
}
