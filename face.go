package roboface

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
)

// Options configures a Face at construction. The zero value is usable but
// bare (blinking off, default size); DefaultOptions is the common starting
// point.
type Options struct {
	// Size is the rendered dimension in pixels (the face is square).
	// Defaults to 100.
	Size float64

	// X, Y position the face's top-left corner on screen.
	X, Y float64

	// Expression, when set, puts the face in controlled mode: the owner
	// supplies the expression and transition requests only notify via
	// OnExpressionChange. Leave empty for uncontrolled mode.
	Expression Expression

	// InitialExpression is the starting expression in uncontrolled mode.
	// Defaults to neutral. Invalid values fall back to neutral.
	InitialExpression Expression

	// Palette overrides the default colors. Zero entries keep their
	// defaults (shallow merge).
	Palette Palette

	// AutoBlink enables the idle blink scheduler.
	AutoBlink bool

	// OnExpressionChange fires with the new expression name on every
	// accepted transition request.
	OnExpressionChange func(Expression)

	// MouthValue is the initial talk signal in [0, 100]; out-of-range
	// values are clamped.
	MouthValue float64

	// MouthStyle selects the mouth-value formula.
	MouthStyle MouthStyle

	// Pupil, when non-nil, is an externally driven gaze signal in [-1, 1]
	// per axis and switches the gaze controller into driven mode. Nil
	// selects pointer-follow mode.
	Pupil *Vec2

	// Label is an accessibility description passed through to the owner;
	// the widget itself only stores it.
	Label string

	// Motion supplies the reduced-motion preference. Defaults to
	// StaticMotion(false).
	Motion MotionPreferenceSource

	// Pointer supplies the cursor position for pointer-follow gaze.
	// Defaults to the Ebitengine cursor.
	Pointer PointerSource

	// Rand is the random source for blink scheduling. Defaults to a
	// freshly seeded generator; inject a fixed-seed source in tests.
	Rand *rand.Rand
}

// DefaultOptions returns the options most demos want: 100 px, auto-blink on.
func DefaultOptions() Options {
	return Options{Size: 100, AutoBlink: true}
}

// Face is one animated robot face instance. It exclusively owns its state;
// drive it with Update(dt) once per frame and render it with Draw. A Face is
// single-threaded: all calls must come from the goroutine running the game
// loop.
type Face struct {
	bounds     Rect
	palette    Palette
	label      string
	mouthStyle MouthStyle

	machine *machine
	blink   *blinker
	gaze    *gaze
	motion  MotionPreferenceSource

	controlled bool
	autoBlink  bool
	reduced    bool

	mouthValue float64
	talkPhase  float64

	current *GeometryDescriptor
	trans   *transition

	cmds     []DrawCommand
	vertsBuf []ebiten.Vertex
	indsBuf  []uint16
	ptsBuf   []Vec2

	debug    bool
	frames   int
	disposed bool
}

// New creates a face instance from the given options.
func New(opts Options) *Face {
	size := opts.Size
	if size <= 0 {
		size = 100
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	motion := opts.Motion
	if motion == nil {
		motion = StaticMotion(false)
	}

	controlled := opts.Expression != ""
	initial := opts.InitialExpression
	if controlled {
		initial = opts.Expression
	}
	if !initial.Valid() {
		initial = ExpressionNeutral
	}

	f := &Face{
		bounds:     Rect{X: opts.X, Y: opts.Y, Width: size, Height: size},
		palette:    opts.Palette.merged(),
		label:      opts.Label,
		mouthStyle: opts.MouthStyle,
		machine:    newMachine(initial, controlled),
		blink:      newBlinker(rng),
		gaze:       newGaze(opts.Pointer),
		motion:     motion,
		controlled: controlled,
		autoBlink:  opts.AutoBlink,
		mouthValue: clamp(opts.MouthValue, 0, 100),
	}
	f.machine.onChange = opts.OnExpressionChange
	f.machine.apply = f.applyExpression
	f.current, _ = Descriptor(initial)

	f.reduced = motion.ReducedMotion()
	f.blink.setEnabled(f.autoBlink && !f.reduced)
	if opts.Pupil != nil {
		f.gaze.setDriven(opts.Pupil.X, opts.Pupil.Y)
	}
	return f
}

// Update advances blink, gaze, talk, and morph state by dt seconds. Call
// once per frame; after Dispose it is a no-op.
func (f *Face) Update(dt float64) {
	if f.disposed || dt < 0 {
		return
	}

	// React live to preference changes, not just at startup.
	reduced := f.motion.ReducedMotion()
	if reduced != f.reduced {
		f.reduced = reduced
		f.blink.setEnabled(f.autoBlink && !reduced)
		if reduced && f.trans != nil {
			f.trans.finish()
		}
	}

	f.blink.update(dt)
	f.gaze.update(f.bounds, f.reduced)

	if f.mouthValue > 0 && f.mouthStyle == MouthStyleOscillate {
		f.talkPhase += dt * talkFrequency * 2 * math.Pi
	}

	if f.trans != nil {
		f.trans.update(dt)
		if f.trans.done {
			f.trans = nil
		}
	}

	f.frames++
	if f.debug {
		f.debugLog()
	}
}

// applyExpression is the machine's apply hook: it starts the morph toward
// the new expression and fires the punctuation blink. Under reduced motion
// the new geometry applies with no intermediate frames.
func (f *Face) applyExpression(next Expression) {
	d, ok := Descriptor(next)
	if !ok {
		return
	}
	if f.reduced {
		f.current = d
		f.trans = nil
		return
	}
	from := f.currentPose()
	f.current = d
	f.trans = newTransition(from, d)
	f.blink.pulse()
}

// currentPose returns the pose being displayed this frame: the in-flight
// morph blend, or the static descriptor pose.
func (f *Face) currentPose() pose {
	if f.trans != nil {
		return f.trans.pose()
	}
	return descriptorPose(f.current)
}

// Expression returns the current expression.
func (f *Face) Expression() Expression {
	return f.machine.Current()
}

// SetExpression is the controlled input path: it applies the expression
// directly, bypassing the change callback (the caller already knows the
// value). Invalid names are silently ignored. In uncontrolled mode it
// behaves as a direct set with the same validation.
func (f *Face) SetExpression(name Expression) {
	if f.disposed {
		return
	}
	f.machine.set(name)
}

// Request asks for an expression transition with full request semantics:
// validation, state update in uncontrolled mode, and the change callback on
// accept. Returns whether the request was accepted.
func (f *Face) Request(name Expression) bool {
	if f.disposed {
		return false
	}
	return f.machine.Request(name)
}

// Cycle requests the next (+1) or previous (-1) expression in the fixed
// cycle order.
func (f *Face) Cycle(dir int) {
	if f.disposed {
		return
	}
	f.machine.Cycle(dir)
}

// Handle returns the remote-control surface for the face's owner.
func (f *Face) Handle() Handle {
	return Handle{face: f}
}

// SetMouthValue updates the talk signal. Values outside [0, 100] are
// clamped.
func (f *Face) SetMouthValue(v float64) {
	f.mouthValue = clamp(v, 0, 100)
}

// MouthValue returns the clamped talk signal.
func (f *Face) MouthValue() float64 {
	return f.mouthValue
}

// SetPupil supplies the externally driven gaze signal and switches the gaze
// controller into driven mode. Components are clamped to [-1, 1].
func (f *Face) SetPupil(x, y float64) {
	f.gaze.setDriven(x, y)
}

// ClearPupil removes the driven gaze signal, returning to pointer-follow
// mode.
func (f *Face) ClearPupil() {
	f.gaze.clearDriven()
}

// PupilOffset returns the current pupil offset in viewbox units. Magnitude
// never exceeds MaxPupilOffset on either axis.
func (f *Face) PupilOffset() (x, y float64) {
	return f.gaze.Offset()
}

// Blinking reports whether the eyes are currently shut.
func (f *Face) Blinking() bool {
	return f.blink.Blinking()
}

// SetAutoBlink enables or disables the idle blink scheduler. Disabling
// cancels any pending blink immediately.
func (f *Face) SetAutoBlink(on bool) {
	f.autoBlink = on
	f.blink.setEnabled(on && !f.reduced)
}

// SetPalette replaces the color palette. Zero entries fall back to defaults.
func (f *Face) SetPalette(p Palette) {
	f.palette = p.merged()
}

// SetPosition moves the face's top-left corner.
func (f *Face) SetPosition(x, y float64) {
	f.bounds.X = x
	f.bounds.Y = y
}

// Bounds returns the face's on-screen rectangle.
func (f *Face) Bounds() Rect {
	return f.bounds
}

// Label returns the accessibility description supplied at construction.
func (f *Face) Label() string {
	return f.label
}

// SetDebug enables per-frame state logging to stderr.
func (f *Face) SetDebug(on bool) {
	f.debug = on
}

// Dispose releases the face. All countdowns stop, pointer-follow gaze goes
// inert, and subsequent Update/Draw calls are no-ops. Dispose is idempotent.
func (f *Face) Dispose() {
	if f.disposed {
		return
	}
	f.disposed = true
	f.blink.setEnabled(false)
	f.trans = nil
	f.cmds = nil
	f.vertsBuf = nil
	f.indsBuf = nil
	f.ptsBuf = nil
}

// IsDisposed reports whether Dispose has been called.
func (f *Face) IsDisposed() bool {
	return f.disposed
}
