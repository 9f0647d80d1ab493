package roboface

import (
	"math"
	"testing"
)

const frameDT = 1.0 / 60

// testFace builds a face with deterministic timing and no real cursor.
func testFace(opts Options) *Face {
	if opts.Rand == nil {
		opts.Rand = testRand()
	}
	if opts.Pointer == nil {
		opts.Pointer = &fakePointer{x: -1, y: -1}
	}
	if opts.Size == 0 {
		opts.Size = 100
	}
	return New(opts)
}

// settle runs the face well past the morph window so no transition remains.
func settle(f *Face) {
	for i := 0; i < int(morphDuration/frameDT)+5; i++ {
		f.Update(frameDT)
	}
}

func TestNewDefaults(t *testing.T) {
	f := testFace(Options{AutoBlink: true})
	if f.Expression() != ExpressionNeutral {
		t.Errorf("initial expression = %q, want neutral", f.Expression())
	}
	b := f.Bounds()
	if b.Width != 100 || b.Height != 100 {
		t.Errorf("bounds = %+v, want 100x100", b)
	}
	if f.MouthValue() != 0 {
		t.Errorf("mouth value = %v, want 0", f.MouthValue())
	}
}

func TestNewClampsMouthValue(t *testing.T) {
	f := testFace(Options{MouthValue: 180})
	assertNear(t, "mouth", f.MouthValue(), 100)
	f.SetMouthValue(-5)
	assertNear(t, "mouth after set", f.MouthValue(), 0)
}

func TestCycleBackwardFromNeutralLandsOnSad(t *testing.T) {
	var got Expression
	f := testFace(Options{OnExpressionChange: func(e Expression) { got = e }})
	f.Cycle(-1)
	if f.Expression() != ExpressionSad {
		t.Errorf("expression = %q, want sad", f.Expression())
	}
	if got != ExpressionSad {
		t.Errorf("callback got %q, want sad", got)
	}
}

func TestControlledModeWaitsForOwner(t *testing.T) {
	var got Expression
	f := testFace(Options{
		Expression:         ExpressionHappy,
		OnExpressionChange: func(e Expression) { got = e },
	})

	f.Request(ExpressionSad)
	if f.Expression() != ExpressionHappy {
		t.Errorf("controlled face changed itself to %q", f.Expression())
	}
	if got != ExpressionSad {
		t.Errorf("callback got %q, want sad", got)
	}

	f.SetExpression(ExpressionSad)
	if f.Expression() != ExpressionSad {
		t.Errorf("owner set ignored: expression = %q", f.Expression())
	}
}

func TestExpressionChangeMorphsOverWindow(t *testing.T) {
	f := testFace(Options{})
	f.Request(ExpressionHappy)
	if f.trans == nil {
		t.Fatal("no transition started")
	}

	f.Update(frameDT)
	if f.trans == nil || f.trans.progress <= 0 || f.trans.progress >= 1 {
		t.Fatal("transition not mid-flight after one frame")
	}

	settle(f)
	if f.trans != nil {
		t.Fatal("transition still alive after the morph window")
	}

	// Fully settled geometry matches the destination catalog entry.
	happy, _ := Descriptor(ExpressionHappy)
	got := f.currentPose().mouth.Bounds()
	want := happy.Mouth.Bounds()
	assertNearTol(t, "mouth width", got.Width, want.Width, 1e-6)
	assertNearTol(t, "mouth height", got.Height, want.Height, 1e-6)
}

func TestPreemptedMorphStartsFromBlendedPose(t *testing.T) {
	f := testFace(Options{})
	f.Request(ExpressionHappy)
	for i := 0; i < 6; i++ {
		f.Update(frameDT)
	}
	before := f.currentPose().mouth.Bounds()

	f.Request(ExpressionAngry)
	got := f.trans.poseAt(0).mouth.Bounds()
	// Resampling shifts points slightly, never the overall shape.
	assertNearTol(t, "preempt width", got.Width, before.Width, 0.5)
	assertNearTol(t, "preempt height", got.Height, before.Height, 0.5)
	assertNearTol(t, "preempt y", got.Y, before.Y, 0.5)
}

func TestExpressionChangePulsesBlink(t *testing.T) {
	f := testFace(Options{AutoBlink: true})
	f.Request(ExpressionSurprised)
	if !f.Blinking() {
		t.Fatal("expression change did not pulse a blink")
	}
	for i := 0; i < int(blinkHold/frameDT)+2; i++ {
		f.Update(frameDT)
	}
	if f.Blinking() {
		t.Error("pulse blink did not expire")
	}
}

func TestAutoBlinkFiresWithinMaxDelay(t *testing.T) {
	f := testFace(Options{AutoBlink: true})
	blinked := false
	for i := 0; i < int(blinkDelayMax/frameDT)+2; i++ {
		f.Update(frameDT)
		if f.Blinking() {
			blinked = true
			break
		}
	}
	if !blinked {
		t.Error("no idle blink within the maximum delay")
	}
}

func TestSetAutoBlinkFalseCancelsPending(t *testing.T) {
	f := testFace(Options{AutoBlink: true})
	f.SetAutoBlink(false)
	for i := 0; i < int(blinkDelayMax/frameDT)+60; i++ {
		f.Update(frameDT)
		if f.Blinking() {
			t.Fatal("blink fired after auto-blink was disabled")
		}
	}
}

func TestDrivenPupilClampsToLimit(t *testing.T) {
	f := testFace(Options{})
	f.SetPupil(2, 0)
	f.Update(frameDT)
	x, y := f.PupilOffset()
	assertNear(t, "x", x, MaxPupilOffset)
	assertNear(t, "y", y, 0)

	f.ClearPupil()
	f.Update(frameDT)
	x, y = f.PupilOffset()
	assertNear(t, "cleared x", x, 0)
	assertNear(t, "cleared y", y, 0)
}

func TestOptionsPupilStartsDriven(t *testing.T) {
	f := testFace(Options{Pupil: &Vec2{X: -0.5, Y: 1}})
	f.Update(frameDT)
	x, y := f.PupilOffset()
	assertNear(t, "x", x, -0.5*MaxPupilOffset)
	assertNear(t, "y", y, MaxPupilOffset)
}

func TestReducedMotionSuppressesAnimation(t *testing.T) {
	f := testFace(Options{AutoBlink: true, Motion: StaticMotion(true)})
	f.SetPupil(1, 1)

	for i := 0; i < int(blinkDelayMax/frameDT)+60; i++ {
		f.Update(frameDT)
		if f.Blinking() {
			t.Fatal("blink fired under reduced motion")
		}
	}
	x, y := f.PupilOffset()
	assertNear(t, "gaze x", x, 0)
	assertNear(t, "gaze y", y, 0)

	// Expression changes apply with no intermediate frames.
	f.Request(ExpressionHappy)
	if f.trans != nil {
		t.Error("reduced motion started a morph transition")
	}
	happy, _ := Descriptor(ExpressionHappy)
	if f.current != happy {
		t.Error("descriptor did not snap to the new expression")
	}
}

func TestReducedMotionToggleMidRun(t *testing.T) {
	sw := &MotionSwitch{}
	f := testFace(Options{AutoBlink: true, Motion: sw})
	f.Request(ExpressionSad)
	f.Update(frameDT)
	if f.trans == nil {
		t.Fatal("no transition in normal mode")
	}

	sw.Set(true)
	f.Update(frameDT)
	if f.trans != nil {
		t.Error("in-flight morph survived the preference flip")
	}
	if f.Blinking() {
		t.Error("blink survived the preference flip")
	}

	// Flipping back re-arms the idle scheduler.
	sw.Set(false)
	blinked := false
	for i := 0; i < int(blinkDelayMax/frameDT)+60; i++ {
		f.Update(frameDT)
		if f.Blinking() {
			blinked = true
			break
		}
	}
	if !blinked {
		t.Error("auto-blink did not resume after reduced motion ended")
	}
}

func TestTalkPhaseAdvancesOnlyWhileTalking(t *testing.T) {
	f := testFace(Options{MouthStyle: MouthStyleOscillate})
	f.Update(frameDT)
	assertNear(t, "silent phase", f.talkPhase, 0)

	f.SetMouthValue(70)
	f.Update(frameDT)
	assertNear(t, "talking phase", f.talkPhase, frameDT*talkFrequency*2*math.Pi)
}

func TestUpdateIgnoresNegativeDT(t *testing.T) {
	f := testFace(Options{})
	f.Request(ExpressionHappy)
	f.Update(frameDT)
	p := f.trans.progress
	f.Update(-1)
	assertNear(t, "progress unchanged", f.trans.progress, p)
}

func TestSetPositionMovesBounds(t *testing.T) {
	f := testFace(Options{Size: 50})
	f.SetPosition(10, 20)
	b := f.Bounds()
	if b.X != 10 || b.Y != 20 || b.Width != 50 {
		t.Errorf("bounds = %+v, want {10 20 50 50}", b)
	}
}

func TestLabelStored(t *testing.T) {
	f := testFace(Options{Label: "status robot"})
	if f.Label() != "status robot" {
		t.Errorf("label = %q", f.Label())
	}
}

func TestDisposeStopsEverything(t *testing.T) {
	f := testFace(Options{AutoBlink: true})
	f.Request(ExpressionHappy)
	f.Dispose()

	if !f.IsDisposed() {
		t.Fatal("IsDisposed false after Dispose")
	}
	if f.Request(ExpressionSad) {
		t.Error("disposed face accepted a request")
	}
	f.Cycle(1)
	if f.Expression() != ExpressionHappy {
		t.Errorf("disposed face changed expression to %q", f.Expression())
	}
	f.Update(frameDT)
	if f.Blinking() {
		t.Error("disposed face blinked")
	}
	if got := f.Frame(); len(got) != 0 {
		t.Errorf("disposed Frame returned %d commands", len(got))
	}

	f.Dispose() // idempotent
}
