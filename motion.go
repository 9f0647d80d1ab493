package roboface

// MotionPreferenceSource reports the system-level reduced-motion
// accessibility preference. The face polls it every Update, so changes take
// effect on the next frame without any subscription plumbing.
//
// While reduced motion is active: blinking never fires, the gaze offset is
// pinned to (0, 0), and expression morphs snap straight to their end state.
type MotionPreferenceSource interface {
	ReducedMotion() bool
}

// StaticMotion is a fixed MotionPreferenceSource. StaticMotion(false) is the
// default for faces constructed without one.
type StaticMotion bool

// ReducedMotion returns the fixed preference value.
func (s StaticMotion) ReducedMotion() bool { return bool(s) }

// MotionSwitch is a settable MotionPreferenceSource, for hosts that bridge a
// real OS preference and for tests that flip the preference mid-run.
// Like the rest of the package it is single-threaded: call Set from the same
// goroutine that drives Update.
type MotionSwitch struct {
	reduced bool
}

// Set updates the preference. The change is observed on the next Update.
func (m *MotionSwitch) Set(reduced bool) { m.reduced = reduced }

// ReducedMotion returns the current preference value.
func (m *MotionSwitch) ReducedMotion() bool { return m.reduced }
