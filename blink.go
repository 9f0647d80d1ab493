package roboface

import "math/rand/v2"

// Blink timing. The idle delay is drawn uniformly from
// [blinkDelayMin, blinkDelayMax) seconds; the repository variants disagreed
// on the lower bound (1 s vs 2 s) and this implementation settles on 1 s.
const (
	blinkDelayMin = 1.0
	blinkDelayMax = 6.0
	blinkHold     = 0.150
)

// blinker is the idle blink scheduler: a self-rescheduling countdown that
// raises a transient blinking flag on a randomized interval. All timing is
// frame-driven (countdowns advance in update(dt)), so there is never more
// than one pending idle wait and cancellation is just zeroing state.
type blinker struct {
	rng     *rand.Rand
	enabled bool

	// idleWait is the seconds until the next idle blink; negative means no
	// pending wait (scheduler suspended).
	idleWait float64

	// hold is the remaining duration of an in-flight idle blink.
	hold float64

	// pulseHold is the remaining duration of an expression-change blink,
	// tracked separately so it neither cancels nor reschedules the idle
	// timer.
	pulseHold float64
}

func newBlinker(rng *rand.Rand) *blinker {
	return &blinker{rng: rng, idleWait: -1}
}

// Blinking reports whether the eyes are currently shut, from either the idle
// schedule or an expression-change pulse.
func (b *blinker) Blinking() bool {
	return b.hold > 0 || b.pulseHold > 0
}

// setEnabled starts or stops the scheduler. Disabling cancels the pending
// wait and any in-flight blink; enabling arms a fresh randomized wait.
func (b *blinker) setEnabled(on bool) {
	if on == b.enabled {
		return
	}
	b.enabled = on
	if on {
		b.reschedule()
	} else {
		b.idleWait = -1
		b.hold = 0
		b.pulseHold = 0
	}
}

// reschedule cancels any pending wait and arms a new one. Replacing the
// countdown wholesale guarantees at most one pending idle wait at any
// instant.
func (b *blinker) reschedule() {
	b.idleWait = blinkDelayMin + b.rng.Float64()*(blinkDelayMax-blinkDelayMin)
}

// pulse triggers one immediate blink, used to punctuate an expression
// change. Independent of the idle schedule. No-op while disabled.
func (b *blinker) pulse() {
	if !b.enabled {
		return
	}
	b.pulseHold = blinkHold
}

// update advances all countdowns by dt seconds.
func (b *blinker) update(dt float64) {
	if b.pulseHold > 0 {
		b.pulseHold -= dt
		if b.pulseHold < 0 {
			b.pulseHold = 0
		}
	}
	if !b.enabled {
		return
	}
	if b.hold > 0 {
		b.hold -= dt
		if b.hold <= 0 {
			b.hold = 0
			b.reschedule()
		}
		return
	}
	if b.idleWait < 0 {
		return
	}
	b.idleWait -= dt
	if b.idleWait <= 0 {
		b.idleWait = -1
		b.hold = blinkHold
	}
}
