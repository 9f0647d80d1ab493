package roboface

import (
	"math"

	"github.com/tanema/gween/ease"
)

// SpringEase converts a damped spring response (unit mass, the given tension
// and friction) into a gween easing function. The spring's first `window`
// seconds are normalized onto the tween's duration, so a tween driven by the
// returned function lands exactly on its target when it finishes regardless
// of how much residual settle the raw spring would still have.
func SpringEase(tension, friction, window float64) ease.TweenFunc {
	end := springResponse(tension, friction, window)
	denom := 1 - end
	if denom < 1e-10 {
		denom = 1
	}
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		u := clamp(float64(t)/float64(d), 0, 1)
		x := springResponse(tension, friction, u*window)
		p := clamp((1-x)/denom, 0, 1)
		return b + c*float32(p)
	}
}

// springResponse returns the displacement x(t) of a unit-mass damped spring
// released from x=1 at rest: x'' = -tension·x - friction·x'. Handles the
// overdamped, critically damped, and underdamped cases.
func springResponse(tension, friction, t float64) float64 {
	if t <= 0 {
		return 1
	}
	disc := friction*friction - 4*tension
	switch {
	case disc > 1e-9:
		// Overdamped: two real roots.
		s := math.Sqrt(disc)
		r1 := (-friction + s) / 2
		r2 := (-friction - s) / 2
		a := -r2 / (r1 - r2)
		b := r1 / (r1 - r2)
		return a*math.Exp(r1*t) + b*math.Exp(r2*t)
	case disc < -1e-9:
		// Underdamped: decaying oscillation.
		omega := math.Sqrt(-disc) / 2
		decay := math.Exp(-friction / 2 * t)
		return decay * (math.Cos(omega*t) + friction/(2*omega)*math.Sin(omega*t))
	default:
		// Critically damped.
		h := friction / 2
		return (1 + h*t) * math.Exp(-h*t)
	}
}

// Spring is the default expression-morph progress curve: the near-critically
// damped spring observed in the richer widget variant (mass 1, tension 120,
// friction 22) normalized over a 600 ms settle window.
var Spring = SpringEase(springTension, springFriction, springWindow)

const (
	springTension  = 120
	springFriction = 22
	springWindow   = 0.6
)
