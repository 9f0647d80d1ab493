package roboface

import "testing"

func TestSpringResponseStartsAtRest(t *testing.T) {
	assertNear(t, "x(0)", springResponse(springTension, springFriction, 0), 1)
}

func TestSpringResponseDecays(t *testing.T) {
	// Displacement should have mostly settled by the end of the window.
	x := springResponse(springTension, springFriction, springWindow)
	if x < 0 || x > 0.1 {
		t.Errorf("x(window) = %v, want near 0", x)
	}
}

func TestSpringResponseCriticallyDamped(t *testing.T) {
	// tension 25, friction 10: discriminant is exactly zero.
	assertNear(t, "x(0)", springResponse(25, 10, 0), 1)
	x := springResponse(25, 10, 2)
	want := (1 + 5*2.0) * 0.0000453999297624848515
	assertNearTol(t, "x(2)", x, want, 1e-6)
}

func TestSpringEaseBoundaries(t *testing.T) {
	fn := SpringEase(springTension, springFriction, springWindow)
	assertNear(t, "progress(0)", float64(fn(0, 0, 1, 1)), 0)
	assertNear(t, "progress(d)", float64(fn(1, 0, 1, 1)), 1)
	// Offset and range apply the usual way.
	assertNear(t, "offset end", float64(fn(1, 5, 10, 1)), 15)
}

func TestSpringEaseMonotone(t *testing.T) {
	fn := Spring
	prev := float64(fn(0, 0, 1, 1))
	for i := 1; i <= 100; i++ {
		u := float32(i) / 100
		cur := float64(fn(u, 0, 1, 1))
		if cur < prev-epsilon {
			t.Fatalf("progress decreased at u=%v: %v -> %v", u, prev, cur)
		}
		prev = cur
	}
}

func TestSpringEaseZeroDuration(t *testing.T) {
	fn := Spring
	assertNear(t, "d=0", float64(fn(0, 0, 1, 0)), 1)
}
