package roboface

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts to an 8-bit premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	a := clamp(c.A, 0, 1)
	return color.RGBA{
		R: uint8(clamp(c.R, 0, 1) * a * 255),
		G: uint8(clamp(c.G, 0, 1) * a * 255),
		B: uint8(clamp(c.B, 0, 1) * a * 255),
		A: uint8(a * 255),
	}
}

// IsZero reports whether every component is zero. A zero Color in a Palette
// means "unset" and falls back to the default for that role.
func (c Color) IsZero() bool {
	return c.R == 0 && c.G == 0 && c.B == 0 && c.A == 0
}

// Vec2 is a 2D vector used for positions, offsets, and path points
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Expression is a named discrete facial mood state. Only the five values
// below are valid; any other value is rejected wherever an Expression is
// accepted.
type Expression string

const (
	ExpressionNeutral   Expression = "neutral"
	ExpressionHappy     Expression = "happy"
	ExpressionAngry     Expression = "angry"
	ExpressionSurprised Expression = "surprised"
	ExpressionSad       Expression = "sad"
)

// expressionOrder is the fixed cycle order. Cycle(+1)/Cycle(-1) wrap over
// this list.
var expressionOrder = [...]Expression{
	ExpressionNeutral,
	ExpressionHappy,
	ExpressionAngry,
	ExpressionSurprised,
	ExpressionSad,
}

// NumExpressions is the size of the fixed expression set.
const NumExpressions = len(expressionOrder)

// Valid reports whether e is a member of the fixed expression set.
func (e Expression) Valid() bool {
	return e.index() >= 0
}

// index returns e's position in the cycle order, or -1 if e is not a valid
// expression.
func (e Expression) index() int {
	for i, x := range expressionOrder {
		if x == e {
			return i
		}
	}
	return -1
}

// Expressions returns the fixed expression set in cycle order.
// The returned slice is a copy and may be mutated freely.
func Expressions() []Expression {
	out := make([]Expression, NumExpressions)
	copy(out[:], expressionOrder[:])
	return out
}

// clamp limits v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
