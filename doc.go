// Package roboface is an animated robot face widget for [Ebitengine].
//
// The widget maps a small state vector (an expression name, a mouth value
// driving the talk animation, an optional gaze signal, and a transient blink
// flag) to vector geometry every frame. Expression changes morph the face
// shapes through a spring-curve path interpolation, an idle scheduler blinks
// the eyes on a randomized interval, and the pupils either follow the cursor
// or an externally supplied signal.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	face := roboface.New(roboface.DefaultOptions())
//	roboface.Run(face, roboface.RunConfig{
//		Title: "robot", Width: 320, Height: 320,
//	})
//
// For full control, implement [ebiten.Game] yourself and call
// [Face.Update] and [Face.Draw] directly:
//
//	type Game struct{ face *roboface.Face }
//
//	func (g *Game) Update() error              { g.face.Update(1.0 / float64(ebiten.TPS())); return nil }
//	func (g *Game) Draw(s *ebiten.Image)       { g.face.Draw(s) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Expressions
//
// The face knows five expressions: neutral, happy, angry, surprised, and
// sad. Transition requests naming anything else are silently ignored: no
// state change, no callback, no error. Drive transitions with
// [Face.Request], step through the fixed cycle order with [Face.Cycle], or
// hand the owner a [Handle] for remote control.
//
// Construction with Options.Expression set puts the face in controlled
// mode: requests only notify via OnExpressionChange, and the owner feeds
// the accepted value back through [Face.SetExpression].
//
// # Accessibility
//
// The face consumes a reduced-motion preference through an injected
// [MotionPreferenceSource], re-polled every frame: while active, blinking
// stops, the gaze pins to center, and expression changes apply without
// intermediate frames.
//
// # Single-threaded model
//
// A Face owns its state exclusively and expects every call from the
// goroutine running the game loop. Blink timing and morph progress are
// frame-driven countdowns advanced by [Face.Update]; there are no internal
// goroutines or timers to leak, and [Face.Dispose] ends all animation
// permanently.
//
// [Ebitengine]: https://ebitengine.org
package roboface
