package roboface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// DrawOp identifies the kind of draw command.
type DrawOp uint8

const (
	OpFill   DrawOp = iota // fill a closed path
	OpStroke               // stroke an open (or closed) path
)

// DrawCommand is a single render-ready instruction: one path with resolved
// color, opacity, and stroke width, in viewbox coordinates. Draw scales
// commands to the face's on-screen bounds.
type DrawCommand struct {
	Op    DrawOp
	Path  Path
	Color Color
	Alpha float64
	Width float64 // stroke width in viewbox units; OpStroke only
}

// facePlate is the shared background outline for every expression.
var facePlate = roundedSquare(3, 14)

// blinkOpenness is the residual vertical eye scale while the eyes are shut,
// leaving a thin lid slit rather than a zero-height polygon.
const blinkOpenness = 0.1

// Frame computes the render-ready command list for the current face state.
// It is a pure mapping from state to commands: calling it repeatedly without
// an intervening Update returns the same result. The returned slice is
// reused and only valid until the next Frame call.
func (f *Face) Frame() []DrawCommand {
	f.cmds = f.cmds[:0]
	if f.disposed {
		return f.cmds
	}
	p := f.currentPose()

	f.cmds = append(f.cmds, DrawCommand{
		Op:    OpFill,
		Path:  facePlate,
		Color: f.palette.color(RoleFace),
		Alpha: 1,
	})

	// Eyes squash vertically while blinking.
	openness := 1.0
	if f.blink.Blinking() {
		openness = blinkOpenness
	}
	leftEye := p.leftEye
	rightEye := p.rightEye
	if openness < 1 {
		leftEye = leftEye.ScaleAbout(leftEye.Bounds().Center(), 1, openness)
		rightEye = rightEye.ScaleAbout(rightEye.Bounds().Center(), 1, openness)
	}
	f.cmds = append(f.cmds, f.styled(leftEye, p.eyeStyle, 1), f.styled(rightEye, p.eyeStyle, 1))

	// Pupils ride the gaze offset; hidden while the lids are shut.
	if openness == 1 {
		gx, gy := f.gaze.Offset()
		lc := p.leftEye.Bounds().Center()
		rc := p.rightEye.Bounds().Center()
		pupilStyle := ShapeStyle{Role: RolePupil}
		f.cmds = append(f.cmds,
			f.styled(ellipse(lc.X+gx, lc.Y+gy, pupilR, pupilR, 16), pupilStyle, 1),
			f.styled(ellipse(rc.X+gx, rc.Y+gy, pupilR, pupilR, 16), pupilStyle, 1),
		)
	}

	f.cmds = append(f.cmds,
		f.styled(p.browLeft, browStyle, 1),
		f.styled(p.browRight, browStyle, 1),
	)

	// Mouth scales vertically with the talk signal.
	mouth := p.mouth
	if scale := mouthScale(f.mouthStyle, f.mouthValue, f.talkPhase); scale != 1 {
		mouth = mouth.ScaleAbout(mouth.Bounds().Center(), 1, scale)
	}
	f.cmds = append(f.cmds, f.styled(mouth, p.mouthStyle, 1))

	for _, a := range p.accessories {
		f.cmds = append(f.cmds, f.styled(a.path, a.style, a.alpha))
	}
	return f.cmds
}

// styled resolves a shape's style against the palette into a DrawCommand.
func (f *Face) styled(p Path, style ShapeStyle, alpha float64) DrawCommand {
	op := OpFill
	if style.StrokeWidth > 0 {
		op = OpStroke
	}
	return DrawCommand{
		Op:    op,
		Path:  p,
		Color: f.palette.color(style.Role),
		Alpha: alpha,
		Width: style.StrokeWidth,
	}
}

// --- rasterization ---

// whitePixel is a shared 1×1 white image; all face geometry is drawn as
// solid-color triangles sampling it.
var whitePixel *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// Draw rasterizes the current frame onto screen, scaled and positioned by
// the face's bounds.
func (f *Face) Draw(screen *ebiten.Image) {
	if f.disposed {
		return
	}
	scale := f.bounds.Width / ViewboxSize
	for _, cmd := range f.Frame() {
		switch cmd.Op {
		case OpFill:
			f.fillPath(screen, cmd, scale)
		case OpStroke:
			f.strokePath(screen, cmd, scale)
		}
	}
}

// vertexColor premultiplies a command's color and alpha for DrawTriangles.
func vertexColor(c Color, alpha float64) (r, g, b, a float32) {
	a64 := clamp(c.A*alpha, 0, 1)
	return float32(c.R * a64), float32(c.G * a64), float32(c.B * a64), float32(a64)
}

// fillPath draws a closed path as a fan-triangulated solid polygon.
func (f *Face) fillPath(screen *ebiten.Image, cmd DrawCommand, scale float64) {
	pts := cmd.Path.Points
	n := len(pts)
	if n < 3 {
		return
	}
	r, g, b, a := vertexColor(cmd.Color, cmd.Alpha)

	f.vertsBuf = f.vertsBuf[:0]
	for _, p := range pts {
		f.vertsBuf = append(f.vertsBuf, ebiten.Vertex{
			DstX:   float32(f.bounds.X + p.X*scale),
			DstY:   float32(f.bounds.Y + p.Y*scale),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}

	f.indsBuf = f.indsBuf[:0]
	for i := 0; i < n-2; i++ {
		f.indsBuf = append(f.indsBuf, 0, uint16(i+1), uint16(i+2))
	}

	opts := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(f.vertsBuf, f.indsBuf, ensureWhitePixel(), opts)
}

// strokePath draws a path as a constant-width ribbon strip: two vertices per
// point, averaged miter normals at interior joins.
func (f *Face) strokePath(screen *ebiten.Image, cmd DrawCommand, scale float64) {
	pts := cmd.Path.Points
	if cmd.Path.Closed && len(pts) >= 2 {
		f.ptsBuf = append(append(f.ptsBuf[:0], pts...), pts[0])
		pts = f.ptsBuf
	}
	n := len(pts)
	if n < 2 {
		return
	}
	halfW := cmd.Width * scale / 2
	r, g, b, a := vertexColor(cmd.Color, cmd.Alpha)

	f.vertsBuf = f.vertsBuf[:0]
	for i := 0; i < n; i++ {
		var nx, ny float64
		switch {
		case i == 0:
			nx, ny = perpendicular(pts[0], pts[1])
		case i == n-1:
			nx, ny = perpendicular(pts[n-2], pts[n-1])
		default:
			nx0, ny0 := perpendicular(pts[i-1], pts[i])
			nx1, ny1 := perpendicular(pts[i], pts[i+1])
			nx, ny = nx0+nx1, ny0+ny1
			if ln := dist(Vec2{}, Vec2{X: nx, Y: ny}); ln > 1e-10 {
				nx /= ln
				ny /= ln
			}
			// Maintain width at the miter, clamped to avoid spikes at
			// sharp corners.
			if dot := nx0*nx + ny0*ny; dot > 0.1 {
				s := 1.0 / dot
				if s > 2 {
					s = 2
				}
				nx *= s
				ny *= s
			}
		}

		px := f.bounds.X + pts[i].X*scale
		py := f.bounds.Y + pts[i].Y*scale
		f.vertsBuf = append(f.vertsBuf,
			ebiten.Vertex{
				DstX: float32(px + nx*halfW), DstY: float32(py + ny*halfW),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			},
			ebiten.Vertex{
				DstX: float32(px - nx*halfW), DstY: float32(py - ny*halfW),
				SrcX: 0.5, SrcY: 0.5,
				ColorR: r, ColorG: g, ColorB: b, ColorA: a,
			},
		)
	}

	f.indsBuf = f.indsBuf[:0]
	for i := 0; i < n-1; i++ {
		v := uint16(i * 2)
		f.indsBuf = append(f.indsBuf, v, v+1, v+2, v+1, v+3, v+2)
	}

	opts := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(f.vertsBuf, f.indsBuf, ensureWhitePixel(), opts)
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := dist(a, b)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}
