package roboface

import "math"

// The face is authored in a fixed 100×100 design viewbox and scaled to the
// rendered size at draw time.
const ViewboxSize = 100.0

// Layout constants shared by every expression.
const (
	leftEyeX  = 32.0
	rightEyeX = 68.0
	eyeY      = 42.0
	mouthY    = 70.0
	browY     = 28.0 // resting brow line
	browSpan  = 18.0
	pupilR    = 3.5
)

// PaletteRole names one of the themable colors.
type PaletteRole uint8

const (
	RoleFace PaletteRole = iota
	RoleEye
	RolePupil
	RoleMouth
	RoleAccent
)

// Palette holds the themable face colors. Zero-value entries fall back to
// the matching DefaultPalette entry (a shallow merge, not a replace).
type Palette struct {
	Face   Color
	Eye    Color
	Pupil  Color
	Mouth  Color
	Accent Color
}

// DefaultPalette returns the built-in robot color scheme.
func DefaultPalette() Palette {
	return Palette{
		Face:   Color{R: 0.13, G: 0.16, B: 0.22, A: 1},
		Eye:    Color{R: 0.55, G: 0.85, B: 1, A: 1},
		Pupil:  Color{R: 0.05, G: 0.08, B: 0.12, A: 1},
		Mouth:  Color{R: 0.55, G: 0.85, B: 1, A: 1},
		Accent: Color{R: 1, G: 0.76, B: 0.33, A: 1},
	}
}

// merged returns p with zero-value entries replaced by defaults.
func (p Palette) merged() Palette {
	def := DefaultPalette()
	if p.Face.IsZero() {
		p.Face = def.Face
	}
	if p.Eye.IsZero() {
		p.Eye = def.Eye
	}
	if p.Pupil.IsZero() {
		p.Pupil = def.Pupil
	}
	if p.Mouth.IsZero() {
		p.Mouth = def.Mouth
	}
	if p.Accent.IsZero() {
		p.Accent = def.Accent
	}
	return p
}

// color resolves a role against the (already merged) palette.
func (p Palette) color(role PaletteRole) Color {
	switch role {
	case RoleFace:
		return p.Face
	case RoleEye:
		return p.Eye
	case RolePupil:
		return p.Pupil
	case RoleMouth:
		return p.Mouth
	default:
		return p.Accent
	}
}

// ShapeStyle describes how a catalog shape is painted. StrokeWidth 0 means
// the path is filled; a positive width means it is stroked.
type ShapeStyle struct {
	Role        PaletteRole
	StrokeWidth float64
}

// BrowPose positions one eyebrow relative to the resting brow line.
// Angle is in radians, applied about the brow center; positive rotates
// clockwise, so angled poses carry mirrored signs per side.
type BrowPose struct {
	OffsetY float64
	Angle   float64
}

// GeometryDescriptor is the immutable per-expression shape and style record.
// One instance exists per Expression in the read-only catalog; it is never
// mutated at runtime, and callers MUST NOT mutate the paths it exposes.
type GeometryDescriptor struct {
	Expression Expression

	LeftEye  Path
	RightEye Path
	EyeStyle ShapeStyle

	BrowLeft  BrowPose
	BrowRight BrowPose

	Mouth      Path
	MouthStyle ShapeStyle

	// Accessory is an optional extra shape (a tear, a surprise spark).
	// Expressions without one have an empty path.
	Accessory      Path
	AccessoryStyle ShapeStyle
}

// HasAccessory reports whether this expression carries an accessory shape.
func (d *GeometryDescriptor) HasAccessory() bool {
	return !d.Accessory.Empty()
}

// catalog is the fixed Expression → GeometryDescriptor table, built once at
// package init and read-only afterwards.
var catalog = buildCatalog()

// Descriptor returns the immutable geometry for the given expression.
// ok is false for values outside the fixed expression set.
func Descriptor(e Expression) (d *GeometryDescriptor, ok bool) {
	d, ok = catalog[e]
	return d, ok
}

func buildCatalog() map[Expression]*GeometryDescriptor {
	eyeFill := ShapeStyle{Role: RoleEye}
	mouthStroke := ShapeStyle{Role: RoleMouth, StrokeWidth: 2.5}
	mouthFill := ShapeStyle{Role: RoleMouth}
	accentFill := ShapeStyle{Role: RoleAccent}
	accentStroke := ShapeStyle{Role: RoleAccent, StrokeWidth: 2}

	c := map[Expression]*GeometryDescriptor{
		ExpressionNeutral: {
			Expression: ExpressionNeutral,
			LeftEye: ellipse(leftEyeX, eyeY, 9, 9, 24),
			RightEye: ellipse(rightEyeX, eyeY, 9, 9, 24),
			EyeStyle: eyeFill,
			Mouth: smile(mouthY, 12, 1.5, 12),
			MouthStyle: mouthStroke,
		},
		ExpressionHappy: {
			Expression: ExpressionHappy,
			LeftEye: ellipse(leftEyeX, eyeY, 9, 9, 24),
			RightEye: ellipse(rightEyeX, eyeY, 9, 9, 24),
			EyeStyle: eyeFill,
			BrowLeft: BrowPose{OffsetY: -3},
			BrowRight: BrowPose{OffsetY: -3},
			Mouth: grin(mouthY-2, 14, 9, 16),
			MouthStyle: mouthFill,
		},
		ExpressionAngry: {
			Expression: ExpressionAngry,
			LeftEye: ellipse(leftEyeX, eyeY, 9, 4.5, 24),
			RightEye: ellipse(rightEyeX, eyeY, 9, 4.5, 24),
			EyeStyle: eyeFill,
			BrowLeft: BrowPose{OffsetY: 2, Angle: 0.45},
			BrowRight: BrowPose{OffsetY: 2, Angle: -0.45},
			Mouth: smile(mouthY+2, 11, -3, 12),
			MouthStyle: mouthStroke,
		},
		ExpressionSurprised: {
			Expression: ExpressionSurprised,
			LeftEye: ellipse(leftEyeX, eyeY, 11, 11, 24),
			RightEye: ellipse(rightEyeX, eyeY, 11, 11, 24),
			EyeStyle: eyeFill,
			BrowLeft: BrowPose{OffsetY: -6},
			BrowRight: BrowPose{OffsetY: -6},
			Mouth: ellipse(50, mouthY+2, 5, 6.5, 20),
			MouthStyle: mouthFill,
			Accessory: spark(82, 18, 5),
			AccessoryStyle: accentStroke,
		},
		ExpressionSad: {
			Expression: ExpressionSad,
			LeftEye: ellipse(leftEyeX, eyeY+1.5, 9, 6.5, 24),
			RightEye: ellipse(rightEyeX, eyeY+1.5, 9, 6.5, 24),
			EyeStyle: eyeFill,
			BrowLeft: BrowPose{OffsetY: -1, Angle: -0.3},
			BrowRight: BrowPose{OffsetY: -1, Angle: 0.3},
			Mouth: smile(mouthY+4, 11, -5, 12),
			MouthStyle: mouthStroke,
			Accessory: teardrop(leftEyeX-8, eyeY+12, 3.2),
			AccessoryStyle: accentFill,
		},
	}
	return c
}

// browPath materializes one eyebrow from its pose. side is -1 for the left
// brow, +1 for the right. The pose angle is applied as-is; the catalog
// stores mirrored signs per side.
func browPath(side float64, pose BrowPose) Path {
	cx := leftEyeX
	if side > 0 {
		cx = rightEyeX
	}
	cy := browY + pose.OffsetY
	half := browSpan / 2
	p := Path{Points: []Vec2{{X: cx - half, Y: cy}, {X: cx + half, Y: cy}}}
	if pose.Angle != 0 {
		p = p.RotateAbout(Vec2{X: cx, Y: cy}, pose.Angle)
	}
	return p
}

// --- procedural shape builders ---

// ellipse builds a closed ellipse path with the given number of segments.
func ellipse(cx, cy, rx, ry float64, segments int) Path {
	pts := make([]Vec2, segments)
	for i := 0; i < segments; i++ {
		a := 2 * math.Pi * float64(i) / float64(segments)
		sin, cos := math.Sincos(a)
		pts[i] = Vec2{X: cx + rx*cos, Y: cy + ry*sin}
	}
	return Path{Points: pts, Closed: true}
}

// smile builds an open mouth arc centered on x=50 at baseline y, spanning
// ±halfWidth, sagging by depth at the center (negative depth curves upward
// into a frown).
func smile(y, halfWidth, depth float64, segments int) Path {
	pts := make([]Vec2, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)
		x := 50 - halfWidth + 2*halfWidth*t
		pts[i] = Vec2{X: x, Y: y + depth*math.Sin(math.Pi*t)}
	}
	return Path{Points: pts}
}

// grin builds a closed smile: a near-flat top edge and a deep lower arc.
func grin(y, halfWidth, depth float64, segments int) Path {
	pts := make([]Vec2, 0, segments+2)
	pts = append(pts, Vec2{X: 50 - halfWidth, Y: y}, Vec2{X: 50 + halfWidth, Y: y})
	for i := 1; i < segments; i++ {
		t := float64(i) / float64(segments)
		x := 50 + halfWidth - 2*halfWidth*t
		pts = append(pts, Vec2{X: x, Y: y + depth*math.Sin(math.Pi*t)})
	}
	return Path{Points: pts, Closed: true}
}

// teardrop builds a closed drop shape: a point at the top flowing into a
// round bottom.
func teardrop(cx, cy, r float64) Path {
	const segments = 16
	pts := make([]Vec2, 0, segments+1)
	pts = append(pts, Vec2{X: cx, Y: cy - 2.2*r})
	for i := 0; i <= segments; i++ {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(segments+1)
		sin, cos := math.Sincos(a)
		// Skip the very top of the circle so the outline meets the tip cleanly.
		if sin < -0.9 && i != 0 {
			continue
		}
		pts = append(pts, Vec2{X: cx + r*cos, Y: cy + r*sin})
	}
	return Path{Points: pts, Closed: true}
}

// spark builds an open zigzag used as the surprise accessory.
func spark(cx, cy, r float64) Path {
	return Path{Points: []Vec2{
		{X: cx - r, Y: cy + r},
		{X: cx - r*0.2, Y: cy + r*0.2},
		{X: cx - r*0.4, Y: cy - r*0.1},
		{X: cx + r*0.5, Y: cy - r},
	}}
}

// roundedSquare builds the face plate outline: the full viewbox inset by
// margin, with rounded corners of the given radius.
func roundedSquare(margin, radius float64) Path {
	const cornerSegs = 6
	lo := margin
	hi := ViewboxSize - margin
	corners := [4]Vec2{
		{X: hi - radius, Y: lo + radius}, // top-right
		{X: hi - radius, Y: hi - radius}, // bottom-right
		{X: lo + radius, Y: hi - radius}, // bottom-left
		{X: lo + radius, Y: lo + radius}, // top-left
	}
	pts := make([]Vec2, 0, 4*(cornerSegs+1))
	for ci, c := range corners {
		start := -math.Pi/2 + float64(ci)*math.Pi/2
		for i := 0; i <= cornerSegs; i++ {
			a := start + math.Pi/2*float64(i)/float64(cornerSegs)
			sin, cos := math.Sincos(a)
			pts = append(pts, Vec2{X: c.X + radius*cos, Y: c.Y + radius*sin})
		}
	}
	return Path{Points: pts, Closed: true}
}
