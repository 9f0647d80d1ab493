package roboface

import (
	"math"
	"testing"
)

func TestFrameCommandLayout(t *testing.T) {
	f := testFace(Options{})
	cmds := f.Frame()

	// Plate, two eyes, two pupils, two brows, mouth.
	if len(cmds) != 8 {
		t.Fatalf("command count = %d, want 8", len(cmds))
	}
	if cmds[0].Op != OpFill || cmds[0].Color != DefaultPalette().Face {
		t.Errorf("first command is not the face plate fill: %+v", cmds[0])
	}
	if cmds[7].Op != OpStroke {
		t.Errorf("neutral mouth should be a stroke, got op %v", cmds[7].Op)
	}
	assertNear(t, "mouth stroke width", cmds[7].Width, 2.5)
	for i, c := range cmds {
		assertNear(t, "alpha", c.Alpha, 1)
		if c.Path.Empty() {
			t.Errorf("command %d has an empty path", i)
		}
	}
}

func TestFrameIsPure(t *testing.T) {
	f := testFace(Options{MouthValue: 40})
	a := f.Frame()
	aMouth := a[7].Path.Bounds()
	b := f.Frame()
	bMouth := b[7].Path.Bounds()
	assertNear(t, "mouth height stable", bMouth.Height, aMouth.Height)
	assertNear(t, "mouth y stable", bMouth.Y, aMouth.Y)
}

func TestFrameMouthScalesWithValue(t *testing.T) {
	f := testFace(Options{})
	neutral, _ := Descriptor(ExpressionNeutral)
	base := neutral.Mouth.Bounds()

	silent := f.Frame()[7].Path.Bounds()
	assertNear(t, "silent height", silent.Height, base.Height)

	f.SetMouthValue(100)
	loud := f.Frame()[7].Path.Bounds()
	assertNearTol(t, "loud height", loud.Height, base.Height*MaxMouthScale, 1e-9)
	// Scaling is about the mouth center, so the center stays put.
	assertNearTol(t, "center preserved", loud.Center().Y, base.Center().Y, 1e-9)
}

func TestFrameBlinkSquashesEyesAndHidesPupils(t *testing.T) {
	f := testFace(Options{AutoBlink: true})
	openEye := f.Frame()[1].Path.Bounds()

	f.blink.pulse()
	cmds := f.Frame()

	// Pupils disappear while the lids are shut.
	if len(cmds) != 6 {
		t.Fatalf("command count while blinking = %d, want 6", len(cmds))
	}
	shutEye := cmds[1].Path.Bounds()
	assertNearTol(t, "eye squash", shutEye.Height, openEye.Height*blinkOpenness, 1e-6)
	assertNear(t, "eye width kept", shutEye.Width, openEye.Width)
}

func TestFramePupilsRideGazeOffset(t *testing.T) {
	f := testFace(Options{})
	f.SetPupil(1, 0)
	f.Update(frameDT)

	cmds := f.Frame()
	neutral, _ := Descriptor(ExpressionNeutral)
	want := neutral.LeftEye.Bounds().Center().X + MaxPupilOffset
	got := cmds[3].Path.Bounds().Center().X
	assertNearTol(t, "left pupil x", got, want, 1e-6)
}

func TestFrameAccessoryFadesInDuringMorph(t *testing.T) {
	f := testFace(Options{})
	f.Request(ExpressionSad)
	f.Update(frameDT)
	f.Update(frameDT)

	cmds := f.Frame()
	last := cmds[len(cmds)-1]
	if last.Color != DefaultPalette().Accent {
		t.Fatalf("expected the teardrop accessory last, got color %+v", last.Color)
	}
	if last.Alpha <= 0 || last.Alpha >= 1 {
		t.Errorf("accessory alpha mid-morph = %v, want in (0, 1)", last.Alpha)
	}

	settle(f)
	cmds = f.Frame()
	assertNear(t, "settled accessory alpha", cmds[len(cmds)-1].Alpha, 1)
}

func TestFrameCustomPalette(t *testing.T) {
	red := Color{R: 1, A: 1}
	f := testFace(Options{Palette: Palette{Eye: red}})
	cmds := f.Frame()
	if cmds[1].Color != red {
		t.Errorf("eye color = %+v, want override", cmds[1].Color)
	}
	if cmds[0].Color != DefaultPalette().Face {
		t.Errorf("plate color lost its default: %+v", cmds[0].Color)
	}
}

func TestVertexColorPremultiplies(t *testing.T) {
	r, g, b, a := vertexColor(Color{R: 1, G: 0.5, B: 0, A: 1}, 0.5)
	assertNearTol(t, "r", float64(r), 0.5, 1e-6)
	assertNearTol(t, "g", float64(g), 0.25, 1e-6)
	assertNearTol(t, "b", float64(b), 0, 1e-6)
	assertNearTol(t, "a", float64(a), 0.5, 1e-6)
}

func TestPerpendicularIsUnitNormal(t *testing.T) {
	nx, ny := perpendicular(Vec2{0, 0}, Vec2{10, 0})
	assertNear(t, "nx", nx, 0)
	assertNear(t, "|ny|", math.Abs(ny), 1)
}
