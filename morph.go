package roboface

import "github.com/tanema/gween"

// morphDuration is the expression-change animation window in seconds,
// matching the spring settle window the progress curve is normalized over.
const morphDuration = springWindow

// browStyle paints both eyebrows; it is not part of the per-expression
// catalog because only the brow pose varies between expressions.
var browStyle = ShapeStyle{Role: RoleAccent, StrokeWidth: 2.5}

// accessoryPose is one accessory shape ready to render at a given opacity.
type accessoryPose struct {
	path  Path
	style ShapeStyle
	alpha float64
}

// pose is the morph-level shape set for one frame: concrete paths for every
// face part, before the blink, gaze, and mouth-value modifiers are applied.
type pose struct {
	leftEye  Path
	rightEye Path
	eyeStyle ShapeStyle

	browLeft  Path
	browRight Path

	mouth      Path
	mouthStyle ShapeStyle

	accessories []accessoryPose
}

// descriptorPose materializes the static pose for a catalog entry.
func descriptorPose(d *GeometryDescriptor) pose {
	p := pose{
		leftEye:    d.LeftEye,
		rightEye:   d.RightEye,
		eyeStyle:   d.EyeStyle,
		browLeft:   browPath(-1, d.BrowLeft),
		browRight:  browPath(+1, d.BrowRight),
		mouth:      d.Mouth,
		mouthStyle: d.MouthStyle,
	}
	if d.HasAccessory() {
		p.accessories = []accessoryPose{{path: d.Accessory, style: d.AccessoryStyle, alpha: 1}}
	}
	return p
}

// transition animates between two poses. Progress runs 0→1 over
// morphDuration on the spring curve; each morph-capable shape blends
// resampled point paths, while accessories with no counterpart in the other
// pose cross-fade via opacity instead of geometry.
type transition struct {
	tween    *gween.Tween
	progress float64
	done     bool

	leftEye   *PathInterpolator
	rightEye  *PathInterpolator
	browLeft  *PathInterpolator
	browRight *PathInterpolator
	mouth     *PathInterpolator

	// Morphed shapes adopt the destination's styles for the whole
	// transition; only accessory opacity cross-fades.
	eyeStyle   ShapeStyle
	mouthStyle ShapeStyle

	fromAcc []accessoryPose
	toAcc   []accessoryPose
}

// newTransition starts a morph from an arbitrary pose (usually the current
// blended pose, so preemption is continuous) to a catalog expression.
func newTransition(from pose, to *GeometryDescriptor) *transition {
	target := descriptorPose(to)
	return &transition{
		tween:      gween.New(0, 1, float32(morphDuration), Spring),
		leftEye:    NewPathInterpolator(from.leftEye, target.leftEye),
		rightEye:   NewPathInterpolator(from.rightEye, target.rightEye),
		browLeft:   NewPathInterpolator(from.browLeft, target.browLeft),
		browRight:  NewPathInterpolator(from.browRight, target.browRight),
		mouth:      NewPathInterpolator(from.mouth, target.mouth),
		eyeStyle:   target.eyeStyle,
		mouthStyle: target.mouthStyle,
		fromAcc:    from.accessories,
		toAcc:      target.accessories,
	}
}

// update advances the progress tween by dt seconds.
func (t *transition) update(dt float64) {
	if t.done {
		return
	}
	value, finished := t.tween.Update(float32(dt))
	t.progress = float64(value)
	if finished {
		t.progress = 1
		t.done = true
	}
}

// finish snaps the transition straight to its end state (reduced motion).
func (t *transition) finish() {
	t.progress = 1
	t.done = true
}

// poseAt returns the blended pose at the given progress. Paths are copied
// out of the interpolator buffers so the pose stays valid after further
// updates; a preempting transition snapshots its start pose this way.
func (t *transition) poseAt(progress float64) pose {
	p := pose{
		leftEye:    t.leftEye.At(progress).Clone(),
		rightEye:   t.rightEye.At(progress).Clone(),
		eyeStyle:   t.eyeStyle,
		browLeft:   t.browLeft.At(progress).Clone(),
		browRight:  t.browRight.At(progress).Clone(),
		mouth:      t.mouth.At(progress).Clone(),
		mouthStyle: t.mouthStyle,
	}
	for _, a := range t.fromAcc {
		if alpha := a.alpha * (1 - progress); alpha > 0 {
			p.accessories = append(p.accessories, accessoryPose{path: a.path, style: a.style, alpha: alpha})
		}
	}
	for _, a := range t.toAcc {
		if alpha := a.alpha * progress; alpha > 0 {
			p.accessories = append(p.accessories, accessoryPose{path: a.path, style: a.style, alpha: alpha})
		}
	}
	return p
}

// pose returns the blended pose at the current progress.
func (t *transition) pose() pose {
	return t.poseAt(t.progress)
}
