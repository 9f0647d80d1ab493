package roboface

import "math"

// Path is a polyline shape in the 100×100 design viewbox. Closed paths are
// filled; open paths are stroked. The final closing segment of a closed path
// is implicit (the last point does not repeat the first).
type Path struct {
	Points []Vec2
	Closed bool
}

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	pts := make([]Vec2, len(p.Points))
	copy(pts, p.Points)
	return Path{Points: pts, Closed: p.Closed}
}

// Empty reports whether the path has no renderable geometry.
func (p Path) Empty() bool {
	return len(p.Points) < 2
}

// Bounds returns the path's axis-aligned bounding box.
func (p Path) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	minX, minY := p.Points[0].X, p.Points[0].Y
	maxX, maxY := minX, minY
	for _, pt := range p.Points[1:] {
		if pt.X < minX {
			minX = pt.X
		}
		if pt.X > maxX {
			maxX = pt.X
		}
		if pt.Y < minY {
			minY = pt.Y
		}
		if pt.Y > maxY {
			maxY = pt.Y
		}
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Length returns the total polyline length, including the implicit closing
// segment for closed paths.
func (p Path) Length() float64 {
	n := len(p.Points)
	if n < 2 {
		return 0
	}
	var total float64
	for i := 1; i < n; i++ {
		total += dist(p.Points[i-1], p.Points[i])
	}
	if p.Closed {
		total += dist(p.Points[n-1], p.Points[0])
	}
	return total
}

// Resample returns a copy of the path redistributed to exactly count points,
// spaced uniformly by cumulative arc length. The first point is preserved;
// for open paths the last resampled point coincides with the original
// endpoint. count must be at least 2.
func (p Path) Resample(count int) Path {
	if count < 2 {
		count = 2
	}
	n := len(p.Points)
	if n < 2 {
		return Path{Points: make([]Vec2, 0), Closed: p.Closed}
	}

	// Segment endpoints, materializing the closing segment for closed paths.
	src := p.Points
	if p.Closed {
		src = append(append(make([]Vec2, 0, n+1), p.Points...), p.Points[0])
	}

	// Cumulative arc length per source point.
	cum := make([]float64, len(src))
	for i := 1; i < len(src); i++ {
		cum[i] = cum[i-1] + dist(src[i-1], src[i])
	}
	total := cum[len(cum)-1]

	out := make([]Vec2, count)
	if total < 1e-10 {
		for i := range out {
			out[i] = src[0]
		}
		return Path{Points: out, Closed: p.Closed}
	}

	// A closed resampled path leaves the seam to the implicit closing
	// segment, so the count samples cover [0, total) rather than [0, total].
	steps := count - 1
	if p.Closed {
		steps = count
	}

	seg := 1
	for i := 0; i < count; i++ {
		target := total * float64(i) / float64(steps)
		for seg < len(src)-1 && cum[seg] < target {
			seg++
		}
		segLen := cum[seg] - cum[seg-1]
		var t float64
		if segLen > 1e-10 {
			t = (target - cum[seg-1]) / segLen
		}
		a, b := src[seg-1], src[seg]
		out[i] = Vec2{X: lerp(a.X, b.X, t), Y: lerp(a.Y, b.Y, t)}
	}
	return Path{Points: out, Closed: p.Closed}
}

// Translate returns a copy of the path offset by (dx, dy).
func (p Path) Translate(dx, dy float64) Path {
	out := p.Clone()
	for i := range out.Points {
		out.Points[i].X += dx
		out.Points[i].Y += dy
	}
	return out
}

// ScaleAbout returns a copy of the path scaled by (sx, sy) about the given
// center point.
func (p Path) ScaleAbout(center Vec2, sx, sy float64) Path {
	out := p.Clone()
	for i := range out.Points {
		out.Points[i].X = center.X + (out.Points[i].X-center.X)*sx
		out.Points[i].Y = center.Y + (out.Points[i].Y-center.Y)*sy
	}
	return out
}

// RotateAbout returns a copy of the path rotated by angle radians about the
// given center point.
func (p Path) RotateAbout(center Vec2, angle float64) Path {
	sin, cos := math.Sincos(angle)
	out := p.Clone()
	for i := range out.Points {
		dx := out.Points[i].X - center.X
		dy := out.Points[i].Y - center.Y
		out.Points[i].X = center.X + cos*dx - sin*dy
		out.Points[i].Y = center.Y + sin*dx + cos*dy
	}
	return out
}

// PathInterpolator blends two paths of possibly different point counts.
// Both endpoints are resampled once at construction to a shared count, so
// repeated At calls only blend point positions.
type PathInterpolator struct {
	from, to Path
	buf      []Vec2
}

// interpMinSamples is the floor on the shared resample count. Small source
// paths (a 4-point mouth line, say) would otherwise morph with visible
// faceting.
const interpMinSamples = 24

// NewPathInterpolator creates an interpolator from one path to another.
// The shared point count is the larger of the two inputs' counts, with a
// floor of interpMinSamples.
func NewPathInterpolator(from, to Path) *PathInterpolator {
	count := len(from.Points)
	if len(to.Points) > count {
		count = len(to.Points)
	}
	if count < interpMinSamples {
		count = interpMinSamples
	}
	// The blended path is closed if the destination is; a seam appearing
	// mid-morph looks worse than one disappearing.
	closed := to.Closed
	f := from.Resample(count)
	t := to.Resample(count)
	f.Closed = closed
	t.Closed = closed
	return &PathInterpolator{from: f, to: t, buf: make([]Vec2, count)}
}

// At returns the blended path at progress in [0, 1]. Progress is clamped.
// The returned path shares the interpolator's internal buffer and is only
// valid until the next At call.
func (pi *PathInterpolator) At(progress float64) Path {
	progress = clamp(progress, 0, 1)
	for i := range pi.buf {
		a := pi.from.Points[i]
		b := pi.to.Points[i]
		pi.buf[i] = Vec2{X: lerp(a.X, b.X, progress), Y: lerp(a.Y, b.Y, progress)}
	}
	return Path{Points: pi.buf, Closed: pi.to.Closed}
}

func dist(a, b Vec2) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}
