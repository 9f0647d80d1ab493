package roboface

// PointerQueue is a PointerSource fed by injected positions rather than a
// real cursor. Queued moves are consumed one per frame, which lets scripted
// demos and tests drive pointer-follow gaze with the exact per-frame cursor
// placement a real mouse would produce.
//
// While the queue is empty the last consumed position is held, like a mouse
// nobody is moving.
type PointerQueue struct {
	queue []Vec2
	x, y  float64
}

// NewPointerQueue creates a queue resting at the given position.
func NewPointerQueue(x, y float64) *PointerQueue {
	return &PointerQueue{x: x, y: y}
}

// InjectMove queues one pointer position. It is consumed on the frame after
// any previously queued positions.
func (q *PointerQueue) InjectMove(x, y float64) {
	q.queue = append(q.queue, Vec2{X: x, Y: y})
}

// InjectGlide queues a straight-line movement from the current queue tail to
// (toX, toY) spread over the given number of frames. Minimum is 1 frame.
func (q *PointerQueue) InjectGlide(toX, toY float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	from := Vec2{X: q.x, Y: q.y}
	if n := len(q.queue); n > 0 {
		from = q.queue[n-1]
	}
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		q.InjectMove(lerp(from.X, toX, t), lerp(from.Y, toY, t))
	}
}

// CursorPosition consumes the next queued position, or repeats the current
// one when the queue is empty. The gaze controller calls this once per
// Update, so each queued move occupies exactly one frame.
func (q *PointerQueue) CursorPosition() (float64, float64) {
	if len(q.queue) > 0 {
		next := q.queue[0]
		q.queue = q.queue[1:]
		q.x, q.y = next.X, next.Y
	}
	return q.x, q.y
}

// Pending returns the number of positions not yet consumed.
func (q *PointerQueue) Pending() int {
	return len(q.queue)
}
