package roboface

// machine holds the current expression and validates transition requests.
// It has exactly NumExpressions states with no terminal state; every state
// is reachable from every other via Request or Cycle.
//
// In controlled mode the owner supplies the expression from outside and
// Request only notifies; in uncontrolled mode Request also updates the
// internal state.
type machine struct {
	controlled bool
	current    Expression
	onChange   func(Expression)

	// apply is invoked with the new expression whenever the machine's own
	// state changes (uncontrolled accepts). The Face uses it to start the
	// morph transition and the punctuation blink.
	apply func(Expression)
}

func newMachine(initial Expression, controlled bool) *machine {
	if !initial.Valid() {
		initial = ExpressionNeutral
	}
	return &machine{controlled: controlled, current: initial}
}

// Request asks for a transition to name. Values outside the fixed expression
// set are silently ignored: no state change, no callback. Returns whether
// the request was accepted.
//
// On accept, the change callback always fires; in uncontrolled mode the
// internal state updates first.
func (m *machine) Request(name Expression) bool {
	if !name.Valid() {
		return false
	}
	if !m.controlled && name != m.current {
		m.current = name
		if m.apply != nil {
			m.apply(name)
		}
	}
	if m.onChange != nil {
		m.onChange(name)
	}
	return true
}

// Cycle requests the expression dir steps away in the fixed cycle order.
// dir is normally +1 or -1; any step size wraps correctly.
func (m *machine) Cycle(dir int) {
	n := NumExpressions
	idx := m.current.index()
	next := ((idx+dir)%n + n) % n
	m.Request(expressionOrder[next])
}

// Current returns the active expression.
func (m *machine) Current() Expression {
	return m.current
}

// set force-updates the machine's state without firing the change callback.
// This is the controlled-input path: the owner already knows the value.
func (m *machine) set(name Expression) bool {
	if !name.Valid() || name == m.current {
		return false
	}
	m.current = name
	if m.apply != nil {
		m.apply(name)
	}
	return true
}

// Handle is the remote-control surface exposed to the face's owner. It only
// forwards calls; the Face retains exclusive ownership of its state.
type Handle struct {
	face *Face
}

// Expression returns the face's current expression.
func (h Handle) Expression() Expression {
	return h.face.machine.Current()
}

// SetExpression requests a transition, with the same validation and
// notification behavior as any other transition request: invalid names are
// silently ignored, accepted ones fire the owner's change callback.
func (h Handle) SetExpression(name Expression) {
	h.face.machine.Request(name)
}
