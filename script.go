package roboface

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a driving script.
type scriptStep struct {
	Action string  `json:"action"`
	Name   string  `json:"name,omitempty"`
	Value  float64 `json:"value,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Dir    int     `json:"dir,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// faceScript is the top-level JSON structure for a driving script.
type faceScript struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner sequences face inputs across frames for automated demos and
// deterministic tests. Call Step once per frame before Face.Update.
//
// Supported actions:
//
//	{"action": "expression", "name": "happy"}     request an expression
//	{"action": "cycle", "dir": -1}                cycle the expression
//	{"action": "mouth", "value": 80}              set the mouth value
//	{"action": "pupil", "x": 0.5, "y": -1}        drive the gaze
//	{"action": "clearpupil"}                      back to pointer-follow
//	{"action": "autoblink", "value": 0}           toggle auto-blink (0 = off)
//	{"action": "wait", "frames": 30}              idle for N frames
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON driving script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script faceScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse face script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse face script: no steps")
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame, applying the next action to the
// face. Wait steps consume one frame each; all other actions apply
// immediately and consume the frame they run in.
func (r *ScriptRunner) Step(f *Face) {
	if r.done {
		return
	}
	if f == nil {
		panic("roboface: ScriptRunner.Step requires a non-nil face")
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "expression":
		f.Request(Expression(st.Name))
	case "cycle":
		dir := st.Dir
		if dir == 0 {
			dir = 1
		}
		f.Cycle(dir)
	case "mouth":
		f.SetMouthValue(st.Value)
	case "pupil":
		f.SetPupil(st.X, st.Y)
	case "clearpupil":
		f.ClearPupil()
	case "autoblink":
		f.SetAutoBlink(st.Value != 0)
	case "wait":
		if st.Frames > 1 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}
