package roboface

import "testing"

func TestLoadScriptErrors(t *testing.T) {
	if _, err := LoadScript([]byte("{not json")); err == nil {
		t.Error("malformed JSON accepted")
	}
	if _, err := LoadScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("empty script accepted")
	}
}

func TestScriptRunnerAppliesActions(t *testing.T) {
	script := []byte(`{"steps": [
		{"action": "expression", "name": "happy"},
		{"action": "mouth", "value": 80},
		{"action": "pupil", "x": 1, "y": 0},
		{"action": "autoblink", "value": 0}
	]}`)
	r, err := LoadScript(script)
	if err != nil {
		t.Fatal(err)
	}

	f := testFace(Options{AutoBlink: true})
	for !r.Done() {
		r.Step(f)
		f.Update(frameDT)
	}

	if f.Expression() != ExpressionHappy {
		t.Errorf("expression = %q, want happy", f.Expression())
	}
	assertNear(t, "mouth", f.MouthValue(), 80)
	x, _ := f.PupilOffset()
	assertNear(t, "pupil x", x, MaxPupilOffset)
	if f.blink.enabled {
		t.Error("auto-blink still enabled after script")
	}
}

func TestScriptRunnerWaitConsumesFrames(t *testing.T) {
	script := []byte(`{"steps": [
		{"action": "wait", "frames": 5},
		{"action": "expression", "name": "sad"}
	]}`)
	r, err := LoadScript(script)
	if err != nil {
		t.Fatal(err)
	}

	f := testFace(Options{})
	frames := 0
	for !r.Done() {
		r.Step(f)
		f.Update(frameDT)
		frames++
		if frames > 20 {
			t.Fatal("script never finished")
		}
	}
	if frames != 6 {
		t.Errorf("script took %d frames, want 6", frames)
	}
	if f.Expression() != ExpressionSad {
		t.Errorf("expression = %q, want sad", f.Expression())
	}
}

func TestScriptRunnerCycleDefaultsForward(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [{"action": "cycle"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	f := testFace(Options{})
	r.Step(f)
	if f.Expression() != ExpressionHappy {
		t.Errorf("expression = %q, want happy", f.Expression())
	}
}

func TestScriptRunnerStepAfterDone(t *testing.T) {
	r, err := LoadScript([]byte(`{"steps": [{"action": "mouth", "value": 10}]}`))
	if err != nil {
		t.Fatal(err)
	}
	f := testFace(Options{})
	r.Step(f)
	if !r.Done() {
		t.Fatal("single-step script not done after one step")
	}
	r.Step(f) // no-op, must not panic
	assertNear(t, "mouth", f.MouthValue(), 10)
}
