package roboface

import (
	"fmt"
	"os"
)

// debugLogEvery throttles the per-frame state line; a full log every frame
// at 60 TPS is unreadable.
const debugLogEvery = 60

// debugLog prints the face's animation state to stderr. Only called when
// debug mode is on.
func (f *Face) debugLog() {
	if f.frames%debugLogEvery != 0 {
		return
	}
	progress := 1.0
	if f.trans != nil {
		progress = f.trans.progress
	}
	gx, gy := f.gaze.Offset()
	_, _ = fmt.Fprintf(os.Stderr,
		"[roboface] frame %d | expr: %s | morph: %.2f | blink: %v | gaze: (%.1f, %.1f) | mouth: %.0f | reduced: %v\n",
		f.frames, f.machine.Current(), progress, f.blink.Blinking(), gx, gy, f.mouthValue, f.reduced)
}
