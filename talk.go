package roboface

import "math"

// MouthStyle selects how the mouth value maps to a mouth deformation.
// The observed widget variants disagreed on the formula, so both are
// available; MouthStyleScale is the default.
type MouthStyle uint8

const (
	// MouthStyleScale applies a direct vertical scale:
	// scale = 1 + value/100 × mouthGain.
	MouthStyleScale MouthStyle = iota
	// MouthStyleOscillate modulates the scale with a talk-cycle oscillation
	// whose amplitude grows with the mouth value, simulating speech.
	MouthStyleOscillate
)

const (
	// mouthGain is the maximum extra vertical scale at mouth value 100.
	mouthGain = 0.5
	// talkFrequency is the oscillation rate of the talk cycle in Hz.
	talkFrequency = 8.0
)

// MaxMouthScale is the largest vertical mouth scale either style produces.
const MaxMouthScale = 1 + mouthGain

// mouthScale maps a mouth value to the mouth's vertical scale multiplier.
// value is clamped to [0, 100]. For a fixed phase both styles are monotone
// non-decreasing in value, and both return exactly 1 at value 0.
func mouthScale(style MouthStyle, value, phase float64) float64 {
	n := clamp(value, 0, 100) / 100
	switch style {
	case MouthStyleOscillate:
		// The modulation stays strictly positive so amplitude remains
		// monotone in the mouth value at every phase.
		return 1 + n*mouthGain*(0.55+0.45*math.Sin(phase))
	default:
		return 1 + n*mouthGain
	}
}
