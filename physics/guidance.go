package physics

import (
	"math"

	"github.com/lixenwraith/plinko/vmath"
)

// Progress maps height to [0, 1] between the drop point and the last pin row
func Progress(y, top, bottom float64) float64 {
	span := bottom - top
	if span <= 0 {
		return 1
	}
	return vmath.Clamp((y-top)/span, 0, 1)
}

// GuidanceRamp returns progress^exponent, the common shape of steering gain and damping
func GuidanceRamp(progress, exponent float64) float64 {
	return math.Pow(progress, exponent)
}

// ApplyGuidance nudges horizontal velocity toward targetX proportionally to the offset
func ApplyGuidance(k *Kinetic, targetX, strength float64) {
	k.Vel.X += (targetX - k.Pos.X) * strength
}
