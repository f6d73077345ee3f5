package physics

import "github.com/lixenwraith/plinko/vmath"

// upNormal separates a ball whose centre coincides with a pin
var upNormal = vmath.Vec2{X: 0, Y: -1}

// ResolveCircleContact separates k from a static circle and bounces it
// minDist is the sum of both radii; damping scales the whole reflected velocity
// Returns false when there is no overlap
func ResolveCircleContact(k *Kinetic, center vmath.Vec2, minDist, damping float64) bool {
	d := vmath.V2Sub(k.Pos, center)
	if vmath.V2MagSq(d) >= minDist*minDist {
		return false
	}

	n, dist := vmath.V2Normalize(d)
	if dist == 0 {
		n = upNormal
	}

	// Positional correction first so the ball never sinks into the pin
	k.Pos = vmath.V2Add(k.Pos, vmath.V2Scale(n, minDist-dist))
	k.Vel = vmath.V2Scale(vmath.V2Reflect(k.Vel, n), damping)
	return true
}
