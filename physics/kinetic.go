package physics

import "github.com/lixenwraith/plinko/vmath"

// Kinetic is position and velocity in board units, velocity per tick
type Kinetic struct {
	Pos vmath.Vec2
	Vel vmath.Vec2
}

// Integrate advances position by one tick of velocity
func Integrate(k *Kinetic) {
	k.Pos = vmath.V2Add(k.Pos, k.Vel)
}

// ReflectBoundsX clamps x to [minX, maxX] and reflects horizontal velocity with damping
// Returns true if a wall was touched
func ReflectBoundsX(k *Kinetic, minX, maxX, damping float64) bool {
	if k.Pos.X < minX {
		k.Pos.X = minX
		k.Vel.X = -k.Vel.X * damping
		return true
	}
	if k.Pos.X > maxX {
		k.Pos.X = maxX
		k.Vel.X = -k.Vel.X * damping
		return true
	}
	return false
}
