package vmath

import "math"

// Vec2 is a float64 2D vector in board units
type Vec2 struct {
	X, Y float64
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func V2Dot(a, b Vec2) float64 {
	return a.X*b.X + a.Y*b.Y
}

func V2MagSq(v Vec2) float64 {
	return v.X*v.X + v.Y*v.Y
}

func V2Mag(v Vec2) float64 {
	return math.Sqrt(V2MagSq(v))
}

// V2Normalize returns the unit vector and the original magnitude, zero-safe
func V2Normalize(v Vec2) (Vec2, float64) {
	mag := V2Mag(v)
	if mag == 0 {
		return Vec2{}, 0
	}
	inv := 1.0 / mag
	return Vec2{v.X * inv, v.Y * inv}, mag
}

// V2Reflect returns velocity reflected off a surface with unit normal n
// v' = v - 2 * dot(v, n) * n
func V2Reflect(v, n Vec2) Vec2 {
	dot2 := 2 * V2Dot(v, n)
	return Vec2{v.X - dot2*n.X, v.Y - dot2*n.Y}
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
