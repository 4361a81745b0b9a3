package game

import "math"

// Vec is a point or direction in screen space. y grows downwards.
type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

func (v Vec) Mul(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

func (v Vec) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

func (v Vec) Dist(o Vec) float64 {
	return v.Sub(o).Len()
}

// Normalised returns the unit vector of v, or v itself when it has no
// length.
func (v Vec) Normalised() Vec {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec{v.X / l, v.Y / l}
}
