package vmath

import (
	"math"
)

// Vec2 is a mutable float64 2D point/vector in surface coordinates
// Pointer methods mutate the receiver and return it for chaining
type Vec2 struct {
	X, Y float64
}

// V2 creates a Vec2
func V2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// V2Add returns a + b as a new vector
func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// V2Sub returns a - b as a new vector
func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// Set copies o into v
func (v *Vec2) Set(o Vec2) *Vec2 {
	v.X = o.X
	v.Y = o.Y
	return v
}

// Add adds o in place
func (v *Vec2) Add(o Vec2) *Vec2 {
	v.X += o.X
	v.Y += o.Y
	return v
}

// Sub subtracts o in place
func (v *Vec2) Sub(o Vec2) *Vec2 {
	v.X -= o.X
	v.Y -= o.Y
	return v
}

// Scale multiplies both components by s in place
func (v *Vec2) Scale(s float64) *Vec2 {
	v.X *= s
	v.Y *= s
	return v
}

// Length returns the euclidean magnitude
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize scales v to unit length, zero vector is left unchanged
func (v *Vec2) Normalize() *Vec2 {
	l := math.Sqrt(v.X*v.X + v.Y*v.Y)
	if l == 0 {
		return v
	}
	v.X /= l
	v.Y /= l
	return v
}

// Angle returns atan2(y, x) in radians
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

func (v Vec2) DistanceTo(o Vec2) float64 {
	return math.Sqrt(v.DistanceToSq(o))
}

func (v Vec2) DistanceToSq(o Vec2) float64 {
	dx := o.X - v.X
	dy := o.Y - v.Y
	return dx*dx + dy*dy
}

// Clone returns a copy detached from v
func (v Vec2) Clone() Vec2 {
	return v
}
