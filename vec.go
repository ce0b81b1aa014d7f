package pge

import "math"

// Number is the set of numeric types a vector can be built over.
type Number interface {
	~int | ~int32 | ~int64 | ~uint32 | ~float32 | ~float64
}

// Vec2 is a 2D vector over any Number type.
type Vec2[T Number] struct {
	X, Y T
}

// Common instantiations.
type (
	Vi2d = Vec2[int]
	Vu2d = Vec2[uint32]
	Vf2d = Vec2[float32]
	Vd2d = Vec2[float64]
)

// V2 is a convenience function to create a Vec2.
func V2[T Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2[T]) Mul(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by a scalar.
// For integer vectors this truncates like integer division.
func (v Vec2[T]) Div(s T) Vec2[T] {
	return Vec2[T]{X: v.X / s, Y: v.Y / s}
}

// Dot returns the dot product of two vectors.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
func (v Vec2[T]) Cross(w Vec2[T]) T {
	return v.X*w.Y - v.Y*w.X
}

// Mag2 returns the squared length of the vector.
func (v Vec2[T]) Mag2() T {
	return v.X*v.X + v.Y*v.Y
}

// Mag returns the length of the vector.
func (v Vec2[T]) Mag() float64 {
	return math.Sqrt(float64(v.Mag2()))
}

// Norm returns a unit vector in the same direction as a float64 vector.
// Returns the zero vector if v has zero length.
func (v Vec2[T]) Norm() Vd2d {
	m := v.Mag()
	if m == 0 {
		return Vd2d{}
	}
	return Vd2d{X: float64(v.X) / m, Y: float64(v.Y) / m}
}

// Perp returns the vector rotated 90 degrees counter-clockwise.
func (v Vec2[T]) Perp() Vec2[T] {
	return Vec2[T]{X: -v.Y, Y: v.X}
}

// Vec2Cast converts a vector to another numeric type.
// Float to integer conversion truncates towards zero.
func Vec2Cast[U, T Number](v Vec2[T]) Vec2[U] {
	return Vec2[U]{X: U(v.X), Y: U(v.Y)}
}
