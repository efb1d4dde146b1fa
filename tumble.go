package tumble

import "math"

// Vec2 is a 2D vector used for positions, offsets, velocities, and directions
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{v.X + other.X, v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and other.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Magnitude returns the length of v.
func (v Vec2) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// MagnitudeSq returns the squared length of v. Cheaper than Magnitude when
// only comparing distances.
func (v Vec2) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns v scaled to unit length. The zero vector normalizes to
// the zero vector rather than NaN; callers that need a usable direction must
// substitute their own fallback (the collision code uses (1, 0)).
func (v Vec2) Normalize() Vec2 {
	mag := math.Sqrt(v.X*v.X + v.Y*v.Y)
	if mag == 0 {
		return Vec2{}
	}
	return Vec2{v.X / mag, v.Y / mag}
}

// DistanceTo returns the distance between v and other.
func (v Vec2) DistanceTo(other Vec2) float64 {
	dx := other.X - v.X
	dy := other.Y - v.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// ShapeKind distinguishes collider geometry.
type ShapeKind uint8

const (
	ShapeCircle ShapeKind = iota // circle with Radius
	ShapeRect                    // axis-aligned rectangle with Width and Height
)

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
