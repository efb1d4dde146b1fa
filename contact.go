package tumble

import "math"

// Contact describes a single detected collision between two colliders.
// Normal is a unit vector pointing from the first collider toward the second;
// Penetration is the overlap depth along it (always >= 0); Point is an
// approximate world-space contact location.
//
// A Contact is a snapshot taken at detection time. Callbacks must not assume
// the colliders or their owners are still live when the callback runs.
type Contact struct {
	Normal      Vec2
	Penetration float64
	Point       Vec2
}

// fallbackNormal is used whenever the geometry is too degenerate to produce
// a direction (coincident centers, zero-length difference).
var fallbackNormal = Vec2{X: 1, Y: 0}

// collide runs the exact narrow-phase test for a pair, dispatching on the
// shape kinds. The returned normal points from a toward b.
func collide(a, b *Collider) (Contact, bool) {
	switch {
	case a.Shape == ShapeCircle && b.Shape == ShapeCircle:
		return collideCircleCircle(a, b)
	case a.Shape == ShapeRect && b.Shape == ShapeRect:
		return collideRectRect(a, b)
	case a.Shape == ShapeRect && b.Shape == ShapeCircle:
		return collideRectCircle(a, b)
	case a.Shape == ShapeCircle && b.Shape == ShapeRect:
		// Reuse the rect-vs-circle routine and flip the normal so it still
		// points a -> b.
		c, ok := collideRectCircle(b, a)
		if ok {
			c.Normal = c.Normal.Scale(-1)
		}
		return c, ok
	}
	return Contact{}, false
}

// collideCircleCircle tests two circles. Circles touching at exactly the sum
// of their radii count as colliding (<=), so resting contacts keep reporting.
func collideCircleCircle(a, b *Collider) (Contact, bool) {
	centerA := a.WorldPosition()
	centerB := b.WorldPosition()

	dist := centerA.DistanceTo(centerB)
	sum := a.Radius + b.Radius
	if dist > sum {
		return Contact{}, false
	}

	normal := fallbackNormal // coincident centers
	if dist > 0 {
		normal = centerB.Sub(centerA).Normalize()
	}

	return Contact{
		Normal:      normal,
		Penetration: sum - dist,
		Point:       centerA.Add(normal.Scale(a.Radius)),
	}, true
}

// collideRectRect tests two AABBs with the interval-overlap test. The
// separation axis is the one with the smaller overlap; on an exact tie the
// X axis wins. The normal sign points toward the rect with the larger center
// coordinate on that axis.
func collideRectRect(a, b *Collider) (Contact, bool) {
	ra := a.bounds()
	rb := b.bounds()

	if !ra.Intersects(rb) {
		return Contact{}, false
	}

	overlapX := math.Min(ra.X+ra.Width-rb.X, rb.X+rb.Width-ra.X)
	overlapY := math.Min(ra.Y+ra.Height-rb.Y, rb.Y+rb.Height-ra.Y)

	centerA := ra.Center()
	centerB := rb.Center()

	var normal Vec2
	var penetration float64
	if overlapX <= overlapY {
		penetration = overlapX
		if centerA.X < centerB.X {
			normal = Vec2{X: 1}
		} else {
			normal = Vec2{X: -1}
		}
	} else {
		penetration = overlapY
		if centerA.Y < centerB.Y {
			normal = Vec2{Y: 1}
		} else {
			normal = Vec2{Y: -1}
		}
	}

	return Contact{
		Normal:      normal,
		Penetration: penetration,
		Point:       centerA.Add(centerB.Sub(centerA).Scale(0.5)),
	}, true
}

// collideRectCircle tests a rect against a circle by clamping the circle
// center to the rect bounds. When the center lies inside the rect the clamped
// point is the center itself, so the normal is derived from the rect center
// instead. The returned normal points from the rect toward the circle.
func collideRectCircle(rect, circle *Collider) (Contact, bool) {
	rb := rect.bounds()
	center := circle.WorldPosition()

	closest := Vec2{
		X: clamp(center.X, rb.X, rb.X+rb.Width),
		Y: clamp(center.Y, rb.Y, rb.Y+rb.Height),
	}

	dist := center.DistanceTo(closest)
	if dist > circle.Radius {
		return Contact{}, false
	}

	var normal Vec2
	if dist > 0 {
		normal = center.Sub(closest).Normalize()
	} else {
		// Circle center is inside the rect.
		normal = center.Sub(rb.Center()).Normalize()
		if normal == (Vec2{}) {
			normal = fallbackNormal
		}
	}

	return Contact{
		Normal:      normal,
		Penetration: circle.Radius - dist,
		Point:       closest,
	}, true
}
