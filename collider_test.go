package tumble

import (
	"math"
	"testing"
)

func TestColliderWorldPosition(t *testing.T) {
	e := newTestEntity(100, 50)
	c := NewCircleCollider(e, 16)
	assertVec(t, "world position", c.WorldPosition(), Vec2{100, 50})

	c.Offset = Vec2{10, -5}
	assertVec(t, "with offset", c.WorldPosition(), Vec2{110, 45})
}

func TestColliderWorldPositionNoOwner(t *testing.T) {
	// Ownerless colliders anchor at their offset, treated as world-relative.
	c := NewCircleCollider(nil, 16)
	c.Offset = Vec2{30, 40}
	assertVec(t, "offset only", c.WorldPosition(), Vec2{30, 40})
}

func TestCircleContainsPoint(t *testing.T) {
	c := NewCircleCollider(newTestEntity(0, 0), 10)
	if !c.ContainsPoint(Vec2{5, 5}) {
		t.Error("interior point should be contained")
	}
	// Boundary points count as inside.
	if !c.ContainsPoint(Vec2{10, 0}) {
		t.Error("boundary point should be contained")
	}
	if c.ContainsPoint(Vec2{10.001, 0}) {
		t.Error("exterior point should not be contained")
	}
}

func TestRectContainsPoint(t *testing.T) {
	// 20x10 rect centered at (0, 0) spans [-10, 10] x [-5, 5].
	c := NewRectCollider(newTestEntity(0, 0), 20, 10)
	if !c.ContainsPoint(Vec2{-10, -5}) {
		t.Error("corner should be contained")
	}
	if c.ContainsPoint(Vec2{0, 5.001}) {
		t.Error("point below rect should not be contained")
	}
}

func TestBoundsRadius(t *testing.T) {
	circle := NewCircleCollider(nil, 16)
	assertNear(t, "circle bounds radius", circle.BoundsRadius(), 16)

	// Rect bounds radius is the half-diagonal.
	rect := NewRectCollider(nil, 6, 8)
	assertNear(t, "rect bounds radius", rect.BoundsRadius(), 5)
	square := NewRectCollider(nil, 10, 10)
	assertNear(t, "square bounds radius", square.BoundsRadius(), math.Sqrt(200)/2)
}

func TestColliderDimensionClamp(t *testing.T) {
	// Degenerate dimensions clamp to a minimum instead of rejecting, so a
	// bad value can't produce a zero-area shape.
	c := NewCircleCollider(nil, -5)
	if c.Radius <= 0 {
		t.Errorf("Radius = %v, want > 0", c.Radius)
	}
	r := NewRectCollider(nil, 0, -1)
	if r.Width <= 0 || r.Height <= 0 {
		t.Errorf("dimensions = %v x %v, want > 0", r.Width, r.Height)
	}
}

func TestColliderIDsUnique(t *testing.T) {
	a := NewCircleCollider(nil, 1)
	b := NewRectCollider(nil, 1, 1)
	if a.ID == b.ID {
		t.Errorf("both colliders got ID %d", a.ID)
	}
}

func TestCanCollideLayerMask(t *testing.T) {
	a := NewCircleCollider(newTestEntity(0, 0), 1)
	b := NewCircleCollider(newTestEntity(0, 0), 1)
	if !canCollide(a, b) {
		t.Error("default layers should collide")
	}

	// Disjoint layer/mask pairs are gated out.
	a.Layer = 0b01
	a.Mask = 0b01
	b.Layer = 0b10
	b.Mask = 0b10
	if canCollide(a, b) {
		t.Error("disjoint layer/mask should not collide")
	}

	// One-directional masks still require both gates.
	b.Mask = 0b01
	if canCollide(a, b) {
		t.Error("a's mask still excludes b's layer")
	}
}

func TestCanCollideInactiveOwner(t *testing.T) {
	e := newTestEntity(0, 0)
	a := NewCircleCollider(e, 1)
	b := NewCircleCollider(newTestEntity(0, 0), 1)

	e.active = false
	if canCollide(a, b) {
		t.Error("inactive owner should gate the pair out")
	}
}

func TestCanCollideBothStatic(t *testing.T) {
	a := NewRectCollider(newTestEntity(0, 0), 1, 1)
	b := NewRectCollider(newTestEntity(0, 0), 1, 1)
	a.Static = true
	b.Static = true
	if canCollide(a, b) {
		t.Error("two static colliders never need testing")
	}
}
