package tumble

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > epsilon || math.Abs(got.Y-want.Y) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// testEntity is a movable entity for tests: the resolver and integrator can
// reposition it through the Mover capability.
type testEntity struct {
	pos    Vec2
	active bool
}

func newTestEntity(x, y float64) *testEntity {
	return &testEntity{pos: Vec2{x, y}, active: true}
}

func (e *testEntity) Position() Vec2       { return e.pos }
func (e *testEntity) Active() bool         { return e.active }
func (e *testEntity) SetPosition(pos Vec2) { e.pos = pos }

// pinnedEntity implements Entity but not Mover, so the resolver can never
// push it.
type pinnedEntity struct {
	pos Vec2
}

func (e *pinnedEntity) Position() Vec2 { return e.pos }
func (e *pinnedEntity) Active() bool   { return true }

// --- Vec2 ---

func TestVec2AddSubScale(t *testing.T) {
	v := Vec2{3, 4}
	assertVec(t, "add", v.Add(Vec2{1, 2}), Vec2{4, 6})
	assertVec(t, "sub", v.Sub(Vec2{1, 2}), Vec2{2, 2})
	assertVec(t, "scale", v.Scale(2), Vec2{6, 8})
}

func TestVec2Magnitude(t *testing.T) {
	assertNear(t, "magnitude", Vec2{3, 4}.Magnitude(), 5)
	assertNear(t, "magnitudeSq", Vec2{3, 4}.MagnitudeSq(), 25)
	assertNear(t, "zero", Vec2{}.Magnitude(), 0)
}

func TestVec2Normalize(t *testing.T) {
	n := Vec2{3, 4}.Normalize()
	assertVec(t, "normalize", n, Vec2{0.6, 0.8})
	assertNear(t, "unit length", n.Magnitude(), 1)
}

func TestVec2NormalizeZero(t *testing.T) {
	// The zero vector normalizes to the zero vector, not NaN.
	assertVec(t, "normalize zero", Vec2{}.Normalize(), Vec2{})
}

func TestVec2Dot(t *testing.T) {
	assertNear(t, "dot", Vec2{1, 2}.Dot(Vec2{3, 4}), 11)
	assertNear(t, "perpendicular", Vec2{1, 0}.Dot(Vec2{0, 1}), 0)
}

func TestVec2DistanceTo(t *testing.T) {
	assertNear(t, "distance", Vec2{0, 0}.DistanceTo(Vec2{3, 4}), 5)
	assertNear(t, "self", Vec2{7, 7}.DistanceTo(Vec2{7, 7}), 0)
}

// --- Rect ---

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 30, Height: 40}
	if !r.Contains(10, 20) {
		t.Error("top-left corner should be inside")
	}
	if !r.Contains(40, 60) {
		t.Error("bottom-right corner should be inside")
	}
	if r.Contains(9.999, 20) {
		t.Error("point left of rect should be outside")
	}
}

func TestRectIntersects(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	if !r.Intersects(Rect{X: 5, Y: 5, Width: 10, Height: 10}) {
		t.Error("overlapping rects should intersect")
	}
	// Edge-adjacent rects count as intersecting.
	if !r.Intersects(Rect{X: 10, Y: 0, Width: 10, Height: 10}) {
		t.Error("edge-adjacent rects should intersect")
	}
	if r.Intersects(Rect{X: 10.001, Y: 0, Width: 10, Height: 10}) {
		t.Error("separated rects should not intersect")
	}
}

func TestRectCenter(t *testing.T) {
	assertVec(t, "center", Rect{X: 0, Y: 0, Width: 10, Height: 20}.Center(), Vec2{5, 10})
}
