package tumble

import (
	"testing"
)

func newQueryWorld() (*World, *Collider, *Collider, *Collider) {
	w := NewWorld()

	circle := NewCircleCollider(newTestEntity(0, 0), 10)
	rect := NewRectCollider(newTestEntity(100, 0), 20, 20)
	far := NewCircleCollider(newTestEntity(0, 500), 10)

	w.AddCollider(circle)
	w.AddCollider(rect)
	w.AddCollider(far)
	return w, circle, rect, far
}

func TestQueryPoint(t *testing.T) {
	w, circle, rect, _ := newQueryWorld()

	hits := w.QueryPoint(Vec2{5, 0})
	if len(hits) != 1 || hits[0] != circle {
		t.Errorf("QueryPoint(5,0) = %v, want just the circle", hits)
	}

	hits = w.QueryPoint(Vec2{100, 5})
	if len(hits) != 1 || hits[0] != rect {
		t.Errorf("QueryPoint(100,5) = %v, want just the rect", hits)
	}

	if hits = w.QueryPoint(Vec2{50, 50}); len(hits) != 0 {
		t.Errorf("QueryPoint(50,50) = %v, want empty", hits)
	}
}

func TestQueryPointSkipsInactive(t *testing.T) {
	w := NewWorld()
	e := newTestEntity(0, 0)
	w.AddCollider(NewCircleCollider(e, 10))

	e.active = false
	if hits := w.QueryPoint(Vec2{0, 0}); len(hits) != 0 {
		t.Errorf("inactive collider returned from query: %v", hits)
	}
}

func TestQueryArea(t *testing.T) {
	w, circle, rect, far := newQueryWorld()

	// Radius 95 around the origin reaches the rect via its bounding radius
	// (center distance 100, bounds radius ~14.1) but not the far circle.
	hits := w.QueryArea(Vec2{0, 0}, 95)
	if len(hits) != 2 {
		t.Fatalf("QueryArea = %d hits, want 2", len(hits))
	}
	seen := map[*Collider]bool{hits[0]: true, hits[1]: true}
	if !seen[circle] || !seen[rect] {
		t.Error("QueryArea should return the circle and the rect")
	}
	if seen[far] {
		t.Error("far collider should be out of range")
	}
}

func TestQueryAreaEmpty(t *testing.T) {
	w, _, _, _ := newQueryWorld()
	if hits := w.QueryArea(Vec2{1000, 1000}, 5); len(hits) != 0 {
		t.Errorf("QueryArea far away = %v, want empty", hits)
	}
}

func TestRaycastHitsNearest(t *testing.T) {
	w, circle, rect, _ := newQueryWorld()

	// Ray along +X from the left: the circle at 0 is nearer than the rect
	// at 100.
	hit := w.Raycast(Vec2{-50, 0}, Vec2{1, 0}, 1000)
	if hit != circle {
		t.Errorf("Raycast hit %v, want the near circle", hit)
	}

	// Starting past the circle the rect is next.
	hit = w.Raycast(Vec2{20, 0}, Vec2{1, 0}, 1000)
	if hit != rect {
		t.Errorf("Raycast hit %v, want the rect", hit)
	}
}

func TestRaycastRespectsMaxDist(t *testing.T) {
	w, _, _, _ := newQueryWorld()
	if hit := w.Raycast(Vec2{-50, 0}, Vec2{1, 0}, 30); hit != nil {
		t.Errorf("Raycast beyond maxDist hit %v, want nil", hit)
	}
}

func TestRaycastIgnoresBehind(t *testing.T) {
	w, _, rect, _ := newQueryWorld()
	// Pointing away from everything except the rect behind is ignored.
	hit := w.Raycast(Vec2{50, 0}, Vec2{-1, 0}, 1000)
	if hit == rect {
		t.Error("Raycast must not hit colliders behind the start")
	}
}

func TestRaycastNormalizesDirection(t *testing.T) {
	w, circle, _, _ := newQueryWorld()
	// An unnormalized direction must not stretch the distance accounting.
	if hit := w.Raycast(Vec2{-50, 0}, Vec2{100, 0}, 60); hit != circle {
		t.Errorf("Raycast with long direction vector hit %v, want circle", hit)
	}
}

func TestRaycastZeroDirection(t *testing.T) {
	w, _, _, _ := newQueryWorld()
	if hit := w.Raycast(Vec2{0, 0}, Vec2{}, 100); hit != nil {
		t.Errorf("Raycast with zero direction hit %v, want nil", hit)
	}
}
