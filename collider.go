package tumble

import "math"

// Entity is the minimal view of a game object the physics core needs. The
// scene layer owns its entities; the physics core only holds references for
// position lookup and callback dispatch.
type Entity interface {
	// Position returns the entity's world position.
	Position() Vec2
	// Active reports whether the entity should participate in physics.
	// Inactive entities are skipped by the broad phase and pruned by
	// World.OptimizePerformance.
	Active() bool
}

// Mover is an optional capability for entities the resolver may push.
// Entities that don't implement Mover are never repositioned, only notified.
type Mover interface {
	SetPosition(pos Vec2)
}

// --- ID counter ---

// colliderIDCounter is a plain counter (no atomic — tumble is single-threaded).
var colliderIDCounter uint32

func nextColliderID() uint32 {
	colliderIDCounter++
	return colliderIDCounter
}

// DefaultLayer is the layer new colliders start on. With the default mask of
// all ones, everything collides with everything.
const DefaultLayer uint32 = 1

// Collider is a collision shape attached to an entity. A single flat struct
// is used for both shape kinds to avoid interface dispatch on the hot path;
// Shape selects which dimension fields are meaningful.
type Collider struct {
	// Identity
	ID    uint32
	Shape ShapeKind

	// Geometry. Radius is used by ShapeCircle; Width and Height by ShapeRect.
	// Offset is added to the owner's position to produce the world-space
	// shape center.
	Radius float64
	Width  float64
	Height float64
	Offset Vec2

	// Trigger colliders report collisions but are never separated.
	Trigger bool
	// Static colliders are never moved by the resolver.
	Static bool

	// Layer and Mask gate which pairs are tested: a pair collides when
	// a.Layer&b.Mask != 0 and b.Layer&a.Mask != 0.
	Layer uint32
	Mask  uint32

	// OnCollision, when set, is called once per detected pair per frame with
	// the other collider and the contact. The contact is a snapshot; the
	// other collider's owner may already be destroyed by the time the
	// callback runs.
	OnCollision func(other *Collider, c Contact)

	// Owner is the entity this collider follows. A nil owner anchors the
	// collider at its Offset, treated as world-origin-relative.
	Owner Entity

	// Body is the optional kinematic state. Colliders without a body are
	// pure geometry: they block and notify but never move on their own.
	Body *Body
}

// minColliderDim keeps degenerate construction from producing zero-area
// shapes that the grid and narrow phase would mishandle.
const minColliderDim = 0.001

// NewCircleCollider creates a circle collider with the given radius, attached
// to owner. A non-positive radius is clamped to a small minimum rather than
// rejected, so a bad value degrades instead of crashing the frame loop.
func NewCircleCollider(owner Entity, radius float64) *Collider {
	return &Collider{
		ID:     nextColliderID(),
		Shape:  ShapeCircle,
		Radius: math.Max(radius, minColliderDim),
		Layer:  DefaultLayer,
		Mask:   ^uint32(0),
		Owner:  owner,
	}
}

// NewRectCollider creates an axis-aligned rectangle collider with the given
// dimensions, attached to owner. Non-positive dimensions are clamped to a
// small minimum.
func NewRectCollider(owner Entity, width, height float64) *Collider {
	return &Collider{
		ID:     nextColliderID(),
		Shape:  ShapeRect,
		Width:  math.Max(width, minColliderDim),
		Height: math.Max(height, minColliderDim),
		Layer:  DefaultLayer,
		Mask:   ^uint32(0),
		Owner:  owner,
	}
}

// WorldPosition returns the world-space center of the collider's shape:
// the owner's position plus Offset, or Offset alone when there is no owner.
func (c *Collider) WorldPosition() Vec2 {
	if c.Owner != nil {
		return c.Owner.Position().Add(c.Offset)
	}
	return c.Offset
}

// active reports whether this collider should participate in the step.
func (c *Collider) active() bool {
	return c.Owner == nil || c.Owner.Active()
}

// ContainsPoint reports whether p lies inside the collider's world-space
// shape. Points on the boundary are inside.
func (c *Collider) ContainsPoint(p Vec2) bool {
	switch c.Shape {
	case ShapeCircle:
		return c.WorldPosition().DistanceTo(p) <= c.Radius
	case ShapeRect:
		return c.bounds().Contains(p.X, p.Y)
	}
	return false
}

// BoundsRadius returns the radius of a circle centered on WorldPosition that
// fully contains the shape. Used only for broad-phase pruning and ray tests;
// for rectangles it is the half-diagonal.
func (c *Collider) BoundsRadius() float64 {
	if c.Shape == ShapeCircle {
		return c.Radius
	}
	return math.Sqrt(c.Width*c.Width+c.Height*c.Height) / 2
}

// bounds returns the world-space AABB of a rect collider, centered on
// WorldPosition. Only meaningful for ShapeRect.
func (c *Collider) bounds() Rect {
	pos := c.WorldPosition()
	return Rect{
		X:      pos.X - c.Width/2,
		Y:      pos.Y - c.Height/2,
		Width:  c.Width,
		Height: c.Height,
	}
}

// canCollide reports whether the pair passes the layer/mask gate and neither
// side is missing an active owner. Two static colliders never need testing.
func canCollide(a, b *Collider) bool {
	if a.Static && b.Static {
		return false
	}
	if !a.active() || !b.active() {
		return false
	}
	return a.Layer&b.Mask != 0 && b.Layer&a.Mask != 0
}
