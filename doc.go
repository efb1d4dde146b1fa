// Package tumble is a 2D physics and collision library for [Ebitengine] games.
//
// Tumble provides circle and axis-aligned-rectangle colliders, a spatial-grid
// broad phase, exact narrow-phase tests with contact normals and penetration
// depth, velocity-aware separation, sleeping bodies, and a fixed-timestep
// scheduler: the collision layer every non-trivial 2D game needs, without
// prescribing a scene graph or renderer.
//
// # Quick start
//
// Create a [World], register colliders for your entities, and call
// [World.Update] once per frame from your game loop:
//
//	world := tumble.NewWorld()
//
//	player := tumble.NewCircleCollider(hero, 16)
//	player.Body = tumble.NewBody(1)
//	world.AddCollider(player)
//
//	floor := tumble.NewRectCollider(ground, 640, 32)
//	floor.Static = true
//	world.AddCollider(floor)
//
//	// in ebiten.Game.Update:
//	world.Update(1.0 / float64(ebiten.TPS()))
//
// Entities are anything implementing [Entity] (a position and an active
// flag). Entities that also implement [Mover] can be pushed apart by the
// resolver; everything else is notified but never repositioned.
//
// # Collision events
//
// Set [Collider.OnCollision] for per-collider callbacks, or register a global
// callback with [World.AddCollisionCallback]. Callbacks fire once per
// detected pair per frame, including for trigger colliders, which are never
// physically separated.
//
// # Bodies and sleeping
//
// Attach a [Body] for gravity, drag, impulses, and restitution. Bodies that
// stay nearly motionless for a second fall asleep and skip integration until
// an impulse or a collision wakes them.
//
// # Queries
//
// [World.QueryPoint], [World.QueryArea], and [World.Raycast] inspect the
// current collider positions for picking, sensors, and line-of-sight tests.
//
// Debug overlays are available via [World.DebugDraw].
//
// [Ebitengine]: https://ebitengine.org
package tumble
