package tumble

import "math"

// Scheduler defaults. Delta times above maxFrameDelta are clamped so a long
// stall can't queue up hundreds of sub-steps, and the accumulator drains at
// most maxSubSteps per frame.
const (
	defaultFixedStep   = 1.0 / 60.0
	defaultMaxSubSteps = 4
	defaultMaxDelta    = 0.1

	defaultCellSize    = 150.0
	defaultMaxVelocity = 2000.0

	// separationSlop is the extra separation applied on top of the measured
	// penetration so resting pairs don't re-collide every frame from float
	// error alone.
	separationSlop = 0.01
)

// CollisionCallback is a globally registered pairwise notification. It runs
// once per detected pair per frame, before resolution, triggers included.
type CollisionCallback func(a, b *Collider, c Contact)

// World owns the colliders, global tuning, and the step scheduler. Create one
// per game session with NewWorld and drive it with Update once per frame.
//
// World is not safe for concurrent use: the expectation is a single
// game-loop goroutine, the same model the scene layer uses.
type World struct {
	// Gravity is the global acceleration applied to bodies with UseGravity,
	// in world units per second squared. Zero (the default) disables it.
	Gravity Vec2

	// TimeScale stretches or compresses simulated time (1 = normal,
	// 0.5 = slow motion). Applied to integration, not to sleep timing.
	TimeScale float64

	// MaxVelocity is the speed clamp applied after each integration sub-step.
	MaxVelocity float64

	// Debug enables per-frame stats logging to stderr.
	Debug bool

	colliders []*Collider
	callbacks []CollisionCallback
	grid      *spatialGrid

	fixedStep   float64
	maxSubSteps int
	maxDelta    float64
	accumulator float64

	// activeBuf is reused each frame for the active-collider pass.
	activeBuf []*Collider

	stats stepStats
}

// NewWorld creates an empty physics world with default tuning: no gravity,
// 1/60s fixed step with at most 4 sub-steps per frame, 150-unit grid cells.
func NewWorld() *World {
	return &World{
		TimeScale:   1,
		MaxVelocity: defaultMaxVelocity,
		grid:        newSpatialGrid(defaultCellSize),
		fixedStep:   defaultFixedStep,
		maxSubSteps: defaultMaxSubSteps,
		maxDelta:    defaultMaxDelta,
	}
}

// AddCollider registers a collider with the simulation. Adding the same
// collider twice is a no-op.
func (w *World) AddCollider(c *Collider) {
	for _, existing := range w.colliders {
		if existing == c {
			return
		}
	}
	w.colliders = append(w.colliders, c)
}

// RemoveCollider unregisters a collider. Removing an unknown collider is a
// no-op. Callbacks already fired this frame may still hold the collider;
// they must treat it as a snapshot.
func (w *World) RemoveCollider(c *Collider) {
	for i, existing := range w.colliders {
		if existing == c {
			w.colliders = append(w.colliders[:i], w.colliders[i+1:]...)
			return
		}
	}
}

// AddCollisionCallback registers a global pairwise callback, called for every
// detected collision after the per-collider callbacks.
func (w *World) AddCollisionCallback(cb CollisionCallback) {
	w.callbacks = append(w.callbacks, cb)
}

// SetGravity sets the global gravity vector. Takes effect next step.
func (w *World) SetGravity(g Vec2) {
	w.Gravity = g
}

// SetTimeScale sets the simulation speed multiplier, clamped at zero.
func (w *World) SetTimeScale(scale float64) {
	w.TimeScale = math.Max(0, scale)
}

// SetMaxVelocity sets the post-integration speed clamp, clamped to a small
// positive minimum.
func (w *World) SetMaxVelocity(v float64) {
	w.MaxVelocity = math.Max(v, minColliderDim)
}

// SetCellSize sets the broad-phase grid cell size. Smaller cells mean more
// neighbor lookups; larger cells mean more pair tests per cell. Takes effect
// next step.
func (w *World) SetCellSize(size float64) {
	w.grid.setCellSize(size)
}

// SetFixedStep overrides the fixed sub-step duration and the per-frame
// sub-step cap. Non-positive values fall back to the defaults.
func (w *World) SetFixedStep(step float64, maxSubSteps int) {
	if step <= 0 {
		step = defaultFixedStep
	}
	if maxSubSteps <= 0 {
		maxSubSteps = defaultMaxSubSteps
	}
	w.fixedStep = step
	w.maxSubSteps = maxSubSteps
}

// Colliders returns the registered colliders. The returned slice is the
// world's own; callers must not mutate it.
func (w *World) Colliders() []*Collider {
	return w.colliders
}

// CollisionChecks returns the number of narrow-phase tests performed during
// the most recent Update.
func (w *World) CollisionChecks() int {
	return w.stats.narrowTests
}

// Update advances the simulation by dt seconds. This is the sole entry point,
// called once per visual frame by the owning game loop:
//
//  1. dt is clamped, then drained from an accumulator in fixed sub-steps
//     (at most maxSubSteps) integrating every awake, non-kinematic body.
//  2. Broad phase + narrow phase + resolution run exactly once per frame
//     against the latest positions.
//  3. If any sub-step ran, the sleep pass advances body sleep timers.
//
// Update never panics under gameplay conditions; degenerate pairs are skipped
// and degenerate geometry falls back to fixed values.
func (w *World) Update(dt float64) {
	w.stats = stepStats{}

	if dt < 0 {
		dt = 0
	}
	w.accumulator += math.Min(dt, w.maxDelta)

	steps := 0
	for w.accumulator >= w.fixedStep && steps < w.maxSubSteps {
		w.integrateStep(w.fixedStep)
		w.accumulator -= w.fixedStep
		steps++
	}
	// Drop any remainder past the cap so a stall doesn't replay next frame.
	if w.accumulator >= w.fixedStep {
		w.accumulator = math.Mod(w.accumulator, w.fixedStep)
	}
	w.stats.subSteps = steps

	w.detectAndResolve()

	if steps > 0 {
		w.sleepPass(float64(steps) * w.fixedStep)
	}

	w.logStats()
}

// integrateStep runs one fixed sub-step over every awake dynamic body.
func (w *World) integrateStep(dt float64) {
	scaled := dt * w.TimeScale
	for _, c := range w.colliders {
		b := c.Body
		if b == nil || b.Kinematic || b.asleep || !c.active() {
			continue
		}
		b.integrate(c, w.Gravity, w.MaxVelocity, scaled)
	}
}

// detectAndResolve runs the broad phase, the narrow phase, callback dispatch,
// and positional/velocity resolution, once per visual frame.
func (w *World) detectAndResolve() {
	active := w.activeBuf[:0]
	for _, c := range w.colliders {
		if c.active() {
			active = append(active, c)
		}
	}
	w.activeBuf = active
	w.stats.activeColliders = len(active)

	if len(active) == 0 {
		return
	}

	w.grid.rebuild(active)
	w.grid.forEachPair(func(a, b *Collider) {
		if !canCollide(a, b) {
			return
		}
		w.stats.narrowTests++

		contact, ok := collide(a, b)
		if !ok {
			return
		}
		w.stats.contacts++

		w.dispatch(a, b, contact)

		if a.Trigger || b.Trigger {
			return
		}
		resolve(a, b, contact)
	})
}

// dispatch fires per-collider callbacks then global callbacks for a detected
// pair. Each per-collider callback sees the contact normal pointing away from
// its own collider.
func (w *World) dispatch(a, b *Collider, contact Contact) {
	if a.OnCollision != nil {
		a.OnCollision(b, contact)
	}
	if b.OnCollision != nil {
		flipped := contact
		flipped.Normal = contact.Normal.Scale(-1)
		b.OnCollision(a, flipped)
	}
	for _, cb := range w.callbacks {
		cb(a, b, contact)
	}
}

// sleepPass advances sleep timers for every dynamic body by the simulated
// time that actually elapsed this frame.
func (w *World) sleepPass(elapsed float64) {
	for _, c := range w.colliders {
		b := c.Body
		if b == nil || b.Kinematic || !c.active() {
			continue
		}
		b.updateSleep(elapsed)
	}
}

// OptimizePerformance prunes colliders whose owner is gone or inactive and
// returns how many were removed. Call it on scene transitions or when the
// collider count has drifted up; the result is logged when Debug is set.
func (w *World) OptimizePerformance() int {
	kept := w.colliders[:0]
	removed := 0
	for _, c := range w.colliders {
		if c.Owner != nil && !c.Owner.Active() {
			removed++
			continue
		}
		kept = append(kept, c)
	}
	w.colliders = kept
	if removed > 0 {
		w.logPrune(removed)
	}
	return removed
}

// ApplyExplosion applies a radial impulse to every dynamic body within radius
// of center, with linear distance falloff. Sleeping bodies wake. Bodies at
// the exact center have no radial direction and are skipped.
func (w *World) ApplyExplosion(center Vec2, force, radius float64) {
	if radius <= 0 {
		return
	}
	for _, c := range w.BodiesInArea(center, radius) {
		b := c.Body
		dir := c.WorldPosition().Sub(center)
		dist := dir.Magnitude()
		if dist == 0 {
			continue
		}
		falloff := math.Max(0, 1-dist/radius)
		b.AddImpulse(dir.Normalize().Scale(force * falloff))
	}
}

// BodiesInArea returns the active colliders with a non-kinematic body whose
// center lies within radius of center.
func (w *World) BodiesInArea(center Vec2, radius float64) []*Collider {
	var result []*Collider
	for _, c := range w.colliders {
		if c.Body == nil || c.Body.Kinematic || !c.active() {
			continue
		}
		if c.WorldPosition().DistanceTo(center) <= radius {
			result = append(result, c)
		}
	}
	return result
}
