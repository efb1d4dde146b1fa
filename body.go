package tumble

import "math"

// Sleep thresholds: a body whose speed stays below sleepVelocity for
// sleepDelay seconds of simulated time is put to sleep and excluded from
// integration until something wakes it.
const (
	sleepVelocity = 0.1
	sleepDelay    = 1.0
)

// minMass keeps impulse math (J/m) finite when a caller passes zero.
const minMass = 0.001

// Body holds the kinematic state for a dynamic collider. Attach one with
// NewBody at collider-creation time; colliders without a body are pure
// geometry and never move on their own.
type Body struct {
	// Velocity in world units per second.
	Velocity Vec2
	// Mass in arbitrary units, used for impulses and the dynamic-dynamic
	// positional split. Clamped to a small positive minimum.
	Mass float64
	// Drag is a linear damping factor applied per sub-step:
	// v *= max(0, 1 - Drag*dt). Zero means no damping.
	Drag float64
	// Bounciness is the restitution coefficient in [0, 1] used when two
	// dynamic bodies collide. The pair uses the smaller of the two.
	Bounciness float64
	// Kinematic bodies are externally driven: the integrator never applies
	// gravity or moves them, and the resolver never corrects their velocity.
	Kinematic bool
	// UseGravity selects whether the world's gravity accelerates this body.
	UseGravity bool

	force      Vec2
	sleepTimer float64
	asleep     bool
}

// NewBody creates a dynamic body with the given mass, gravity enabled.
func NewBody(mass float64) *Body {
	return &Body{
		Mass:       math.Max(mass, minMass),
		UseGravity: true,
	}
}

// AddForce accumulates a force to be applied over the next integration
// sub-step (a = F/m). Waking is deferred to the impulse/velocity paths;
// a force on a sleeping body wakes it too.
func (b *Body) AddForce(f Vec2) {
	b.Wake()
	b.force = b.force.Add(f)
}

// AddImpulse applies an instantaneous velocity change of j/m. Always wakes
// the body first so a sleeping body reacts immediately.
func (b *Body) AddImpulse(j Vec2) {
	b.Wake()
	b.Velocity = b.Velocity.Add(j.Scale(1 / math.Max(b.Mass, minMass)))
}

// Wake clears the sleeping state and resets the sleep timer.
func (b *Body) Wake() {
	b.asleep = false
	b.sleepTimer = 0
}

// Sleeping reports whether the body is currently asleep.
func (b *Body) Sleeping() bool {
	return b.asleep
}

// integrate advances one fixed sub-step: accumulated force and gravity, drag,
// velocity clamp, then position. Kinematic and sleeping bodies are skipped
// entirely by the caller. Movement goes through the owner's Mover capability;
// owners that can't be moved keep their position and only the velocity state
// advances.
func (b *Body) integrate(c *Collider, gravity Vec2, maxVelocity, dt float64) {
	invMass := 1 / math.Max(b.Mass, minMass)
	b.Velocity = b.Velocity.Add(b.force.Scale(invMass * dt))
	b.force = Vec2{}

	if b.UseGravity {
		b.Velocity = b.Velocity.Add(gravity.Scale(dt))
	}

	if b.Drag > 0 {
		b.Velocity = b.Velocity.Scale(math.Max(0, 1-b.Drag*dt))
	}

	if speed := b.Velocity.Magnitude(); speed > maxVelocity {
		b.Velocity = b.Velocity.Normalize().Scale(maxVelocity)
	}

	if mover, ok := c.Owner.(Mover); ok {
		mover.SetPosition(c.Owner.Position().Add(b.Velocity.Scale(dt)))
	}
}

// updateSleep advances the sleep timer after a sub-step. Low sustained speed
// puts the body to sleep; any faster movement resets the timer.
func (b *Body) updateSleep(dt float64) {
	if b.asleep {
		return
	}
	if b.Velocity.Magnitude() < sleepVelocity {
		b.sleepTimer += dt
		if b.sleepTimer >= sleepDelay {
			b.asleep = true
		}
	} else {
		b.sleepTimer = 0
	}
}
