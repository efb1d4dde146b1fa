package tumble

import "math"

// resolve applies positional separation and velocity correction for one
// non-trigger contact. The contact normal points from a toward b.
//
// Static vs dynamic: only the dynamic side moves, by the full penetration
// plus a small slop, and its velocity component along the normal is projected
// out so it stops pushing into the surface.
//
// Dynamic vs dynamic: the separation is split between the two sides by mass
// ratio (50/50 when either side has no body), and a restitution impulse is
// exchanged along the normal when both sides carry a non-kinematic body.
//
// A collider hit while sleeping wakes regardless of which branch runs.
func resolve(a, b *Collider, contact Contact) {
	if contact.Penetration <= 0 {
		return
	}

	wakeIfSleeping(a)
	wakeIfSleeping(b)

	separation := contact.Penetration + separationSlop

	switch {
	case a.Static && !b.Static:
		moveCollider(b, contact.Normal.Scale(separation))
		cancelNormalVelocity(b, contact.Normal)
	case b.Static && !a.Static:
		moveCollider(a, contact.Normal.Scale(-separation))
		cancelNormalVelocity(a, contact.Normal)
	case !a.Static && !b.Static:
		ratioA, ratioB := 0.5, 0.5
		if a.Body != nil && b.Body != nil {
			total := a.Body.Mass + b.Body.Mass
			// Heavier side moves less.
			ratioA = b.Body.Mass / total
			ratioB = a.Body.Mass / total
		}
		moveCollider(a, contact.Normal.Scale(-separation*ratioA))
		moveCollider(b, contact.Normal.Scale(separation*ratioB))
		resolveVelocities(a, b, contact.Normal)
	}
}

// wakeIfSleeping wakes a sleeping body so it reacts to the hit next step.
func wakeIfSleeping(c *Collider) {
	if c.Body != nil && c.Body.asleep {
		c.Body.Wake()
	}
}

// moveCollider shifts a collider's owner by delta. Owners without the Mover
// capability (and ownerless colliders) stay where they are.
func moveCollider(c *Collider, delta Vec2) {
	mover, ok := c.Owner.(Mover)
	if !ok {
		return
	}
	mover.SetPosition(c.Owner.Position().Add(delta))
}

// cancelNormalVelocity removes the velocity component along the contact
// normal: v -= n * (v . n). The projection is unconditional, so a body
// overlapping a static surface loses its normal-direction speed whether it
// was moving into the surface or away from it.
func cancelNormalVelocity(c *Collider, normal Vec2) {
	b := c.Body
	if b == nil || b.Kinematic {
		return
	}
	vn := b.Velocity.Dot(normal)
	if vn == 0 {
		return
	}
	b.Velocity = b.Velocity.Sub(normal.Scale(vn))
}

// resolveVelocities exchanges a restitution impulse along the normal between
// two dynamic bodies. Skipped when either side has no body or is kinematic,
// or when the pair is already separating.
func resolveVelocities(a, b *Collider, normal Vec2) {
	ba, bb := a.Body, b.Body
	if ba == nil || bb == nil || ba.Kinematic || bb.Kinematic {
		return
	}

	relative := ba.Velocity.Sub(bb.Velocity)
	along := relative.Dot(normal)
	// Negative means a is moving away from b along the normal; the pair is
	// separating and needs no impulse.
	if along < 0 {
		return
	}

	restitution := math.Min(ba.Bounciness, bb.Bounciness)
	invMassA := 1 / math.Max(ba.Mass, minMass)
	invMassB := 1 / math.Max(bb.Mass, minMass)

	j := -(1 + restitution) * along / (invMassA + invMassB)
	impulse := normal.Scale(j)

	ba.Velocity = ba.Velocity.Add(impulse.Scale(invMassA))
	bb.Velocity = bb.Velocity.Sub(impulse.Scale(invMassB))
}
