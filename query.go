package tumble

// QueryPoint returns every active collider whose shape contains p. Boundary
// points count as contained.
func (w *World) QueryPoint(p Vec2) []*Collider {
	var result []*Collider
	for _, c := range w.colliders {
		if c.active() && c.ContainsPoint(p) {
			result = append(result, c)
		}
	}
	return result
}

// QueryArea returns every active collider whose bounding circle overlaps the
// circle (center, radius). This is a broad test: a rect collider is matched
// by its bounding radius, so results near the rect corners are approximate.
func (w *World) QueryArea(center Vec2, radius float64) []*Collider {
	var result []*Collider
	for _, c := range w.colliders {
		if !c.active() {
			continue
		}
		if c.WorldPosition().DistanceTo(center) <= radius+c.BoundsRadius() {
			result = append(result, c)
		}
	}
	return result
}

// Raycast casts a ray from start along dir (normalized internally) and
// returns the nearest collider whose bounding circle the ray passes through
// within maxDist, or nil when nothing is hit. Like QueryArea this tests
// bounding circles, not exact shapes.
func (w *World) Raycast(start, dir Vec2, maxDist float64) *Collider {
	dir = dir.Normalize()
	if dir == (Vec2{}) {
		return nil
	}

	var closest *Collider
	closestDist := maxDist

	for _, c := range w.colliders {
		if !c.active() {
			continue
		}
		toCollider := c.WorldPosition().Sub(start)
		projection := toCollider.Dot(dir)
		if projection < 0 || projection > closestDist {
			continue
		}
		nearest := start.Add(dir.Scale(projection))
		if nearest.DistanceTo(c.WorldPosition()) <= c.BoundsRadius() {
			closest = c
			closestDist = projection
		}
	}
	return closest
}
