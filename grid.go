package tumble

import "math"

// cellKey identifies one grid cell by its integer coordinates.
type cellKey struct {
	x, y int
}

// neighborOffsets covers the 8 surrounding cells. The center cell is handled
// separately so intra-cell pairs are only generated once.
var neighborOffsets = [8]cellKey{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// spatialGrid is the ephemeral broad-phase structure: colliders bucketed by
// the cell containing their world position. It is rebuilt from scratch every
// step; the maps and pair set are reused between frames to limit allocation.
type spatialGrid struct {
	cellSize float64
	cells    map[cellKey][]*Collider
	checked  map[uint64]struct{}
}

// minCellSize keeps a misconfigured grid from exploding into a cell per
// fraction of a world unit.
const minCellSize = 1.0

func newSpatialGrid(cellSize float64) *spatialGrid {
	return &spatialGrid{
		cellSize: math.Max(cellSize, minCellSize),
		cells:    make(map[cellKey][]*Collider),
		checked:  make(map[uint64]struct{}),
	}
}

// setCellSize adjusts the cell size, clamped to the minimum. Takes effect on
// the next rebuild.
func (g *spatialGrid) setCellSize(size float64) {
	g.cellSize = math.Max(size, minCellSize)
}

// keyFor returns the cell containing the given world position.
func (g *spatialGrid) keyFor(pos Vec2) cellKey {
	return cellKey{
		x: int(math.Floor(pos.X / g.cellSize)),
		y: int(math.Floor(pos.Y / g.cellSize)),
	}
}

// rebuild re-buckets the given colliders. Each collider is inserted into
// every cell its bounding radius touches, so two overlapping shapes always
// share at least one cell regardless of cell size relative to shape size.
// Inactive colliders must already be filtered out by the caller.
func (g *spatialGrid) rebuild(colliders []*Collider) {
	for k, bucket := range g.cells {
		g.cells[k] = bucket[:0]
	}
	for _, c := range colliders {
		pos := c.WorldPosition()
		r := c.BoundsRadius()
		min := g.keyFor(Vec2{pos.X - r, pos.Y - r})
		max := g.keyFor(Vec2{pos.X + r, pos.Y + r})
		for x := min.x; x <= max.x; x++ {
			for y := min.y; y <= max.y; y++ {
				k := cellKey{x, y}
				g.cells[k] = append(g.cells[k], c)
			}
		}
	}
}

// pairKey builds an order-independent identity for a collider pair.
func pairKey(a, b *Collider) uint64 {
	lo, hi := a.ID, b.ID
	if lo > hi {
		lo, hi = hi, lo
	}
	return uint64(hi)<<32 | uint64(lo)
}

// forEachPair visits every candidate pair exactly once: all intra-cell pairs
// plus pairs spanning a cell and one of its 8 neighbors. A pair reachable
// through two different cells is still visited once, deduplicated by ID pair.
func (g *spatialGrid) forEachPair(fn func(a, b *Collider)) {
	for k := range g.checked {
		delete(g.checked, k)
	}

	for key, bucket := range g.cells {
		if len(bucket) == 0 {
			continue
		}

		// Intra-cell pairs.
		for i := 0; i < len(bucket); i++ {
			for j := i + 1; j < len(bucket); j++ {
				a, b := bucket[i], bucket[j]
				pk := pairKey(a, b)
				if _, seen := g.checked[pk]; seen {
					continue
				}
				g.checked[pk] = struct{}{}
				fn(a, b)
			}
		}

		// Pairs against the 8 neighboring cells.
		for _, off := range neighborOffsets {
			neighbor, ok := g.cells[cellKey{key.x + off.x, key.y + off.y}]
			if !ok || len(neighbor) == 0 {
				continue
			}
			for _, a := range bucket {
				for _, b := range neighbor {
					// A span-inserted collider shows up in adjacent
					// buckets too; never pair it with itself.
					if a == b {
						continue
					}
					pk := pairKey(a, b)
					if _, seen := g.checked[pk]; seen {
						continue
					}
					g.checked[pk] = struct{}{}
					fn(a, b)
				}
			}
		}
	}
}
