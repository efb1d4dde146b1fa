package tumble

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Debug draw palette. Sleeping bodies are dimmed so settling is visible at a
// glance; triggers get their own color since they never resolve.
var (
	debugColorAwake    = color.RGBA{0x40, 0xc0, 0x40, 0xff}
	debugColorAsleep   = color.RGBA{0x30, 0x60, 0x30, 0xff}
	debugColorStatic   = color.RGBA{0x80, 0x80, 0x80, 0xff}
	debugColorTrigger  = color.RGBA{0xc0, 0xa0, 0x20, 0xff}
	debugColorGridLine = color.RGBA{0x20, 0x20, 0x30, 0xff}
)

// DebugDrawOptions controls what DebugDraw renders.
type DebugDrawOptions struct {
	// DrawGrid renders the broad-phase cell lines across the screen.
	DrawGrid bool
	// DrawStats prints the per-frame counters in the top-left corner.
	DrawStats bool
	// OffsetX and OffsetY translate world space to screen space (a simple
	// scrolling camera; zero for fixed-screen games).
	OffsetX, OffsetY float64
}

// DebugDraw renders collider outlines, and optionally the broad-phase grid
// and step stats, onto screen. Intended for development overlays, drawn after
// the game's own rendering each frame.
func (w *World) DebugDraw(screen *ebiten.Image, opts DebugDrawOptions) {
	if opts.DrawGrid {
		w.drawGrid(screen, opts)
	}

	for _, c := range w.colliders {
		if !c.active() {
			continue
		}
		pos := c.WorldPosition()
		x := float32(pos.X - opts.OffsetX)
		y := float32(pos.Y - opts.OffsetY)

		col := debugColor(c)
		switch c.Shape {
		case ShapeCircle:
			vector.StrokeCircle(screen, x, y, float32(c.Radius), 1, col, true)
		case ShapeRect:
			vector.StrokeRect(screen,
				x-float32(c.Width/2), y-float32(c.Height/2),
				float32(c.Width), float32(c.Height), 1, col, true)
		}
	}

	if opts.DrawStats {
		ebitenutil.DebugPrint(screen, fmt.Sprintf(
			"colliders: %d\nnarrow tests: %d\ncontacts: %d\nsub-steps: %d",
			w.stats.activeColliders, w.stats.narrowTests,
			w.stats.contacts, w.stats.subSteps))
	}
}

// debugColor picks the outline color for a collider's current state.
func debugColor(c *Collider) color.RGBA {
	switch {
	case c.Trigger:
		return debugColorTrigger
	case c.Static:
		return debugColorStatic
	case c.Body != nil && c.Body.asleep:
		return debugColorAsleep
	default:
		return debugColorAwake
	}
}

// drawGrid strokes the broad-phase cell boundaries across the screen.
func (w *World) drawGrid(screen *ebiten.Image, opts DebugDrawOptions) {
	bounds := screen.Bounds()
	sw := float64(bounds.Dx())
	sh := float64(bounds.Dy())
	cell := w.grid.cellSize

	startX := -math.Mod(opts.OffsetX, cell)
	for x := startX; x <= sw; x += cell {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(sh), 1, debugColorGridLine, false)
	}
	startY := -math.Mod(opts.OffsetY, cell)
	for y := startY; y <= sh; y += cell {
		vector.StrokeLine(screen, 0, float32(y), float32(sw), float32(y), 1, debugColorGridLine, false)
	}
}
