// shapes spawns random circles and boxes inside a walled arena with gravity,
// collisions, sleeping, and click-to-explode. Press D to toggle the debug
// overlay (collider outlines, grid, step stats).
package main

import (
	"image/color"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/tumble"
)

const (
	screenW    = 1280
	screenH    = 720
	shapeCount = 100
	gravity    = 600.0

	blastRadius = 350.0
	blastForce  = 300.0

	flashDuration = 0.2
)

// shape is a demo entity: a position the physics world can push around, plus
// rendering state.
type shape struct {
	pos    tumble.Vec2
	radius float64 // circle radius or box half-extent
	box    bool
	col    *tumble.Collider
	base   color.RGBA
	flash  *gween.Tween
}

func (s *shape) Position() tumble.Vec2       { return s.pos }
func (s *shape) Active() bool                { return true }
func (s *shape) SetPosition(pos tumble.Vec2) { s.pos = pos }

// wall is an immovable arena boundary.
type wall struct {
	pos tumble.Vec2
}

func (w *wall) Position() tumble.Vec2 { return w.pos }
func (w *wall) Active() bool          { return true }

type game struct {
	world  *tumble.World
	shapes []*shape
	debug  bool
}

func newGame() *game {
	world := tumble.NewWorld()
	world.SetGravity(tumble.Vec2{Y: gravity})

	g := &game{world: world}

	// Arena walls: floor, ceiling, left, right.
	for _, w := range []struct {
		x, y, cw, ch float64
	}{
		{screenW / 2, screenH + 25, screenW, 50},
		{screenW / 2, -25, screenW, 50},
		{-25, screenH / 2, 50, screenH},
		{screenW + 25, screenH / 2, 50, screenH},
	} {
		c := tumble.NewRectCollider(&wall{pos: tumble.Vec2{X: w.x, Y: w.y}}, w.cw, w.ch)
		c.Static = true
		world.AddCollider(c)
	}

	for i := 0; i < shapeCount; i++ {
		radius := 12.0 + rand.Float64()*16.0
		s := &shape{
			pos: tumble.Vec2{
				X: radius + rand.Float64()*(screenW-2*radius),
				Y: radius + rand.Float64()*(screenH/2),
			},
			radius: radius,
			box:    i%4 == 3,
			base: color.RGBA{
				R: uint8(80 + rand.IntN(176)),
				G: uint8(80 + rand.IntN(176)),
				B: uint8(80 + rand.IntN(176)),
				A: 255,
			},
		}

		if s.box {
			s.col = tumble.NewRectCollider(s, radius*2, radius*2)
		} else {
			s.col = tumble.NewCircleCollider(s, radius)
		}
		s.col.Body = tumble.NewBody(radius / 20.0)
		s.col.Body.Bounciness = 0.4
		s.col.Body.Drag = 0.1
		s.col.Body.Velocity = tumble.Vec2{X: (rand.Float64() - 0.5) * 200}

		world.AddCollider(s.col)
		g.shapes = append(g.shapes, s)
	}

	return g
}

func (g *game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		center := tumble.Vec2{X: float64(mx), Y: float64(my)}
		g.world.ApplyExplosion(center, blastForce, blastRadius)

		// Flash everything the blast reached.
		for _, c := range g.world.BodiesInArea(center, blastRadius) {
			for _, s := range g.shapes {
				if s.col == c {
					s.flash = gween.New(1, 0, flashDuration, ease.OutQuad)
				}
			}
		}
	}

	for _, s := range g.shapes {
		if s.flash != nil {
			if _, done := s.flash.Update(float32(dt)); done {
				s.flash = nil
			}
		}
	}

	g.world.Update(dt)
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x0f, 0x0f, 0x17, 0xff})

	for _, s := range g.shapes {
		col := s.base
		if s.flash != nil {
			// Peek at the current tween value without advancing it.
			t, _ := s.flash.Update(0)
			col = flashColor(s.base, float64(t))
		}
		if s.col.Body.Sleeping() {
			col = dim(col)
		}

		x, y := float32(s.pos.X), float32(s.pos.Y)
		if s.box {
			half := float32(s.radius)
			vector.DrawFilledRect(screen, x-half, y-half, half*2, half*2, col, true)
		} else {
			vector.DrawFilledCircle(screen, x, y, float32(s.radius), col, true)
		}
	}

	if g.debug {
		g.world.DebugDraw(screen, tumble.DebugDrawOptions{
			DrawGrid:  true,
			DrawStats: true,
		})
	}
}

func (g *game) Layout(w, h int) (int, int) { return screenW, screenH }

// flashColor blends toward white by t in [0, 1].
func flashColor(base color.RGBA, t float64) color.RGBA {
	lerp := func(c uint8) uint8 {
		return uint8(float64(c) + (255-float64(c))*t)
	}
	return color.RGBA{lerp(base.R), lerp(base.G), lerp(base.B), 255}
}

// dim darkens a color to mark sleeping bodies.
func dim(c color.RGBA) color.RGBA {
	return color.RGBA{c.R / 2, c.G / 2, c.B / 2, 255}
}

func main() {
	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("Tumble — Shapes")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
