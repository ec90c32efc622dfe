// Package render draws a game.World onto a draw.Canvas.
//
// Rendering only reads the world. Outlines are unit-sized point lists that
// are scaled, rotated and translated into field coordinates.
package render

import (
	"fmt"

	"github.com/tomz197/vectoroids/internal/config"
	"github.com/tomz197/vectoroids/internal/draw"
	"github.com/tomz197/vectoroids/internal/game"
	"github.com/tomz197/vectoroids/internal/object"
	"github.com/tomz197/vectoroids/internal/physics"
)

// Ship outline, nose up.
var shipOutline = []physics.Vec2{
	{X: 0, Y: -0.5},
	{X: 0.4, Y: 0.5},
	{X: 0.3, Y: 0.4},
	{X: -0.3, Y: 0.4},
	{X: -0.4, Y: 0.5},
}

// Flame drawn behind the ship while thrusting.
var shipFlame = []physics.Vec2{
	{X: -0.3, Y: 0.4},
	{X: 0, Y: 1.0},
	{X: 0.3, Y: 0.4},
}

// Alien saucer: hull and dome.
var (
	alienHull = []physics.Vec2{
		{X: -0.5, Y: 0}, {X: -0.3, Y: 0.3}, {X: 0.3, Y: 0.3}, {X: 0.5, Y: 0},
		{X: 0.3, Y: -0.3}, {X: -0.3, Y: -0.3}, {X: -0.5, Y: 0}, {X: 0.5, Y: 0},
	}
	alienDome = []physics.Vec2{
		{X: -0.2, Y: -0.3}, {X: -0.1, Y: -0.5}, {X: 0.1, Y: -0.5}, {X: 0.2, Y: -0.3},
	}
)

const (
	livesIconScale   = 0.8 // Relative to config.Scale
	flameFlickerRate = 20  // Flame toggles this many times per second
	projectileRadius = config.Scale * 0.05
)

// Renderer draws worlds and owns the scratch buffer that keeps per-frame
// drawing allocation-free.
type Renderer struct {
	shape []physics.Vec2
}

// NewRenderer creates a renderer.
func NewRenderer() *Renderer {
	return &Renderer{shape: make([]physics.Vec2, 0, 16)}
}

// Frame draws the whole world. The canvas is not cleared first.
func (r *Renderer) Frame(c *draw.Canvas, w *game.World) {
	drawLives(c, w.Lives())
	drawScore(c, w.Score())

	ship := w.Ship()
	if !ship.IsDead() {
		drawShip(c, &ship, w.Now())
	}
	for i := range w.Asteroids() {
		r.drawAsteroid(c, &w.Asteroids()[i])
	}
	for i := range w.Aliens() {
		drawAlien(c, &w.Aliens()[i])
	}
	for i := range w.Particles() {
		drawParticle(c, &w.Particles()[i])
	}
	for _, p := range w.Projectiles() {
		c.FillCircle(p.Pos, projectileRadius)
	}
}

// transform maps unit points into field space into a canvas scratch slice.
func transform(c *draw.Canvas, points []physics.Vec2, pos physics.Vec2, scale, rot float64) []physics.Vec2 {
	out := c.BorrowPoints(len(points))
	for i, p := range points {
		out[i] = p.Scale(scale).Rotate(rot).Add(pos)
	}
	return out
}

func drawShip(c *draw.Canvas, s *object.Ship, now float64) {
	c.DrawPolygon(transform(c, shipOutline, s.Pos, config.Scale, s.Rot))
	if s.Thrusting && int(now*flameFlickerRate)%2 == 0 {
		c.DrawPolyline(transform(c, shipFlame, s.Pos, config.Scale, s.Rot))
	}
}

// drawLives draws one ship icon per remaining life along the top-left.
func drawLives(c *draw.Canvas, lives int) {
	for i := range lives {
		pos := physics.Vec2{X: config.Scale * float64(i+1), Y: config.Scale}
		c.DrawPolygon(transform(c, shipOutline, pos, config.Scale*livesIconScale, 0))
	}
}

func (r *Renderer) drawAsteroid(c *draw.Canvas, a *object.Asteroid) {
	r.shape = object.AsteroidShape(a.Seed, r.shape)
	c.DrawPolygon(transform(c, r.shape, a.Pos, a.Size.Radius(), 0))
}

func drawAlien(c *draw.Canvas, a *object.Alien) {
	scale := config.Scale * a.Size.DrawScale()
	c.DrawPolyline(transform(c, alienHull, a.Pos, scale, 0))
	c.DrawPolyline(transform(c, alienDome, a.Pos, scale, 0))
}

func drawParticle(c *draw.Canvas, p *object.Particle) {
	switch p.Kind {
	case object.ParticleLine:
		half := physics.FromAngle(p.Line.Rot).Scale(p.Line.Length / 2)
		c.DrawLine(p.Pos.Sub(half), p.Pos.Add(half))
	case object.ParticleDot:
		c.FillCircle(p.Pos, p.DotRadius())
	default:
		panic(fmt.Sprintf("render: unknown particle kind %d", p.Kind))
	}
}

// digitScale is the glyph height; glyphs are half as wide.
const digitScale = config.Scale * 0.8

// drawScore draws the score as stroked digits. The least significant digit
// sits at the right edge and each more significant digit is one pitch to its
// left, so the number reads normally.
func drawScore(c *draw.Canvas, score int) {
	pos := physics.Vec2{X: config.FieldWidth - config.Scale, Y: config.Scale}
	score = max(score, 0)
	for {
		for _, stroke := range digitGlyphs[score%10] {
			c.DrawPolyline(transform(c, stroke, pos, digitScale, 0))
		}
		score /= 10
		if score == 0 {
			return
		}
		pos.X -= config.Scale
	}
}
