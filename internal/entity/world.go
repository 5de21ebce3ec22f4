// internal/entity/world.go
package entity

import (
	"image/color"
	"slices"

	"sketch-shooter/internal/engine"
	"sketch-shooter/pkg/render"
)

// World — все сущности одной партии. Каждая сущность живёт ровно в одной коллекции.
type World struct {
	Player    *Player
	Bullets   []*Bullet
	Enemies   []*Enemy
	PowerUps  []*PowerUp
	Particles []*Particle
}

// NewWorld создаёт пустой мир со свежим игроком в центре.
func NewWorld(ctx *engine.Context) *World {
	return &World{Player: NewPlayer(ctx)}
}

// Burst добавляет n частиц цвета clr в точке (x, y).
func (w *World) Burst(ctx *engine.Context, x, y float64, clr color.RGBA, n int) {
	for i := 0; i < n; i++ {
		w.Particles = append(w.Particles, NewParticle(ctx, x, y, clr))
	}
}

// UpdateBullets двигает пули и удаляет истёкшие.
func (w *World) UpdateBullets(width, height float64) {
	w.Bullets = slices.DeleteFunc(w.Bullets, func(b *Bullet) bool {
		return b.Update(width, height)
	})
}

// UpdatePowerUps пульсирует бонусы и удаляет истёкшие.
func (w *World) UpdatePowerUps(now float64) {
	w.PowerUps = slices.DeleteFunc(w.PowerUps, func(p *PowerUp) bool {
		return p.Update(now)
	})
}

// UpdateEnemies ведёт врагов к игроку.
func (w *World) UpdateEnemies() {
	for _, e := range w.Enemies {
		e.Update(w.Player.X, w.Player.Y)
	}
}

// UpdateParticles двигает частицы и удаляет догоревшие.
func (w *World) UpdateParticles() {
	w.Particles = slices.DeleteFunc(w.Particles, func(p *Particle) bool {
		return p.Update()
	})
}

// Compact убирает сущности, помеченные через Remove.
func (w *World) Compact() {
	w.Bullets = slices.DeleteFunc(w.Bullets, (*Bullet).Removed)
	w.Enemies = slices.DeleteFunc(w.Enemies, (*Enemy).Removed)
	w.PowerUps = slices.DeleteFunc(w.PowerUps, (*PowerUp).Removed)
}

// Draw рисует сущности в порядке слоёв: пули, бонусы, враги, частицы, игрок.
func (w *World) Draw(c render.Canvas, sk *render.Sketcher) {
	for _, b := range w.Bullets {
		b.Draw(c, sk)
	}
	for _, p := range w.PowerUps {
		p.Draw(c, sk)
	}
	for _, e := range w.Enemies {
		e.Draw(c, sk)
	}
	for _, p := range w.Particles {
		p.Draw(c, sk)
	}
	if w.Player != nil {
		w.Player.Draw(c, sk)
	}
}
