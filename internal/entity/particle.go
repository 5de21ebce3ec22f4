// internal/entity/particle.go
package entity

import (
	"image/color"
	"math"

	"sketch-shooter/internal/config"
	"sketch-shooter/internal/engine"
	"sketch-shooter/pkg/render"
)

// Particle — искра взрыва, вспышки выстрела или подбора бонуса.
// Летит по прямой, замедляясь и уменьшаясь каждый тик.
type Particle struct {
	X, Y     float64
	Angle    float64
	Speed    float64
	Size     float64
	Color    color.RGBA
	Lifetime int
	Seed     float64
}

// NewParticle создаёт частицу со случайным направлением, скоростью и размером.
func NewParticle(ctx *engine.Context, x, y float64, clr color.RGBA) *Particle {
	return &Particle{
		X:        x,
		Y:        y,
		Size:     float64(ctx.RNG.IntRange(3, 10)),
		Color:    clr,
		Lifetime: ctx.RNG.IntRange(20, 40),
		Angle:    ctx.RNG.Uniform(0, 2*math.Pi),
		Speed:    ctx.RNG.Uniform(2, 6),
		Seed:     ctx.RNG.Seed(),
	}
}

// Update двигает частицу; возвращает true, когда она догорела.
func (p *Particle) Update() bool {
	p.X += math.Cos(p.Angle) * p.Speed
	p.Y += math.Sin(p.Angle) * p.Speed
	p.Speed *= config.ParticleDecay
	p.Size *= config.ParticleDecay
	p.Lifetime--
	return p.Lifetime <= 0
}

func (p *Particle) Draw(c render.Canvas, sk *render.Sketcher) {
	sk.Circle(c, p.Color, p.X, p.Y, math.Max(1, math.Trunc(p.Size)), 2, p.Seed, true)
}
