// internal/entity/star.go
package entity

import (
	"math"

	"sketch-shooter/internal/config"
	"sketch-shooter/internal/engine"
	"sketch-shooter/pkg/render"
)

// Star — мерцающая звезда фона, медленно дрейфует вниз.
type Star struct {
	X, Y               float64
	Size               float64
	Brightness         float64
	OriginalBrightness float64
	Speed              float64
	TwinkleSpeed       float64
	TwinkleDirection   float64
	Seed               float64
}

func NewStar(ctx *engine.Context) *Star {
	brightness := float64(ctx.RNG.IntRange(100, 255))
	return &Star{
		X:                  float64(ctx.RNG.IntRange(0, int(ctx.Width))),
		Y:                  float64(ctx.RNG.IntRange(0, int(ctx.Height))),
		Size:               ctx.RNG.Uniform(0.5, 3),
		Brightness:         brightness,
		OriginalBrightness: brightness,
		Speed:              ctx.RNG.Uniform(0.2, 1),
		TwinkleSpeed:       ctx.RNG.Uniform(0.02, 0.1),
		TwinkleDirection:   float64(ctx.RNG.Sign()),
		Seed:               ctx.RNG.Seed(),
	}
}

// Update сдвигает звезду и меняет яркость. Ушедшая за низ звезда
// возвращается наверх в случайной колонке.
func (s *Star) Update(ctx *engine.Context) {
	s.Y += s.Speed
	if s.Y > ctx.Height {
		s.Y = 0
		s.X = float64(ctx.RNG.IntRange(0, int(ctx.Width)))
	}

	s.Brightness += s.TwinkleSpeed * s.TwinkleDirection * 60 / config.TicksPerSecond
	if s.Brightness > 255 || s.Brightness < s.OriginalBrightness-50 {
		s.TwinkleDirection = -s.TwinkleDirection
	}
}

func (s *Star) Draw(c render.Canvas, sk *render.Sketcher) {
	clr := render.Gray(math.Trunc(s.Brightness))
	sk.Circle(c, clr, s.X, s.Y, math.Max(1, math.Trunc(s.Size)), 2, s.Seed, true)
	if s.Size > 2 {
		sk.Circle(c, clr, s.X, s.Y, math.Trunc(s.Size*1.8), 2, s.Seed+10, false)
	}
}
