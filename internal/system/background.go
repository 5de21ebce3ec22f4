// internal/system/background.go
package system

import (
	"sketch-shooter/internal/config"
	"sketch-shooter/internal/engine"
	"sketch-shooter/internal/entity"
	"sketch-shooter/pkg/render"
)

// GrainDot — точка «бумажного» зерна.
type GrainDot struct {
	X, Y  float64
	Alpha uint8
}

// BackgroundSystem — фон, общий для всех состояний: туманности, звёзды, зерно.
type BackgroundSystem struct {
	ctx     *engine.Context
	Stars   []*entity.Star
	Nebulas []*entity.Nebula
	Grain   []GrainDot
}

func NewBackgroundSystem(ctx *engine.Context) *BackgroundSystem {
	s := &BackgroundSystem{ctx: ctx}
	for i := 0; i < config.StarCount; i++ {
		s.Stars = append(s.Stars, entity.NewStar(ctx))
	}
	for i := 0; i < config.NebulaCount; i++ {
		s.Nebulas = append(s.Nebulas, entity.NewNebula(ctx))
	}
	w, h := int(ctx.Width), int(ctx.Height)
	for i := 0; i < config.GrainDots; i++ {
		s.Grain = append(s.Grain, GrainDot{
			X:     float64(ctx.RNG.IntRange(0, w-1)),
			Y:     float64(ctx.RNG.IntRange(0, h-1)),
			Alpha: uint8(ctx.RNG.IntRange(8, 24)),
		})
	}
	return s
}

// Update двигает звёзды. Туманности и зерно статичны.
func (s *BackgroundSystem) Update() {
	for _, star := range s.Stars {
		star.Update(s.ctx)
	}
}

// Draw заливает фон и рисует туманности, звёзды и зерно поверх.
func (s *BackgroundSystem) Draw(c render.Canvas) {
	c.FillRect(0, 0, s.ctx.Width, s.ctx.Height, config.BackgroundColor)
	now := s.ctx.Now()
	for _, n := range s.Nebulas {
		n.Draw(c, now)
	}
	for _, star := range s.Stars {
		star.Draw(c, s.ctx.Sketcher)
	}
	for _, g := range s.Grain {
		c.FillRect(g.X, g.Y, 1, 1, render.WithAlpha(config.Ink, g.Alpha))
	}
}
