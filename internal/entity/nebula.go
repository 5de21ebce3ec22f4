// internal/entity/nebula.go
package entity

import (
	"image/color"
	"math"

	"sketch-shooter/internal/config"
	"sketch-shooter/internal/engine"
	"sketch-shooter/pkg/render"
)

// Nebula — неподвижное голубоватое облако фона.
type Nebula struct {
	X, Y  float64
	Size  int
	Color color.RGBA
	Alpha int
	Seed  float64
}

func NewNebula(ctx *engine.Context) *Nebula {
	return &Nebula{
		X:    float64(ctx.RNG.IntRange(0, int(ctx.Width))),
		Y:    float64(ctx.RNG.IntRange(0, int(ctx.Height))),
		Size: ctx.RNG.IntRange(100, 300),
		Color: color.RGBA{
			R: uint8(ctx.RNG.IntRange(0, 100)),
			G: uint8(ctx.RNG.IntRange(0, 100)),
			B: uint8(ctx.RNG.IntRange(100, 255)),
			A: 255,
		},
		Alpha: ctx.RNG.IntRange(10, 30),
		Seed:  ctx.RNG.Seed(),
	}
}

// RingAlpha — прозрачность кольца диаметром d.
func (n *Nebula) RingAlpha(d int) uint8 {
	return uint8(max(2, n.Alpha*d/n.Size))
}

// Draw рисует облако как набор колец с шагом NebulaRingStep: каждое кольцо
// заменяет (а не смешивает) то, что под ним, поэтому к краю облако плотнее.
// Весь слой накладывается с прозрачностью (alpha+20)/255.
func (n *Nebula) Draw(c render.Canvas, now float64) {
	size := float64(n.Size)
	left, top := n.X-math.Floor(size/2), n.Y-math.Floor(size/2)
	cx := n.X + math.Trunc(math.Sin(now*0.3+n.Seed)*6)
	cy := n.Y + math.Trunc(math.Cos(now*0.25+n.Seed)*6)
	layerAlpha := float64(n.Alpha+20) / 255

	c.Layer(left, top, size, size, layerAlpha, func(l render.Canvas) {
		for d := n.Size; d > 0; d -= config.NebulaRingStep {
			clr := render.WithAlpha(n.Color, n.RingAlpha(d))
			outer := float64(d / 2)
			inner := float64(max(0, d-config.NebulaRingStep) / 2)
			if inner <= 0 {
				l.FillCircle(cx, cy, outer, clr)
				continue
			}
			l.StrokeCircle(cx, cy, (outer+inner)/2, outer-inner, clr)
		}
	})
}
