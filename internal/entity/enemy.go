// internal/entity/enemy.go
package entity

import (
	"image/color"
	"math"

	"sketch-shooter/internal/config"
	"sketch-shooter/internal/engine"
	"sketch-shooter/pkg/render"
)

// Enemy — враг, который идёт прямо на игрока. Начальное здоровье равно размеру.
type Enemy struct {
	X, Y   float64
	Speed  float64
	Size   float64
	Health int
	Color  color.RGBA
	Seed   float64

	removed bool
}

// NewEnemy создаёт врага за случайным краем экрана.
func NewEnemy(ctx *engine.Context) *Enemy {
	w, h := int(ctx.Width), int(ctx.Height)
	var x, y float64
	switch ctx.RNG.Intn(4) {
	case 0: // сверху
		x, y = float64(ctx.RNG.IntRange(0, w)), -config.EnemySpawnMargin
	case 1: // справа
		x, y = ctx.Width+config.EnemySpawnMargin, float64(ctx.RNG.IntRange(0, h))
	case 2: // снизу
		x, y = float64(ctx.RNG.IntRange(0, w)), ctx.Height+config.EnemySpawnMargin
	default: // слева
		x, y = -config.EnemySpawnMargin, float64(ctx.RNG.IntRange(0, h))
	}
	e := NewEnemyAt(ctx, x, y, ctx.RNG.IntRange(config.EnemyMinSize, config.EnemyMaxSize))
	e.Speed = ctx.RNG.Uniform(config.EnemyMinSpeed, config.EnemyMaxSpeed)
	return e
}

// NewEnemyAt создаёт врага заданного размера в заданной точке.
func NewEnemyAt(ctx *engine.Context, x, y float64, size int) *Enemy {
	return &Enemy{
		X:      x,
		Y:      y,
		Speed:  config.EnemyMinSpeed,
		Size:   float64(size),
		Health: size,
		Color: color.RGBA{
			R: uint8(ctx.RNG.IntRange(80, 220)),
			G: uint8(ctx.RNG.IntRange(20, 120)),
			B: uint8(ctx.RNG.IntRange(20, 120)),
			A: 255,
		},
		Seed: ctx.RNG.Seed(),
	}
}

// Update делает шаг к цели без инерции.
func (e *Enemy) Update(targetX, targetY float64) {
	angle := math.Atan2(targetY-e.Y, targetX-e.X)
	e.X += math.Cos(angle) * e.Speed
	e.Y += math.Sin(angle) * e.Speed
}

// TakeDamage наносит урон; возвращает true, если враг погиб.
// Выживший враг уменьшается до max(20, health).
func (e *Enemy) TakeDamage(amount int) bool {
	e.Health -= amount
	if e.Health <= 0 {
		return true
	}
	e.Size = math.Max(config.EnemyMinDisplaySize, float64(e.Health))
	return false
}

func (e *Enemy) Remove()       { e.removed = true }
func (e *Enemy) Removed() bool { return e.removed }

func (e *Enemy) Draw(c render.Canvas, sk *render.Sketcher) {
	sk.Circle(c, e.Color, e.X, e.Y, math.Trunc(e.Size), 4, e.Seed, true)

	eyeDistance := math.Floor(e.Size / 3)
	eyeSize := math.Max(3, math.Floor(e.Size/6))
	sk.Circle(c, config.White, e.X-eyeDistance, e.Y-eyeDistance/2, eyeSize, 2, e.Seed+10, true)
	sk.Circle(c, config.White, e.X+eyeDistance, e.Y-eyeDistance/2, eyeSize, 2, e.Seed+20, true)

	// злой рот
	mouthY := e.Y + e.Size/2
	sk.Line(c, config.White, e.X-eyeDistance, mouthY, e.X+eyeDistance, mouthY, 3, 3, e.Seed+30)
}
