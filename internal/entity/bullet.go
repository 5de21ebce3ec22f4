// internal/entity/bullet.go
package entity

import (
	"math"

	"sketch-shooter/internal/config"
	"sketch-shooter/internal/engine"
	"sketch-shooter/pkg/render"
)

// Bullet — пуля игрока.
type Bullet struct {
	X, Y     float64
	Angle    float64
	Speed    float64
	Size     float64
	Damage   int
	Lifetime int
	Seed     float64

	removed bool
}

// NewBullet создаёт пулю на BulletSpawnOffset пикселей впереди стрелка.
func NewBullet(ctx *engine.Context, x, y, angle float64, damage int) *Bullet {
	return &Bullet{
		X:        x + math.Cos(angle)*config.BulletSpawnOffset,
		Y:        y + math.Sin(angle)*config.BulletSpawnOffset,
		Angle:    angle,
		Speed:    config.BulletSpeed,
		Size:     config.BulletSize,
		Damage:   damage,
		Lifetime: config.BulletLifetime,
		Seed:     ctx.RNG.Seed(),
	}
}

// Update двигает пулю; возвращает true, если она истекла или вылетела за экран.
func (b *Bullet) Update(width, height float64) bool {
	b.X += math.Cos(b.Angle) * b.Speed
	b.Y += math.Sin(b.Angle) * b.Speed
	b.Lifetime--
	return b.X < 0 || b.X > width || b.Y < 0 || b.Y > height || b.Lifetime <= 0
}

// Remove помечает пулю к удалению. Повторный вызов ничего не меняет.
func (b *Bullet) Remove()       { b.removed = true }
func (b *Bullet) Removed() bool { return b.removed }

func (b *Bullet) Draw(c render.Canvas, sk *render.Sketcher) {
	sk.Circle(c, config.Orange, b.X, b.Y, b.Size, 3, b.Seed, true)
	sk.Circle(c, config.BulletGlowColor, b.X, b.Y, b.Size+3, 2, b.Seed+3, false)
}
