// internal/entity/player.go
package entity

import (
	"image/color"
	"math"

	"sketch-shooter/internal/config"
	"sketch-shooter/internal/engine"
	"sketch-shooter/internal/input"
	"sketch-shooter/internal/utils"
	"sketch-shooter/pkg/render"
)

// Player — аватар игрока.
type Player struct {
	X, Y           float64
	Angle          float64
	Speed          float64
	Size           float64
	Health         int
	MaxHealth      int
	GunCooldown    int
	GunCooldownMax int
	BulletDamage   int
	PowerUp        PowerUpKind // Активный бонус, PowerUpNone если нет
	PowerUpTime    int         // Сколько тиков бонусу осталось
	Seed           float64
}

// NewPlayer создаёт игрока в центре поля с характеристиками по умолчанию.
func NewPlayer(ctx *engine.Context) *Player {
	return &Player{
		X:              math.Floor(ctx.Width / 2),
		Y:              math.Floor(ctx.Height / 2),
		Speed:          config.PlayerSpeed,
		Size:           config.PlayerSize,
		Health:         config.PlayerMaxHealth,
		MaxHealth:      config.PlayerMaxHealth,
		GunCooldownMax: config.PlayerGunCooldownMax,
		BulletDamage:   config.PlayerBulletDamage,
		Seed:           ctx.RNG.Seed(),
	}
}

// Update двигает игрока по зажатым клавишам, поворачивает к указателю
// и отсчитывает перезарядку и бонус.
func (p *Player) Update(in input.Snapshot, width, height float64) {
	if in.Held(input.KeyW) || in.Held(input.KeyUp) {
		p.Y -= p.Speed
	}
	if in.Held(input.KeyS) || in.Held(input.KeyDown) {
		p.Y += p.Speed
	}
	if in.Held(input.KeyA) || in.Held(input.KeyLeft) {
		p.X -= p.Speed
	}
	if in.Held(input.KeyD) || in.Held(input.KeyRight) {
		p.X += p.Speed
	}

	half := math.Floor(p.Size / 2)
	p.X = utils.Clamp(p.X, half, width-half)
	p.Y = utils.Clamp(p.Y, half, height-half)

	p.Angle = math.Atan2(in.PointerY-p.Y, in.PointerX-p.X)

	if p.GunCooldown > 0 {
		p.GunCooldown--
	}

	if p.PowerUpTime > 0 {
		p.PowerUpTime--
		if p.PowerUpTime <= 0 {
			p.resetEffects()
		}
	}
}

func (p *Player) resetEffects() {
	p.Speed = config.PlayerSpeed
	p.GunCooldownMax = config.PlayerGunCooldownMax
	p.BulletDamage = config.PlayerBulletDamage
	p.PowerUp = PowerUpNone
}

// ActivatePowerUp запускает таймер бонуса.
func (p *Player) ActivatePowerUp(kind PowerUpKind) {
	p.PowerUp = kind
	p.PowerUpTime = config.PowerUpDuration
}

// CanShoot сообщает, готово ли оружие.
func (p *Player) CanShoot() bool {
	return p.GunCooldown == 0
}

// Shoot выпускает пулю и вспышку, если оружие готово.
// Возвращает созданную пулю или nil.
func (p *Player) Shoot(ctx *engine.Context, w *World) *Bullet {
	if !p.CanShoot() {
		return nil
	}
	b := NewBullet(ctx, p.X, p.Y, p.Angle, p.BulletDamage)
	w.Bullets = append(w.Bullets, b)
	p.GunCooldown = p.GunCooldownMax

	flashX := p.X + math.Cos(p.Angle)*p.Size*1.5
	flashY := p.Y + math.Sin(p.Angle)*p.Size*1.5
	for i := 0; i < config.MuzzleFlashParticles; i++ {
		clr := color.RGBA{R: 255, G: uint8(ctx.RNG.IntRange(100, 255)), B: 0, A: 255}
		flash := NewParticle(ctx, flashX, flashY, clr)
		flash.Angle = p.Angle + ctx.RNG.Uniform(-config.MuzzleFlashSpread, config.MuzzleFlashSpread)
		flash.Speed = ctx.RNG.Uniform(2, 6)
		flash.Lifetime = ctx.RNG.IntRange(5, 10)
		w.Particles = append(w.Particles, flash)
	}
	return b
}

// TakeDamage уменьшает здоровье (не ниже нуля); true — игрок погиб.
func (p *Player) TakeDamage(amount int) bool {
	p.Health -= amount
	if p.Health <= 0 {
		p.Health = 0
		return true
	}
	return false
}

// HealthFraction — доля здоровья в [0, 1].
func (p *Player) HealthFraction() float64 {
	if p.MaxHealth <= 0 {
		return 0
	}
	return float64(p.Health) / float64(p.MaxHealth)
}

func (p *Player) Draw(c render.Canvas, sk *render.Sketcher) {
	ox, oy := sk.Jitter(p.Seed, 0.8, 0.6)
	x, y := p.X, p.Y

	sk.Circle(c, config.Blue, x+ox, y+oy, math.Floor(p.Size/2), 4, p.Seed, true)

	// глаза смотрят в сторону прицела
	eyeOffset := math.Floor(p.Size / 6)
	eyeSize := math.Floor(p.Size / 8)
	dirX := math.Cos(p.Angle) * math.Floor(eyeOffset/2)
	dirY := math.Sin(p.Angle) * math.Floor(eyeOffset/2)
	for i, side := range []float64{-1, 1} {
		ex := x + side*eyeOffset + dirX + ox
		ey := y - eyeOffset + dirY + oy
		seed := p.Seed + float64(10*(i+1))
		sk.Circle(c, config.White, ex, ey, eyeSize, 3, seed, true)
		sk.Circle(c, config.Ink, ex+dirX*0.6, ey+dirY*0.6, math.Floor(eyeSize/2), 2, seed+1, true)
	}

	p.drawMouth(c, sk, oy)
	p.drawGun(c, sk, ox, oy)

	// полоска здоровья
	barY := y - config.HealthBarOffsetY
	left := x - config.HealthBarHalfWidth
	healthWidth := math.Trunc(p.HealthFraction() * 2 * config.HealthBarHalfWidth)
	sk.Line(c, config.Red, left, barY, x+config.HealthBarHalfWidth, barY, 8, 3, p.Seed+200)
	sk.Line(c, config.Green, left, barY, left+healthWidth, barY, 6, 3, p.Seed+201)
}

func (p *Player) drawMouth(c render.Canvas, sk *render.Sketcher, oy float64) {
	mouth := math.Floor(p.Size / 4)
	hp := p.HealthFraction()
	switch {
	case hp > 0.7:
		// улыбка из пяти коротких штрихов
		y0 := p.Y + math.Floor(mouth/2) + oy
		for i := 0; i < 5; i++ {
			t := float64(i) / 4
			mx := p.X - mouth + 2*mouth*t
			my := y0 - math.Abs(math.Sin(t*math.Pi))*mouth*0.6
			sk.Line(c, config.Ink, mx-6, my, mx+6, my+1, 2, 2, p.Seed+float64(i*3))
		}
	case hp > 0.3:
		y0 := p.Y + math.Floor(mouth/2) + oy
		sk.Line(c, config.Ink, p.X-mouth, y0, p.X+mouth, y0, 3, 3, p.Seed+50)
	default:
		y0 := p.Y + mouth + oy
		for i := 0; i < 5; i++ {
			t := float64(i) / 4
			mx := p.X - mouth + 2*mouth*t
			my := y0 + math.Abs(math.Sin(t*math.Pi))*mouth*0.4
			sk.Line(c, config.Ink, mx-6, my, mx+6, my-1, 2, 2, p.Seed+float64(i*7))
		}
	}
}

func (p *Player) drawGun(c render.Canvas, sk *render.Sketcher, ox, oy float64) {
	cos, sin := math.Cos(p.Angle), math.Sin(p.Angle)
	gunLength := p.Size * config.GunLengthFactor
	endX := p.X + cos*gunLength
	endY := p.Y + sin*gunLength
	sk.Line(c, config.Ink, p.X+ox, p.Y+oy, endX, endY, 6, 4, p.Seed+100)

	barrel := math.Floor(p.Size / 2)
	sk.Line(c, config.BarrelColor, endX, endY, endX+cos*barrel, endY+sin*barrel, 8, 3, p.Seed+101)

	// рукоять перпендикулярно стволу
	handleAngle := p.Angle + math.Pi/2
	handleLength := math.Floor(p.Size / 3)
	hx := p.X + cos*barrel
	hy := p.Y + sin*barrel
	sk.Line(c, config.HandleColor, hx, hy, hx+math.Cos(handleAngle)*handleLength, hy+math.Sin(handleAngle)*handleLength, 6, 3, p.Seed+111)
}
