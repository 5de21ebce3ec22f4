// internal/entity/powerup.go
package entity

import (
	"image/color"
	"math"

	"sketch-shooter/internal/config"
	"sketch-shooter/internal/engine"
	"sketch-shooter/internal/utils"
	"sketch-shooter/pkg/render"
)

// PowerUpKind — тип бонуса. Нулевое значение — «нет бонуса».
type PowerUpKind int

const (
	PowerUpNone PowerUpKind = iota
	PowerUpHealth
	PowerUpSpeed
	PowerUpRapidFire
	PowerUpDamage
)

// Attribute — характеристика игрока, которую меняет бонус.
type Attribute int

const (
	AttrHealth Attribute = iota
	AttrSpeed
	AttrGunCooldownMax
	AttrBulletDamage
)

// PowerUpEffect — профиль бонуса: что меняет, как выглядит, что пишет.
type PowerUpEffect struct {
	Name           string     // Подпись индикатора в HUD
	Message        string     // Сообщение при подборе
	Color          color.RGBA // Цвет самого бонуса и частиц
	IndicatorColor color.RGBA
	Attribute      Attribute
	Value          int // Для здоровья — прибавка, для остального — новое значение
	Weight         int // Вес при случайном выборе
}

// PowerUpKinds — порядок типов для случайного выбора.
var PowerUpKinds = []PowerUpKind{PowerUpHealth, PowerUpSpeed, PowerUpRapidFire, PowerUpDamage}

// PowerUpEffects — таблица эффектов.
var PowerUpEffects = map[PowerUpKind]PowerUpEffect{
	PowerUpHealth: {
		Name:           "Health Boost",
		Message:        "Health restored!",
		Color:          color.RGBA{90, 220, 120, 255},
		IndicatorColor: color.RGBA{0, 255, 0, 255},
		Attribute:      AttrHealth,
		Value:          50,
		Weight:         1,
	},
	PowerUpSpeed: {
		Name:           "Speed Boost",
		Message:        "Speed boosted!",
		Color:          color.RGBA{100, 220, 220, 255},
		IndicatorColor: color.RGBA{0, 255, 255, 255},
		Attribute:      AttrSpeed,
		Value:          8,
		Weight:         1,
	},
	PowerUpRapidFire: {
		Name:           "Rapid Fire",
		Message:        "Rapid fire activated!",
		Color:          color.RGBA{255, 230, 80, 255},
		IndicatorColor: color.RGBA{255, 255, 0, 255},
		Attribute:      AttrGunCooldownMax,
		Value:          5,
		Weight:         1,
	},
	PowerUpDamage: {
		Name:           "Damage Boost",
		Message:        "Damage increased!",
		Color:          color.RGBA{255, 90, 90, 255},
		IndicatorColor: color.RGBA{255, 0, 0, 255},
		Attribute:      AttrBulletDamage,
		Value:          50,
		Weight:         1,
	},
}

func (k PowerUpKind) String() string {
	switch k {
	case PowerUpHealth:
		return "health"
	case PowerUpSpeed:
		return "speed"
	case PowerUpRapidFire:
		return "rapidfire"
	case PowerUpDamage:
		return "damage"
	default:
		return "none"
	}
}

// Effect возвращает профиль типа; ok=false для PowerUpNone.
func (k PowerUpKind) Effect() (PowerUpEffect, bool) {
	e, ok := PowerUpEffects[k]
	return e, ok
}

// PowerUp — бонус на поле.
type PowerUp struct {
	X, Y      float64
	Kind      PowerUpKind
	Size      float64
	PulseSize float64
	Angle     float64
	Lifetime  int
	Seed      float64

	removed bool
}

// NewPowerUp создаёт бонус случайного типа в случайной точке с отступом от краёв.
func NewPowerUp(ctx *engine.Context) *PowerUp {
	x := ctx.RNG.IntRange(config.PowerUpSpawnMargin, int(ctx.Width)-config.PowerUpSpawnMargin)
	y := ctx.RNG.IntRange(config.PowerUpSpawnMargin, int(ctx.Height)-config.PowerUpSpawnMargin)

	weights := make([]int, len(PowerUpKinds))
	for i, k := range PowerUpKinds {
		weights[i] = PowerUpEffects[k].Weight
	}
	kind := PowerUpKinds[ctx.RNG.ChooseWeighted(weights)]

	p := NewPowerUpAt(ctx, float64(x), float64(y), kind)
	p.Angle = ctx.RNG.Uniform(0, 2*math.Pi)
	return p
}

// NewPowerUpAt создаёт бонус заданного типа в заданной точке.
func NewPowerUpAt(ctx *engine.Context, x, y float64, kind PowerUpKind) *PowerUp {
	return &PowerUp{
		X:         x,
		Y:         y,
		Kind:      kind,
		Size:      config.PowerUpSize,
		PulseSize: config.PowerUpSize,
		Lifetime:  config.PowerUpLifetime,
		Seed:      ctx.RNG.Seed(),
	}
}

// Update пульсирует и вращает бонус; возвращает true, когда время жизни вышло.
func (p *PowerUp) Update(now float64) bool {
	p.PulseSize = p.Size + math.Sin(now*3+p.Seed)*4
	p.Angle += config.PowerUpRotationSpeed
	if p.Angle > 2*math.Pi {
		p.Angle = 0
	}
	p.Lifetime--
	return p.Lifetime <= 0
}

// Apply применяет эффект к игроку и возвращает сообщение для HUD.
// Повторное применение того же типа даёт тот же результат (кроме здоровья,
// которое прибавляется, но не выше максимума).
func (p *PowerUp) Apply(pl *Player) string {
	return ApplyEffect(p.Kind, pl)
}

// ApplyEffect применяет эффект типа kind к игроку.
func ApplyEffect(kind PowerUpKind, pl *Player) string {
	e, ok := kind.Effect()
	if !ok {
		return ""
	}
	switch e.Attribute {
	case AttrHealth:
		pl.Health = utils.ClampInt(pl.Health+e.Value, 0, pl.MaxHealth)
	case AttrSpeed:
		pl.Speed = float64(e.Value)
	case AttrGunCooldownMax:
		pl.GunCooldownMax = e.Value
	case AttrBulletDamage:
		pl.BulletDamage = e.Value
	}
	return e.Message
}

// Color — цвет бонуса.
func (p *PowerUp) Color() color.RGBA {
	return PowerUpEffects[p.Kind].Color
}

func (p *PowerUp) Remove()       { p.removed = true }
func (p *PowerUp) Removed() bool { return p.removed }

func (p *PowerUp) Draw(c render.Canvas, sk *render.Sketcher) {
	clr := p.Color()

	// свечение
	glow := p.Size * 4
	c.Layer(p.X-p.Size*2, p.Y-p.Size*2, glow, glow, config.PowerUpGlowAlpha, func(l render.Canvas) {
		sk.Circle(l, clr, p.X, p.Y, math.Trunc(p.PulseSize*1.5), 3, p.Seed, true)
	})

	for i, shape := range p.Shape() {
		sk.Polygon(c, clr, shape, 3, p.Seed+float64(i)*5, true)
	}
}

// Shape возвращает многоугольники, из которых состоит значок бонуса.
func (p *PowerUp) Shape() [][]render.Point {
	x, y, s := p.X, p.Y, p.Size
	switch p.Kind {
	case PowerUpHealth:
		// крест из двух прямоугольников
		half := math.Floor(s / 2)
		arm := math.Floor(half / 2)
		vertical := []render.Point{{X: x - arm, Y: y - half}, {X: x + arm, Y: y - half}, {X: x + arm, Y: y + half}, {X: x - arm, Y: y + half}}
		horizontal := []render.Point{{X: x - half, Y: y - arm}, {X: x + half, Y: y - arm}, {X: x + half, Y: y + arm}, {X: x - half, Y: y + arm}}
		return [][]render.Point{vertical, horizontal}
	case PowerUpSpeed:
		pts := make([]render.Point, 0, 3)
		for k := 0; k < 3; k++ {
			a := p.Angle + float64(k)*(2*math.Pi/3)
			pts = append(pts, render.Point{X: x + math.Cos(a)*s, Y: y + math.Sin(a)*s})
		}
		return [][]render.Point{pts}
	case PowerUpRapidFire:
		inner := math.Floor(s / 2)
		pts := make([]render.Point, 0, 10)
		for k := 0; k < 5; k++ {
			a := p.Angle + float64(k)*(2*math.Pi/5)
			ia := a + math.Pi/5
			pts = append(pts,
				render.Point{X: x + math.Cos(a)*s, Y: y + math.Sin(a)*s},
				render.Point{X: x + math.Cos(ia)*inner, Y: y + math.Sin(ia)*inner},
			)
		}
		return [][]render.Point{pts}
	case PowerUpDamage:
		return [][]render.Point{{{X: x, Y: y - s}, {X: x + s, Y: y}, {X: x, Y: y + s}, {X: x - s, Y: y}}}
	}
	return nil
}
