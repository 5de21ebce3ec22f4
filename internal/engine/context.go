// internal/engine/context.go
package engine

import (
	"sketch-shooter/internal/config"
	"sketch-shooter/internal/utils"
	"sketch-shooter/pkg/render"
)

// Clock — счётчик тиков симуляции. Время для отрисовки считается от тиков,
// а не от настенных часов, поэтому кадр воспроизводим при фиксированном сиде.
type Clock struct {
	tick uint64
}

// Advance переводит часы на один тик вперёд.
func (c *Clock) Advance() {
	c.tick++
}

// Tick возвращает номер текущего тика.
func (c *Clock) Tick() uint64 {
	return c.tick
}

// Seconds возвращает время в секундах при TicksPerSecond тиках в секунду.
func (c *Clock) Seconds() float64 {
	return float64(c.tick) / config.TicksPerSecond
}

// Context — общее окружение симуляции: размер поля, часы, генераторы, скетчер.
// Передаётся в конструкторы и Update сущностей вместо глобальных переменных.
type Context struct {
	Width, Height float64
	Clock         *Clock
	RNG           *utils.PRNGService
	Sketcher      *render.Sketcher
}

// NewContext создаёт контекст с экраном по умолчанию.
// Скетчер получает собственный поток случайных чисел, чтобы отрисовка
// не влияла на случайность симуляции.
func NewContext(seed int64) *Context {
	clock := &Clock{}
	sketchSeed := seed
	if seed != 0 {
		sketchSeed = seed + 1
	}
	return &Context{
		Width:    config.ScreenWidth,
		Height:   config.ScreenHeight,
		Clock:    clock,
		RNG:      utils.NewPRNGService(seed),
		Sketcher: render.NewSketcher(clock, utils.NewPRNGService(sketchSeed)),
	}
}

// Now возвращает текущее время симуляции в секундах.
func (c *Context) Now() float64 {
	return c.Clock.Seconds()
}
