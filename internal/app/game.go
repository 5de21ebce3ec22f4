// internal/app/game.go
package app

import (
	"log"

	"sketch-shooter/internal/config"
	"sketch-shooter/internal/engine"
	"sketch-shooter/internal/entity"
	"sketch-shooter/internal/event"
	"sketch-shooter/internal/input"
	"sketch-shooter/internal/system"
	"sketch-shooter/internal/ui"
	"sketch-shooter/pkg/render"
)

// Game — одна партия: мир, системы, счёт и сообщение HUD.
// Новая партия после GAME OVER — это новый Game.
type Game struct {
	ctx             *engine.Context
	World           *entity.World
	CollisionSystem *system.CollisionSystem
	SpawnSystem     *system.SpawnSystem
	EventDispatcher *event.Dispatcher
	HUD             *ui.HUD

	Score       int
	Message     string
	MessageTime int
	over        bool
}

// NewGame создаёт партию со свежим игроком в центре и пустыми коллекциями.
func NewGame(ctx *engine.Context, eventDispatcher *event.Dispatcher) *Game {
	g := &Game{
		ctx:             ctx,
		World:           entity.NewWorld(ctx),
		CollisionSystem: system.NewCollisionSystem(ctx, eventDispatcher),
		SpawnSystem:     system.NewSpawnSystem(ctx),
		EventDispatcher: eventDispatcher,
		HUD:             ui.NewHUD(ctx.Width, ctx.Height),
	}
	eventDispatcher.Dispatch(event.Event{Type: event.GameStarted})
	return g
}

// Tick продвигает партию на один тик в фиксированном порядке:
// выстрелы, игрок, пули, спавн врагов и бонусов, бонусы, враги, частицы.
func (g *Game) Tick(in input.Snapshot) {
	if g.MessageTime > 0 {
		g.MessageTime--
	}

	w := g.World
	p := w.Player
	for i := in.Clicks(input.ButtonLeft); i > 0; i-- {
		if b := p.Shoot(g.ctx, w); b != nil {
			g.EventDispatcher.Dispatch(event.Event{Type: event.BulletFired, Data: b.Damage})
		}
	}

	active := p.PowerUp
	p.Update(in, g.ctx.Width, g.ctx.Height)
	if active != entity.PowerUpNone && p.PowerUp == entity.PowerUpNone {
		g.EventDispatcher.Dispatch(event.Event{Type: event.PowerUpExpired, Data: active})
	}

	w.UpdateBullets(g.ctx.Width, g.ctx.Height)

	g.SpawnSystem.UpdateEnemies(w)
	g.SpawnSystem.UpdatePowerUps(w)

	w.UpdatePowerUps(g.ctx.Now())
	g.apply(g.CollisionSystem.ResolvePowerUps(w))

	w.UpdateEnemies()
	g.apply(g.CollisionSystem.ResolveEnemies(w))

	w.UpdateParticles()
}

func (g *Game) apply(out system.Outcome) {
	g.Score += out.ScoreGained
	if out.Message != "" {
		g.Message = out.Message
		g.MessageTime = config.MessageDuration
	}
	if out.PlayerDied && !g.over {
		g.over = true
		log.Printf("Игрок погиб, счёт: %d", g.Score)
		g.EventDispatcher.Dispatch(event.Event{Type: event.PlayerDied, Data: event.ScoreData{Total: g.Score}})
	}
}

// Over сообщает, что здоровье игрока кончилось.
func (g *Game) Over() bool {
	return g.over
}

// HUDState собирает данные для HUD.
func (g *Game) HUDState() ui.HUDState {
	s := ui.HUDState{
		Score:       g.Score,
		Message:     g.Message,
		MessageTime: g.MessageTime,
	}
	p := g.World.Player
	if e, ok := p.PowerUp.Effect(); ok {
		s.PowerUpName = e.Name
		s.PowerUpColor = e.IndicatorColor
		s.PowerUpFraction = float64(p.PowerUpTime) / config.PowerUpDuration
	}
	return s
}

// Draw рисует мир и HUD поверх.
func (g *Game) Draw(c render.Canvas) {
	g.World.Draw(c, g.ctx.Sketcher)
	g.HUD.Draw(c, g.HUDState())
}
