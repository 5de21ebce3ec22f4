package app

import (
	"testing"

	"sketch-shooter/internal/config"
	"sketch-shooter/internal/engine"
	"sketch-shooter/internal/entity"
	"sketch-shooter/internal/event"
	"sketch-shooter/internal/input"
	"sketch-shooter/pkg/render"
)

type typeCounter map[event.EventType]int

func (c typeCounter) OnEvent(e event.Event) { c[e.Type]++ }

func newTestGame() (*Game, typeCounter) {
	ctx := engine.NewContext(77)
	d := event.NewDispatcher()
	counts := typeCounter{}
	d.SubscribeAll(&counts, event.GameStarted, event.BulletFired, event.PlayerDied, event.PowerUpCollected, event.PowerUpExpired)
	return NewGame(ctx, d), counts
}

func aim(x, y float64) *input.Builder {
	b := &input.Builder{}
	return b.Pointer(x, y)
}

func TestNewGameIsFresh(t *testing.T) {
	g, counts := newTestGame()
	w := g.World
	if len(w.Bullets)+len(w.Enemies)+len(w.PowerUps)+len(w.Particles) != 0 {
		t.Fatal("collections must start empty")
	}
	if g.Score != 0 || g.Over() {
		t.Fatal("score must start at 0")
	}
	if w.Player.X != 600 || w.Player.Y != 400 || w.Player.Health != 100 {
		t.Fatalf("unexpected player %+v", w.Player)
	}
	if counts[event.GameStarted] != 1 {
		t.Fatal("expected GameStarted")
	}
}

func TestShootDuringTick(t *testing.T) {
	g, counts := newTestGame()
	g.Tick(aim(700, 400).Snapshot()) // поворот к указателю, угол 0

	g.Tick(aim(700, 400).Click(input.ButtonLeft).Snapshot())
	if len(g.World.Bullets) != 1 {
		t.Fatalf("expected one bullet, got %d", len(g.World.Bullets))
	}
	b := g.World.Bullets[0]
	if b.X != 665 || b.Y != 400 {
		t.Fatalf("bullet after its first tick at (%v, %v), want (665, 400)", b.X, b.Y)
	}
	if counts[event.BulletFired] != 1 {
		t.Fatal("expected BulletFired")
	}

	// два клика за тик при перезарядке дают не больше одной пули
	g.Tick(aim(700, 400).Click(input.ButtonLeft).Click(input.ButtonLeft).Snapshot())
	if len(g.World.Bullets) != 1 {
		t.Fatalf("cooldown ignored: %d bullets", len(g.World.Bullets))
	}
}

func TestEnemiesSpawnOverTime(t *testing.T) {
	g, _ := newTestGame()
	idle := aim(600, 300).Snapshot()
	for i := 0; i < 59; i++ {
		g.Tick(idle)
	}
	if len(g.World.Enemies) != 0 {
		t.Fatal("enemy spawned before tick 60")
	}
	g.Tick(idle)
	if len(g.World.Enemies) != 1 {
		t.Fatalf("expected 1 enemy at tick 60, got %d", len(g.World.Enemies))
	}
}

func TestPowerUpPickupShowsMessage(t *testing.T) {
	g, counts := newTestGame()
	p := g.World.Player
	g.World.PowerUps = append(g.World.PowerUps, entity.NewPowerUpAt(g.ctx, p.X, p.Y, entity.PowerUpRapidFire))

	g.Tick(aim(600, 300).Snapshot())
	if g.Message != "Rapid fire activated!" || g.MessageTime != config.MessageDuration {
		t.Fatalf("message %q time %d", g.Message, g.MessageTime)
	}
	s := g.HUDState()
	if s.PowerUpName != "Rapid Fire" || s.PowerUpFraction <= 0.99 {
		t.Fatalf("hud %+v", s)
	}
	if counts[event.PowerUpCollected] != 1 {
		t.Fatal("expected PowerUpCollected")
	}

	for i := 0; i < config.MessageDuration; i++ {
		g.Tick(aim(600, 300).Snapshot())
	}
	if g.MessageTime != 0 {
		t.Fatalf("message must be gone after %d ticks, left %d", config.MessageDuration, g.MessageTime)
	}
}

func TestPowerUpExpiryEvent(t *testing.T) {
	g, counts := newTestGame()
	g.World.Player.ActivatePowerUp(entity.PowerUpSpeed)
	g.World.Player.PowerUpTime = 1
	g.Tick(aim(600, 300).Snapshot())
	if counts[event.PowerUpExpired] != 1 {
		t.Fatal("expected PowerUpExpired")
	}
	if g.HUDState().PowerUpName != "" {
		t.Fatal("indicator must disappear after expiry")
	}
}

func TestPlayerDeathEndsGame(t *testing.T) {
	g, counts := newTestGame()
	p := g.World.Player
	p.Health = 10
	g.World.Enemies = append(g.World.Enemies, entity.NewEnemyAt(g.ctx, p.X, p.Y, 30), entity.NewEnemyAt(g.ctx, p.X+1, p.Y, 30))
	g.Score = 55

	g.Tick(aim(600, 300).Snapshot())
	if !g.Over() || p.Health != 0 {
		t.Fatalf("over=%v health=%d", g.Over(), p.Health)
	}
	if counts[event.PlayerDied] != 1 {
		t.Fatalf("PlayerDied dispatched %d times", counts[event.PlayerDied])
	}
}

func TestDrawIncludesHUD(t *testing.T) {
	g, _ := newTestGame()
	g.Score = 12
	rec := render.NewRecorder()
	g.Draw(rec)
	if _, ok := rec.FindText("Score: 12"); !ok {
		t.Fatalf("score missing from %v", rec.Texts())
	}
}

func TestTickResolvesPowerUpsBeforeEnemies(t *testing.T) {
	g, counts := newTestGame()
	w := g.World
	p := w.Player
	p.Health = 60
	w.PowerUps = append(w.PowerUps, entity.NewPowerUpAt(g.ctx, p.X, p.Y, entity.PowerUpHealth))
	w.Enemies = append(w.Enemies, entity.NewEnemyAt(g.ctx, p.X, p.Y, 30))

	g.Tick(input.Snapshot{})
	if p.Health != 90 { // 60 + 50 → 100, затем −10 от тарана
		t.Fatalf("expected health 90, got %d", p.Health)
	}
	if g.Message != "Health restored!" || g.MessageTime != config.MessageDuration {
		t.Fatalf("message %q for %d ticks", g.Message, g.MessageTime)
	}
	if len(w.PowerUps) != 0 || len(w.Enemies) != 0 {
		t.Fatal("both the power-up and the rammer must be gone")
	}
	if counts[event.PowerUpCollected] != 1 {
		t.Fatal("expected PowerUpCollected")
	}
}
