package system

import (
	"math"
	"testing"

	"sketch-shooter/internal/config"
	"sketch-shooter/internal/engine"
	"sketch-shooter/internal/entity"
	"sketch-shooter/internal/event"
	"sketch-shooter/pkg/render"
)

type recordingListener struct {
	events []event.Event
}

func (l *recordingListener) OnEvent(e event.Event) {
	l.events = append(l.events, e)
}

func (l *recordingListener) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func newTestWorld() (*engine.Context, *entity.World, *CollisionSystem, *recordingListener) {
	ctx := engine.NewContext(2024)
	d := event.NewDispatcher()
	l := &recordingListener{}
	d.SubscribeAll(l, event.PowerUpCollected, event.PlayerHit, event.EnemyKilled, event.EnemyHit)
	return ctx, entity.NewWorld(ctx), NewCollisionSystem(ctx, d), l
}

func TestEnemyHitTwiceShrinksThenDies(t *testing.T) {
	ctx, w, cs, l := newTestWorld()
	e := entity.NewEnemyAt(ctx, 100, 100, 40)
	w.Enemies = append(w.Enemies, e)

	w.Bullets = append(w.Bullets, entity.NewBullet(ctx, 50, 100, 0, 25)) // появляется в (100, 100)
	out := cs.ResolveEnemies(w)
	if out.ScoreGained != 0 || e.Size != 20 || len(w.Bullets) != 0 || len(w.Enemies) != 1 {
		t.Fatalf("after first hit: score %d size %v bullets %d", out.ScoreGained, e.Size, len(w.Bullets))
	}

	w.Bullets = append(w.Bullets, entity.NewBullet(ctx, 50, 100, 0, 25))
	out = cs.ResolveEnemies(w)
	if out.ScoreGained != 20 {
		t.Fatalf("expected score +20, got %d", out.ScoreGained)
	}
	if len(w.Enemies) != 0 || len(w.Bullets) != 0 {
		t.Fatalf("enemy and bullet must be removed: %d %d", len(w.Enemies), len(w.Bullets))
	}
	if len(w.Particles) != config.EnemyDeathParticles {
		t.Fatalf("expected %d particles, got %d", config.EnemyDeathParticles, len(w.Particles))
	}
	if l.count(event.EnemyHit) != 1 || l.count(event.EnemyKilled) != 1 {
		t.Fatalf("unexpected events %+v", l.events)
	}
}

func TestOneBulletPerEnemyPerTick(t *testing.T) {
	ctx, w, cs, _ := newTestWorld()
	e := entity.NewEnemyAt(ctx, 100, 100, 70)
	w.Enemies = append(w.Enemies, e)
	for i := 0; i < 3; i++ {
		w.Bullets = append(w.Bullets, entity.NewBullet(ctx, 50, 100, 0, 25))
	}
	cs.ResolveEnemies(w)
	if e.Health != 45 || len(w.Bullets) != 2 {
		t.Fatalf("expected one hit, health %d bullets %d", e.Health, len(w.Bullets))
	}
}

func TestBulletIsSpentOnFirstEnemy(t *testing.T) {
	ctx, w, cs, _ := newTestWorld()
	first := entity.NewEnemyAt(ctx, 100, 100, 70)
	second := entity.NewEnemyAt(ctx, 105, 100, 70)
	w.Enemies = append(w.Enemies, first, second)
	w.Bullets = append(w.Bullets, entity.NewBullet(ctx, 50, 100, 0, 25))

	cs.ResolveEnemies(w)
	if first.Health != 45 || second.Health != 70 {
		t.Fatalf("bullet must hit only the first enemy: %d %d", first.Health, second.Health)
	}
}

func TestPlayerContactSkipsBulletCheck(t *testing.T) {
	ctx, w, cs, l := newTestWorld()
	p := w.Player
	e := entity.NewEnemyAt(ctx, p.X+40, p.Y, 30) // 40 < 30 + 25
	w.Enemies = append(w.Enemies, e)
	w.Bullets = append(w.Bullets, entity.NewBullet(ctx, e.X-50, e.Y, 0, 25))

	out := cs.ResolveEnemies(w)
	if p.Health != 90 || out.PlayerDied {
		t.Fatalf("player health %d died=%v", p.Health, out.PlayerDied)
	}
	if len(w.Enemies) != 0 || len(w.Bullets) != 1 {
		t.Fatalf("enemy removed without consuming the bullet: enemies %d bullets %d", len(w.Enemies), len(w.Bullets))
	}
	if out.ScoreGained != 0 || l.count(event.PlayerHit) != 1 {
		t.Fatal("contact must not score")
	}
	if len(w.Particles) != config.EnemyContactParticles {
		t.Fatalf("particles %d", len(w.Particles))
	}
}

func TestContactAtExactReachDoesNotCollide(t *testing.T) {
	ctx, w, cs, _ := newTestWorld()
	p := w.Player
	w.Enemies = append(w.Enemies, entity.NewEnemyAt(ctx, p.X+55, p.Y, 30))
	cs.ResolveEnemies(w)
	if p.Health != 100 || len(w.Enemies) != 1 {
		t.Fatal("distance equal to reach must not collide")
	}
}

func TestPlayerDiesFromContact(t *testing.T) {
	ctx, w, cs, _ := newTestWorld()
	p := w.Player
	p.Health = 10
	w.Enemies = append(w.Enemies, entity.NewEnemyAt(ctx, p.X, p.Y, 30), entity.NewEnemyAt(ctx, p.X, p.Y, 30))

	out := cs.ResolveEnemies(w)
	if !out.PlayerDied || p.Health != 0 {
		t.Fatalf("died=%v health=%d", out.PlayerDied, p.Health)
	}
	// оставшиеся враги этого тика всё равно обрабатываются
	if len(w.Enemies) != 0 {
		t.Fatalf("enemies left: %d", len(w.Enemies))
	}
}

func TestPowerUpPickup(t *testing.T) {
	ctx, w, cs, l := newTestWorld()
	p := w.Player
	near := entity.NewPowerUpAt(ctx, p.X+50, p.Y, entity.PowerUpSpeed) // 50 < 30 + 25
	far := entity.NewPowerUpAt(ctx, p.X+60, p.Y, entity.PowerUpDamage)
	w.PowerUps = append(w.PowerUps, near, far)

	out := cs.ResolvePowerUps(w)
	if out.Message != "Speed boosted!" {
		t.Fatalf("unexpected outcome %+v", out)
	}
	if p.Speed != 8 || p.PowerUp != entity.PowerUpSpeed || p.PowerUpTime != config.PowerUpDuration {
		t.Fatalf("effect not active: %+v", p)
	}
	if len(w.PowerUps) != 1 || w.PowerUps[0] != far {
		t.Fatal("only the touched power-up must be removed")
	}
	if len(w.Particles) != config.PowerUpPickupParticles {
		t.Fatalf("particles %d", len(w.Particles))
	}
	for _, pt := range w.Particles {
		if pt.Color != entity.PowerUpEffects[entity.PowerUpSpeed].Color {
			t.Fatalf("particle colour %+v", pt.Color)
		}
	}
	if l.count(event.PowerUpCollected) != 1 {
		t.Fatal("expected PowerUpCollected event")
	}
}

func TestSpawnSystemRamp(t *testing.T) {
	ctx := engine.NewContext(5)
	w := entity.NewWorld(ctx)
	s := NewSpawnSystem(ctx)

	for i := 1; i < 60; i++ {
		if s.UpdateEnemies(w) != nil {
			t.Fatalf("enemy spawned early at tick %d", i)
		}
	}
	if s.UpdateEnemies(w) == nil || len(w.Enemies) != 1 {
		t.Fatal("expected first enemy at tick 60")
	}
	if math.Abs(s.EnemyDelay()-59.8) > 1e-9 {
		t.Fatalf("delay %v", s.EnemyDelay())
	}

	for i := 0; i < 100000 && s.EnemyDelay() > config.MinSpawnDelay; i++ {
		s.UpdateEnemies(w)
	}
	if s.EnemyDelay() != config.MinSpawnDelay {
		t.Fatalf("delay must floor at %v, got %v", config.MinSpawnDelay, s.EnemyDelay())
	}
}

func TestSpawnSystemPowerUps(t *testing.T) {
	ctx := engine.NewContext(5)
	w := entity.NewWorld(ctx)
	s := NewSpawnSystem(ctx)
	spawned := 0
	for i := 0; i < 1200; i++ {
		if s.UpdatePowerUps(w) != nil {
			spawned++
		}
	}
	if spawned != 2 || len(w.PowerUps) != 2 {
		t.Fatalf("expected 2 power-ups in 1200 ticks, got %d", spawned)
	}
}

func TestBackgroundSystem(t *testing.T) {
	ctx := engine.NewContext(8)
	bg := NewBackgroundSystem(ctx)
	if len(bg.Stars) != config.StarCount || len(bg.Nebulas) != config.NebulaCount || len(bg.Grain) != config.GrainDots {
		t.Fatalf("unexpected background sizes")
	}
	for _, g := range bg.Grain {
		if g.Alpha < 8 || g.Alpha > 24 || g.X < 0 || g.X >= ctx.Width {
			t.Fatalf("bad grain dot %+v", g)
		}
	}

	y0 := bg.Stars[0].Y
	bg.Update()
	if bg.Stars[0].Y == y0 && y0 <= ctx.Height {
		t.Fatal("stars must drift")
	}

	rec := render.NewRecorder()
	bg.Draw(rec)
	first := rec.Ops[0]
	if first.Kind != render.OpFillRect || first.W != ctx.Width || first.Color.B != 36 {
		t.Fatalf("background fill must come first: %+v", first)
	}
	if rec.Count(render.OpLayer) != config.NebulaCount {
		t.Fatalf("expected one layer per nebula, got %d", rec.Count(render.OpLayer))
	}
}
