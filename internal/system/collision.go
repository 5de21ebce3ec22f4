// internal/system/collision.go
package system

import (
	"math"

	"sketch-shooter/internal/config"
	"sketch-shooter/internal/engine"
	"sketch-shooter/internal/entity"
	"sketch-shooter/internal/event"
	"sketch-shooter/internal/utils"
)

// Outcome — итог разрешения столкновений за тик.
type Outcome struct {
	ScoreGained int
	PlayerDied  bool
	Message     string // Сообщение последнего подобранного бонуса
}

// CollisionSystem разрешает взаимодействия: игрок↔бонус, игрок↔враг, пуля↔враг.
// Расстояния — евклидовы между центрами, без пространственного индекса.
type CollisionSystem struct {
	ctx             *engine.Context
	eventDispatcher *event.Dispatcher
}

func NewCollisionSystem(ctx *engine.Context, eventDispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		ctx:             ctx,
		eventDispatcher: eventDispatcher,
	}
}

// ResolvePowerUps подбирает бонусы, которых касается игрок.
func (s *CollisionSystem) ResolvePowerUps(w *entity.World) Outcome {
	var out Outcome
	p := w.Player
	reach := math.Floor(p.Size / 2)
	for _, pu := range w.PowerUps {
		if pu.Removed() {
			continue
		}
		if utils.Distance(pu.X, pu.Y, p.X, p.Y) >= pu.Size+reach {
			continue
		}
		out.Message = pu.Apply(p)
		p.ActivatePowerUp(pu.Kind)
		w.Burst(s.ctx, pu.X, pu.Y, pu.Color(), config.PowerUpPickupParticles)
		pu.Remove()
		s.eventDispatcher.Dispatch(event.Event{Type: event.PowerUpCollected, Data: pu.Kind})
	}
	w.Compact()
	return out
}

// ResolveEnemies обрабатывает врагов по порядку. Таран игрока исключает
// проверку пуль для этого врага; каждую пулю тратит не больше одного врага,
// и каждый враг за тик получает не больше одной пули.
func (s *CollisionSystem) ResolveEnemies(w *entity.World) Outcome {
	var out Outcome
	p := w.Player
	reach := math.Floor(p.Size / 2)
	for _, e := range w.Enemies {
		if e.Removed() {
			continue
		}
		if utils.Distance(e.X, e.Y, p.X, p.Y) < e.Size+reach {
			if p.TakeDamage(config.PlayerContactDamage) {
				out.PlayerDied = true
			}
			w.Burst(s.ctx, e.X, e.Y, e.Color, config.EnemyContactParticles)
			e.Remove()
			s.eventDispatcher.Dispatch(event.Event{Type: event.PlayerHit, Data: p.Health})
			continue
		}

		for _, b := range w.Bullets {
			if b.Removed() {
				continue
			}
			if utils.Distance(b.X, b.Y, e.X, e.Y) >= e.Size+b.Size {
				continue
			}
			if e.TakeDamage(b.Damage) {
				gained := int(e.Size)
				out.ScoreGained += gained
				w.Burst(s.ctx, e.X, e.Y, e.Color, config.EnemyDeathParticles)
				e.Remove()
				s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.ScoreData{Gained: gained}})
			} else {
				s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyHit, Data: e.Health})
			}
			b.Remove()
			break
		}
	}
	w.Compact()
	return out
}
