// internal/system/spawn.go
package system

import (
	"math"

	"sketch-shooter/internal/config"
	"sketch-shooter/internal/engine"
	"sketch-shooter/internal/entity"
)

// SpawnSystem выпускает врагов и бонусы по таймерам.
// Задержка между врагами уменьшается на SpawnDelayDecrement после каждого, но не ниже MinSpawnDelay.
type SpawnSystem struct {
	ctx          *engine.Context
	enemyTimer   float64
	enemyDelay   float64
	powerUpTimer int
}

func NewSpawnSystem(ctx *engine.Context) *SpawnSystem {
	return &SpawnSystem{
		ctx:        ctx,
		enemyDelay: config.InitialSpawnDelay,
	}
}

// UpdateEnemies тикает таймер врагов; возвращает появившегося врага или nil.
func (s *SpawnSystem) UpdateEnemies(w *entity.World) *entity.Enemy {
	s.enemyTimer++
	if s.enemyTimer < s.enemyDelay {
		return nil
	}
	e := entity.NewEnemy(s.ctx)
	w.Enemies = append(w.Enemies, e)
	s.enemyTimer = 0
	s.enemyDelay = math.Max(config.MinSpawnDelay, s.enemyDelay-config.SpawnDelayDecrement)
	return e
}

// UpdatePowerUps тикает таймер бонусов; возвращает появившийся бонус или nil.
func (s *SpawnSystem) UpdatePowerUps(w *entity.World) *entity.PowerUp {
	s.powerUpTimer++
	if s.powerUpTimer < config.PowerUpSpawnInterval {
		return nil
	}
	pu := entity.NewPowerUp(s.ctx)
	w.PowerUps = append(w.PowerUps, pu)
	s.powerUpTimer = 0
	return pu
}

// EnemyDelay — текущая задержка между врагами в тиках.
func (s *SpawnSystem) EnemyDelay() float64 {
	return s.enemyDelay
}
