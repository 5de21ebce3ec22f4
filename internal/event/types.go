// internal/event/types.go
package event

const (
	GameStarted      EventType = "GameStarted"      // Началась новая партия
	BulletFired      EventType = "BulletFired"      // Игрок выстрелил
	EnemyKilled      EventType = "EnemyKilled"      // Враг уничтожен пулей
	EnemyHit         EventType = "EnemyHit"         // Пуля попала, но враг выжил
	PlayerHit        EventType = "PlayerHit"        // Враг врезался в игрока
	PowerUpCollected EventType = "PowerUpCollected" // Бонус подобран
	PowerUpExpired   EventType = "PowerUpExpired"   // Действие бонуса закончилось
	PlayerDied       EventType = "PlayerDied"       // Здоровье игрока кончилось
)

// ScoreData — данные для EnemyKilled и PlayerDied.
type ScoreData struct {
	Gained int // Очки за этого врага
	Total  int // Счёт после события
}
