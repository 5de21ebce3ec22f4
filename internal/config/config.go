// internal/config/config.go
package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	ScreenWidth    = 1200
	ScreenHeight   = 800
	TicksPerSecond = 60
	WindowTitle    = "Mind-Blowing Shooter (Sketchy Edition)"

	// Игрок
	PlayerSize           = 50.0
	PlayerSpeed          = 5.0
	PlayerMaxHealth      = 100
	PlayerGunCooldownMax = 10
	PlayerBulletDamage   = 25
	PlayerContactDamage  = 10 // Урон от столкновения с врагом

	// Снаряды
	BulletSpeed       = 15.0
	BulletSize        = 8.0
	BulletLifetime    = 60   // В тиках
	BulletSpawnOffset = 50.0 // Отступ от центра игрока, не зависит от размера
	GunLengthFactor   = 1.2  // Длина ствола при отрисовке = PlayerSize * GunLengthFactor

	// Враги
	EnemySpawnMargin      = 50.0 // Насколько за краем экрана появляется враг
	EnemyMinSpeed         = 1.0
	EnemyMaxSpeed         = 3.0
	EnemyMinSize          = 30
	EnemyMaxSize          = 70
	EnemyMinDisplaySize   = 20.0
	InitialSpawnDelay     = 60.0
	MinSpawnDelay         = 10.0
	SpawnDelayDecrement   = 0.2
	EnemyContactParticles = 20
	EnemyDeathParticles   = 30

	// Бонусы
	PowerUpSize            = 30.0
	PowerUpLifetime        = 600
	PowerUpSpawnInterval   = 600
	PowerUpDuration        = 600 // Длительность эффекта бонуса
	PowerUpSpawnMargin     = 100
	PowerUpRotationSpeed   = 0.04
	PowerUpPickupParticles = 20
	PowerUpGlowAlpha       = 80.0 / 255.0

	// Частицы
	ParticleDecay        = 0.95
	MuzzleFlashParticles = 10
	MuzzleFlashSpread    = 0.5

	// Фон
	StarCount      = 120
	NebulaCount    = 5
	GrainDots      = 350
	NebulaRingStep = 12

	// Интерфейс
	MessageDuration    = 180
	HUDBarWidth        = 100
	HUDBarHeight       = 10
	HealthBarOffsetY   = 60
	HealthBarHalfWidth = 50
)

const (
	ScoreFontSize        = 36
	IndicatorFontSize    = 24
	MessageFontSize      = 36
	TitleFontSize        = 64
	MenuFontSize         = 32
	PromptFontSize       = 48
	GameOverFontSize     = 72
	FinalScoreFontSize   = 48
	ReplayPromptFontSize = 36
)

var (
	BackgroundColor = color.RGBA{8, 8, 36, 255}
	White           = colornames.White
	Ink             = color.RGBA{10, 10, 10, 255} // Почти чёрный, «карандаш»
	Red             = colornames.Red
	Green           = colornames.Lime
	Blue            = color.RGBA{0, 120, 255, 255}
	Orange          = colornames.Orange
	Cyan            = colornames.Cyan

	BulletGlowColor  = color.RGBA{255, 255, 200, 255}
	BarrelColor      = color.RGBA{80, 80, 80, 255}
	HandleColor      = color.RGBA{139, 69, 19, 255}
	HUDBarBackground = color.RGBA{100, 100, 100, 255}
	TitleColor       = color.RGBA{255, 0, 128, 255}
)
