// internal/ui/hud.go
package ui

import (
	"image/color"

	"sketch-shooter/pkg/render"
)

// HUDState — всё, что HUD должен знать о партии.
type HUDState struct {
	Score           int
	PowerUpName     string // Пусто, если бонус не активен
	PowerUpColor    color.RGBA
	PowerUpFraction float64
	Message         string
	MessageTime     int
}

// HUD собирает индикаторы игрового экрана.
type HUD struct {
	Score   *ScoreIndicator
	PowerUp *PowerUpIndicator
	Message *MessageBanner
}

func NewHUD(screenWidth, screenHeight float64) *HUD {
	return &HUD{
		Score:   NewScoreIndicator(100, 40),
		PowerUp: NewPowerUpIndicator(screenWidth),
		Message: NewMessageBanner(screenWidth, screenHeight),
	}
}

func (h *HUD) Draw(c render.Canvas, s HUDState) {
	h.Score.Draw(c, s.Score)
	h.PowerUp.Draw(c, s.PowerUpName, s.PowerUpColor, s.PowerUpFraction)
	h.Message.Draw(c, s.Message, s.MessageTime)
}
