// internal/ui/indicator.go
package ui

import (
	"fmt"
	"image/color"

	"sketch-shooter/internal/config"
	"sketch-shooter/pkg/render"
)

// ScoreIndicator — счёт в левом верхнем углу.
type ScoreIndicator struct {
	X, Y     float64
	FontSize float64
	Color    color.RGBA
}

func NewScoreIndicator(x, y float64) *ScoreIndicator {
	return &ScoreIndicator{
		X:        x,
		Y:        y,
		FontSize: config.ScoreFontSize,
		Color:    config.White,
	}
}

func (i *ScoreIndicator) Draw(c render.Canvas, score int) {
	c.Text(fmt.Sprintf("Score: %d", score), i.FontSize, i.X, i.Y, i.Color)
}

// PowerUpIndicator — имя активного бонуса и полоска оставшегося времени под ним.
type PowerUpIndicator struct {
	X, Y          float64 // Центр подписи
	BarX, BarY    float64 // Левый верхний угол полоски
	BarW, BarH    float64
	FontSize      float64
	BarBackground color.RGBA
}

func NewPowerUpIndicator(screenWidth float64) *PowerUpIndicator {
	return &PowerUpIndicator{
		X:             screenWidth - 150,
		Y:             40,
		BarX:          screenWidth - 200,
		BarY:          60,
		BarW:          config.HUDBarWidth,
		BarH:          config.HUDBarHeight,
		FontSize:      config.IndicatorFontSize,
		BarBackground: config.HUDBarBackground,
	}
}

// Draw рисует индикатор; fraction — доля оставшегося времени в [0, 1].
func (i *PowerUpIndicator) Draw(c render.Canvas, name string, clr color.RGBA, fraction float64) {
	if name == "" {
		return
	}
	c.Text(name, i.FontSize, i.X, i.Y, clr)
	c.FillRect(i.BarX, i.BarY, i.BarW, i.BarH, i.BarBackground)
	filled := float64(int(max(0, min(1, fraction)) * i.BarW))
	if filled > 0 {
		c.FillRect(i.BarX, i.BarY, filled, i.BarH, clr)
	}
}

// MessageBanner — сообщение о подборе бонуса, гаснет к концу показа.
type MessageBanner struct {
	X, Y     float64
	FontSize float64
	Color    color.RGBA
}

func NewMessageBanner(screenWidth, screenHeight float64) *MessageBanner {
	return &MessageBanner{
		X:        screenWidth / 2,
		Y:        screenHeight / 4,
		FontSize: config.MessageFontSize,
		Color:    config.White,
	}
}

// Alpha — прозрачность сообщения при ticksLeft оставшихся тиках.
func (m *MessageBanner) Alpha(ticksLeft int) uint8 {
	return uint8(min(255, float64(ticksLeft)*1.5))
}

func (m *MessageBanner) Draw(c render.Canvas, text string, ticksLeft int) {
	if text == "" || ticksLeft <= 0 {
		return
	}
	c.Text(text, m.FontSize, m.X, m.Y, render.WithAlpha(m.Color, m.Alpha(ticksLeft)))
}
