// internal/ui/screens.go
package ui

import (
	"fmt"
	"image/color"

	"sketch-shooter/internal/config"
	"sketch-shooter/pkg/render"
)

// TextLine — строка экрана меню, центрированная по X.
type TextLine struct {
	Text     string
	FontSize float64
	Y        float64
	Color    color.RGBA
}

// MenuScreen — стартовый экран.
type MenuScreen struct {
	CenterX float64
	Lines   []TextLine
}

func NewMenuScreen(screenWidth, screenHeight float64) *MenuScreen {
	h := screenHeight
	return &MenuScreen{
		CenterX: screenWidth / 2,
		Lines: []TextLine{
			{"MIND-BLOWING SHOOTER", config.TitleFontSize, float64(int(h) / 3), config.TitleColor},
			{"Use WASD or Arrow Keys to move", config.MenuFontSize, float64(int(h) / 2), config.White},
			{"Left Mouse Button to shoot", config.MenuFontSize, float64(int(h)/2 + 50), config.White},
			{"Press SPACE to start", config.PromptFontSize, float64(int(h)/2 + 150), config.Cyan},
		},
	}
}

func (m *MenuScreen) Draw(c render.Canvas) {
	for _, l := range m.Lines {
		c.Text(l.Text, l.FontSize, m.CenterX, l.Y, l.Color)
	}
}

// GameOverScreen — экран конца игры с итоговым счётом.
type GameOverScreen struct {
	CenterX float64
	Height  float64
}

func NewGameOverScreen(screenWidth, screenHeight float64) *GameOverScreen {
	return &GameOverScreen{CenterX: screenWidth / 2, Height: screenHeight}
}

func (g *GameOverScreen) Draw(c render.Canvas, score int) {
	h := int(g.Height)
	c.Text("GAME OVER", config.GameOverFontSize, g.CenterX, float64(h/3), config.Red)
	c.Text(fmt.Sprintf("Final Score: %d", score), config.FinalScoreFontSize, g.CenterX, float64(h/2), config.White)
	c.Text("Press SPACE to play again", config.ReplayPromptFontSize, g.CenterX, float64(h/2+100), config.White)
}
