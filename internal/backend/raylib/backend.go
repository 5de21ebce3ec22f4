// Package raylib — окно на raylib: ввод, кадр и темп 60 тиков в секунду.
package raylib

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"sketch-shooter/internal/input"
	"sketch-shooter/pkg/render"
)

var rlKeys = map[input.Key]int32{
	input.KeyW:      rl.KeyW,
	input.KeyA:      rl.KeyA,
	input.KeyS:      rl.KeyS,
	input.KeyD:      rl.KeyD,
	input.KeyUp:     rl.KeyUp,
	input.KeyDown:   rl.KeyDown,
	input.KeyLeft:   rl.KeyLeft,
	input.KeyRight:  rl.KeyRight,
	input.KeySpace:  rl.KeySpace,
	input.KeyEscape: rl.KeyEscape,
}

var rlButtons = map[input.Button]rl.MouseButton{
	input.ButtonLeft:   rl.MouseButtonLeft,
	input.ButtonRight:  rl.MouseButtonRight,
	input.ButtonMiddle: rl.MouseButtonMiddle,
}

// Options — параметры окна.
type Options struct {
	Title    string
	Width    int // логический размер
	Height   int
	Scale    float64
	FPS      int
	FontData []byte
}

// Backend реализует loop.Backend поверх окна raylib.
type Backend struct {
	canvas *Canvas
	scale  float64
	b      input.Builder
}

// Open создает окно. Escape обрабатывается игрой, а не raylib.
func Open(opts Options) *Backend {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	rl.InitWindow(int32(float64(opts.Width)*opts.Scale), int32(float64(opts.Height)*opts.Scale), opts.Title)
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(opts.FPS))
	return &Backend{
		canvas: NewCanvas(opts.Scale, opts.FontData),
		scale:  opts.Scale,
	}
}

func (b *Backend) Poll() input.Snapshot {
	b.b.Reset()
	if rl.WindowShouldClose() {
		b.b.Quit()
	}
	for k, rk := range rlKeys {
		if rl.IsKeyDown(rk) {
			b.b.Hold(k)
		}
		if rl.IsKeyPressed(rk) {
			b.b.Press(k)
		}
	}
	for btn := input.ButtonLeft; btn <= input.ButtonMiddle; btn++ {
		if rl.IsMouseButtonPressed(rlButtons[btn]) {
			b.b.Click(btn)
		}
	}
	m := rl.GetMousePosition()
	b.b.Pointer(float64(m.X)/b.scale, float64(m.Y)/b.scale)
	return b.b.Snapshot()
}

// Present рисует кадр; EndDrawing ждет следующего тика по SetTargetFPS.
func (b *Backend) Present(draw func(render.Canvas)) error {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	draw(b.canvas)
	rl.EndDrawing()
	return nil
}

// Close освобождает ресурсы и закрывает окно.
func (b *Backend) Close() {
	b.canvas.Close()
	rl.CloseWindow()
}
