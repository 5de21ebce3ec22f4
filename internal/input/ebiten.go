// internal/input/ebiten.go
package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var ebitenKeys = map[Key][]ebiten.Key{
	KeyW:      {ebiten.KeyW},
	KeyA:      {ebiten.KeyA},
	KeyS:      {ebiten.KeyS},
	KeyD:      {ebiten.KeyD},
	KeyUp:     {ebiten.KeyArrowUp},
	KeyDown:   {ebiten.KeyArrowDown},
	KeyLeft:   {ebiten.KeyArrowLeft},
	KeyRight:  {ebiten.KeyArrowRight},
	KeySpace:  {ebiten.KeySpace},
	KeyEscape: {ebiten.KeyEscape},
}

var ebitenButtons = map[Button]ebiten.MouseButton{
	ButtonLeft:   ebiten.MouseButtonLeft,
	ButtonRight:  ebiten.MouseButtonRight,
	ButtonMiddle: ebiten.MouseButtonMiddle,
}

// EbitenPoller читает клавиатуру и мышь через ebiten.
// Координаты курсора уже в логических пикселях (см. Layout).
type EbitenPoller struct {
	b Builder
}

func NewEbitenPoller() *EbitenPoller {
	return &EbitenPoller{}
}

func (p *EbitenPoller) Poll() Snapshot {
	p.b.Reset()
	if ebiten.IsWindowBeingClosed() {
		p.b.Quit()
	}
	for k := Key(0); k < keyCount; k++ {
		for _, ek := range ebitenKeys[k] {
			if ebiten.IsKeyPressed(ek) {
				p.b.Hold(k)
			}
			if inpututil.IsKeyJustPressed(ek) {
				p.b.Press(k)
			}
		}
	}
	for btn := ButtonLeft; btn <= ButtonMiddle; btn++ {
		if inpututil.IsMouseButtonJustPressed(ebitenButtons[btn]) {
			p.b.Click(btn)
		}
	}
	x, y := ebiten.CursorPosition()
	p.b.Pointer(float64(x), float64(y))
	return p.b.Snapshot()
}
