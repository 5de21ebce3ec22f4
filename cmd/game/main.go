// cmd/game/main.go
package main

import (
	"errors"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"sketch-shooter/internal/bootstrap"
	"sketch-shooter/internal/config"
	"sketch-shooter/internal/input"
	"sketch-shooter/internal/loop"
	"sketch-shooter/pkg/render"
)

type AppGame struct {
	loop   *loop.Loop
	poller *input.EbitenPoller
	canvas *render.EbitenCanvas
}

func (a *AppGame) Update() error {
	if !a.loop.Tick(a.poller.Poll()) {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.canvas.Begin(screen)
	a.loop.Draw(a.canvas)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	session, err := bootstrap.Start()
	if err != nil {
		log.Fatal(err)
	}
	defer session.Close()

	app := &AppGame{
		loop:   session.Loop,
		poller: input.NewEbitenPoller(),
		canvas: render.NewEbitenCanvas(session.Fonts),
	}
	w, h := session.Settings.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TicksPerSecond)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
