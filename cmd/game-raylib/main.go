// cmd/game-raylib/main.go
package main

import (
	"context"
	"log"

	rlbackend "sketch-shooter/internal/backend/raylib"
	"sketch-shooter/internal/bootstrap"
	"sketch-shooter/internal/config"
)

func main() {
	session, err := bootstrap.Start()
	if err != nil {
		log.Fatal(err)
	}
	defer session.Close()

	window := rlbackend.Open(rlbackend.Options{
		Title:    config.WindowTitle,
		Width:    config.ScreenWidth,
		Height:   config.ScreenHeight,
		Scale:    session.Settings.WindowScale,
		FPS:      config.TicksPerSecond,
		FontData: session.Fonts.Data(),
	})
	defer window.Close()

	if err := session.Loop.Run(context.Background(), window); err != nil {
		log.Println(err)
	}
}
