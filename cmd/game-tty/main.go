// cmd/game-tty/main.go
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"sketch-shooter/internal/backend/tty"
	"sketch-shooter/internal/bootstrap"
	"sketch-shooter/internal/config"
)

func main() {
	// tcell занимает терминал, поэтому лог уходит в файл
	if f, err := os.OpenFile("shooter-tty.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644); err == nil {
		log.SetOutput(f)
		defer f.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := bootstrap.Start()
	if err != nil {
		log.Fatal(err)
	}
	defer session.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("create screen: %v", err)
	}
	term, err := tty.New(screen, config.ScreenWidth, config.ScreenHeight, config.TicksPerSecond)
	if err != nil {
		log.Fatal(err)
	}
	defer term.Close()

	if err := session.Loop.Run(ctx, term); err != nil && !errors.Is(err, context.Canceled) {
		log.Println(err)
	}
}
