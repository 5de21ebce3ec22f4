// internal/state/game_state.go
package state

import (
	"log"

	"sketch-shooter/internal/app"
	"sketch-shooter/internal/engine"
	"sketch-shooter/internal/event"
	"sketch-shooter/internal/input"
	"sketch-shooter/pkg/render"
)

var _ State = (*GameState)(nil)

// GameState — идёт партия.
type GameState struct {
	sm              *StateMachine
	ctx             *engine.Context
	eventDispatcher *event.Dispatcher
	game            *app.Game
}

// NewGameState начинает новую партию: свежий игрок, пустые коллекции, счёт 0.
func NewGameState(sm *StateMachine, ctx *engine.Context, eventDispatcher *event.Dispatcher) *GameState {
	return &GameState{
		sm:              sm,
		ctx:             ctx,
		eventDispatcher: eventDispatcher,
		game:            app.NewGame(ctx, eventDispatcher),
	}
}

// Game возвращает текущую партию.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	log.Println("Начало партии")
}

func (g *GameState) Update(in input.Snapshot) {
	g.game.Tick(in)
	if g.game.Over() {
		g.sm.SetState(NewGameOverState(g.sm, g.ctx, g.eventDispatcher, g.game.Score))
	}
}

func (g *GameState) Draw(c render.Canvas) {
	g.game.Draw(c)
}

func (g *GameState) Exit() {
	log.Printf("Партия окончена, счёт: %d", g.game.Score)
}
