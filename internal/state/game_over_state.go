// internal/state/game_over_state.go
package state

import (
	"sketch-shooter/internal/engine"
	"sketch-shooter/internal/event"
	"sketch-shooter/internal/input"
	"sketch-shooter/internal/ui"
	"sketch-shooter/pkg/render"
)

var _ State = (*GameOverState)(nil)

// GameOverState — экран с итоговым счётом; пробел начинает заново.
type GameOverState struct {
	sm              *StateMachine
	ctx             *engine.Context
	eventDispatcher *event.Dispatcher
	screen          *ui.GameOverScreen
	Score           int
}

func NewGameOverState(sm *StateMachine, ctx *engine.Context, eventDispatcher *event.Dispatcher, score int) *GameOverState {
	return &GameOverState{
		sm:              sm,
		ctx:             ctx,
		eventDispatcher: eventDispatcher,
		screen:          ui.NewGameOverScreen(ctx.Width, ctx.Height),
		Score:           score,
	}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(in input.Snapshot) {
	if in.KeyPressed(input.KeySpace) {
		s.sm.SetState(NewGameState(s.sm, s.ctx, s.eventDispatcher))
	}
}

func (s *GameOverState) Draw(c render.Canvas) {
	s.screen.Draw(c, s.Score)
}

func (s *GameOverState) Exit() {}
