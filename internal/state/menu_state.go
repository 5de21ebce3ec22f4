// internal/state/menu_state.go
package state

import (
	"sketch-shooter/internal/engine"
	"sketch-shooter/internal/event"
	"sketch-shooter/internal/input"
	"sketch-shooter/internal/ui"
	"sketch-shooter/pkg/render"
)

var _ State = (*MenuState)(nil)

// MenuState — стартовый экран, ждёт пробела.
type MenuState struct {
	sm              *StateMachine
	ctx             *engine.Context
	eventDispatcher *event.Dispatcher
	screen          *ui.MenuScreen
}

func NewMenuState(sm *StateMachine, ctx *engine.Context, eventDispatcher *event.Dispatcher) *MenuState {
	return &MenuState{
		sm:              sm,
		ctx:             ctx,
		eventDispatcher: eventDispatcher,
		screen:          ui.NewMenuScreen(ctx.Width, ctx.Height),
	}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(in input.Snapshot) {
	if in.KeyPressed(input.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.ctx, m.eventDispatcher))
	}
}

func (m *MenuState) Draw(c render.Canvas) {
	m.screen.Draw(c)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
