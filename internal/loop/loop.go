// internal/loop/loop.go
package loop

import (
	"context"
	"fmt"
	"log"

	"sketch-shooter/internal/engine"
	"sketch-shooter/internal/event"
	"sketch-shooter/internal/input"
	"sketch-shooter/internal/state"
	"sketch-shooter/internal/system"
	"sketch-shooter/pkg/render"
)

// Backend — окно или терминал: отдаёт ввод и показывает кадр.
// Present сам выдерживает темп тиков (vsync, SetTargetFPS или таймер).
type Backend interface {
	input.Poller
	Present(draw func(render.Canvas)) error
}

// Loop владеет контекстом симуляции, фоном, машиной состояний и диспетчером.
type Loop struct {
	Ctx             *engine.Context
	Background      *system.BackgroundSystem
	StateMachine    *state.StateMachine
	EventDispatcher *event.Dispatcher

	done bool
}

// New собирает цикл. skipMenu сразу начинает партию.
func New(ctx *engine.Context, eventDispatcher *event.Dispatcher, skipMenu bool) *Loop {
	sm := state.NewStateMachine()
	if skipMenu {
		sm.SetState(state.NewGameState(sm, ctx, eventDispatcher))
	} else {
		sm.SetState(state.NewMenuState(sm, ctx, eventDispatcher))
	}
	return &Loop{
		Ctx:             ctx,
		Background:      system.NewBackgroundSystem(ctx),
		StateMachine:    sm,
		EventDispatcher: eventDispatcher,
	}
}

// Tick выполняет один тик. Возвращает false, если запрошен выход;
// выход срабатывает на границе тика, до какого-либо обновления.
func (l *Loop) Tick(in input.Snapshot) bool {
	if l.done {
		return false
	}
	if in.QuitRequested() {
		l.done = true
		return false
	}
	l.Background.Update()
	l.StateMachine.Update(in)
	l.Ctx.Clock.Advance()
	return true
}

// Draw рисует фон, затем текущее состояние.
func (l *Loop) Draw(c render.Canvas) {
	l.Background.Draw(c)
	l.StateMachine.Draw(c)
}

// Done сообщает, что игрок вышел.
func (l *Loop) Done() bool {
	return l.done
}

// Run крутит цикл на бэкенде до выхода игрока или отмены ctx.
// Выход игрока — не ошибка.
func (l *Loop) Run(ctx context.Context, b Backend) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if !l.Tick(b.Poll()) {
			log.Println("Выход по запросу игрока")
			return nil
		}
		if err := b.Present(l.Draw); err != nil {
			return fmt.Errorf("present frame: %w", err)
		}
	}
}
