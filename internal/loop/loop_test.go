package loop

import (
	"context"
	"errors"
	"testing"

	"sketch-shooter/internal/engine"
	"sketch-shooter/internal/event"
	"sketch-shooter/internal/input"
	"sketch-shooter/internal/state"
	"sketch-shooter/pkg/render"
)

// scriptedBackend отдаёт заранее записанные снимки.
type scriptedBackend struct {
	script []input.Snapshot
	i      int
	frames int
	rec    *render.Recorder
	failAt int
	onPoll func(i int)
}

func (b *scriptedBackend) Poll() input.Snapshot {
	if b.onPoll != nil {
		b.onPoll(b.i)
	}
	if b.i >= len(b.script) {
		return (&input.Builder{}).Quit().Snapshot()
	}
	s := b.script[b.i]
	b.i++
	return s
}

func (b *scriptedBackend) Present(draw func(render.Canvas)) error {
	b.frames++
	if b.failAt > 0 && b.frames == b.failAt {
		return errors.New("device lost")
	}
	b.rec.Reset()
	draw(b.rec)
	return nil
}

func newTestLoop(skipMenu bool) *Loop {
	return New(engine.NewContext(3), event.NewDispatcher(), skipMenu)
}

func TestRunUntilEscape(t *testing.T) {
	l := newTestLoop(false)
	b := &scriptedBackend{rec: render.NewRecorder()}
	b.script = []input.Snapshot{
		{},
		(&input.Builder{}).Press(input.KeySpace).Snapshot(),
		{},
		(&input.Builder{}).Press(input.KeyEscape).Snapshot(),
		(&input.Builder{}).Press(input.KeySpace).Snapshot(),
	}

	if err := l.Run(context.Background(), b); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !l.Done() {
		t.Fatal("loop must be done after escape")
	}
	if b.frames != 3 {
		t.Fatalf("expected 3 frames before escape, got %d", b.frames)
	}
	if l.Ctx.Clock.Tick() != 3 {
		t.Fatalf("expected 3 ticks, got %d", l.Ctx.Clock.Tick())
	}
	if _, ok := l.StateMachine.Current().(*state.GameState); !ok {
		t.Fatalf("expected playing state, got %T", l.StateMachine.Current())
	}
	if l.Tick(input.Snapshot{}) {
		t.Fatal("finished loop must not tick")
	}
}

func TestDrawPutsBackgroundFirst(t *testing.T) {
	l := newTestLoop(true)
	rec := render.NewRecorder()
	l.Tick(input.Snapshot{})
	l.Draw(rec)
	if rec.Ops[0].Kind != render.OpFillRect || rec.Ops[0].W != l.Ctx.Width {
		t.Fatalf("background must be drawn first: %+v", rec.Ops[0])
	}
	texts := rec.Texts()
	if len(texts) == 0 || texts[0] != "Score: 0" {
		t.Fatalf("HUD must be drawn over the game: %v", texts)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	l := newTestLoop(true)
	ctx, cancel := context.WithCancel(context.Background())
	b := &scriptedBackend{rec: render.NewRecorder(), script: make([]input.Snapshot, 100)}
	b.onPoll = func(i int) {
		if i == 5 {
			cancel()
		}
	}
	err := l.Run(ctx, b)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if l.Done() {
		t.Fatal("cancellation is not a player quit")
	}
}

func TestRunWrapsPresentError(t *testing.T) {
	l := newTestLoop(true)
	b := &scriptedBackend{rec: render.NewRecorder(), script: make([]input.Snapshot, 10), failAt: 2}
	err := l.Run(context.Background(), b)
	if err == nil || err.Error() != "present frame: device lost" {
		t.Fatalf("unexpected error %v", err)
	}
}
