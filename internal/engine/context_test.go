package engine

import (
	"testing"

	"sketch-shooter/internal/config"
)

func TestClockSeconds(t *testing.T) {
	c := &Clock{}
	for i := 0; i < config.TicksPerSecond; i++ {
		c.Advance()
	}
	if c.Tick() != config.TicksPerSecond {
		t.Fatalf("tick %d", c.Tick())
	}
	if c.Seconds() != 1 {
		t.Fatalf("expected 1s, got %v", c.Seconds())
	}
}

func TestContextStreamsAreIndependent(t *testing.T) {
	a := NewContext(99)
	b := NewContext(99)

	// отрисовка не должна сдвигать генератор симуляции
	for i := 0; i < 10; i++ {
		a.Sketcher.Jitter(float64(i), 2, 1)
	}
	if a.RNG.Float64() != b.RNG.Float64() {
		t.Fatal("simulation streams diverged")
	}
	if a.Width != config.ScreenWidth || a.Height != config.ScreenHeight {
		t.Fatalf("unexpected size %vx%v", a.Width, a.Height)
	}
}
