package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"sketch-shooter/internal/event"
)

const testRate = beep.SampleRate(8000)

// drain читает поток до конца и возвращает число сэмплов и максимум амплитуды.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 256)
	total, peak := 0, 0.0
	for guard := 0; guard < 10000; guard++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, v := range smp {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Fatalf("non-finite sample %v", v)
				}
				peak = math.Max(peak, math.Abs(v))
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never drained")
	return 0, 0
}

func TestShotSoundLength(t *testing.T) {
	n, peak := drain(t, NewSound(SoundShot, testRate, 1))
	if want := testRate.N(70 * time.Millisecond); n != want {
		t.Fatalf("expected %d samples, got %d", want, n)
	}
	if peak <= 0 || peak > 1 {
		t.Fatalf("unexpected peak %v", peak)
	}
}

func TestPickupPlaysTwoNotesInSequence(t *testing.T) {
	n, _ := drain(t, NewSound(SoundPickup, testRate, 1))
	want := testRate.N(80*time.Millisecond) + testRate.N(120*time.Millisecond)
	if n != want {
		t.Fatalf("expected %d samples, got %d", want, n)
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, NewSound(SoundHurt, testRate, 0))
	if peak != 0 {
		t.Fatalf("expected silence, got peak %v", peak)
	}
}

func TestUnknownSound(t *testing.T) {
	if NewSound(SoundType(99), testRate, 1) != nil {
		t.Fatal("expected nil streamer")
	}
	if SoundType(99).String() != "unknown" {
		t.Fatal("unexpected name")
	}
}

func TestEnvelopeFadesToZero(t *testing.T) {
	d := 10 * time.Millisecond
	osc := newOscillator(0, 0, d, WaveSquare, testRate)
	env := newEnvelope(osc, d, 0, 5*time.Millisecond, testRate)
	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("expected %d samples, got %d", len(buf), n)
	}
	if buf[0][0] != 1 {
		t.Fatalf("expected full level without attack, got %v", buf[0][0])
	}
	if last := buf[n-1][0]; last != 0 {
		t.Fatalf("expected release to end at zero, got %v", last)
	}
	if n, ok := env.Stream(buf); n != 0 || ok {
		t.Fatalf("expected drained envelope, got %d %v", n, ok)
	}
}

func TestSoundForEvents(t *testing.T) {
	sm := NewSoundManager(0.5, true)
	for _, et := range sm.Events() {
		if _, ok := SoundFor(et); !ok {
			t.Fatalf("event %s has no sound", et)
		}
	}
	if _, ok := SoundFor(event.GameStarted); ok {
		t.Fatal("game start should be silent")
	}
}

func TestMutedManagerNeverOpensDevice(t *testing.T) {
	sm := NewSoundManager(0.5, true)
	if err := sm.Initialize(); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	if sm.Play(SoundShot) {
		t.Fatal("muted manager should not play")
	}
	sm.OnEvent(event.Event{Type: event.EnemyKilled})
	sm.Cleanup()
}
