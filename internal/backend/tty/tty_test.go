package tty

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"

	"sketch-shooter/internal/input"
	"sketch-shooter/pkg/render"
)

var red = color.RGBA{R: 255, A: 255}

func TestRasterFillRectAndCircle(t *testing.T) {
	r := NewRaster(120, 40, 1200, 800) // пиксель = 10×10 логических единиц
	r.FillRect(0, 0, 100, 100, red)
	if cr, cg, cb := r.At(5, 5); cr != 255 || cg != 0 || cb != 0 {
		t.Fatalf("expected red pixel, got %d,%d,%d", cr, cg, cb)
	}
	if cr, _, _ := r.At(20, 20); cr != 0 {
		t.Fatalf("expected untouched black pixel, got red=%d", cr)
	}

	r.FillCircle(600, 400, 50, color.RGBA{G: 255, A: 255})
	if _, cg, _ := r.At(60, 40); cg != 255 {
		t.Fatalf("expected green at circle centre, got %d", cg)
	}
	if _, cg, _ := r.At(60, 50); cg != 0 {
		t.Fatalf("expected nothing outside circle, got %d", cg)
	}
}

func TestRasterBlendsTranslucentColors(t *testing.T) {
	r := NewRaster(10, 5, 10, 10)
	r.FillRect(0, 0, 10, 10, color.NRGBA{R: 255, A: 128})
	cr, _, _ := r.At(0, 0)
	if cr < 126 || cr > 130 {
		t.Fatalf("expected half red over black, got %d", cr)
	}
}

func TestRasterLayerScalesAlpha(t *testing.T) {
	r := NewRaster(10, 5, 10, 10)
	r.Layer(0, 0, 10, 10, 0.5, func(c render.Canvas) {
		c.FillRect(0, 0, 5, 10, red)
	})
	if cr, _, _ := r.At(2, 2); cr < 126 || cr > 129 {
		t.Fatalf("expected half-strength layer, got %d", cr)
	}
	if cr, _, _ := r.At(8, 2); cr != 0 {
		t.Fatalf("transparent part of layer must not paint, got %d", cr)
	}
}

func TestRasterLayerClipsToItsRect(t *testing.T) {
	r := NewRaster(10, 5, 10, 10)
	r.Layer(0, 0, 5, 10, 1, func(c render.Canvas) {
		c.FillRect(0, 0, 10, 10, red)
	})
	if cr, _, _ := r.At(2, 2); cr != 255 {
		t.Fatalf("expected red inside the layer, got %d", cr)
	}
	if cr, _, _ := r.At(7, 2); cr != 0 {
		t.Fatalf("layer must not paint outside its rect, got %d", cr)
	}
	if b := r.sub.img.Bounds(); b.Dx() != 5 || b.Dy() != 10 {
		t.Fatalf("layer buffer must match the rect, got %v", b)
	}
}

func TestRasterLayerReusesClearedBuffer(t *testing.T) {
	r := NewRaster(10, 5, 10, 10)
	r.Layer(2, 2, 4, 4, 1, func(c render.Canvas) {
		c.FillRect(2, 2, 4, 4, red)
	})
	first := &r.sub.img.Pix[0]

	r.Clear()
	r.Layer(2, 2, 4, 4, 1, func(render.Canvas) {})
	if &r.sub.img.Pix[0] != first {
		t.Fatal("expected the layer buffer to be reused")
	}
	if cr, _, _ := r.At(3, 3); cr != 0 {
		t.Fatalf("stale layer pixels leaked into the frame, got %d", cr)
	}
}

func TestRasterStrokeCircleLeavesHole(t *testing.T) {
	r := NewRaster(120, 40, 1200, 800)
	r.StrokeCircle(600, 400, 200, 20, red)
	if cr, _, _ := r.At(60, 40); cr != 0 {
		t.Fatalf("ring centre must stay empty, got %d", cr)
	}
	if cr, _, _ := r.At(80, 40); cr == 0 {
		t.Fatal("expected the ring to be painted")
	}
}

func TestRasterThinLinesStayVisible(t *testing.T) {
	r := NewRaster(120, 40, 1200, 800)
	r.StrokeLine(0, 405, 1200, 405, 1, red)
	hits := 0
	for x := 0; x < r.W; x++ {
		if cr, _, _ := r.At(x, 40); cr > 0 {
			hits++
		}
	}
	if hits != r.W {
		t.Fatalf("expected the whole row painted, got %d of %d", hits, r.W)
	}
}

func TestRasterTextIsCentredInCells(t *testing.T) {
	r := NewRaster(80, 25, 1200, 800)
	r.Text("GAME", 72, 600, 400, color.White)
	if len(r.labels) != 1 {
		t.Fatalf("expected one label, got %d", len(r.labels))
	}
	l := r.labels[0]
	if l.col != 38 || l.row != 12 {
		t.Fatalf("unexpected label position %d,%d", l.col, l.row)
	}
	r.Clear()
	if len(r.labels) != 0 {
		t.Fatal("clear must drop labels")
	}
}

func newSimBackend(t *testing.T) (*Backend, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	b, err := New(sim, 1200, 800, 240)
	if err != nil {
		t.Fatalf("new backend: %v", err)
	}
	t.Cleanup(b.Close)
	return b, sim
}

func TestPollHoldsKeysForAFewTicks(t *testing.T) {
	b, _ := newSimBackend(t)
	b.events <- tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)

	in := b.Poll()
	if !in.Held(input.KeyW) || !in.KeyPressed(input.KeyW) {
		t.Fatal("expected W held and pressed")
	}
	for i := 1; i < HoldTicks; i++ {
		in = b.Poll()
		if !in.Held(input.KeyW) {
			t.Fatalf("expected W still held after %d ticks", i)
		}
		if in.KeyPressed(input.KeyW) {
			t.Fatal("press must be reported once")
		}
	}
	if b.Poll().Held(input.KeyW) {
		t.Fatal("expected W released")
	}
}

func TestPollReportsClicksOnPress(t *testing.T) {
	b, _ := newSimBackend(t)
	b.events <- tcell.NewEventMouse(40, 12, tcell.Button1, tcell.ModNone)
	b.events <- tcell.NewEventMouse(41, 12, tcell.Button1, tcell.ModNone)

	in := b.Poll()
	if n := in.Clicks(input.ButtonLeft); n != 1 {
		t.Fatalf("drag must not repeat clicks, got %d", n)
	}
	wx, wy := b.raster.ToLogical(41, 12)
	if in.PointerX != wx || in.PointerY != wy {
		t.Fatalf("unexpected pointer %v,%v", in.PointerX, in.PointerY)
	}

	b.events <- tcell.NewEventMouse(41, 12, tcell.ButtonNone, tcell.ModNone)
	b.events <- tcell.NewEventMouse(41, 12, tcell.Button1, tcell.ModNone)
	if n := b.Poll().Clicks(input.ButtonLeft); n != 1 {
		t.Fatalf("expected a new click after release, got %d", n)
	}
}

func TestPollQuitKeys(t *testing.T) {
	b, _ := newSimBackend(t)
	b.events <- tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	if !b.Poll().QuitRequested() {
		t.Fatal("Ctrl+C must quit")
	}
	b.events <- tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)
	if !b.Poll().QuitRequested() {
		t.Fatal("Escape must quit")
	}
}

func TestPresentDrawsHalfBlocksAndLabels(t *testing.T) {
	b, sim := newSimBackend(t)
	err := b.Present(func(c render.Canvas) {
		c.FillRect(0, 0, 1200, 800, red)
		c.Text("HI", 24, 600, 400, color.White)
	})
	if err != nil {
		t.Fatalf("present: %v", err)
	}

	cells, w, _ := sim.GetContents()
	corner := cells[0]
	if len(corner.Runes) == 0 || corner.Runes[0] != '▀' {
		t.Fatalf("expected half block, got %q", corner.Runes)
	}
	fg, bg, _ := corner.Style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.NewRGBColor(255, 0, 0) {
		t.Fatalf("unexpected corner colours %v %v", fg, bg)
	}

	row := b.raster.labels[0].row
	col := b.raster.labels[0].col
	if got := cells[row*w+col].Runes; len(got) == 0 || got[0] != 'H' {
		t.Fatalf("expected label text, got %q", got)
	}
}
