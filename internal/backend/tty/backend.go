// Package tty — игра в терминале через tcell.
package tty

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"sketch-shooter/internal/input"
	"sketch-shooter/pkg/render"
)

// HoldTicks — сколько тиков клавиша считается зажатой после последнего
// события: терминал не присылает отпускание клавиш, только автоповтор.
const HoldTicks = 8

var runeKeys = map[rune]input.Key{
	'w': input.KeyW, 'W': input.KeyW,
	'a': input.KeyA, 'A': input.KeyA,
	's': input.KeyS, 'S': input.KeyS,
	'd': input.KeyD, 'D': input.KeyD,
	' ': input.KeySpace,
}

var specialKeys = map[tcell.Key]input.Key{
	tcell.KeyUp:     input.KeyUp,
	tcell.KeyDown:   input.KeyDown,
	tcell.KeyLeft:   input.KeyLeft,
	tcell.KeyRight:  input.KeyRight,
	tcell.KeyEscape: input.KeyEscape,
}

// Backend реализует loop.Backend поверх tcell.Screen.
type Backend struct {
	screen tcell.Screen
	raster *Raster
	lw, lh int

	events chan tcell.Event
	quit   chan struct{}
	ticker *time.Ticker

	tick     int
	lastSeen map[input.Key]int
	buttons  tcell.ButtonMask
	pointerX float64
	pointerY float64
	b        input.Builder
}

// New инициализирует экран. lw×lh — логический размер игрового поля.
func New(screen tcell.Screen, lw, lh, tps int) (*Backend, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	cols, rows := screen.Size()

	b := &Backend{
		screen:   screen,
		raster:   NewRaster(cols, rows, lw, lh),
		lw:       lw,
		lh:       lh,
		events:   make(chan tcell.Event, 64),
		quit:     make(chan struct{}),
		ticker:   time.NewTicker(time.Second / time.Duration(tps)),
		lastSeen: make(map[input.Key]int),
		pointerX: float64(lw) / 2,
		pointerY: float64(lh) / 2,
	}
	go screen.ChannelEvents(b.events, b.quit)
	return b, nil
}

// Poll разбирает накопившиеся события терминала.
func (b *Backend) Poll() input.Snapshot {
	b.tick++
	b.b.Reset()
	for drained := false; !drained; {
		select {
		case ev, ok := <-b.events:
			if !ok {
				b.b.Quit()
				drained = true
				break
			}
			b.handle(ev)
		default:
			drained = true
		}
	}
	return b.snapshot()
}

func (b *Backend) snapshot() input.Snapshot {
	for k, seen := range b.lastSeen {
		if b.tick-seen < HoldTicks {
			b.b.Hold(k)
		}
	}
	b.b.Pointer(b.pointerX, b.pointerY)
	return b.b.Snapshot()
}

func (b *Backend) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			b.b.Quit()
			return
		}
		k, ok := specialKeys[ev.Key()]
		if ev.Key() == tcell.KeyRune {
			k, ok = runeKeys[ev.Rune()]
		}
		if !ok {
			return
		}
		b.lastSeen[k] = b.tick
		b.b.Press(k)
	case *tcell.EventMouse:
		col, row := ev.Position()
		b.pointerX, b.pointerY = b.raster.ToLogical(col, row)
		pressed := ev.Buttons() &^ b.buttons
		if pressed&tcell.Button1 != 0 {
			b.b.Click(input.ButtonLeft)
		}
		if pressed&tcell.Button2 != 0 {
			b.b.Click(input.ButtonRight)
		}
		if pressed&tcell.Button3 != 0 {
			b.b.Click(input.ButtonMiddle)
		}
		b.buttons = ev.Buttons()
	case *tcell.EventResize:
		cols, rows := ev.Size()
		b.raster.Resize(cols, rows, b.lw, b.lh)
		b.screen.Sync()
	}
}

// Present растеризует кадр, выводит его и ждет следующего тика.
func (b *Backend) Present(draw func(render.Canvas)) error {
	b.raster.Clear()
	draw(b.raster)
	b.blit()
	b.screen.Show()
	<-b.ticker.C
	return nil
}

// blit переносит растр на экран: верхний пиксель — цвет символа ▀, нижний — фон.
func (b *Backend) blit() {
	r := b.raster
	cols, rows := r.W, r.H/2
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			b.screen.SetContent(col, row, '▀', nil, b.cellStyle(col, row))
		}
	}
	for _, l := range r.labels {
		if l.row < 0 || l.row >= rows {
			continue
		}
		fr, fg, fb, _ := l.clr.RGBA()
		for i, ch := range l.text {
			col := l.col + i
			if col < 0 || col >= cols {
				continue
			}
			_, bg, _ := b.cellStyle(col, l.row).Decompose()
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(fr>>8), int32(fg>>8), int32(fb>>8))).
				Background(bg)
			b.screen.SetContent(col, l.row, ch, nil, style)
		}
	}
}

func (b *Backend) cellStyle(col, row int) tcell.Style {
	tr, tg, tb := b.raster.At(col, row*2)
	br, bg, bb := b.raster.At(col, row*2+1)
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(tr, tg, tb)).
		Background(tcell.NewRGBColor(br, bg, bb))
}

// Close останавливает чтение событий и восстанавливает терминал.
func (b *Backend) Close() {
	b.ticker.Stop()
	close(b.quit)
	b.screen.Fini()
}
