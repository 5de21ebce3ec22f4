// internal/input/snapshot.go
package input

// Key — логическая клавиша, которую понимает игра.
type Key int

const (
	KeyW Key = iota
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
	KeyEscape
	keyCount
)

// Button — кнопка мыши.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// EventType — тип дискретного события за тик.
type EventType int

const (
	EventQuit EventType = iota
	EventKeyDown
	EventMouseDown
)

// Event — дискретное событие ввода.
type Event struct {
	Type   EventType
	Key    Key
	Button Button
}

// Snapshot — неизменяемый снимок ввода за один тик:
// зажатые клавиши, позиция указателя и события, пришедшие с прошлого тика.
type Snapshot struct {
	held     [keyCount]bool
	PointerX float64
	PointerY float64
	Events   []Event
}

// Poller отдаёт снимок ввода раз в тик.
type Poller interface {
	Poll() Snapshot
}

// Held сообщает, зажата ли клавиша.
func (s Snapshot) Held(k Key) bool {
	if k < 0 || k >= keyCount {
		return false
	}
	return s.held[k]
}

// KeyPressed сообщает, была ли клавиша нажата в этом тике.
func (s Snapshot) KeyPressed(k Key) bool {
	for _, e := range s.Events {
		if e.Type == EventKeyDown && e.Key == k {
			return true
		}
	}
	return false
}

// Clicks возвращает число нажатий кнопки мыши в этом тике.
func (s Snapshot) Clicks(b Button) int {
	n := 0
	for _, e := range s.Events {
		if e.Type == EventMouseDown && e.Button == b {
			n++
		}
	}
	return n
}

// QuitRequested — закрытие окна или Escape.
func (s Snapshot) QuitRequested() bool {
	for _, e := range s.Events {
		if e.Type == EventQuit || (e.Type == EventKeyDown && e.Key == KeyEscape) {
			return true
		}
	}
	return false
}

// Builder собирает снимок; используется бэкендами и тестами.
type Builder struct {
	snap Snapshot
}

// Hold отмечает клавишу зажатой.
func (b *Builder) Hold(keys ...Key) *Builder {
	for _, k := range keys {
		if k >= 0 && k < keyCount {
			b.snap.held[k] = true
		}
	}
	return b
}

// Pointer задаёт позицию указателя.
func (b *Builder) Pointer(x, y float64) *Builder {
	b.snap.PointerX, b.snap.PointerY = x, y
	return b
}

// Press добавляет событие нажатия клавиши.
func (b *Builder) Press(k Key) *Builder {
	b.snap.Events = append(b.snap.Events, Event{Type: EventKeyDown, Key: k})
	return b
}

// Click добавляет событие нажатия кнопки мыши.
func (b *Builder) Click(btn Button) *Builder {
	b.snap.Events = append(b.snap.Events, Event{Type: EventMouseDown, Button: btn})
	return b
}

// Quit добавляет событие закрытия.
func (b *Builder) Quit() *Builder {
	b.snap.Events = append(b.snap.Events, Event{Type: EventQuit})
	return b
}

// Snapshot возвращает собранный снимок. Builder после этого можно переиспользовать.
func (b *Builder) Snapshot() Snapshot {
	s := b.snap
	s.Events = append([]Event(nil), b.snap.Events...)
	return s
}

// Reset очищает builder.
func (b *Builder) Reset() {
	b.snap = Snapshot{}
}
