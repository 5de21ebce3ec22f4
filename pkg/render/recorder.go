// pkg/render/recorder.go
package render

import "image/color"

// OpKind — тип записанной операции рисования.
type OpKind int

const (
	OpStrokeLine OpKind = iota
	OpFillCircle
	OpStrokeCircle
	OpFillPolygon
	OpStrokePolygon
	OpFillRect
	OpLayer
	OpText
)

// Op — одна записанная операция. Заполнены только поля, относящиеся к Kind.
type Op struct {
	Kind   OpKind
	Points []Point
	X, Y   float64
	W, H   float64
	R      float64
	Width  float64
	Alpha  float64
	Size   float64
	Text   string
	Color  color.NRGBA
	Depth  int // вложенность слоёв
}

// Recorder — Canvas, который ничего не рисует, а запоминает вызовы.
// Используется в тестах и для отладки порядка отрисовки.
type Recorder struct {
	Ops   []Op
	depth int
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) add(op Op) {
	op.Depth = r.depth
	r.Ops = append(r.Ops, op)
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func (r *Recorder) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	r.add(Op{Kind: OpStrokeLine, Points: []Point{{x1, y1}, {x2, y2}}, Width: width, Color: toNRGBA(clr)})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.Color) {
	r.add(Op{Kind: OpFillCircle, X: cx, Y: cy, R: radius, Color: toNRGBA(clr)})
}

func (r *Recorder) StrokeCircle(cx, cy, radius, width float64, clr color.Color) {
	r.add(Op{Kind: OpStrokeCircle, X: cx, Y: cy, R: radius, Width: width, Color: toNRGBA(clr)})
}

func (r *Recorder) FillPolygon(pts []Point, clr color.Color) {
	r.add(Op{Kind: OpFillPolygon, Points: append([]Point(nil), pts...), Color: toNRGBA(clr)})
}

func (r *Recorder) StrokePolygon(pts []Point, width float64, clr color.Color) {
	r.add(Op{Kind: OpStrokePolygon, Points: append([]Point(nil), pts...), Width: width, Color: toNRGBA(clr)})
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.add(Op{Kind: OpFillRect, X: x, Y: y, W: w, H: h, Color: toNRGBA(clr)})
}

func (r *Recorder) Layer(x, y, w, h, alpha float64, draw func(Canvas)) {
	r.add(Op{Kind: OpLayer, X: x, Y: y, W: w, H: h, Alpha: alpha})
	r.depth++
	draw(r)
	r.depth--
}

func (r *Recorder) Text(s string, size, cx, cy float64, clr color.Color) {
	r.add(Op{Kind: OpText, Text: s, Size: size, X: cx, Y: cy, Color: toNRGBA(clr)})
}

// Reset очищает запись.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.depth = 0
}

// Count возвращает число операций данного типа.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts возвращает все нарисованные строки по порядку.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// FindText возвращает первую операцию Text с данной строкой.
func (r *Recorder) FindText(s string) (Op, bool) {
	for _, op := range r.Ops {
		if op.Kind == OpText && op.Text == s {
			return op, true
		}
	}
	return Op{}, false
}
