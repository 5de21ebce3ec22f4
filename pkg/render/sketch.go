// pkg/render/sketch.go
package render

import (
	"image/color"
	"math"
)

// TimeSource — источник времени для дрожания штрихов, в секундах.
type TimeSource interface {
	Seconds() float64
}

// Rand — минимальный генератор, нужный скетчеру (ширина штриха).
type Rand interface {
	Intn(n int) int
}

// DefaultJitterFreq — частота дрожания по умолчанию.
const DefaultJitterFreq = 1.0

// Sketcher рисует примитивы «от руки»: каждый примитив — несколько
// слегка смещённых штрихов. Смещение зависит только от seed и времени,
// поэтому кадр к кадру картинка дрожит плавно, без мерцания.
type Sketcher struct {
	clock TimeSource
	rng   Rand
}

// NewSketcher создаёт скетчер с внешними часами и генератором.
func NewSketcher(clock TimeSource, rng Rand) *Sketcher {
	return &Sketcher{clock: clock, rng: rng}
}

// Jitter возвращает плавное смещение (dx, dy) для данного seed.
// |dx| ≤ magnitude, |dy| ≤ 0.6·magnitude.
func (s *Sketcher) Jitter(seed, magnitude, freq float64) (float64, float64) {
	t := s.clock.Seconds()*0.6*freq + seed
	return math.Sin(t) * magnitude, math.Cos(t*0.9) * magnitude * 0.6
}

// Line рисует отрезок из strokes штрихов.
func (s *Sketcher) Line(c Canvas, clr color.Color, x1, y1, x2, y2, width float64, strokes int, seed float64) {
	for i := 0; i < strokes; i++ {
		fi := float64(i)
		ox1, oy1 := s.Jitter(seed+fi*13, 1.2, DefaultJitterFreq)
		ox2, oy2 := s.Jitter(seed+fi*31, 1.2, DefaultJitterFreq)
		w := math.Max(1, width+float64(s.rng.Intn(3)-1))
		c.StrokeLine(x1+ox1, y1+oy1, x2+ox2, y2+oy2, w, clr)
	}
}

// Circle рисует круг из strokes концентрических штрихов.
// Заливка: каждый штрих — полупрозрачный диск с альфой 180-20i.
// Контур: ширина штриха max(1, int(2-i/2)).
func (s *Sketcher) Circle(c Canvas, clr color.Color, cx, cy, r float64, strokes int, seed float64, filled bool) {
	half := float64(strokes) / 2
	for i := 0; i < strokes; i++ {
		fi := float64(i)
		ox, oy := s.Jitter(seed+fi*7, 1.5+fi*0.2, DefaultJitterFreq)
		rOff := math.Max(1, math.Trunc(r+(fi-half)*0.8))
		if filled {
			c.FillCircle(cx+ox, cy+oy, rOff, WithAlpha(clr, circleFillAlpha(i)))
		} else {
			c.StrokeCircle(cx+ox, cy+oy, rOff, circleStrokeWidth(i), clr)
		}
	}
}

// Polygon рисует многоугольник с дрожащими вершинами.
// Заливка: альфа max(30, 160-30i). Контур: ширина max(1, strokes-i).
func (s *Sketcher) Polygon(c Canvas, clr color.Color, pts []Point, strokes int, seed float64, filled bool) {
	if len(pts) < 3 {
		return
	}
	buf := make([]Point, len(pts))
	for i := 0; i < strokes; i++ {
		fi := float64(i)
		for j, p := range pts {
			ox, oy := s.Jitter(seed+fi*11+float64(j)*3, 1.6, DefaultJitterFreq)
			buf[j] = Point{X: p.X + ox, Y: p.Y + oy}
		}
		if filled {
			c.FillPolygon(buf, WithAlpha(clr, polygonFillAlpha(i)))
		} else {
			c.StrokePolygon(buf, float64(max(1, strokes-i)), clr)
		}
	}
}

func circleFillAlpha(i int) uint8 {
	return uint8(max(0, 180-20*i))
}

func circleStrokeWidth(i int) float64 {
	return math.Max(1, math.Trunc(2-float64(i)/2))
}

func polygonFillAlpha(i int) uint8 {
	return uint8(max(30, 160-30*i))
}
