package raylib

import (
	"image/color"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"sketch-shooter/pkg/render"
)

const (
	circleSegments = 48
	fontBaseSize   = 64
	textSpacing    = 1
)

type layerKey struct {
	w, h int32
}

// Canvas рисует render.Canvas через raylib. Координаты логические,
// масштаб окна применяется здесь же.
type Canvas struct {
	scale   float32
	ox, oy  float64 // логические координаты левого верхнего угла цели
	inLayer bool

	font    rl.Font
	ownFont bool
	fan     []rl.Vector2
	layers  map[layerKey]rl.RenderTexture2D
}

// NewCanvas загружает TTF из памяти; при пустых данных берется встроенный шрифт raylib.
// Вызывать после InitWindow.
func NewCanvas(scale float64, fontData []byte) *Canvas {
	c := &Canvas{
		scale:  float32(scale),
		font:   rl.GetFontDefault(),
		layers: make(map[layerKey]rl.RenderTexture2D),
	}
	if len(fontData) > 0 {
		f := rl.LoadFontFromMemory(".ttf", fontData, fontBaseSize, nil)
		if f.Texture.ID > 0 {
			rl.SetTextureFilter(f.Texture, rl.FilterBilinear)
			c.font = f
			c.ownFont = true
		}
	}
	return c
}

// Close выгружает шрифт и слои.
func (c *Canvas) Close() {
	for _, rt := range c.layers {
		rl.UnloadRenderTexture(rt)
	}
	clear(c.layers)
	if c.ownFont {
		rl.UnloadFont(c.font)
		c.ownFont = false
	}
}

func (c *Canvas) v(x, y float64) rl.Vector2 {
	return rl.NewVector2(float32(x-c.ox)*c.scale, float32(y-c.oy)*c.scale)
}

func (c *Canvas) s(d float64) float32 {
	return float32(d) * c.scale
}

// toRGBA — raylib хранит цвет без премультипликации.
func toRGBA(clr color.Color) color.RGBA {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	rl.DrawLineEx(c.v(x1, y1), c.v(x2, y2), max(1, c.s(width)), toRGBA(clr))
}

func (c *Canvas) FillCircle(cx, cy, r float64, clr color.Color) {
	rl.DrawCircleV(c.v(cx, cy), c.s(r), toRGBA(clr))
}

func (c *Canvas) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	half := max(0.5, c.s(width)/2)
	inner := max(0, c.s(r)-half)
	rl.DrawRing(c.v(cx, cy), inner, c.s(r)+half, 0, 360, circleSegments, toRGBA(clr))
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color) {
	rl.DrawRectangleV(c.v(x, y), rl.NewVector2(c.s(w), c.s(h)), toRGBA(clr))
}

// FillPolygon рисует веер из центра масс. Все фигуры игры звездные
// относительно центра, так что веера хватает. raylib отбрасывает
// треугольники с обходом по часовой стрелке, поэтому порядок выравнивается.
func (c *Canvas) FillPolygon(pts []render.Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	center := render.Centroid(pts)
	c.fan = append(c.fan[:0], c.v(center.X, center.Y))
	if render.SignedArea(pts) > 0 {
		for i := len(pts) - 1; i >= 0; i-- {
			c.fan = append(c.fan, c.v(pts[i].X, pts[i].Y))
		}
		c.fan = append(c.fan, c.v(pts[len(pts)-1].X, pts[len(pts)-1].Y))
	} else {
		for _, p := range pts {
			c.fan = append(c.fan, c.v(p.X, p.Y))
		}
		c.fan = append(c.fan, c.v(pts[0].X, pts[0].Y))
	}
	rl.DrawTriangleFan(c.fan, toRGBA(clr))
}

func (c *Canvas) StrokePolygon(pts []render.Point, width float64, clr color.Color) {
	if len(pts) < 2 {
		return
	}
	col := toRGBA(clr)
	w := max(1, c.s(width))
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		rl.DrawLineEx(c.v(p.X, p.Y), c.v(q.X, q.Y), w, col)
		// скругленные стыки
		if w > 2 {
			rl.DrawCircleV(c.v(p.X, p.Y), w/2, col)
		}
	}
}

// Layer рисует в render texture и накладывает ее с прозрачностью alpha.
// raylib не умеет вложенные BeginTextureMode, поэтому вложенный слой
// рисуется прямо в текущую цель.
func (c *Canvas) Layer(x, y, w, h, alpha float64, draw func(render.Canvas)) {
	if w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	if c.inLayer {
		draw(c)
		return
	}
	key := layerKey{w: int32(math.Ceil(float64(c.s(w)))), h: int32(math.Ceil(float64(c.s(h))))}
	rt, ok := c.layers[key]
	if !ok {
		rt = rl.LoadRenderTexture(key.w, key.h)
		c.layers[key] = rt
	}

	pos := c.v(x, y)
	rl.BeginTextureMode(rt)
	rl.ClearBackground(rl.Blank)
	ox, oy := c.ox, c.oy
	c.ox, c.oy, c.inLayer = x, y, true
	draw(c)
	c.ox, c.oy, c.inLayer = ox, oy, false
	rl.EndTextureMode()

	// текстура в OpenGL перевернута по вертикали
	src := rl.NewRectangle(0, 0, float32(key.w), -float32(key.h))
	rl.DrawTextureRec(rt.Texture, src, pos, rl.Fade(rl.White, float32(min(1, alpha))))
}

func (c *Canvas) Text(s string, size, cx, cy float64, clr color.Color) {
	if s == "" {
		return
	}
	fs := c.s(size)
	m := rl.MeasureTextEx(c.font, s, fs, textSpacing)
	pos := c.v(cx, cy)
	pos.X -= m.X / 2
	pos.Y -= m.Y / 2
	rl.DrawTextEx(c.font, s, pos, fs, textSpacing, toRGBA(clr))
}
