// pkg/render/ebiten_canvas.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// FaceSource отдаёт шрифт нужного кегля.
type FaceSource interface {
	Face(size float64) font.Face
}

type layerKey struct {
	w, h, depth int
}

// EbitenCanvas — Canvas поверх *ebiten.Image.
type EbitenCanvas struct {
	dst    *ebiten.Image
	ox, oy float64 // экранные координаты левого верхнего угла dst
	depth  int
	faces  FaceSource

	fillImg *ebiten.Image
	vs      []ebiten.Vertex
	is      []uint16
	layers  map[layerKey]*ebiten.Image
}

// NewEbitenCanvas создаёт холст; цель задаётся в начале каждого кадра через Begin.
func NewEbitenCanvas(faces FaceSource) *EbitenCanvas {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &EbitenCanvas{
		faces:   faces,
		fillImg: fillImg,
		vs:      make([]ebiten.Vertex, 0, 64),
		is:      make([]uint16, 0, 96),
		layers:  make(map[layerKey]*ebiten.Image),
	}
}

// Begin направляет рисование на экран текущего кадра.
func (c *EbitenCanvas) Begin(screen *ebiten.Image) {
	c.dst = screen
}

func (c *EbitenCanvas) lx(x float64) float32 { return float32(x - c.ox) }
func (c *EbitenCanvas) ly(y float64) float32 { return float32(y - c.oy) }

func (c *EbitenCanvas) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	vector.StrokeLine(c.dst, c.lx(x1), c.ly(y1), c.lx(x2), c.ly(y2), float32(width), clr, true)
}

func (c *EbitenCanvas) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.dst, c.lx(cx), c.ly(cy), float32(r), clr, true)
}

func (c *EbitenCanvas) StrokeCircle(cx, cy, r, width float64, clr color.Color) {
	vector.StrokeCircle(c.dst, c.lx(cx), c.ly(cy), float32(r), float32(width), clr, true)
}

func (c *EbitenCanvas) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(c.dst, c.lx(x), c.ly(y), float32(w), float32(h), clr, false)
}

func (c *EbitenCanvas) path(pts []Point) *vector.Path {
	path := &vector.Path{}
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(c.lx(p.X), c.ly(p.Y))
		} else {
			path.LineTo(c.lx(p.X), c.ly(p.Y))
		}
	}
	path.Close()
	return path
}

func (c *EbitenCanvas) FillPolygon(pts []Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	c.vs, c.is = c.path(pts).AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	c.drawVertices(clr, ebiten.NonZero)
}

func (c *EbitenCanvas) StrokePolygon(pts []Point, width float64, clr color.Color) {
	if len(pts) < 2 {
		return
	}
	c.vs, c.is = c.path(pts).AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	})
	c.drawVertices(clr, ebiten.FillAll)
}

func (c *EbitenCanvas) drawVertices(clr color.Color, rule ebiten.FillRule) {
	r, g, b, a := vertexColor(clr)
	for i := range c.vs {
		c.vs[i].SrcX = 0
		c.vs[i].SrcY = 0
		c.vs[i].ColorR = r
		c.vs[i].ColorG = g
		c.vs[i].ColorB = b
		c.vs[i].ColorA = a
	}
	c.dst.DrawTriangles(c.vs, c.is, c.fillImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  rule,
	})
}

func (c *EbitenCanvas) Layer(x, y, w, h, alpha float64, draw func(Canvas)) {
	iw, ih := int(math.Ceil(w)), int(math.Ceil(h))
	if iw <= 0 || ih <= 0 || alpha <= 0 {
		return
	}
	key := layerKey{w: iw, h: ih, depth: c.depth + 1}
	img, ok := c.layers[key]
	if !ok {
		img = ebiten.NewImage(iw, ih)
		c.layers[key] = img
	}
	img.Clear()

	sub := *c
	sub.dst = img
	sub.ox, sub.oy = x, y
	sub.depth = c.depth + 1
	draw(&sub)
	c.vs, c.is = sub.vs, sub.is

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-c.ox, y-c.oy)
	op.ColorScale.ScaleAlpha(float32(math.Min(1, alpha)))
	c.dst.DrawImage(img, op)
}

func (c *EbitenCanvas) Text(s string, size, cx, cy float64, clr color.Color) {
	if c.faces == nil || s == "" {
		return
	}
	face := c.faces.Face(size)
	b := text.BoundString(face, s)
	x := int(cx-c.ox) - b.Dx()/2 - b.Min.X
	y := int(cy-c.oy) - b.Dy()/2 - b.Min.Y
	text.Draw(c.dst, s, face, x, y, clr)
}
