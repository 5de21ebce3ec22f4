package tty

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"sketch-shooter/pkg/render"
)

// kappa — длина касательных кубической дуги в четверть окружности.
const kappa = 0.5522847498

// label — надпись поверх растра, в клетках терминала.
type label struct {
	col, row int
	text     []rune
	clr      color.Color
}

// Raster растеризует render.Canvas в сетку «пикселей» терминала:
// каждая клетка — два пикселя по вертикали (символ ▀).
// Фигуры идут через vector.Rasterizer в image.RGBA.
type Raster struct {
	W, H   int // размер в пикселях
	sx, sy float64
	ox, oy float64 // логические координаты левого верхнего пикселя img

	img    *image.RGBA
	z      *vector.Rasterizer
	sub    *Raster // буфер слоя, переиспользуется между кадрами
	labels []label
}

// NewRaster создает растр под терминал cols×rows для логического экрана lw×lh.
func NewRaster(cols, rows, lw, lh int) *Raster {
	r := &Raster{z: &vector.Rasterizer{}}
	r.Resize(cols, rows, lw, lh)
	return r
}

// Resize меняет размер растра. Содержимое сбрасывается.
func (r *Raster) Resize(cols, rows, lw, lh int) {
	r.W, r.H = max(1, cols), max(1, rows*2)
	r.sx = float64(r.W) / float64(lw)
	r.sy = float64(r.H) / float64(lh)
	r.img = image.NewRGBA(image.Rect(0, 0, r.W, r.H))
	r.sub = nil
	r.Clear()
}

// Clear заливает растр черным и убирает надписи.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.Black, image.Point{}, draw.Src)
	r.labels = r.labels[:0]
}

// At возвращает цвет пикселя.
func (r *Raster) At(x, y int) (int32, int32, int32) {
	c := r.img.RGBAAt(x, y)
	return int32(c.R), int32(c.G), int32(c.B)
}

// ToLogical переводит центр клетки терминала в логические координаты.
func (r *Raster) ToLogical(col, row int) (float64, float64) {
	return (float64(col)+0.5)/r.sx + r.ox, (float64(row*2)+1)/r.sy + r.oy
}

// pt переводит логическую точку в пиксели img.
func (r *Raster) pt(x, y float64) (float32, float32) {
	return float32((x - r.ox) * r.sx), float32((y - r.oy) * r.sy)
}

// minHalf — половина пикселя в логических единицах, чтобы тонкие линии не пропадали.
func (r *Raster) minHalf() float64 {
	return 0.5 * max(1/r.sx, 1/r.sy)
}

// begin готовит растеризатор к новой фигуре.
func (r *Raster) begin() {
	r.z.Reset(r.W, r.H)
}

// paint заливает накопленный путь цветом clr.
func (r *Raster) paint(clr color.Color) {
	if _, _, _, a := clr.RGBA(); a == 0 {
		return
	}
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(clr), image.Point{})
}

// ellipse добавляет замкнутый эллипс. reverse меняет направление обхода:
// встречный контур вырезает дырку.
func (r *Raster) ellipse(cx, cy, rad float64, reverse bool) {
	px, py := r.pt(cx, cy)
	rx, ry := float32(rad*r.sx), float32(rad*r.sy)
	if reverse {
		ry = -ry
	}
	kx, ky := float32(kappa)*rx, float32(kappa)*ry
	r.z.MoveTo(px+rx, py)
	r.z.CubeTo(px+rx, py+ky, px+kx, py+ry, px, py+ry)
	r.z.CubeTo(px-kx, py+ry, px-rx, py+ky, px-rx, py)
	r.z.CubeTo(px-rx, py-ky, px-kx, py-ry, px, py-ry)
	r.z.CubeTo(px+kx, py-ry, px+rx, py-ky, px+rx, py)
	r.z.ClosePath()
}

// segment добавляет прямоугольник толщиной 2*half вдоль отрезка с круглыми концами.
// Обход у всех частей один, поэтому перекрытия складываются в объединение.
func (r *Raster) segment(x1, y1, x2, y2, half float64) {
	r.ellipse(x1, y1, half, false)
	r.ellipse(x2, y2, half, false)
	dx, dy := x2-x1, y2-y1
	l := math.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*half, dx/l*half
	r.z.MoveTo(r.pt(x1-nx, y1-ny))
	r.z.LineTo(r.pt(x2-nx, y2-ny))
	r.z.LineTo(r.pt(x2+nx, y2+ny))
	r.z.LineTo(r.pt(x1+nx, y1+ny))
	r.z.ClosePath()
}

func (r *Raster) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	r.begin()
	r.segment(x1, y1, x2, y2, max(width/2, r.minHalf()))
	r.paint(clr)
}

func (r *Raster) FillCircle(cx, cy, rad float64, clr color.Color) {
	r.begin()
	r.ellipse(cx, cy, max(rad, r.minHalf()), false)
	r.paint(clr)
}

func (r *Raster) StrokeCircle(cx, cy, rad, width float64, clr color.Color) {
	half := max(width/2, r.minHalf())
	r.begin()
	r.ellipse(cx, cy, rad+half, false)
	if inner := rad - half; inner > 0 {
		r.ellipse(cx, cy, inner, true)
	}
	r.paint(clr)
}

func (r *Raster) FillPolygon(pts []render.Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	r.begin()
	r.z.MoveTo(r.pt(pts[0].X, pts[0].Y))
	for _, p := range pts[1:] {
		r.z.LineTo(r.pt(p.X, p.Y))
	}
	r.z.ClosePath()
	r.paint(clr)
}

func (r *Raster) StrokePolygon(pts []render.Point, width float64, clr color.Color) {
	if len(pts) < 2 {
		return
	}
	half := max(width/2, r.minHalf())
	r.begin()
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		r.segment(p.X, p.Y, q.X, q.Y, half)
	}
	r.paint(clr)
}

func (r *Raster) FillRect(x, y, w, h float64, clr color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r.FillPolygon([]render.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}, clr)
}

// layerRect — пиксели img, которые покрывает логический прямоугольник, обрезанные по img.
func (r *Raster) layerRect(x, y, w, h float64) image.Rectangle {
	x0, y0 := r.pt(x, y)
	x1, y1 := r.pt(x+w, y+h)
	rect := image.Rect(
		int(math.Floor(float64(x0))), int(math.Floor(float64(y0))),
		int(math.Ceil(float64(x1))), int(math.Ceil(float64(y1))),
	)
	return rect.Intersect(r.img.Bounds())
}

// layer возвращает прозрачный растр под прямоугольник rect, переиспользуя буфер.
func (r *Raster) layer(rect image.Rectangle) *Raster {
	w, h := rect.Dx(), rect.Dy()
	if r.sub == nil {
		r.sub = &Raster{z: r.z}
	}
	sub := r.sub
	sub.W, sub.H = w, h
	sub.sx, sub.sy = r.sx, r.sy
	sub.ox = r.ox + float64(rect.Min.X)/r.sx
	sub.oy = r.oy + float64(rect.Min.Y)/r.sy
	if n := 4 * w * h; sub.img == nil || cap(sub.img.Pix) < n {
		sub.img = image.NewRGBA(image.Rect(0, 0, w, h))
	} else {
		sub.img = &image.RGBA{Pix: sub.img.Pix[:n], Stride: 4 * w, Rect: image.Rect(0, 0, w, h)}
		draw.Draw(sub.img, sub.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	}
	sub.labels = sub.labels[:0]
	return sub
}

// Layer рисует в прозрачный буфер размером с прямоугольник слоя и
// накладывает его с alpha. Всё, что вне прямоугольника, отсекается.
func (r *Raster) Layer(x, y, w, h, alpha float64, fn func(render.Canvas)) {
	if w <= 0 || h <= 0 || alpha <= 0 {
		return
	}
	rect := r.layerRect(x, y, w, h)
	if rect.Empty() {
		return
	}
	sub := r.layer(rect)
	fn(sub)

	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(min(1, alpha) * 255))})
	draw.DrawMask(r.img, rect, sub.img, image.Point{}, mask, image.Point{}, draw.Over)
	r.labels = append(r.labels, sub.labels...)
}

// Text ставит надпись в клетки терминала; кегль в терминале не меняется.
// Клетки считаются от начала экрана, а не слоя.
func (r *Raster) Text(s string, size, cx, cy float64, clr color.Color) {
	runes := []rune(s)
	if len(runes) == 0 {
		return
	}
	col := int(math.Round(cx*r.sx)) - len(runes)/2
	row := int(math.Floor(cy * r.sy / 2))
	r.labels = append(r.labels, label{col: col, row: row, text: runes, clr: clr})
}
