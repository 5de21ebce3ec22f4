// pkg/render/canvas.go
package render

import "image/color"

// Point — вершина многоугольника в экранных координатах.
type Point struct {
	X, Y float64
}

// Canvas — поверхность, на которую рисуют сущности и HUD.
// Реализации: ebiten (EbitenCanvas), raylib, терминал (tcell) и Recorder для тестов.
type Canvas interface {
	StrokeLine(x1, y1, x2, y2, width float64, clr color.Color)
	FillCircle(cx, cy, r float64, clr color.Color)
	StrokeCircle(cx, cy, r, width float64, clr color.Color)
	FillPolygon(pts []Point, clr color.Color)
	StrokePolygon(pts []Point, width float64, clr color.Color)
	FillRect(x, y, w, h float64, clr color.Color)
	// Layer рисует draw на прозрачный слой размером w×h с левым верхним углом в (x, y)
	// и накладывает его на холст с общей прозрачностью alpha ∈ [0, 1].
	// Внутри draw используются те же экранные координаты.
	Layer(x, y, w, h, alpha float64, draw func(Canvas))
	// Text рисует строку кеглем size с центром в (cx, cy).
	Text(s string, size, cx, cy float64, clr color.Color)
}

// SignedArea — ориентированная площадь многоугольника в экранных координатах (y вниз).
// Отрицательная площадь означает обход против часовой стрелки на экране.
func SignedArea(pts []Point) float64 {
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// Centroid — среднее вершин; для звездных многоугольников лежит внутри.
func Centroid(pts []Point) Point {
	var c Point
	if len(pts) == 0 {
		return c
	}
	for _, p := range pts {
		c.X += p.X
		c.Y += p.Y
	}
	n := float64(len(pts))
	return Point{X: c.X / n, Y: c.Y / n}
}
