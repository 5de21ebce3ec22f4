// pkg/render/color.go
package render

import "image/color"

// WithAlpha возвращает цвет с заменённым альфа-каналом (без премультипликации).
func WithAlpha(c color.Color, a uint8) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = a
	return n
}

// Gray returns an opaque grey of the given brightness, clamped to [0, 255].
func Gray(brightness float64) color.RGBA {
	v := uint8(max(0, min(255, brightness)))
	return color.RGBA{R: v, G: v, B: v, A: 255}
}

// vertexColor раскладывает цвет на компоненты [0, 1] для вершин (straight alpha).
func vertexColor(c color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float32(n.R) / 255, float32(n.G) / 255, float32(n.B) / 255, float32(n.A) / 255
}
