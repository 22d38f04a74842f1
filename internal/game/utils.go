package game

import (
	"image"
	"image/color"
	"math"

	"github.com/iburimskiy/newyear-splash/internal/config"
)

var (
	backgroundTop    = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	backgroundBottom = color.RGBA{R: 88, G: 28, B: 135, A: 255} // purple-900

	buttonColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	buttonHoverColor = color.RGBA{R: 243, G: 232, B: 255, A: 255} // purple-100
	buttonTextColor  = backgroundBottom
)

// Year gradient endpoints in HSV: yellow-400 to yellow-600.
const (
	yearHueFrom, yearSatFrom, yearValFrom = 50.0, 0.92, 0.98
	yearHueTo, yearSatTo, yearValTo       = 41.0, 0.97, 0.79
)

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8((r + m) * 255), uint8((g + m) * 255), uint8((b + m) * 255)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*clamp01(t)
}

// lerpRGBA blends two opaque colors.
func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(lerp(float64(a.R), float64(b.R), t)),
		G: uint8(lerp(float64(a.G), float64(b.G), t)),
		B: uint8(lerp(float64(a.B), float64(b.B), t)),
		A: 255,
	}
}

// yearColor is the gold gradient sampled at t in [0,1], left to right.
func yearColor(t float64) color.RGBA {
	r, g, b := hsvToRgb(
		lerp(yearHueFrom, yearHueTo, t),
		lerp(yearSatFrom, yearSatTo, t),
		lerp(yearValFrom, yearValTo, t),
	)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// withAlpha turns an opaque color into a translucent one.
func withAlpha(c color.RGBA, a float64) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(255 * clamp01(a))}
}

// buttonRect centers the start button in a width x height screen.
func buttonRect(width, height int) image.Rectangle {
	x := (width - config.ButtonWidth) / 2
	y := (height - config.ButtonHeight) / 2
	return image.Rect(x, y, x+config.ButtonWidth, y+config.ButtonHeight)
}

func inRect(r image.Rectangle, x, y int) bool {
	return image.Pt(x, y).In(r)
}
