package game

import (
	"fmt"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/newyear-splash/internal/scene"
)

const (
	greeting      = "Happy New Year!"
	buttonLabel   = "Start Celebration"
	greetingScale = 5
	yearScale     = 9
	buttonScale   = 2
	gradientBand  = 4
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)
	g.drawCursor(screen)
	g.drawParticles(screen)

	if g.scene.State() == scene.Idle {
		g.drawButton(screen)
	} else {
		g.drawCelebration(screen)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s - Esc/Q: quit", g.scene.State()), 12, 12)
}

func (g *Game) drawBackground(screen *ebiten.Image) {
	// Vertical gradient, black on top to purple at the bottom
	for y := 0; y < g.height; y += gradientBand {
		ratio := float64(y) / float64(g.height)
		c := lerpRGBA(backgroundTop, backgroundBottom, ratio)
		vector.DrawFilledRect(screen, 0, float32(y), float32(g.width), gradientBand, c, false)
	}
}

func (g *Game) drawParticles(screen *ebiten.Image) {
	for _, p := range g.scene.Particles() {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size/2), p.Color.RGBA(), true)
	}
}

func (g *Game) drawCursor(screen *ebiten.Image) {
	pointer := g.scene.Pointer()
	if !pointer.Known() {
		return
	}
	x, y := pointer.Position()
	overlay := g.scene.Overlay()
	radius := overlay.Size / 2
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}

	scale, alpha := overlay.Ping()
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius*scale), withAlpha(white, alpha*0.75), true)
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(radius), withAlpha(white, overlay.Pulse()), true)
}

func (g *Game) drawButton(screen *ebiten.Image) {
	r := buttonRect(g.width, g.height)

	bg := buttonColor
	if g.buttonHovered {
		bg = buttonHoverColor
	}
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())

	// Drop shadow, then the button itself
	vector.DrawFilledRect(screen, x+3, y+4, w, h, color.NRGBA{A: 90}, false)
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)

	cx := float64(r.Min.X) + float64(r.Dx())/2
	cy := float64(r.Min.Y) + float64(r.Dy())/2
	g.drawText(screen, buttonLabel, cx, cy, buttonScale, buttonTextColor, 1)
}

func (g *Game) drawCelebration(screen *ebiten.Image) {
	cx := float64(g.width) / 2
	cy := float64(g.height) / 2

	_, lineHeight := text.Measure(greeting, g.face, 0)
	greetingHeight := lineHeight * greetingScale
	greetingY := cy - greetingHeight + g.scene.Bounce()*greetingHeight
	g.drawText(screen, greeting, cx, greetingY, greetingScale, color.RGBA{R: 255, G: 255, B: 255, A: 255}, 1)

	yearY := cy + lineHeight*yearScale/2
	g.drawYear(screen, strconv.Itoa(g.scene.Year()), cx, yearY)
}

// drawYear draws the year glyph by glyph along the gold gradient. The
// glow behind it follows the music.
func (g *Game) drawYear(screen *ebiten.Image, year string, cx, cy float64) {
	pulse := g.scene.YearPulse()
	glow := g.scene.AudioLevel()

	total := text.Advance(year, g.face) * yearScale
	left := cx - total/2
	n := len(year)

	for i := 0; i < n; i++ {
		glyph := year[i : i+1]
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c := yearColor(t)
		w := text.Advance(glyph, g.face) * yearScale
		x := left + text.Advance(year[:i], g.face)*yearScale + w/2

		if glow > 0 {
			for _, d := range [...]float64{-4, 4} {
				g.drawText(screen, glyph, x+d, cy, yearScale, c, glow*0.4*pulse)
				g.drawText(screen, glyph, x, cy+d, yearScale, c, glow*0.4*pulse)
			}
		}
		g.drawText(screen, glyph, x, cy, yearScale, c, pulse)
	}
}

// drawText draws s scaled and centered on (cx, cy).
func (g *Game) drawText(screen *ebiten.Image, s string, cx, cy, scale float64, clr color.Color, alpha float64) {
	w, h := text.Measure(s, g.face, 0)

	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.ColorScale.ScaleAlpha(float32(clamp01(alpha)))
	text.Draw(screen, s, g.face, op)
}
