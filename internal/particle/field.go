package particle

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/newyear-splash/internal/config"
)

// Color is a tag into the fixed particle palette.
type Color uint8

const (
	Red Color = iota
	Yellow
	Blue
	Green
	Purple

	paletteSize
)

var palette = [paletteSize]color.RGBA{
	Red:    {R: 239, G: 68, B: 68, A: 255},
	Yellow: {R: 250, G: 204, B: 21, A: 255},
	Blue:   {R: 59, G: 130, B: 246, A: 255},
	Green:  {R: 34, G: 197, B: 94, A: 255},
	Purple: {R: 168, G: 85, B: 247, A: 255},
}

// RGBA returns the palette entry for c.
func (c Color) RGBA() color.RGBA {
	if c >= paletteSize {
		return palette[Purple]
	}
	return palette[c]
}

type Particle struct {
	ID     int
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  Color
}

// Pointer is the attraction target. Known stays false until the first move.
type Pointer struct {
	X, Y  float64
	Known bool
}

// Field is a fixed-size set of independently moving particles bouncing
// inside a width x height viewport.
type Field struct {
	Particles []Particle
	Width     float64
	Height    float64
}

// NewField scatters n particles uniformly over the viewport.
func NewField(n int, width, height float64, rng *rand.Rand) *Field {
	f := &Field{
		Particles: make([]Particle, n),
		Width:     width,
		Height:    height,
	}
	for i := range f.Particles {
		f.Particles[i] = Particle{
			ID:    i,
			X:     rng.Float64() * width,
			Y:     rng.Float64() * height,
			VX:    (rng.Float64() - 0.5) * 2,
			VY:    (rng.Float64() - 0.5) * 2,
			Size:  rng.Float64()*6 + 2,
			Color: Color(rng.Intn(int(paletteSize))),
		}
	}
	return f
}

// Resize changes the viewport; out-of-bounds particles bounce back in.
func (f *Field) Resize(width, height float64) {
	f.Width = width
	f.Height = height
}

// Tick advances every particle by one step.
func (f *Field) Tick(p Pointer) {
	for i := range f.Particles {
		f.Particles[i] = step(f.Particles[i], p, f.Width, f.Height)
	}
}

func step(pt Particle, p Pointer, width, height float64) Particle {
	if p.Known {
		pt.VX, pt.VY = attract(pt, p)
	}

	pt.X += pt.VX
	pt.Y += pt.VY

	// Only reflect while heading outward, so a particle pushed past the
	// edge does not flip back and forth outside the viewport.
	if (pt.X < 0 && pt.VX < 0) || (pt.X > width && pt.VX > 0) {
		pt.VX *= -config.Damping
	}
	if (pt.Y < 0 && pt.VY < 0) || (pt.Y > height && pt.VY > 0) {
		pt.VY *= -config.Damping
	}
	return pt
}

// attract returns the velocity after the pointer impulse. Zero distance
// has no direction and gets no impulse.
func attract(pt Particle, p Pointer) (vx, vy float64) {
	dx := p.X - pt.X
	dy := p.Y - pt.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 || dist >= config.AttractionRadius {
		return pt.VX, pt.VY
	}
	return pt.VX + dx/dist*config.AttractionStrength,
		pt.VY + dy/dist*config.AttractionStrength
}
