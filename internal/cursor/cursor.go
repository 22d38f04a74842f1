// Package cursor tracks the pointer and animates the marker drawn on it.
package cursor

import (
	"math"
	"time"

	"github.com/iburimskiy/newyear-splash/internal/config"
	"github.com/iburimskiy/newyear-splash/internal/particle"
)

// Tracker holds the latest pointer position.
type Tracker struct {
	x, y  float64
	known bool
}

// Move records a raw pointer-move event.
func (t *Tracker) Move(x, y float64) {
	t.x, t.y = x, y
	t.known = true
}

func (t *Tracker) Position() (x, y float64) { return t.x, t.y }

func (t *Tracker) Known() bool { return t.known }

// Pointer returns the position as a particle attraction target.
func (t *Tracker) Pointer() particle.Pointer {
	return particle.Pointer{X: t.x, Y: t.y, Known: t.known}
}

// Overlay animates a fixed-size marker with two layers: an expanding,
// fading ring and a disc breathing between full and half opacity.
type Overlay struct {
	Size    float64
	elapsed time.Duration
}

func NewOverlay() *Overlay {
	return &Overlay{Size: config.MarkerSize}
}

// Advance moves the animation clock forward.
func (o *Overlay) Advance(dt time.Duration) {
	o.elapsed += dt
}

// Ping returns the ring's scale (1..2) and opacity (1..0).
func (o *Overlay) Ping() (scale, alpha float64) {
	p := phase(o.elapsed, config.PingPeriod)
	return 1 + p, 1 - p
}

// Pulse returns the disc opacity, 1 at rest dipping to 0.5 mid-period.
func (o *Overlay) Pulse() float64 {
	p := phase(o.elapsed, config.PulsePeriod)
	return 0.75 + 0.25*math.Cos(2*math.Pi*p)
}

// phase is the position within the current period, in [0,1).
func phase(elapsed, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	return float64(elapsed%period) / float64(period)
}
