package particle

import (
	"math"
	"math/rand"
	"testing"

	"github.com/iburimskiy/newyear-splash/internal/config"
)

func newTestField(t *testing.T) *Field {
	t.Helper()
	return NewField(50, 800, 600, rand.New(rand.NewSource(42)))
}

// TestNewFieldWithinViewport checks the initial scatter for 50 particles in 800x600
func TestNewFieldWithinViewport(t *testing.T) {
	f := newTestField(t)

	if len(f.Particles) != 50 {
		t.Fatalf("Expected 50 particles, got %d", len(f.Particles))
	}

	for _, p := range f.Particles {
		if p.X < 0 || p.X > 800 || p.Y < 0 || p.Y > 600 {
			t.Errorf("Particle %d at (%f,%f) outside viewport", p.ID, p.X, p.Y)
		}
		if math.Abs(p.VX) > 1 || math.Abs(p.VY) > 1 {
			t.Errorf("Particle %d velocity (%f,%f) too large", p.ID, p.VX, p.VY)
		}
		if p.Size < 2 || p.Size >= 8 {
			t.Errorf("Particle %d size %f outside [2,8)", p.ID, p.Size)
		}
		if p.Color >= paletteSize {
			t.Errorf("Particle %d has color %d outside palette", p.ID, p.Color)
		}
	}
}

func TestNewFieldUniqueIDs(t *testing.T) {
	f := newTestField(t)
	seen := make(map[int]bool)
	for _, p := range f.Particles {
		if seen[p.ID] {
			t.Fatalf("Duplicate particle ID %d", p.ID)
		}
		seen[p.ID] = true
	}
}

// TestTickIntegratesPosition verifies pos' = pos + v without a pointer
func TestTickIntegratesPosition(t *testing.T) {
	f := newTestField(t)
	before := append([]Particle(nil), f.Particles...)

	f.Tick(Pointer{})

	for i, p := range f.Particles {
		b := before[i]
		if p.X != b.X+b.VX || p.Y != b.Y+b.VY {
			t.Errorf("Particle %d moved to (%f,%f), expected (%f,%f)",
				p.ID, p.X, p.Y, b.X+b.VX, b.Y+b.VY)
		}
	}
}

func TestBounce(t *testing.T) {
	tests := []struct {
		name   string
		in     Particle
		wantVX float64
		wantVY float64
	}{
		{"left edge", Particle{X: 0.5, Y: 300, VX: -1, VY: 0}, 0.9, 0},
		{"right edge", Particle{X: 799.5, Y: 300, VX: 1, VY: 0}, -0.9, 0},
		{"top edge", Particle{X: 400, Y: 0.2, VX: 0, VY: -0.5}, 0, 0.45},
		{"bottom edge", Particle{X: 400, Y: 599.8, VX: 0, VY: 0.5}, 0, -0.45},
		{"corner", Particle{X: 0.1, Y: 0.1, VX: -1, VY: -1}, 0.9, 0.9},
		{"inside", Particle{X: 400, Y: 300, VX: 1, VY: -1}, 1, -1},
		{"outside heading in", Particle{X: -5, Y: 300, VX: 0.5, VY: 0}, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := step(tt.in, Pointer{}, 800, 600)
			if math.Abs(got.VX-tt.wantVX) > 1e-9 || math.Abs(got.VY-tt.wantVY) > 1e-9 {
				t.Errorf("Expected velocity (%f,%f), got (%f,%f)", tt.wantVX, tt.wantVY, got.VX, got.VY)
			}
			if got.X != tt.in.X+tt.in.VX || got.Y != tt.in.Y+tt.in.VY {
				t.Errorf("Expected position (%f,%f) before bounce, got (%f,%f)",
					tt.in.X+tt.in.VX, tt.in.Y+tt.in.VY, got.X, got.Y)
			}
		})
	}
}

// TestParticleReturnsAfterBounce checks a crossing particle does not stay stuck outside
func TestParticleReturnsAfterBounce(t *testing.T) {
	f := &Field{Width: 800, Height: 600, Particles: []Particle{{X: 1, Y: 300, VX: -2}}}

	for i := 0; i < 10; i++ {
		f.Tick(Pointer{})
	}

	if f.Particles[0].X < 0 {
		t.Errorf("Expected particle back inside, got x=%f", f.Particles[0].X)
	}
}

func TestAttraction(t *testing.T) {
	p := Pointer{X: 400, Y: 300, Known: true}

	near := Particle{X: 300, Y: 300}
	vx, vy := attract(near, p)
	if math.Abs(vx-config.AttractionStrength) > 1e-9 || vy != 0 {
		t.Errorf("Expected impulse (%f,0), got (%f,%f)", config.AttractionStrength, vx, vy)
	}

	far := Particle{X: 400, Y: 300 - config.AttractionRadius, VX: 0.3}
	vx, vy = attract(far, p)
	if vx != 0.3 || vy != 0 {
		t.Errorf("Expected no impulse at the radius, got (%f,%f)", vx, vy)
	}
}

func TestAttractionIgnoresUnknownPointer(t *testing.T) {
	in := Particle{X: 390, Y: 300, VX: 0.1}
	got := step(in, Pointer{X: 400, Y: 300}, 800, 600)
	if got.VX != 0.1 {
		t.Errorf("Expected no impulse before the first pointer move, got vx=%f", got.VX)
	}
}

// TestAttractionZeroDistance guards the degenerate case
func TestAttractionZeroDistance(t *testing.T) {
	in := Particle{X: 400, Y: 300, VX: 0.25, VY: -0.25}
	got := step(in, Pointer{X: 400, Y: 300, Known: true}, 800, 600)

	for _, v := range []float64{got.X, got.Y, got.VX, got.VY} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("Expected finite values, got %+v", got)
		}
	}
	if got.VX != 0.25 || got.VY != -0.25 {
		t.Errorf("Expected velocity unchanged, got (%f,%f)", got.VX, got.VY)
	}
}

func TestResize(t *testing.T) {
	f := &Field{Width: 800, Height: 600, Particles: []Particle{{X: 700, Y: 300, VX: 1}}}
	f.Resize(400, 600)
	f.Tick(Pointer{})

	if f.Particles[0].VX != -config.Damping {
		t.Errorf("Expected bounce off the new right edge, got vx=%f", f.Particles[0].VX)
	}
}

func TestColorRGBA(t *testing.T) {
	if Red.RGBA() == Blue.RGBA() {
		t.Error("Expected distinct palette entries")
	}
	if Color(200).RGBA() != Purple.RGBA() {
		t.Error("Expected out-of-range tag to fall back to purple")
	}
}
