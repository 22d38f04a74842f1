// Package scene composes the splash screen: the particle field, the
// cursor marker and the Idle → Celebrating state machine. All methods
// are meant to be called from a single loop goroutine.
package scene

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/iburimskiy/newyear-splash/internal/config"
	"github.com/iburimskiy/newyear-splash/internal/cursor"
	"github.com/iburimskiy/newyear-splash/internal/particle"
)

type State int

const (
	Idle State = iota
	Celebrating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Celebrating:
		return "celebrating"
	default:
		return "unknown"
	}
}

// Audio is the clip played when the celebration starts.
type Audio interface {
	Preload()
	Play()
	Close()
	Level() float64
}

type Scene struct {
	cfg    *config.Config
	audio  Audio
	rng    *rand.Rand
	logger *log.Logger

	field   *particle.Field
	pointer cursor.Tracker
	overlay *cursor.Overlay

	state   State
	mounted bool
	// ticks spent celebrating, drives the message animations
	celebrated int
}

func New(cfg *config.Config, audio Audio, logger *log.Logger) *Scene {
	return &Scene{
		cfg:     cfg,
		audio:   audio,
		rng:     rand.New(rand.NewSource(cfg.Seed)),
		logger:  logger,
		overlay: cursor.NewOverlay(),
	}
}

// Mount creates the particles for a width x height viewport and starts
// preloading the audio. A second call only resizes.
func (s *Scene) Mount(width, height float64) {
	if s.mounted {
		s.Resize(width, height)
		return
	}
	if s.field != nil {
		// unmounted views stay down
		return
	}
	s.field = particle.NewField(s.cfg.ParticleCount, width, height, s.rng)
	s.mounted = true
	s.audio.Preload()
	s.logger.Printf("scene mounted: %d particles in %.0fx%.0f", s.cfg.ParticleCount, width, height)
}

// Unmount stops ticking and pointer tracking and releases the audio.
func (s *Scene) Unmount() {
	if !s.mounted {
		return
	}
	s.mounted = false
	s.audio.Close()
	s.logger.Printf("scene unmounted in state %s", s.state)
}

func (s *Scene) Mounted() bool { return s.mounted }

func (s *Scene) Resize(width, height float64) {
	if !s.mounted {
		return
	}
	s.field.Resize(width, height)
}

// PointerMoved records a raw pointer-move event.
func (s *Scene) PointerMoved(x, y float64) {
	if !s.mounted {
		return
	}
	s.pointer.Move(x, y)
}

// Tick advances the scene by one fixed interval.
func (s *Scene) Tick() {
	if !s.mounted {
		return
	}
	s.field.Tick(s.pointer.Pointer())
	s.overlay.Advance(s.cfg.TickInterval)
	if s.state == Celebrating {
		s.celebrated++
	}
}

// Start fires the Idle → Celebrating transition and plays the audio.
// It reports whether this call made the transition.
func (s *Scene) Start() bool {
	if !s.mounted || s.state != Idle {
		return false
	}
	s.state = Celebrating
	s.audio.Play()
	s.logger.Printf("celebration started")
	return true
}

func (s *Scene) State() State { return s.state }

func (s *Scene) Year() int { return s.cfg.Year }

func (s *Scene) Particles() []particle.Particle {
	if s.field == nil {
		return nil
	}
	return s.field.Particles
}

func (s *Scene) Pointer() *cursor.Tracker { return &s.pointer }

func (s *Scene) Overlay() *cursor.Overlay { return s.overlay }

// AudioLevel is the loudness of the playing clip, 0 while idle.
func (s *Scene) AudioLevel() float64 {
	if s.state != Celebrating {
		return 0
	}
	return s.audio.Level()
}

// Bounce is the greeting's vertical offset as a fraction of its height:
// 0 at rest, -0.25 at the top of the hop.
func (s *Scene) Bounce() float64 {
	p := s.celebrationPhase(config.BouncePeriod)
	return -0.25 * math.Abs(math.Sin(math.Pi*p))
}

// YearPulse is the year's opacity, breathing between 1 and 0.5.
func (s *Scene) YearPulse() float64 {
	p := s.celebrationPhase(config.PulsePeriod)
	return 0.75 + 0.25*math.Cos(2*math.Pi*p)
}

func (s *Scene) celebrationPhase(period time.Duration) float64 {
	elapsed := time.Duration(s.celebrated) * s.cfg.TickInterval
	return float64(elapsed%period) / float64(period)
}
