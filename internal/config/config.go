package config

import (
	"os"
	"strconv"
	"time"
)

const (
	WindowWidth  = 1024
	WindowHeight = 640

	// Start button dimensions
	ButtonWidth  = 200
	ButtonHeight = 48

	// Particle field parameters
	ParticleCount      = 50
	AttractionRadius   = 200
	AttractionStrength = 0.5
	Damping            = 0.9
	TickInterval       = 16 * time.Millisecond

	// Cursor marker
	MarkerSize   = 32
	PingPeriod   = time.Second
	PulsePeriod  = 2 * time.Second
	BouncePeriod = time.Second

	// Audio
	DefaultAudioPath = "assets/song.mp3"
	VisualRingSize   = 8192
	SmoothingFactor  = 0.6

	// Terminal cell size in field units
	CellWidth  = 8
	CellHeight = 16
)

// Config holds the runtime settings of the splash screen.
type Config struct {
	Width         int
	Height        int
	Fullscreen    bool
	ParticleCount int
	TickInterval  time.Duration
	AudioPath     string
	PickAudio     bool
	Terminal      bool
	Year          int
	Seed          int64
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Width:         WindowWidth,
		Height:        WindowHeight,
		ParticleCount: ParticleCount,
		TickInterval:  TickInterval,
		AudioPath:     DefaultAudioPath,
		Year:          CelebratedYear(time.Now()),
		Seed:          time.Now().UnixNano(),
	}
}

// Load returns Default overridden by SPLASH_* environment variables.
// Malformed values are ignored.
func Load() *Config {
	cfg := Default()

	if v := os.Getenv("SPLASH_AUDIO"); v != "" {
		cfg.AudioPath = v
	}
	if v := os.Getenv("SPLASH_PARTICLES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ParticleCount = n
		}
	}
	if v := os.Getenv("SPLASH_YEAR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Year = n
		}
	}
	if v := os.Getenv("SPLASH_TICK_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TickInterval = time.Duration(n) * time.Millisecond
		}
	}
	if v := os.Getenv("SPLASH_FULLSCREEN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Fullscreen = b
		}
	}
	if v := os.Getenv("SPLASH_TERMINAL"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Terminal = b
		}
	}

	return cfg
}

// TPS converts the tick interval to Ebiten ticks per second.
func (c *Config) TPS() int {
	if c.TickInterval <= 0 {
		return 60
	}
	tps := int(time.Second / c.TickInterval)
	if tps < 1 {
		return 1
	}
	return tps
}

// CelebratedYear is the year greeted at t: the upcoming one in December.
func CelebratedYear(t time.Time) int {
	if t.Month() == time.December {
		return t.Year() + 1
	}
	return t.Year()
}
