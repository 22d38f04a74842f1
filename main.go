package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"

	"github.com/iburimskiy/newyear-splash/internal/config"
	"github.com/iburimskiy/newyear-splash/internal/game"
	"github.com/iburimskiy/newyear-splash/internal/scene"
	"github.com/iburimskiy/newyear-splash/internal/sound"
	"github.com/iburimskiy/newyear-splash/internal/tty"
)

func main() {
	cfg := config.Load()

	flag.StringVar(&cfg.AudioPath, "audio", cfg.AudioPath, "Audio clip played on start (.mp3, .wav, .flac)")
	flag.BoolVar(&cfg.PickAudio, "pick", cfg.PickAudio, "Choose the audio clip with a file dialog")
	flag.BoolVar(&cfg.Terminal, "tty", cfg.Terminal, "Render in the terminal instead of a window")
	flag.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen, "Start in fullscreen")
	flag.IntVar(&cfg.ParticleCount, "particles", cfg.ParticleCount, "Number of particles")
	flag.IntVar(&cfg.Year, "year", cfg.Year, "Year to celebrate")
	flag.Parse()

	logger := log.New(os.Stderr, "splash: ", log.LstdFlags)

	if err := run(cfg, logger); err != nil {
		logger.Fatal(err)
	}
}

func run(cfg *config.Config, logger *log.Logger) error {
	if cfg.ParticleCount < 0 {
		return errors.Errorf("particle count must not be negative, got %d", cfg.ParticleCount)
	}

	if cfg.PickAudio {
		path, err := sound.PickFile(cfg.AudioPath)
		if err != nil {
			return err
		}
		cfg.AudioPath = path
	}

	trigger := sound.NewTrigger(cfg.AudioPath, &sound.Speaker{}, logger)
	scn := scene.New(cfg, trigger, logger)
	defer scn.Unmount()

	if cfg.Terminal {
		return runTerminal(cfg, scn, logger)
	}
	return runWindow(cfg, scn)
}

func runWindow(cfg *config.Config, scn *scene.Scene) error {
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Happy New Year")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Fullscreen)
	ebiten.SetTPS(cfg.TPS())

	if err := ebiten.RunGame(game.New(scn)); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run window")
	}
	return nil
}

func runTerminal(cfg *config.Config, scn *scene.Scene, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// stderr shares the terminal with the screen
	logger.SetOutput(io.Discard)
	return tty.New(screen, scn, cfg.TickInterval, logger).Run(ctx)
}
