// Package tty renders the splash screen in a terminal with tcell.
// Field coordinates stay in pixels; each cell covers CellWidth x CellHeight.
package tty

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/iburimskiy/newyear-splash/internal/config"
	"github.com/iburimskiy/newyear-splash/internal/particle"
	"github.com/iburimskiy/newyear-splash/internal/scene"
)

const (
	greeting    = "Happy New Year!"
	buttonLabel = "[ Start Celebration ]"
)

var particleColors = map[particle.Color]tcell.Color{
	particle.Red:    tcell.NewRGBColor(239, 68, 68),
	particle.Yellow: tcell.NewRGBColor(250, 204, 21),
	particle.Blue:   tcell.NewRGBColor(59, 130, 246),
	particle.Green:  tcell.NewRGBColor(34, 197, 94),
	particle.Purple: tcell.NewRGBColor(168, 85, 247),
}

type Terminal struct {
	screen   tcell.Screen
	scene    *scene.Scene
	interval time.Duration
	logger   *log.Logger

	cols, rows int
}

func New(screen tcell.Screen, s *scene.Scene, interval time.Duration, logger *log.Logger) *Terminal {
	return &Terminal{
		screen:   screen,
		scene:    s,
		interval: interval,
		logger:   logger,
	}
}

// Run owns the screen until the user quits, ctx is done, or an
// interrupt event is posted. The scene is mounted for the duration.
func (t *Terminal) Run(ctx context.Context) error {
	if err := t.screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer t.screen.Fini()
	t.screen.EnableMouse(tcell.MouseMotionEvents)
	t.screen.HideCursor()

	t.cols, t.rows = t.screen.Size()
	t.scene.Mount(t.fieldSize())
	t.logger.Printf("terminal %dx%d, tick %v", t.cols, t.rows, t.interval)
	defer t.scene.Unmount()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			// PollEvent returns nil once the screen is finalized
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	t.draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !t.handleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			t.scene.Tick()
			t.draw()
		}
	}
}

// handleEvent applies one input event and reports whether to keep running.
func (t *Terminal) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			t.scene.Start()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				t.scene.Start()
			}
		}

	case *tcell.EventMouse:
		col, row := ev.Position()
		x, y := cellCenter(col, row)
		t.scene.PointerMoved(x, y)
		if ev.Buttons()&tcell.Button1 != 0 && t.onButton(col, row) {
			t.scene.Start()
		}

	case *tcell.EventResize:
		t.cols, t.rows = ev.Size()
		t.scene.Resize(t.fieldSize())
		t.screen.Sync()

	case *tcell.EventInterrupt:
		return false
	}
	return true
}

func (t *Terminal) fieldSize() (width, height float64) {
	return float64(t.cols * config.CellWidth), float64(t.rows * config.CellHeight)
}

func cellCenter(col, row int) (x, y float64) {
	return float64(col*config.CellWidth) + config.CellWidth/2,
		float64(row*config.CellHeight) + config.CellHeight/2
}

func toCell(x, y float64) (col, row int) {
	return int(x) / config.CellWidth, int(y) / config.CellHeight
}

// buttonPos is the first cell of the centered start label.
func (t *Terminal) buttonPos() (col, row int) {
	return (t.cols - len(buttonLabel)) / 2, t.rows / 2
}

func (t *Terminal) onButton(col, row int) bool {
	if t.scene.State() != scene.Idle {
		return false
	}
	bc, br := t.buttonPos()
	return row == br && col >= bc && col < bc+len(buttonLabel)
}

func (t *Terminal) draw() {
	t.screen.Clear()
	background := tcell.StyleDefault.Background(tcell.ColorBlack)

	for _, p := range t.scene.Particles() {
		col, row := toCell(p.X, p.Y)
		if col < 0 || row < 0 || col >= t.cols || row >= t.rows {
			continue
		}
		glyph := '•'
		if p.Size >= 5 {
			glyph = '●'
		}
		t.screen.SetContent(col, row, glyph, nil, background.Foreground(particleColors[p.Color]))
	}

	if pointer := t.scene.Pointer(); pointer.Known() {
		col, row := toCell(pointer.Position())
		glyph := '○'
		if t.scene.Overlay().Pulse() > 0.75 {
			glyph = '◉'
		}
		t.screen.SetContent(col, row, glyph, nil, background.Foreground(tcell.ColorWhite))
	}

	if t.scene.State() == scene.Idle {
		col, row := t.buttonPos()
		style := tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.NewRGBColor(88, 28, 135))
		t.drawString(col, row, buttonLabel, style)
	} else {
		t.drawCelebration()
	}

	t.screen.Show()
}

func (t *Terminal) drawCelebration() {
	row := t.rows/2 - 1
	if t.scene.Bounce() < -0.125 {
		row--
	}
	t.drawString((t.cols-len(greeting))/2, row,
		greeting, tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true))

	year := strconv.Itoa(t.scene.Year())
	gold := tcell.NewRGBColor(250, 204, 21)
	if t.scene.YearPulse() < 0.75 {
		gold = tcell.NewRGBColor(202, 138, 4)
	}
	t.drawString((t.cols-len(year))/2, t.rows/2+1, year, tcell.StyleDefault.Foreground(gold).Bold(true))
}

func (t *Terminal) drawString(col, row int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(col+i, row, r, nil, style)
	}
}
