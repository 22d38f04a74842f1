package tty

import (
	"context"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/newyear-splash/internal/config"
	"github.com/iburimskiy/newyear-splash/internal/scene"
)

type fakeAudio struct {
	mu     sync.Mutex
	plays  int
	closes int
}

func (a *fakeAudio) Preload() {}

func (a *fakeAudio) Play() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.plays++
}

func (a *fakeAudio) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.closes++
}

func (a *fakeAudio) Level() float64 { return 0.5 }

func newTestTerminal(t *testing.T) (*Terminal, *scene.Scene, *fakeAudio) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cfg := config.Default()
	cfg.Seed = 1
	audio := &fakeAudio{}
	logger := log.New(io.Discard, "", 0)
	scn := scene.New(cfg, audio, logger)

	term := New(screen, scn, cfg.TickInterval, logger)
	term.cols, term.rows = 80, 24
	scn.Mount(term.fieldSize())
	return term, scn, audio
}

func TestFieldSize(t *testing.T) {
	term, scn, _ := newTestTerminal(t)

	w, h := term.fieldSize()
	if w != 80*config.CellWidth || h != 24*config.CellHeight {
		t.Errorf("Unexpected field size %fx%f", w, h)
	}
	for _, p := range scn.Particles() {
		col, row := toCell(p.X, p.Y)
		if col < 0 || col > 80 || row < 0 || row > 24 {
			t.Errorf("Particle %d maps to cell (%d,%d) outside the terminal", p.ID, col, row)
		}
	}
}

func TestCellMapping(t *testing.T) {
	x, y := cellCenter(10, 5)
	if col, row := toCell(x, y); col != 10 || row != 5 {
		t.Errorf("Expected round trip to (10,5), got (%d,%d)", col, row)
	}
}

// TestMouseMoveTracksPointer checks pointer events reach the scene
func TestMouseMoveTracksPointer(t *testing.T) {
	term, scn, _ := newTestTerminal(t)

	if !term.handleEvent(tcell.NewEventMouse(3, 4, tcell.ButtonNone, tcell.ModNone)) {
		t.Fatal("Expected mouse move to keep running")
	}

	x, y := scn.Pointer().Position()
	wantX, wantY := cellCenter(3, 4)
	if !scn.Pointer().Known() || x != wantX || y != wantY {
		t.Errorf("Expected pointer at (%f,%f), got (%f,%f)", wantX, wantY, x, y)
	}
	if scn.State() != scene.Idle {
		t.Error("Expected a plain move not to start the celebration")
	}
}

func TestClickOutsideButton(t *testing.T) {
	term, scn, audio := newTestTerminal(t)

	term.handleEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))

	if scn.State() != scene.Idle || audio.plays != 0 {
		t.Error("Expected a click outside the button to be ignored")
	}
}

// TestClickButtonStartsOnce checks repeated clicks start the celebration once
func TestClickButtonStartsOnce(t *testing.T) {
	term, scn, audio := newTestTerminal(t)
	col, row := term.buttonPos()

	for i := 0; i < 3; i++ {
		term.handleEvent(tcell.NewEventMouse(col+2, row, tcell.Button1, tcell.ModNone))
	}

	if scn.State() != scene.Celebrating {
		t.Fatalf("Expected celebrating, got %s", scn.State())
	}
	if audio.plays != 1 {
		t.Errorf("Expected one play, got %d", audio.plays)
	}
	if term.onButton(col, row) {
		t.Error("Expected the button to disappear once celebrating")
	}
}

func TestEnterStarts(t *testing.T) {
	term, scn, _ := newTestTerminal(t)

	term.handleEvent(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone))

	if scn.State() != scene.Celebrating {
		t.Errorf("Expected Enter to start, got %s", scn.State())
	}
}

func TestQuitEvents(t *testing.T) {
	term, _, _ := newTestTerminal(t)

	if term.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
		t.Error("Expected Esc to quit")
	}
	if term.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)) {
		t.Error("Expected q to quit")
	}
	if term.handleEvent(tcell.NewEventInterrupt(nil)) {
		t.Error("Expected interrupt to quit")
	}
}

func TestResize(t *testing.T) {
	term, _, _ := newTestTerminal(t)

	term.handleEvent(tcell.NewEventResize(100, 40))

	if term.cols != 100 || term.rows != 40 {
		t.Errorf("Expected 100x40, got %dx%d", term.cols, term.rows)
	}
}

func TestDrawBothStates(t *testing.T) {
	term, scn, _ := newTestTerminal(t)
	term.handleEvent(tcell.NewEventMouse(40, 12, tcell.ButtonNone, tcell.ModNone))

	for i := 0; i < 5; i++ {
		scn.Tick()
		term.draw()
	}

	scn.Start()
	for i := 0; i < 100; i++ {
		scn.Tick()
		term.draw()
	}
}

// TestRunUnmountsOnCancel checks teardown releases the scene on exit
func TestRunUnmountsOnCancel(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	cfg := config.Default()
	audio := &fakeAudio{}
	logger := log.New(io.Discard, "", 0)
	scn := scene.New(cfg, audio, logger)
	term := New(screen, scn, time.Millisecond, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- term.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if scn.Mounted() {
		t.Error("Expected scene unmounted after Run")
	}
	audio.mu.Lock()
	defer audio.mu.Unlock()
	if audio.closes != 1 {
		t.Errorf("Expected audio closed once, got %d", audio.closes)
	}
}
