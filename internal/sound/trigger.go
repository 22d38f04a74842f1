package sound

import (
	"context"
	"log"
	"sync"

	"github.com/faiface/beep"
	"github.com/pkg/errors"

	"github.com/iburimskiy/newyear-splash/internal/config"
)

var errClosed = errors.New("audio trigger closed")

// Trigger preloads one clip and plays it on demand. If the preload has
// not finished when Play is called, an independent instance of the same
// file is streamed instead. Failures are logged and otherwise ignored.
type Trigger struct {
	path   string
	out    Output
	logger *log.Logger

	mu       sync.Mutex
	buf      *beep.Buffer
	ready    chan struct{}
	cancel   context.CancelFunc
	tap      *visualTap
	smoothed float64
	closed   bool
}

func NewTrigger(path string, out Output, logger *log.Logger) *Trigger {
	return &Trigger{
		path:   path,
		out:    out,
		logger: logger,
		ready:  make(chan struct{}),
	}
}

// Preload starts decoding the clip in the background. Only the first
// call has an effect.
func (t *Trigger) Preload() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.cancel != nil || t.closed {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	go t.preload(ctx)
}

func (t *Trigger) preload(ctx context.Context) {
	buf, err := load(ctx, t.path)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			t.logger.Printf("audio preload failed: %v", err)
		}
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.buf = buf
	close(t.ready)
	t.logger.Printf("audio ready: %s (%v)", t.path, buf.Format().SampleRate.D(buf.Len()))
}

// Ready is closed once the preloaded clip can be played.
func (t *Trigger) Ready() <-chan struct{} {
	return t.ready
}

// Play starts the clip. Errors are logged, never returned.
func (t *Trigger) Play() {
	if err := t.play(); err != nil {
		t.logger.Printf("playback failed: %v", err)
	}
}

func (t *Trigger) play() error {
	t.mu.Lock()
	buf, closed := t.buf, t.closed
	t.mu.Unlock()

	if closed {
		return errClosed
	}
	if buf != nil {
		return t.start(buf.Streamer(0, buf.Len()), buf.Format())
	}

	streamer, format, err := Open(t.path)
	if err != nil {
		return errors.Wrap(err, "fallback instance")
	}
	done := beep.Callback(func() { _ = streamer.Close() })
	if err := t.start(beep.Seq(streamer, done), format); err != nil {
		_ = streamer.Close()
		return err
	}
	return nil
}

func (t *Trigger) start(st beep.Streamer, format beep.Format) error {
	tap := newVisualTap(st, config.VisualRingSize)
	if err := t.out.Play(tap, format); err != nil {
		return err
	}

	t.mu.Lock()
	t.tap = tap
	t.mu.Unlock()
	return nil
}

// Level is a smoothed loudness of what is currently playing, in [0,1].
func (t *Trigger) Level() float64 {
	t.mu.Lock()
	tap := t.tap
	t.mu.Unlock()

	var mag float64
	if tap != nil {
		mag = tap.level(2048)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.smoothed = config.SmoothingFactor*t.smoothed + (1-config.SmoothingFactor)*mag
	return t.smoothed
}

// Close cancels a pending preload and stops playback. Safe to call twice.
func (t *Trigger) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	cancel, playing := t.cancel, t.tap != nil
	t.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if playing {
		t.out.Stop()
	}
}
