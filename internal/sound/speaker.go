package sound

import (
	"sync"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
)

// Output is where decoded audio ends up.
type Output interface {
	Play(s beep.Streamer, format beep.Format) error
	Stop()
}

// Speaker plays through the system audio device. The device is opened
// lazily at the sample rate of the first clip; later clips are resampled.
type Speaker struct {
	mu       sync.Mutex
	rate     beep.SampleRate
	initDone bool
}

func (s *Speaker) Play(st beep.Streamer, format beep.Format) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initDone {
		bufferSize := format.SampleRate.N(time.Second / 20)
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			return errors.Wrap(err, "init speaker")
		}
		s.rate = format.SampleRate
		s.initDone = true
	}
	if format.SampleRate != s.rate {
		st = beep.Resample(4, format.SampleRate, s.rate, st)
	}

	speaker.Play(st)
	return nil
}

// Stop drops everything queued on the speaker.
func (s *Speaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initDone {
		return
	}
	// Clear takes the speaker lock itself.
	speaker.Clear()
}
