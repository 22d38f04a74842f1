package sound

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/wav"
	"github.com/pkg/errors"
)

// Extensions lists the clip formats Open understands.
var Extensions = []string{".wav", ".mp3", ".flac"}

// fileStream closes the decoder and its file together.
type fileStream struct {
	beep.StreamSeekCloser
	f *os.File
}

func (s *fileStream) Close() error {
	err := s.StreamSeekCloser.Close()
	if ferr := s.f.Close(); err == nil && !errors.Is(ferr, os.ErrClosed) {
		err = ferr
	}
	return err
}

// Open decodes the audio file at path, choosing the decoder by extension.
func Open(path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav", ".mp3", ".flac":
	default:
		return nil, beep.Format{}, errors.Errorf("unsupported file type: %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, errors.Wrap(err, "open audio")
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	}
	if err != nil {
		_ = f.Close()
		return nil, beep.Format{}, errors.Wrapf(err, "decode %s", filepath.Base(path))
	}

	return &fileStream{StreamSeekCloser: streamer, f: f}, format, nil
}

// load decodes the whole clip into memory, one second at a time so a
// cancelled preload stops early.
func load(ctx context.Context, path string) (*beep.Buffer, error) {
	streamer, format, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	chunk := format.SampleRate.N(time.Second)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		before := buf.Len()
		buf.Append(beep.Take(chunk, streamer))
		if buf.Len() == before {
			break
		}
	}
	if err := streamer.Err(); err != nil {
		return nil, errors.Wrap(err, "read audio")
	}
	return buf, nil
}
