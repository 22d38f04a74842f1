package sound

import (
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
)

// PickFile asks for a clip with the native file dialog. Cancelling keeps
// current.
func PickFile(current string) (string, error) {
	patterns := make([]string, 0, len(Extensions))
	for _, ext := range Extensions {
		patterns = append(patterns, "*"+ext)
	}

	filename, err := zenity.SelectFile(
		zenity.Title("Choose the celebration song"),
		zenity.Filename(current),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: patterns,
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return current, nil
		}
		return "", errors.Wrap(err, "select audio file")
	}
	return filename, nil
}
