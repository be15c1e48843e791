package picker

import (
	"errors"
	"log"

	"github.com/ncruces/zenity"
)

var ErrCancelled = errors.New("selection cancelled")

// SelectDir asks for a directory with a native dialog, starting at start.
func SelectDir(title, start string) (string, error) {
	dir, err := zenity.SelectFile(
		zenity.Title(title),
		zenity.Directory(),
		zenity.Filename(start),
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", ErrCancelled
	}
	if err != nil {
		return "", err
	}

	log.Printf("selected %s", dir)
	return dir, nil
}
