//go:build !ebiten

package gui

import (
	"errors"

	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/games/cavern"
)

// Available reports whether the window can be opened in this build.
const Available = false

// ErrNoWindow is returned by Run in builds without the ebiten tag.
var ErrNoWindow = errors.New("gui: this build has no window support; rebuild with -tags ebiten")

// Run always fails without the ebiten build tag.
func Run(*cavern.Game, core.RuntimeConfig, Options) error {
	return ErrNoWindow
}
