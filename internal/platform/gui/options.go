package gui

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/games/cavern"
)

// Options tune the window.
type Options struct {
	Rows, Cols int // viewport in tiles
	Zoom       int // screen pixels per frame pixel
	Logger     *log.Logger
	// OnFinish is called once per run, when it is won or the window closes.
	OnFinish func(seed int64, state core.GameState)
}

func (o Options) withDefaults() Options {
	if o.Rows <= 0 {
		o.Rows = 40
	}
	if o.Cols <= 0 {
		o.Cols = 60
	}
	if o.Zoom <= 0 {
		o.Zoom = 4
	}
	return o
}

// HUDText is the status line drawn over the window.
func HUDText(g *cavern.Game) string {
	p := g.Player()
	st := g.State()
	text := fmt.Sprintf("Depth %d/%d %s  HP %.0f  Deaths %d",
		st.Score, g.Grid().Height(), cavern.ProgressBar(st.Score, g.Grid().Height(), 10), p.Health, st.Deaths)
	switch {
	case st.Won:
		text += "\nYou reached the lab! R to restart, Q to quit"
	case st.Paused:
		text += "\nPAUSED"
	}
	return text
}
