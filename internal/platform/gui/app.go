//go:build ebiten

package gui

import (
	"errors"
	"image/color"
	"io"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/cavern/internal/core"
	"github.com/vovakirdan/cavern/internal/games/cavern"
)

// Available reports whether the window can be opened in this build.
const Available = true

// App adapts a cave game to the ebiten.Game interface.
type App struct {
	game  *cavern.Game
	cfg   core.RuntimeConfig
	opts  Options
	frame *Frame
	img   *ebiten.Image
	input core.InputFrame
	view  Viewport
	state core.GameState
	saved bool
}

// New constructs an App for game.
func New(game *cavern.Game, cfg core.RuntimeConfig, opts Options) *App {
	opts = opts.withDefaults()
	frame := NewFrame(opts.Rows, opts.Cols)
	return &App{
		game:  game,
		cfg:   cfg,
		opts:  opts,
		frame: frame,
		img:   ebiten.NewImage(frame.W, frame.H),
		input: core.NewInputFrame(),
	}
}

// Update polls the keyboard and mouse and advances the game one tick.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.finish()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) && a.state.GameOver {
		a.cfg.Seed = time.Now().UnixNano()
		a.game.Reset(a.cfg)
		a.state = a.game.State()
		a.saved = false
		return nil
	}

	a.input.Clear()
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		a.input.Set(core.ActionLeft)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		a.input.Set(core.ActionRight)
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeySpace) {
		a.input.Set(core.ActionJump)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.input.Set(core.ActionPause)
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		a.input.Fire(a.aim(mx/a.opts.Zoom, my/a.opts.Zoom))
	}

	a.state = a.game.Step(a.input).State
	if a.state.GameOver {
		a.finish()
	}
	return nil
}

// aim returns the angle from the player's center to frame pixel (px, py).
func (a *App) aim(px, py int) float64 {
	t := a.game.Config().World.TileSize
	wx, wy := a.view.World(px, py, t)
	cx, cy := a.game.Player().Box().Center()
	return math.Atan2(wy-cy, wx-cx)
}

// finish reports the run once.
func (a *App) finish() {
	if a.saved || a.opts.OnFinish == nil || a.state.Ticks == 0 {
		return
	}
	a.saved = true
	a.opts.OnFinish(a.cfg.Seed, a.state)
}

// Draw renders the viewport around the player and the HUD.
func (a *App) Draw(screen *ebiten.Image) {
	p := a.game.Player()
	cx, cy := p.Box().Center()
	a.view = ViewportAround(cx, cy, a.game.Config().World.TileSize, a.opts.Rows, a.opts.Cols)
	a.frame.Paint(a.game, a.view)
	a.img.WritePixels(a.frame.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(a.opts.Zoom), float64(a.opts.Zoom))
	screen.DrawImage(a.img, op)

	face := basicfont.Face7x13
	for i, line := range strings.Split(HUDText(a.game), "\n") {
		text.Draw(screen, line, face, 8, 18+i*16, color.RGBA{R: 230, G: 230, B: 240, A: 255})
	}
}

// Layout returns the logical screen size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.frame.W * a.opts.Zoom, a.frame.H * a.opts.Zoom
}

// Run opens the window and plays until it is closed.
func Run(game *cavern.Game, cfg core.RuntimeConfig, opts Options) error {
	app := New(game, cfg, opts)
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	game.Reset(cfg)

	ebiten.SetWindowTitle("Cavern")
	ebiten.SetTPS(max(cfg.TickRate, 1))
	w, h := app.Layout(0, 0)
	ebiten.SetWindowSize(w, h)

	opts.Logger.Info("opening window", "width", w, "height", h, "seed", cfg.Seed)
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
