// Package gui is the optional ebiten window for the cave. The frame buffer
// code here builds without ebiten; the window itself needs the ebiten tag.
package gui

import (
	"image/color"
	"math"

	"github.com/vovakirdan/cavern/internal/games/cavern"
	"github.com/vovakirdan/cavern/internal/world"
)

// SubPixels is the number of frame pixels per tile side.
const SubPixels = 4

var (
	skyColor    = color.RGBA{R: 24, G: 28, B: 48, A: 255}
	playerColor = color.RGBA{R: 80, G: 160, B: 255, A: 255}
	enemyColor  = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	bulletColor = color.RGBA{R: 255, G: 230, B: 90, A: 255}
)

var palette = map[world.TileKind]color.RGBA{
	world.Barrier:        {R: 60, G: 60, B: 60, A: 255},
	world.CaveBackground: {R: 12, G: 10, B: 10, A: 255},
	world.Dirt:           {R: 120, G: 80, B: 40, A: 255},
	world.Stone:          {R: 130, G: 130, B: 140, A: 255},
	world.Acid:           {R: 90, G: 230, B: 60, A: 255},
	world.Water:          {R: 40, G: 90, B: 220, A: 255},
	world.LabBlock1:      {R: 200, G: 200, B: 215, A: 255},
	world.LabBlock2:      {R: 170, G: 170, B: 190, A: 255},
	world.LabBlock3:      {R: 120, G: 220, B: 230, A: 255},
	world.Stalactite:     {R: 90, G: 85, B: 80, A: 255},
	world.Stalagmite:     {R: 90, G: 85, B: 80, A: 255},
	world.Bat:            {R: 110, G: 40, B: 60, A: 255},
	world.Flower:         {R: 240, G: 200, B: 60, A: 255},
	world.Vine:           {R: 40, G: 140, B: 50, A: 255},
}

// Viewport is the window of tiles shown on screen.
type Viewport struct {
	Row0, Col0 int // top-left tile
	Rows, Cols int
}

// ViewportAround centers a rows x cols window on the world point (x, y).
func ViewportAround(x, y, tileSize float64, rows, cols int) Viewport {
	row := int(math.Floor(y / tileSize))
	col := int(math.Floor(x / tileSize))
	return Viewport{Row0: row - rows/2, Col0: col - cols/2, Rows: rows, Cols: cols}
}

// World converts a frame pixel to world coordinates.
func (v Viewport) World(px, py int, tileSize float64) (float64, float64) {
	scale := tileSize / SubPixels
	return float64(v.Col0)*tileSize + float64(px)*scale, float64(v.Row0)*tileSize + float64(py)*scale
}

// Frame is an RGBA buffer covering one viewport.
type Frame struct {
	W, H int
	Pix  []byte
}

// NewFrame allocates a frame for a rows x cols viewport.
func NewFrame(rows, cols int) *Frame {
	w, h := cols*SubPixels, rows*SubPixels
	return &Frame{W: w, H: h, Pix: make([]byte, 4*w*h)}
}

// At returns the color of pixel (x, y).
func (f *Frame) At(x, y int) color.RGBA {
	i := 4 * (y*f.W + x)
	return color.RGBA{R: f.Pix[i], G: f.Pix[i+1], B: f.Pix[i+2], A: f.Pix[i+3]}
}

func (f *Frame) fill(x, y, w, h int, c color.RGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, f.W), min(y+h, f.H)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			i := 4 * (py*f.W + px)
			f.Pix[i], f.Pix[i+1], f.Pix[i+2], f.Pix[i+3] = c.R, c.G, c.B, c.A
		}
	}
}

// Paint draws the cave, enemies, bullets and player inside v.
func (f *Frame) Paint(g *cavern.Game, v Viewport) {
	grid := g.Grid()
	t := g.Config().World.TileSize

	for r := 0; r < v.Rows; r++ {
		row := v.Row0 + r
		for c := 0; c < v.Cols; c++ {
			col := v.Col0 + c
			clr := skyColor
			if row >= 0 {
				kind := grid.At(row, col)
				if d, ok := grid.Decor(row, col); ok {
					kind = d
				}
				clr = palette[kind]
			}
			f.fill(c*SubPixels, r*SubPixels, SubPixels, SubPixels, clr)
		}
	}

	// toPixels maps a world box to frame pixels.
	toPixels := func(x, y, w, h float64) (int, int, int, int) {
		s := SubPixels / t
		px := int(math.Floor((x - float64(v.Col0)*t) * s))
		py := int(math.Floor((y - float64(v.Row0)*t) * s))
		return px, py, max(int(w*s), 1), max(int(h*s), 1)
	}

	for _, e := range g.Enemies() {
		if e.Alive {
			x, y, w, h := toPixels(e.X, e.Y, t, t)
			f.fill(x, y, w, h, enemyColor)
		}
	}
	for _, b := range g.Bullets() {
		x, y, _, _ := toPixels(b.X, b.Y, 0, 0)
		f.fill(x, y, 1, 1, bulletColor)
	}
	p := g.Player()
	x, y, w, h := toPixels(p.X, p.Y, p.Size, p.Size)
	f.fill(x, y, w, h, playerColor)
}
