package life

import (
	"errors"
	"fmt"
	"image/color"
	"slices"
	"strconv"

	"pixlife/internal/core"
	"pixlife/internal/render"
)

// BlockSize is the edge length, in pixels, of the square drawn for one cell.
const BlockSize = 4

var (
	// ErrInvalidSize is returned for negative grid dimensions.
	ErrInvalidSize = errors.New("life: invalid grid size")
	// ErrInvalidDensity is returned for densities outside [0, 1].
	ErrInvalidDensity = errors.New("life: invalid density")
)

var (
	deadColor   = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	livePalette = []color.RGBA{
		{R: 141, G: 173, B: 130, A: 255},
		{R: 181, G: 110, B: 48, A: 255},
		{R: 135, G: 173, B: 163, A: 255},
	}
)

// Grid implements Conway's Game of Life on a torus and renders every cell as
// a BlockSize×BlockSize square of RGBA pixels.
//
// A Grid is not safe for concurrent use.
type Grid struct {
	w, h    int
	density float64
	seed    int64

	cur []Cell
	nxt []Cell
	pix []byte

	rng core.Rand
	gen int
}

// New returns a randomly populated grid using the default density and seed.
// It panics if either dimension is negative.
func New(w, h int) *Grid {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = w, h
	g, err := NewWithConfig(cfg)
	if err != nil {
		panic(err)
	}
	return g
}

// NewWithConfig validates cfg and returns a grid populated from cfg.Seed.
func NewWithConfig(cfg Config) (*Grid, error) {
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}
	if cfg.Density < 0 || cfg.Density > 1 {
		return nil, fmt.Errorf("%w: %g", ErrInvalidDensity, cfg.Density)
	}
	total := cfg.Width * cfg.Height
	g := &Grid{
		w:       cfg.Width,
		h:       cfg.Height,
		density: cfg.Density,
		cur:     make([]Cell, total),
		nxt:     make([]Cell, total),
		pix:     make([]byte, total*BlockSize*BlockSize*4),
	}
	g.Reset(cfg.Seed)
	return g, nil
}

// Name returns the simulation identifier.
func (g *Grid) Name() string { return "life" }

// Size returns the grid dimensions in cells.
func (g *Grid) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// PixelSize returns the dimensions of the rendered frame in pixels.
func (g *Grid) PixelSize() core.Size {
	return core.Size{W: g.w * BlockSize, H: g.h * BlockSize}
}

// Reset repopulates the grid from seed. Each cell is Alive with the configured
// density. The palette source is reseeded as well.
func (g *Grid) Reset(seed int64) {
	rng := core.NewRNG(seed)
	for i := range g.cur {
		g.cur[i] = Dead
		if rng.Bool(g.density) {
			g.cur[i] = Alive
		}
	}
	g.seed = seed
	g.rng = rng.Source()
	g.gen = 0
}

// SetRand replaces the source used to pick colours for live cells.
func (g *Grid) SetRand(r core.Rand) { g.rng = r }

// Index maps (row, col) to a position in the cell slice, wrapping both
// coordinates around the torus. It panics on a grid with a zero dimension.
func (g *Grid) Index(row, col int) int {
	return wrap(row, g.h)*g.w + wrap(col, g.w)
}

// Position is the inverse of Index for in-range indices.
func (g *Grid) Position(i int) (row, col int) {
	return i / g.w, i % g.w
}

func wrap(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// LiveNeighborCount returns the number of Alive cells among the eight cells
// surrounding (row, col). Edges wrap, so the result is always in [0, 8].
func (g *Grid) LiveNeighborCount(row, col int) int {
	row, col = wrap(row, g.h), wrap(col, g.w)
	up, down := (row+g.h-1)%g.h, (row+1)%g.h
	left, right := (col+g.w-1)%g.w, (col+1)%g.w

	rows := [3]int{up, row, down}
	cols := [3]int{left, col, right}
	n := 0
	for dy, r := range rows {
		for dx, c := range cols {
			if dy == 1 && dx == 1 {
				continue
			}
			n += g.cur[r*g.w+c].Weight()
		}
	}
	return n
}

// Tick advances the grid by one generation. The next generation is computed
// entirely from the current one before it replaces it.
func (g *Grid) Tick() {
	for i, c := range g.cur {
		row, col := g.Position(i)
		g.nxt[i] = nextState(c, g.LiveNeighborCount(row, col))
	}
	g.cur, g.nxt = g.nxt, g.cur
	g.gen++
}

// PaintState renders every cell into the pixel buffer and hands a copy of the
// finished frame to p. Live cells draw a random palette colour on every call.
func (g *Grid) PaintState(p core.Presenter) {
	stride := g.w * BlockSize
	for i, c := range g.cur {
		row, col := g.Position(i)
		render.FillBlock(g.pix, stride, col*BlockSize, row*BlockSize, BlockSize, g.colorOf(c))
	}
	if p != nil {
		p.Present(slices.Clone(g.pix))
	}
}

func (g *Grid) colorOf(c Cell) color.RGBA {
	if c != Alive {
		return deadColor
	}
	return livePalette[g.rng.IntN(len(livePalette))]
}

// Pixels exposes the most recently rendered frame. Callers must not modify it.
func (g *Grid) Pixels() []byte { return g.pix }

// Cells returns a copy of the current generation.
func (g *Grid) Cells() []Cell { return slices.Clone(g.cur) }

// At returns the cell at (row, col), wrapping out-of-range coordinates.
func (g *Grid) At(row, col int) Cell { return g.cur[g.Index(row, col)] }

// Set overwrites the cell at (row, col), wrapping out-of-range coordinates.
func (g *Grid) Set(row, col int, c Cell) { g.cur[g.Index(row, col)] = c }

// Toggle flips the cell at (row, col).
func (g *Grid) Toggle(row, col int) {
	i := g.Index(row, col)
	if g.cur[i] == Alive {
		g.cur[i] = Dead
		return
	}
	g.cur[i] = Alive
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = Dead
	}
}

// Generation returns the number of ticks since the last Reset.
func (g *Grid) Generation() int { return g.gen }

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for _, c := range g.cur {
		n += c.Weight()
	}
	return n
}

// Parameters reports the grid settings for display.
func (g *Grid) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Grid",
		Params: []core.Parameter{
			{Key: "w", Label: "Width", Value: strconv.Itoa(g.w)},
			{Key: "h", Label: "Height", Value: strconv.Itoa(g.h)},
			{Key: "density", Label: "Density", Value: strconv.FormatFloat(g.density, 'g', -1, 64)},
			{Key: "seed", Label: "Seed", Value: strconv.FormatInt(g.seed, 10)},
		},
	}}}
}
