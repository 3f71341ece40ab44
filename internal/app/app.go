//go:build ebiten

package app

import (
	"time"

	"pixlife/internal/core"
	"pixlife/internal/render"
	"pixlife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 180

type cellToggler interface {
	Toggle(row, col int)
}

type clearer interface {
	Clear()
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	block    int
	paused   bool
	tickOnce bool
	showHUD  bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim core.Sim, scale int, seed int64, showHUD bool) *Game {
	if scale <= 0 {
		scale = 1
	}
	px := sim.PixelSize()
	block := 1
	if w := sim.Size().W; w > 0 {
		block = px.W / w
	}
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(px.W, px.H),
		overlay: ui.NewOverlay(sim, block*scale),
		hud:     ui.NewHUD(sim, hudWidth),
		scale:   scale,
		block:   block,
		showHUD: showHUD,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if c, ok := g.sim.(clearer); ok {
			c.Clear()
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.toggleUnderCursor()
	}

	g.overlay.Update()

	if !g.paused || g.tickOnce {
		g.sim.Tick()
		g.tickOnce = false
	}
	g.hud.Update(g.paused)
	return nil
}

func (g *Game) toggleUnderCursor() {
	t, ok := g.sim.(cellToggler)
	if !ok {
		return
	}
	x, y := ebiten.CursorPosition()
	cell := g.block * g.scale
	size := g.sim.Size()
	if x < 0 || y < 0 || x >= size.W*cell || y >= size.H*cell {
		return
	}
	t.Toggle(y/cell, x/cell)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.sim.PaintState(g.painter)
	g.painter.Blit(screen, g.scale)
	g.overlay.Draw(screen)
	if g.showHUD {
		px := g.sim.PixelSize()
		g.hud.Draw(screen, px.W*g.scale, px.H*g.scale)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ScreenSize()
}

// ScreenSize returns the window size needed for the grid and the HUD panel.
func (g *Game) ScreenSize() (int, int) {
	px := g.sim.PixelSize()
	return px.W*g.scale + g.hud.Width(), px.H * g.scale
}
