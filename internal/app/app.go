//go:build ebiten

package app

import (
	"image/color"
	"time"

	"toruslife/internal/core"
	"toruslife/internal/render"
	"toruslife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	ticker  *core.FixedStep
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	view    render.View

	tps      int
	autoplay bool
	stepOnce bool

	dragged      bool
	lastX, lastY int
}

// New constructs a Game for cfg. The returned window size fits the board.
func New(cfg *Config) (*Game, int, int, error) {
	session, err := NewSession(cfg)
	if err != nil {
		return nil, 0, 0, err
	}
	w, h, cell := render.WindowSize(cfg.Rows, cfg.Cols)
	g := &Game{
		session:  session,
		ticker:   core.NewFixedStep(cfg.TPS),
		painter:  render.NewGridPainter(cfg.Rows, cfg.Cols, render.DefaultPalette),
		overlay:  ui.NewOverlay(cfg.Rows, cfg.Cols),
		hud:      ui.NewHUD(),
		view:     render.NewView(cfg.Rows, cfg.Cols, w, h, cell),
		tps:      cfg.TPS,
		autoplay: cfg.Autoplay,
	}
	return g, w, h, nil
}

// Update handles per-frame input and advances the board.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	grid := g.session.Grid()

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.stepOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.autoplay = !g.autoplay
		g.ticker.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.session.Reseed(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.session.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		g.view.Fit(grid.Rows(), grid.Cols())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud.Toggle()
	}
	g.overlay.Update()

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.view.ZoomBy(dy)
	}
	g.handleMouse()

	if g.stepOnce || (g.autoplay && g.ticker.ShouldStep()) {
		g.session.Step()
		g.stepOnce = false
	}
	return nil
}

// handleMouse pans while the left button is held and toggles the cell under
// the cursor on a release that was not part of a drag.
func (g *Game) handleMouse() {
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.dragged = false
		g.lastX, g.lastY = x, y
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && (x != g.lastX || y != g.lastY) {
		g.view.Pan(float64(x-g.lastX), float64(y-g.lastY))
		g.dragged = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && !g.dragged {
		grid := g.session.Grid()
		if i, j, ok := g.view.CellAt(x, y, grid.Rows(), grid.Cols()); ok {
			// CellAt already bounds the coordinates.
			_ = g.session.Toggle(i, j)
		}
	}
	g.lastX, g.lastY = x, y
}

// Draw renders the board, cell separators and status panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	grid := g.session.Grid()
	g.painter.Draw(screen, grid.Cells(), g.view)
	g.overlay.Draw(screen, g.view)
	g.hud.Draw(screen, ui.Status{
		Generation: g.session.Generation(),
		Population: grid.Population(),
		Rows:       grid.Rows(),
		Cols:       grid.Cols(),
		Autoplay:   g.autoplay,
		TPS:        g.tps,
		Zoom:       g.view.Zoom,
		Seed:       g.session.Seed(),
	})
}

// Layout follows the window size so resizing never stretches cells.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.view.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
