//go:build ebiten

package app

import (
	"fmt"
	"time"

	"colorlife/internal/core"
	"colorlife/internal/render"
	"colorlife/internal/ui"
	"colorlife/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var brushKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4,
	ebiten.KeyDigit5, ebiten.KeyDigit6, ebiten.KeyDigit7, ebiten.KeyDigit8,
}

// Game adapts a life simulation to the ebiten.Game interface. It observes the
// simulation and repaints only the cells reported by DrainPendingUpdates.
type Game struct {
	sim     *life.Simulation
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay
	pacer   *core.Pacer

	scale int
	seed  int64
	brush life.Color

	dirty   []int
	refresh bool
}

// New constructs a Game for the provided simulation and registers it as an observer.
func New(sim *life.Simulation, cfg *Config) *Game {
	g := &Game{
		sim:     sim,
		painter: render.NewPainter(sim.Width(), sim.Height(), sim.Palette()),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		overlay: ui.NewOverlay(sim, cfg.Scale),
		pacer:   core.NewPacer(cfg.Delay),
		scale:   cfg.Scale,
		seed:    cfg.Life.Seed,
		brush:   life.DefaultColor,
		refresh: true,
	}
	sim.Register(g)
	return g
}

// Notify collects the cells changed by the last simulation operation.
func (g *Game) Notify() {
	w := g.sim.Width()
	for _, p := range g.sim.DrainPendingUpdates() {
		g.dirty = append(g.dirty, p.Row*w+p.Col)
	}
}

// Close stops observing the simulation.
func (g *Game) Close() { g.sim.Unregister(g) }

// Update handles per-frame input and advances the simulation when the pacer fires.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.pacer.Toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.pacer.Trigger()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.ResetOrClear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.seed = time.Now().UnixNano()
		g.sim.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyLeft) {
		g.sim.GoToGeneration(g.sim.Generation() - 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		g.sim.GoToGeneration(g.sim.Generation() + 1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.pacer.SetDelay(g.pacer.Delay() / 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.pacer.SetDelay(g.pacer.Delay() * 2)
	}
	for i, key := range brushKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.brush = life.Color(i + 1)
		}
	}
	g.handleMouse()

	g.overlay.Update()
	state := "paused"
	if g.pacer.Running() {
		state = "running"
	}
	g.hud.SetStatus(
		fmt.Sprintf("State: %s", state),
		fmt.Sprintf("Delay: %s", g.pacer.Delay()),
		fmt.Sprintf("Brush: %s", g.brush),
	)
	g.hud.Update(g.sim.Width() * g.scale)

	if g.pacer.ShouldStep() {
		g.sim.LoadNextGeneration()
	}
	return nil
}

func (g *Game) handleMouse() {
	left := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	right := inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	if !left && !right {
		return
	}
	mx, my := ebiten.CursorPosition()
	row, col := my/g.scale, mx/g.scale
	if mx < 0 || my < 0 || col >= g.sim.Width() || row >= g.sim.Height() {
		return
	}
	switch {
	case right:
		g.sim.KillCellAt(row, col)
	case g.sim.AliveAt(row, col) && g.sim.ColorAt(row, col) == g.brush:
		g.sim.KillCellAt(row, col)
	default:
		g.sim.ReviveCellAt(row, col, g.brush)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	cells := g.sim.Cells()
	if g.refresh {
		g.painter.Refresh(cells)
		g.refresh = false
	} else {
		g.painter.Patch(cells, g.dirty)
	}
	g.dirty = g.dirty[:0]
	g.painter.Draw(screen, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.sim.Width()*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.sim.Width()*g.scale + g.hud.Width(), g.sim.Height() * g.scale
}
