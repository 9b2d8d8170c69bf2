//go:build ebiten

package app

import (
	"go.uber.org/zap"

	"pong/internal/core"
	"pong/internal/game"
	"pong/internal/logging"
	"pong/internal/render"
	"pong/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a match to the ebiten.Game interface.
type Game struct {
	state   *game.State
	painter *render.Painter
	hud     *ui.HUD
	log     *zap.Logger

	clock *core.DeltaClock
	fixed float64
}

// New constructs a Game for the provided match. When fixedStep is set every
// tick advances by 1/tps; otherwise the measured wall time is used.
func New(state *game.State, log *zap.Logger, tps int, fixedStep bool) *Game {
	g := &Game{
		state:   state,
		painter: render.NewPainter(),
		hud:     ui.NewHUD(state, 240),
		log:     log,
		clock:   core.NewDeltaClock(),
	}
	if fixedStep {
		g.fixed = core.FixedDelta(tps)
	}
	return g
}

// Update polls the keyboard and advances the match by one frame.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.hud.Update()

	dt := g.fixed
	if dt == 0 {
		dt = g.clock.Tick()
	}
	g.state.Update(dt, pollInput())
	logging.LogEvents(g.log, g.state.Events())
	return nil
}

// Draw renders the current match state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, render.Build(g.state))
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.state.Config().Size()
	return s.W, s.H
}

// pollInput maps the two-player keyboard layout onto an input snapshot.
func pollInput() game.Input {
	return game.Input{
		LeftUp:    ebiten.IsKeyPressed(ebiten.KeyW),
		LeftDown:  ebiten.IsKeyPressed(ebiten.KeyS),
		RightUp:   ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		RightDown: ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Start:     inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Release:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Restart:   inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}
