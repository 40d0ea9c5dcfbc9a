package display

import (
	"context"
	"image/color"
	"time"

	"cannonfootball/game"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxFrameTime caps the simulated time of a single frame
const maxFrameTime = 100 * time.Millisecond

// Game adapts a match to ebiten's game loop
type Game struct {
	match    *game.Match
	renderer *Renderer
	input    *Input
	debug    *DebugState
	logger   *log.Logger

	lastUpdateTime time.Time
	width, height  int
}

// NewGame creates a window front end for m
func NewGame(m *game.Match, logger *log.Logger) *Game {
	cfg := m.Config()
	return &Game{
		match:          m,
		renderer:       NewRenderer(cfg),
		input:          NewInput(),
		debug:          &DebugState{},
		logger:         logger,
		lastUpdateTime: time.Now(),
		width:          int(cfg.FieldWidth),
		height:         int(cfg.FieldHeight),
	}
}

// Update advances the match by the wall-clock time since the last frame
func (g *Game) Update() error {
	// Calculate delta time
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime)
	g.lastUpdateTime = now

	// Clamp delta time to prevent large jumps
	if deltaTime > maxFrameTime {
		deltaTime = maxFrameTime
	}

	if g.input.Quit() {
		return ebiten.Termination
	}

	// F1 toggles the debug overlay
	if g.input.ToggleDebug() {
		g.debug.Enabled = !g.debug.Enabled
	}
	g.debug.Update(deltaTime)

	if g.match.Over() {
		if g.input.Restart(g.renderer.RestartButton()) {
			g.logger.Debug("restart requested")
			g.match.Restart()
		}
		return nil
	}

	g.match.Tick(context.Background(), deltaTime)
	return nil
}

// Draw renders the game
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{30, 110, 50, 255})
	st := g.match.Snapshot()
	g.renderer.Render(screen, st)
	if g.debug.Enabled {
		g.debug.Draw(screen, st)
	}
}

// Layout returns the game's screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
