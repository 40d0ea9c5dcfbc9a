package display

import (
	"fmt"
	"image/color"
	"time"

	"cannonfootball/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DebugState holds the overlay toggle and frame statistics
type DebugState struct {
	Enabled bool

	fps          float64
	frameTimer   time.Duration
	frameCounter int
}

// Update refreshes the FPS estimate every half second
func (d *DebugState) Update(deltaTime time.Duration) {
	d.frameTimer += deltaTime
	d.frameCounter++
	if d.frameTimer >= 500*time.Millisecond {
		d.fps = float64(d.frameCounter) / d.frameTimer.Seconds()
		d.frameCounter = 0
		d.frameTimer = 0
	}
}

// Draw shows hit circles, the ball's velocity and tick statistics
func (d *DebugState) Draw(screen *ebiten.Image, st game.State) {
	hit := color.RGBA{255, 255, 0, 255}
	b := st.Ball
	vector.StrokeCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius+st.Config.BulletRadius), 1, hit, true)
	for _, p := range st.Projectiles {
		vector.StrokeCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(st.Config.BulletRadius), 1, hit, true)
	}

	// Velocity is per tick; scale it up so it is visible
	const scale = 10
	vector.StrokeLine(screen,
		float32(b.Pos.X), float32(b.Pos.Y),
		float32(b.Pos.X+b.Vel.X*scale), float32(b.Pos.Y+b.Vel.Y*scale),
		2, color.RGBA{255, 0, 255, 255}, true)

	info := fmt.Sprintf("FPS: %.0f  tick: %d  round: %d\nball: (%.1f, %.1f) v=(%.2f, %.2f)\nprojectiles: %d",
		d.fps, st.Tick, st.Round,
		b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y,
		len(st.Projectiles))
	ebitenutil.DebugPrintAt(screen, info, 8, int(st.Config.FieldHeight)-52)
}
