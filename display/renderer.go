package display

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"cannonfootball/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	lineColor      = color.RGBA{255, 255, 255, 255}
	ballColor      = color.RGBA{255, 255, 255, 255}
	outlineColor   = color.RGBA{0, 0, 0, 255}
	powerColor     = color.RGBA{220, 30, 30, 255}
	precisionColor = color.RGBA{0, 0, 0, 255}
	overlayColor   = color.RGBA{0, 0, 0, 180}
	buttonColor    = color.RGBA{60, 60, 60, 255}
)

const (
	aimLength      = 40.0
	cannonRadius   = 15.0
	powerBarWidth  = 40.0
	powerBarHeight = 6.0
	lineSpacing    = 16.0
)

// Renderer draws match snapshots
type Renderer struct {
	cfg  game.Config
	face *text.GoXFace
}

// NewRenderer creates a new renderer for a field of cfg's size
func NewRenderer(cfg game.Config) *Renderer {
	return &Renderer{
		cfg:  cfg,
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// RestartButton is the clickable area of the game-over screen
func (r *Renderer) RestartButton() image.Rectangle {
	cx, cy := int(r.cfg.FieldWidth/2), int(r.cfg.FieldHeight/2)
	return image.Rect(cx-60, cy+50, cx+60, cy+80)
}

// Render draws the field, both cannons, projectiles, the ball and the HUD
func (r *Renderer) Render(screen *ebiten.Image, st game.State) {
	r.drawField(screen)
	for i := range st.Sides {
		r.drawCannon(screen, &st.Sides[i])
	}
	for _, p := range st.Projectiles {
		clr := precisionColor
		if p.Type == game.BulletPower {
			clr = powerColor
		}
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(r.cfg.BulletRadius), clr, true)
	}

	b := st.Ball
	vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), ballColor, true)
	vector.StrokeCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), 2, outlineColor, true)

	r.drawHUD(screen, st)
	if st.Over {
		r.drawGameOver(screen, st)
	}
}

func (r *Renderer) drawField(screen *ebiten.Image) {
	w, h := float32(r.cfg.FieldWidth), float32(r.cfg.FieldHeight)

	// Goal lines
	vector.StrokeLine(screen, 2, 0, 2, h, 4, lineColor, false)
	vector.StrokeLine(screen, w-2, 0, w-2, h, 4, lineColor, false)

	// Halfway line and centre circle
	vector.StrokeLine(screen, w/2, 0, w/2, h, 2, lineColor, false)
	vector.StrokeCircle(screen, w/2, h/2, 60, 2, lineColor, true)
}

func (r *Renderer) drawCannon(screen *ebiten.Image, s *game.Side) {
	clr := game.GetSideConfig(s.ID).Color
	x, y := s.Cannon.X, s.Cannon.Y

	rad := s.Angle * math.Pi / 180
	endX := x + math.Cos(rad)*aimLength
	endY := y - math.Sin(rad)*aimLength
	vector.StrokeLine(screen, float32(x), float32(y), float32(endX), float32(endY), 6, outlineColor, true)
	vector.DrawFilledCircle(screen, float32(x), float32(y), cannonRadius, clr, true)

	// Power bar above the cannon
	barX := float32(x - powerBarWidth/2)
	barY := float32(y - cannonRadius - 2*powerBarHeight - 20)
	vector.DrawFilledRect(screen, barX, barY, powerBarWidth, powerBarHeight, outlineColor, false)
	if s.Charging() {
		fill := float32(math.Min(s.Power/r.cfg.MaxPower, 1)) * powerBarWidth
		vector.DrawFilledRect(screen, barX, barY, fill, powerBarHeight, clr, false)
	}
	vector.StrokeRect(screen, barX, barY, powerBarWidth, powerBarHeight, 1, lineColor, false)

	r.drawText(screen, fmt.Sprintf("P:%d S:%d", s.PowerAmmo, s.PrecisionAmmo), x, y+cannonRadius+8, lineColor)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, st game.State) {
	left, right := st.Sides[game.SideLeft], st.Sides[game.SideRight]
	score := fmt.Sprintf("%s  %d - %d  %s",
		game.GetSideConfig(game.SideLeft).Label, left.Score,
		right.Score, game.GetSideConfig(game.SideRight).Label)
	r.drawText(screen, score, r.cfg.FieldWidth/2, 10, lineColor)
	r.drawText(screen, fmt.Sprintf("Time: %d", st.Countdown), r.cfg.FieldWidth/2, 10+lineSpacing, lineColor)
}

func (r *Renderer) drawGameOver(screen *ebiten.Image, st game.State) {
	w, h := float32(r.cfg.FieldWidth), float32(r.cfg.FieldHeight)
	vector.DrawFilledRect(screen, 0, 0, w, h, overlayColor, false)

	cx, cy := r.cfg.FieldWidth/2, r.cfg.FieldHeight/2
	winner := game.GetSideConfig(st.Winner)
	left, right := st.Sides[game.SideLeft], st.Sides[game.SideRight]

	r.drawText(screen, "GAME OVER", cx, cy-60, lineColor)
	r.drawText(screen, winner.Label+" wins", cx, cy-40, winner.Color)
	r.drawText(screen, fmt.Sprintf("Score: %d - %d", left.Score, right.Score), cx, cy-10, lineColor)
	r.drawText(screen, fmt.Sprintf("Bullets used: %d - %d", left.AmmoUsed, right.AmmoUsed), cx, cy+10, lineColor)

	btn := r.RestartButton()
	vector.DrawFilledRect(screen, float32(btn.Min.X), float32(btn.Min.Y), float32(btn.Dx()), float32(btn.Dy()), buttonColor, false)
	vector.StrokeRect(screen, float32(btn.Min.X), float32(btn.Min.Y), float32(btn.Dx()), float32(btn.Dy()), 2, lineColor, false)
	r.drawText(screen, "Restart (R)", cx, float64(btn.Min.Y)+8, lineColor)
}

// drawText draws s horizontally centred on x with its top at y
func (r *Renderer) drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.LineSpacing = lineSpacing
	text.Draw(screen, s, r.face, op)
}
