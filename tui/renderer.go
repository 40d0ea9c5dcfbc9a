package tui

import (
	"fmt"

	"cannonfootball/game"

	"github.com/gdamore/tcell/v2"
)

// hudRows is the number of terminal rows above the field
const hudRows = 1

var (
	lineStyle      = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	ballStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	powerStyle     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	precisionStyle = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	hudStyle       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	overStyle      = tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true)
)

// Renderer draws match snapshots into a terminal, scaling the field to the
// screen size.
type Renderer struct{}

// NewRenderer creates a new terminal renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw renders st and shows the result
func (r *Renderer) Draw(screen tcell.Screen, st game.State) {
	screen.Clear()
	cols, rows := screen.Size()
	if cols < 10 || rows <= hudRows+2 {
		screen.Show()
		return
	}

	cfg := st.Config
	toCell := func(p game.Vec2) (int, int) {
		x := int(p.X / cfg.FieldWidth * float64(cols))
		y := hudRows + int(p.Y/cfg.FieldHeight*float64(rows-hudRows))
		return clamp(x, 0, cols-1), clamp(y, hudRows, rows-1)
	}

	// Goal lines and halfway line
	for y := hudRows; y < rows; y++ {
		screen.SetContent(0, y, '|', nil, lineStyle)
		screen.SetContent(cols-1, y, '|', nil, lineStyle)
		screen.SetContent(cols/2, y, ':', nil, lineStyle)
	}

	for _, s := range st.Sides {
		x, y := toCell(s.Cannon)
		ch := 'L'
		if s.ID == game.SideRight {
			ch = 'R'
		}
		style := tcell.StyleDefault.Foreground(sideColor(s.ID))
		if s.Charging() {
			style = style.Reverse(true)
		}
		screen.SetContent(x, y, ch, nil, style)
	}

	for _, p := range st.Projectiles {
		x, y := toCell(p.Pos)
		if p.Type == game.BulletPower {
			screen.SetContent(x, y, '*', nil, powerStyle)
		} else {
			screen.SetContent(x, y, '+', nil, precisionStyle)
		}
	}

	bx, by := toCell(st.Ball.Pos)
	screen.SetContent(bx, by, 'O', nil, ballStyle)

	left, right := st.Sides[game.SideLeft], st.Sides[game.SideRight]
	hud := fmt.Sprintf("L %d - %d R  time %d  ammo %d/%d | %d/%d",
		left.Score, right.Score, st.Countdown,
		left.PowerAmmo, left.PrecisionAmmo, right.PowerAmmo, right.PrecisionAmmo)
	drawString(screen, 0, 0, hud, hudStyle)

	if st.Over {
		winner := game.GetSideConfig(st.Winner).Label
		msg := fmt.Sprintf(" %s wins (bullets %d - %d)  r: restart  q: quit ", winner, left.AmmoUsed, right.AmmoUsed)
		drawString(screen, max(0, (cols-len(msg))/2), rows/2, msg, overStyle)
	}

	screen.Show()
}

func sideColor(id game.SideID) tcell.Color {
	c := game.GetSideConfig(id).Color
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func drawString(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
