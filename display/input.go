package display

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input reads the few keys and clicks the window reacts to
type Input struct{}

// NewInput creates a new input reader
func NewInput() *Input {
	return &Input{}
}

// Quit returns true when Escape was pressed this frame
func (in *Input) Quit() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

// ToggleDebug returns true when F1 was pressed this frame
func (in *Input) ToggleDebug() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF1)
}

// Restart returns true when R was pressed or button was clicked this frame
func (in *Input) Restart(button image.Rectangle) bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		return true
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y).In(button)
}
