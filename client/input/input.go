package input

import (
	"github.com/cbodonnell/tangram/pkg/interaction"
	"github.com/cbodonnell/tangram/pkg/puzzle/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// touchID is the touch currently acting as the primary pointer.
var touchID ebiten.TouchID = -1

// PollPointer reads the primary pointer. It follows the left mouse button,
// or the first touch when there is one.
func PollPointer() interaction.PointerState {
	if p, ok := pollTouch(); ok {
		return p
	}

	x, y := ebiten.CursorPosition()
	return interaction.PointerState{
		Position:     types.Vector{X: float64(x), Y: float64(y)},
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}

func pollTouch() (interaction.PointerState, bool) {
	if touchID >= 0 && inpututil.IsTouchJustReleased(touchID) {
		x, y := inpututil.TouchPositionInPreviousTick(touchID)
		touchID = -1
		return interaction.PointerState{
			Position:     types.Vector{X: float64(x), Y: float64(y)},
			JustReleased: true,
		}, true
	}

	justPressed := false
	if touchID < 0 {
		touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
		if len(touchIDs) == 0 {
			return interaction.PointerState{}, false
		}
		touchID = touchIDs[0]
		justPressed = true
	}

	x, y := ebiten.TouchPosition(touchID)
	return interaction.PointerState{
		Position:    types.Vector{X: float64(x), Y: float64(y)},
		JustPressed: justPressed,
		Pressed:     true,
	}, true
}

// IsSecondaryJustPressed reports whether the secondary action was just
// triggered, which is the right mouse button.
func IsSecondaryJustPressed() bool {
	return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
}

// JustPressedPieceKeys returns the piece keys pressed this frame in the form
// understood by interaction.Translator.Key.
func JustPressedPieceKeys() []string {
	var keys []string
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		keys = append(keys, interaction.KeyRotate)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		keys = append(keys, interaction.KeyFlip)
	}
	return keys
}
