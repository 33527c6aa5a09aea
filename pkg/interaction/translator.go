package interaction

import (
	"github.com/cbodonnell/tangram/pkg/log"
	"github.com/cbodonnell/tangram/pkg/puzzle"
	"github.com/cbodonnell/tangram/pkg/puzzle/constants"
	"github.com/cbodonnell/tangram/pkg/puzzle/types"
)

const (
	// KeyRotate rotates the focused piece
	KeyRotate = "r"
	// KeyFlip flips the focused piece
	KeyFlip = "f"
)

// Puzzle is the set of puzzle operations driven by user input.
type Puzzle interface {
	StartGame()
	ShowAnswer()
	BeginDrag(pieceID string, pointer types.Vector)
	UpdateDrag(pointer types.Vector)
	EndDrag()
	RotatePiece(pieceID string)
	FlipPiece(pieceID string)
	SetHintVisible(visible bool)
	Phase() types.Phase
	Dragging() bool
	SelectedPiece() (string, bool)
	PieceAt(point types.Vector) (string, bool)
}

var _ Puzzle = &puzzle.Manager{}

// PointerState is the state of the primary pointer for a single frame.
type PointerState struct {
	// Position is the pointer position in screen space.
	Position types.Vector
	// JustPressed is true on the frame the pointer went down.
	JustPressed bool
	// Pressed is true while the pointer is held down.
	Pressed bool
	// JustReleased is true on the frame the pointer went up.
	JustReleased bool
}

// Translator turns raw pointer and keyboard events in screen space into
// puzzle operations in board space.
type Translator struct {
	puzzle Puzzle
	// origin is the screen position of the top left corner of the board
	origin types.Vector
	// pointerInArea is whether the pointer was over the play area last frame
	pointerInArea bool
}

func NewTranslator(p Puzzle, origin types.Vector) *Translator {
	return &Translator{
		puzzle: p,
		origin: origin,
	}
}

// BoardSpace converts a screen position to board space.
func (t *Translator) BoardSpace(screen types.Vector) types.Vector {
	return screen.Sub(t.origin)
}

// InBoard reports whether a screen position lies over the board.
func (t *Translator) InBoard(screen types.Vector) bool {
	p := t.BoardSpace(screen)
	return p.X >= 0 && p.Y >= 0 && p.X < constants.BoardSize && p.Y < constants.BoardSize
}

// InPlayArea reports whether a screen position lies over the board or over
// any piece, wherever the piece has been moved to. Pieces never reach past
// PlayAreaSize on either axis.
func (t *Translator) InPlayArea(screen types.Vector) bool {
	p := t.BoardSpace(screen)
	if p.X < 0 || p.Y < 0 || p.X >= constants.PlayAreaSize || p.Y >= constants.PlayAreaSize {
		return false
	}
	if t.InBoard(screen) {
		return true
	}
	_, ok := t.puzzle.PieceAt(p)
	return ok
}

// Pointer feeds one frame of primary pointer state. Presses and moves only
// count over the play area, and a drag ends when the pointer is released or
// leaves the play area.
func (t *Translator) Pointer(state PointerState) {
	inArea := t.InPlayArea(state.Position)

	if state.JustPressed && inArea {
		t.PointerDown(state.Position)
	}
	if state.Pressed && inArea {
		t.PointerMove(state.Position)
	}
	if state.JustReleased {
		t.PointerUp()
	}
	if t.pointerInArea && !inArea {
		t.PointerLeave()
	}
	t.pointerInArea = inArea
}

func (t *Translator) playing() bool {
	return t.puzzle.Phase() == types.PhasePlaying
}

// PointerDown starts dragging the topmost piece under the pointer.
// It returns false when nothing was grabbed.
func (t *Translator) PointerDown(screen types.Vector) bool {
	if !t.playing() {
		return false
	}
	point := t.BoardSpace(screen)
	pieceID, ok := t.puzzle.PieceAt(point)
	if !ok {
		return false
	}
	t.puzzle.BeginDrag(pieceID, point)
	return true
}

func (t *Translator) PointerMove(screen types.Vector) {
	if !t.playing() || !t.puzzle.Dragging() {
		return
	}
	t.puzzle.UpdateDrag(t.BoardSpace(screen))
}

func (t *Translator) PointerUp() {
	t.endDrag()
}

// PointerLeave is called when the pointer leaves the play area.
func (t *Translator) PointerLeave() {
	t.endDrag()
}

func (t *Translator) endDrag() {
	if !t.playing() || !t.puzzle.Dragging() {
		return
	}
	t.puzzle.EndDrag()
}

// SecondaryAction flips the piece under the pointer. It returns true when
// the event was consumed and the platform default must be suppressed.
func (t *Translator) SecondaryAction(screen types.Vector) bool {
	if !t.playing() {
		return false
	}
	pieceID, ok := t.puzzle.PieceAt(t.BoardSpace(screen))
	if !ok {
		return false
	}
	t.puzzle.FlipPiece(pieceID)
	return true
}

// Key handles a key pressed while a piece has keyboard focus.
func (t *Translator) Key(pieceID string, key string) {
	if !t.playing() {
		return
	}
	switch key {
	case KeyRotate:
		t.puzzle.RotatePiece(pieceID)
	case KeyFlip:
		t.puzzle.FlipPiece(pieceID)
	default:
		log.Trace("Ignoring key %q on piece %s", key, pieceID)
	}
}

// FocusedKey sends a key to the focused piece, which is the selected one.
func (t *Translator) FocusedKey(key string) {
	pieceID, ok := t.puzzle.SelectedPiece()
	if !ok {
		return
	}
	t.Key(pieceID, key)
}

// RotateSelected is the dedicated rotate control.
func (t *Translator) RotateSelected() {
	if !t.playing() {
		return
	}
	pieceID, ok := t.puzzle.SelectedPiece()
	if !ok {
		return
	}
	t.puzzle.RotatePiece(pieceID)
}

func (t *Translator) HintPressed() {
	t.puzzle.SetHintVisible(true)
}

func (t *Translator) HintReleased() {
	t.puzzle.SetHintVisible(false)
}

// HintLeave is called when the pointer leaves the hint control.
func (t *Translator) HintLeave() {
	t.puzzle.SetHintVisible(false)
}

func (t *Translator) Start() {
	t.puzzle.StartGame()
}

func (t *Translator) ShowAnswer() {
	t.puzzle.ShowAnswer()
}
