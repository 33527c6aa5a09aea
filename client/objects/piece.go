package objects

import (
	"image/color"

	"github.com/cbodonnell/tangram/pkg/puzzle"
	"github.com/cbodonnell/tangram/pkg/puzzle/types"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	pieceBorderWidth         = 1
	selectedPieceBorderWidth = 3
)

// PieceObject draws one piece at its current pose. Its z-index follows the
// piece's stack order so that the most recently touched piece is on top.
type PieceObject struct {
	*BaseObject

	piece  *types.Piece
	origin types.Vector
}

func NewPieceObject(piece *types.Piece, origin types.Vector) *PieceObject {
	return &PieceObject{
		BaseObject: NewBaseObject(PieceObjectID(piece.ID), &NewBaseObjectOpts{
			ZIndex: piece.StackOrder,
		}),
		piece:  piece,
		origin: origin,
	}
}

// PieceObjectID is the object id of the piece with the given id.
func PieceObjectID(pieceID string) string {
	return "piece-" + pieceID
}

// SetPiece replaces the drawn pose with a newer copy of the piece.
func (o *PieceObject) SetPiece(piece *types.Piece) {
	o.piece = piece
	o.SetZIndex(piece.StackOrder)
}

func (o *PieceObject) Draw(screen *ebiten.Image) {
	outline := puzzle.TransformOutline(o.piece)
	fillPolygon(screen, outline, o.origin, o.piece.Color.RGBA, 1)

	if o.piece.Selected {
		strokePolygon(screen, outline, o.origin, selectedPieceBorderWidth, color.White)
		return
	}
	strokePolygon(screen, outline, o.origin, pieceBorderWidth, color.Black)
}
