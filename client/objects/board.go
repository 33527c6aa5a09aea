package objects

import (
	"image/color"

	"github.com/cbodonnell/tangram/pkg/puzzle/constants"
	"github.com/cbodonnell/tangram/pkg/puzzle/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	boardBackground = color.White
	gridLineColor   = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	boardBorder     = color.Black
)

// BoardObject draws the board background, the grid and the border.
type BoardObject struct {
	*BaseObject

	origin types.Vector
}

type NewBoardObjectOptions struct {
	// Origin is the screen position of the top left corner of the board.
	Origin types.Vector
	// ZIndex is the z-index of the board.
	ZIndex int
}

func NewBoardObject(id string, opts NewBoardObjectOptions) *BoardObject {
	return &BoardObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		origin: opts.Origin,
	}
}

func (o *BoardObject) Draw(screen *ebiten.Image) {
	x, y := float32(o.origin.X), float32(o.origin.Y)
	size := float32(constants.BoardSize)

	vector.DrawFilledRect(screen, x, y, size, size, boardBackground, false)
	for i := 0; i <= constants.GridSize; i++ {
		offset := float32(i) * float32(constants.CellSize)
		vector.StrokeLine(screen, x+offset, y, x+offset, y+size, 1, gridLineColor, false)
		vector.StrokeLine(screen, x, y+offset, x+size, y+offset, 1, gridLineColor, false)
	}
	vector.StrokeRect(screen, x, y, size, size, 1, boardBorder, false)
}
