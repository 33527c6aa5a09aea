package objects

import (
	_ "image/jpeg"
	_ "image/png"

	"github.com/cbodonnell/tangram/pkg/log"
	"github.com/cbodonnell/tangram/pkg/puzzle"
	"github.com/cbodonnell/tangram/pkg/puzzle/constants"
	"github.com/cbodonnell/tangram/pkg/puzzle/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const hintAlpha = 0.5

// HintObject is a translucent overlay of the solution drawn above the pieces
// while the hint control is held.
type HintObject struct {
	*BaseObject

	origin    types.Vector
	imagePath string
	image     *ebiten.Image
	solution  []*types.Piece
	visible   bool
}

type NewHintObjectOptions struct {
	// Origin is the screen position of the top left corner of the board.
	Origin types.Vector
	// ImagePath is an optional image of the solution. When empty the solved
	// outlines of the pieces are drawn instead.
	ImagePath string
	// ZIndex is the z-index of the hint.
	ZIndex int
}

func NewHintObject(id string, opts NewHintObjectOptions) *HintObject {
	return &HintObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		origin:    opts.Origin,
		imagePath: opts.ImagePath,
		solution:  types.DefaultPieces(),
	}
}

func (o *HintObject) Init() error {
	if o.imagePath == "" || o.image != nil {
		return nil
	}
	img, _, err := ebitenutil.NewImageFromFile(o.imagePath)
	if err != nil {
		log.Warn("Failed to load hint image %s, showing the solved outlines instead: %v", o.imagePath, err)
		return nil
	}
	o.image = img
	log.Debug("Loaded hint image %s", o.imagePath)
	return nil
}

func (o *HintObject) SetVisible(visible bool) {
	o.visible = visible
}

func (o *HintObject) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	if o.image != nil {
		o.drawImage(screen)
		return
	}
	for _, p := range o.solution {
		fillPolygon(screen, puzzle.TransformOutline(p), o.origin, p.Color.RGBA, hintAlpha)
	}
}

// drawImage scales the image to fit the board while keeping its aspect ratio.
func (o *HintObject) drawImage(screen *ebiten.Image) {
	w, h := o.image.Bounds().Dx(), o.image.Bounds().Dy()
	if w == 0 || h == 0 {
		return
	}
	scale := min(constants.BoardSize/float64(w), constants.BoardSize/float64(h))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(o.origin.X, o.origin.Y)
	op.ColorScale.ScaleAlpha(hintAlpha)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(o.image, op)
}
