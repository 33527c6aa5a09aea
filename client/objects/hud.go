package objects

import (
	"image/color"

	"github.com/cbodonnell/tangram/client/fonts"
	"github.com/cbodonnell/tangram/pkg/puzzle/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// HUDObject shows the score and the elapsed time centered on a line.
type HUDObject struct {
	*BaseObject

	centerX float64
	y       float64
	status  string
}

type NewHUDObjectOptions struct {
	// CenterX is the x-coordinate the text is centered on.
	CenterX float64
	// Y is the baseline of the text.
	Y float64
	// ZIndex is the z-index of the HUD.
	ZIndex int
}

func NewHUDObject(id string, opts NewHUDObjectOptions) *HUDObject {
	return &HUDObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		centerX: opts.CenterX,
		y:       opts.Y,
		status:  types.Session{}.Status(),
	}
}

func (o *HUDObject) SetSession(session types.Session) {
	o.status = session.Status()
}

func (o *HUDObject) Draw(screen *ebiten.Image) {
	f := fonts.TTFNormalFont
	bounds, _ := font.BoundString(f, o.status)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(o.centerX-float64((bounds.Max.X-bounds.Min.X)>>6)/2, o.y)
	op.ColorScale.ScaleWithColor(color.Black)
	text.DrawWithOptions(screen, o.status, f, op)
}
