package objects

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/tangram/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	// DefaultBannerTTL is how long a banner stays on screen in milliseconds.
	DefaultBannerTTL = 5000
	bannerPadding    = 10
)

var bannerBackground = color.RGBA{R: 34, G: 197, B: 94, A: 230}

// BannerObject is a message box that removes itself from its parent once
// its time to live runs out.
type BannerObject struct {
	*BaseObject

	text    string
	centerX float64
	y       float64
	color   color.Color
	ttl     int
}

type NewBannerObjectOptions struct {
	// Text is the message to display.
	Text string
	// CenterX is the x-coordinate the banner is centered on.
	CenterX float64
	// Y is the top of the banner.
	Y float64
	// Color is the color of the text.
	Color color.Color
	// TTL is the time to live in milliseconds. Zero keeps the banner forever.
	TTL int
	// ZIndex is the z-index of the banner.
	ZIndex int
}

func NewBannerObject(id string, opts NewBannerObjectOptions) *BannerObject {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}

	return &BannerObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{
			ZIndex: opts.ZIndex,
		}),
		text:    opts.Text,
		centerX: opts.CenterX,
		y:       opts.Y,
		color:   clr,
		ttl:     opts.TTL,
	}
}

func (o *BannerObject) Update() error {
	if o.ttl > 0 {
		o.ttl -= 1000 / ebiten.TPS()
		if o.ttl <= 0 {
			if err := o.BaseObject.RemoveFromParent(); err != nil {
				return fmt.Errorf("failed to remove banner from parent: %w", err)
			}
		}
	}
	return nil
}

func (o *BannerObject) Draw(screen *ebiten.Image) {
	f := fonts.MPlusBannerFont
	bounds, _ := font.BoundString(f, o.text)
	w := float64((bounds.Max.X - bounds.Min.X) >> 6)
	h := float64((bounds.Max.Y - bounds.Min.Y) >> 6)
	left := o.centerX - w/2

	vector.DrawFilledRect(screen,
		float32(left-bannerPadding), float32(o.y),
		float32(w+2*bannerPadding), float32(h+2*bannerPadding),
		bannerBackground, false)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(left, o.y+bannerPadding-float64(bounds.Min.Y>>6))
	op.ColorScale.ScaleWithColor(o.color)
	text.DrawWithOptions(screen, o.text, f, op)
}
