package objects

import (
	"image"
	"image/color"

	"github.com/cbodonnell/tangram/pkg/puzzle/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	// whiteSubImage is the source texture for filled triangles
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// fillPolygon fills a convex or concave polygon given in board space.
func fillPolygon(screen *ebiten.Image, points []types.Vector, origin types.Vector, clr color.RGBA, alpha float32) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(origin.X+points[0].X), float32(origin.Y+points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(float32(origin.X+p.X), float32(origin.Y+p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 0xff * alpha
		vs[i].ColorG = float32(clr.G) / 0xff * alpha
		vs[i].ColorB = float32(clr.B) / 0xff * alpha
		vs[i].ColorA = float32(clr.A) / 0xff * alpha
	}
	screen.DrawTriangles(vs, is, whiteSubImage, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// strokePolygon draws the closed outline of a polygon given in board space.
func strokePolygon(screen *ebiten.Image, points []types.Vector, origin types.Vector, width float32, clr color.Color) {
	for i, p := range points {
		q := points[(i+1)%len(points)]
		vector.StrokeLine(screen,
			float32(origin.X+p.X), float32(origin.Y+p.Y),
			float32(origin.X+q.X), float32(origin.Y+q.Y),
			width, clr, true)
	}
}
