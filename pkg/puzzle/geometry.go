package puzzle

import (
	"math"

	"github.com/cbodonnell/tangram/pkg/puzzle/constants"
	"github.com/cbodonnell/tangram/pkg/puzzle/types"
	"github.com/solarlune/resolv"
)

// Clamp limits a board coordinate to the range a piece position may take.
func Clamp(v float64) float64 {
	return math.Max(0, math.Min(v, constants.MaxOffset))
}

// Snap rounds a board coordinate to the nearest grid line.
func Snap(v float64) float64 {
	return math.Round(v/constants.CellSize) * constants.CellSize
}

// ResolvePosition clamps and then snaps both axes of a candidate piece position.
func ResolvePosition(p types.Vector) types.Vector {
	return types.Vector{
		X: Snap(Clamp(p.X)),
		Y: Snap(Clamp(p.Y)),
	}
}

// quarterTurns maps a rotation in degrees to exact cos/sin values.
var quarterTurns = map[int][2]float64{
	0:   {1, 0},
	90:  {0, 1},
	180: {-1, 0},
	270: {0, -1},
}

// TransformOutline returns the outline of a piece in board space.
// The outline covers a board sized square offset by the piece position.
// Flip and rotation are applied about the centre of that square, flip first.
func TransformOutline(piece *types.Piece) []types.Vector {
	trig, ok := quarterTurns[piece.Rotation]
	if !ok {
		rad := float64(piece.Rotation) * math.Pi / 180
		trig = [2]float64{math.Cos(rad), math.Sin(rad)}
	}
	cos, sin := trig[0], trig[1]

	half := constants.BoardSize / 2
	out := make([]types.Vector, len(piece.Outline))
	for i, p := range piece.Outline {
		x := p.X*constants.BoardSize - half
		y := p.Y*constants.BoardSize - half
		if piece.Flipped {
			x = -x
		}
		// y grows downwards so this rotates clockwise on screen
		rx := x*cos - y*sin
		ry := x*sin + y*cos
		out[i] = types.Vector{
			X: rx + half + piece.Position.X,
			Y: ry + half + piece.Position.Y,
		}
	}
	return out
}

// Contains reports whether a board space point lies inside the piece outline.
func Contains(piece *types.Piece, point types.Vector) bool {
	outline := TransformOutline(piece)
	if len(outline) < 3 {
		return false
	}
	points := make([]float64, 0, len(outline)*2)
	for _, v := range outline {
		points = append(points, v.X, v.Y)
	}
	polygon := resolv.NewConvexPolygon(0, 0, points...)
	return polygon.PointInside(resolv.NewVector(point.X, point.Y))
}

// PieceAt returns the topmost piece whose outline contains the point, or nil.
func PieceAt(pieces []*types.Piece, point types.Vector) *types.Piece {
	var top *types.Piece
	for _, p := range pieces {
		if top != nil && p.StackOrder <= top.StackOrder {
			continue
		}
		if Contains(p, point) {
			top = p
		}
	}
	return top
}

// IsSolved reports whether every piece is at its solved pose.
func IsSolved(pieces []*types.Piece) bool {
	for _, p := range pieces {
		if !p.IsSolved() {
			return false
		}
	}
	return true
}
