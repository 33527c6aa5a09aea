package types

import "image/color"

// Vector is a point or offset in board space.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vector) Scale(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

// PieceColor is the display colour of a piece.
type PieceColor struct {
	Name string     `json:"name"`
	RGBA color.RGBA `json:"-"`
}

type Piece struct {
	// ID is the stable identifier of the piece, A through G
	ID string `json:"id"`
	// Outline is the polygon in the unit square, shared and never modified
	Outline []Vector `json:"outline"`
	// Color is used for display only
	Color PieceColor `json:"color"`
	// Position is the offset of the piece on the board
	Position Vector `json:"position"`
	// Rotation is one of 0, 90, 180 or 270 degrees
	Rotation int `json:"rotation"`
	// Flipped mirrors the piece about its vertical axis
	Flipped bool `json:"flipped"`
	// Selected is true for at most one piece
	Selected bool `json:"selected"`
	// StackOrder is the draw order, the highest value is on top
	StackOrder int `json:"stackOrder"`
}

// IsSolved reports whether the piece is at its solved pose.
func (p *Piece) IsSolved() bool {
	return p.Position.X == 0 &&
		p.Position.Y == 0 &&
		p.Rotation == 0 &&
		!p.Flipped
}

// ResetPose puts the piece back at its solved pose.
func (p *Piece) ResetPose() {
	p.Position = Vector{}
	p.Rotation = 0
	p.Flipped = false
}

// Copy returns a copy of the piece. The outline is shared since it is immutable.
func (p *Piece) Copy() *Piece {
	c := *p
	return &c
}

var (
	Red    = PieceColor{Name: "red", RGBA: color.RGBA{R: 255, A: 255}}
	Blue   = PieceColor{Name: "blue", RGBA: color.RGBA{B: 255, A: 255}}
	Green  = PieceColor{Name: "green", RGBA: color.RGBA{G: 128, A: 255}}
	Yellow = PieceColor{Name: "yellow", RGBA: color.RGBA{R: 255, G: 255, A: 255}}
	Purple = PieceColor{Name: "purple", RGBA: color.RGBA{R: 128, B: 128, A: 255}}
	Orange = PieceColor{Name: "orange", RGBA: color.RGBA{R: 255, G: 165, A: 255}}
	Pink   = PieceColor{Name: "pink", RGBA: color.RGBA{R: 255, G: 192, B: 203, A: 255}}
)

// DefaultPieces returns the seven pieces of the puzzle at their solved pose.
func DefaultPieces() []*Piece {
	defs := []struct {
		id      string
		color   PieceColor
		outline []Vector
	}{
		{"A", Red, []Vector{{0, 0}, {0.5, 0.5}, {0, 1}}},
		{"B", Blue, []Vector{{1, 0}, {1, 1}, {0.5, 0.5}}},
		{"C", Green, []Vector{{0.5, 0.5}, {1, 0}, {0.5, 0}}},
		{"D", Yellow, []Vector{{0, 0}, {0.25, 0.25}, {0.5, 0}}},
		{"E", Purple, []Vector{{0.5, 0}, {0.75, 0.25}, {1, 0}}},
		{"F", Orange, []Vector{{0.25, 0.25}, {0.5, 0.5}, {0.75, 0.25}, {0.5, 0}}},
		{"G", Pink, []Vector{{0.75, 0.25}, {1, 0.5}, {1, 1}, {0.5, 0.5}}},
	}

	pieces := make([]*Piece, len(defs))
	for i, d := range defs {
		pieces[i] = &Piece{
			ID:         d.id,
			Outline:    d.outline,
			Color:      d.color,
			StackOrder: i,
		}
	}
	return pieces
}
