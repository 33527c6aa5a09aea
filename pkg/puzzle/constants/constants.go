package constants

import "time"

const (
	// BoardSize is the width and height of the square board in board units
	BoardSize float64 = 400.0
	// GridSize is the number of grid cells along each side of the board
	GridSize int = 8
	// CellSize is the size of a single grid cell
	CellSize float64 = BoardSize / float64(GridSize)
	// MaxOffset is the largest position a piece can be dragged to on either axis
	MaxOffset float64 = BoardSize - CellSize
	// PlayAreaSize bounds every piece outline on either axis, the board plus
	// the furthest a piece can be moved off it
	PlayAreaSize float64 = BoardSize + MaxOffset

	// CompletionBonus is awarded for every solved puzzle
	CompletionBonus int = 1000
	// TimeBonusWindow is the number of seconds during which a time bonus is
	// still awarded, one point per second left
	TimeBonusWindow int = 300

	// TickInterval is how often the elapsed time is recomputed while playing
	TickInterval time.Duration = time.Second

	// RotationStep is the rotation applied by a single rotate action in degrees
	RotationStep int = 90
)
