package types

import (
	"fmt"
	"time"
)

type Phase uint8

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseSolved
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhasePlaying:
		return "Playing"
	case PhaseSolved:
		return "Solved"
	}
	return "Unknown"
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

type Session struct {
	// Round identifies the current attempt, empty until the first start
	Round string `json:"round"`
	// Phase is the top level mode of the session
	Phase Phase `json:"phase"`
	// StartedAt is the time the current round was started
	StartedAt time.Time `json:"startedAt"`
	// ElapsedSeconds is frozen once the phase leaves Playing
	ElapsedSeconds int `json:"elapsedSeconds"`
	// Score only ever grows
	Score int `json:"score"`
	// HintVisible is true while the hint control is held
	HintVisible bool `json:"hintVisible"`
}

// Status is the score and time line shown above the board.
func (s Session) Status() string {
	return fmt.Sprintf("Score: %d | Time: %ds", s.Score, s.ElapsedSeconds)
}

// DragSession tracks a pointer driven move of a single piece.
type DragSession struct {
	PieceID string
	// Offset is the pointer position relative to the piece position at drag start
	Offset Vector
}

// Snapshot is a read-only copy of the puzzle state handed to observers.
type Snapshot struct {
	Session
	Pieces   []*Piece `json:"pieces"`
	Dragging bool     `json:"dragging"`
}

// Piece returns the piece with the given ID, or nil.
func (s *Snapshot) Piece(id string) *Piece {
	for _, p := range s.Pieces {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Copy returns a deep copy of the snapshot.
func (s *Snapshot) Copy() *Snapshot {
	c := &Snapshot{
		Session:  s.Session,
		Pieces:   make([]*Piece, len(s.Pieces)),
		Dragging: s.Dragging,
	}
	for i, p := range s.Pieces {
		c.Pieces[i] = p.Copy()
	}
	return c
}

// Completion is emitted once every time the puzzle is solved by the player.
type Completion struct {
	Round          string `json:"round"`
	Score          int    `json:"score"`
	ElapsedSeconds int    `json:"elapsedSeconds"`
	TimeBonus      int    `json:"timeBonus"`
}

// Message is the congratulation shown to the player.
func (c Completion) Message() string {
	return fmt.Sprintf("Congratulations! Your score is %d. Time: %ds", c.Score, c.ElapsedSeconds)
}
