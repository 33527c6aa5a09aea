package puzzle

import (
	"math/rand"
	"testing"
	"time"

	mocks "github.com/cbodonnell/tangram/mocks/github.com/cbodonnell/tangram/pkg/puzzle"
	"github.com/cbodonnell/tangram/pkg/puzzle/constants"
	"github.com/cbodonnell/tangram/pkg/puzzle/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeTicker struct {
	ch      chan time.Time
	stopped bool
}

func (f *fakeTicker) C() <-chan time.Time {
	return f.ch
}

func (f *fakeTicker) Stop() {
	f.stopped = true
}

type testHarness struct {
	manager *Manager
	now     time.Time
	tickers []*fakeTicker
}

func newTestHarness(t *testing.T, notifier Notifier) *testHarness {
	t.Helper()
	h := &testHarness{
		now: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	h.manager = NewManager(NewManagerOptions{
		Rand:  rand.New(rand.NewSource(7)),
		Clock: func() time.Time { return h.now },
		NewTicker: func(d time.Duration) Ticker {
			assert.Equal(t, constants.TickInterval, d)
			ticker := &fakeTicker{ch: make(chan time.Time, 8)}
			h.tickers = append(h.tickers, ticker)
			return ticker
		},
		Notifier: notifier,
	})
	return h
}

// advance moves the clock forward and delivers one tick to the live ticker.
func (h *testHarness) advance(d time.Duration) {
	h.now = h.now.Add(d)
	if ticker := h.liveTicker(); ticker != nil {
		ticker.ch <- h.now
	}
}

func (h *testHarness) liveTicker() *fakeTicker {
	if len(h.tickers) == 0 {
		return nil
	}
	last := h.tickers[len(h.tickers)-1]
	if last.stopped {
		return nil
	}
	return last
}

// scramble puts every piece off its solved pose without triggering completion.
func (h *testHarness) scramble() {
	for i, p := range h.manager.pieces {
		p.Position = types.Vector{X: float64(i%constants.GridSize) * constants.CellSize, Y: constants.CellSize}
		p.Rotation = 0
		p.Flipped = false
	}
}

// solveAllBut puts every piece except id at its solved pose.
func (h *testHarness) solveAllBut(id string) *types.Piece {
	var target *types.Piece
	for _, p := range h.manager.pieces {
		p.ResetPose()
		if p.ID == id {
			target = p
		}
	}
	return target
}

func selectedCount(snapshot *types.Snapshot) int {
	n := 0
	for _, p := range snapshot.Pieces {
		if p.Selected {
			n++
		}
	}
	return n
}

func TestNewManager_initialState(t *testing.T) {
	h := newTestHarness(t, nil)
	snapshot := h.manager.Snapshot()

	assert.Equal(t, types.PhaseIdle, snapshot.Phase)
	assert.Equal(t, 0, snapshot.Score)
	require.Len(t, snapshot.Pieces, 7)
	for i, p := range snapshot.Pieces {
		assert.Equal(t, string(rune('A'+i)), p.ID)
		assert.True(t, p.IsSolved())
		assert.Equal(t, i, p.StackOrder)
		assert.False(t, p.Selected)
	}
	assert.Empty(t, h.tickers)
}

func TestManager_StartGame_shuffle(t *testing.T) {
	h := newTestHarness(t, nil)

	rotations := map[int]int{}
	flips := map[bool]int{}
	for round := 0; round < 200; round++ {
		h.manager.StartGame()
		snapshot := h.manager.Snapshot()

		assert.Equal(t, types.PhasePlaying, snapshot.Phase)
		assert.Equal(t, 0, snapshot.ElapsedSeconds)
		assert.False(t, snapshot.HintVisible)
		assert.NotEmpty(t, snapshot.Round)
		for i, p := range snapshot.Pieces {
			for _, v := range []float64{p.Position.X, p.Position.Y} {
				assert.GreaterOrEqual(t, v, 0.0)
				assert.LessOrEqual(t, v, constants.MaxOffset)
				assert.Equal(t, v, Snap(v))
			}
			assert.Contains(t, []int{0, 90, 180, 270}, p.Rotation)
			assert.False(t, p.Selected)
			assert.Equal(t, i, p.StackOrder)
			rotations[p.Rotation]++
			flips[p.Flipped]++
		}
	}

	assert.Len(t, rotations, 4)
	for _, n := range rotations {
		assert.InDelta(t, 350, n, 100)
	}
	assert.InDelta(t, 700, flips[true], 150)
}

func TestManager_StartGame_newRoundEachTime(t *testing.T) {
	h := newTestHarness(t, nil)
	h.manager.StartGame()
	first := h.manager.Snapshot().Round
	h.manager.StartGame()
	second := h.manager.Snapshot().Round

	assert.NotEqual(t, first, second)
	require.Len(t, h.tickers, 2)
	assert.True(t, h.tickers[0].stopped)
	assert.False(t, h.tickers[1].stopped)
}

func TestManager_ShowAnswer(t *testing.T) {
	tests := []struct {
		name  string
		setup func(h *testHarness)
	}{
		{name: "from idle", setup: func(h *testHarness) {}},
		{name: "from playing", setup: func(h *testHarness) {
			h.manager.StartGame()
			h.scramble()
			h.manager.RotatePiece("C")
			h.manager.FlipPiece("D")
			h.manager.SetHintVisible(true)
		}},
		{name: "from solved", setup: func(h *testHarness) {
			h.manager.StartGame()
			h.manager.ShowAnswer()
		}},
		{name: "mid drag", setup: func(h *testHarness) {
			h.manager.StartGame()
			h.scramble()
			h.manager.BeginDrag("E", types.Vector{X: 10, Y: 60})
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHarness(t, nil)
			tt.setup(h)
			scoreBefore := h.manager.Snapshot().Score

			h.manager.ShowAnswer()
			snapshot := h.manager.Snapshot()

			assert.Equal(t, types.PhaseSolved, snapshot.Phase)
			assert.False(t, snapshot.HintVisible)
			assert.False(t, snapshot.Dragging)
			assert.Equal(t, scoreBefore, snapshot.Score)
			for i, p := range snapshot.Pieces {
				assert.True(t, p.IsSolved(), "piece %s", p.ID)
				assert.False(t, p.Selected)
				assert.Equal(t, i, p.StackOrder)
			}
			assert.Nil(t, h.liveTicker())
		})
	}
}

func TestManager_ShowAnswer_keepsElapsed(t *testing.T) {
	h := newTestHarness(t, nil)
	h.manager.StartGame()
	h.advance(5 * time.Second)
	h.manager.Poll()

	h.manager.ShowAnswer()

	assert.Equal(t, 5, h.manager.Snapshot().ElapsedSeconds)
}

func TestManager_Drag(t *testing.T) {
	h := newTestHarness(t, nil)
	h.manager.StartGame()
	h.scramble()
	piece := h.manager.piece("B")
	piece.Position = types.Vector{X: 100, Y: 150}

	// grab the piece 30 units right and 20 units below its origin
	h.manager.BeginDrag("B", types.Vector{X: 130, Y: 170})
	require.True(t, h.manager.Dragging())

	h.manager.UpdateDrag(types.Vector{X: 210, Y: 170})
	assert.Equal(t, types.Vector{X: 200, Y: 150}, piece.Position)

	h.manager.UpdateDrag(types.Vector{X: 154, Y: 194})
	assert.Equal(t, types.Vector{X: 100, Y: 150}, piece.Position)

	h.manager.UpdateDrag(types.Vector{X: 437, Y: -12})
	assert.Equal(t, types.Vector{X: 350, Y: 0}, piece.Position)

	h.manager.EndDrag()
	assert.False(t, h.manager.Dragging())

	h.manager.UpdateDrag(types.Vector{X: 0, Y: 0})
	assert.Equal(t, types.Vector{X: 350, Y: 0}, piece.Position)
}

func TestManager_Drag_clampScenario(t *testing.T) {
	h := newTestHarness(t, nil)
	h.manager.StartGame()
	h.scramble()
	piece := h.manager.piece("A")

	h.manager.BeginDrag("A", piece.Position)
	h.manager.UpdateDrag(types.Vector{X: 437, Y: -12})
	h.manager.EndDrag()

	assert.Equal(t, types.Vector{X: 350, Y: 0}, h.manager.Snapshot().Piece("A").Position)
}

func TestManager_RotatePiece_cycle(t *testing.T) {
	h := newTestHarness(t, nil)
	h.manager.StartGame()
	h.scramble()
	piece := h.manager.piece("F")
	piece.Rotation = 90

	var seen []int
	for i := 0; i < 4; i++ {
		h.manager.RotatePiece("F")
		seen = append(seen, piece.Rotation)
	}

	assert.Equal(t, []int{180, 270, 0, 90}, seen)
}

func TestManager_FlipPiece_toggles(t *testing.T) {
	h := newTestHarness(t, nil)
	h.manager.StartGame()
	h.scramble()

	h.manager.FlipPiece("G")
	assert.True(t, h.manager.piece("G").Flipped)
	h.manager.FlipPiece("G")
	assert.False(t, h.manager.piece("G").Flipped)
}

func TestManager_selectionExclusiveAndRaised(t *testing.T) {
	tests := []struct {
		name string
		act  func(m *Manager, id string)
	}{
		{name: "drag", act: func(m *Manager, id string) { m.BeginDrag(id, types.Vector{}) }},
		{name: "rotate", act: func(m *Manager, id string) { m.RotatePiece(id) }},
		{name: "flip", act: func(m *Manager, id string) { m.FlipPiece(id) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHarness(t, nil)
			h.manager.StartGame()
			h.scramble()

			for _, id := range []string{"A", "D", "G", "A", "C"} {
				tt.act(h.manager, id)
				h.manager.EndDrag()
				snapshot := h.manager.Snapshot()

				assert.Equal(t, 1, selectedCount(snapshot))
				selected, ok := h.manager.SelectedPiece()
				assert.True(t, ok)
				assert.Equal(t, id, selected)

				target := snapshot.Piece(id)
				for _, p := range snapshot.Pieces {
					if p.ID != id {
						assert.Less(t, p.StackOrder, target.StackOrder)
					}
				}
			}
		})
	}
}

func TestManager_ignoredOutsidePlaying(t *testing.T) {
	h := newTestHarness(t, nil)
	before := h.manager.Snapshot()

	h.manager.BeginDrag("A", types.Vector{X: 10, Y: 10})
	h.manager.UpdateDrag(types.Vector{X: 300, Y: 300})
	h.manager.EndDrag()
	h.manager.RotatePiece("A")
	h.manager.FlipPiece("A")

	assert.Equal(t, before, h.manager.Snapshot())

	h.manager.StartGame()
	h.manager.ShowAnswer()
	before = h.manager.Snapshot()
	h.manager.RotatePiece("B")
	h.manager.FlipPiece("B")
	h.manager.BeginDrag("B", types.Vector{})
	assert.Equal(t, before, h.manager.Snapshot())
}

func TestManager_unknownPiece(t *testing.T) {
	h := newTestHarness(t, nil)
	h.manager.StartGame()
	h.scramble()
	before := h.manager.Snapshot()

	h.manager.BeginDrag("Z", types.Vector{})
	h.manager.RotatePiece("Z")
	h.manager.FlipPiece("")
	h.manager.UpdateDrag(types.Vector{X: 100, Y: 100})
	h.manager.EndDrag()

	assert.Equal(t, before, h.manager.Snapshot())
	_, ok := h.manager.SelectedPiece()
	assert.False(t, ok)
}

func TestManager_SetHintVisible(t *testing.T) {
	h := newTestHarness(t, nil)

	h.manager.SetHintVisible(true)
	assert.True(t, h.manager.Snapshot().HintVisible)
	assert.Equal(t, types.PhaseIdle, h.manager.Phase())

	h.manager.StartGame()
	assert.False(t, h.manager.Snapshot().HintVisible)

	h.manager.SetHintVisible(true)
	h.manager.SetHintVisible(false)
	assert.False(t, h.manager.Snapshot().HintVisible)
}

func TestManager_completion(t *testing.T) {
	notifier := mocks.NewNotifier(t)
	h := newTestHarness(t, notifier)

	h.manager.StartGame()
	round := h.manager.Snapshot().Round
	target := h.solveAllBut("A")
	target.Rotation = 270
	h.advance(42 * time.Second)

	notifier.EXPECT().NotifyCompletion(types.Completion{
		Round:          round,
		Score:          1258,
		ElapsedSeconds: 42,
		TimeBonus:      258,
	}).Once()

	h.manager.RotatePiece("A")

	snapshot := h.manager.Snapshot()
	assert.Equal(t, types.PhaseSolved, snapshot.Phase)
	assert.Equal(t, 1258, snapshot.Score)
	assert.Equal(t, 42, snapshot.ElapsedSeconds)
	assert.Nil(t, h.liveTicker())

	// the time bonus never goes negative
	h.manager.StartGame()
	target = h.solveAllBut("B")
	target.Flipped = true
	h.advance(400 * time.Second)

	notifier.EXPECT().NotifyCompletion(mock.MatchedBy(func(c types.Completion) bool {
		return c.Score == 2258 && c.TimeBonus == 0 && c.ElapsedSeconds == 400
	})).Once()

	h.manager.FlipPiece("B")
	assert.Equal(t, 2258, h.manager.Snapshot().Score)
}

func TestManager_completion_afterDrag(t *testing.T) {
	notifier := mocks.NewNotifier(t)
	h := newTestHarness(t, notifier)

	h.manager.StartGame()
	target := h.solveAllBut("D")
	target.Position = types.Vector{X: 100, Y: 50}
	h.advance(10 * time.Second)

	h.manager.BeginDrag("D", types.Vector{X: 120, Y: 60})
	h.manager.UpdateDrag(types.Vector{X: 30, Y: 5})
	assert.Equal(t, types.PhasePlaying, h.manager.Phase(), "completion is only checked when the drag ends")

	notifier.EXPECT().NotifyCompletion(mock.MatchedBy(func(c types.Completion) bool {
		return c.Score == 1290
	})).Once()

	// the drag that lands the last piece completes the puzzle immediately
	h.manager.EndDrag()
	assert.Equal(t, types.PhaseSolved, h.manager.Phase())

	// a solved puzzle does not complete twice
	h.manager.EndDrag()
	h.manager.RotatePiece("D")
	assert.Equal(t, 1290, h.manager.Snapshot().Score)
}

func TestManager_scoreMonotonic(t *testing.T) {
	h := newTestHarness(t, nil)

	for _, elapsed := range []int{0, 120, 299, 300, 301, 1000} {
		h.manager.StartGame()
		target := h.solveAllBut("C")
		target.Rotation = 270
		h.advance(time.Duration(elapsed) * time.Second)

		before := h.manager.Snapshot().Score
		h.manager.RotatePiece("C")
		after := h.manager.Snapshot().Score

		assert.Equal(t, before+1000+max(0, 300-elapsed), after)
		assert.Greater(t, after, before)
	}
}

func TestManager_timer(t *testing.T) {
	h := newTestHarness(t, nil)

	h.manager.Poll()
	assert.Empty(t, h.tickers)

	h.manager.StartGame()
	h.scramble()
	h.advance(time.Second)
	h.advance(1500 * time.Millisecond)
	h.manager.Poll()
	assert.Equal(t, 2, h.manager.Snapshot().ElapsedSeconds)

	// a poll without a tick does not move the counter
	h.now = h.now.Add(5 * time.Second)
	h.manager.Poll()
	assert.Equal(t, 2, h.manager.Snapshot().ElapsedSeconds)

	h.advance(0)
	h.manager.Poll()
	assert.Equal(t, 7, h.manager.Snapshot().ElapsedSeconds)

	h.manager.ShowAnswer()
	require.Len(t, h.tickers, 1)
	assert.True(t, h.tickers[0].stopped)
	h.now = h.now.Add(30 * time.Second)
	h.manager.Poll()
	assert.Equal(t, 7, h.manager.Snapshot().ElapsedSeconds)

	h.manager.StartGame()
	assert.Equal(t, 0, h.manager.Snapshot().ElapsedSeconds)
	h.advance(3 * time.Second)
	h.manager.Poll()
	assert.Equal(t, 3, h.manager.Snapshot().ElapsedSeconds)
}

func TestManager_Close(t *testing.T) {
	h := newTestHarness(t, nil)
	h.manager.StartGame()
	h.manager.BeginDrag("A", types.Vector{})

	h.manager.Close()
	h.manager.Close()

	require.Len(t, h.tickers, 1)
	assert.True(t, h.tickers[0].stopped)
	assert.False(t, h.manager.Dragging())
}

func TestManager_Subscribe(t *testing.T) {
	h := newTestHarness(t, nil)

	var received []*types.Snapshot
	unsubscribe := h.manager.Subscribe(func(snapshot *types.Snapshot) {
		received = append(received, snapshot)
	})

	h.manager.StartGame()
	h.scramble()
	h.manager.RotatePiece("A")
	require.Len(t, received, 2)
	assert.Equal(t, types.PhasePlaying, received[0].Phase)

	// snapshots do not alias manager state
	received[1].Pieces[0].Position = types.Vector{X: 999, Y: 999}
	assert.NotEqual(t, types.Vector{X: 999, Y: 999}, h.manager.piece("A").Position)

	unsubscribe()
	h.manager.FlipPiece("A")
	assert.Len(t, received, 2)
}

func TestManager_PieceAt(t *testing.T) {
	h := newTestHarness(t, nil)

	id, ok := h.manager.PieceAt(types.Vector{X: 320, Y: 150})
	assert.True(t, ok)
	assert.Equal(t, "G", id)

	_, ok = h.manager.PieceAt(types.Vector{X: 150, Y: 390})
	assert.False(t, ok)
}
