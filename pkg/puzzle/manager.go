package puzzle

import (
	"math/rand"
	"time"

	"github.com/cbodonnell/tangram/pkg/log"
	"github.com/cbodonnell/tangram/pkg/puzzle/constants"
	"github.com/cbodonnell/tangram/pkg/puzzle/types"
	"github.com/google/uuid"
)

// Manager owns the puzzle state and is the only place it is mutated.
// It is not safe for concurrent use: every method must be called from the
// goroutine driving the game loop.
type Manager struct {
	rng       *rand.Rand
	clock     Clock
	newTicker NewTickerFunc
	notifier  Notifier
	logger    *log.Logger

	session types.Session
	pieces  []*types.Piece
	drag    *types.DragSession
	// ticker is only held while the phase is Playing
	ticker Ticker
	// nextStackOrder is handed out to the next piece raised to the front
	nextStackOrder int

	subscribers      []subscriber
	nextSubscriberID int
}

type subscriber struct {
	id int
	fn func(snapshot *types.Snapshot)
}

// NewManagerOptions contains options for creating a new Manager.
// Nil fields are replaced with production defaults.
type NewManagerOptions struct {
	// Rand is the source used to shuffle pieces on start
	Rand *rand.Rand
	// Clock returns the current time
	Clock Clock
	// NewTicker creates the elapsed time ticker
	NewTicker NewTickerFunc
	// Notifier is told about every completed puzzle
	Notifier Notifier
}

func NewManager(opts NewManagerOptions) *Manager {
	m := &Manager{
		rng:       opts.Rand,
		clock:     opts.Clock,
		newTicker: opts.NewTicker,
		notifier:  opts.Notifier,
		logger:    log.Default(),
		pieces:    types.DefaultPieces(),
	}
	if m.rng == nil {
		m.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if m.clock == nil {
		m.clock = time.Now
	}
	if m.newTicker == nil {
		m.newTicker = NewTimeTicker
	}
	if m.notifier == nil {
		m.notifier = nopNotifier{}
	}
	m.nextStackOrder = len(m.pieces)
	return m
}

// StartGame shuffles the pieces and starts a new round from any phase.
func (m *Manager) StartGame() {
	m.stopTicker()
	m.drag = nil

	m.session.Round = uuid.NewString()
	m.session.Phase = types.PhasePlaying
	m.session.StartedAt = m.clock()
	m.session.ElapsedSeconds = 0
	m.session.HintVisible = false
	m.logger = log.WithFields(log.Fields{"round": m.session.Round})

	for i, p := range m.pieces {
		p.Position = types.Vector{
			X: float64(m.rng.Intn(constants.GridSize)) * constants.CellSize,
			Y: float64(m.rng.Intn(constants.GridSize)) * constants.CellSize,
		}
		p.Rotation = m.rng.Intn(360/constants.RotationStep) * constants.RotationStep
		p.Flipped = m.rng.Float64() < 0.5
		p.Selected = false
		p.StackOrder = i
	}
	m.nextStackOrder = len(m.pieces)

	m.ticker = m.newTicker(constants.TickInterval)
	m.logger.Info("Round started with score %d", m.session.Score)
	m.publish()
}

// ShowAnswer puts every piece at its solved pose and stops the round
// without awarding any score.
func (m *Manager) ShowAnswer() {
	m.stopTicker()
	m.drag = nil

	m.session.Phase = types.PhaseSolved
	m.session.HintVisible = false
	for i, p := range m.pieces {
		p.ResetPose()
		p.Selected = false
		p.StackOrder = i
	}
	m.nextStackOrder = len(m.pieces)

	m.logger.Info("Answer shown after %ds", m.session.ElapsedSeconds)
	m.publish()
}

// BeginDrag starts moving a piece. pointer is in board space.
func (m *Manager) BeginDrag(pieceID string, pointer types.Vector) {
	if m.session.Phase != types.PhasePlaying {
		return
	}
	piece := m.piece(pieceID)
	if piece == nil {
		m.logger.Debug("Ignoring drag of unknown piece %q", pieceID)
		return
	}

	m.drag = &types.DragSession{
		PieceID: piece.ID,
		Offset:  pointer.Sub(piece.Position),
	}
	m.selectPiece(piece)
	m.raise(piece)
	m.logger.Trace("Drag of piece %s started at (%.1f, %.1f)", piece.ID, pointer.X, pointer.Y)
	m.publish()
}

// UpdateDrag moves the dragged piece so that it keeps its offset to the
// pointer, clamped to the board and snapped to the grid.
func (m *Manager) UpdateDrag(pointer types.Vector) {
	if m.drag == nil {
		return
	}
	piece := m.piece(m.drag.PieceID)
	if piece == nil {
		return
	}

	position := ResolvePosition(pointer.Sub(m.drag.Offset))
	if position == piece.Position {
		return
	}
	piece.Position = position
	m.publish()
}

// EndDrag finishes the current drag and checks whether the puzzle is solved.
func (m *Manager) EndDrag() {
	if m.drag == nil {
		return
	}
	m.logger.Trace("Drag of piece %s ended", m.drag.PieceID)
	m.drag = nil
	m.evaluateCompletion()
	m.publish()
}

// RotatePiece turns a piece clockwise by a quarter turn.
func (m *Manager) RotatePiece(pieceID string) {
	if m.session.Phase != types.PhasePlaying {
		return
	}
	piece := m.piece(pieceID)
	if piece == nil {
		m.logger.Debug("Ignoring rotation of unknown piece %q", pieceID)
		return
	}

	piece.Rotation = (piece.Rotation + constants.RotationStep) % 360
	m.selectPiece(piece)
	m.raise(piece)
	m.evaluateCompletion()
	m.publish()
}

// FlipPiece mirrors a piece about its vertical axis.
func (m *Manager) FlipPiece(pieceID string) {
	if m.session.Phase != types.PhasePlaying {
		return
	}
	piece := m.piece(pieceID)
	if piece == nil {
		m.logger.Debug("Ignoring flip of unknown piece %q", pieceID)
		return
	}

	piece.Flipped = !piece.Flipped
	m.selectPiece(piece)
	m.raise(piece)
	m.evaluateCompletion()
	m.publish()
}

// SetHintVisible shows or hides the hint overlay in any phase.
func (m *Manager) SetHintVisible(visible bool) {
	if m.session.HintVisible == visible {
		return
	}
	m.session.HintVisible = visible
	m.publish()
}

// Poll drains pending timer ticks and refreshes the elapsed time.
// It never blocks and should be called once per frame.
func (m *Manager) Poll() {
	if m.ticker == nil {
		return
	}

	ticked := false
drain:
	for {
		select {
		case <-m.ticker.C():
			ticked = true
		default:
			break drain
		}
	}
	if !ticked || m.session.Phase != types.PhasePlaying {
		return
	}

	elapsed := m.session.ElapsedSeconds
	m.refreshElapsed()
	if elapsed != m.session.ElapsedSeconds {
		m.publish()
	}
}

// Close releases the timer. It is safe to call more than once.
func (m *Manager) Close() {
	m.stopTicker()
	m.drag = nil
}

// Subscribe registers fn to be called with a fresh snapshot after every
// state change. The returned function removes the subscription.
func (m *Manager) Subscribe(fn func(snapshot *types.Snapshot)) func() {
	id := m.nextSubscriberID
	m.nextSubscriberID++
	m.subscribers = append(m.subscribers, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range m.subscribers {
			if s.id == id {
				m.subscribers = append(m.subscribers[:i], m.subscribers[i+1:]...)
				return
			}
		}
	}
}

// Snapshot returns a copy of the current state.
func (m *Manager) Snapshot() *types.Snapshot {
	snapshot := &types.Snapshot{
		Session:  m.session,
		Pieces:   make([]*types.Piece, len(m.pieces)),
		Dragging: m.drag != nil,
	}
	for i, p := range m.pieces {
		snapshot.Pieces[i] = p.Copy()
	}
	return snapshot
}

func (m *Manager) Phase() types.Phase {
	return m.session.Phase
}

func (m *Manager) Dragging() bool {
	return m.drag != nil
}

// SelectedPiece returns the ID of the selected piece, if any.
func (m *Manager) SelectedPiece() (string, bool) {
	for _, p := range m.pieces {
		if p.Selected {
			return p.ID, true
		}
	}
	return "", false
}

// PieceAt returns the ID of the topmost piece under a board space point.
func (m *Manager) PieceAt(point types.Vector) (string, bool) {
	piece := PieceAt(m.pieces, point)
	if piece == nil {
		return "", false
	}
	return piece.ID, true
}

// evaluateCompletion must run after the triggering mutation has been applied.
func (m *Manager) evaluateCompletion() {
	if m.session.Phase != types.PhasePlaying || !IsSolved(m.pieces) {
		return
	}

	m.refreshElapsed()
	m.stopTicker()
	m.session.Phase = types.PhaseSolved

	timeBonus := max(0, constants.TimeBonusWindow-m.session.ElapsedSeconds)
	m.session.Score += constants.CompletionBonus + timeBonus

	completion := types.Completion{
		Round:          m.session.Round,
		Score:          m.session.Score,
		ElapsedSeconds: m.session.ElapsedSeconds,
		TimeBonus:      timeBonus,
	}
	m.logger.Info("Puzzle solved in %ds, score is now %d", completion.ElapsedSeconds, completion.Score)
	m.notifier.NotifyCompletion(completion)
}

func (m *Manager) refreshElapsed() {
	elapsed := int(m.clock().Sub(m.session.StartedAt) / time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	m.session.ElapsedSeconds = elapsed
}

func (m *Manager) stopTicker() {
	if m.ticker == nil {
		return
	}
	m.ticker.Stop()
	m.ticker = nil
}

func (m *Manager) piece(id string) *types.Piece {
	for _, p := range m.pieces {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (m *Manager) selectPiece(piece *types.Piece) {
	for _, p := range m.pieces {
		p.Selected = p == piece
	}
}

func (m *Manager) raise(piece *types.Piece) {
	piece.StackOrder = m.nextStackOrder
	m.nextStackOrder++
}

func (m *Manager) publish() {
	if len(m.subscribers) == 0 {
		return
	}
	snapshot := m.Snapshot()
	for _, s := range m.subscribers {
		s.fn(snapshot)
	}
}
