package scenes

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/tangram/client/fonts"
	"github.com/cbodonnell/tangram/client/input"
	"github.com/cbodonnell/tangram/client/objects"
	"github.com/cbodonnell/tangram/pkg/interaction"
	"github.com/cbodonnell/tangram/pkg/log"
	"github.com/cbodonnell/tangram/pkg/puzzle"
	"github.com/cbodonnell/tangram/pkg/puzzle/constants"
	"github.com/cbodonnell/tangram/pkg/puzzle/types"
	"github.com/cbodonnell/tangram/pkg/queue"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	boardSize = int(constants.BoardSize)
	boardLeft = 40
	boardTop  = 110
	// playAreaSize leaves room for pieces moved as far right or down as they go
	playAreaSize = int(constants.PlayAreaSize)
	boardCenterX = boardLeft + boardSize/2
	hudY         = 95
	bannerY      = boardTop + playAreaSize + 20

	ScreenWidth  = boardLeft + playAreaSize + boardLeft
	ScreenHeight = bannerY + 40
)

// BoardOrigin is the screen position of the top left corner of the board.
var BoardOrigin = types.Vector{X: boardLeft, Y: boardTop}

const (
	zIndexBoard = iota * 10
	zIndexPieces
	zIndexHint
	zIndexHUD
	zIndexBanners
)

type PuzzleScene struct {
	*BaseScene

	manager     *puzzle.Manager
	translator  *interaction.Translator
	completions queue.Queue[types.Completion]
	hintImage   string

	ui           *ebitenui.UI
	pieces       *objects.SortedZIndexObject
	pieceObjects map[string]*objects.PieceObject
	hint         *objects.HintObject
	hud          *objects.HUDObject
	banners      *objects.BaseObject
	bannerCount  int

	unsubscribe func()
}

var _ Scene = &PuzzleScene{}

type NewPuzzleSceneOptions struct {
	// Manager owns the puzzle state.
	Manager *puzzle.Manager
	// Completions is drained every frame and each item is shown as a banner.
	Completions queue.Queue[types.Completion]
	// HintImage is an optional image of the solution.
	HintImage string
}

func NewPuzzleScene(opts NewPuzzleSceneOptions) (*PuzzleScene, error) {
	if opts.Manager == nil {
		return nil, fmt.Errorf("puzzle manager is required")
	}
	if opts.Completions == nil {
		return nil, fmt.Errorf("completion queue is required")
	}

	return &PuzzleScene{
		BaseScene:    NewBaseScene("puzzle-root"),
		manager:      opts.Manager,
		translator:   interaction.NewTranslator(opts.Manager, BoardOrigin),
		completions:  opts.Completions,
		hintImage:    opts.HintImage,
		pieceObjects: make(map[string]*objects.PieceObject),
	}, nil
}

func (s *PuzzleScene) Init() error {
	if err := s.BaseScene.Init(); err != nil {
		return fmt.Errorf("failed to initialize base scene: %v", err)
	}

	board := objects.NewBoardObject("board", objects.NewBoardObjectOptions{
		Origin: BoardOrigin,
		ZIndex: zIndexBoard,
	})
	if err := s.AddObject(board); err != nil {
		return err
	}

	s.pieces = objects.NewSortedZIndexObject("pieces")
	s.pieces.SetZIndex(zIndexPieces)
	if err := s.AddObject(s.pieces); err != nil {
		return err
	}
	for _, p := range s.manager.Snapshot().Pieces {
		obj := objects.NewPieceObject(p, BoardOrigin)
		if err := s.pieces.AddChild(obj.GetID(), obj); err != nil {
			return fmt.Errorf("failed to add piece %s: %v", p.ID, err)
		}
		s.pieceObjects[p.ID] = obj
	}

	s.hint = objects.NewHintObject("hint", objects.NewHintObjectOptions{
		Origin:    BoardOrigin,
		ImagePath: s.hintImage,
		ZIndex:    zIndexHint,
	})
	if err := s.AddObject(s.hint); err != nil {
		return err
	}

	s.hud = objects.NewHUDObject("hud", objects.NewHUDObjectOptions{
		CenterX: float64(boardCenterX),
		Y:       hudY,
		ZIndex:  zIndexHUD,
	})
	if err := s.AddObject(s.hud); err != nil {
		return err
	}

	s.banners = objects.NewBaseObject("banners", &objects.NewBaseObjectOpts{
		ZIndex: zIndexBanners,
	})
	if err := s.AddObject(s.banners); err != nil {
		return err
	}

	s.renderUI()

	s.unsubscribe = s.manager.Subscribe(s.applySnapshot)
	s.applySnapshot(s.manager.Snapshot())

	return nil
}

func (s *PuzzleScene) Destroy() error {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
	return s.BaseScene.Destroy()
}

var (
	buttonTextColor = &widget.ButtonTextColor{
		Idle:     color.NRGBA{254, 255, 255, 255},
		Disabled: color.NRGBA{R: 200, G: 200, B: 200, A: 255},
	}
	darkButtonTextColor = &widget.ButtonTextColor{
		Idle:     color.NRGBA{R: 31, G: 41, B: 55, A: 255},
		Disabled: color.NRGBA{R: 120, G: 120, B: 120, A: 255},
	}
)

func newButtonImage(idle, hover color.NRGBA) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(idle),
		Hover:   image.NewNineSliceColor(hover),
		Pressed: image.NewNineSliceColor(hover),
	}
}

func newButton(label string, img *widget.ButtonImage, textColor *widget.ButtonTextColor) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(label, fonts.TTFButtonFont, textColor),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   16,
			Right:  16,
			Top:    8,
			Bottom: 8,
		}),
	)
}

func (s *PuzzleScene) renderUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:  20,
				Left: boardLeft,
			}))),
	)

	tryButton := newButton("Try", newButtonImage(
		color.NRGBA{R: 59, G: 130, B: 246, A: 255},
		color.NRGBA{R: 37, G: 99, B: 235, A: 255},
	), buttonTextColor)
	tryButton.ClickedEvent.AddHandler(func(args interface{}) {
		s.translator.Start()
	})
	rootContainer.AddChild(tryButton)

	answerButton := newButton("Answer", newButtonImage(
		color.NRGBA{R: 34, G: 197, B: 94, A: 255},
		color.NRGBA{R: 22, G: 163, B: 74, A: 255},
	), buttonTextColor)
	answerButton.ClickedEvent.AddHandler(func(args interface{}) {
		s.translator.ShowAnswer()
	})
	rootContainer.AddChild(answerButton)

	// the hint is shown only while the button is held down
	hintButton := newButton("Hint", newButtonImage(
		color.NRGBA{R: 234, G: 179, B: 8, A: 255},
		color.NRGBA{R: 202, G: 138, B: 4, A: 255},
	), buttonTextColor)
	hintButton.PressedEvent.AddHandler(func(args interface{}) {
		s.translator.HintPressed()
	})
	hintButton.ReleasedEvent.AddHandler(func(args interface{}) {
		s.translator.HintReleased()
	})
	hintButton.CursorExitedEvent.AddHandler(func(args interface{}) {
		s.translator.HintLeave()
	})
	rootContainer.AddChild(hintButton)

	rotateButton := newButton("Rotate", newButtonImage(
		color.NRGBA{R: 229, G: 231, B: 235, A: 255},
		color.NRGBA{R: 209, G: 213, B: 219, A: 255},
	), darkButtonTextColor)
	rotateButton.ClickedEvent.AddHandler(func(args interface{}) {
		s.translator.RotateSelected()
	})
	rootContainer.AddChild(rotateButton)

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (s *PuzzleScene) Update() error {
	s.manager.Poll()
	s.ui.Update()
	s.handleInput()

	if err := s.showCompletions(); err != nil {
		return fmt.Errorf("failed to show completions: %v", err)
	}

	if err := s.BaseScene.Update(); err != nil {
		return fmt.Errorf("failed to update base scene: %v", err)
	}

	return nil
}

func (s *PuzzleScene) handleInput() {
	pointer := input.PollPointer()
	s.translator.Pointer(pointer)

	if input.IsSecondaryJustPressed() {
		if s.translator.SecondaryAction(pointer.Position) {
			log.Trace("Secondary action consumed at (%.0f, %.0f)", pointer.Position.X, pointer.Position.Y)
		}
	}

	for _, key := range input.JustPressedPieceKeys() {
		s.translator.FocusedKey(key)
	}
}

// showCompletions replaces the current banner with one for each completion
// waiting in the queue, so every completion is presented exactly once.
func (s *PuzzleScene) showCompletions() error {
	for _, completion := range s.completions.ReadAllMessages() {
		existing := append([]objects.GameObject(nil), s.banners.GetChildren()...)
		for _, banner := range existing {
			if err := s.banners.RemoveChild(banner.GetID()); err != nil {
				return fmt.Errorf("failed to remove banner %s: %v", banner.GetID(), err)
			}
		}

		s.bannerCount++
		banner := objects.NewBannerObject(fmt.Sprintf("banner-%d", s.bannerCount), objects.NewBannerObjectOptions{
			Text:    completion.Message(),
			CenterX: float64(boardCenterX),
			Y:       float64(bannerY),
			Color:   color.White,
			TTL:     objects.DefaultBannerTTL,
		})
		if err := s.banners.AddChild(banner.GetID(), banner); err != nil {
			return fmt.Errorf("failed to add banner: %v", err)
		}
		log.Info("Showing completion of round %s with a time bonus of %d", completion.Round, completion.TimeBonus)
	}
	return nil
}

// applySnapshot pushes a new state into the drawable objects.
func (s *PuzzleScene) applySnapshot(snapshot *types.Snapshot) {
	for _, p := range snapshot.Pieces {
		obj, ok := s.pieceObjects[p.ID]
		if !ok {
			log.Warn("No object for piece %s", p.ID)
			continue
		}
		obj.SetPiece(p)
	}
	s.pieces.Sort()
	s.hint.SetVisible(snapshot.HintVisible)
	s.hud.SetSession(snapshot.Session)
}

func (s *PuzzleScene) Draw(screen *ebiten.Image) {
	s.BaseScene.Draw(screen)
	s.ui.Draw(screen)
}
