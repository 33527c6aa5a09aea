package game

import (
	"fmt"
	"image/color"

	"github.com/cbodonnell/tangram/client/scenes"
	"github.com/cbodonnell/tangram/pkg/log"
	"github.com/cbodonnell/tangram/pkg/puzzle"
	"github.com/cbodonnell/tangram/pkg/puzzle/types"
	"github.com/cbodonnell/tangram/pkg/queue"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var backgroundColor = color.RGBA{R: 243, G: 244, B: 246, A: 255}

// Game implements ebiten.Game interface, which has Update, Draw and Layout methods.
type Game struct {
	// debug is a boolean value indicating whether debug mode is enabled.
	debug bool
	// manager owns the puzzle state.
	manager *puzzle.Manager
	// scene is the current scene.
	scene scenes.Scene
}

var _ ebiten.Game = &Game{}

type NewGameOptions struct {
	Debug       bool
	Manager     *puzzle.Manager
	Completions queue.Queue[types.Completion]
	HintImage   string
}

func NewGame(opts NewGameOptions) (*Game, error) {
	g := &Game{
		debug:   opts.Debug,
		manager: opts.Manager,
	}

	puzzleScene, err := scenes.NewPuzzleScene(scenes.NewPuzzleSceneOptions{
		Manager:     opts.Manager,
		Completions: opts.Completions,
		HintImage:   opts.HintImage,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create puzzle scene: %v", err)
	}
	if err := g.SetScene(puzzleScene); err != nil {
		return nil, fmt.Errorf("failed to set puzzle scene: %v", err)
	}

	return g, nil
}

func (g *Game) SetScene(scene scenes.Scene) error {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			return fmt.Errorf("failed to destroy previous scene: %v", err)
		}
	}

	g.scene = scene
	if err := g.scene.Init(); err != nil {
		return fmt.Errorf("failed to initialize scene: %v", err)
	}

	return nil
}

func (g *Game) Update() error {
	if err := g.scene.Update(); err != nil {
		return fmt.Errorf("failed to update scene: %v", err)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	g.scene.Draw(screen)
	if g.debug {
		g.drawDebugOverlay(screen)
	}
}

func (g *Game) drawDebugOverlay(screen *ebiten.Image) {
	snapshot := g.manager.Snapshot()
	selected, _ := g.manager.SelectedPiece()
	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.1f TPS: %0.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	ebitenutil.DebugPrint(screen, fmt.Sprintf("\nPhase: %s Selected: %s Dragging: %t", snapshot.Phase, selected, snapshot.Dragging))
}

// Close tears down the scene and releases the puzzle timer.
func (g *Game) Close() {
	if g.scene != nil {
		if err := g.scene.Destroy(); err != nil {
			log.Error("Failed to destroy scene: %v", err)
		}
		g.scene = nil
	}
	g.manager.Close()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return scenes.ScreenWidth, scenes.ScreenHeight
}
