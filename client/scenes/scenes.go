package scenes

import (
	"fmt"

	"github.com/cbodonnell/tangram/client/objects"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is a full screen of the game with its own object tree.
type Scene interface {
	objects.Lifecycle

	GetRoot() objects.GameObject
}

// BaseScene runs the lifecycle of a tree rooted at a z-sorted object.
type BaseScene struct {
	root *objects.SortedZIndexObject
}

func NewBaseScene(rootID string) *BaseScene {
	return &BaseScene{
		root: objects.NewSortedZIndexObject(rootID),
	}
}

func (s *BaseScene) GetRoot() objects.GameObject {
	return s.root
}

// AddObject adds obj below the root, initializing it on the way.
func (s *BaseScene) AddObject(obj objects.GameObject) error {
	if err := s.root.AddChild(obj.GetID(), obj); err != nil {
		return fmt.Errorf("failed to add object %s: %v", obj.GetID(), err)
	}
	return nil
}

func (s *BaseScene) Init() error {
	return objects.InitTree(s.root)
}

func (s *BaseScene) Destroy() error {
	return objects.DestroyTree(s.root)
}

func (s *BaseScene) Update() error {
	return objects.UpdateTree(s.root)
}

func (s *BaseScene) Draw(screen *ebiten.Image) {
	objects.DrawTree(s.root, screen)
}
