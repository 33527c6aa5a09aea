package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Lifecycle is implemented by scenes and by every object in a scene tree.
type Lifecycle interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}

// GameObject is the highest level interface for game related types.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	SetZIndex(zIndex int)
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChild(id string) GameObject
	GetChildren() []GameObject
	AddChild(id string, child GameObject) error
	RemoveChild(id string) error
	RemoveFromParent() error
}

// BaseObject implements GameObject with no behaviour of its own.
// Concrete objects embed it and override Update and Draw.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *children
}

var _ GameObject = &BaseObject{}

type NewBaseObjectOpts struct {
	// ZIndex orders the object among its siblings, lower values are drawn first.
	ZIndex int
}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{
		id:       id,
		children: newChildren(),
	}
	if opts != nil {
		o.zIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) Init() error {
	return nil
}

func (o *BaseObject) Destroy() error {
	return nil
}

func (o *BaseObject) Update() error {
	return nil
}

func (o *BaseObject) Draw(screen *ebiten.Image) {}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetZIndex() int {
	return o.zIndex
}

func (o *BaseObject) SetZIndex(zIndex int) {
	o.zIndex = zIndex
}

func (o *BaseObject) GetParent() GameObject {
	return o.parent
}

func (o *BaseObject) SetParent(parent GameObject) {
	o.parent = parent
}

func (o *BaseObject) GetChild(id string) GameObject {
	return o.children.Get(id)
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.List()
}

func (o *BaseObject) AddChild(id string, child GameObject) error {
	if _, ok := o.children.idxIDObjects[id]; ok {
		return fmt.Errorf("child object with id already exists")
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id does not exist")
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

// RemoveFromParent detaches the object from its parent, if it has one.
func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return nil
	}
	return o.parent.RemoveChild(o.id)
}

// children keeps child objects indexed by id in insertion order.
type children struct {
	idxIDObjects map[string]GameObject
	order        []GameObject
}

func newChildren() *children {
	return &children{
		idxIDObjects: make(map[string]GameObject),
	}
}

func (c *children) Add(id string, child GameObject) {
	c.idxIDObjects[id] = child
	c.order = append(c.order, child)
}

func (c *children) Get(id string) GameObject {
	return c.idxIDObjects[id]
}

func (c *children) Remove(id string) {
	child, ok := c.idxIDObjects[id]
	if !ok {
		return
	}
	delete(c.idxIDObjects, id)
	for i, obj := range c.order {
		if obj == child {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

func (c *children) List() []GameObject {
	return c.order
}

// InitTree initializes an object and then all of its descendants.
func InitTree(obj GameObject) error {
	if err := obj.Init(); err != nil {
		return fmt.Errorf("failed to initialize object %s: %v", obj.GetID(), err)
	}
	for _, child := range obj.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys the descendants of an object and then the object itself.
func DestroyTree(obj GameObject) error {
	for _, child := range snapshotChildren(obj) {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	if err := obj.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy object %s: %v", obj.GetID(), err)
	}
	return nil
}

// UpdateTree updates an object and then all of its descendants.
// Children may remove themselves while being updated.
func UpdateTree(obj GameObject) error {
	if err := obj.Update(); err != nil {
		return fmt.Errorf("failed to update object %s: %v", obj.GetID(), err)
	}
	for _, child := range snapshotChildren(obj) {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DrawTree draws an object and then its children in order.
func DrawTree(obj GameObject, screen *ebiten.Image) {
	obj.Draw(screen)
	for _, child := range obj.GetChildren() {
		DrawTree(child, screen)
	}
}

func snapshotChildren(obj GameObject) []GameObject {
	list := obj.GetChildren()
	out := make([]GameObject, len(list))
	copy(out, list)
	return out
}
