package sprig

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrComponentOwned is the panic value raised when a component that already
// has an owner is added to a node. Double attachment is a programming error.
var ErrComponentOwned = errors.New("sprig: component already has an owner")

// Component is an attachable behavior owned by at most one Node at a time.
//
// Implementations embed BaseComponent, which supplies Tag, Owner and no-op
// lifecycle hooks. Override OnAdd and OnRemove to subscribe to and cancel
// node notifications, and call the embedded BaseComponent hooks from them.
type Component interface {
	// Tag is the lookup key within one node's registry. It is not global.
	Tag() int
	// Owner returns the node holding this component, or nil when unattached.
	Owner() *Node
	// OnAdd runs once, right after the owner reference has been set.
	OnAdd(owner *Node)
	// OnRemove runs once, right before the owner reference is cleared.
	OnRemove()

	base() *BaseComponent
}

// ColorUpdater is implemented by components whose state depends on the
// owner's displayed color or opacity. The node calls UpdateColor after every
// write to its color or opacity, and whenever an ancestor's opacity changes.
type ColorUpdater interface {
	UpdateColor()
}

// Updater is implemented by components that need a per-frame tick.
// Scene.Update calls it for every attached component in tree order.
type Updater interface {
	Update(dt float64)
}

// Drawable is implemented by components that emit draw calls. transform is
// the owner's world affine matrix.
type Drawable interface {
	Draw(target *ebiten.Image, transform [6]float64)
}

// BaseComponent holds the tag and the non-owning back-reference to the owner.
// The zero value is a component with tag 0.
type BaseComponent struct {
	tag   int
	owner *Node
}

// NewBaseComponent returns a BaseComponent with the given tag.
func NewBaseComponent(tag int) BaseComponent {
	return BaseComponent{tag: tag}
}

// Tag returns the component's tag.
func (c *BaseComponent) Tag() int { return c.tag }

// SetTag changes the tag. Panics if the component is attached, since the
// owner's registry relies on tags being stable.
func (c *BaseComponent) SetTag(tag int) {
	if c.owner != nil {
		panic("sprig: cannot change tag of an attached component")
	}
	c.tag = tag
}

// Owner returns the owning node, or nil.
func (c *BaseComponent) Owner() *Node { return c.owner }

// OnAdd is a no-op hook.
func (c *BaseComponent) OnAdd(owner *Node) {}

// OnRemove is a no-op hook.
func (c *BaseComponent) OnRemove() {}

func (c *BaseComponent) base() *BaseComponent { return c }
