package sprig

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic, sprig is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the scene graph element. Visual behavior is attached as components
// rather than selected by node type; a node with no components draws nothing.
//
// Color, opacity and content size are private and written through setters so
// that every write reaches the attached components before the next draw.
type Node struct {
	// Identity
	ID   uint32
	Name string

	// Hierarchy. Parent is a non-owning reference.
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	PivotX   float64
	PivotY   float64

	worldTransform [6]float64
	transformDirty bool

	Visible bool

	// Metadata
	UserData any
	EntityID uint32

	// Visual state
	color       Color
	opacity     float64
	contentSize Size

	// Components, in registration order.
	components []Component

	// Notification channels. Components subscribe in OnAdd and cancel in
	// OnRemove, keyed by themselves.
	OnContentSizeChanged      Signal[Size]
	OnColorChanged            Signal[Color]
	OnDisplayedOpacityChanged Signal[float64]

	// scene is set only on a Scene's root node.
	scene *Scene

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.opacity = 1
	n.color = ColorWhite
	n.Visible = true
	n.transformDirty = true
}

// NewNode creates an empty node with white color, full opacity and zero size.
func NewNode(name string) *Node {
	n := &Node{Name: name}
	nodeDefaults(n)
	return n
}

// --- Visual state ---

// Color returns the node's own color.
func (n *Node) Color() Color {
	return n.color
}

// SetColor sets the node's own color and recomputes every attached
// ColorUpdater.
func (n *Node) SetColor(c Color) {
	n.color = c
	n.updateColor()
	n.OnColorChanged.Fire(c)
}

// Opacity returns the node's own opacity in [0, 1].
func (n *Node) Opacity() float64 {
	return n.opacity
}

// SetOpacity sets the node's own opacity, clamped to [0, 1]. The displayed
// opacity of this node and every descendant is refreshed.
func (n *Node) SetOpacity(o float64) {
	n.opacity = clamp01(o)
	n.updateDisplayedOpacity()
}

// DisplayedOpacity is the node's opacity multiplied by the displayed opacity
// of its parent. A node without a parent displays its own opacity.
func (n *Node) DisplayedOpacity() float64 {
	o := 1.0
	for p := n; p != nil; p = p.Parent {
		o *= p.opacity
	}
	return o
}

// DisplayedColor returns the color the node is drawn with. Color does not
// cascade, so this is the node's own color; only opacity is inherited.
func (n *Node) DisplayedColor() Color {
	return n.color
}

// PremultipliedColor returns DisplayedColor premultiplied by DisplayedOpacity.
// This is the color written into vertex buffers.
func (n *Node) PremultipliedColor() Color {
	return n.DisplayedColor().Premultiplied(n.DisplayedOpacity())
}

// ContentSize returns the node's content size in points.
func (n *Node) ContentSize() Size {
	return n.contentSize
}

// SetContentSize sets the content size and notifies OnContentSizeChanged
// subscribers before returning. Setting an equal size is a no-op.
func (n *Node) SetContentSize(size Size) {
	if n.contentSize == size {
		return
	}
	n.contentSize = size
	n.OnContentSizeChanged.Fire(size)
}

// updateColor recomputes the visual state of every attached ColorUpdater.
func (n *Node) updateColor() {
	for _, c := range n.components {
		if cu, ok := c.(ColorUpdater); ok {
			cu.UpdateColor()
		}
	}
}

// updateDisplayedOpacity refreshes this node and, recursively, its
// descendants after an opacity or parent change.
func (n *Node) updateDisplayedOpacity() {
	n.updateColor()
	if n.OnDisplayedOpacityChanged.Len() > 0 {
		n.OnDisplayedOpacityChanged.Fire(n.DisplayedOpacity())
	}
	for _, child := range n.children {
		child.updateDisplayedOpacity()
	}
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("sprig: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("sprig: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
	child.updateDisplayedOpacity()
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("sprig: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("sprig: adding child would create a cycle")
	}
	if index < 0 || index > len(n.children) {
		panic("sprig: child index out of range")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	// Re-inserting under the same parent shortens the list by one.
	if index > len(n.children) {
		index = len(n.children)
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	markSubtreeDirty(child)
	child.updateDisplayedOpacity()
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("sprig: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
	child.updateDisplayedOpacity()
}

// RemoveChildAt removes and returns the child at the given index.
func (n *Node) RemoveChildAt(index int) *Node {
	if index < 0 || index >= len(n.children) {
		panic("sprig: child index out of range")
	}
	child := n.children[index]
	copy(n.children[index:], n.children[index+1:])
	n.children[len(n.children)-1] = nil
	n.children = n.children[:len(n.children)-1]
	child.Parent = nil
	markSubtreeDirty(child)
	child.updateDisplayedOpacity()
	return child
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// --- Disposal ---

// Dispose removes this node from its parent, detaches every component from it
// and its descendants, and marks the whole subtree as disposed.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	// Components are detached while the subtree is still under its scene so
	// removal events reach the entity store.
	removeSubtreeComponents(n)
	n.RemoveFromParent()
	n.dispose()
}

func removeSubtreeComponents(n *Node) {
	for _, child := range n.children {
		removeSubtreeComponents(child)
	}
	n.RemoveAllComponents()
}

func (n *Node) dispose() {
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.disposed = true
	n.ID = 0
	n.children = nil
	n.Parent = nil
	n.UserData = nil
	n.scene = nil
	n.OnContentSizeChanged.Clear()
	n.OnColorChanged.Clear()
	n.OnDisplayedOpacityChanged.Clear()
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}

// owningScene walks to the root and returns the scene it belongs to, if any.
func (n *Node) owningScene() *Scene {
	p := n
	for p.Parent != nil {
		p = p.Parent
	}
	return p.scene
}
