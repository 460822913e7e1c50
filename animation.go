package sprig

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 values of a Node simultaneously. Create one via
// the convenience constructors (TweenOpacity, TweenColor, TweenSize) and call
// Update(dt) each frame, or attach it with NewTweenComponent. Every step is
// written through the node's setters, so attached components see each
// intermediate value. If the target node is disposed, the group stops
// immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	values [4]float64
	apply  func(n *Node, v *[4]float64)
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and applies the values to the
// target. If the target node has been disposed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target == nil || g.target.IsDisposed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		g.values[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.apply(g.target, &g.values)
	g.Done = allDone
}

// TweenOpacity creates a TweenGroup that animates the node's own opacity.
func TweenOpacity(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: node, apply: applyOpacity}
	g.tweens[0] = gween.New(float32(node.opacity), float32(to), duration, fn)
	return g
}

func applyOpacity(n *Node, v *[4]float64) {
	n.SetOpacity(v[0])
}

// TweenColor creates a TweenGroup that animates all four channels of the
// node's own color.
func TweenColor(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: node, apply: applyColor}
	from := node.color
	g.tweens[0] = gween.New(float32(from.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(from.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(from.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(from.A), float32(to.A), duration, fn)
	return g
}

func applyColor(n *Node, v *[4]float64) {
	n.SetColor(Color{v[0], v[1], v[2], v[3]})
}

// TweenSize creates a TweenGroup that animates the node's content size.
func TweenSize(node *Node, to Size, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: node, apply: applySize}
	g.tweens[0] = gween.New(float32(node.contentSize.Width), float32(to.Width), duration, fn)
	g.tweens[1] = gween.New(float32(node.contentSize.Height), float32(to.Height), duration, fn)
	return g
}

func applySize(n *Node, v *[4]float64) {
	n.SetContentSize(Size{v[0], v[1]})
}

// TweenComponent runs a TweenGroup from Scene.Update. When the group
// finishes, the component removes itself from its owner if AutoRemove is set.
type TweenComponent struct {
	BaseComponent
	Group      *TweenGroup
	AutoRemove bool
}

// NewTweenComponent wraps g as a component with the given tag.
func NewTweenComponent(tag int, g *TweenGroup) *TweenComponent {
	return &TweenComponent{BaseComponent: NewBaseComponent(tag), Group: g, AutoRemove: true}
}

// Update advances the wrapped group.
func (t *TweenComponent) Update(dt float64) {
	if t.Group == nil {
		return
	}
	t.Group.Update(float32(dt))
	if t.Group.Done && t.AutoRemove {
		if owner := t.Owner(); owner != nil {
			owner.RemoveComponent(t)
		}
	}
}
