package sprig

import "github.com/hajimehoshi/ebiten/v2"

// drawNode walks the tree depth-first in child order. Invisible nodes skip
// their whole subtree, and fully transparent subtrees are skipped since
// opacity only multiplies downward.
func (s *Scene) drawNode(target *ebiten.Image, n *Node, stats *debugStats) {
	if !n.Visible || n.opacity == 0 {
		return
	}
	stats.nodeCount++
	for _, c := range n.components {
		if d, ok := c.(Drawable); ok {
			d.Draw(target, n.worldTransform)
			stats.drawCallCount++
		}
	}
	for _, child := range n.children {
		s.drawNode(target, child, stats)
	}
}
