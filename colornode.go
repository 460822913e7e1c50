package sprig

// NewColorNode creates a node that draws a rectangle of the given size filled
// with a solid color. The fill is a RenderQuad attached under TagRenderQuad.
func NewColorNode(name string, c Color, size Size) *Node {
	n := NewNode(name)
	n.color = c
	n.contentSize = size
	n.AddComponent(NewRenderQuad(size, c))
	return n
}

// RenderQuadOf returns the RenderQuad attached to n, or nil if n has none.
func RenderQuadOf(n *Node) *RenderQuad {
	q, _ := n.GetComponent(TagRenderQuad).(*RenderQuad)
	return q
}
