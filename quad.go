package sprig

import "github.com/hajimehoshi/ebiten/v2"

// TagRenderQuad is the tag RenderQuad components are created with.
const TagRenderQuad = 1

// Vertex is one entry of a Geometry vertex buffer. Position is homogeneous
// (x, y, z, w). The texture coordinate slots are unused by untextured
// techniques and stay zero. Color is premultiplied.
type Vertex struct {
	Position  [4]float32
	TexCoord1 [2]float32
	TexCoord2 [2]float32
	Color     Color
}

// Geometry is the vertex and index data a renderer consumes for one draw.
// RenderQuad hands it out by value, so a renderer holding a copy cannot
// change the quad's buffer.
type Geometry struct {
	Vertices [4]Vertex
	Indices  [6]uint16

	version uint64
}

// Version increases every time the geometry is recomputed. A renderer can
// compare it with the value it last uploaded to skip unchanged buffers.
func (g Geometry) Version() uint64 {
	return g.version
}

// Technique selects the shading program a Material is drawn with.
type Technique uint8

const (
	TechniquePositionColor   Technique = iota // flat vertex color, no texture
	TechniquePositionTexture                  // sampled texture modulated by vertex color
)

// Material is an opaque draw descriptor paired with a Geometry.
type Material struct {
	Technique Technique
	Blend     BlendMode
}

// quadIndices is the two-triangle fan over BL, BR, TR, TL.
var quadIndices = [6]uint16{0, 1, 2, 0, 2, 3}

// RenderQuad draws an axis-aligned rectangle spanning (0,0) to the owner's
// content size, filled with the owner's premultiplied displayed color.
//
// The quad tracks its owner: it subscribes to OnContentSizeChanged when added
// and cancels the subscription when removed. Color is pushed by the owner
// through UpdateColor.
type RenderQuad struct {
	BaseComponent

	geometry Geometry
	material Material

	drawBuf  [4]ebiten.Vertex
	drawInds [6]uint16
}

// NewRenderQuad creates a quad of the given size and color. The four vertices
// exist immediately; the quad follows a node only once it is attached.
func NewRenderQuad(size Size, c Color) *RenderQuad {
	q := &RenderQuad{
		BaseComponent: NewBaseComponent(TagRenderQuad),
		material:      Material{Technique: TechniquePositionColor, Blend: BlendNormal},
		drawInds:      quadIndices,
	}
	q.geometry.Indices = quadIndices
	q.setPositions(size)
	q.setColor(c)
	return q
}

// Geometry returns a copy of the quad's vertex buffer.
func (q *RenderQuad) Geometry() Geometry {
	return q.geometry
}

// Material returns the quad's draw descriptor.
func (q *RenderQuad) Material() Material {
	return q.material
}

// Bounds returns the local-space rectangle covered by the vertices.
func (q *RenderQuad) Bounds() Rect {
	return geometryAABB(q.geometry.Vertices[:])
}

// SetBlendMode changes the blend mode used when drawing.
func (q *RenderQuad) SetBlendMode(b BlendMode) {
	q.material.Blend = b
}

// OnAdd subscribes to the owner's size changes and syncs the quad to the
// owner's current size and color.
func (q *RenderQuad) OnAdd(owner *Node) {
	q.BaseComponent.OnAdd(owner)
	owner.OnContentSizeChanged.Subscribe(q, q.UpdateSize)
	q.UpdateSize(owner.ContentSize())
	q.UpdateColor()
}

// OnRemove cancels the size subscription. This must happen before the base
// teardown clears the owner.
func (q *RenderQuad) OnRemove() {
	if owner := q.Owner(); owner != nil {
		owner.OnContentSizeChanged.CancelSubscription(q)
	}
	q.BaseComponent.OnRemove()
}

// UpdateSize overwrites all four vertex positions with the corners of the
// rectangle (0,0)-(size.Width,size.Height).
func (q *RenderQuad) UpdateSize(size Size) {
	q.setPositions(size)
}

// UpdateColor overwrites every vertex color with the owner's premultiplied
// displayed color. No-op while unattached.
func (q *RenderQuad) UpdateColor() {
	owner := q.Owner()
	if owner == nil {
		return
	}
	q.setColor(owner.PremultipliedColor())
}

func (q *RenderQuad) setPositions(size Size) {
	w, h := float32(size.Width), float32(size.Height)
	v := &q.geometry.Vertices
	v[0].Position = [4]float32{0, 0, 0, 1}
	v[1].Position = [4]float32{w, 0, 0, 1}
	v[2].Position = [4]float32{w, h, 0, 1}
	v[3].Position = [4]float32{0, h, 0, 1}
	q.geometry.version++
}

func (q *RenderQuad) setColor(c Color) {
	for i := range q.geometry.Vertices {
		q.geometry.Vertices[i].Color = c
	}
	q.geometry.version++
}

// Draw submits the quad to target with one DrawTriangles call. transform is
// the owner's world matrix. Vertex colors are already premultiplied.
func (q *RenderQuad) Draw(target *ebiten.Image, transform [6]float64) {
	if target == nil {
		return
	}
	toEbitenVertices(q.geometry.Vertices[:], q.drawBuf[:], transform)

	var op ebiten.DrawTrianglesOptions
	op.Blend = q.material.Blend.EbitenBlend()
	op.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha
	target.DrawTriangles(q.drawBuf[:], q.drawInds[:], ensureWhitePixel(), &op)
}
