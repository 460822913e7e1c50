package sprig

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// toEbitenVertices applies an affine transform to src positions and writes
// ebiten vertices into dst. dst must be at least len(src) in length.
//
// Matrix layout: [0]=a, [1]=b, [2]=c, [3]=d, [4]=tx, [5]=ty
// newX = a*x + c*y + tx, newY = b*x + d*y + ty
//
// Source coordinates point at the center of the 1x1 white pixel so every
// vertex samples opaque white and the vertex color alone decides the output.
func toEbitenVertices(src []Vertex, dst []ebiten.Vertex, transform [6]float64) {
	a, b, c, d, tx, ty := transform[0], transform[1], transform[2], transform[3], transform[4], transform[5]
	for i := range src {
		s := &src[i]
		ox := float64(s.Position[0])
		oy := float64(s.Position[1])
		dst[i] = ebiten.Vertex{
			DstX:   float32(a*ox + c*oy + tx),
			DstY:   float32(b*ox + d*oy + ty),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: float32(s.Color.R),
			ColorG: float32(s.Color.G),
			ColorB: float32(s.Color.B),
			ColorA: float32(s.Color.A),
		}
	}
}

// geometryAABB scans vertex positions and returns the local-space bounds.
func geometryAABB(verts []Vertex) Rect {
	if len(verts) == 0 {
		return Rect{}
	}
	minX, minY := verts[0].Position[0], verts[0].Position[1]
	maxX, maxY := minX, minY
	for i := 1; i < len(verts); i++ {
		x, y := verts[i].Position[0], verts[i].Position[1]
		minX = min(minX, x)
		maxX = max(maxX, x)
		minY = min(minY, y)
		maxY = max(maxY, y)
	}
	return Rect{X: float64(minX), Y: float64(minY), Width: float64(maxX - minX), Height: float64(maxY - minY)}
}

// --- White pixel singleton (no sync.Once, sprig is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used as
// the source texture for position+color geometry.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
