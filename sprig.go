package sprig

import "github.com/hajimehoshi/ebiten/v2"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Use Premultiplied to produce the form written into vertex buffers.
type Color struct {
	R, G, B, A float64
}

var (
	// ColorWhite is the default node color.
	ColorWhite = Color{1, 1, 1, 1}
	// ColorClear is fully transparent black.
	ColorClear = Color{}
)

// Premultiplied scales the RGB channels by opacity and replaces alpha with
// opacity. Every channel is clamped to [0, 1].
func (c Color) Premultiplied(opacity float64) Color {
	o := clamp01(opacity)
	return Color{
		R: clamp01(c.R * o),
		G: clamp01(c.G * o),
		B: clamp01(c.B * o),
		A: o,
	}
}

// RGBA implements color.Color so a Color can be passed to image.Fill.
// The result is premultiplied by the color's own alpha.
func (c Color) RGBA() (r, g, b, a uint32) {
	p := c.Premultiplied(c.A)
	return uint32(p.R * 0xffff), uint32(p.G * 0xffff), uint32(p.B * 0xffff), uint32(p.A * 0xffff)
}

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Size is the content size of a node in points.
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// BlendMode selects a compositing operation. Each maps to a specific ebiten.Blend value.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                       // additive / lighter
	BlendMultiply                  // multiply (source * destination; only darkens)
	BlendErase                     // destination-out (punch transparent holes)
	BlendNone                      // opaque copy (skip blending)
)

// EbitenBlend returns the ebiten.Blend value corresponding to this BlendMode.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendErase:
		return ebiten.BlendDestinationOut
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}

// EventType identifies a component lifecycle event forwarded to an EntityStore.
type EventType uint8

const (
	EventComponentAdded   EventType = iota // fires after OnAdd returns
	EventComponentRemoved                  // fires after the owner is cleared
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
