package sprig

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenOpacityReachesTarget(t *testing.T) {
	node := NewNode("fade")

	g := TweenOpacity(node, 0, 1.0, ease.Linear)
	g.Update(0.5)
	g.Update(0.5)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	if node.Opacity() != 0 {
		t.Errorf("Opacity = %f, want 0", node.Opacity())
	}
}

func TestTweenOpacityUpdatesQuad(t *testing.T) {
	node := NewColorNode("fade", ColorWhite, Size{Width: 2, Height: 2})
	q := RenderQuadOf(node)

	g := TweenOpacity(node, 0, 1.0, ease.Linear)
	g.Update(0.5)

	a := q.Geometry().Vertices[0].Color.A
	if math.Abs(a-0.5) > 0.01 {
		t.Errorf("vertex alpha mid-tween = %f, want ~0.5", a)
	}
}

func TestTweenColorReachesTarget(t *testing.T) {
	node := NewColorNode("tint", ColorWhite, Size{Width: 2, Height: 2})
	target := Color{0, 0.5, 1, 1}

	g := TweenColor(node, target, 0.5, ease.Linear)
	g.Update(0.25)
	g.Update(0.25)

	if !g.Done {
		t.Fatal("expected Done after full duration")
	}
	got := node.Color()
	if math.Abs(got.R-0) > 0.01 || math.Abs(got.G-0.5) > 0.01 || math.Abs(got.B-1) > 0.01 {
		t.Errorf("Color = %v, want ~%v", got, target)
	}
	vc := RenderQuadOf(node).Geometry().Vertices[0].Color
	if math.Abs(vc.G-0.5) > 0.01 {
		t.Errorf("vertex G = %f, want ~0.5", vc.G)
	}
}

func TestTweenSizeUpdatesQuad(t *testing.T) {
	node := NewColorNode("grow", ColorWhite, Size{Width: 10, Height: 10})

	g := TweenSize(node, Size{Width: 30, Height: 50}, 1.0, ease.Linear)
	g.Update(0.5)
	g.Update(0.5)

	b := RenderQuadOf(node).Bounds()
	if math.Abs(b.Width-30) > 0.5 || math.Abs(b.Height-50) > 0.5 {
		t.Errorf("quad bounds = %v, want ~30x50", b)
	}
}

func TestTweenStopsOnDisposedNode(t *testing.T) {
	node := NewNode("gone")
	g := TweenOpacity(node, 0, 1.0, ease.Linear)
	node.Dispose()

	g.Update(0.5)
	if !g.Done {
		t.Error("expected Done after target disposed")
	}
	if node.Opacity() != 1 {
		t.Errorf("Opacity = %f, want 1 (no writes after dispose)", node.Opacity())
	}
}

func TestTweenUpdateAfterDoneIsNoop(t *testing.T) {
	node := NewNode("n")
	g := TweenOpacity(node, 0.5, 0.1, ease.Linear)
	g.Update(0.1)
	node.SetOpacity(1)
	g.Update(0.1)
	if node.Opacity() != 1 {
		t.Errorf("Opacity = %f, want 1", node.Opacity())
	}
}

func TestTweenComponentAutoRemove(t *testing.T) {
	s := NewScene()
	node := NewNode("n")
	s.Root().AddChild(node)
	tc := NewTweenComponent(50, TweenOpacity(node, 0, 0.5, ease.Linear))
	node.AddComponent(tc)

	s.Update(0.25)
	if tc.Owner() != node {
		t.Fatal("tween should still be attached mid-way")
	}
	s.Update(0.25)
	if tc.Owner() != nil {
		t.Error("tween should remove itself when done")
	}
	if node.GetComponent(50) != nil {
		t.Error("registry should no longer hold the tween")
	}
	if node.Opacity() != 0 {
		t.Errorf("Opacity = %f, want 0", node.Opacity())
	}
}

func TestTweenComponentKeep(t *testing.T) {
	s := NewScene()
	node := NewNode("n")
	s.Root().AddChild(node)
	tc := NewTweenComponent(50, TweenOpacity(node, 0, 0.1, ease.Linear))
	tc.AutoRemove = false
	node.AddComponent(tc)

	s.Update(0.2)
	if tc.Owner() != node {
		t.Error("tween with AutoRemove=false should stay attached")
	}
}
