package sprig

import "testing"

func TestDebugCheckDisposedPanics(t *testing.T) {
	n := NewNode("gone")
	n.Dispose()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for disposed node")
		}
	}()
	debugCheckDisposed(n, "test")
}

func TestDebugCheckDisposedLiveNode(t *testing.T) {
	debugCheckDisposed(NewNode("live"), "test") // should not panic
}

func TestDebugAddComponentToDisposedPanics(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	n := NewNode("gone")
	n.Dispose()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic adding a component to a disposed node")
		}
	}()
	n.AddComponent(newRecorder(1))
}

func TestDebugTagCollisionStillRejects(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	n := NewNode("n")
	n.AddComponent(newRecorder(1))
	if n.AddComponent(newRecorder(1)) {
		t.Error("duplicate tag should be rejected in debug mode too")
	}
}

func TestDebugCheckTreeDepthDeep(t *testing.T) {
	root := NewNode("root")
	p := root
	for i := 0; i < debugMaxTreeDepth+2; i++ {
		c := NewNode("c")
		p.AddChild(c)
		p = c
	}
	debugCheckTreeDepth(p) // warns on stderr, must not panic
}

func TestDebugAddChildAtDeepTree(t *testing.T) {
	s := NewScene()
	s.SetDebugMode(true)
	defer s.SetDebugMode(false)

	p := s.Root()
	for i := 0; i < debugMaxTreeDepth+2; i++ {
		c := NewNode("c")
		p.AddChildAt(c, 0) // warns on stderr past the depth limit
		p = c
	}
	if p.Parent == nil {
		t.Error("deepest node should be attached")
	}
}
