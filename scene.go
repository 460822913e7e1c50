package sprig

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, component lifecycle events for nodes under the scene's
// root are forwarded to the store.
type EntityStore interface {
	EmitEvent(event ComponentEvent)
}

const defaultUpdateCap = 64

// Scene is the top-level object that owns the node tree and drives per-frame
// component updates and drawing.
type Scene struct {
	root  *Node
	store EntityStore
	debug bool

	updateBuf []Component
}

// NewScene creates a new scene with a pre-created root node.
func NewScene() *Scene {
	s := &Scene{
		updateBuf: make([]Component, 0, defaultUpdateCap),
	}
	s.root = NewNode("root")
	s.root.scene = s
	return s
}

// Root returns the scene's root node.
func (s *Scene) Root() *Node {
	return s.root
}

// Update refreshes world transforms and calls Update on every attached
// Updater component in tree order. Components attached during the pass are
// not ticked until the next frame; components removed during the pass are
// skipped.
func (s *Scene) Update(dt float64) {
	updateWorldTransform(s.root, identityTransform, false)

	s.updateBuf = collectUpdaters(s.root, s.updateBuf[:0])
	for i, c := range s.updateBuf {
		if c.Owner() != nil {
			c.(Updater).Update(dt)
		}
		s.updateBuf[i] = nil
	}
	s.updateBuf = s.updateBuf[:0]
}

func collectUpdaters(n *Node, buf []Component) []Component {
	for _, c := range n.components {
		if _, ok := c.(Updater); ok {
			buf = append(buf, c)
		}
	}
	for _, child := range n.children {
		buf = collectUpdaters(child, buf)
	}
	return buf
}

// Draw traverses the scene tree and lets every Drawable component of a
// visible node draw itself onto screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	updateWorldTransform(s.root, identityTransform, false)
	s.drawNode(screen, s.root, &stats)

	if s.debug {
		stats.drawTime = time.Since(t0)
		s.debugLog(stats)
	}
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tag collisions and deep trees are reported, and per-frame
// draw stats are logged to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply. Only valid
// with a single Scene; multiple Scenes with differing debug modes will
// reflect whichever called SetDebugMode last.
var globalDebug bool
