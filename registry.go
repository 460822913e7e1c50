package sprig

// ComponentEvent carries component lifecycle data for the ECS bridge.
type ComponentEvent struct {
	Type     EventType
	NodeID   uint32
	EntityID uint32
	Tag      int
}

// GetComponent returns the first component in registration order whose tag
// equals tag, or nil.
func (n *Node) GetComponent(tag int) Component {
	for _, c := range n.components {
		if c.Tag() == tag {
			return c
		}
	}
	return nil
}

// AddComponent attaches c to this node and reports whether it was added.
//
// It returns false, leaving c unattached, if a component with the same tag is
// already present. It panics with ErrComponentOwned if c already has an owner,
// including this node: a component is never silently moved between nodes.
//
// On success the owner is set before c.OnAdd runs, so OnAdd can subscribe to
// the owner's notification channels.
func (n *Node) AddComponent(c Component) bool {
	if c == nil {
		panic("sprig: cannot add nil component")
	}
	if c.Owner() != nil {
		panic(ErrComponentOwned)
	}
	if globalDebug {
		debugCheckDisposed(n, "AddComponent")
	}
	if n.GetComponent(c.Tag()) != nil {
		if globalDebug {
			debugWarnTagCollision(n, c.Tag())
		}
		return false
	}
	n.components = append(n.components, c)
	c.base().owner = n
	c.OnAdd(n)
	n.emitComponentEvent(EventComponentAdded, c)
	return true
}

// RemoveComponentByTag detaches every component with the given tag and
// reports whether anything was removed.
//
// Each match leaves the registry before its OnRemove runs, so OnRemove may
// add or remove components on the owner. Components added by those hooks are
// not revisited by this call.
func (n *Node) RemoveComponentByTag(tag int) bool {
	removed := false
	for budget := len(n.components); budget > 0; budget-- {
		i := n.indexOfTag(tag)
		if i < 0 {
			break
		}
		c := n.components[i]
		n.removeComponentAt(i)
		n.detach(c)
		removed = true
	}
	return removed
}

// RemoveComponent detaches the given component instance. It returns false if
// c is not attached to this node.
func (n *Node) RemoveComponent(c Component) bool {
	for i, have := range n.components {
		if have != c {
			continue
		}
		n.removeComponentAt(i)
		n.detach(c)
		return true
	}
	return false
}

// RemoveAllComponents detaches every component in registration order and
// empties the registry. Components are taken out one at a time, so during
// an OnRemove the siblings not yet detached are still returned by
// GetComponent. Anything an OnRemove attaches is detached as well.
func (n *Node) RemoveAllComponents() {
	for len(n.components) > 0 {
		c := n.components[0]
		n.removeComponentAt(0)
		n.detach(c)
	}
}

// Components returns the attached components in registration order.
// The returned slice MUST NOT be mutated by the caller.
func (n *Node) Components() []Component {
	return n.components
}

// NumComponents returns the number of attached components.
func (n *Node) NumComponents() int {
	return len(n.components)
}

func (n *Node) indexOfTag(tag int) int {
	for i, c := range n.components {
		if c.Tag() == tag {
			return i
		}
	}
	return -1
}

func (n *Node) removeComponentAt(i int) {
	copy(n.components[i:], n.components[i+1:])
	n.components[len(n.components)-1] = nil
	n.components = n.components[:len(n.components)-1]
}

// detach runs OnRemove while the owner is still set, then clears it. The
// component is already out of the registry when it runs.
func (n *Node) detach(c Component) {
	c.OnRemove()
	c.base().owner = nil
	n.emitComponentEvent(EventComponentRemoved, c)
}

func (n *Node) emitComponentEvent(typ EventType, c Component) {
	s := n.owningScene()
	if s == nil || s.store == nil {
		return
	}
	s.store.EmitEvent(ComponentEvent{
		Type:     typ,
		NodeID:   n.ID,
		EntityID: n.EntityID,
		Tag:      c.Tag(),
	})
}
