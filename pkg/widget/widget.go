package widget

import "github.com/trellis-ui/trellis/pkg/dom"

// Widget is a node-backed instance with lifecycle hooks.
type Widget interface {
	// Node returns the widget's root node, or nil once destroyed.
	Node() *dom.Node

	// ContainerNode returns the node children are placed into. For most
	// widgets this is the root node; widgets with chrome around their
	// content designate a narrower one.
	ContainerNode() *dom.Node

	// PlaceAt inserts the widget's root node into ref at the given position.
	PlaceAt(ref *dom.Node, pos int)

	// Startup runs post-attach wiring. Idempotent.
	Startup()

	// Destroy tears the widget down and detaches its node. Idempotent, and
	// safe to call on a widget that was never attached.
	Destroy()

	// Started reports whether Startup has run.
	Started() bool

	// BeingDestroyed reports whether Destroy has begun.
	BeingDestroyed() bool
}

// Container is a widget with ordered child management.
type Container interface {
	Widget

	// AddChild places a child widget at the given position among the
	// current children. Siblings keep ascending position order whatever
	// order the calls come in.
	AddChild(child Widget, pos int)

	// RemoveChild detaches a child widget. A no-op for non-children.
	RemoveChild(child Widget)

	// Children returns the current children in order.
	Children() []Widget
}

// Base is the default Widget implementation. Embed it and override Startup
// or Destroy as needed, calling through to the embedded method to keep the
// idempotence guards.
type Base struct {
	Properties

	node          *dom.Node
	containerNode *dom.Node
	started       bool
	destroying    bool
}

// NewBase creates a widget base around an existing root node.
func NewBase(node *dom.Node) *Base {
	b := &Base{node: node}
	b.Properties.onSet = b.applyAttr
	return b
}

// Node returns the widget's root node.
func (b *Base) Node() *dom.Node { return b.node }

// ContainerNode returns the designated child-container node, falling back
// to the root node.
func (b *Base) ContainerNode() *dom.Node {
	if b.containerNode != nil {
		return b.containerNode
	}
	return b.node
}

// SetContainerNode designates a narrower node for child placement.
func (b *Base) SetContainerNode(n *dom.Node) { b.containerNode = n }

// PlaceAt inserts the root node into ref at pos.
func (b *Base) PlaceAt(ref *dom.Node, pos int) {
	if b.node == nil || ref == nil {
		return
	}
	ref.InsertAt(b.node, pos)
}

// Startup marks the widget started. Safe to call more than once.
func (b *Base) Startup() {
	b.started = true
}

// Destroy detaches the root node and clears the node references.
// Safe to call more than once and on a never-attached widget.
func (b *Base) Destroy() {
	if b.destroying {
		return
	}
	b.destroying = true
	if b.node != nil {
		b.node.Remove()
	}
	b.node = nil
	b.containerNode = nil
}

// Started reports whether Startup has run.
func (b *Base) Started() bool { return b.started }

// BeingDestroyed reports whether Destroy has begun.
func (b *Base) BeingDestroyed() bool { return b.destroying }

// applyAttr forwards property writes with an attribute mapping to the node.
func (b *Base) applyAttr(attr, value string) {
	if b.node != nil {
		b.node.SetAttr(attr, value)
	}
}

// ContainerBase is the default Container implementation.
type ContainerBase struct {
	Base
	children []containerChild
}

// containerChild pairs a child with the position it was requested at, so
// later additions can slot in by position rather than raw index.
type containerChild struct {
	widget Widget
	pos    int
}

// NewContainerBase creates a container base around an existing root node.
func NewContainerBase(node *dom.Node) *ContainerBase {
	c := &ContainerBase{}
	c.node = node
	c.Properties.onSet = c.applyAttr
	return c
}

// AddChild places a child widget at pos. The child slots in before the
// first sibling added at a greater position, so siblings stay in ascending
// position order whatever order the calls come in. If the container is
// already started, the child is started as well.
func (c *ContainerBase) AddChild(child Widget, pos int) {
	if child == nil {
		return
	}
	at := len(c.children)
	for i, e := range c.children {
		if e.pos > pos {
			at = i
			break
		}
	}
	c.children = append(c.children, containerChild{})
	copy(c.children[at+1:], c.children[at:])
	c.children[at] = containerChild{widget: child, pos: pos}

	child.PlaceAt(c.ContainerNode(), pos)
	if c.Started() && !child.Started() {
		child.Startup()
	}
}

// RemoveChild detaches a child widget from the container.
func (c *ContainerBase) RemoveChild(child Widget) {
	for i, e := range c.children {
		if e.widget == child {
			c.children = append(c.children[:i], c.children[i+1:]...)
			if n := child.Node(); n != nil {
				n.Remove()
			}
			return
		}
	}
}

// Children returns the current children in order.
func (c *ContainerBase) Children() []Widget {
	if len(c.children) == 0 {
		return nil
	}
	out := make([]Widget, 0, len(c.children))
	for _, e := range c.children {
		out = append(out, e.widget)
	}
	return out
}

// Startup starts the container and then its children, in order.
func (c *ContainerBase) Startup() {
	if c.Started() {
		return
	}
	c.Base.Startup()
	for _, e := range c.children {
		if !e.widget.Started() {
			e.widget.Startup()
		}
	}
}

// Destroy destroys the children first, then the container itself.
func (c *ContainerBase) Destroy() {
	if c.BeingDestroyed() {
		return
	}
	for _, e := range c.children {
		e.widget.Destroy()
	}
	c.children = nil
	c.Base.Destroy()
}
