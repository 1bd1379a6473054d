package component

import (
	"github.com/trellis-ui/trellis/pkg/dom"
	"github.com/trellis-ui/trellis/pkg/widget"
)

// attrWrite is one queued pre-creation property write.
type attrWrite struct {
	name  string
	value any
}

// Control is the lightweight stateful leaf variant. Its node does not exist
// until rendering runs; property writes made before then are queued in order
// and applied when the creation hook fires.
//
// A Control is a two-state machine, Unrendered -> Rendered. The transition
// happens at most once: Render never replaces an existing node.
type Control struct {
	widget.Properties
	instContext

	tag       string
	attrs     map[string]string
	content   any
	baseClass string

	node          *dom.Node
	containerNode *dom.Node

	created    bool
	started    bool
	destroying bool
	deferred   []attrWrite
}

// NewControl builds a Control from a definition. Rendering is deferred; the
// returned Control has no node. Props from the definition are mixed in
// through the observable property surface, so they participate in the
// pre-creation queue like any other write.
func NewControl(def *Definition, root, owner any) *Control {
	c := &Control{
		instContext: instContext{def: def, root: root, owner: owner},
	}
	if def != nil {
		c.tag = def.Tag
		c.attrs = def.Attrs
		c.content = def.Content
		for name, value := range def.Props {
			c.Set(name, value)
		}
	}
	return c
}

// SetBaseClass sets a style class applied to the node once it is created.
func (c *Control) SetBaseClass(class string) { c.baseClass = class }

// Node returns the root node, or nil before rendering and after Destroy.
func (c *Control) Node() *dom.Node { return c.node }

// ContainerNode returns the designated child-container node. The root node
// doubles as the container unless a narrower one was set.
func (c *Control) ContainerNode() *dom.Node {
	if c.containerNode != nil {
		return c.containerNode
	}
	return c.node
}

// SetContainerNode designates a narrower node for child placement.
func (c *Control) SetContainerNode(n *dom.Node) { c.containerNode = n }

// Render materializes the node. A no-op once a node exists: calling it
// again always yields the same node.
func (c *Control) Render() *dom.Node {
	if c.node != nil {
		return c.node
	}
	if n := contentNode(c.content, c.root, c.owner, c); n != nil {
		c.node = n
	} else {
		c.node = dom.NewElement(c.tag, c.attrs)
	}
	if c.baseClass != "" {
		c.node.AddClass(c.baseClass)
	}
	return c.node
}

// Create runs the creation hook: render, then flush the deferred property
// writes in the order they were made. Runs exactly once.
func (c *Control) Create() {
	if c.created {
		return
	}
	c.created = true
	c.Render()

	writes := c.deferred
	c.deferred = nil
	for _, w := range writes {
		c.applyWrite(w.name, w.value)
	}
}

// Created reports whether the creation hook has run.
func (c *Control) Created() bool { return c.created }

// Set writes a property. Before creation the write is queued; after
// creation it applies to the node immediately when an attribute mapping
// exists for the property. Watchers are notified either way.
func (c *Control) Set(name string, value any) {
	c.Properties.Set(name, value)
	if !c.created {
		c.deferred = append(c.deferred, attrWrite{name: name, value: value})
		return
	}
	c.applyWrite(name, value)
}

// applyWrite mirrors a property write onto the node if a mapping exists.
func (c *Control) applyWrite(name string, value any) {
	attr, ok := c.AttributeFor(name)
	if !ok || c.node == nil {
		return
	}
	c.node.SetAttr(attr, widget.AttrString(value))
}

// PlaceAt runs the creation hook if needed and inserts the node into ref.
func (c *Control) PlaceAt(ref *dom.Node, pos int) {
	if ref == nil {
		return
	}
	c.Create()
	ref.InsertAt(c.node, pos)
}

// Startup runs post-attach wiring. Idempotent. A never-placed Control is
// rendered here so startup observers always see a node.
func (c *Control) Startup() {
	if c.started {
		return
	}
	c.started = true
	c.Create()
}

// Started reports whether Startup has run.
func (c *Control) Started() bool { return c.started }

// Remove detaches the node from its parent but preserves the instance and
// its state. Reversible; the node reference stays set.
func (c *Control) Remove() {
	if c.node != nil {
		c.node.Remove()
	}
}

// Destroy detaches the node if attached and permanently clears both the
// node and container-node references. Idempotent and irreversible.
func (c *Control) Destroy() {
	if c.destroying {
		return
	}
	c.destroying = true
	if c.node != nil {
		c.node.Remove()
	}
	c.node = nil
	c.containerNode = nil
}

// BeingDestroyed reports whether Destroy has begun.
func (c *Control) BeingDestroyed() bool { return c.destroying }
