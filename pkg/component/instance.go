package component

import (
	"github.com/trellis-ui/trellis/pkg/dom"
	"github.com/trellis-ui/trellis/pkg/widget"
)

// Instance is a materialized component. Every variant carries its node (if
// any), its originating definition, and the opaque root/owner context it was
// instantiated with.
type Instance interface {
	// Node returns the instance's root node, or nil when the instance has
	// no node yet (an unrendered Control) or no longer (destroyed).
	Node() *dom.Node

	// ContainerNode returns the node children are placed into, or nil when
	// the instance cannot host children directly.
	ContainerNode() *dom.Node

	// Definition returns the descriptor this instance was built from.
	Definition() *Definition

	// Root returns the top-level tree reference passed at instantiation.
	Root() any

	// Owner returns the logical owner passed at instantiation.
	Owner() any
}

// WidgetInstance is the capability set of widget-backed instances: they have
// lifecycle hooks and can place their own node.
type WidgetInstance interface {
	Instance

	Startup()
	Destroy()
	Started() bool
	BeingDestroyed() bool
	PlaceAt(ref *dom.Node, pos int)
}

// ContainerInstance is the capability set of instances with ordered child
// management.
type ContainerInstance interface {
	WidgetInstance

	AddChild(child Instance, pos int)
	RemoveChild(child Instance)
}

// instContext is the shared instantiation context carried by every variant.
type instContext struct {
	def   *Definition
	root  any
	owner any
}

func (c *instContext) Definition() *Definition { return c.def }
func (c *instContext) Root() any               { return c.root }
func (c *instContext) Owner() any              { return c.owner }

// DomOnlyNode is the markup-only leaf variant: it wraps exactly one node and
// has no lifecycle hooks of its own. Its externally observable value is the
// wrapped node itself.
type DomOnlyNode struct {
	instContext
	node *dom.Node
}

// NewDomOnlyNode wraps an already-produced node with its context.
func NewDomOnlyNode(node *dom.Node, def *Definition, root, owner any) *DomOnlyNode {
	return &DomOnlyNode{
		instContext: instContext{def: def, root: root, owner: owner},
		node:        node,
	}
}

// Node returns the wrapped node, or nil after Destroy.
func (d *DomOnlyNode) Node() *dom.Node { return d.node }

// ContainerNode returns nil: a DomOnlyNode declares no child container.
// Children placed under it go into its node via the attachment manager's
// reference-node fallback.
func (d *DomOnlyNode) ContainerNode() *dom.Node { return nil }

// Value returns the wrapped node. Ancestor logic reads a component's
// produced value through this rather than walking its subtree.
func (d *DomOnlyNode) Value() *dom.Node { return d.node }

// Components returns the child definitions carried for recursive
// instantiation by the caller.
func (d *DomOnlyNode) Components() []*Definition {
	if d.def == nil {
		return nil
	}
	return d.def.Components
}

// Destroy removes the node from its parent if attached and clears the
// reference. Idempotent.
func (d *DomOnlyNode) Destroy() {
	if d.node == nil {
		return
	}
	d.node.Remove()
	d.node = nil
}

// widgetInstance adapts a widget.Widget into an Instance.
type widgetInstance struct {
	instContext
	w widget.Widget
}

// containerInstance additionally exposes ordered child management for
// widgets that are containers.
type containerInstance struct {
	widgetInstance
	c widget.Container
}

// WrapWidget adapts a widget into a component instance. Container widgets
// come back container-capable; plain widgets come back widget-capable only.
func WrapWidget(w widget.Widget, def *Definition, root, owner any) Instance {
	wi := widgetInstance{
		instContext: instContext{def: def, root: root, owner: owner},
		w:           w,
	}
	if c, ok := w.(widget.Container); ok {
		return &containerInstance{widgetInstance: wi, c: c}
	}
	return &wi
}

// Unwrap returns the widget behind a wrapped instance, or nil if the
// instance is not widget-backed.
func Unwrap(inst Instance) widget.Widget {
	switch v := inst.(type) {
	case *widgetInstance:
		return v.w
	case *containerInstance:
		return v.w
	default:
		return nil
	}
}

func (i *widgetInstance) Node() *dom.Node          { return i.w.Node() }
func (i *widgetInstance) ContainerNode() *dom.Node { return i.w.ContainerNode() }
func (i *widgetInstance) Startup()                 { i.w.Startup() }
func (i *widgetInstance) Destroy()                 { i.w.Destroy() }
func (i *widgetInstance) Started() bool            { return i.w.Started() }
func (i *widgetInstance) BeingDestroyed() bool     { return i.w.BeingDestroyed() }

func (i *widgetInstance) PlaceAt(ref *dom.Node, pos int) {
	i.w.PlaceAt(ref, pos)
}

func (i *containerInstance) AddChild(child Instance, pos int) {
	if w, ok := asWidget(child); ok {
		i.c.AddChild(w, pos)
	}
}

func (i *containerInstance) RemoveChild(child Instance) {
	if w, ok := asWidget(child); ok {
		i.c.RemoveChild(w)
		return
	}
	if n := child.Node(); n != nil {
		n.Remove()
	}
}

// asWidget resolves the widget behind an instance: either the wrapped
// external widget, or an engine-native variant (Control) that satisfies the
// widget interface directly.
func asWidget(inst Instance) (widget.Widget, bool) {
	if w := Unwrap(inst); w != nil {
		return w, true
	}
	if w, ok := inst.(widget.Widget); ok {
		return w, true
	}
	return nil, false
}
