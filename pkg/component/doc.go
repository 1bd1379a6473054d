// Package component is the declarative composition and lifecycle engine.
//
// A Definition describes a node to materialize; Instantiate turns it into a
// runtime Instance: a markup-only DomOnlyNode, a lazily-rendered Control, or
// a wrapped widget produced by a registered type constructor. Attach and
// Detach manage physical placement in the node tree, Start and Stop drive
// the instance lifecycle, and Tree orchestrates all of it for a whole
// definition tree.
//
// Capability dispatch is explicit: an instance is widget-capable when it
// satisfies WidgetInstance and container-capable when it satisfies
// ContainerInstance, fixed by its concrete type at construction. The old
// probe-the-method-at-runtime pattern does not exist here.
//
// The engine is single-threaded and cooperative. Re-entrancy is handled by
// per-instance guards, not locks: repeated Render, Start, and Stop calls are
// defined no-ops.
package component
