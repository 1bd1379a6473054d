// Package trellis provides the public API for the Trellis component
// engine.
//
// This is the recommended import for most applications:
//
//	import "github.com/trellis-ui/trellis"
//
// Usage:
//
//	def := &trellis.Definition{
//		Tag:   "ul",
//		Attrs: map[string]string{"class": "list"},
//		Components: []*trellis.Definition{
//			{Content: "<li>A</li>"},
//		},
//	}
//	tree := trellis.Materialize(def, owner)
//	tree.Startup()
//	defer tree.Destroy()
package trellis

import (
	"github.com/trellis-ui/trellis/pkg/component"
	"github.com/trellis-ui/trellis/pkg/dom"
	"github.com/trellis-ui/trellis/pkg/manifest"
	"github.com/trellis-ui/trellis/pkg/render"
	"github.com/trellis-ui/trellis/pkg/widget"
)

// =============================================================================
// Descriptors and instances (re-export from pkg/component)
// =============================================================================

// Definition is the declarative descriptor a tree materializes from.
type Definition = component.Definition

// ContentFunc produces markup for a definition at instantiation time.
type ContentFunc = component.ContentFunc

// Instance is a materialized component.
type Instance = component.Instance

// WidgetInstance is the capability set of lifecycle-bearing instances.
type WidgetInstance = component.WidgetInstance

// ContainerInstance is the capability set of child-managing instances.
type ContainerInstance = component.ContainerInstance

// DomOnlyNode is the markup-only leaf variant.
type DomOnlyNode = component.DomOnlyNode

// Control is the stateful, lazily rendered leaf variant.
type Control = component.Control

// Tree is a materialized definition tree with lifecycle sweeps.
type Tree = component.Tree

// Observer receives lifecycle notifications from a Tree.
type Observer = component.Observer

// Bool returns a pointer to b, for the tri-state DomOnly field.
var Bool = component.Bool

// Materialize builds a whole definition tree: instantiate, attach,
// expose attach points.
var Materialize = component.Materialize

// Instantiate builds a single instance from a definition.
var Instantiate = component.Instantiate

// RegisterType binds a constructor to a definition type in the default
// registry.
var RegisterType = component.RegisterType

// Tree options.
var (
	WithLogger   = component.WithLogger
	WithObserver = component.WithObserver
	WithRegistry = component.WithRegistry
)

// =============================================================================
// Nodes and widgets
// =============================================================================

// Node is a mutable document node.
type Node = dom.Node

// NewElement creates an element node.
var NewElement = dom.NewElement

// ParseFragment parses markup into a node.
var ParseFragment = dom.ParseFragment

// Widget is the lifecycle surface external widgets implement.
type Widget = widget.Widget

// Container is the surface of widgets with ordered child management.
type Container = widget.Container

// =============================================================================
// Manifests and rendering
// =============================================================================

// Manifest is a YAML component manifest.
type Manifest = manifest.Manifest

// LoadManifest reads and parses a manifest file.
var LoadManifest = manifest.Load

// ParseManifest decodes a manifest from YAML.
var ParseManifest = manifest.Parse

// HTML renders a node tree with the default compact configuration.
var HTML = render.String
