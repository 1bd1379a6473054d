package component

import "github.com/trellis-ui/trellis/pkg/dom"

// ContentFunc produces markup for a definition at instantiation time.
// It receives the tree's root reference, the logical owner, and the
// instance being built.
type ContentFunc func(root, owner any, self Instance) string

// Definition is the declarative, immutable-at-use descriptor the factory
// materializes instances from.
//
// Content takes precedence over Tag and Attrs when present. A definition
// with neither is still valid: the factory falls back to a bare default
// element rather than failing.
type Definition struct {
	// Name identifies the definition. Optional; used for logging and
	// attach-point defaults.
	Name string `yaml:"name,omitempty"`

	// Tag is the element kind to construct when Content is absent.
	// Defaults to "div".
	Tag string `yaml:"tag,omitempty"`

	// Attrs are the attributes for the constructed element.
	Attrs map[string]string `yaml:"attrs,omitempty"`

	// Content is static markup (string) or a ContentFunc producing markup.
	Content any `yaml:"content,omitempty"`

	// DomOnly selects the leaf variant. Nil or true produces a markup-only
	// DomOnlyNode; explicitly false produces a stateful Control.
	DomOnly *bool `yaml:"domOnly,omitempty"`

	// Type, when set, routes instantiation to a registered constructor and
	// bypasses the leaf-variant logic entirely.
	Type string `yaml:"type,omitempty"`

	// Components are child definitions, materialized recursively in order.
	Components []*Definition `yaml:"components,omitempty"`

	// Props are extra properties mixed into the instance.
	Props map[string]any `yaml:"props,omitempty"`

	// Position is the insertion index among siblings. Nil appends.
	Position *int `yaml:"position,omitempty"`

	// AttachPoint is the name the instance is exposed under on its owner.
	AttachPoint string `yaml:"attachPoint,omitempty"`
}

// Bool returns a pointer to b, for setting the tri-state DomOnly field.
func Bool(b bool) *bool { return &b }

// IsDomOnly reports whether the definition selects the markup-only variant.
// This is the default; only an explicit false opts into a Control.
func (d *Definition) IsDomOnly() bool {
	return d.DomOnly == nil || *d.DomOnly
}

// resolveContent turns the Content field into markup.
// The second return is false when Content is absent or of an unusable type.
func resolveContent(content any, root, owner any, self Instance) (string, bool) {
	switch v := content.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case ContentFunc:
		return v(root, owner, self), true
	case func(root, owner any, self Instance) string:
		return v(root, owner, self), true
	default:
		return "", false
	}
}

// contentNode resolves and parses definition content into a node.
// Returns nil when there is no usable content.
func contentNode(content any, root, owner any, self Instance) *dom.Node {
	markup, ok := resolveContent(content, root, owner, self)
	if !ok {
		return nil
	}
	return dom.ParseFragment(markup)
}
