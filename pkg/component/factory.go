package component

import (
	"sort"
	"sync"

	"github.com/trellis-ui/trellis/pkg/dom"
)

// Constructor builds an instance for a definition with a declared Type.
// This is the non-UI instantiation path: none of the leaf-variant logic
// applies to it.
type Constructor func(def *Definition, root, owner any) Instance

// Registry maps type names to constructors.
type Registry struct {
	mu           sync.RWMutex
	constructors map[string]Constructor
}

// NewRegistry creates an empty constructor registry.
func NewRegistry() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// Register binds a type name to a constructor, replacing any previous
// binding for the name.
func (r *Registry) Register(name string, fn Constructor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.constructors[name] = fn
}

// Lookup returns the constructor for a type name, or nil.
func (r *Registry) Lookup(name string) Constructor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.constructors[name]
}

// Types returns the registered type names, sorted.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the registry used by the package-level Instantiate.
var DefaultRegistry = NewRegistry()

// RegisterType binds a type name on the default registry.
func RegisterType(name string, fn Constructor) {
	DefaultRegistry.Register(name, fn)
}

// Instantiate materializes a definition into an instance using the default
// registry.
//
// Dispatch order:
//   - def.Type set: the registered constructor builds the instance. An
//     unknown type yields nil; the caller decides whether to report it.
//   - DomOnly unset or true: content is resolved (called if a function,
//     used verbatim if a string) and parsed into a node, or an element is
//     built from Tag and Attrs; the node is wrapped in a DomOnlyNode.
//   - DomOnly explicitly false: a Control is built with rendering deferred.
//
// A definition with no tag and no content is not an error; the permissive
// default is a bare element.
func Instantiate(def *Definition, root, owner any) Instance {
	return InstantiateWith(DefaultRegistry, def, root, owner)
}

// InstantiateWith is Instantiate against an explicit registry.
func InstantiateWith(reg *Registry, def *Definition, root, owner any) Instance {
	if def == nil {
		return nil
	}

	if def.Type != "" {
		fn := reg.Lookup(def.Type)
		if fn == nil {
			return nil
		}
		return fn(def, root, owner)
	}

	if def.IsDomOnly() {
		inst := NewDomOnlyNode(nil, def, root, owner)
		node := contentNode(def.Content, root, owner, inst)
		if node == nil {
			node = dom.NewElement(def.Tag, def.Attrs)
		}
		inst.node = node
		return inst
	}

	return NewControl(def, root, owner)
}
