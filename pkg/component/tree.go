package component

import "log/slog"

// AttachPointReceiver is implemented by owners that want materialized
// instances exposed under their definition's AttachPoint name.
type AttachPointReceiver interface {
	SetAttachPoint(name string, inst Instance)
}

// TreeOption configures tree materialization.
type TreeOption func(*Tree)

// WithLogger sets the tree's logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) TreeOption {
	return func(t *Tree) { t.logger = logger }
}

// WithObserver adds a lifecycle observer.
func WithObserver(obs Observer) TreeOption {
	return func(t *Tree) { t.observers = append(t.observers, obs) }
}

// WithRegistry sets the constructor registry used for typed definitions.
// Defaults to DefaultRegistry.
func WithRegistry(reg *Registry) TreeOption {
	return func(t *Tree) { t.registry = reg }
}

// treeEntry records one materialized instance and the parent it was
// attached under, in creation order. Teardown walks it in reverse.
type treeEntry struct {
	inst   Instance
	parent Instance
}

// Tree materializes a definition tree and owns the resulting instances'
// lifecycle. It is the generic component base of the engine: it walks the
// descriptor tree, instantiates each definition, runs the two-phase attach
// (bookkeeping here, physical placement in Attach), exposes attach points
// on the owner, and sweeps startup and teardown.
//
// A Tree is the root context passed to every instantiation it performs.
type Tree struct {
	owner     any
	logger    *slog.Logger
	observers []Observer
	registry  *Registry

	root      Instance
	entries   []treeEntry
	started   bool
	destroyed bool
}

// Materialize builds the instance tree for a definition.
//
// Children are instantiated in authoring order; each child's Position
// decides its index among siblings, appending when unset. Instances that
// cannot be placed are kept in the tree (their lifecycle still runs) but
// reported through the observers and the log.
func Materialize(def *Definition, owner any, opts ...TreeOption) *Tree {
	t := &Tree{owner: owner}
	for _, opt := range opts {
		opt(t)
	}
	if t.logger == nil {
		t.logger = slog.Default()
	}
	if t.registry == nil {
		t.registry = DefaultRegistry
	}

	t.root = t.build(def, nil, 0)
	return t
}

// Root returns the top-level instance, or nil when the root definition
// could not be instantiated.
func (t *Tree) Root() Instance { return t.root }

// Owner returns the logical owner the tree was materialized for.
func (t *Tree) Owner() any { return t.owner }

// Instances returns every materialized instance in creation order.
func (t *Tree) Instances() []Instance {
	out := make([]Instance, 0, len(t.entries))
	for _, e := range t.entries {
		out = append(out, e.inst)
	}
	return out
}

// build instantiates def, attaches it under parent, and recurses into its
// child definitions.
func (t *Tree) build(def *Definition, parent Instance, pos int) Instance {
	if def == nil {
		return nil
	}

	inst := InstantiateWith(t.registry, def, t, t.owner)
	if inst == nil {
		t.logger.Warn("definition produced no instance",
			"name", def.Name, "type", def.Type)
		return nil
	}
	t.entries = append(t.entries, treeEntry{inst: inst, parent: parent})
	for _, obs := range t.observers {
		obs.Instantiated(inst)
	}

	if parent != nil {
		placed := Attach(inst, parent, pos)
		if !placed {
			t.logger.Warn("instance left unattached",
				"name", def.Name, "tag", def.Tag)
		}
		for _, obs := range t.observers {
			obs.Attached(inst, parent, placed)
		}
	}

	if def.AttachPoint != "" {
		if r, ok := t.owner.(AttachPointReceiver); ok {
			r.SetAttachPoint(def.AttachPoint, inst)
		}
	}

	// A parent that was never placed (the root, or an orphan) may still be
	// waiting on deferred rendering. Its children attach into its node, so
	// the creation hook has to run before the recursion.
	if len(def.Components) > 0 && inst.Node() == nil {
		if cr, ok := inst.(interface{ Create() }); ok {
			cr.Create()
		}
	}

	next := 0
	for _, childDef := range def.Components {
		childPos := next
		if childDef != nil && childDef.Position != nil {
			childPos = *childDef.Position
		}
		if t.build(childDef, inst, childPos) != nil {
			next++
		}
	}
	return inst
}

// Startup starts every instance in creation order, so parents start before
// the children attached under them. Attachment always precedes startup:
// the whole tree is placed during Materialize. Idempotent.
func (t *Tree) Startup() {
	if t.started || t.destroyed {
		return
	}
	t.started = true
	for _, e := range t.entries {
		Start(e.inst)
		for _, obs := range t.observers {
			obs.Started(e.inst)
		}
	}
}

// Destroy stops every instance in reverse creation order, then removes any
// remaining placement. Stopping an instance triggers its own detachment
// when its destroy hook owns a node; the explicit Detach afterwards covers
// container bookkeeping and is a no-op for already-detached nodes.
// Idempotent, and safe on a tree that never started.
func (t *Tree) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true

	for i := len(t.entries) - 1; i >= 0; i-- {
		e := t.entries[i]
		Stop(e.inst)
		for _, obs := range t.observers {
			obs.Stopped(e.inst)
		}
		if e.parent != nil {
			Detach(e.inst, e.parent)
			for _, obs := range t.observers {
				obs.Detached(e.inst, e.parent)
			}
		}
	}
	t.entries = nil
	t.root = nil
}
