package widget

import "fmt"

// WatchFunc observes a property write. It receives the property name and
// the old and new values.
type WatchFunc func(name string, old, new any)

// WatchHandle identifies a registered watcher and can remove it.
type WatchHandle struct {
	props *Properties
	name  string
	id    int
}

// Remove unregisters the watcher. Safe to call more than once.
func (h *WatchHandle) Remove() {
	if h.props == nil {
		return
	}
	entries := h.props.watchers[h.name]
	for i, e := range entries {
		if e.id == h.id {
			h.props.watchers[h.name] = append(entries[:i], entries[i+1:]...)
			break
		}
	}
	h.props = nil
}

type watchEntry struct {
	id int
	fn WatchFunc
}

// Properties is the observable get/set property store shared by widgets and
// controls. Writes notify per-name watchers and catch-all watchers in
// registration order.
//
// Properties is not safe for concurrent use; the engine is single-threaded
// by design.
type Properties struct {
	values   map[string]any
	watchers map[string][]watchEntry
	attrMap  map[string]string
	nextID   int

	// onSet, when non-nil, receives writes whose property has an attribute
	// mapping. Set by the embedding widget base.
	onSet func(attr, value string)
}

// Get returns the current value of a property, or nil if never set.
func (p *Properties) Get(name string) any {
	return p.values[name]
}

// Has reports whether the property has been set.
func (p *Properties) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// Set stores a property value and notifies watchers.
func (p *Properties) Set(name string, value any) {
	if p.values == nil {
		p.values = make(map[string]any)
	}
	old := p.values[name]
	p.values[name] = value

	if attr, ok := p.attrMap[name]; ok && p.onSet != nil {
		p.onSet(attr, AttrString(value))
	}
	p.notify(name, old, value)
}

func (p *Properties) notify(name string, old, value any) {
	for _, e := range append([]watchEntry(nil), p.watchers[name]...) {
		e.fn(name, old, value)
	}
	for _, e := range append([]watchEntry(nil), p.watchers[""]...) {
		e.fn(name, old, value)
	}
}

// Watch registers a watcher for a single property and returns its handle.
func (p *Properties) Watch(name string, fn WatchFunc) *WatchHandle {
	if p.watchers == nil {
		p.watchers = make(map[string][]watchEntry)
	}
	p.nextID++
	p.watchers[name] = append(p.watchers[name], watchEntry{id: p.nextID, fn: fn})
	return &WatchHandle{props: p, name: name, id: p.nextID}
}

// WatchAll registers a watcher notified for every property write.
func (p *Properties) WatchAll(fn WatchFunc) *WatchHandle {
	return p.Watch("", fn)
}

// MapAttribute declares that writes to prop mirror into the node attribute
// attr on node-backed instances.
func (p *Properties) MapAttribute(prop, attr string) {
	if p.attrMap == nil {
		p.attrMap = make(map[string]string)
	}
	p.attrMap[prop] = attr
}

// AttributeFor returns the attribute mapped to prop, if any.
func (p *Properties) AttributeFor(prop string) (string, bool) {
	attr, ok := p.attrMap[prop]
	return attr, ok
}

// AttrString renders a property value as an attribute string.
func AttrString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}
