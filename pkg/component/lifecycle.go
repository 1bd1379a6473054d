package component

// destroyer is satisfied by non-widget variants that still own teardown
// (DomOnlyNode clears its wrapped node).
type destroyer interface {
	Destroy()
}

// Start runs the instance's startup hook. Guaranteed no-op when the
// instance is widget-capable and already started. Plain node instances have
// no startup hook; they count as started once attached.
func Start(inst Instance) {
	w, ok := inst.(WidgetInstance)
	if !ok {
		return
	}
	if w.Started() {
		return
	}
	w.Startup()
}

// Stop runs the instance's destroy hook. Guaranteed no-op when the instance
// is widget-capable and already being destroyed. Safe to call on an
// instance that was never attached; the hook detaches the node itself when
// needed.
func Stop(inst Instance) {
	if w, ok := inst.(WidgetInstance); ok {
		if w.BeingDestroyed() {
			return
		}
		w.Destroy()
		return
	}
	if d, ok := inst.(destroyer); ok {
		d.Destroy()
	}
}
