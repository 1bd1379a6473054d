package component

// Observer receives lifecycle notifications from a Tree. Implementations
// must not mutate the tree from inside a callback.
//
// The attached callback's placed argument is false when the attachment
// manager could not place the child anywhere (no reference node, no
// container capability). The engine deliberately does not treat that as an
// error; observers are how it surfaces.
type Observer interface {
	Instantiated(inst Instance)
	Attached(child, parent Instance, placed bool)
	Started(inst Instance)
	Stopped(inst Instance)
	Detached(child, parent Instance)
}

// ObserverFuncs adapts plain functions to the Observer interface. Nil
// fields are skipped.
type ObserverFuncs struct {
	OnInstantiated func(inst Instance)
	OnAttached     func(child, parent Instance, placed bool)
	OnStarted      func(inst Instance)
	OnStopped      func(inst Instance)
	OnDetached     func(child, parent Instance)
}

func (o ObserverFuncs) Instantiated(inst Instance) {
	if o.OnInstantiated != nil {
		o.OnInstantiated(inst)
	}
}

func (o ObserverFuncs) Attached(child, parent Instance, placed bool) {
	if o.OnAttached != nil {
		o.OnAttached(child, parent, placed)
	}
}

func (o ObserverFuncs) Started(inst Instance) {
	if o.OnStarted != nil {
		o.OnStarted(inst)
	}
}

func (o ObserverFuncs) Stopped(inst Instance) {
	if o.OnStopped != nil {
		o.OnStopped(inst)
	}
}

func (o ObserverFuncs) Detached(child, parent Instance) {
	if o.OnDetached != nil {
		o.OnDetached(child, parent)
	}
}
