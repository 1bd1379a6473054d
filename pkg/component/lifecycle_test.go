package component

import (
	"testing"

	"github.com/trellis-ui/trellis/pkg/dom"
	"github.com/trellis-ui/trellis/pkg/widget"
)

// hookWidget counts lifecycle hook invocations.
type hookWidget struct {
	*widget.Base
	startups int
	destroys int
}

func newHookWidget() *hookWidget {
	return &hookWidget{Base: widget.NewBase(dom.NewElement("div", nil))}
}

func (w *hookWidget) Startup() {
	if w.Started() {
		return
	}
	w.startups++
	w.Base.Startup()
}

func (w *hookWidget) Destroy() {
	if w.BeingDestroyed() {
		return
	}
	w.destroys++
	w.Base.Destroy()
}

func TestStartIdempotent(t *testing.T) {
	hw := newHookWidget()
	inst := WrapWidget(hw, &Definition{}, nil, nil)

	Start(inst)
	Start(inst)
	if hw.startups != 1 {
		t.Errorf("startup hook ran %d times, want 1", hw.startups)
	}
}

func TestStopIdempotent(t *testing.T) {
	hw := newHookWidget()
	inst := WrapWidget(hw, &Definition{}, nil, nil)

	Stop(inst)
	Stop(inst)
	if hw.destroys != 1 {
		t.Errorf("destroy hook ran %d times, want 1", hw.destroys)
	}
}

func TestStopWithoutStart(t *testing.T) {
	// Destroy must be safe on an instance that was never attached or
	// started.
	hw := newHookWidget()
	inst := WrapWidget(hw, &Definition{}, nil, nil)
	Stop(inst)
	if hw.destroys != 1 {
		t.Errorf("destroy hook ran %d times, want 1", hw.destroys)
	}
}

func TestStartPlainNodeIsNoop(t *testing.T) {
	inst := Instantiate(&Definition{Tag: "div"}, nil, nil)
	Start(inst) // DomOnlyNode has no startup hook; must not panic
	Start(nil)
}

func TestStopDomOnlyClearsNode(t *testing.T) {
	parent := Instantiate(&Definition{Tag: "div"}, nil, nil)
	child := Instantiate(&Definition{Tag: "span"}, nil, nil)
	Attach(child, parent, 0)

	Detach(child, parent)
	Stop(child)

	d := child.(*DomOnlyNode)
	if d.Node() != nil {
		t.Error("node reference not cleared after Stop")
	}
	if parent.Node().ChildCount() != 0 {
		t.Error("node still attached")
	}
}

func TestStartStopControl(t *testing.T) {
	c := NewControl(&Definition{DomOnly: Bool(false), Tag: "div"}, nil, nil)

	Start(c)
	if !c.Started() {
		t.Error("control not started")
	}
	Start(c) // no-op

	Stop(c)
	if !c.BeingDestroyed() {
		t.Error("control not destroyed")
	}
	Stop(c) // no-op
	if c.Node() != nil {
		t.Error("node not cleared")
	}
}
