// Package pane provides a layout pane: a container widget that hosts one
// view at a time and forwards it into its node.
package pane

import (
	"github.com/trellis-ui/trellis/pkg/dom"
	"github.com/trellis-ui/trellis/pkg/widget"
)

// Pane is a single-view container. Setting a view replaces the previous
// one; the displaced view is detached but not destroyed, so it can be
// re-shown elsewhere.
type Pane struct {
	*widget.ContainerBase
	view widget.Widget
}

// New creates an empty pane backed by a div with the given attributes.
func New(attrs map[string]string) *Pane {
	node := dom.NewElement("div", attrs)
	node.AddClass("pane")
	return &Pane{ContainerBase: widget.NewContainerBase(node)}
}

// SetView swaps the hosted view. A nil view empties the pane.
func (p *Pane) SetView(v widget.Widget) {
	if p.view == v {
		return
	}
	if p.view != nil {
		p.RemoveChild(p.view)
	}
	p.view = v
	if v != nil {
		p.AddChild(v, 0)
	}
}

// View returns the hosted view, or nil when the pane is empty.
func (p *Pane) View() widget.Widget { return p.view }

// Destroy clears the view reference along with the container teardown.
func (p *Pane) Destroy() {
	p.view = nil
	p.ContainerBase.Destroy()
}
