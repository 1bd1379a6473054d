package widget

import (
	"testing"

	"github.com/trellis-ui/trellis/pkg/dom"
)

func TestBaseLifecycleIdempotent(t *testing.T) {
	b := NewBase(dom.NewElement("div", nil))

	if b.Started() {
		t.Error("new widget should not be started")
	}
	b.Startup()
	b.Startup()
	if !b.Started() {
		t.Error("Started() = false after Startup")
	}

	b.Destroy()
	if !b.BeingDestroyed() {
		t.Error("BeingDestroyed() = false after Destroy")
	}
	if b.Node() != nil {
		t.Error("Node() should be nil after Destroy")
	}
	b.Destroy() // second call must be a no-op
}

func TestBaseDestroyDetaches(t *testing.T) {
	parent := dom.NewElement("div", nil)
	b := NewBase(dom.NewElement("span", nil))
	b.PlaceAt(parent, 0)

	if parent.ChildCount() != 1 {
		t.Fatal("widget node not placed")
	}
	b.Destroy()
	if parent.ChildCount() != 0 {
		t.Error("widget node still attached after Destroy")
	}
}

func TestBaseDestroyNeverAttached(t *testing.T) {
	b := NewBase(dom.NewElement("div", nil))
	b.Destroy() // must not panic
	if b.Node() != nil {
		t.Error("node reference not cleared")
	}
}

func TestContainerNodeFallback(t *testing.T) {
	root := dom.NewElement("div", nil)
	inner := dom.NewElement("section", nil)
	root.Append(inner)

	b := NewBase(root)
	if b.ContainerNode() != root {
		t.Error("ContainerNode should fall back to the root node")
	}
	b.SetContainerNode(inner)
	if b.ContainerNode() != inner {
		t.Error("designated container node not returned")
	}
}

func TestContainerAddChildOrdering(t *testing.T) {
	tests := []struct {
		name  string
		order []int // call order; the value is also the position
	}{
		{"in order", []int{0, 1, 2}},
		{"reversed", []int{2, 1, 0}},
		{"mixed", []int{2, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewContainerBase(dom.NewElement("div", nil))
			tags := []string{"a", "b", "i"}
			added := make(map[int]*Base)
			for _, pos := range tt.order {
				w := NewBase(dom.NewElement(tags[pos], nil))
				added[pos] = w
				c.AddChild(w, pos)
			}

			kids := c.Children()
			if len(kids) != 3 {
				t.Fatalf("len(Children) = %d, want 3", len(kids))
			}
			for i := 0; i < 3; i++ {
				if kids[i] != added[i] {
					t.Errorf("Children[%d] is not the widget added at position %d", i, i)
				}
			}
			// Node order must match child order.
			for i, tag := range tags {
				if got := c.ContainerNode().ChildAt(i).Tag; got != tag {
					t.Errorf("node %d = %q, want %q", i, got, tag)
				}
			}
		})
	}
}

func TestContainerStartsLateChildren(t *testing.T) {
	c := NewContainerBase(dom.NewElement("div", nil))
	c.Startup()

	child := NewBase(dom.NewElement("span", nil))
	c.AddChild(child, 0)
	if !child.Started() {
		t.Error("child added to a started container should be started")
	}
}

func TestContainerRemoveChild(t *testing.T) {
	c := NewContainerBase(dom.NewElement("div", nil))
	child := NewBase(dom.NewElement("span", nil))
	c.AddChild(child, 0)

	c.RemoveChild(child)
	if len(c.Children()) != 0 {
		t.Error("child still listed after RemoveChild")
	}
	if child.Node().Parent() != nil {
		t.Error("child node still attached after RemoveChild")
	}

	c.RemoveChild(child) // non-child removal is a no-op
}

func TestContainerDestroyCascades(t *testing.T) {
	c := NewContainerBase(dom.NewElement("div", nil))
	child := NewBase(dom.NewElement("span", nil))
	c.AddChild(child, 0)

	c.Destroy()
	if !child.BeingDestroyed() {
		t.Error("child not destroyed with container")
	}
	if len(c.Children()) != 0 {
		t.Error("children not cleared on destroy")
	}
}
