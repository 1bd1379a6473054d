package component

import (
	"testing"

	"github.com/trellis-ui/trellis/pkg/dom"
)

func TestInstantiateDomOnlyDefault(t *testing.T) {
	tests := []struct {
		name string
		def  *Definition
	}{
		{"unset", &Definition{Tag: "ul", Attrs: map[string]string{"class": "list"}}},
		{"explicit true", &Definition{Tag: "ul", Attrs: map[string]string{"class": "list"}, DomOnly: Bool(true)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inst := Instantiate(tt.def, nil, nil)
			d, ok := inst.(*DomOnlyNode)
			if !ok {
				t.Fatalf("Instantiate returned %T, want *DomOnlyNode", inst)
			}
			if d.Node().Tag != "ul" {
				t.Errorf("node tag = %q, want ul", d.Node().Tag)
			}
			if v, _ := d.Node().Attr("class"); v != "list" {
				t.Errorf("class = %q, want list", v)
			}
			if d.Value() != d.Node() {
				t.Error("Value() must be the wrapped node")
			}
		})
	}
}

func TestInstantiateDomOnlyContent(t *testing.T) {
	inst := Instantiate(&Definition{Content: "<li>A</li>"}, nil, nil)
	d, ok := inst.(*DomOnlyNode)
	if !ok {
		t.Fatalf("got %T, want *DomOnlyNode", inst)
	}
	if d.Node().Tag != "li" {
		t.Errorf("node tag = %q, want li", d.Node().Tag)
	}
}

func TestInstantiateContentFunc(t *testing.T) {
	root := &struct{ name string }{"root"}
	owner := &struct{ name string }{"owner"}

	var gotRoot, gotOwner any
	var gotSelf Instance
	def := &Definition{
		Content: ContentFunc(func(r, o any, self Instance) string {
			gotRoot, gotOwner, gotSelf = r, o, self
			return "<p>dynamic</p>"
		}),
	}

	inst := Instantiate(def, root, owner)
	if gotRoot != root || gotOwner != owner {
		t.Error("content func did not receive root/owner context")
	}
	if gotSelf != inst {
		t.Error("content func did not receive the instance under construction")
	}
	if inst.Node().Tag != "p" {
		t.Errorf("node tag = %q, want p", inst.Node().Tag)
	}
}

func TestInstantiateMissingTagAndContent(t *testing.T) {
	// Permissive default, not a validation gate.
	inst := Instantiate(&Definition{}, nil, nil)
	if inst == nil || inst.Node() == nil {
		t.Fatal("empty definition must still produce a node")
	}
	if inst.Node().Tag != "div" {
		t.Errorf("default element = %q, want div", inst.Node().Tag)
	}
}

func TestInstantiateControl(t *testing.T) {
	def := &Definition{DomOnly: Bool(false), Tag: "div", Attrs: map[string]string{"data-x": "1"}}
	inst := Instantiate(def, nil, nil)
	c, ok := inst.(*Control)
	if !ok {
		t.Fatalf("got %T, want *Control", inst)
	}
	if c.Node() != nil {
		t.Error("Control must have no node before render")
	}

	first := c.Render()
	second := c.Render()
	if first == nil || first != second {
		t.Error("Render must be idempotent and return the identical node")
	}
	if v, _ := first.Attr("data-x"); v != "1" {
		t.Errorf("data-x = %q, want 1", v)
	}
}

func TestInstantiateTypeRoutesToRegistry(t *testing.T) {
	reg := NewRegistry()
	marker := &DomOnlyNode{}
	var gotDef *Definition
	reg.Register("store", func(def *Definition, root, owner any) Instance {
		gotDef = def
		return marker
	})

	def := &Definition{Type: "store", Tag: "ignored"}
	inst := InstantiateWith(reg, def, nil, nil)
	if inst != marker {
		t.Error("typed definition did not route to the registered constructor")
	}
	if gotDef != def {
		t.Error("constructor did not receive the definition")
	}
}

func TestInstantiateUnknownType(t *testing.T) {
	if inst := InstantiateWith(NewRegistry(), &Definition{Type: "nope"}, nil, nil); inst != nil {
		t.Errorf("unknown type should yield nil, got %T", inst)
	}
}

func TestInstantiateNil(t *testing.T) {
	if inst := Instantiate(nil, nil, nil); inst != nil {
		t.Errorf("nil definition should yield nil, got %T", inst)
	}
}

func TestRegistryTypes(t *testing.T) {
	reg := NewRegistry()
	reg.Register("b", func(*Definition, any, any) Instance { return nil })
	reg.Register("a", func(*Definition, any, any) Instance { return nil })

	got := reg.Types()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("Types() = %v, want [a b]", got)
	}
}

func TestDomOnlyNodeDestroy(t *testing.T) {
	parent := dom.NewElement("div", nil)
	inst := Instantiate(&Definition{Tag: "span"}, nil, nil).(*DomOnlyNode)
	parent.Append(inst.Node())

	inst.Destroy()
	if parent.ChildCount() != 0 {
		t.Error("node still attached after Destroy")
	}
	if inst.Node() != nil {
		t.Error("node reference not cleared")
	}
	inst.Destroy() // idempotent
}
