package trellis_test

import (
	"testing"

	"github.com/trellis-ui/trellis"
)

func TestFacadeMaterialize(t *testing.T) {
	def := &trellis.Definition{
		Tag:   "ul",
		Attrs: map[string]string{"class": "list"},
		Components: []*trellis.Definition{
			{Content: "<li>A</li>"},
		},
	}
	tree := trellis.Materialize(def, nil)
	tree.Startup()
	defer tree.Destroy()

	if got := trellis.HTML(tree.Root().Node()); got != `<ul class="list"><li>A</li></ul>` {
		t.Errorf("HTML = %q", got)
	}
}

func TestFacadeManifest(t *testing.T) {
	m, err := trellis.ParseManifest([]byte("root:\n  tag: div\n"))
	if err != nil {
		t.Fatalf("ParseManifest: %v", err)
	}
	tree := m.Materialize(nil)
	if tree.Root() == nil {
		t.Fatal("no root")
	}
	if tree.Root().Node().Tag != "div" {
		t.Errorf("tag = %q", tree.Root().Node().Tag)
	}
}

func TestFacadeContentFunc(t *testing.T) {
	def := &trellis.Definition{
		Content: trellis.ContentFunc(func(root, owner any, self trellis.Instance) string {
			return "<p>made</p>"
		}),
	}
	tree := trellis.Materialize(def, nil)
	if trellis.HTML(tree.Root().Node()) != "<p>made</p>" {
		t.Error("content func not invoked")
	}
}
