package widget

import (
	"testing"

	"github.com/trellis-ui/trellis/pkg/dom"
)

func TestPropertiesGetSet(t *testing.T) {
	var p Properties
	if p.Get("title") != nil {
		t.Error("unset property should be nil")
	}
	p.Set("title", "hello")
	if p.Get("title") != "hello" {
		t.Errorf("Get(title) = %v", p.Get("title"))
	}
	if !p.Has("title") || p.Has("missing") {
		t.Error("Has() wrong")
	}
}

func TestPropertiesWatch(t *testing.T) {
	var p Properties
	var calls []string
	h := p.Watch("label", func(name string, old, new any) {
		calls = append(calls, name)
		if name != "label" {
			t.Errorf("watcher got name %q", name)
		}
	})

	p.Set("label", "a")
	p.Set("other", "b") // not watched
	if len(calls) != 1 {
		t.Fatalf("watcher called %d times, want 1", len(calls))
	}

	h.Remove()
	h.Remove() // double remove is safe
	p.Set("label", "c")
	if len(calls) != 1 {
		t.Error("watcher fired after Remove")
	}
}

func TestPropertiesWatchOldNew(t *testing.T) {
	var p Properties
	var gotOld, gotNew any
	p.Watch("n", func(name string, old, new any) {
		gotOld, gotNew = old, new
	})
	p.Set("n", 1)
	if gotOld != nil || gotNew != 1 {
		t.Errorf("first write old=%v new=%v", gotOld, gotNew)
	}
	p.Set("n", 2)
	if gotOld != 1 || gotNew != 2 {
		t.Errorf("second write old=%v new=%v", gotOld, gotNew)
	}
}

func TestPropertiesWatchAll(t *testing.T) {
	var p Properties
	count := 0
	p.WatchAll(func(name string, old, new any) { count++ })
	p.Set("a", 1)
	p.Set("b", 2)
	if count != 2 {
		t.Errorf("catch-all watcher called %d times, want 2", count)
	}
}

func TestMappedAttributeWrite(t *testing.T) {
	b := NewBase(dom.NewElement("div", nil))
	b.MapAttribute("label", "aria-label")

	b.Set("label", "menu")
	if v, _ := b.Node().Attr("aria-label"); v != "menu" {
		t.Errorf("aria-label = %q, want menu", v)
	}

	// Unmapped properties never touch the node.
	b.Set("internal", 42)
	if _, ok := b.Node().Attr("internal"); ok {
		t.Error("unmapped property leaked into attributes")
	}
}

func TestAttrString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "x", "x"},
		{"int", 7, "7"},
		{"bool", true, "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AttrString(tt.in); got != tt.want {
				t.Errorf("AttrString(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
