package observe

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/trellis-ui/trellis/pkg/component"
)

func listDefinition() *component.Definition {
	return &component.Definition{
		Name: "list",
		Tag:  "ul",
		Components: []*component.Definition{
			{Content: "<li>A</li>"},
			{DomOnly: component.Bool(false), Tag: "li"},
		},
	}
}

func TestMetricsObserver(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg), WithNamespace("test"))

	tree := component.Materialize(listDefinition(), nil, component.WithObserver(m))

	if got := testutil.ToFloat64(m.instancesTotal.WithLabelValues("dom")); got != 2 {
		t.Errorf("dom instances = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.instancesTotal.WithLabelValues("control")); got != 1 {
		t.Errorf("control instances = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.attachesTotal.WithLabelValues("placed")); got != 2 {
		t.Errorf("placed attaches = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.liveInstances); got != 3 {
		t.Errorf("live instances = %v, want 3", got)
	}

	tree.Startup()
	if got := testutil.ToFloat64(m.startsTotal); got != 3 {
		t.Errorf("starts = %v, want 3", got)
	}

	tree.Destroy()
	if got := testutil.ToFloat64(m.stopsTotal); got != 3 {
		t.Errorf("stops = %v, want 3", got)
	}
	if got := testutil.ToFloat64(m.liveInstances); got != 0 {
		t.Errorf("live instances after destroy = %v, want 0", got)
	}
}

func TestMetricsOrphanOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(WithRegistry(reg))

	creg := component.NewRegistry()
	creg.Register("ghost", func(def *component.Definition, root, owner any) component.Instance {
		return component.NewDomOnlyNode(nil, def, root, owner)
	})
	def := &component.Definition{
		Type:       "ghost",
		Components: []*component.Definition{{Tag: "span"}},
	}
	component.Materialize(def, nil,
		component.WithRegistry(creg),
		component.WithObserver(m))

	if got := testutil.ToFloat64(m.attachesTotal.WithLabelValues("orphaned")); got != 1 {
		t.Errorf("orphaned attaches = %v, want 1", got)
	}
}

func TestVariantOf(t *testing.T) {
	dom := component.Instantiate(&component.Definition{Tag: "div"}, nil, nil)
	if v := variantOf(dom); v != "dom" {
		t.Errorf("dom variant = %q", v)
	}
	ctrl := component.NewControl(&component.Definition{DomOnly: component.Bool(false)}, nil, nil)
	if v := variantOf(ctrl); v != "control" {
		t.Errorf("control variant = %q", v)
	}
}
