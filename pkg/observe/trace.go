package observe

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/trellis-ui/trellis/pkg/component"
)

// Default tracer name.
const defaultTracerName = "trellis"

// TracerConfig configures tree tracing.
type TracerConfig struct {
	// TracerName is the name of the tracer (default: "trellis").
	TracerName string
}

// TracerOption configures tree tracing.
type TracerOption func(*TracerConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracerOption {
	return func(c *TracerConfig) {
		c.TracerName = name
	}
}

// Tracer wraps tree operations in OpenTelemetry spans.
//
// The tracer uses the global OpenTelemetry tracer provider. Configure it
// in your main() before materializing trees:
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
//	otel.SetTracerProvider(tp)
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer resolves a tracer from the global provider.
func NewTracer(opts ...TracerOption) *Tracer {
	config := TracerConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}
	return &Tracer{tracer: otel.Tracer(config.TracerName)}
}

// Materialize builds a tree inside a span. The span records the root
// definition's identity, the number of instances produced, and an error
// status when no root instance came out.
func (t *Tracer) Materialize(ctx context.Context, def *component.Definition, owner any, opts ...component.TreeOption) *component.Tree {
	_, span := t.tracer.Start(ctx, "trellis.materialize",
		trace.WithAttributes(defAttrs(def)...))
	defer span.End()

	tree := component.Materialize(def, owner, opts...)

	span.SetAttributes(attribute.Int("trellis.instances", len(tree.Instances())))
	if tree.Root() == nil {
		span.SetStatus(codes.Error, "no root instance")
	} else {
		span.SetStatus(codes.Ok, "")
	}
	return tree
}

// Startup runs the tree's startup sweep inside a span.
func (t *Tracer) Startup(ctx context.Context, tree *component.Tree) {
	_, span := t.tracer.Start(ctx, "trellis.startup",
		trace.WithAttributes(attribute.Int("trellis.instances", len(tree.Instances()))))
	defer span.End()
	tree.Startup()
}

// Destroy tears the tree down inside a span.
func (t *Tracer) Destroy(ctx context.Context, tree *component.Tree) {
	_, span := t.tracer.Start(ctx, "trellis.destroy",
		trace.WithAttributes(attribute.Int("trellis.instances", len(tree.Instances()))))
	defer span.End()
	tree.Destroy()
}

func defAttrs(def *component.Definition) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 3)
	if def == nil {
		return attrs
	}
	if def.Name != "" {
		attrs = append(attrs, attribute.String("trellis.component", def.Name))
	}
	if def.Type != "" {
		attrs = append(attrs, attribute.String("trellis.type", def.Type))
	}
	attrs = append(attrs, attribute.Int("trellis.children", len(def.Components)))
	return attrs
}
