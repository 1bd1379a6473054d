// Package observe provides instrumentation for component trees: a
// Prometheus observer recording lifecycle activity and an OpenTelemetry
// tracer wrapping materialization, startup, and teardown.
package observe
