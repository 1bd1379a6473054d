// Package widget provides the widget base that full-featured component
// instances are built on: a root node, an optional child-container node,
// startup/destroy lifecycle hooks, node placement, ordered child management,
// and an observable get/set property protocol.
//
// The component engine consumes widgets through the Widget and Container
// interfaces; capability is expressed by which interface a value satisfies,
// fixed at construction time.
package widget
