// Package dom provides the mutable node tree that component instances are
// placed into.
//
// A Node is a lightweight, server-side stand-in for a DOM node: it has a
// kind, a tag, attributes, ordered children, and a back-reference to its
// parent. Placement operations (InsertAt, Remove) keep parent references
// consistent, so a node has at most one parent at any time.
//
// Markup fragments are turned into nodes with ParseFragment, which tokenizes
// HTML and builds the corresponding subtree.
package dom
