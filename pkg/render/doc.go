// Package render serializes node trees to HTML.
//
// The renderer escapes text content and attribute values, collapses void
// elements, and optionally pretty-prints with configurable indentation.
// Raw nodes pass through unescaped; fragments render their children with
// no wrapper element.
package render
