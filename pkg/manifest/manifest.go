// Package manifest loads component trees from YAML documents.
//
// A manifest carries one root definition plus document metadata:
//
//	name: landing
//	root:
//	  tag: ul
//	  attrs: {class: list}
//	  components:
//	    - content: "<li>A</li>"
//	    - domOnly: false
//	      tag: li
//	      props: {label: B}
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/trellis-ui/trellis/pkg/component"
)

// ErrNoRoot is returned when a manifest has no root definition.
var ErrNoRoot = errors.New("manifest: no root definition")

// Manifest is a parsed component manifest.
type Manifest struct {
	// Name identifies the manifest; defaults to the root definition's
	// name when absent.
	Name string `yaml:"name,omitempty"`

	// Root is the definition tree to materialize.
	Root *component.Definition `yaml:"root"`
}

// Parse decodes a manifest from YAML. Unknown fields are rejected so typos
// in component descriptors surface instead of silently dropping subtrees.
func Parse(data []byte) (*Manifest, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRoot
		}
		return nil, fmt.Errorf("manifest: decode: %w", err)
	}
	if m.Root == nil {
		return nil, ErrNoRoot
	}
	if m.Name == "" {
		m.Name = m.Root.Name
	}
	return &m, nil
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w (%s)", err, path)
	}
	return m, nil
}

// Materialize builds a tree from the manifest's root definition.
func (m *Manifest) Materialize(owner any, opts ...component.TreeOption) *component.Tree {
	return component.Materialize(m.Root, owner, opts...)
}

// Encode serializes the manifest back to YAML.
func (m *Manifest) Encode() ([]byte, error) {
	data, err := yaml.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("manifest: encode: %w", err)
	}
	return data, nil
}
