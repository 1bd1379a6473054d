package component

import "github.com/trellis-ui/trellis/pkg/dom"

// referenceNode resolves where a parent hosts child nodes: its dedicated
// child-container node if it declares one, else its own root node.
func referenceNode(parent Instance) *dom.Node {
	if parent == nil {
		return nil
	}
	if ref := parent.ContainerNode(); ref != nil {
		return ref
	}
	return parent.Node()
}

// Attach physically places child into parent's hierarchy at the given
// position. It runs after the generic tree bookkeeping and only concerns
// placement:
//
//   - widget-capable child, container-capable parent: the parent's ordered
//     child management takes it;
//   - widget-capable child, parent with a reference node: the child places
//     its own root node there (falling back to the parent's root node when
//     the child's node is the reference node, to avoid self-parenting);
//   - node-bearing child: the node is inserted into the reference node;
//   - otherwise the child stays unattached.
//
// The return value reports whether placement happened. An unplaced child is
// not an error; callers that care surface it through their own reporting.
func Attach(child, parent Instance, pos int) bool {
	if child == nil || parent == nil {
		return false
	}

	ref := referenceNode(parent)

	if w, ok := child.(WidgetInstance); ok {
		if c, ok := parent.(ContainerInstance); ok {
			c.AddChild(child, pos)
			return true
		}
		if ref != nil {
			if w.Node() == ref {
				ref = parent.Node()
			}
			w.PlaceAt(ref, pos)
			return true
		}
		return false
	}

	if n := child.Node(); n != nil && ref != nil {
		ref.InsertAt(n, pos)
		return true
	}
	return false
}

// Detach is the mirror of Attach: a container-capable parent removes the
// child through its child management; otherwise the child's node is removed
// from its parent node directly, a no-op when it has none.
func Detach(child, parent Instance) {
	if child == nil {
		return
	}
	if c, ok := parent.(ContainerInstance); ok {
		c.RemoveChild(child)
		return
	}
	if n := child.Node(); n != nil {
		n.Remove()
	}
}
