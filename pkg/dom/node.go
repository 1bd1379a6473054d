package dom

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <ul>, etc.
	KindText                 // Plain text
	KindRaw                  // Pre-escaped markup
	KindFragment             // Grouping without a wrapper element
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindRaw:
		return "Raw"
	case KindFragment:
		return "Fragment"
	default:
		return "Unknown"
	}
}

// Node is a single node in the materialized tree.
//
// Children and the parent reference are mutated only through the placement
// methods below; callers never touch them directly.
type Node struct {
	Kind Kind
	Tag  string // Element tag name (e.g. "div")
	Text string // For KindText and KindRaw

	attrs    map[string]string
	children []*Node
	parent   *Node
	pos      int // requested sibling position, recorded by InsertAt
}

// NewElement creates an element node with the given tag and attributes.
// An empty tag falls back to "div".
func NewElement(tag string, attrs map[string]string) *Node {
	if tag == "" {
		tag = "div"
	}
	n := &Node{Kind: KindElement, Tag: tag}
	for k, v := range attrs {
		n.SetAttr(k, v)
	}
	return n
}

// NewText creates a text node.
func NewText(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// NewRaw creates a raw markup node. The text is emitted unescaped.
func NewRaw(markup string) *Node {
	return &Node{Kind: KindRaw, Text: markup}
}

// NewFragment creates a fragment node grouping the given children.
func NewFragment(children ...*Node) *Node {
	f := &Node{Kind: KindFragment}
	for _, c := range children {
		if c != nil {
			f.InsertAt(c, f.ChildCount())
		}
	}
	return f
}

// Attr returns the value of an attribute and whether it is set.
func (n *Node) Attr(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// SetAttr sets an attribute on the node.
func (n *Node) SetAttr(key, value string) {
	if key == "" {
		return
	}
	if n.attrs == nil {
		n.attrs = make(map[string]string)
	}
	n.attrs[key] = value
}

// RemoveAttr deletes an attribute from the node.
func (n *Node) RemoveAttr(key string) {
	delete(n.attrs, key)
}

// Attrs returns a copy of the node's attributes.
func (n *Node) Attrs() map[string]string {
	if len(n.attrs) == 0 {
		return nil
	}
	out := make(map[string]string, len(n.attrs))
	for k, v := range n.attrs {
		out[k] = v
	}
	return out
}

// AddClass appends a class token to the class attribute if not present.
func (n *Node) AddClass(class string) {
	if class == "" {
		return
	}
	cur, ok := n.Attr("class")
	if !ok || cur == "" {
		n.SetAttr("class", class)
		return
	}
	for _, tok := range splitSpace(cur) {
		if tok == class {
			return
		}
	}
	n.SetAttr("class", cur+" "+class)
}

func splitSpace(s string) []string {
	var out []string
	start := -1
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' || s[i] == '\t' || s[i] == '\n' {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}

// Parent returns the node's current parent, or nil if detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the node's children in order.
// The returned slice is a copy; mutating it does not affect the tree.
func (n *Node) Children() []*Node {
	if len(n.children) == 0 {
		return nil
	}
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// ChildAt returns the child at index i, or nil if out of range.
func (n *Node) ChildAt(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// Index returns the node's position among its siblings, or -1 if detached.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

// InsertAt places child under n at the given position. Each child records
// the position it was requested at; a new child goes in front of the first
// sibling recorded at a greater position, so siblings end up in ascending
// position order regardless of call order. Equal positions keep call order.
//
// Inserting a node that already has a parent moves it: the child is removed
// from its old parent first, keeping the single-parent invariant. Inserting
// a fragment splices the fragment's children in place of the fragment.
func (n *Node) InsertAt(child *Node, pos int) {
	if child == nil || child == n {
		return
	}
	if child.Kind == KindFragment {
		for i, c := range child.takeChildren() {
			n.InsertAt(c, pos+i)
		}
		return
	}
	child.Remove()
	child.pos = pos
	at := len(n.children)
	for i, c := range n.children {
		if c.pos > pos {
			at = i
			break
		}
	}
	n.children = append(n.children, nil)
	copy(n.children[at+1:], n.children[at:])
	n.children[at] = child
	child.parent = n
}

// Append places child after every current child, whatever positions they
// were inserted at.
func (n *Node) Append(child *Node) {
	pos := len(n.children)
	if k := len(n.children); k > 0 && n.children[k-1].pos >= pos {
		pos = n.children[k-1].pos + 1
	}
	n.InsertAt(child, pos)
}

// Remove detaches the node from its parent. A no-op when already detached.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// takeChildren detaches and returns all children, preserving order.
func (n *Node) takeChildren() []*Node {
	out := n.children
	n.children = nil
	for _, c := range out {
		c.parent = nil
	}
	return out
}
