package markup

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/xlab/treeprint"
)

// Node is a single element in a markup tree.
//
// Node handles are shared references: the tree holds one through the parent's
// child list, and callers may hold any number of others. Comparing two *Node
// values with == tests identity, not structural equality; two separately
// constructed nodes with identical tag and content are distinct.
type Node struct {
	mu sync.RWMutex

	tag      string
	content  string
	attrs    map[string]string
	parent   *Node
	children []*Node

	void bool // emit only the opening tag
	raw  bool // store content and attribute values verbatim
}

// Attr is a single attribute name/value pair.
type Attr struct {
	Name  string
	Value string
}

// New creates a node with the given tag and initial content. The content is
// stored in escaped form. An empty tag marks a passthrough text node: Render
// emits its content verbatim and ignores any attributes or children set on
// it.
func New(tag, content string) *Node {
	return &Node{
		tag:     tag,
		content: Escape(content),
		attrs:   make(map[string]string),
	}
}

// Tag returns the node's tag name.
func (n *Node) Tag() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.tag
}

// Content returns the stored content. Unless the node is in raw mode the
// value is the escaped form of what was last set.
func (n *Node) Content() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.content
}

// SetContent replaces the node's content. The value is escaped unless the
// node is in raw mode.
func (n *Node) SetContent(content string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.raw {
		n.content = content
	} else {
		n.content = Escape(content)
	}
}

// Attr returns the stored value for the named attribute and whether it is
// present.
func (n *Node) Attr(name string) (string, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	v, ok := n.attrs[name]
	return v, ok
}

// Attrs returns a copy of the attribute map. Mutating the returned map does
// not affect the node.
func (n *Node) Attrs() map[string]string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	attrs := make(map[string]string, len(n.attrs))
	for k, v := range n.attrs {
		attrs[k] = v
	}
	return attrs
}

// SetAttr inserts or overwrites a single attribute. Other attributes are
// untouched. The value is escaped unless the node is in raw mode.
func (n *Node) SetAttr(name, value string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.setAttrLocked(name, value)
}

// SetAttrs inserts or overwrites the given attributes. Other attributes are
// untouched.
func (n *Node) SetAttrs(attrs ...Attr) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, a := range attrs {
		n.setAttrLocked(a.Name, a.Value)
	}
}

// SetAllAttrs replaces the entire attribute map. Values are escaped unless
// the node is in raw mode.
func (n *Node) SetAllAttrs(attrs map[string]string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.attrs = make(map[string]string, len(attrs))
	for k, v := range attrs {
		n.setAttrLocked(k, v)
	}
}

func (n *Node) setAttrLocked(name, value string) {
	if n.raw {
		n.attrs[name] = value
	} else {
		n.attrs[name] = Escape(value)
	}
}

// Raw reports whether the node is in raw mode.
func (n *Node) Raw() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.raw
}

// SetRaw toggles raw mode. Turning raw mode on unescapes the stored content
// and every stored attribute value, so the node holds the literal text that
// subsequent renders will emit verbatim. Turning raw mode off leaves stored
// values untouched; only writes made afterwards are escaped again. The
// asymmetry is deliberate.
func (n *Node) SetRaw(raw bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.raw = raw
	if raw {
		n.content = Unescape(n.content)
		for k, v := range n.attrs {
			n.attrs[k] = Unescape(v)
		}
	}
}

// Void reports whether the node is flagged as a void element.
func (n *Node) Void() bool {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.void
}

// SetVoid flags the node as a void element. Void elements render only their
// opening tag, never a closing tag.
func (n *Node) SetVoid(void bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.void = void
}

// String returns a one-line summary of the node for debugging.
func (n *Node) String() string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	var b strings.Builder
	fmt.Fprintf(&b, "Node[%q]", n.tag)
	if n.parent != nil {
		b.WriteString(" parented")
	}
	if n.content != "" {
		fmt.Fprintf(&b, " content=%q", n.content)
	}
	if len(n.attrs) > 0 {
		fmt.Fprintf(&b, " attrs=%v", n.sortedAttrsLocked())
	}
	if len(n.children) > 0 {
		fmt.Fprintf(&b, " children=%d", len(n.children))
	}
	return b.String()
}

// Dump returns a multi-line tree view of the subtree rooted at n, one line
// per node.
func (n *Node) Dump() string {
	tr := treeprint.NewWithRoot(n.label())
	n.dumpChildren(tr)
	return tr.String()
}

func (n *Node) dumpChildren(br treeprint.Tree) {
	for _, ch := range n.Children() {
		sub := br.AddBranch(ch.label())
		ch.dumpChildren(sub)
	}
}

func (n *Node) label() string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	var b strings.Builder
	if n.tag == "" {
		fmt.Fprintf(&b, "#text %q", n.content)
		return b.String()
	}
	b.WriteString(n.tag)
	for _, a := range n.sortedAttrsLocked() {
		fmt.Fprintf(&b, " %s=%q", a.Name, a.Value)
	}
	if n.content != "" {
		fmt.Fprintf(&b, " content=%q", n.content)
	}
	if n.void {
		b.WriteString(" [void]")
	}
	if n.raw {
		b.WriteString(" [raw]")
	}
	return b.String()
}

// sortedAttrsLocked returns the attributes as a name-sorted slice. Callers
// must hold at least a read lock.
func (n *Node) sortedAttrsLocked() []Attr {
	attrs := make([]Attr, 0, len(n.attrs))
	for k, v := range n.attrs {
		attrs = append(attrs, Attr{Name: k, Value: v})
	}
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name < attrs[j].Name })
	return attrs
}
