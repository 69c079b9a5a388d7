package markup

import (
	"bytes"
	"io"
)

// Render serializes the subtree rooted at n. sep is inserted between
// rendered fragments: after each opening fragment that is followed by more
// output, and before a closing tag that follows children.
//
// A node with an empty tag renders as its content, verbatim. A void element
// renders its opening tag, its content and children, then a trailing sep and
// no closing tag. A non-void node with children closes after sep + "</tag>";
// a non-void leaf closes immediately.
func (n *Node) Render(sep string) string {
	var buf bytes.Buffer
	n.RenderTo(&buf, sep) // bytes.Buffer writes never fail
	return buf.String()
}

// RenderTo streams the subtree rooted at n to w with the same semantics as
// Render. Rendering never mutates the tree.
func (n *Node) RenderTo(w io.Writer, sep string) error {
	n.mu.RLock()
	tag := n.tag
	content := n.content
	void := n.void
	attrs := n.sortedAttrsLocked()
	children := make([]*Node, len(n.children))
	copy(children, n.children)
	n.mu.RUnlock()

	if tag == "" {
		_, err := io.WriteString(w, content)
		return err
	}

	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	for _, a := range attrs {
		if _, err := io.WriteString(w, " "+a.Name+`="`+a.Value+`"`); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, content); err != nil {
		return err
	}

	for _, ch := range children {
		if _, err := io.WriteString(w, sep); err != nil {
			return err
		}
		if err := ch.RenderTo(w, sep); err != nil {
			return err
		}
	}

	switch {
	case void:
		// Children of a void element were still rendered and separated
		// above; the element is left structurally open on purpose.
		_, err := io.WriteString(w, sep)
		return err
	case len(children) > 0:
		_, err := io.WriteString(w, sep+"</"+tag+">")
		return err
	default:
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	}
}
