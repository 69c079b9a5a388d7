package doc

import (
	"fmt"

	"github.com/tagtree-dev/tagtree/pkg/markup"
)

// Build constructs the markup tree described by the definition. Errors name
// the offending entry by its path through the children lists.
func (n *Node) Build() (*markup.Node, error) {
	return n.build("$")
}

func (n *Node) build(path string) (*markup.Node, error) {
	if n.Tag == "" {
		if len(n.Attrs) > 0 {
			return nil, fmt.Errorf("doc: passthrough node at %s carries attributes", path)
		}
		if n.Void {
			return nil, fmt.Errorf("doc: passthrough node at %s carries the void flag", path)
		}
		if len(n.Children) > 0 {
			return nil, fmt.Errorf("doc: passthrough node at %s carries children", path)
		}
	}

	var node *markup.Node
	if n.Raw {
		// Raw content must reach the node unescaped, so set it after the
		// mode switch instead of through the constructor.
		node = markup.New(n.Tag, "")
		node.SetRaw(true)
		node.SetContent(n.Content)
	} else {
		node = markup.New(n.Tag, n.Content)
	}
	if len(n.Attrs) > 0 {
		node.SetAllAttrs(n.Attrs)
	}
	node.SetVoid(n.Void)

	for i := range n.Children {
		child, err := n.Children[i].build(fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		if err := node.AppendChild(child); err != nil {
			return nil, fmt.Errorf("doc: attach child at %s.children[%d]: %w", path, i, err)
		}
	}
	return node, nil
}
