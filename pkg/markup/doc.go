// Package markup implements the tree model behind tagtree documents.
//
// A document is a tree of [Node] values. Each node carries a tag name, text
// content, an attribute map, and two rendering flags: void elements emit no
// closing tag, and raw nodes bypass entity escaping. A node with an empty
// tag is a passthrough text node whose content is emitted verbatim.
//
// # Building trees
//
// Nodes are created with [New] and wired together with [Node.AppendChild]:
//
//	root := markup.New("div", "")
//	root.SetAttr("id", "main")
//	root.AppendChild(markup.New("p", "hello & welcome"))
//
// Content and attribute values are escaped on write, so rendering is a pure
// traversal over already-encoded data. Toggling raw mode on a node decodes
// its stored values back to their literal form.
//
// # Rendering
//
// [Node.Render] serializes a subtree to a string; [Node.RenderTo] streams it
// to a writer. The separator argument is inserted between rendered
// fragments, so "" produces compact output and "\n" one fragment per line.
//
// # Concurrency
//
// Every operation on a node is safe for concurrent use. Tree mutation keeps
// the parent/child links consistent in both directions, and attaching a node
// below itself is rejected with [ErrCycle].
package markup
