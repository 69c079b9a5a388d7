// Package doc loads declarative document definitions and builds markup
// trees from them.
//
// A definition is a YAML file describing one node per mapping, nested
// through the children key:
//
//	tag: html
//	children:
//	  - tag: head
//	    children:
//	      - {tag: meta, attrs: {charset: utf-8}, void: true}
//	      - {tag: title, content: My Page}
//	  - tag: body
//	    children:
//	      - {tag: div, attrs: {id: main}, content: "hello & welcome"}
//	      - {content: passthrough text}
//
// An entry without a tag is a passthrough text node and may only carry
// content. Unknown keys are rejected so typos fail at load time rather than
// disappearing silently.
package doc

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Node describes one element of a document definition.
type Node struct {
	Tag      string            `yaml:"tag,omitempty"`
	Content  string            `yaml:"content,omitempty"`
	Attrs    map[string]string `yaml:"attrs,omitempty"`
	Void     bool              `yaml:"void,omitempty"`
	Raw      bool              `yaml:"raw,omitempty"`
	Children []Node            `yaml:"children,omitempty"`
}

// Load reads and parses a document definition file.
func Load(path string) (*Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("doc: read %s: %w", path, err)
	}
	n, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("doc: parse %s: %w", path, err)
	}
	return n, nil
}

// Parse parses a document definition from YAML bytes. Unknown fields are an
// error.
func Parse(data []byte) (*Node, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var n Node
	if err := dec.Decode(&n); err != nil {
		return nil, err
	}
	return &n, nil
}
