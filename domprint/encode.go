package domprint

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/martinemde/markupdom/domparser"
)

type jsonAttr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type jsonNode struct {
	Kind       string      `json:"kind"`
	Tag        string      `json:"tag,omitempty"`
	Attributes []jsonAttr  `json:"attributes,omitempty"`
	Text       *string     `json:"text,omitempty"`
	Children   []*jsonNode `json:"children,omitempty"`
}

func toJSONNode(n *domparser.Node) *jsonNode {
	out := &jsonNode{Kind: n.Kind.String()}
	switch n.Kind {
	case domparser.TextNode, domparser.CommentNode:
		text := n.Data
		out.Text = &text
	case domparser.ElementNode:
		out.Tag = n.TagName()
		for k, v := range n.Element.Attributes.All() {
			out.Attributes = append(out.Attributes, jsonAttr{Name: k, Value: v})
		}
		for _, child := range n.Children {
			out.Children = append(out.Children, toJSONNode(child))
		}
	}
	return out
}

// JSON writes n as an indented JSON document. Attributes are a list of
// name/value objects so their order survives.
func JSON(w io.Writer, n *domparser.Node) error {
	if n == nil {
		return fmt.Errorf("domprint: nil node")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(toJSONNode(n)); err != nil {
		return fmt.Errorf("domprint: encoding json: %w", err)
	}
	return nil
}

func yamlScalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func toYAMLNode(n *domparser.Node) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	add := func(key string, val *yaml.Node) {
		m.Content = append(m.Content, yamlScalar(key), val)
	}

	add("kind", yamlScalar(n.Kind.String()))
	switch n.Kind {
	case domparser.TextNode, domparser.CommentNode:
		add("text", yamlScalar(n.Data))
	case domparser.ElementNode:
		add("tag", yamlScalar(n.TagName()))
		if n.Element.Attributes.Len() > 0 {
			attrs := &yaml.Node{Kind: yaml.MappingNode}
			for k, v := range n.Element.Attributes.All() {
				attrs.Content = append(attrs.Content, yamlScalar(k), yamlScalar(v))
			}
			add("attributes", attrs)
		}
		if len(n.Children) > 0 {
			children := &yaml.Node{Kind: yaml.SequenceNode}
			for _, child := range n.Children {
				children.Content = append(children.Content, toYAMLNode(child))
			}
			add("children", children)
		}
	}
	return m
}

// YAML writes n as a YAML document. Attributes are a mapping in insertion
// order.
func YAML(w io.Writer, n *domparser.Node) error {
	if n == nil {
		return fmt.Errorf("domprint: nil node")
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toYAMLNode(n)); err != nil {
		return fmt.Errorf("domprint: encoding yaml: %w", err)
	}
	return enc.Close()
}
