package domprint

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/martinemde/markupdom/domparser"
)

// ToHTML converts n into a golang.org/x/net/html node tree. Comments are kept.
func ToHTML(n *domparser.Node) *html.Node {
	switch n.Kind {
	case domparser.TextNode:
		return &html.Node{Type: html.TextNode, Data: n.Data}
	case domparser.CommentNode:
		return &html.Node{Type: html.CommentNode, Data: n.Data}
	case domparser.ElementNode:
		tag := n.TagName()
		el := &html.Node{
			Type:     html.ElementNode,
			Data:     tag,
			DataAtom: atom.Lookup([]byte(tag)),
		}
		for k, v := range n.Element.Attributes.All() {
			el.Attr = append(el.Attr, html.Attribute{Key: k, Val: v})
		}
		for _, child := range n.Children {
			el.AppendChild(ToHTML(child))
		}
		return el
	default:
		// html.Render rejects error nodes.
		return &html.Node{Type: html.ErrorNode}
	}
}

// Render writes n as markup using html.Render. Text and attribute values are
// escaped. Void elements such as <br> render in self-closing form and must
// not have children.
func Render(w io.Writer, n *domparser.Node) error {
	if n == nil {
		return fmt.Errorf("domprint: nil node")
	}
	if err := html.Render(w, ToHTML(n)); err != nil {
		return fmt.Errorf("domprint: rendering markup: %w", err)
	}
	return nil
}

// RenderString returns the Render output for n.
func RenderString(n *domparser.Node) (string, error) {
	var b strings.Builder
	if err := Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}
