package domprint

import (
	"fmt"
	"io"
	"strings"

	"github.com/martinemde/markupdom/domparser"
)

// Pretty writes n as an indented outline. Each element prints an opening tag
// line with its attributes in insertion order, its children indented by two
// more spaces, and a closing tag line. Text nodes print their content.
// Comment nodes are not printed.
func Pretty(w io.Writer, n *domparser.Node) error {
	if n == nil {
		return fmt.Errorf("domprint: nil node")
	}
	p := &printer{w: w}
	p.print(n, 0)
	return p.err
}

// PrettyString returns the Pretty output for n.
func PrettyString(n *domparser.Node) (string, error) {
	var b strings.Builder
	if err := Pretty(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// printer keeps the first write error; later writes are dropped.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(indent int, s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat(" ", indent), s)
}

func (p *printer) print(n *domparser.Node, indent int) {
	switch n.Kind {
	case domparser.TextNode:
		p.line(indent, n.Data)
	case domparser.ElementNode:
		p.line(indent, openTag(n))
		for _, child := range n.Children {
			p.print(child, indent+2)
		}
		p.line(indent, "</"+n.TagName()+">")
	case domparser.CommentNode:
		// not part of the outline
	default:
		if p.err == nil {
			p.err = fmt.Errorf("domprint: unknown node kind %s", n.Kind)
		}
	}
}

func openTag(n *domparser.Node) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(n.TagName())
	for k, v := range n.Element.Attributes.All() {
		fmt.Fprintf(&b, " %s=\"%s\"", k, v)
	}
	b.WriteString(">")
	return b.String()
}
