package domparser

import (
	"fmt"
	"strings"
)

const (
	commentOpen  = "<!--"
	commentClose = "-->"
	closeTagOpen = "</"
)

// Options tunes a parse. The zero value gives the default behavior.
type Options struct {
	// MaxDepth bounds element nesting. Zero means unbounded.
	MaxDepth int
	// IgnoreRootComments drops top-level comments before the single-root
	// check, so "<!-- c --><div></div>" yields the div.
	IgnoreRootComments bool
}

// Parse parses src and returns its single top-level node.
//
// When the input does not reduce to exactly one top-level node (no nodes, or
// several siblings, which includes a top-level comment beside an element),
// Parse returns a nil node and a nil error. A closing tag left over at the
// top level, as in "<a></a></b>", is an error rather than trailing input
// to ignore. Failures are reported as
// *UnexpectedCharError, *TagMismatchError, *UnterminatedError or
// *EmptyTagNameError.
func Parse(src string) (*Node, error) {
	return ParseWithOptions(src, Options{})
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(src string, opts Options) (*Node, error) {
	nodes, err := ParseNodesWithOptions(src, opts)
	if err != nil {
		return nil, err
	}
	if opts.IgnoreRootComments {
		nodes = withoutComments(nodes)
	}
	if len(nodes) != 1 {
		return nil, nil
	}
	return nodes[0], nil
}

// ParseNodes parses src and returns every top-level node in document order.
func ParseNodes(src string) ([]*Node, error) {
	return ParseNodesWithOptions(src, Options{})
}

// ParseNodesWithOptions is ParseNodes with explicit options. Options that
// only concern the single-root check are ignored.
func ParseNodesWithOptions(src string, opts Options) ([]*Node, error) {
	p := &parser{cur: NewCursor(src), maxDepth: opts.MaxDepth}
	nodes, err := p.parseNodes()
	if err != nil {
		return nil, err
	}

	// The top-level sequence only stops early on a closing tag with no
	// element left to close.
	if !p.cur.AtEnd() {
		return nil, &UnexpectedCharError{
			ParseError: ParseError{
				Message: "closing tag without a matching opening tag",
				Pos:     p.cur.Pos(),
			},
			Expected: "EOF",
			Found:    "'" + closeTagOpen + "'",
		}
	}
	return nodes, nil
}

func withoutComments(nodes []*Node) []*Node {
	kept := make([]*Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind != CommentNode {
			kept = append(kept, n)
		}
	}
	return kept
}

type parser struct {
	cur      *Cursor
	maxDepth int
	depth    int // number of elements currently open
}

func (p *parser) expect(r rune) error {
	if !p.cur.peekIs(r) {
		return unexpectedChar(p.cur.Pos(), quoteRune(r), p.cur.describeCurrent())
	}
	p.cur.Advance()
	return nil
}

// parseNodes parses sibling nodes until end of input or a closing tag.
func (p *parser) parseNodes() ([]*Node, error) {
	nodes := []*Node{}
	for {
		p.cur.ConsumeWhitespace()
		if p.cur.AtEnd() || p.cur.StartsWith(closeTagOpen) {
			return nodes, nil
		}
		n, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
}

func (p *parser) parseNode() (*Node, error) {
	switch {
	case p.cur.StartsWith(commentOpen):
		return p.parseComment()
	case p.cur.peekIs('<'):
		return p.parseElement()
	default:
		return p.parseText(), nil
	}
}

func (p *parser) parseText() *Node {
	pos := p.cur.Pos()
	text := p.cur.ConsumeWhile(func(r rune) bool { return r != '<' })
	n := NewText(strings.TrimSpace(text))
	n.Pos = pos
	return n
}

func (p *parser) parseComment() (*Node, error) {
	pos := p.cur.Pos()
	for range len(commentOpen) {
		p.cur.Advance()
	}

	body := p.cur.ConsumeWhile(func(rune) bool { return !p.cur.StartsWith(commentClose) })
	if !p.cur.StartsWith(commentClose) {
		return nil, &UnterminatedError{
			ParseError: ParseError{Message: "unterminated comment", Pos: pos},
			Construct:  "comment",
		}
	}
	for range len(commentClose) {
		p.cur.Advance()
	}

	n := NewComment(strings.TrimSpace(body))
	n.Pos = pos
	return n, nil
}

func (p *parser) parseElement() (*Node, error) {
	pos := p.cur.Pos()
	if p.maxDepth > 0 && p.depth >= p.maxDepth {
		return nil, &NestingTooDeepError{
			ParseError: ParseError{
				Message: fmt.Sprintf("element nesting exceeds %d levels", p.maxDepth),
				Pos:     pos,
			},
			Limit: p.maxDepth,
		}
	}

	// Opening tag.
	if err := p.expect('<'); err != nil {
		return nil, err
	}
	tagName, err := p.parseTagName()
	if err != nil {
		return nil, err
	}
	attrs, err := p.parseAttributes()
	if err != nil {
		return nil, err
	}
	if err := p.expect('>'); err != nil {
		return nil, err
	}

	// Contents.
	p.depth++
	children, err := p.parseNodes()
	p.depth--
	if err != nil {
		return nil, err
	}

	// Closing tag.
	if err := p.expect('<'); err != nil {
		return nil, err
	}
	if err := p.expect('/'); err != nil {
		return nil, err
	}
	closePos := p.cur.Pos()
	closing, err := p.parseTagName()
	if err != nil {
		return nil, err
	}
	if closing != tagName {
		return nil, &TagMismatchError{
			ParseError: ParseError{
				Message: fmt.Sprintf("closing tag </%s> does not match <%s>", closing, tagName),
				Pos:     closePos,
			},
			Opening: tagName,
			Closing: closing,
		}
	}
	if err := p.expect('>'); err != nil {
		return nil, err
	}

	n := NewElement(tagName, attrs, children...)
	n.Pos = pos
	return n, nil
}

// parseTagName parses [A-Za-z0-9]+. Attribute names use the same grammar.
func (p *parser) parseTagName() (string, error) {
	pos := p.cur.Pos()
	name := p.cur.ConsumeWhile(isNameChar)
	if name == "" {
		return "", &EmptyTagNameError{ParseError{
			Message: fmt.Sprintf("expected a name, found %s", p.cur.describeCurrent()),
			Pos:     pos,
		}}
	}
	return name, nil
}

// parseAttributes parses name=value pairs up to, but not including, '>'.
func (p *parser) parseAttributes() (Attributes, error) {
	var b attrBuilder
	for {
		p.cur.ConsumeWhitespace()
		if p.cur.AtEnd() {
			return Attributes{}, unexpectedChar(p.cur.Pos(), "'>'", "EOF")
		}
		if p.cur.peekIs('>') {
			return b.build(), nil
		}

		name, err := p.parseTagName()
		if err != nil {
			return Attributes{}, err
		}
		if err := p.expect('='); err != nil {
			return Attributes{}, err
		}
		value, err := p.parseAttrValue()
		if err != nil {
			return Attributes{}, err
		}
		b.set(name, value)
	}
}

// parseAttrValue parses a value quoted with " or '.
func (p *parser) parseAttrValue() (string, error) {
	pos := p.cur.Pos()
	quote, err := p.cur.Current()
	if err != nil || (quote != '"' && quote != '\'') {
		return "", unexpectedChar(pos, "quote", p.cur.describeCurrent())
	}
	p.cur.Advance()

	value := p.cur.ConsumeWhile(func(r rune) bool { return r != quote })
	if p.cur.AtEnd() {
		return "", &UnterminatedError{
			ParseError: ParseError{Message: "unterminated attribute value", Pos: pos},
			Construct:  "attribute value",
		}
	}
	p.cur.Advance()
	return value, nil
}

func isNameChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
