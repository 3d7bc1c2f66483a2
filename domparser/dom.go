package domparser

import "fmt"

// NodeKind discriminates the Node tagged union.
type NodeKind int

const (
	TextNode    NodeKind = iota // normalized text run
	ElementNode                 // tag with attributes and children
	CommentNode                 // trimmed comment body
)

func (k NodeKind) String() string {
	switch k {
	case TextNode:
		return "text"
	case ElementNode:
		return "element"
	case CommentNode:
		return "comment"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// ElementData is the tag name and attributes of an element node.
type ElementData struct {
	TagName    string
	Attributes Attributes
}

// Node is one position in the parsed tree. Kind determines which fields are
// populated. Text and comment nodes never have children.
type Node struct {
	Kind     NodeKind
	Data     string       // content; populated when Kind == TextNode or CommentNode
	Element  *ElementData // populated when Kind == ElementNode
	Children []*Node      // populated when Kind == ElementNode
	Pos      Position     // where the node began
}

// NewText returns a text leaf.
func NewText(text string) *Node {
	return &Node{Kind: TextNode, Data: text}
}

// NewComment returns a comment leaf.
func NewComment(comment string) *Node {
	return &Node{Kind: CommentNode, Data: comment}
}

// NewElement returns an element node owning children in the given order.
func NewElement(tagName string, attrs Attributes, children ...*Node) *Node {
	if children == nil {
		children = []*Node{}
	}
	return &Node{
		Kind:     ElementNode,
		Element:  &ElementData{TagName: tagName, Attributes: attrs},
		Children: children,
	}
}

// TagName returns the element's tag name, or "" for text and comment nodes.
func (n *Node) TagName() string {
	if n.Kind != ElementNode || n.Element == nil {
		return ""
	}
	return n.Element.TagName
}

// Attr looks up an element attribute. Returns the value and true if found.
func (n *Node) Attr(key string) (string, bool) {
	if n.Kind != ElementNode || n.Element == nil {
		return "", false
	}
	return n.Element.Attributes.Get(key)
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

func (n *Node) String() string {
	switch n.Kind {
	case TextNode:
		return fmt.Sprintf("text(%q)", n.Data)
	case CommentNode:
		return fmt.Sprintf("comment(%q)", n.Data)
	case ElementNode:
		return fmt.Sprintf("element(%s, %d attrs, %d children)", n.TagName(), n.Element.Attributes.Len(), len(n.Children))
	default:
		return n.Kind.String()
	}
}
