package domparser

import "strings"

// Selector matches elements by tag name and a subset of attributes.
// An empty Tag matches any element.
type Selector struct {
	Tag   string
	Attrs map[string]string
}

// Match reports whether n is an element satisfying sel: the tag name matches
// (when set) and every attribute in sel.Attrs is present with the same value.
func (n *Node) Match(sel Selector) bool {
	if n.Kind != ElementNode {
		return false
	}
	if sel.Tag != "" && n.TagName() != sel.Tag {
		return false
	}
	for key, want := range sel.Attrs {
		got, ok := n.Attr(key)
		if !ok || got != want {
			return false
		}
	}
	return true
}

// Walk visits n and its descendants in document order. depth is 0 for n.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	type frame struct {
		node  *Node
		depth int
	}
	stk := make(stack[frame], 0, 16)
	stk.Push(frame{n, 0})

	for f, ok := stk.Pop(); ok; f, ok = stk.Pop() {
		if !fn(f.node, f.depth) {
			continue
		}
		// reverse iteration so that first child is pushed last
		for i := len(f.node.Children) - 1; i >= 0; i-- {
			stk.Push(frame{f.node.Children[i], f.depth + 1})
		}
	}
}

// Find returns the first element (n included) with the given tag name, or
// nil if there is none.
func (n *Node) Find(tagName string) *Node {
	return n.FindMatch(Selector{Tag: tagName})
}

// FindMatch returns the first element (n included) matching sel, or nil.
func (n *Node) FindMatch(sel Selector) *Node {
	var found *Node
	n.Walk(func(node *Node, _ int) bool {
		if found != nil {
			return false
		}
		if node.Match(sel) {
			found = node
			return false
		}
		return true
	})
	return found
}

// FindAll returns every element with the given tag name in document order.
//
// With prune set, the search does not descend into matches, so no result is
// a descendant of another result.
func (n *Node) FindAll(tagName string, prune bool) []*Node {
	return n.FindAllMatch(Selector{Tag: tagName}, prune)
}

// FindAllMatch is FindAll with a Selector.
func (n *Node) FindAllMatch(sel Selector, prune bool) []*Node {
	matches := make([]*Node, 0, 16)
	n.Walk(func(node *Node, _ int) bool {
		if node.Match(sel) {
			matches = append(matches, node)
			return !prune
		}
		return true
	})
	return matches
}

// TextContent returns the contents of all descendant text nodes joined by a
// single space. Empty text runs are skipped.
func (n *Node) TextContent() string {
	var parts []string
	n.Walk(func(node *Node, _ int) bool {
		if node.Kind == TextNode && node.Data != "" {
			parts = append(parts, node.Data)
		}
		return true
	})
	return strings.Join(parts, " ")
}

type stack[T any] []T

func (stk *stack[T]) Push(val T) {
	*stk = append(*stk, val)
}

func (stk *stack[T]) Pop() (T, bool) {
	if len(*stk) == 0 {
		var val T
		return val, false
	}

	val := (*stk)[len(*stk)-1]
	*stk = (*stk)[:len(*stk)-1]
	return val, true
}
