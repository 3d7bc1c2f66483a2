// Package domparser implements a strict parser for a small HTML-like markup
// subset.
//
// The input must be well-formed: every element has an explicit closing tag,
// attribute values are quoted, and comments are terminated. There is no error
// recovery; the first problem aborts the parse with a typed error.
//
// The parser is a hand-rolled recursive-descent parser with three layers:
//
//   - Cursor: scans the source one Unicode scalar at a time and collapses runs
//     of whitespace while consuming.
//   - Parser: the node, element, attribute, text and comment productions.
//   - Node model: the output tree (Node, ElementData, Attributes).
//
// Usage:
//
//	root, err := domparser.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if root == nil {
//	    // input did not reduce to exactly one top-level node
//	}
//
// Parse only returns a node when the input produced exactly one top-level
// node. A missing root is reported as a nil node with a nil error, which is
// distinct from a parse failure.
package domparser
