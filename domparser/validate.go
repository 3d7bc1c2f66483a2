package domparser

import (
	"fmt"
	"strings"
)

// Severity represents the severity level of a validation diagnostic.
type Severity int

const (
	// Error means the document breaks an invariant downstream consumers rely on.
	Error Severity = iota
	// Warning means the document parses but is likely not what was intended.
	Warning
	// Info is an informational note.
	Info
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "ERROR"
	case Warning:
		return "WARNING"
	case Info:
		return "INFO"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic is a single validation finding.
type Diagnostic struct {
	Rule     string   // rule identifier (e.g., "duplicate_id")
	Severity Severity // ERROR, WARNING, or INFO
	Message  string   // human-readable description
	Tag      string   // tag name of the related element (optional)
	Pos      Position // where the related element began
	Fix      string   // suggested fix (optional)
}

func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s: %s", d.Severity, d.Rule, d.Message)
	if d.Tag != "" {
		fmt.Fprintf(&b, " (<%s>", d.Tag)
		if d.Pos.Line > 0 {
			fmt.Fprintf(&b, " at line %d, col %d", d.Pos.Line, d.Pos.Column)
		}
		b.WriteString(")")
	}
	if d.Fix != "" {
		fmt.Fprintf(&b, " -- fix: %s", d.Fix)
	}
	return b.String()
}

// LintRule is the interface for a single validation rule.
type LintRule interface {
	Name() string
	Apply(root *Node) []Diagnostic
}

// ValidationError is returned by ValidateOrError when error-severity diagnostics exist.
type ValidationError struct {
	Diagnostics []Diagnostic
}

func (e *ValidationError) Error() string {
	var msgs []string
	for _, d := range e.Diagnostics {
		msgs = append(msgs, d.String())
	}
	return fmt.Sprintf("validation failed with %d error(s):\n  %s", len(e.Diagnostics), strings.Join(msgs, "\n  "))
}

// Validate runs all built-in rules (and any extra rules) against the tree.
// Returns all diagnostics regardless of severity.
func Validate(root *Node, extraRules ...LintRule) []Diagnostic {
	rules := builtInRules()
	rules = append(rules, extraRules...)

	var diagnostics []Diagnostic
	for _, rule := range rules {
		diagnostics = append(diagnostics, rule.Apply(root)...)
	}
	return diagnostics
}

// ValidateOrError runs Validate and returns an error if any error-severity
// diagnostics are found. Non-error diagnostics are still returned.
func ValidateOrError(root *Node, extraRules ...LintRule) ([]Diagnostic, error) {
	diagnostics := Validate(root, extraRules...)

	var errors []Diagnostic
	for _, d := range diagnostics {
		if d.Severity == Error {
			errors = append(errors, d)
		}
	}
	if len(errors) > 0 {
		return diagnostics, &ValidationError{Diagnostics: errors}
	}
	return diagnostics, nil
}

func builtInRules() []LintRule {
	return []LintRule{
		duplicateIDRule{},
		voidElementContentRule{},
		emptyAttributeRule{},
		nestedAnchorRule{},
	}
}

// voidElements never carry content in HTML; the strict grammar still
// requires an explicit closing tag for them.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// elements returns every element in the tree in document order.
func elements(root *Node) []*Node {
	var out []*Node
	if root == nil {
		return out
	}
	root.Walk(func(n *Node, _ int) bool {
		if n.Kind == ElementNode {
			out = append(out, n)
		}
		return true
	})
	return out
}

// --- Rule implementations ---

// duplicate_id: id attribute values must be unique within the tree.
type duplicateIDRule struct{}

func (duplicateIDRule) Name() string { return "duplicate_id" }

func (duplicateIDRule) Apply(root *Node) []Diagnostic {
	var diags []Diagnostic
	seen := make(map[string]*Node)
	for _, n := range elements(root) {
		id, ok := n.Attr("id")
		if !ok {
			continue
		}
		first, dup := seen[id]
		if !dup {
			seen[id] = n
			continue
		}
		diags = append(diags, Diagnostic{
			Rule:     "duplicate_id",
			Severity: Error,
			Message:  fmt.Sprintf("id %q already used by <%s> at line %d, col %d", id, first.TagName(), first.Pos.Line, first.Pos.Column),
			Tag:      n.TagName(),
			Pos:      n.Pos,
			Fix:      "give each element a distinct id",
		})
	}
	return diags
}

// void_element_content: void elements such as <br> should be empty.
type voidElementContentRule struct{}

func (voidElementContentRule) Name() string { return "void_element_content" }

func (voidElementContentRule) Apply(root *Node) []Diagnostic {
	var diags []Diagnostic
	for _, n := range elements(root) {
		if !voidElements[n.TagName()] || n.IsLeaf() {
			continue
		}
		diags = append(diags, Diagnostic{
			Rule:     "void_element_content",
			Severity: Warning,
			Message:  fmt.Sprintf("void element has %d child node(s)", len(n.Children)),
			Tag:      n.TagName(),
			Pos:      n.Pos,
			Fix:      fmt.Sprintf("move the content after </%s>", n.TagName()),
		})
	}
	return diags
}

// empty_attribute: attributes assigned an empty string.
type emptyAttributeRule struct{}

func (emptyAttributeRule) Name() string { return "empty_attribute" }

func (emptyAttributeRule) Apply(root *Node) []Diagnostic {
	var diags []Diagnostic
	for _, n := range elements(root) {
		for key, val := range n.Element.Attributes.All() {
			if val != "" {
				continue
			}
			diags = append(diags, Diagnostic{
				Rule:     "empty_attribute",
				Severity: Info,
				Message:  fmt.Sprintf("attribute %q has an empty value", key),
				Tag:      n.TagName(),
				Pos:      n.Pos,
			})
		}
	}
	return diags
}

// nested_anchor: <a> elements must not contain other <a> elements.
type nestedAnchorRule struct{}

func (nestedAnchorRule) Name() string { return "nested_anchor" }

func (nestedAnchorRule) Apply(root *Node) []Diagnostic {
	var diags []Diagnostic
	for _, outer := range elements(root) {
		if outer.TagName() != "a" {
			continue
		}
		for _, child := range outer.Children {
			for _, inner := range child.FindAll("a", true) {
				diags = append(diags, Diagnostic{
					Rule:     "nested_anchor",
					Severity: Warning,
					Message:  fmt.Sprintf("link nested inside the link at line %d, col %d", outer.Pos.Line, outer.Pos.Column),
					Tag:      inner.TagName(),
					Pos:      inner.Pos,
				})
			}
		}
	}
	return diags
}
