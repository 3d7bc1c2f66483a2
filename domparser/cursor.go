package domparser

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number, counted in scalars
	Offset int // 0-based byte offset into source
}

// Cursor reads a string one Unicode scalar at a time. It never backtracks.
type Cursor struct {
	src  string
	pos  int // current byte offset
	line int // current line (1-based)
	col  int // current column (1-based)
}

// NewCursor creates a Cursor positioned at the start of src.
func NewCursor(src string) *Cursor {
	return &Cursor{src: src, line: 1, col: 1}
}

// Pos returns the current source location.
func (c *Cursor) Pos() Position {
	return Position{Line: c.line, Column: c.col, Offset: c.pos}
}

// AtEnd reports whether all input has been consumed.
func (c *Cursor) AtEnd() bool {
	return c.pos >= len(c.src)
}

// Current returns the scalar at the current position without consuming it.
// It returns ErrOutOfRange at the end of input.
func (c *Cursor) Current() (rune, error) {
	if c.AtEnd() {
		return 0, ErrOutOfRange
	}
	r, _ := utf8.DecodeRuneInString(c.src[c.pos:])
	return r, nil
}

// StartsWith reports whether the remaining input begins with prefix.
func (c *Cursor) StartsWith(prefix string) bool {
	return strings.HasPrefix(c.src[c.pos:], prefix)
}

// Advance consumes one scalar and returns it. A scalar spanning several bytes
// is consumed whole, and an invalid byte is consumed alone. Returns "" at the
// end of input.
func (c *Cursor) Advance() string {
	if c.AtEnd() {
		return ""
	}
	r, size := utf8.DecodeRuneInString(c.src[c.pos:])
	s := c.src[c.pos : c.pos+size]
	c.pos += size
	if r == '\n' {
		c.line++
		c.col = 1
	} else {
		c.col++
	}
	return s
}

// ConsumeWhile consumes scalars while pred holds and returns them. Each
// maximal run of spaces, tabs and newlines in the result is collapsed into a
// single space.
func (c *Cursor) ConsumeWhile(pred func(rune) bool) string {
	var sb strings.Builder
	lastWasSpace := false
	for !c.AtEnd() {
		r, _ := c.Current()
		if !pred(r) {
			break
		}
		s := c.Advance()
		if isCollapsible(r) {
			if !lastWasSpace {
				sb.WriteByte(' ')
			}
			lastWasSpace = true
			continue
		}
		sb.WriteString(s)
		lastWasSpace = false
	}
	return sb.String()
}

// ConsumeWhitespace skips blank scalars and returns what was consumed.
func (c *Cursor) ConsumeWhitespace() string {
	return c.ConsumeWhile(unicode.IsSpace)
}

// peekIs reports whether the current scalar is r. False at the end of input.
func (c *Cursor) peekIs(r rune) bool {
	cur, err := c.Current()
	return err == nil && cur == r
}

// describeCurrent renders the current scalar for error messages.
func (c *Cursor) describeCurrent() string {
	r, err := c.Current()
	if err != nil {
		return "EOF"
	}
	return quoteRune(r)
}

func quoteRune(r rune) string {
	return "'" + string(r) + "'"
}

func isCollapsible(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n'
}
