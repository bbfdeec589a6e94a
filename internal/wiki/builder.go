// Package wiki renders Google Code wiki markup for the API index page and
// splices it into the generated region of an existing page.
package wiki

import (
	"fmt"
	"strings"
)

// Builder accumulates wiki markup. Methods return the builder for chaining.
type Builder struct {
	buf strings.Builder
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// String returns the markup written so far.
func (b *Builder) String() string {
	return b.buf.String()
}

// LF adds a line feed.
func (b *Builder) LF() *Builder {
	b.buf.WriteByte('\n')
	return b
}

// Line adds text followed by a line feed.
func (b *Builder) Line(text string) *Builder {
	b.buf.WriteString(text)
	return b.LF()
}

// Linef adds formatted text followed by a line feed.
func (b *Builder) Linef(format string, args ...any) *Builder {
	fmt.Fprintf(&b.buf, format, args...)
	return b.LF()
}

// HorizontalRule adds a "----" rule.
func (b *Builder) HorizontalRule() *Builder {
	return b.Line("----")
}

// H1 adds a level 1 heading.
func (b *Builder) H1(text string) *Builder {
	return b.Linef("= %s =", text)
}

// Label adds a bold label on its own line ("*Samples*").
func (b *Builder) Label(text string) *Builder {
	return b.Line(Bold(text))
}

// Bullet adds a first-level bullet.
func (b *Builder) Bullet(text string) *Builder {
	return b.Linef("  * %s", text)
}

// CodeBlock adds a {{{ }}} block around lines.
func (b *Builder) CodeBlock(lines ...string) *Builder {
	b.Line("{{{")
	for _, l := range lines {
		b.Line(l)
	}
	return b.Line("}}}")
}

// Bold returns *text*.
func Bold(text string) string {
	return "*" + text + "*"
}

// Italic returns _text_.
func Italic(text string) string {
	return "_" + text + "_"
}

// Code returns {{{text}}}.
func Code(text string) string {
	return "{{{" + text + "}}}"
}

// Link returns [url text], or [url] when text is empty.
func Link(url, text string) string {
	if text == "" {
		return "[" + url + "]"
	}
	return "[" + url + " " + text + "]"
}
