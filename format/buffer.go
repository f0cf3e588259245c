package format

import "strings"

// buffer is the indentation-aware output accumulator.
// It tracks two independent indent counters — top-level (one clause/command
// deep) and block-level (nesting inside parens/brackets/CASE) — and exposes
// four write primitives that differ only in whether a single space is
// enforced before and/or after the token, so callers never reason about
// whether the previous write left the cursor at a line start or mid-line.
type buffer struct {
	out  strings.Builder
	unit string

	topLevel   int
	blockLevel int

	atLineStart   bool // true immediately after a newline, before any content on the new line
	suppressSpace bool // consumed by the next spaceBefore() call to skip one space
}

func newBuffer(indentUnit string) *buffer {
	return &buffer{unit: indentUnit, atLineStart: true}
}

func (b *buffer) indent() string {
	n := b.topLevel + b.blockLevel
	if n <= 0 {
		return ""
	}
	return strings.Repeat(b.unit, n)
}

func (b *buffer) incTopLevel() { b.topLevel++ }
func (b *buffer) decTopLevel() {
	if b.topLevel > 0 {
		b.topLevel--
	}
}

func (b *buffer) incBlockLevel() { b.blockLevel++ }
func (b *buffer) decBlockLevel() {
	if b.blockLevel > 0 {
		b.blockLevel--
	}
}

func (b *buffer) raw(s string) {
	if s == "" {
		return
	}
	if b.atLineStart {
		b.out.WriteString(b.indent())
		b.atLineStart = false
	}
	b.out.WriteString(s)
}

func (b *buffer) spaceBefore() {
	if b.atLineStart {
		return
	}
	if b.suppressSpace {
		b.suppressSpace = false
		return
	}
	b.out.WriteString(" ")
}

// write is the single primitive every add* helper below is built from:
// glueBefore suppresses the space that would otherwise separate s from
// whatever precedes it; glueAfter arranges for the very next write to be
// glued to s in turn.
func (b *buffer) write(s string, glueBefore, glueAfter bool) {
	if glueBefore {
		b.suppressSpace = true
	}
	b.spaceBefore()
	b.raw(s)
	b.suppressSpace = glueAfter
}

// addWithSpaces enforces a single space (or the line indent) before s and
// leaves normal spacing in effect after it — the default for most tokens.
func (b *buffer) addWithSpaces(s string) { b.write(s, false, false) }

// addWithSpaceBefore enforces a leading space but glues s to whatever comes
// next — e.g. a function name immediately before its '('.
func (b *buffer) addWithSpaceBefore(s string) { b.write(s, false, true) }

// addWithSpaceAfter glues s to whatever precedes it but enforces a trailing
// space — e.g. a comma, glued to the preceding item, space before the next.
func (b *buffer) addWithSpaceAfter(s string) { b.write(s, true, false) }

// addWithoutSpaces glues s on both sides — e.g. '.', array brackets.
func (b *buffer) addWithoutSpaces(s string) { b.write(s, true, true) }

// glueNext suppresses the leading space the very next write would add,
// without writing anything itself.
func (b *buffer) glueNext() { b.suppressSpace = true }

// addNewline starts a fresh, indented line. Consecutive calls collapse to a
// single line break.
func (b *buffer) addNewline() {
	if b.atLineStart {
		return
	}
	b.out.WriteString("\n")
	b.atLineStart = true
	b.suppressSpace = false
}

// addBlankLine emits one additional blank line. The formatter does not call
// it; sqlfmt.Format writes the newlines between statements itself.
func (b *buffer) addBlankLine() {
	b.out.WriteString("\n")
}

func (b *buffer) String() string {
	return strings.TrimRight(b.out.String(), " \t\n")
}
