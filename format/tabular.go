package format

import "strings"

// tabularMarker brackets a reserved command/binary-command/dependent-clause/
// logical-operator token's display text when IndentStyle is one of the two
// tabular modes (see isTabularCategory in formatter.go). padCommandColumn
// below is the final sweep that does the padding: it is easier to pad a
// token to a fixed column after the whole statement is rendered than to
// track target widths while the main state machine is still emitting.
const tabularMarker = "\x00"

// tabularWidth is the fixed column width reserved tokens are padded to in
// tabular indent modes.
const tabularWidth = 10

// tabulate is a string-level post-processing pass over the already-formatted
// output that aligns the things column layout options care about — the
// fixed-width reserved-command column for tabularLeft/tabularRight (§4.8),
// the AS keyword in aliased list items, and comma placement. It operates on
// whole lines rather than tokens because alignment is inherently a
// cross-line concern: by the time a line is finished we don't yet know how
// wide its neighbors in the same list will turn out to be.
func tabulate(output string, opts FormatOptions) string {
	if !opts.TabulateAlias && opts.IndentStyle == IndentStandard && opts.CommaPosition != CommaTabular {
		return output
	}

	lines := strings.Split(output, "\n")
	if opts.IndentStyle == IndentTabularLeft || opts.IndentStyle == IndentTabularRight {
		padCommandColumn(lines, opts.IndentStyle)
	}
	if opts.TabulateAlias {
		alignASColumn(lines)
	}
	if opts.IndentStyle == IndentTabularLeft || opts.IndentStyle == IndentTabularRight || opts.CommaPosition == CommaTabular {
		alignCommaColumn(lines, opts.IndentStyle)
	}
	return strings.Join(lines, "\n")
}

// padCommandColumn strips every tabularMarker-wrapped token on each line and
// right-pads it (tabularLeft) or left-pads it (tabularRight) to
// tabularWidth columns, removing the markers in the process. A line can
// hold more than one marked token (e.g. a logical operator that does not
// open a line), so each line is swept until no marker pair remains.
func padCommandColumn(lines []string, style IndentStyle) {
	for i := range lines {
		for {
			line := lines[i]
			start := strings.IndexByte(line, 0)
			if start < 0 {
				break
			}
			rest := line[start+1:]
			end := strings.IndexByte(rest, 0)
			if end < 0 {
				break
			}
			word := rest[:end]
			after := rest[end+1:]

			pad := tabularWidth - len(word)
			if pad < 0 {
				pad = 0
			}
			var padded string
			if style == IndentTabularRight {
				padded = strings.Repeat(" ", pad) + word
			} else {
				padded = word + strings.Repeat(" ", pad)
			}
			lines[i] = line[:start] + padded + after
		}
	}
}

// alignASColumn groups consecutive lines sharing the same leading
// whitespace and each containing " AS " (case-insensitive: the formatter has
// already applied KeywordCase, so AS appears however that option renders
// it — callers that disable KeywordCase-upper still get alignment because
// we search case-insensitively for the boundary) and pads the
// material before AS to a common width within the group.
func alignASColumn(lines []string) {
	groupStart := -1
	flush := func(end int) {
		if groupStart < 0 || end-groupStart < 2 {
			groupStart = -1
			return
		}
		maxPos := 0
		for i := groupStart; i < end; i++ {
			if pos := asBoundary(lines[i]); pos > maxPos {
				maxPos = pos
			}
		}
		for i := groupStart; i < end; i++ {
			pos := asBoundary(lines[i])
			if pos <= 0 || pos >= maxPos {
				continue
			}
			lines[i] = lines[i][:pos] + strings.Repeat(" ", maxPos-pos) + lines[i][pos:]
		}
		groupStart = -1
	}

	var indent string
	for i, line := range lines {
		ind := leadingWhitespace(line)
		hasAS := asBoundary(line) > 0
		if groupStart >= 0 && (ind != indent || !hasAS) {
			flush(i)
		}
		if hasAS && groupStart < 0 {
			groupStart = i
			indent = ind
		}
	}
	flush(len(lines))
}

func asBoundary(line string) int {
	idx := strings.Index(strings.ToUpper(line), " AS ")
	if idx < 0 {
		return -1
	}
	return idx
}

func leadingWhitespace(line string) string {
	return line[:len(line)-len(strings.TrimLeft(line, " \t"))]
}

// alignCommaColumn pulls each list item's leading comma to the start of the
// content column (tabular-left) or pushes it flush against the indent
// boundary on the right (tabular-right). Standard indent with
// CommaPosition=tabular falls back to tabular-left.
func alignCommaColumn(lines []string, style IndentStyle) {
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if !strings.HasPrefix(trimmed, ", ") && trimmed != "," {
			continue
		}
		indent := leadingWhitespace(line)
		rest := strings.TrimPrefix(trimmed, ",")
		rest = strings.TrimPrefix(rest, " ")
		switch style {
		case IndentTabularRight:
			if len(indent) >= 2 {
				indent = indent[:len(indent)-2]
			}
			lines[i] = indent + ", " + rest
		default: // IndentTabularLeft, or standard indent with CommaPosition=tabular
			lines[i] = indent + ", " + rest
		}
	}
}
