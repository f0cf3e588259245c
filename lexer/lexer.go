// Package lexer tokenizes SQL source according to a dialect.Dialect and then
// disambiguates the resulting token categories based on neighboring tokens.
//
// The scanner is a cursor over the input byte slice, with per-dialect
// specializations layered on top of a shared ANSI core. It emits a flat
// token.Token slice up front rather than being driven step-by-step by a
// recursive-descent parser.
package lexer

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/smasher164/xid"

	"github.com/sqlfmtgo/sqlfmt/dialect"
	"github.com/sqlfmtgo/sqlfmt/token"
)

// maxReservedWords bounds how many whitespace-separated words the longest
// multi-word reserved-word match will try; every dialect table in this
// repository tops out at four words ("ON DUPLICATE KEY UPDATE"), so five
// leaves headroom without unbounded lookahead.
const maxReservedWords = 5

type cursor struct {
	input string
	pos   int

	startOfLine         bool
	afterBatchSeparator bool
}

// Lex tokenizes source under dialect d. It never fails: unrecognized runs of
// punctuation fall through to single-character OPERATOR tokens. The returned
// slice always ends with an EOF token and has already been run through
// Disambiguate.
func Lex(source string, d *dialect.Dialect) []token.Token {
	c := &cursor{input: source, startOfLine: true}
	var tokens []token.Token

	for {
		ws := c.skipWhitespace()
		startOffset := c.pos
		if c.pos >= len(c.input) {
			tokens = append(tokens, token.Token{
				Category:         token.EOF,
				WhitespaceBefore: ws,
				StartOffset:      startOffset,
			})
			break
		}
		cat, text, value := c.scanOne(d)
		tok := token.Token{
			Category:         cat,
			Text:             text,
			Value:            value,
			WhitespaceBefore: ws,
			StartOffset:      startOffset,
		}
		tokens = append(tokens, c.applyBatchSeparator(d, tok, ws))
	}

	return Disambiguate(tokens, d)
}

// applyBatchSeparator recognizes a bare dialect-configured keyword (T-SQL's
// "GO") at start-of-line as BATCH_SEPARATOR instead of an ordinary
// identifier/keyword.
func (c *cursor) applyBatchSeparator(d *dialect.Dialect, tok token.Token, ws string) token.Token {
	if strings.ContainsAny(ws, "\n") {
		c.startOfLine = true
	}
	defer func() {
		if tok.Category != token.LINE_COMMENT && tok.Category != token.BLOCK_COMMENT {
			c.startOfLine = false
		}
	}()

	if d.BatchSeparatorKeyword == "" {
		return tok
	}
	if c.startOfLine && (tok.Category == token.IDENTIFIER || tok.Category == token.RESERVED_KEYWORD) &&
		strings.EqualFold(tok.Text, d.BatchSeparatorKeyword) {
		tok.Category = token.BATCH_SEPARATOR
		tok.Value = strings.ToUpper(tok.Text)
	}
	return tok
}

func (c *cursor) skipWhitespace() string {
	start := c.pos
	for c.pos < len(c.input) {
		r, w := utf8.DecodeRuneInString(c.input[c.pos:])
		if !unicode.IsSpace(r) {
			break
		}
		c.pos += w
	}
	return c.input[start:c.pos]
}

func (c *cursor) peekRune(offset int) (rune, int) {
	if offset >= len(c.input) {
		return utf8.RuneError, 0
	}
	return utf8.DecodeRuneInString(c.input[offset:])
}

// scanOne applies a fixed priority order of ten scanning rules, committing
// to the first that matches.
func (c *cursor) scanOne(d *dialect.Dialect) (token.Category, string, string) {
	start := c.pos

	// Rule 1: line comment.
	for _, prefix := range d.LineCommentPrefixes {
		if strings.HasPrefix(c.input[c.pos:], prefix) {
			c.scanLineComment()
			text := c.input[start:c.pos]
			return token.LINE_COMMENT, text, text
		}
	}

	// Rule 2: block comment.
	if strings.HasPrefix(c.input[c.pos:], "/*") {
		c.scanBlockComment()
		text := c.input[start:c.pos]
		return token.BLOCK_COMMENT, text, text
	}

	// Rule 3: string literal.
	if cat, ok := c.tryScanString(d); ok {
		text := c.input[start:c.pos]
		return cat, text, text
	}

	// Rule 4: quoted identifier.
	if cat, ok := c.tryScanQuotedIdentifier(d); ok {
		text := c.input[start:c.pos]
		return cat, text, stripQuotes(text)
	}

	// Rule 5: reserved words (commands, clauses, operators-as-keywords,
	// function names, data types) — multi-word, longest match, tried in
	// priority order.
	if cat, text, value, ok := c.tryScanReserved(d); ok {
		return cat, text, value
	}

	// Rule 6: placeholder.
	if r, _ := c.peekRune(c.pos); d.AcceptsPlaceholderPrefix(r) {
		if ok := c.tryScanPlaceholder(d); ok {
			text := c.input[start:c.pos]
			return token.PLACEHOLDER, text, text
		}
	}

	// Rule 7: number.
	if r, _ := c.peekRune(c.pos); r >= '0' && r <= '9' {
		c.scanNumber()
		text := c.input[start:c.pos]
		return token.NUMBER, text, text
	}

	// Rule 8: identifier.
	if r, _ := c.peekRune(c.pos); isIdentStart(r) {
		c.scanIdentifier()
		text := c.input[start:c.pos]
		return token.IDENTIFIER, text, text
	}

	// Rule 9: operator (longest match), blocks, property access.
	return c.scanOperator(d)
}

func (c *cursor) scanLineComment() {
	for c.pos < len(c.input) {
		r, w := utf8.DecodeRuneInString(c.input[c.pos:])
		if r == '\n' {
			return
		}
		c.pos += w
	}
}

func (c *cursor) scanBlockComment() {
	c.pos += len("/*")
	for c.pos < len(c.input) {
		if strings.HasPrefix(c.input[c.pos:], "*/") {
			c.pos += len("*/")
			return
		}
		_, w := utf8.DecodeRuneInString(c.input[c.pos:])
		if w == 0 {
			return
		}
		c.pos += w
	}
}

func stringDelimiter(style dialect.StringStyle) (byte, bool) {
	switch style {
	case dialect.SingleQuoted:
		return '\'', true
	case dialect.DoubleQuoted:
		return '"', true
	case dialect.BacktickQuoted:
		return '`', true
	default:
		return 0, false
	}
}

func (c *cursor) tryScanString(d *dialect.Dialect) (token.Category, bool) {
	for _, style := range d.StringStyles {
		switch style {
		case dialect.DollarTagged:
			if c.input[c.pos] == '$' {
				if ok := c.tryScanDollarTagged(); ok {
					return token.STRING, true
				}
			}
		default:
			delim, ok := stringDelimiter(style)
			if ok && c.input[c.pos] == delim {
				c.pos++
				c.scanUntilDoubled(delim)
				return token.STRING, true
			}
		}
	}
	return 0, false
}

// tryScanDollarTagged scans PostgreSQL-style $tag$ ... $tag$ strings.
func (c *cursor) tryScanDollarTagged() bool {
	rest := c.input[c.pos:]
	end := strings.IndexByte(rest[1:], '$')
	if end == -1 {
		return false
	}
	tag := rest[:end+2] // "$tag$" including both dollars
	for _, r := range tag[1 : len(tag)-1] {
		if !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_') {
			return false
		}
	}
	closeIdx := strings.Index(rest[len(tag):], tag)
	if closeIdx == -1 {
		c.pos = len(c.input)
		return true
	}
	c.pos += len(tag) + closeIdx + len(tag)
	return true
}

// scanUntilDoubled scans until delim, treating a doubled delim as an escaped
// literal delim (the '' / ]] / `` convention shared by string and quoted
// identifier literals).
func (c *cursor) scanUntilDoubled(delim byte) {
	for c.pos < len(c.input) {
		if c.input[c.pos] == delim {
			if c.pos+1 < len(c.input) && c.input[c.pos+1] == delim {
				c.pos += 2
				continue
			}
			c.pos++
			return
		}
		_, w := utf8.DecodeRuneInString(c.input[c.pos:])
		if w == 0 {
			return
		}
		c.pos += w
	}
}

func (c *cursor) tryScanQuotedIdentifier(d *dialect.Dialect) (token.Category, bool) {
	for _, style := range d.IdentifierQuotes {
		switch style {
		case BracketIdentStyle:
			if c.input[c.pos] == '[' {
				c.pos++
				c.scanUntilBracketClose()
				return token.QUOTED_IDENTIFIER, true
			}
		default:
			delim, ok := identDelimiter(style)
			if ok && c.input[c.pos] == delim {
				c.pos++
				c.scanUntilDoubled(delim)
				return token.QUOTED_IDENTIFIER, true
			}
		}
	}
	return 0, false
}

// BracketIdentStyle re-exports dialect.BracketIdent for readability at call
// sites in this file.
const BracketIdentStyle = dialect.BracketIdent

func identDelimiter(style dialect.IdentifierQuoteStyle) (byte, bool) {
	switch style {
	case dialect.DoubleQuoteIdent:
		return '"', true
	case dialect.BacktickIdent:
		return '`', true
	default:
		return 0, false
	}
}

func (c *cursor) scanUntilBracketClose() {
	for c.pos < len(c.input) {
		if c.input[c.pos] == ']' {
			if c.pos+1 < len(c.input) && c.input[c.pos+1] == ']' {
				c.pos += 2
				continue
			}
			c.pos++
			return
		}
		_, w := utf8.DecodeRuneInString(c.input[c.pos:])
		if w == 0 {
			return
		}
		c.pos += w
	}
}

func stripQuotes(text string) string {
	if len(text) < 2 {
		return text
	}
	return text[1 : len(text)-1]
}

func isIdentStart(r rune) bool {
	return xid.Start(r) || r == '_'
}

func isIdentContinue(r rune) bool {
	return xid.Continue(r) || r == '_' || r == '$' || r == '#'
}

func (c *cursor) scanIdentifier() {
	r, w := c.peekRune(c.pos)
	c.pos += w
	_ = r
	for c.pos < len(c.input) {
		r, w := c.peekRune(c.pos)
		if !isIdentContinue(r) {
			return
		}
		c.pos += w
	}
}

func (c *cursor) scanWord() (string, bool) {
	if r, _ := c.peekRune(c.pos); !isIdentStart(r) {
		return "", false
	}
	start := c.pos
	c.scanIdentifier()
	return c.input[start:c.pos], true
}

// tryScanReserved greedily concatenates up to
// maxReservedWords word-tokens separated by arbitrary (non-newline-crossing
// comment) whitespace, and take the longest whitespace-collapsed,
// uppercased match against the dialect's category sets, priority broken by
// the declared category order.
func (c *cursor) tryScanReserved(d *dialect.Dialect) (token.Category, string, string, bool) {
	save := c.pos
	var words []string
	var ends []int // byte offset in input after word i (before trailing ws of that word)

	for i := 0; i < maxReservedWords; i++ {
		wsStart := c.pos
		for c.pos < len(c.input) {
			r, w := utf8.DecodeRuneInString(c.input[c.pos:])
			if r == ' ' || r == '\t' {
				c.pos += w
				continue
			}
			break
		}
		if i > 0 && c.pos == wsStart {
			break // no whitespace gap: words must be separated by space/tab
		}
		w, ok := c.scanWord()
		if !ok {
			c.pos = wsStart
			break
		}
		words = append(words, w)
		ends = append(ends, c.pos)
	}

	if len(words) == 0 {
		c.pos = save
		return 0, "", "", false
	}

	bestEnd := -1
	var bestCategory token.Category
	var bestValue string
	for n := len(words); n >= 1; n-- {
		candidate := strings.ToUpper(strings.Join(words[:n], " "))
		if cat, ok := matchCategory(d, candidate); ok {
			bestEnd = ends[n-1]
			bestCategory = cat
			bestValue = candidate
			break
		}
	}

	if bestEnd == -1 {
		c.pos = save
		return 0, "", "", false
	}
	c.pos = bestEnd
	return bestCategory, c.input[save:bestEnd], bestValue, true
}

// matchCategory checks candidate (already uppercased/whitespace-collapsed)
// against the dialect's category sets in priority order.
func matchCategory(d *dialect.Dialect, candidate string) (token.Category, bool) {
	switch {
	case d.Commands.Contains(candidate):
		return token.RESERVED_COMMAND, true
	case d.BinaryCommands.Contains(candidate):
		return token.RESERVED_BINARY_COMMAND, true
	case d.DependentClauses.Contains(candidate):
		return token.RESERVED_DEPENDENT_CLAUSE, true
	case d.JoinConditions.Contains(candidate):
		return token.RESERVED_JOIN_CONDITION, true
	case d.LogicalOperators.Contains(candidate):
		return token.RESERVED_LOGICAL_OPERATOR, true
	case d.CaseStart.Contains(candidate):
		return token.RESERVED_CASE_START, true
	case d.CaseEnd.Contains(candidate):
		return token.RESERVED_CASE_END, true
	case d.ReservedKeywords.Contains(candidate):
		return token.RESERVED_KEYWORD, true
	case d.FunctionNames.Contains(candidate):
		return token.RESERVED_FUNCTION_NAME, true
	case d.DataTypes.Contains(candidate):
		return token.RESERVED_DATA_TYPE, true
	default:
		return 0, false
	}
}

func (c *cursor) tryScanPlaceholder(d *dialect.Dialect) bool {
	start := c.pos
	r, w := c.peekRune(c.pos)
	if !d.AcceptsPlaceholderPrefix(r) {
		return false
	}
	c.pos += w
	// a following identifier, number, or quoted name names the placeholder;
	// a bare prefix with nothing following (e.g. MySQL "?") is still valid.
	if nr, _ := c.peekRune(c.pos); nr >= '0' && nr <= '9' {
		for c.pos < len(c.input) {
			nr, nw := c.peekRune(c.pos)
			if nr < '0' || nr > '9' {
				break
			}
			c.pos += nw
		}
	} else if _, ok := c.scanWord(); ok {
		// scanWord already advanced c.pos
	}
	if c.pos == start {
		c.pos = start + w
	}
	return true
}

var numberRegexp = regexp.MustCompile(`^\d+\.?\d*([eE][+-]?\d+)?`)

func (c *cursor) scanNumber() {
	loc := numberRegexp.FindStringIndex(c.input[c.pos:])
	if loc == nil {
		_, w := c.peekRune(c.pos)
		c.pos += w
		return
	}
	c.pos += loc[1]
}

// scanOperator handles '(', '[', '{' opening blocks; matching close brackets
// close them; '.' is property access; otherwise the longest operator in
// d.Operators wins; as a last resort it falls back to one character.
func (c *cursor) scanOperator(d *dialect.Dialect) (token.Category, string, string) {
	start := c.pos
	r, w := c.peekRune(c.pos)

	switch r {
	case '(', '[', '{':
		c.pos += w
		text := c.input[start:c.pos]
		return token.BLOCK_START, text, text
	case ')', ']', '}':
		c.pos += w
		text := c.input[start:c.pos]
		return token.BLOCK_END, text, text
	case '.':
		c.pos += w
		text := c.input[start:c.pos]
		return token.PROPERTY_ACCESS_OPERATOR, text, text
	}

	if op, ok := longestOperator(c.input[c.pos:], d.Operators); ok {
		c.pos += len(op)
		return token.OPERATOR, op, op
	}

	// Rule 10 fallback: single character, whatever it is.
	if w == 0 {
		w = 1
	}
	c.pos += w
	text := c.input[start:c.pos]
	return token.OPERATOR, text, text
}

func longestOperator(rest string, ops []string) (string, bool) {
	best := ""
	for _, op := range ops {
		if len(op) > len(best) && strings.HasPrefix(rest, op) {
			best = op
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
