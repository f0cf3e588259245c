package format

import (
	"strings"

	"github.com/sqlfmtgo/sqlfmt/token"
)

// formatter walks one statement's disambiguated token stream and renders it
// through a buffer with a per-category dispatch.
type formatter struct {
	opts   FormatOptions
	buf    *buffer
	tokens []token.Token

	matches map[int]int  // BLOCK_START index -> matching BLOCK_END index
	inline  map[int]bool // BLOCK_START index -> renders on one line
	alias   aliasPlan

	observedCase CaseMode // majority case of this statement's own reserved tokens

	commandNewline bool // current command's multilineLists decision
	nextPositional int  // cursor into Params.Positional

	err error // first placeholder-resolution error encountered, if any
}

// FormatTokens renders one statement's disambiguated token stream and
// returns the tabulated output plus the first placeholder-resolution error
// encountered, if any.
func FormatTokens(tokens []token.Token, opts FormatOptions) (string, error) {
	out, err := formatStatement(tokens, opts)
	return tabulate(out, opts), err
}

// formatStatement renders a single statement's tokens and returns the
// output plus the first placeholder error encountered, if any.
func formatStatement(tokens []token.Token, opts FormatOptions) (string, error) {
	f := &formatter{
		opts:         opts,
		buf:          newBuffer(opts.indentUnit()),
		tokens:       tokens,
		matches:      matchParens(tokens),
		alias:        planAliases(tokens, opts.AliasAs),
		observedCase: observedKeywordCase(tokens),
	}
	f.inline = inlineBlocks(tokens, f.matches, opts.ExpressionWidth)

	for i := 0; i < len(tokens); i++ {
		f.step(i)
	}

	return f.buf.String(), f.err
}

func (f *formatter) prevCategory(i int) token.Category {
	p := prevNonCommentIdx(f.tokens, i)
	if p < 0 {
		return token.EOF
	}
	return f.tokens[p].Category
}

func (f *formatter) twoBack(i int) (token.Token, bool) {
	p := prevNonCommentIdx(f.tokens, i)
	if p < 0 {
		return token.Token{}, false
	}
	q := prevNonCommentIdx(f.tokens, p)
	if q < 0 {
		return token.Token{}, false
	}
	return f.tokens[q], true
}

func (f *formatter) display(tok token.Token) string {
	var s string
	switch tok.Category {
	case token.RESERVED_COMMAND, token.RESERVED_BINARY_COMMAND, token.RESERVED_DEPENDENT_CLAUSE,
		token.RESERVED_JOIN_CONDITION, token.RESERVED_LOGICAL_OPERATOR, token.RESERVED_KEYWORD,
		token.RESERVED_CASE_START, token.RESERVED_CASE_END:
		s = reservedDisplay(tok, f.opts.KeywordCase)
	case token.RESERVED_FUNCTION_NAME:
		return reservedDisplay(tok, f.opts.FunctionCase)
	case token.RESERVED_DATA_TYPE, token.RESERVED_PARAMETERIZED_DATA_TYPE, token.ARRAY_KEYWORD:
		return reservedDisplay(tok, f.opts.DataTypeCase)
	case token.IDENTIFIER, token.ARRAY_IDENTIFIER:
		return applyCase(tok.Text, f.opts.IdentifierCase)
	default:
		return tok.Text
	}
	if f.opts.IndentStyle != IndentStandard && isTabularCategory(tok.Category) {
		s = tabularMarker + s + tabularMarker
	}
	return s
}

// isTabularCategory reports whether c is one of the categories the tabular
// post-processor column-aligns in tabular indent modes: commands, binary
// commands, dependent clauses, and logical operators (not join conditions
// or plain keywords, which stay inline with their clause).
func isTabularCategory(c token.Category) bool {
	switch c {
	case token.RESERVED_COMMAND, token.RESERVED_BINARY_COMMAND,
		token.RESERVED_DEPENDENT_CLAUSE, token.RESERVED_LOGICAL_OPERATOR:
		return true
	default:
		return false
	}
}

func reservedDisplay(t token.Token, mode CaseMode) string {
	switch mode {
	case CaseUpper:
		return strings.ToUpper(t.Value)
	case CaseLower:
		return strings.ToLower(t.Value)
	default:
		return strings.Join(strings.Fields(t.Text), " ")
	}
}

// observedKeywordCase scans a statement's own reserved tokens and reports
// whether the majority were written upper- or lower-case in the source, so
// a token the alias engine synthesizes (one with no source casing of its
// own) can match the surrounding query's style rather than the caller's
// KeywordCase option. Ties, and statements with no cased reserved tokens,
// report CasePreserve.
func observedKeywordCase(tokens []token.Token) CaseMode {
	var upper, lower int
	for _, t := range tokens {
		if !t.Category.IsReserved() {
			continue
		}
		if !strings.ContainsFunc(t.Text, func(r rune) bool {
			return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		}) {
			continue
		}
		switch t.Text {
		case strings.ToUpper(t.Text):
			upper++
		case strings.ToLower(t.Text):
			lower++
		}
	}
	switch {
	case upper > lower:
		return CaseUpper
	case lower > upper:
		return CaseLower
	default:
		return CasePreserve
	}
}

func applyCase(s string, mode CaseMode) string {
	switch mode {
	case CaseUpper:
		return strings.ToUpper(s)
	case CaseLower:
		return strings.ToLower(s)
	default:
		return s
	}
}

// step dispatches a single token by category.
func (f *formatter) step(i int) {
	tok := f.tokens[i]

	if f.alias.removeAS[i] {
		return
	}
	if f.alias.insertAS[i] {
		f.buf.addWithSpaces(reservedDisplay(token.Token{Text: "AS", Value: "AS"}, f.observedCase))
	}

	switch tok.Category {
	case token.RESERVED_COMMAND:
		f.command(i, tok, false)
	case token.RESERVED_BINARY_COMMAND:
		f.command(i, tok, true)
	case token.RESERVED_DEPENDENT_CLAUSE:
		f.buf.addNewline()
		f.buf.addWithSpaces(f.display(tok))
	case token.RESERVED_JOIN_CONDITION:
		f.buf.addWithSpaces(f.display(tok))
	case token.RESERVED_LOGICAL_OPERATOR:
		f.logicalOperator(i, tok)
	case token.RESERVED_CASE_START:
		f.buf.addWithSpaces(f.display(tok))
		f.buf.incBlockLevel()
		if f.opts.MultilineLists == MultilineAlways {
			f.buf.addNewline()
		}
	case token.RESERVED_CASE_END:
		f.buf.decBlockLevel()
		f.buf.addNewline()
		f.buf.addWithSpaces(f.display(tok))
	case token.RESERVED_KEYWORD:
		f.buf.addWithSpaces(f.display(tok))
	case token.RESERVED_FUNCTION_NAME:
		f.buf.addWithSpaceBefore(f.display(tok))
	case token.RESERVED_DATA_TYPE, token.RESERVED_PARAMETERIZED_DATA_TYPE:
		f.buf.addWithSpaces(f.display(tok))
	case token.ARRAY_KEYWORD:
		f.buf.addWithoutSpaces(f.display(tok))
	case token.IDENTIFIER, token.QUOTED_IDENTIFIER, token.ARRAY_IDENTIFIER, token.VARIABLE:
		if f.prevCategory(i) == token.PROPERTY_ACCESS_OPERATOR {
			f.buf.addWithoutSpaces(f.display(tok))
		} else {
			f.buf.addWithSpaces(f.display(tok))
		}
	case token.PROPERTY_ACCESS_OPERATOR:
		f.buf.addWithoutSpaces(tok.Text)
	case token.BLOCK_START:
		f.blockStart(i, tok)
	case token.BLOCK_END:
		f.blockEnd(i, tok)
	case token.OPERATOR:
		f.operator(i, tok)
	case token.NUMBER, token.STRING:
		f.buf.addWithSpaces(tok.Text)
	case token.PLACEHOLDER:
		text, err := f.resolvePlaceholder(tok)
		if err != nil {
			if f.err == nil {
				f.err = err
			}
			text = tok.Text
		}
		f.buf.addWithSpaces(text)
	case token.LINE_COMMENT, token.BLOCK_COMMENT:
		f.buf.addWithSpaces(tok.Text)
	case token.BATCH_SEPARATOR:
		f.buf.addNewline()
		f.buf.addWithSpaces(tok.Text)
		f.buf.addNewline()
	case token.EOF:
		// segment.Split never leaves an EOF token inside a Statement; ignored
		// defensively if one reaches here.
	}
}

func (f *formatter) command(i int, tok token.Token, binary bool) {
	end := commandTail(f.tokens, i)
	withinSelect := strings.EqualFold(tok.Value, "SELECT")
	f.commandNewline = decideMultiline(f.tokens[i+1:end], f.opts, withinSelect)

	if binary {
		for f.buf.topLevel > 0 {
			f.buf.decTopLevel()
		}
	} else {
		f.buf.decTopLevel()
	}

	f.buf.addNewline()
	f.buf.addWithSpaces(f.display(tok))
	if !binary {
		f.buf.incTopLevel()
	}
	if binary || f.commandNewline {
		f.buf.addNewline()
	}
}

func (f *formatter) logicalOperator(i int, tok token.Token) {
	if prev, ok := f.twoBack(i); ok && prev.Category == token.RESERVED_KEYWORD && strings.EqualFold(prev.Value, "BETWEEN") {
		f.buf.addWithSpaces(f.display(tok))
		return
	}
	if !f.commandNewline {
		f.buf.addWithSpaces(f.display(tok))
		return
	}
	if f.opts.LogicalOperatorNewline == LogicalOperatorNewlineBefore {
		f.buf.addNewline()
		f.buf.addWithSpaces(f.display(tok))
	} else {
		f.buf.addWithSpaces(f.display(tok))
		f.buf.addNewline()
	}
}

func (f *formatter) blockStart(i int, tok token.Token) {
	glue := f.prevCategory(i) == token.RESERVED_FUNCTION_NAME || tok.Text == "["
	if glue {
		f.buf.addWithoutSpaces(tok.Text)
	} else {
		if f.opts.NewlineBeforeOpenParen {
			f.buf.addNewline()
		}
		f.buf.addWithSpaces(tok.Text)
		f.buf.glueNext()
	}
	f.buf.incBlockLevel()
	if !f.inline[i] {
		f.buf.addNewline()
	}
}

func (f *formatter) blockEnd(i int, tok token.Token) {
	f.buf.decBlockLevel()
	open := -1
	for o, c := range f.matches {
		if c == i {
			open = o
			break
		}
	}
	if open >= 0 && !f.inline[open] {
		if f.opts.NewlineBeforeCloseParen {
			f.buf.addNewline()
		}
		f.buf.addWithSpaceAfter(tok.Text)
		return
	}
	f.buf.addWithoutSpaces(tok.Text)
}

func (f *formatter) operator(i int, tok token.Token) {
	switch tok.Text {
	case ",":
		f.comma(i)
	case ";":
		if f.opts.NewlineBeforeSemicolon {
			f.buf.addNewline()
		}
		f.buf.addWithoutSpaces(";")
	default:
		if f.opts.DenseOperators {
			f.buf.addWithoutSpaces(tok.Text)
		} else {
			f.buf.addWithSpaces(tok.Text)
		}
	}
}

func (f *formatter) comma(i int) {
	atTopLevel := f.buf.blockLevel == 0
	breakHere := atTopLevel && f.commandNewline

	switch f.opts.CommaPosition {
	case CommaBefore:
		if breakHere {
			f.buf.addNewline()
		}
		f.buf.addWithSpaceAfter(",")
	default: // CommaAfter, CommaTabular (placed the same way; tabulate() leaves it there)
		f.buf.addWithSpaceAfter(",")
		if breakHere {
			f.buf.addNewline()
		}
	}
}

// commandTail returns the exclusive end index of the clause governed by the
// RESERVED_COMMAND/RESERVED_BINARY_COMMAND at start: up to (not including)
// the next top-level command or ';'.
func commandTail(tokens []token.Token, start int) int {
	depth := 0
	for i := start + 1; i < len(tokens); i++ {
		switch tokens[i].Category {
		case token.BLOCK_START:
			depth++
		case token.BLOCK_END:
			if depth > 0 {
				depth--
			}
		case token.RESERVED_COMMAND, token.RESERVED_BINARY_COMMAND:
			if depth == 0 {
				return i
			}
		case token.OPERATOR:
			if depth == 0 && tokens[i].Text == ";" {
				return i
			}
		}
	}
	return len(tokens)
}

// decideMultiline implements the multilineLists policy, plus the
// unconditional override: a SELECT whose tail contains a CASE expression
// always breaks, regardless of policy.
func decideMultiline(tail []token.Token, opts FormatOptions, withinSelect bool) bool {
	if withinSelect && containsCase(tail) {
		return true
	}
	switch opts.MultilineLists {
	case MultilineAlways:
		return true
	case MultilineAvoid:
		return false
	case MultilineExpressionWidth:
		return estimateWidth(tail) > opts.ExpressionWidth
	default:
		if len(tail) == 0 {
			return false
		}
		count := countTopLevelCommas(tail) + 1
		return count > opts.MultilineLists.count || estimateWidth(tail) > opts.ExpressionWidth
	}
}

func containsCase(tail []token.Token) bool {
	for _, t := range tail {
		if t.Category == token.RESERVED_CASE_START {
			return true
		}
	}
	return false
}

func countTopLevelCommas(tail []token.Token) int {
	depth := 0
	n := 0
	for _, t := range tail {
		switch t.Category {
		case token.BLOCK_START:
			depth++
		case token.BLOCK_END:
			if depth > 0 {
				depth--
			}
		case token.OPERATOR:
			if depth == 0 && t.Text == "," {
				n++
			}
		}
	}
	return n
}

func estimateWidth(tail []token.Token) int {
	w := 0
	for _, t := range tail {
		w += len(t.Text) + 1
	}
	return w
}
