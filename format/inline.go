package format

import "github.com/sqlfmtgo/sqlfmt/token"

// matchParens pairs each BLOCK_START index with its matching BLOCK_END
// index within a single statement's tokens. Brackets are assumed balanced;
// an unterminated block matches to len(tokens) defensively.
func matchParens(tokens []token.Token) map[int]int {
	matches := make(map[int]int)
	var stack []int
	for i, t := range tokens {
		switch t.Category {
		case token.BLOCK_START:
			stack = append(stack, i)
		case token.BLOCK_END:
			if n := len(stack); n > 0 {
				open := stack[n-1]
				stack = stack[:n-1]
				matches[open] = i
			}
		}
	}
	for _, open := range stack {
		matches[open] = len(tokens)
	}
	return matches
}

// inlineBlocks decides, for every BLOCK_START in matches, whether its
// contents render on one line. A block stays inline unless it contains a
// nested statement (a RESERVED_COMMAND or RESERVED_BINARY_COMMAND at any
// depth), a block comment, or a CASE expression — the common case that
// keeps function calls like COUNT(*) and short tuples like (1, 2) glued on
// one line while always exploding subqueries and CTEs onto their own
// lines — or if its rendered width from the open bracket to the matching
// close bracket would exceed expressionWidth.
func inlineBlocks(tokens []token.Token, matches map[int]int, expressionWidth int) map[int]bool {
	inline := make(map[int]bool, len(matches))
	for open, close := range matches {
		isInline := true
		for i := open + 1; i < close && i < len(tokens); i++ {
			switch tokens[i].Category {
			case token.RESERVED_COMMAND, token.RESERVED_BINARY_COMMAND,
				token.BLOCK_COMMENT, token.RESERVED_CASE_START:
				isInline = false
			}
		}
		if isInline && close < len(tokens) && estimateWidth(tokens[open:close+1]) > expressionWidth {
			isInline = false
		}
		inline[open] = isInline
	}
	return inline
}
