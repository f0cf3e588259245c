package format

import (
	"strings"

	"github.com/sqlfmtgo/sqlfmt/token"
)

// aliasPlan is the alias engine's output: which existing AS tokens to
// drop, and before which identifier tokens to synthesize one.
type aliasPlan struct {
	removeAS  map[int]bool
	insertAS  map[int]bool
}

func isASKeyword(t token.Token) bool {
	return t.Category == token.RESERVED_KEYWORD && strings.EqualFold(t.Value, "AS")
}

// isAliasable reports whether category c can sit to the left of an implicit
// alias target — i.e. the thing being named (a column expression, table
// reference, or parenthesized subexpression).
func isAliasable(c token.Category) bool {
	switch c {
	case token.IDENTIFIER, token.QUOTED_IDENTIFIER, token.ARRAY_IDENTIFIER,
		token.STRING, token.NUMBER, token.BLOCK_END, token.RESERVED_PARAMETERIZED_DATA_TYPE:
		return true
	default:
		return false
	}
}

// planAliases walks the statement once and decides the fate of every AS
// token and every bare "expr identifier" juxtaposition, per the configured
// AliasAsMode. AliasPreserve makes no changes (the lexer's own tokens pass
// through untouched).
func planAliases(tokens []token.Token, mode AliasAsMode) aliasPlan {
	plan := aliasPlan{removeAS: map[int]bool{}, insertAS: map[int]bool{}}
	if mode == AliasPreserve {
		return plan
	}

	for i, t := range tokens {
		if isASKeyword(t) {
			if mode == AliasNever {
				plan.removeAS[i] = true
			}
			continue
		}
		if mode != AliasAlways {
			continue
		}
		if t.Category != token.IDENTIFIER && t.Category != token.QUOTED_IDENTIFIER {
			continue
		}
		p := prevNonCommentIdx(tokens, i)
		if p < 0 || isASKeyword(tokens[p]) {
			continue
		}
		if isAliasable(tokens[p].Category) {
			plan.insertAS[i] = true
		}
	}
	return plan
}

func prevNonCommentIdx(tokens []token.Token, i int) int {
	for j := i - 1; j >= 0; j-- {
		if !tokens[j].Category.IsComment() {
			return j
		}
	}
	return -1
}
