package lexer

import (
	"github.com/sqlfmtgo/sqlfmt/dialect"
	"github.com/sqlfmtgo/sqlfmt/token"
)

// Disambiguate rewrites token categories using only local, non-comment
// neighbor context. It is a pure function: same length in, same length out,
// five independent passes applied in a fixed order so later passes see the
// rewrites earlier passes made. The array-bracket passes only run for
// dialects that opt into d.BracketArrayAccess; a plain ANSI dialect leaves a
// '[' after an identifier or data type as an ordinary BLOCK_START.
func Disambiguate(tokens []token.Token, d *dialect.Dialect) []token.Token {
	out := make([]token.Token, len(tokens))
	copy(out, tokens)

	reservedNearPropertyAccess(out)
	functionNameRequiresParen(out)
	dataTypeBecomesParameterized(out)
	if d.BracketArrayAccess {
		identifierBecomesArrayIdentifier(out)
		dataTypeBecomesArrayKeyword(out)
	}

	return out
}

// prevNonComment returns the index of the nearest non-comment token before i,
// or -1.
func prevNonComment(tokens []token.Token, i int) int {
	for j := i - 1; j >= 0; j-- {
		if !tokens[j].Category.IsComment() {
			return j
		}
	}
	return -1
}

// nextNonComment returns the index of the nearest non-comment token after i,
// or -1.
func nextNonComment(tokens []token.Token, i int) int {
	for j := i + 1; j < len(tokens); j++ {
		if !tokens[j].Category.IsComment() {
			return j
		}
	}
	return -1
}

// reservedNearPropertyAccess: pass 1. Any RESERVED_* token whose nearest
// non-comment neighbor on either side is a PROPERTY_ACCESS_OPERATOR becomes
// IDENTIFIER — a reserved word used as a column/field name after a dot, e.g.
// "t.select" or "obj.end".
func reservedNearPropertyAccess(tokens []token.Token) {
	for i := range tokens {
		if !tokens[i].Category.IsReserved() {
			continue
		}
		if p := prevNonComment(tokens, i); p >= 0 && tokens[p].Category == token.PROPERTY_ACCESS_OPERATOR {
			tokens[i].Category = token.IDENTIFIER
			continue
		}
		if n := nextNonComment(tokens, i); n >= 0 && tokens[n].Category == token.PROPERTY_ACCESS_OPERATOR {
			tokens[i].Category = token.IDENTIFIER
		}
	}
}

// functionNameRequiresParen: pass 2. A RESERVED_FUNCTION_NAME not
// immediately followed by '(' becomes an IDENTIFIER — e.g. COUNT used as a
// plain column alias.
func functionNameRequiresParen(tokens []token.Token) {
	for i := range tokens {
		if tokens[i].Category != token.RESERVED_FUNCTION_NAME {
			continue
		}
		n := nextNonComment(tokens, i)
		if n < 0 || !(tokens[n].Category == token.BLOCK_START && tokens[n].Text == "(") {
			tokens[i].Category = token.IDENTIFIER
		}
	}
}

// dataTypeBecomesParameterized: pass 3. A RESERVED_DATA_TYPE immediately
// followed by '(' becomes RESERVED_PARAMETERIZED_DATA_TYPE, e.g.
// "VARCHAR(255)".
func dataTypeBecomesParameterized(tokens []token.Token) {
	for i := range tokens {
		if tokens[i].Category != token.RESERVED_DATA_TYPE {
			continue
		}
		n := nextNonComment(tokens, i)
		if n >= 0 && tokens[n].Category == token.BLOCK_START && tokens[n].Text == "(" {
			tokens[i].Category = token.RESERVED_PARAMETERIZED_DATA_TYPE
		}
	}
}

// identifierBecomesArrayIdentifier: pass 4. An IDENTIFIER immediately
// followed by '[' becomes ARRAY_IDENTIFIER, e.g. "tags[1]".
func identifierBecomesArrayIdentifier(tokens []token.Token) {
	for i := range tokens {
		if tokens[i].Category != token.IDENTIFIER {
			continue
		}
		n := nextNonComment(tokens, i)
		if n >= 0 && tokens[n].Category == token.BLOCK_START && tokens[n].Text == "[" {
			tokens[i].Category = token.ARRAY_IDENTIFIER
		}
	}
}

// dataTypeBecomesArrayKeyword: pass 5. A RESERVED_DATA_TYPE immediately
// followed by '[' becomes ARRAY_KEYWORD, e.g. "INT[]".
func dataTypeBecomesArrayKeyword(tokens []token.Token) {
	for i := range tokens {
		if tokens[i].Category != token.RESERVED_DATA_TYPE {
			continue
		}
		n := nextNonComment(tokens, i)
		if n >= 0 && tokens[n].Category == token.BLOCK_START && tokens[n].Text == "[" {
			tokens[i].Category = token.ARRAY_KEYWORD
		}
	}
}
